package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Persona-driven PDF section analysis",
	Long: `Docsift extracts the section structure of PDF documents and ranks the
sections by relevance to a persona and a job to be done.

The pipeline includes:
  - Font-statistics based heading detection
  - Section content extraction between headings
  - Keyword expansion from persona and job descriptions
  - Relevance scoring, deduplication, and per-document balancing
  - Sentence-level refinement of the top sections`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.docsift/config.yaml)",
	)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initConfig()
	}

	rootCmd.AddCommand(analyzeCmd)
}

// initConfig wires viper to the optional config file and DOCSIFT_
// environment variables.
func initConfig() error {
	viper.SetEnvPrefix("DOCSIFT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.docsift")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading config file: %w", err)
		}
	}
	return nil
}
