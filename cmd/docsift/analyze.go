package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/keyword"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-dir]",
	Short: "Rank the sections of a document collection",
	Long: `Analyze the PDF documents of a directory and rank their sections by
relevance to a persona and a job to be done.

The directory may contain an input.json manifest naming the documents and the
persona/job; without one, every PDF in the directory is analyzed and the
persona and job must come from flags or environment.

Examples:
  docsift analyze ./input
  docsift analyze ./reports --persona "Investment Analyst" \
      --job "Analyze revenue trends" --out output.json
  DOCSIFT_PERSONA="PhD Researcher" docsift analyze ./papers`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("persona", "", "persona role the analysis is for")
	analyzeCmd.Flags().String("job", "", "job to be done")
	analyzeCmd.Flags().String("out", "", "write the full result JSON to this file")
	analyzeCmd.Flags().String("keyword-model", "", "persisted keyword expansion model")
	analyzeCmd.Flags().Int("max-per-doc", 5, "maximum sections kept per document")
	analyzeCmd.Flags().Int("max-refined", 10, "number of top sections to refine")

	for _, flag := range []string{"persona", "job", "out", "keyword-model", "max-per-doc", "max-refined"} {
		viper.BindPFlag(flag, analyzeCmd.Flags().Lookup(flag))
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	inputDir := "input"
	if len(args) == 1 {
		inputDir = args[0]
	}
	if _, err := os.Stat(inputDir); err != nil {
		return fmt.Errorf("input directory: %w", err)
	}

	persona := viper.GetString("persona")
	job := viper.GetString("job")

	var filenames []string
	manifest, err := loadManifest(inputDir)
	if err != nil {
		logger.Warn("no usable manifest, scanning directory", "error", err)
		filenames, err = scanPDFs(inputDir)
		if err != nil {
			return err
		}
	} else {
		for _, doc := range manifest.Documents {
			filenames = append(filenames, doc.Filename)
		}
		if persona == "" {
			persona = manifest.Persona.Role
		}
		if job == "" {
			job = manifest.JobToBeDone.Task
		}
	}

	var paths []string
	for _, name := range filenames {
		path := filepath.Join(inputDir, name)
		if _, err := os.Stat(path); err != nil {
			logger.Warn("listed document not found", "file", name)
			continue
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return fmt.Errorf("none of the listed documents exist in %s", inputDir)
	}

	analyzer := docsift.New().
		Persona(persona).
		Job(job).
		Logger(logger).
		MaxPerDocument(viper.GetInt("max-per-doc")).
		MaxRefined(viper.GetInt("max-refined"))

	if modelPath := viper.GetString("keyword-model"); modelPath != "" {
		expander, err := keyword.LoadModelExpander(modelPath)
		if err != nil {
			logger.Warn("falling back to built-in keyword model", "error", err)
		} else {
			analyzer.Expander(expander)
		}
	}

	result, err := analyzer.Analyze(cmd.Context(), paths...)
	if err != nil {
		return err
	}

	if out := viper.GetString("out"); out != "" {
		if err := result.Save(out); err != nil {
			return err
		}
		logger.Info("result written", "path", out)
	}

	printSummary(cmd.OutOrStdout(), result)
	return nil
}
