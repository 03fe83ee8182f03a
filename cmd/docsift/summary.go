package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/docsift/docsift"
)

// summaryTop is how many ranked sections the console summary shows.
const summaryTop = 5

var (
	// titleStyle for the summary header
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("81"))

	// dimStyle for metadata lines
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	// rankStyle for rank numbers
	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220"))

	// scoreStyle for relevance scores
	scoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	// boxStyle frames the whole summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("81")).
			Padding(0, 1)
)

// printSummary renders the analysis header and the top ranked sections.
func printSummary(w io.Writer, result *docsift.Result) {
	meta := result.AnalysisMetadata

	var b strings.Builder
	b.WriteString(titleStyle.Render("Analysis Summary"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s\n", dimStyle.Render("Persona:"), meta.Persona))
	b.WriteString(fmt.Sprintf("%s %d\n", dimStyle.Render("Documents:"), len(meta.InputDocuments)))
	b.WriteString(fmt.Sprintf("%s %d\n", dimStyle.Render("Sections:"), meta.TotalSections))

	if len(result.RankedSections) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render(fmt.Sprintf("Top %d Sections", summaryTop)))
		b.WriteString("\n")
		for i, sec := range result.RankedSections {
			if i == summaryTop {
				break
			}
			title := sec.SectionTitle
			if len(title) > 50 {
				title = title[:50] + "..."
			}
			b.WriteString(fmt.Sprintf("%s %s %s %s\n",
				rankStyle.Render(fmt.Sprintf("%d.", i+1)),
				title,
				scoreStyle.Render(fmt.Sprintf("%.3f", sec.RelevanceScore)),
				dimStyle.Render(sec.Document),
			))
		}
	}

	fmt.Fprintln(w, boxStyle.Render(strings.TrimRight(b.String(), "\n")))
}
