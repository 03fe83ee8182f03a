package docsift

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/docsift/docsift/model"
)

// timestampLayout is the human-readable timestamp format of
// analysis_metadata.timestamp.
const timestampLayout = "2006-01-02 15:04:05"

// Result is the full output of one analysis run. Its JSON field names are a
// stable contract for downstream consumers.
type Result struct {
	AnalysisMetadata   Metadata                   `json:"analysis_metadata"`
	RankedSections     []model.ScoredSection      `json:"ranked_sections"`
	SubSectionAnalysis []model.SubSectionAnalysis `json:"sub_section_analysis"`
	ProcessingSummary  Summary                    `json:"processing_summary"`
}

// Metadata describes the analysis inputs.
type Metadata struct {
	Persona        string   `json:"persona"`
	JobToBeDone    string   `json:"job_to_be_done"`
	InputDocuments []string `json:"input_documents"`
	Timestamp      string   `json:"timestamp"`
	TotalSections  int      `json:"total_sections"`
	RunID          string   `json:"run_id"`
}

// Summary holds the run statistics.
type Summary struct {
	SectionsAnalyzed      int     `json:"sections_analyzed"`
	DocumentsProcessed    int     `json:"documents_processed"`
	ProcessingTimeSeconds float64 `json:"processing_time_seconds"`
}

func newResult(persona, job string, documents []string, ranked []model.ScoredSection, analysis []model.SubSectionAnalysis, elapsed time.Duration) *Result {
	return &Result{
		AnalysisMetadata: Metadata{
			Persona:        persona,
			JobToBeDone:    job,
			InputDocuments: documents,
			Timestamp:      time.Now().Format(timestampLayout),
			TotalSections:  len(ranked),
			RunID:          uuid.NewString(),
		},
		RankedSections:     ranked,
		SubSectionAnalysis: analysis,
		ProcessingSummary: Summary{
			SectionsAnalyzed:      len(ranked),
			DocumentsProcessed:    len(documents),
			ProcessingTimeSeconds: math.Round(elapsed.Seconds()*100) / 100,
		},
	}
}

// JSON renders the result as indented JSON.
func (r *Result) JSON() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return data, nil
}

// Save writes the result as indented JSON to a file.
func (r *Result) Save(path string) error {
	data, err := r.JSON()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
