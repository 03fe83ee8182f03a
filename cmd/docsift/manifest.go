package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// manifestName is the document manifest expected in the input directory.
const manifestName = "input.json"

// Manifest describes the documents and analysis request in input.json.
type Manifest struct {
	Documents []ManifestDocument `json:"documents"`
	Persona   struct {
		Role string `json:"role"`
	} `json:"persona"`
	JobToBeDone struct {
		Task string `json:"task"`
	} `json:"job_to_be_done"`
}

// ManifestDocument names one input PDF.
type ManifestDocument struct {
	Filename string `json:"filename"`
	Title    string `json:"title"`
}

// loadManifest reads and validates input.json from the input directory.
func loadManifest(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", manifestName, err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", manifestName, err)
	}

	if len(m.Documents) == 0 {
		return nil, fmt.Errorf("%s: documents must be a non-empty array", manifestName)
	}
	for i, doc := range m.Documents {
		if doc.Filename == "" {
			return nil, fmt.Errorf("%s: documents[%d] has no filename", manifestName, i)
		}
	}
	return &m, nil
}

// scanPDFs lists the PDF files of a directory, the fallback when no usable
// manifest exists.
func scanPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}

	var pdfs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".pdf") {
			pdfs = append(pdfs, e.Name())
		}
	}
	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s", dir)
	}
	return pdfs, nil
}
