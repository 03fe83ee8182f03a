package reader

import (
	"testing"

	"github.com/docsift/docsift/model"
)

func TestDocumentID(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"input/annual-report.pdf", "annual-report"},
		{"annual-report.pdf", "annual-report"},
		{"dir/sub/Paper.PDF", "Paper"},
		{"C:\\docs\\thesis.pdf", "thesis"},
		{"notes.txt", "notes.txt"},
	}

	for _, tt := range tests {
		if got := DocumentID(tt.path); got != tt.want {
			t.Errorf("DocumentID(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestMemDocument(t *testing.T) {
	doc := &MemDocument{
		Chars: [][]model.Char{
			{{Text: "A", Font: "Helvetica", Size: 12}},
		},
		Texts: []string{"page one text", "page two text"},
	}

	if got := doc.PageCount(); got != 2 {
		t.Errorf("PageCount = %d, want 2", got)
	}

	if chars := doc.PageChars(1); len(chars) != 1 || chars[0].Text != "A" {
		t.Errorf("PageChars(1) = %+v, want single 'A'", chars)
	}
	if chars := doc.PageChars(2); chars != nil {
		t.Errorf("PageChars(2) = %+v, want nil", chars)
	}
	if chars := doc.PageChars(0); chars != nil {
		t.Errorf("PageChars(0) = %+v, want nil", chars)
	}

	text, err := doc.PageText(2)
	if err != nil {
		t.Fatalf("PageText(2) returned error: %v", err)
	}
	if text != "page two text" {
		t.Errorf("PageText(2) = %q", text)
	}

	if _, err := doc.PageText(3); err == nil {
		t.Error("PageText(3) should fail for out-of-range page")
	}
}

// Reader must satisfy the Document capability.
var _ Document = (*Reader)(nil)
var _ Document = (*MemDocument)(nil)
