package section

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/docsift/docsift/layout"
	"github.com/docsift/docsift/model"
	"github.com/docsift/docsift/reader"
)

// ExtractorConfig holds the content cleaning options.
type ExtractorConfig struct {
	// StripPageNumbers removes bare page-number lines and "Page N" lines.
	// Default: true
	StripPageNumbers bool

	// StripURLs removes URLs and email addresses.
	// Default: true
	StripURLs bool
}

// DefaultExtractorConfig returns the standard cleaning options.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		StripPageNumbers: true,
		StripURLs:        true,
	}
}

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	pageNumberLine = regexp.MustCompile(`\n\s*\d+\s*\n`)
	pageLabelLine  = regexp.MustCompile(`(?i)\n\s*Page \d+.*?\n`)
	urlPattern     = regexp.MustCompile(`https?://[^\s]+`)
	emailPattern   = regexp.MustCompile(`\S+@\S+\.\S+`)
	blankLines     = regexp.MustCompile(`\n\s*\n`)
)

// Extractor turns an outline plus page text into content sections.
type Extractor struct {
	config ExtractorConfig
}

// NewExtractor creates a section extractor with default configuration.
func NewExtractor() *Extractor {
	return &Extractor{config: DefaultExtractorConfig()}
}

// NewExtractorWithConfig creates a section extractor with custom
// configuration.
func NewExtractorWithConfig(config ExtractorConfig) *Extractor {
	return &Extractor{config: config}
}

// Extract produces one section per outline heading. Each section's content
// runs from the heading's own position to the next heading's position, or to
// the end of the document for the last heading. When the outline is empty,
// the whole document becomes a single section titled model.FullDocumentTitle.
func (e *Extractor) Extract(doc reader.Document, docID string, outline *layout.Outline) ([]model.Section, error) {
	if outline == nil || len(outline.Headings) == 0 {
		return e.fullDocumentSection(doc, docID)
	}

	var sections []model.Section
	for i, h := range outline.Headings {
		var next *layout.Heading
		if i+1 < len(outline.Headings) {
			next = &outline.Headings[i+1]
		}

		content, err := e.sectionContent(doc, h, next)
		if err != nil {
			return nil, fmt.Errorf("extracting %q: %w", h.Text, err)
		}
		if content == "" {
			continue
		}

		sections = append(sections, model.Section{
			Document:     docID,
			SectionTitle: h.Text,
			PageNumber:   h.Page,
			Content:      content,
			HeadingLevel: h.Level.String(),
			Confidence:   h.Confidence,
			WordCount:    len(strings.Fields(content)),
		})
	}

	if len(sections) == 0 {
		return e.fullDocumentSection(doc, docID)
	}
	return sections, nil
}

// sectionContent collects the page span between two headings. On the start
// page, text before the heading's own occurrence is dropped; on the end page,
// text from the next heading's occurrence onward is dropped. A heading text
// that cannot be found on its page leaves that boundary untrimmed, so content
// is kept rather than lost.
func (e *Extractor) sectionContent(doc reader.Document, h layout.Heading, next *layout.Heading) (string, error) {
	startPage := h.Page
	endPage := doc.PageCount()
	if next != nil {
		endPage = next.Page
	}

	var parts []string
	for page := startPage; page <= endPage && page <= doc.PageCount(); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", page, err)
		}

		if page == startPage {
			if pos := strings.Index(text, h.Text); pos != -1 {
				text = text[pos+len(h.Text):]
			}
		}
		if next != nil && page == next.Page {
			if pos := strings.Index(text, next.Text); pos != -1 {
				text = text[:pos]
			}
		}

		parts = append(parts, text)
	}

	return e.clean(strings.Join(parts, " ")), nil
}

// fullDocumentSection is the zero-heading fallback: the entire document as
// one section with full confidence.
func (e *Extractor) fullDocumentSection(doc reader.Document, docID string) ([]model.Section, error) {
	var b strings.Builder
	for page := 1; page <= doc.PageCount(); page++ {
		text, err := doc.PageText(page)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	content := e.clean(b.String())
	return []model.Section{{
		Document:     docID,
		SectionTitle: model.FullDocumentTitle,
		PageNumber:   1,
		Content:      content,
		HeadingLevel: layout.Level1.String(),
		Confidence:   1.0,
		WordCount:    len(strings.Fields(content)),
	}}, nil
}

// clean normalizes extracted text: page number and label lines go first,
// then URLs and emails, then all whitespace runs collapse to single spaces.
func (e *Extractor) clean(text string) string {
	if e.config.StripPageNumbers {
		text = pageNumberLine.ReplaceAllString(text, "\n")
		text = pageLabelLine.ReplaceAllString(text, "\n")
	}
	if e.config.StripURLs {
		text = urlPattern.ReplaceAllString(text, "")
		text = emailPattern.ReplaceAllString(text, "")
	}
	text = blankLines.ReplaceAllString(text, "\n")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
