package reader

import (
	"fmt"

	"github.com/docsift/docsift/model"
)

// MemDocument is an in-memory Document implementation used in tests and by
// callers that already hold extracted content.
type MemDocument struct {
	// Chars holds the characters of each page, index 0 = page 1
	Chars [][]model.Char

	// Texts holds the plain text of each page, index 0 = page 1
	Texts []string
}

// PageCount returns the number of pages.
func (d *MemDocument) PageCount() int {
	if len(d.Texts) > len(d.Chars) {
		return len(d.Texts)
	}
	return len(d.Chars)
}

// PageChars returns the characters of a page, or nil when out of range.
func (d *MemDocument) PageChars(page int) []model.Char {
	if page < 1 || page > len(d.Chars) {
		return nil
	}
	return d.Chars[page-1]
}

// PageText returns the text of a page.
func (d *MemDocument) PageText(page int) (string, error) {
	if page < 1 || page > len(d.Texts) {
		return "", fmt.Errorf("page %d out of range (1..%d)", page, len(d.Texts))
	}
	return d.Texts[page-1], nil
}
