package reader

import (
	"fmt"
	"os"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docsift/docsift/model"
)

// defaultPageHeight is used when a page carries no resolvable MediaBox
// (US Letter, in points).
const defaultPageHeight = 792.0

// Document supplies page content to the pipeline. Pages are 1-based.
type Document interface {
	// PageCount returns the number of pages in the document.
	PageCount() int

	// PageChars returns the positioned, styled characters of a page in
	// extraction order. An unreadable page yields no characters.
	PageChars(page int) []model.Char

	// PageText returns the plain text of a page in reading order.
	PageText(page int) (string, error)
}

// Reader opens a PDF file and exposes it as a Document.
type Reader struct {
	file   *os.File
	reader *pdflib.Reader
	path   string
}

// Open opens a PDF file for reading. The returned Reader must be closed.
func Open(path string) (*Reader, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	return &Reader{file: f, reader: r, path: path}, nil
}

// Close releases the underlying file.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Path returns the file path the reader was opened with.
func (r *Reader) Path() string {
	return r.path
}

// PageCount returns the number of pages.
func (r *Reader) PageCount() int {
	return r.reader.NumPage()
}

// PageChars extracts positioned characters from a page. Positions are
// converted from PDF bottom-up coordinates to the top-down convention used
// by model.BBox.
func (r *Reader) PageChars(page int) []model.Char {
	p := r.reader.Page(page)
	if p.V.IsNull() {
		return nil
	}

	pageHeight := r.pageHeight(p)

	content := p.Content()
	chars := make([]model.Char, 0, len(content.Text))
	for _, t := range content.Text {
		// The glyph box is approximated from the baseline and font size;
		// the library reports no per-glyph ascent or descent.
		chars = append(chars, model.Char{
			Text:   t.S,
			Font:   t.Font,
			Size:   t.FontSize,
			X0:     t.X,
			X1:     t.X + t.W,
			Top:    pageHeight - t.Y - t.FontSize,
			Bottom: pageHeight - t.Y,
		})
	}
	return chars
}

// PageText returns the plain text of a page.
func (r *Reader) PageText(page int) (string, error) {
	p := r.reader.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d of %s: missing page object", page, r.path)
	}

	text, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("page %d of %s: %w", page, r.path, err)
	}
	return text, nil
}

// pageHeight resolves the page height from the MediaBox, falling back to
// US Letter when absent.
func (r *Reader) pageHeight(p pdflib.Page) float64 {
	box := p.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}
	height := box.Index(3).Float64() - box.Index(1).Float64()
	if height <= 0 {
		return defaultPageHeight
	}
	return height
}

// DocumentID derives the document identifier used in output records from a
// file path: the base name without its .pdf extension.
func DocumentID(path string) string {
	base := path
	if idx := strings.LastIndexAny(base, "/\\"); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(strings.TrimSuffix(base, ".pdf"), ".PDF")
}
