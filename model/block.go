package model

import "strings"

// Char represents a single positioned, styled character extracted from a
// PDF page. Coordinates follow the top-down convention of BBox.
type Char struct {
	// Text is the glyph text (usually one rune, possibly a ligature)
	Text string

	// Font is the PDF font name, e.g. "Helvetica-Bold"
	Font string

	// Size is the font size in points
	Size float64

	// X0, Top, X1, Bottom are the edges of the glyph's bounding box
	X0, Top, X1, Bottom float64
}

// BBox returns the character's bounding box.
func (c Char) BBox() BBox {
	return BBox{X0: c.X0, Top: c.Top, X1: c.X1, Bottom: c.Bottom}
}

// IsWhitespace reports whether the character carries no visible text.
func (c Char) IsWhitespace() bool {
	return strings.TrimSpace(c.Text) == ""
}

// TextBlock is a maximal run of characters sharing font and size with
// spatial continuity, possibly merged with adjacent compatible blocks.
// Blocks are transient: they are produced by the block builder and consumed
// by the heading classifier.
type TextBlock struct {
	// Text is the assembled block text, trimmed
	Text string

	// Font is the block's font name (majority font after merging)
	Font string

	// Size is the block's font size (majority size after merging)
	Size float64

	// BBox is the union of all member character boxes
	BBox BBox

	// Page is the 1-based page number the block appears on
	Page int

	// CharCount is the number of non-whitespace characters accumulated
	CharCount int

	// IsBold indicates the font name carries a bold marker. After merging
	// it is the OR across merged blocks.
	IsBold bool

	// IsInlineBold marks bold text that sits on the same visual line as
	// non-bold text, i.e. emphasis inside a paragraph rather than a
	// standalone bold heading.
	IsInlineBold bool
}

// WordCount returns the number of whitespace-separated words in the block.
func (b TextBlock) WordCount() int {
	return len(strings.Fields(b.Text))
}

// Length returns the length of the block text in bytes.
func (b TextBlock) Length() int {
	return len(b.Text)
}

// boldMarkers are the font-name substrings that indicate bold weight.
var boldMarkers = []string{"bold", "heavy", "black", "demi", "semibold"}

// italicMarkers are the font-name substrings that indicate italic style.
var italicMarkers = []string{"italic", "oblique"}

// BoldFont reports whether a font name indicates bold formatting.
func BoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range boldMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// ItalicFont reports whether a font name indicates italic formatting.
func ItalicFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range italicMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// FontCount pairs a font name with the number of blocks using it.
type FontCount struct {
	Font  string
	Count int
}

// DocumentStats holds per-document aggregates computed once over all blocks
// before any per-block classification decision. It is passed explicitly into
// every feature and classification call rather than held as shared state.
type DocumentStats struct {
	// AverageSize is the mean block font size
	AverageSize float64

	// MedianSize is the median block font size
	MedianSize float64

	// SizeStdDev is the standard deviation of block font sizes
	SizeStdDev float64

	// MostCommonFonts lists the most frequent fonts, descending
	MostCommonFonts []FontCount

	// BodyTextSize is the modal block size, used as the denominator for
	// all relative-size features
	BodyTextSize float64
}

// SizeVsBody returns size relative to the detected body text size.
func (s DocumentStats) SizeVsBody(size float64) float64 {
	if s.BodyTextSize <= 0 {
		return 1.0
	}
	return size / s.BodyTextSize
}
