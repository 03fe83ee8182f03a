package layout

import (
	"reflect"
	"testing"

	"github.com/docsift/docsift/model"
)

// makeBlock creates a classifiable block at a given position.
func makeBlock(text string, size float64, page int, top float64, bold bool) model.TextBlock {
	font := "Helvetica"
	if bold {
		font = "Helvetica-Bold"
	}
	return model.TextBlock{
		Text:      text,
		Font:      font,
		Size:      size,
		BBox:      model.NewBBox(72, top, 72+float64(len(text))*size*0.5, top+size),
		Page:      page,
		CharCount: len(text),
		IsBold:    bold,
	}
}

// bodyStats returns stats for a document with 11pt body text.
func bodyStats() model.DocumentStats {
	return model.DocumentStats{
		AverageSize:  11.5,
		MedianSize:   11,
		SizeStdDev:   2,
		BodyTextSize: 11,
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{Level1, "H1"},
		{Level2, "H2"},
		{Level3, "H3"},
		{LevelUnknown, "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestClassify_AllCapsLargeHeading(t *testing.T) {
	classifier := NewClassifier()

	blocks := []model.TextBlock{
		makeBlock("INTRODUCTION", 18, 1, 100, false),
	}

	outline := classifier.Classify(blocks, bodyStats())
	if len(outline.Headings) != 1 {
		t.Fatalf("expected 1 heading, got %d", len(outline.Headings))
	}

	h := outline.Headings[0]
	if h.Text != "INTRODUCTION" {
		t.Errorf("Text = %q", h.Text)
	}
	if h.Level != Level1 {
		t.Errorf("Level = %v, want H1 for the largest size tier", h.Level)
	}
	if h.Confidence < DefaultHeadingConfig().MinConfidence {
		t.Errorf("Confidence = %v, below threshold", h.Confidence)
	}
	if outline.Title != "INTRODUCTION" {
		t.Errorf("Title = %q", outline.Title)
	}
}

func TestClassify_BodyTextRejected(t *testing.T) {
	classifier := NewClassifier()

	blocks := []model.TextBlock{
		makeBlock("The results were consistent with the previous study and are described below.", 11, 1, 100, false),
	}

	outline := classifier.Classify(blocks, bodyStats())
	if len(outline.Headings) != 0 {
		t.Fatalf("body text classified as heading: %+v", outline.Headings)
	}
	if outline.Title != "" {
		t.Errorf("Title = %q, want empty", outline.Title)
	}
}

func TestClassify_InlineBoldNeverSurvives(t *testing.T) {
	classifier := NewClassifier()

	inline := makeBlock("Methodology", 14, 1, 100, true)
	inline.IsInlineBold = true

	outline := classifier.Classify([]model.TextBlock{inline}, bodyStats())
	if len(outline.Headings) != 0 {
		t.Fatal("inline bold block must be hard-rejected")
	}

	if !classifier.DefinitelyNotHeading(inline, bodyStats()) {
		t.Error("DefinitelyNotHeading must reject inline bold")
	}
}

func TestConfidence_InlineBoldPenalty(t *testing.T) {
	classifier := NewClassifier()
	stats := bodyStats()

	standalone := makeBlock("Methodology", 14, 1, 100, true)
	inline := standalone
	inline.IsInlineBold = true

	// The penalty path stays live even though Phase A rejects inline
	// bold before scoring.
	diff := classifier.Confidence(standalone, stats) - classifier.Confidence(inline, stats)
	if diff != float64(scoreStandaloneBold-scoreInlineBold) {
		t.Errorf("bold score spread = %v, want %d", diff, scoreStandaloneBold-scoreInlineBold)
	}
}

func TestClassify_LevelsFollowSizeTiers(t *testing.T) {
	classifier := NewClassifier()

	blocks := []model.TextBlock{
		makeBlock("DOCUMENT TITLE", 20, 1, 50, false),
		makeBlock("Major Section", 16, 1, 120, true),
		makeBlock("Minor Subsection", 13, 1, 300, true),
		makeBlock("Deeper Heading", 12.5, 2, 80, true),
	}

	outline := classifier.Classify(blocks, bodyStats())
	if len(outline.Headings) != 4 {
		t.Fatalf("expected 4 headings, got %d: %+v", len(outline.Headings), outline.Headings)
	}

	wantLevels := []Level{Level1, Level2, Level3, Level3}
	for i, h := range outline.Headings {
		if h.Level != wantLevels[i] {
			t.Errorf("heading %q level = %v, want %v", h.Text, h.Level, wantLevels[i])
		}
	}
}

func TestClassify_OrderedByPageAndPosition(t *testing.T) {
	classifier := NewClassifier()

	blocks := []model.TextBlock{
		makeBlock("Results Overview", 16, 2, 400, true),
		makeBlock("BACKGROUND", 16, 1, 500, false),
		makeBlock("ABSTRACT", 16, 1, 100, false),
	}

	outline := classifier.Classify(blocks, bodyStats())
	if len(outline.Headings) != 3 {
		t.Fatalf("expected 3 headings, got %d", len(outline.Headings))
	}

	var got []string
	for _, h := range outline.Headings {
		got = append(got, h.Text)
	}
	want := []string{"ABSTRACT", "BACKGROUND", "Results Overview"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if outline.Title != "ABSTRACT" {
		t.Errorf("Title = %q, want first heading in document order", outline.Title)
	}
}

func TestClassify_Deduplication(t *testing.T) {
	classifier := NewClassifier()

	blocks := []model.TextBlock{
		makeBlock("Financial Highlights", 16, 1, 100, true),
		makeBlock("Financial Highlights", 16, 3, 100, true),
		// Substring of an existing heading.
		makeBlock("Financial", 16, 5, 100, true),
	}

	outline := classifier.Classify(blocks, bodyStats())
	if len(outline.Headings) != 1 {
		t.Fatalf("expected 1 heading after deduplication, got %d", len(outline.Headings))
	}
}

func TestClassify_Idempotent(t *testing.T) {
	classifier := NewClassifier()

	blocks := []model.TextBlock{
		makeBlock("INTRODUCTION", 18, 1, 100, false),
		makeBlock("Major Section", 14, 2, 200, true),
		makeBlock("CONCLUSION", 18, 4, 600, false),
	}
	stats := bodyStats()

	first := classifier.Classify(blocks, stats)
	second := classifier.Classify(blocks, stats)
	if !reflect.DeepEqual(first, second) {
		t.Error("classification must be deterministic")
	}
}

func TestValidate_ShortBoldMustBeLeftAligned(t *testing.T) {
	classifier := NewClassifier()

	centered := makeBlock("Summary", 16, 1, 100, true)
	centered.BBox.X0 = 250
	centered.BBox.X1 = 320

	outline := classifier.Classify([]model.TextBlock{centered}, bodyStats())
	if len(outline.Headings) != 0 {
		t.Error("short bold block away from the left margin must not qualify")
	}

	left := makeBlock("Summary", 16, 1, 100, true)
	outline = classifier.Classify([]model.TextBlock{left}, bodyStats())
	if len(outline.Headings) != 1 {
		t.Error("short bold block at the left margin should qualify")
	}
}

func TestDefinitelyNotHeading(t *testing.T) {
	classifier := NewClassifier()
	stats := bodyStats()

	tests := []struct {
		name  string
		block model.TextBlock
		want  bool
	}{
		{"too short", makeBlock("A", 18, 1, 100, false), true},
		{"bare page number", makeBlock("42", 12, 1, 700, false), true},
		{"page reference", makeBlock("Page 12", 12, 1, 700, false), true},
		{"url", makeBlock("see www.example.com for details", 12, 1, 100, false), true},
		{"multiple sentences", makeBlock("First point. Second point. Third.", 14, 1, 100, false), true},
		{"requirement sentence", makeBlock("4 credits of Mathematics", 12, 1, 100, false), true},
		{"quoted text", makeBlock(`He called it "remarkable"`, 12, 1, 100, false), true},
		{"below body size", makeBlock("Footnote text", 9, 1, 100, false), true},
		{"bullet item", makeBlock("- first item in the list", 12, 1, 100, false), true},
		{"valid candidate", makeBlock("Reaction Kinetics", 16, 1, 100, true), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifier.DefinitelyNotHeading(tt.block, stats); got != tt.want {
				t.Errorf("DefinitelyNotHeading(%q) = %v, want %v", tt.block.Text, got, tt.want)
			}
		})
	}
}

func TestSimilarHeadings(t *testing.T) {
	classifier := NewClassifier()

	tests := []struct {
		a, b string
		want bool
	}{
		{"introduction", "introduction", true},
		{"introduction", "introductions", true}, // near-equal length, high overlap
		{"results", "results overview", true},   // substring
		{"background", "methodology", false},
	}

	for _, tt := range tests {
		if got := classifier.similarHeadings(tt.a, tt.b); got != tt.want {
			t.Errorf("similarHeadings(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestIsTitleCase(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Financial Highlights", true},
		{"Financial highlights", false},
		{"INTRODUCTION", false},
		{"Reaction Kinetics And Mechanisms", true},
		{"", false},
	}
	for _, tt := range tests {
		if got := isTitleCase(tt.text); got != tt.want {
			t.Errorf("isTitleCase(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestIsAllCaps(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"INTRODUCTION", true},
		{"SECTION 2", true},
		{"Introduction", false},
		{"AB", false}, // too short
	}
	for _, tt := range tests {
		if got := isAllCaps(tt.text); got != tt.want {
			t.Errorf("isAllCaps(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}
