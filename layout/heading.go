package layout

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/docsift/docsift/model"
)

// Level represents the outline level of a heading (H1-H3).
type Level int

const (
	LevelUnknown Level = iota
	Level1             // H1 - document title / chapter
	Level2             // H2 - major section
	Level3             // H3 - subsection and below
)

// String returns the conventional level label.
func (l Level) String() string {
	switch l {
	case Level1:
		return "H1"
	case Level2:
		return "H2"
	case Level3:
		return "H3"
	default:
		return "unknown"
	}
}

// Heading is a text block that survived classification, with its assigned
// outline level and confidence score.
type Heading struct {
	// Text is the heading text
	Text string

	// Level is the assigned outline level
	Level Level

	// Page is the 1-based page number
	Page int

	// Y is the vertical position (top edge) on the page
	Y float64

	// Size is the block font size
	Size float64

	// Font is the block font name
	Font string

	// IsBold indicates standalone bold formatting
	IsBold bool

	// Confidence is the final additive score (can exceed the threshold
	// by an arbitrary margin; never below it for emitted headings)
	Confidence float64

	// WordCount is the number of words in Text
	WordCount int
}

// Outline is the ordered heading structure of one document. Headings are
// sorted strictly by (page, vertical position) ascending.
type Outline struct {
	// Title is the text of the first heading in document order, or ""
	// when no headings survived classification
	Title string

	// Headings are the surviving headings in document order
	Headings []Heading
}

// HeadingConfig holds the thresholds of the two-phase heading filter.
type HeadingConfig struct {
	// MinTextLen rejects blocks shorter than this many characters.
	// Default: 2
	MinTextLen int

	// MaxTextLen rejects blocks longer than this many characters.
	// Default: 120
	MaxTextLen int

	// MinSizeVsBody rejects blocks smaller than this fraction of the
	// body text size.
	// Default: 0.9
	MinSizeVsBody float64

	// MaxArticleDensity rejects blocks whose article/preposition share of
	// words exceeds this fraction, once the block has more than
	// ArticleDensityMinWords words.
	// Defaults: 0.4 and 3
	MaxArticleDensity      float64
	ArticleDensityMinWords int

	// LargeSizeRatio and ModerateSizeRatio are the size-vs-body cutoffs
	// for the two size bonuses.
	// Defaults: 1.3 and 1.15
	LargeSizeRatio    float64
	ModerateSizeRatio float64

	// MinConfidence is the score a candidate must reach to enter the
	// outline.
	// Default: 7
	MinConfidence float64

	// LeftAlignMaxX is the maximum x-position for a block to count as
	// left-aligned, required of very short bold headings.
	// Default: 100
	LeftAlignMaxX float64

	// ShortBoldMaxWords is the word count at or under which a bold
	// candidate must be left-aligned.
	// Default: 2
	ShortBoldMaxWords int

	// SimilarityThreshold is the character-level similarity above which
	// two near-equal-length headings are duplicates.
	// Default: 0.8
	SimilarityThreshold float64

	// MaxLevels caps the number of distinct outline levels; further size
	// tiers collapse into the last level.
	// Default: 3
	MaxLevels int
}

// DefaultHeadingConfig returns the standard thresholds.
func DefaultHeadingConfig() HeadingConfig {
	return HeadingConfig{
		MinTextLen:             2,
		MaxTextLen:             120,
		MinSizeVsBody:          0.9,
		MaxArticleDensity:      0.4,
		ArticleDensityMinWords: 3,
		LargeSizeRatio:         1.3,
		ModerateSizeRatio:      1.15,
		MinConfidence:          7,
		LeftAlignMaxX:          100,
		ShortBoldMaxWords:      2,
		SimilarityThreshold:    0.8,
		MaxLevels:              3,
	}
}

// Confidence score contributions. The classifier is purely additive; the
// sum is compared against HeadingConfig.MinConfidence.
const (
	scoreLargeSize       = 5
	scoreModerateSize    = 3
	scoreStandaloneBold  = 4
	scoreInlineBold      = -6
	scoreHeadingPattern  = 4
	scoreGoodLength      = 2
	scoreOkLength        = 1
	scoreBadLength       = -2
	scoreGoodWordCount   = 2
	scoreTooManyWords    = -3
	scoreEndsWithColon   = 2
	scoreNumberedStart   = 3
	scoreTitleCase       = 2
	scoreAllCaps         = 2
	scoreArticlesShort   = -2
	scoreArticlesLong    = -4
	scoreConjunctions    = -3
	scoreMultiSentence   = -5
	scoreStrayPeriods    = -3
	scoreCommonWords     = -2
	scoreSuspiciousBold  = -3
	goodLengthMin        = 3
	goodLengthMax        = 50
	okLengthMax          = 80
	goodWordCountMax     = 8
	tooManyWordsMin      = 15
	titleCaseMaxWords    = 10
	allCapsMaxLen        = 40
	articlesShortMax     = 5
	commonWordMaxShare   = 0.3
	suspiciousBoldMaxLen = 10
)

var (
	requirementPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^\d+\s+credits?\s+of\s+\w+`),
		regexp.MustCompile(`(?i)^\d+\s+hours?\s+of\s+\w+`),
		regexp.MustCompile(`(?i)^\d+\s+units?\s+of\s+\w+`),
		regexp.MustCompile(`(?i)^\d+\s+semesters?\s+of\s+\w+`),
		regexp.MustCompile(`(?i)^\d+\s+(credit|hour|unit|semester|year)s?\s+(in|of|from)`),
		regexp.MustCompile(`(?i)at least \d+.*course`),
		regexp.MustCompile(`(?i)minimum.*\d+.*(credit|hour|unit)`),
		regexp.MustCompile(`(?i)should be an? (AP|advanced|honors)`),
		regexp.MustCompile(`(?i)must (include|contain|have)`),
		regexp.MustCompile(`(?i)grade.*\d+.*or (higher|above)`),
	}

	bodyIndicatorPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(said|says|according|reported|stated|mentioned|explained|described|noted|observed)\b`),
		regexp.MustCompile(`(?i)\b(however|therefore|moreover|furthermore|additionally|consequently|meanwhile|nevertheless)\b`),
		regexp.MustCompile(`(?i)\b(the|a|an)\s+(following|previous|next|above|below|first|second|third|last)\b`),
		regexp.MustCompile(`(?i)\b(in order to|as well as|such as|for example|for instance|in addition|in contrast)\b`),
		regexp.MustCompile(`(?i)\b(it is|there is|there are|this is|that is|these are|those are)\b`),
		regexp.MustCompile(`(?i)\b(can be|will be|has been|have been|was|were|are|is)\s+\w+ed\b`),
		regexp.MustCompile(`\([^)]*\)`),
		regexp.MustCompile(`^\s*[-•·]\s+`),
	}

	headingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^(Chapter|Section|Part|Appendix|Introduction|Conclusion|Summary|Abstract|Overview|Background|Methodology|Results|Discussion|References|Bibliography)\b`),
		regexp.MustCompile(`^\d+[.)]\s*[A-Z]`),
		regexp.MustCompile(`^[A-Z][A-Z\s]{3,25}$`),
		regexp.MustCompile(`^[A-Z][a-z]+(\s+[A-Z][a-z]+){0,4}$`),
	}

	bodyPhrasePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)as shown in`),
		regexp.MustCompile(`(?i)according to`),
		regexp.MustCompile(`(?i)it should be noted`),
		regexp.MustCompile(`(?i)in this section`),
		regexp.MustCompile(`(?i)as described`),
		regexp.MustCompile(`(?i)for example`),
		regexp.MustCompile(`(?i)such as`),
		regexp.MustCompile(`(?i)in order to`),
	}

	citationPattern     = regexp.MustCompile(`\[\d+\]|\(\d+\)`)
	articleDensityWords = regexp.MustCompile(`(?i)\b(the|a|an|this|that|these|those|in|on|at|by|for|with|from|to|of)\b`)
	articleWords        = regexp.MustCompile(`(?i)\b(the|a|an|this|that|these|those)\b`)
	conjunctionWords    = regexp.MustCompile(`(?i)\b(and|or|but|however|therefore|because|since|while|although)\b`)
	commonWords         = regexp.MustCompile(`(?i)\b(the|a|an|and|or|but|in|on|at|by|for|with|from|to|of|is|are|was|were|be|been|being|have|has|had|do|does|did|will|would|could|should|may|might|can)\b`)
	subjectVerbPattern  = regexp.MustCompile(`(?i)\b(is|are|was|were|has|have|had|will|would|could|should|may|might|can)\s+\w+`)
	captionPattern      = regexp.MustCompile(`(?i)^(figure|table|chart|graph|image|photo|diagram)\s+\d+`)
	barePageNumber      = regexp.MustCompile(`^\s*\d+\s*$`)
	pageReference       = regexp.MustCompile(`(?i)^(page|p\.)\s*\d+`)
	urlOrEmail          = regexp.MustCompile(`(?i)(http|www\.|@|\.com|\.org|\.edu|\.gov)`)
	numberedStart       = regexp.MustCompile(`^\d+[.)\s]`)
)

// Classifier scores text blocks against document statistics and produces
// the document outline.
type Classifier struct {
	config HeadingConfig
}

// NewClassifier creates a heading classifier with default configuration.
func NewClassifier() *Classifier {
	return &Classifier{config: DefaultHeadingConfig()}
}

// NewClassifierWithConfig creates a heading classifier with custom
// configuration.
func NewClassifierWithConfig(config HeadingConfig) *Classifier {
	return &Classifier{config: config}
}

// candidate pairs a block with its confidence score during classification.
type candidate struct {
	block model.TextBlock
	score float64
}

// Classify runs the two-phase filter over all blocks of a document and
// returns the final outline. The algorithm is deterministic: identical
// input always yields an identical outline.
func (c *Classifier) Classify(blocks []model.TextBlock, stats model.DocumentStats) *Outline {
	var candidates []candidate

	for _, b := range blocks {
		if c.DefinitelyNotHeading(b, stats) {
			continue
		}

		score := c.Confidence(b, stats)
		if score < c.config.MinConfidence {
			continue
		}
		if !c.validate(b) {
			continue
		}
		candidates = append(candidates, candidate{block: b, score: score})
	}

	// Strongest candidates claim their text first during deduplication.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		if candidates[i].block.Size != candidates[j].block.Size {
			return candidates[i].block.Size > candidates[j].block.Size
		}
		if candidates[i].block.Page != candidates[j].block.Page {
			return candidates[i].block.Page < candidates[j].block.Page
		}
		return candidates[i].block.BBox.Top < candidates[j].block.BBox.Top
	})

	candidates = c.dedupe(candidates)

	headings := c.assignLevels(candidates)

	sort.SliceStable(headings, func(i, j int) bool {
		if headings[i].Page != headings[j].Page {
			return headings[i].Page < headings[j].Page
		}
		return headings[i].Y < headings[j].Y
	})

	outline := &Outline{Headings: headings}
	if len(headings) > 0 {
		outline.Title = headings[0].Text
	}
	return outline
}

// DefinitelyNotHeading is the Phase A hard filter: any match disqualifies
// the block before scoring.
func (c *Classifier) DefinitelyNotHeading(b model.TextBlock, stats model.DocumentStats) bool {
	text := strings.TrimSpace(b.Text)

	if b.IsInlineBold {
		return true
	}

	if len(text) < c.config.MinTextLen {
		return true
	}

	if len(text) > c.config.MaxTextLen {
		return true
	}

	if sentenceTerminators(text) > 1 {
		return true
	}

	for _, p := range requirementPatterns {
		if p.MatchString(text) {
			return true
		}
	}

	for _, p := range bodyIndicatorPatterns {
		if p.MatchString(text) {
			return true
		}
	}

	if strings.ContainsAny(text, `"'`) || citationPattern.MatchString(text) {
		return true
	}

	if b.Size < stats.BodyTextSize*c.config.MinSizeVsBody {
		return true
	}

	words := len(strings.Fields(text))
	if words > c.config.ArticleDensityMinWords {
		density := float64(len(articleDensityWords.FindAllString(text, -1))) / float64(words)
		if density > c.config.MaxArticleDensity {
			return true
		}
	}

	if barePageNumber.MatchString(text) || pageReference.MatchString(text) {
		return true
	}

	if urlOrEmail.MatchString(text) {
		return true
	}

	return false
}

// Confidence is the Phase B additive score for a block that survived the
// hard filter.
func (c *Classifier) Confidence(b model.TextBlock, stats model.DocumentStats) float64 {
	text := strings.TrimSpace(b.Text)
	words := len(strings.Fields(text))
	score := 0.0

	sizeVsBody := stats.SizeVsBody(b.Size)
	if sizeVsBody >= c.config.LargeSizeRatio {
		score += scoreLargeSize
	} else if sizeVsBody >= c.config.ModerateSizeRatio {
		score += scoreModerateSize
	}

	// Inline bold is already hard-rejected in Phase A; the penalty stays
	// so a direct caller of Confidence sees the same ordering.
	if b.IsBold {
		if b.IsInlineBold {
			score += scoreInlineBold
		} else {
			score += scoreStandaloneBold
		}
	}

	if matchesHeadingPattern(text) {
		score += scoreHeadingPattern
	}

	switch {
	case len(text) >= goodLengthMin && len(text) <= goodLengthMax:
		score += scoreGoodLength
	case len(text) > goodLengthMax && len(text) <= okLengthMax:
		score += scoreOkLength
	default:
		score += scoreBadLength
	}

	if words >= 1 && words <= goodWordCountMax {
		score += scoreGoodWordCount
	} else if words > tooManyWordsMin {
		score += scoreTooManyWords
	}

	if strings.HasSuffix(strings.TrimRight(text, " "), ":") {
		score += scoreEndsWithColon
	}

	if numberedStart.MatchString(text) {
		score += scoreNumberedStart
	}

	if isTitleCase(text) && words <= titleCaseMaxWords {
		score += scoreTitleCase
	}

	if isAllCaps(text) && len(text) <= allCapsMaxLen {
		score += scoreAllCaps
	}

	if articleWords.MatchString(text) {
		if words <= articlesShortMax {
			score += scoreArticlesShort
		} else {
			score += scoreArticlesLong
		}
	}

	if conjunctionWords.MatchString(text) {
		score += scoreConjunctions
	}

	if sentenceTerminators(text) > 1 {
		score += scoreMultiSentence
	}

	periods := strings.Count(text, ".")
	if periods > 1 || (periods == 1 && !strings.HasSuffix(text, ".")) {
		score += scoreStrayPeriods
	}

	common := len(commonWords.FindAllString(text, -1))
	if words > 0 && float64(common) > float64(words)*commonWordMaxShare {
		score += scoreCommonWords
	}

	if b.IsBold && len(text) < suspiciousBoldMaxLen && !matchesHeadingPattern(text) {
		score += scoreSuspiciousBold
	}

	return score
}

// validate applies the final edge-case checks to a candidate that already
// met the confidence threshold.
func (c *Classifier) validate(b model.TextBlock) bool {
	text := strings.TrimSpace(b.Text)

	if b.IsInlineBold {
		return false
	}

	// A subject-verb pair means a sentence, not a heading.
	if subjectVerbPattern.MatchString(text) {
		return false
	}

	for _, p := range bodyPhrasePatterns {
		if p.MatchString(text) {
			return false
		}
	}

	if captionPattern.MatchString(text) {
		return false
	}

	if b.IsBold && b.WordCount() <= c.config.ShortBoldMaxWords && b.BBox.X0 >= c.config.LeftAlignMaxX {
		return false
	}

	return true
}

// dedupe collapses candidates with identical or near-identical text, keeping
// the earliest in the current (strongest-first) order.
func (c *Classifier) dedupe(candidates []candidate) []candidate {
	var kept []candidate
	var seen []string

	for _, cand := range candidates {
		text := strings.ToLower(strings.TrimSpace(cand.block.Text))

		duplicate := false
		for _, s := range seen {
			if text == s || c.similarHeadings(text, s) {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		seen = append(seen, text)
		kept = append(kept, cand)
	}

	return kept
}

// similarHeadings reports whether two normalized heading texts are close
// enough to be duplicates: high positional character overlap at near-equal
// lengths, or a substring relationship.
func (c *Classifier) similarHeadings(a, b string) bool {
	if absInt(len(a)-len(b)) <= 2 {
		n := len(a)
		if len(b) < n {
			n = len(b)
		}
		common := 0
		for i := 0; i < n; i++ {
			if a[i] == b[i] {
				common++
			}
		}
		longest := len(a)
		if len(b) > longest {
			longest = len(b)
		}
		if longest > 0 && float64(common)/float64(longest) > c.config.SimilarityThreshold {
			return true
		}
	}

	return strings.Contains(a, b) || strings.Contains(b, a)
}

// assignLevels maps the distinct candidate sizes, descending, onto H1-H3;
// any size tier past MaxLevels collapses into the last level.
func (c *Classifier) assignLevels(candidates []candidate) []Heading {
	if len(candidates) == 0 {
		return nil
	}

	sizeSet := make(map[float64]bool)
	var sizes []float64
	for _, cand := range candidates {
		if !sizeSet[cand.block.Size] {
			sizeSet[cand.block.Size] = true
			sizes = append(sizes, cand.block.Size)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	levelBySize := make(map[float64]Level)
	for i, size := range sizes {
		level := Level(i + 1)
		if int(level) > c.config.MaxLevels {
			level = Level(c.config.MaxLevels)
		}
		levelBySize[size] = level
	}

	headings := make([]Heading, 0, len(candidates))
	for _, cand := range candidates {
		headings = append(headings, Heading{
			Text:       strings.TrimSpace(cand.block.Text),
			Level:      levelBySize[cand.block.Size],
			Page:       cand.block.Page,
			Y:          cand.block.BBox.Top,
			Size:       cand.block.Size,
			Font:       cand.block.Font,
			IsBold:     cand.block.IsBold,
			Confidence: cand.score,
			WordCount:  cand.block.WordCount(),
		})
	}
	return headings
}

// matchesHeadingPattern reports whether text matches one of the canonical
// heading shapes (structural keyword, numbered section, short all-caps,
// modest title case).
func matchesHeadingPattern(text string) bool {
	for _, p := range headingPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// sentenceTerminators counts '.', '!' and '?' occurrences.
func sentenceTerminators(text string) int {
	return strings.Count(text, ".") + strings.Count(text, "!") + strings.Count(text, "?")
}

// isTitleCase reports whether every cased word starts with an uppercase
// letter followed by non-uppercase letters.
func isTitleCase(text string) bool {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return false
	}

	sawCased := false
	for _, word := range fields {
		prevCased := false
		for _, r := range word {
			if unicode.IsUpper(r) {
				if prevCased {
					return false
				}
				sawCased = true
				prevCased = true
			} else if unicode.IsLower(r) {
				if !prevCased {
					return false
				}
				sawCased = true
			} else {
				prevCased = false
			}
		}
	}
	return sawCased
}

// isAllCaps reports whether text longer than two characters has cased
// letters and none of them lowercase.
func isAllCaps(text string) bool {
	if len(text) <= 2 {
		return false
	}

	sawUpper := false
	for _, r := range text {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			sawUpper = true
		}
	}
	return sawUpper
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
