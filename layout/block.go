package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/docsift/docsift/model"
)

// BlockConfig holds the spatial tolerances for grouping characters into
// blocks and merging adjacent blocks.
type BlockConfig struct {
	// LineTolerance is the maximum vertical-center distance (points) for a
	// character to continue the current block's line.
	// Default: 2
	LineTolerance float64

	// GapTolerance is the maximum horizontal gap (points) between the
	// block's right edge and the next character.
	// Default: 5
	GapTolerance float64

	// MergeSizeRatio is the maximum size ratio between two blocks for the
	// merge pass to combine them.
	// Default: 1.2
	MergeSizeRatio float64

	// MergeShortTextLen bounds the text length under which a bold/non-bold
	// mismatch still allows merging. Longer mismatched blocks stay apart
	// so standalone bold headings are not swallowed by body text.
	// Default: 15
	MergeShortTextLen int

	// MergeLineTolerance is the maximum vertical-center distance (points)
	// for the merge pass to treat two blocks as the same line.
	// Default: 3
	MergeLineTolerance float64

	// MergeMaxGap is the maximum horizontal gap (points) between two
	// blocks for the merge pass. Negative gaps (overlap) do not merge.
	// Default: 20
	MergeMaxGap float64

	// InlineBoldLineTolerance is the maximum vertical-center distance
	// (points) for a non-bold block to count as sharing a visual line
	// with a bold block.
	// Default: 5
	InlineBoldLineTolerance float64

	// InlineBoldGapTolerance is the maximum horizontal gap (points) on
	// either side for a neighboring block to count as adjacent when
	// tagging inline bold.
	// Default: 15
	InlineBoldGapTolerance float64
}

// DefaultBlockConfig returns the standard tolerances.
func DefaultBlockConfig() BlockConfig {
	return BlockConfig{
		LineTolerance:           2.0,
		GapTolerance:            5.0,
		MergeSizeRatio:          1.2,
		MergeShortTextLen:       15,
		MergeLineTolerance:      3.0,
		MergeMaxGap:             20.0,
		InlineBoldLineTolerance: 5.0,
		InlineBoldGapTolerance:  15.0,
	}
}

// BlockBuilder groups positioned characters into formatted text blocks.
type BlockBuilder struct {
	config BlockConfig
}

// NewBlockBuilder creates a block builder with default configuration.
func NewBlockBuilder() *BlockBuilder {
	return &BlockBuilder{config: DefaultBlockConfig()}
}

// NewBlockBuilderWithConfig creates a block builder with custom configuration.
func NewBlockBuilderWithConfig(config BlockConfig) *BlockBuilder {
	return &BlockBuilder{config: config}
}

// BuildPage groups a page's characters into blocks, merges adjacent
// same-line blocks of compatible formatting, and tags inline bold.
func (b *BlockBuilder) BuildPage(chars []model.Char, page int) []model.TextBlock {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]model.Char, len(chars))
	copy(sorted, chars)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti := roundTenth(sorted[i].Top)
		tj := roundTenth(sorted[j].Top)
		if ti != tj {
			return ti < tj
		}
		return sorted[i].X0 < sorted[j].X0
	})

	blocks := b.accumulate(sorted, page)
	blocks = b.mergeNearby(blocks)
	b.tagInlineBold(blocks)
	return blocks
}

// accumulate runs same-format characters into blocks.
func (b *BlockBuilder) accumulate(chars []model.Char, page int) []model.TextBlock {
	var blocks []model.TextBlock

	current := model.TextBlock{Page: page, BBox: model.EmptyBBox()}

	flush := func() {
		if current.CharCount > 0 && strings.TrimSpace(current.Text) != "" {
			current.Text = strings.TrimSpace(current.Text)
			current.IsBold = model.BoldFont(current.Font)
			blocks = append(blocks, current)
		}
		current = model.TextBlock{Page: page, BBox: model.EmptyBBox()}
	}

	for _, c := range chars {
		// Whitespace joins the running text but never opens a block and
		// never participates in format or continuity checks.
		if c.IsWhitespace() {
			if current.Text != "" {
				current.Text += c.Text
			}
			continue
		}

		size := roundTenth(c.Size)
		sameFormat := c.Font == current.Font && size == current.Size

		continuous := false
		if current.CharCount > 0 {
			yDiff := math.Abs(c.BBox().VCenter() - current.BBox.VCenter())
			xDiff := c.X0 - current.BBox.X1
			continuous = yDiff <= b.config.LineTolerance && xDiff <= b.config.GapTolerance
		}

		if current.CharCount > 0 && (!sameFormat || !continuous) {
			flush()
		}

		current.Text += c.Text
		current.Font = c.Font
		current.Size = size
		current.CharCount++
		current.BBox = current.BBox.Union(c.BBox())
	}

	flush()
	return blocks
}

// mergeNearby combines runs of adjacent blocks that belong to the same
// visual span: same line, compatible sizes, close horizontally.
func (b *BlockBuilder) mergeNearby(blocks []model.TextBlock) []model.TextBlock {
	if len(blocks) <= 1 {
		return blocks
	}

	var merged []model.TextBlock
	group := []model.TextBlock{blocks[0]}

	for i := 1; i < len(blocks); i++ {
		if b.shouldMerge(group[len(group)-1], blocks[i]) {
			group = append(group, blocks[i])
		} else {
			merged = append(merged, b.mergeGroup(group))
			group = []model.TextBlock{blocks[i]}
		}
	}
	merged = append(merged, b.mergeGroup(group))

	return merged
}

// shouldMerge decides whether two consecutive blocks form one span.
func (b *BlockBuilder) shouldMerge(prev, next model.TextBlock) bool {
	small, large := prev.Size, next.Size
	if small > large {
		small, large = large, small
	}
	if small <= 0 || large/small > b.config.MergeSizeRatio {
		return false
	}

	// A bold/plain mismatch only merges when both runs are short; long
	// mismatched runs are a heading next to body text.
	if prev.IsBold != next.IsBold {
		if len(prev.Text) > b.config.MergeShortTextLen || len(next.Text) > b.config.MergeShortTextLen {
			return false
		}
	}

	yDiff := math.Abs(prev.BBox.VCenter() - next.BBox.VCenter())
	xGap := next.BBox.X0 - prev.BBox.X1

	return yDiff <= b.config.MergeLineTolerance && xGap >= 0 && xGap <= b.config.MergeMaxGap
}

// mergeGroup collapses a run of blocks into one, keeping the majority font
// and size and OR-reducing bold.
func (b *BlockBuilder) mergeGroup(group []model.TextBlock) model.TextBlock {
	if len(group) == 1 {
		return group[0]
	}

	sort.SliceStable(group, func(i, j int) bool {
		return group[i].BBox.X0 < group[j].BBox.X0
	})

	merged := group[0]
	merged.Text = ""
	merged.CharCount = 0
	merged.BBox = model.EmptyBBox()

	fontCounts := make(map[string]int)
	sizeCounts := make(map[float64]int)
	bold := false

	for i, blk := range group {
		if i > 0 {
			merged.Text += " "
		}
		merged.Text += blk.Text
		merged.CharCount += blk.CharCount
		merged.BBox = merged.BBox.Union(blk.BBox)
		fontCounts[blk.Font]++
		sizeCounts[blk.Size]++
		bold = bold || blk.IsBold
	}

	merged.Font = majorityFont(group, fontCounts)
	merged.Size = majoritySize(group, sizeCounts)
	merged.IsBold = bold
	return merged
}

// tagInlineBold marks bold blocks that sit on the same visual line as a
// horizontally adjacent non-bold block. Inline emphasis inside body text
// would otherwise masquerade as a bold heading.
func (b *BlockBuilder) tagInlineBold(blocks []model.TextBlock) {
	for i := range blocks {
		blocks[i].IsInlineBold = false
		if !blocks[i].IsBold {
			continue
		}

		for j := range blocks {
			if i == j || blocks[j].IsBold {
				continue
			}

			yDiff := math.Abs(blocks[i].BBox.VCenter() - blocks[j].BBox.VCenter())
			if yDiff > b.config.InlineBoldLineTolerance {
				continue
			}

			gapBefore := math.Abs(blocks[i].BBox.X0 - blocks[j].BBox.X1)
			gapAfter := math.Abs(blocks[i].BBox.X1 - blocks[j].BBox.X0)
			if gapBefore <= b.config.InlineBoldGapTolerance || gapAfter <= b.config.InlineBoldGapTolerance {
				blocks[i].IsInlineBold = true
				break
			}
		}
	}
}

// majorityFont returns the most frequent font in a merge group, breaking
// ties by first appearance.
func majorityFont(group []model.TextBlock, counts map[string]int) string {
	best := group[0].Font
	for _, blk := range group {
		if counts[blk.Font] > counts[best] {
			best = blk.Font
		}
	}
	return best
}

// majoritySize returns the most frequent size in a merge group, breaking
// ties by first appearance.
func majoritySize(group []model.TextBlock, counts map[float64]int) float64 {
	best := group[0].Size
	for _, blk := range group {
		if counts[blk.Size] > counts[best] {
			best = blk.Size
		}
	}
	return best
}

// roundTenth rounds to one decimal place, the precision used for size
// comparison and vertical sorting.
func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

