package layout

import (
	"math"
	"sort"

	"github.com/docsift/docsift/model"
)

// defaults applied when a document produces no measurable blocks.
const (
	defaultBodySize = 12.0
	defaultSizeStd  = 2.0
)

// maxCommonFonts bounds the MostCommonFonts list.
const maxCommonFonts = 5

// ComputeDocumentStats aggregates font statistics over every block of a
// document. It runs once, before block filtering, and the result is passed
// into classification rather than held as shared state.
func ComputeDocumentStats(blocks []model.TextBlock) model.DocumentStats {
	if len(blocks) == 0 {
		return model.DocumentStats{
			AverageSize:  defaultBodySize,
			MedianSize:   defaultBodySize,
			SizeStdDev:   defaultSizeStd,
			BodyTextSize: defaultBodySize,
		}
	}

	sizes := make([]float64, len(blocks))
	fontCounts := make(map[string]int)
	for i, b := range blocks {
		sizes[i] = b.Size
		fontCounts[b.Font]++
	}

	return model.DocumentStats{
		AverageSize:     mean(sizes),
		MedianSize:      median(sizes),
		SizeStdDev:      stdDev(sizes),
		MostCommonFonts: topFonts(blocks, fontCounts),
		BodyTextSize:    modalSize(sizes),
	}
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func stdDev(values []float64) float64 {
	m := mean(values)
	variance := 0.0
	for _, v := range values {
		d := v - m
		variance += d * d
	}
	return math.Sqrt(variance / float64(len(values)))
}

// modalSize returns the most frequent size, the body text size by
// assumption. Ties break toward the size seen first.
func modalSize(sizes []float64) float64 {
	counts := make(map[float64]int)
	for _, s := range sizes {
		counts[s]++
	}

	best := sizes[0]
	for _, s := range sizes {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}

// topFonts returns up to maxCommonFonts fonts by block count, descending,
// ties broken by first appearance.
func topFonts(blocks []model.TextBlock, counts map[string]int) []model.FontCount {
	seen := make(map[string]bool)
	var order []string
	for _, b := range blocks {
		if !seen[b.Font] {
			seen[b.Font] = true
			order = append(order, b.Font)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxCommonFonts {
		order = order[:maxCommonFonts]
	}

	result := make([]model.FontCount, len(order))
	for i, f := range order {
		result[i] = model.FontCount{Font: f, Count: counts[f]}
	}
	return result
}
