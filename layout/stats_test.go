package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/docsift/docsift/model"
)

func sizedBlock(font string, size float64) model.TextBlock {
	return model.TextBlock{Text: "sample", Font: font, Size: size}
}

func TestComputeDocumentStats_EmptyDefaults(t *testing.T) {
	stats := ComputeDocumentStats(nil)

	if stats.BodyTextSize != defaultBodySize {
		t.Errorf("BodyTextSize = %v, want %v", stats.BodyTextSize, defaultBodySize)
	}
	if stats.AverageSize != defaultBodySize || stats.MedianSize != defaultBodySize {
		t.Errorf("average/median = %v/%v, want defaults", stats.AverageSize, stats.MedianSize)
	}
	if stats.SizeStdDev != defaultSizeStd {
		t.Errorf("SizeStdDev = %v, want %v", stats.SizeStdDev, defaultSizeStd)
	}
	if stats.MostCommonFonts != nil {
		t.Errorf("MostCommonFonts = %v, want nil", stats.MostCommonFonts)
	}
}

func TestComputeDocumentStats_BodyTextIsModalSize(t *testing.T) {
	blocks := []model.TextBlock{
		sizedBlock("Helvetica", 18),
		sizedBlock("Helvetica", 11),
		sizedBlock("Helvetica", 11),
		sizedBlock("Helvetica", 11),
		sizedBlock("Helvetica", 14),
	}

	stats := ComputeDocumentStats(blocks)
	if stats.BodyTextSize != 11 {
		t.Errorf("BodyTextSize = %v, want 11 (most frequent size)", stats.BodyTextSize)
	}
}

func TestComputeDocumentStats_ModalTieKeepsFirstSeen(t *testing.T) {
	blocks := []model.TextBlock{
		sizedBlock("Helvetica", 12),
		sizedBlock("Helvetica", 10),
		sizedBlock("Helvetica", 12),
		sizedBlock("Helvetica", 10),
	}

	stats := ComputeDocumentStats(blocks)
	if stats.BodyTextSize != 12 {
		t.Errorf("BodyTextSize = %v, want 12 on tie", stats.BodyTextSize)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"odd count", []float64{14, 10, 12}, 12},
		{"even count", []float64{10, 12, 14, 16}, 13},
		{"single", []float64{9}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestStdDev(t *testing.T) {
	// Population standard deviation of {10, 12, 14} is sqrt(8/3).
	got := stdDev([]float64{10, 12, 14})
	want := math.Sqrt(8.0 / 3.0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("stdDev = %v, want %v", got, want)
	}
}

func TestComputeDocumentStats_TopFontsOrdered(t *testing.T) {
	blocks := []model.TextBlock{
		sizedBlock("Times", 11),
		sizedBlock("Helvetica", 11),
		sizedBlock("Helvetica", 11),
		sizedBlock("Helvetica-Bold", 14),
		sizedBlock("Times", 11),
		sizedBlock("Helvetica", 11),
	}

	stats := ComputeDocumentStats(blocks)
	want := []model.FontCount{
		{Font: "Helvetica", Count: 3},
		{Font: "Times", Count: 2},
		{Font: "Helvetica-Bold", Count: 1},
	}
	if !reflect.DeepEqual(stats.MostCommonFonts, want) {
		t.Errorf("MostCommonFonts = %v, want %v", stats.MostCommonFonts, want)
	}
}

func TestComputeDocumentStats_TopFontsCapped(t *testing.T) {
	fonts := []string{"A", "B", "C", "D", "E", "F", "G"}
	var blocks []model.TextBlock
	for i, f := range fonts {
		// Later fonts appear more often so the cap drops the earliest ones.
		for n := 0; n <= i; n++ {
			blocks = append(blocks, sizedBlock(f, 11))
		}
	}

	stats := ComputeDocumentStats(blocks)
	if len(stats.MostCommonFonts) != maxCommonFonts {
		t.Fatalf("len(MostCommonFonts) = %d, want %d", len(stats.MostCommonFonts), maxCommonFonts)
	}
	if stats.MostCommonFonts[0].Font != "G" || stats.MostCommonFonts[0].Count != 7 {
		t.Errorf("top font = %+v, want G x7", stats.MostCommonFonts[0])
	}
	if stats.MostCommonFonts[4].Font != "C" {
		t.Errorf("fifth font = %q, want C", stats.MostCommonFonts[4].Font)
	}
}
