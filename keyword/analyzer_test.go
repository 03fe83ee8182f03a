package keyword

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"stop words dropped", "the quick brown fox", []string{"quick", "brown", "fox"}},
		{"punctuation stripped", "revenue, profit & growth!", []string{"revenue", "profit", "growth"}},
		{"short tokens dropped", "an ML ph d thesis", []string{"thesis"}},
		{"lowercased", "Financial ANALYST", []string{"financial", "analyst"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Tokenize(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtract_FrequencyOrdered(t *testing.T) {
	got := Extract("data analysis data model analysis data")
	want := []string{"data", "analysis", "model"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_TiesByFirstOccurrence(t *testing.T) {
	got := Extract("alpha beta alpha beta")
	want := []string{"alpha", "beta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Extract = %v, want %v", got, want)
	}
}

func TestExtract_Capped(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 60; i++ {
		b.WriteString("word")
		b.WriteByte(byte('a' + i%26))
		b.WriteByte(byte('a' + i/26))
		b.WriteString(" ")
	}
	if got := len(Extract(b.String())); got != maxKeywords {
		t.Errorf("len(Extract) = %d, want %d", got, maxKeywords)
	}
}

func TestRuleExpander_Expand(t *testing.T) {
	e := NewRuleExpander()

	got := e.Expand([]string{"research"}, 15)
	want := []string{"study", "analysis", "investigation"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want top 3 associations %v", got, want)
	}
}

func TestRuleExpander_ExpandMultipleSeeds(t *testing.T) {
	e := NewRuleExpander()

	got := e.Expand([]string{"research", "revenue"}, 15)
	want := []string{"study", "analysis", "investigation", "income", "earnings", "sales"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}

	if got := e.Expand([]string{"research", "revenue"}, 4); len(got) != 4 {
		t.Errorf("capped Expand returned %d terms", len(got))
	}
}

func TestRuleExpander_UnknownSeed(t *testing.T) {
	e := NewRuleExpander()
	if got := e.Expand([]string{"xylophone"}, 15); len(got) != 0 {
		t.Errorf("Expand(unknown) = %v, want empty", got)
	}
}

func TestDomainTerms(t *testing.T) {
	e := NewRuleExpander()

	got := e.DomainTerms("quarterly revenue growth across the market, financial trends")
	if len(got) != maxDomainTerms {
		t.Fatalf("len = %d, want %d", len(got), maxDomainTerms)
	}
	if got[0] != "revenue" {
		t.Errorf("first term = %q, want the business vocabulary head", got[0])
	}

	if got := e.DomainTerms("completely unrelated gibberish zzz"); got != nil {
		t.Errorf("DomainTerms(no match) = %v, want nil", got)
	}
}

func TestModelExpander_Expand(t *testing.T) {
	e := NewModelExpander()

	got := e.Expand([]string{"research"}, 5)
	if len(got) == 0 || len(got) > 5 {
		t.Fatalf("Expand returned %d terms", len(got))
	}
	for _, term := range got {
		if term == "research" {
			t.Error("expansion must not echo the input keyword")
		}
	}

	// Terms sharing a training document with "research" must rank.
	found := false
	for _, term := range got {
		if term == "study" || term == "analysis" || term == "methodology" || term == "literature" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expand = %v, want co-occurring academic terms", got)
	}
}

func TestModelExpander_Deterministic(t *testing.T) {
	e := NewModelExpander()

	first := e.Expand([]string{"revenue", "market"}, 10)
	second := e.Expand([]string{"revenue", "market"}, 10)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("expansion not deterministic: %v vs %v", first, second)
	}
}

func TestModelExpander_FallsBackForUnknownVocabulary(t *testing.T) {
	e := NewModelExpander()

	// "student" is absent from the domain vocabularies but present in the
	// rule-based association table.
	got := e.Expand([]string{"student"}, 5)
	want := []string{"learner", "education", "academic"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want rule-based fallback %v", got, want)
	}
}

func TestModelExpander_SaveLoad(t *testing.T) {
	e := NewModelExpander()
	path := filepath.Join(t.TempDir(), "keywords.gob")

	if err := e.Save(path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadModelExpander(path)
	if err != nil {
		t.Fatal(err)
	}

	want := e.Expand([]string{"reaction", "synthesis"}, 8)
	got := loaded.Expand([]string{"reaction", "synthesis"}, 8)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("loaded model expands differently: %v vs %v", got, want)
	}
}

func TestLoadModelExpander_Missing(t *testing.T) {
	if _, err := LoadModelExpander(filepath.Join(t.TempDir(), "absent.gob")); err == nil {
		t.Error("expected error for missing model file")
	}
}

func TestLoadModelExpander_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.gob")
	if err := os.WriteFile(path, []byte("not a gob stream"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadModelExpander(path); err == nil {
		t.Error("expected error for corrupt model file")
	}
}

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzerWithExpander(NewRuleExpander())

	set := a.Analyze("Financial Analyst", "Analyze revenue trends and market performance")

	if !containsAll(set.Persona, "financial", "analyst", "economic") {
		t.Errorf("Persona = %v, missing extracted or expanded terms", set.Persona)
	}
	// Domain terms of the combined text flow into both sets.
	if !containsAll(set.Persona, "revenue", "profit") || !containsAll(set.Job, "revenue", "profit") {
		t.Errorf("domain terms missing: persona=%v job=%v", set.Persona, set.Job)
	}
	if !containsAll(set.Job, "income", "earnings") {
		t.Errorf("Job = %v, missing revenue associations", set.Job)
	}

	for _, sets := range [][]string{set.Persona, set.Job} {
		seen := make(map[string]bool)
		for _, k := range sets {
			if k != strings.ToLower(k) {
				t.Errorf("keyword %q not lowercase", k)
			}
			if seen[k] {
				t.Errorf("keyword %q duplicated", k)
			}
			seen[k] = true
		}
	}
}

func containsAll(keywords []string, want ...string) bool {
	set := make(map[string]bool, len(keywords))
	for _, k := range keywords {
		set[k] = true
	}
	for _, w := range want {
		if !set[w] {
			return false
		}
	}
	return true
}
