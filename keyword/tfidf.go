package keyword

import (
	"encoding/gob"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
)

// minSimilarity is the cosine similarity floor below which a candidate term
// is not considered related.
const minSimilarity = 0.1

// corpusChunk is how many vocabulary terms form one training document.
const corpusChunk = 5

// ModelExpander is the learned keyword expander. It embeds every vocabulary
// term as a TF-IDF vector over a small corpus built from the domain
// vocabularies and expands keywords by cosine similarity against those
// embeddings. Requests it cannot serve degrade to rule-based expansion.
type ModelExpander struct {
	terms      []string
	embeddings map[string][]float64
	fallback   *RuleExpander
}

// modelFile is the gob-persisted form of a trained ModelExpander.
type modelFile struct {
	Terms      []string
	Embeddings map[string][]float64
}

// NewModelExpander trains a ModelExpander from the domain vocabularies.
func NewModelExpander() *ModelExpander {
	e := &ModelExpander{
		embeddings: make(map[string][]float64),
		fallback:   NewRuleExpander(),
	}
	e.train()
	return e
}

// LoadModelExpander restores a persisted model. A missing or corrupt file is
// an error; callers typically fall back to NewModelExpander or a
// RuleExpander.
func LoadModelExpander(path string) (*ModelExpander, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening keyword model: %w", err)
	}
	defer f.Close()

	var m modelFile
	if err := gob.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding keyword model: %w", err)
	}
	if len(m.Terms) == 0 || len(m.Embeddings) != len(m.Terms) {
		return nil, fmt.Errorf("keyword model %s is incomplete", path)
	}

	return &ModelExpander{
		terms:      m.Terms,
		embeddings: m.Embeddings,
		fallback:   NewRuleExpander(),
	}, nil
}

// Save persists the trained model for later LoadModelExpander calls.
func (e *ModelExpander) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating keyword model: %w", err)
	}
	defer f.Close()

	m := modelFile{Terms: e.terms, Embeddings: e.embeddings}
	if err := gob.NewEncoder(f).Encode(m); err != nil {
		return fmt.Errorf("encoding keyword model: %w", err)
	}
	return nil
}

// train builds the corpus (fixed-size chunks of each domain vocabulary),
// computes smoothed TF-IDF document vectors, and stores one embedding per
// vocabulary term: its weight across all corpus documents.
func (e *ModelExpander) train() {
	var corpus [][]string
	for _, domain := range DomainOrder {
		vocab := DomainVocabularies[domain]
		for i := 0; i < len(vocab); i += corpusChunk {
			end := i + corpusChunk
			if end > len(vocab) {
				end = len(vocab)
			}
			corpus = append(corpus, vocab[i:end])
		}
	}

	seen := make(map[string]bool)
	for _, doc := range corpus {
		for _, term := range doc {
			if !seen[term] {
				seen[term] = true
				e.terms = append(e.terms, term)
			}
		}
	}

	docFreq := make(map[string]int)
	for _, doc := range corpus {
		inDoc := make(map[string]bool)
		for _, term := range doc {
			inDoc[term] = true
		}
		for term := range inDoc {
			docFreq[term]++
		}
	}

	n := float64(len(corpus))
	idf := make(map[string]float64, len(e.terms))
	for _, term := range e.terms {
		idf[term] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}

	// Row-normalized TF-IDF; each term's embedding is its column.
	for _, term := range e.terms {
		e.embeddings[term] = make([]float64, len(corpus))
	}
	for d, doc := range corpus {
		tf := make(map[string]float64)
		for _, term := range doc {
			tf[term]++
		}

		norm := 0.0
		for term, count := range tf {
			w := count * idf[term]
			norm += w * w
		}
		norm = math.Sqrt(norm)
		if norm == 0 {
			continue
		}

		for term, count := range tf {
			e.embeddings[term][d] = count * idf[term] / norm
		}
	}
}

// Expand returns up to max terms similar to the centroid of the known input
// keywords. Keywords without an embedding are ignored; when none remain the
// request degrades to the rule-based expander.
func (e *ModelExpander) Expand(keywords []string, max int) []string {
	if len(keywords) == 0 || max <= 0 {
		return nil
	}

	known := make(map[string]bool)
	var vectors [][]float64
	for _, k := range keywords {
		lower := strings.ToLower(k)
		if v, ok := e.embeddings[lower]; ok {
			known[lower] = true
			vectors = append(vectors, v)
		}
	}
	if len(vectors) == 0 {
		return e.fallback.Expand(keywords, max)
	}

	centroid := make([]float64, len(vectors[0]))
	for _, v := range vectors {
		for i, w := range v {
			centroid[i] += w
		}
	}
	for i := range centroid {
		centroid[i] /= float64(len(vectors))
	}

	type scored struct {
		term string
		sim  float64
	}
	var candidates []scored
	for _, term := range e.terms {
		if known[term] {
			continue
		}
		sim := cosine(centroid, e.embeddings[term])
		if sim > minSimilarity {
			candidates = append(candidates, scored{term: term, sim: sim})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].sim != candidates[j].sim {
			return candidates[i].sim > candidates[j].sim
		}
		return candidates[i].term < candidates[j].term
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.term
	}
	return out
}

// DomainTerms scores the text against every domain vocabulary by term
// presence and returns the dominant domain's leading terms.
func (e *ModelExpander) DomainTerms(text string) []string {
	return dominantDomainTerms(text)
}

func cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
