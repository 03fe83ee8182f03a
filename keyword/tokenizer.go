package keyword

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxKeywords caps the number of keywords extracted from one text.
const maxKeywords = 50

// minTokenLen is the shortest token kept after stop-word filtering.
const minTokenLen = 3

var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "from": true, "as": true, "is": true,
	"are": true, "was": true, "were": true, "be": true, "been": true,
	"being": true, "have": true, "has": true, "had": true, "do": true,
	"does": true, "did": true, "will": true, "would": true, "could": true,
	"should": true, "may": true, "might": true, "can": true, "this": true,
	"that": true, "these": true, "those": true, "i": true, "you": true,
	"he": true, "she": true, "it": true, "we": true, "they": true,
	"me": true, "him": true, "her": true, "us": true, "them": true,
	"my": true, "your": true, "his": true, "its": true, "our": true,
	"their": true, "mine": true, "yours": true, "ours": true,
	"theirs": true, "myself": true, "yourself": true, "himself": true,
	"herself": true, "itself": true, "ourselves": true,
	"yourselves": true, "themselves": true,
}

// Tokenize lowercases and normalizes text, strips punctuation, and splits it
// into words. Stop words and words shorter than three characters are dropped.
func Tokenize(text string) []string {
	text = norm.NFKC.String(strings.ToLower(text))

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}

	var tokens []string
	for _, w := range strings.Fields(b.String()) {
		if len(w) < minTokenLen || stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Extract returns the distinct keywords of a text ordered by descending
// frequency, ties broken by first occurrence, capped at maxKeywords.
func Extract(text string) []string {
	tokens := Tokenize(text)
	if len(tokens) == 0 {
		return nil
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var distinct []string
	for i, t := range tokens {
		if counts[t] == 0 {
			firstSeen[t] = i
			distinct = append(distinct, t)
		}
		counts[t]++
	}

	sort.SliceStable(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return firstSeen[distinct[i]] < firstSeen[distinct[j]]
	})

	if len(distinct) > maxKeywords {
		distinct = distinct[:maxKeywords]
	}
	return distinct
}
