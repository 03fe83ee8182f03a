package rank

import (
	"hash/fnv"
	"regexp"
	"sort"
	"strings"
)

// fingerprintWords is how many leading unique words identify a section's
// content.
const fingerprintWords = 20

// minFingerprintWords is the word count below which content is too short to
// fingerprint reliably.
const minFingerprintWords = 10

var fingerprintToken = regexp.MustCompile(`\w+`)

// Fingerprinter reduces section content to a comparable value for duplicate
// detection. The second return is false when the content is too short to
// fingerprint.
type Fingerprinter interface {
	Fingerprint(content string) (uint64, bool)
}

// FNVFingerprinter hashes the sorted first twenty unique words of the
// content with FNV-1a. Collisions are accepted as an approximation; the
// fingerprint is a cheap duplicate detector, not an exact comparison.
type FNVFingerprinter struct{}

// Fingerprint implements Fingerprinter.
func (FNVFingerprinter) Fingerprint(content string) (uint64, bool) {
	words := fingerprintToken.FindAllString(strings.ToLower(content), -1)
	if len(words) <= minFingerprintWords {
		return 0, false
	}

	seen := make(map[string]bool)
	var unique []string
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		unique = append(unique, w)
		if len(unique) == fingerprintWords {
			break
		}
	}
	sort.Strings(unique)

	h := fnv.New64a()
	h.Write([]byte(strings.Join(unique, " ")))
	return h.Sum64(), true
}
