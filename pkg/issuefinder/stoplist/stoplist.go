package stoplist

import (
	"sort"
	"strings"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// Set is an immutable stopword set: the loaded base list plus the
// extension phrases, normalized the same way as document text.
type Set struct {
	stops map[string]struct{}
}

// New builds the combined set once. Base entries are kept whole; extension
// phrases are split on whitespace before insertion.
func New(base []string, extension []string, normalizer ingest.Normalizer) *Set {
	stops := make(map[string]struct{}, len(base)+len(extension))
	add := func(word string) {
		word = strings.TrimSpace(normalizer.Normalize(word))
		if word == "" {
			return
		}
		stops[word] = struct{}{}
	}

	for _, w := range base {
		add(w)
	}
	for _, phrase := range extension {
		for _, w := range strings.Fields(phrase) {
			add(w)
		}
	}
	return &Set{stops: stops}
}

// IsStop checks if a normalized token is a stopword
func (s *Set) IsStop(token string) bool {
	if s == nil {
		return false
	}
	_, ok := s.stops[token]
	return ok
}

// Len returns the number of distinct stopwords
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.stops)
}

// All returns all stopwords in sorted order
func (s *Set) All() []string {
	if s == nil {
		return nil
	}
	result := make([]string, 0, len(s.stops))
	for w := range s.stops {
		result = append(result, w)
	}
	sort.Strings(result)
	return result
}
