package termfreq

import (
	"sort"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// Term is a keyword and its occurrence count across the corpus
type Term struct {
	Token string `json:"token" yaml:"token"`
	Count int64  `json:"count" yaml:"count"`
}

// position identifies the first occurrence of a token in the corpus
type position struct {
	doc, tok int
}

func (p position) before(o position) bool {
	if p.doc != o.doc {
		return p.doc < o.doc
	}
	return p.tok < o.tok
}

// Counter accumulates token occurrence counts
type Counter struct {
	counts map[string]int64
	first  map[string]position
	total  int64
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int64),
		first:  make(map[string]position),
	}
}

// AddDocument counts every token of the document at corpus index docIndex.
// Repeated tokens within a document each count.
func (c *Counter) AddDocument(docIndex int, tokens []string) {
	for i, tok := range tokens {
		if tok == "" {
			continue
		}
		pos := position{doc: docIndex, tok: i}
		if prev, ok := c.first[tok]; !ok || pos.before(prev) {
			c.first[tok] = pos
		}
		c.counts[tok]++
		c.total++
	}
}

// Merge adds the counts of other into c. Counting shards separately and
// merging gives the same result as counting the whole corpus at once.
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	for tok, n := range other.counts {
		c.counts[tok] += n
	}
	for tok, pos := range other.first {
		if prev, ok := c.first[tok]; !ok || pos.before(prev) {
			c.first[tok] = pos
		}
	}
	c.total += other.total
}

// Count returns the occurrence count of a token
func (c *Counter) Count(tok string) int64 {
	return c.counts[tok]
}

// UniqueTokens returns the number of distinct tokens
func (c *Counter) UniqueTokens() int {
	return len(c.counts)
}

// Total returns the number of token occurrences counted
func (c *Counter) Total() int64 {
	return c.total
}

// Top returns the n most frequent tokens, descending by count. Equal counts
// keep corpus order of first occurrence. n <= 0 returns every token.
func (c *Counter) Top(n int) []Term {
	terms := make([]Term, 0, len(c.counts))
	for tok, cnt := range c.counts {
		terms = append(terms, Term{Token: tok, Count: cnt})
	}

	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Count != terms[j].Count {
			return terms[i].Count > terms[j].Count
		}
		return c.first[terms[i].Token].before(c.first[terms[j].Token])
	})

	if n > 0 && len(terms) > n {
		terms = terms[:n]
	}
	return terms
}

// Aggregate counts surviving tokens of every document and returns the
// topN most frequent. An empty corpus yields an empty result.
func Aggregate(docs []ingest.Document, p *ingest.Pipeline, topN int) []Term {
	c := NewCounter()
	for i, d := range docs {
		c.AddDocument(i, p.Process(d))
	}
	return c.Top(topN)
}

// Tokens returns the token names of terms in order.
func Tokens(terms []Term) []string {
	out := make([]string, len(terms))
	for i, t := range terms {
		out[i] = t.Token
	}
	return out
}
