package cooccur

import "sort"

// Counter maintains document-level co-occurrence counts
type Counter struct {
	N   int64               // total number of documents
	Nx  map[string]int64    // document frequency per token
	Nxy map[TokenPair]int64 // co-occurrence count per token pair

	candidates map[string]struct{} // nil means every token may pair
}

// TokenPair represents an unordered pair of tokens stored as T1 < T2
type TokenPair struct {
	T1, T2 string
}

// NewPair returns the canonical pair for two tokens in either order.
func NewPair(a, b string) TokenPair {
	if a > b {
		a, b = b, a
	}
	return TokenPair{T1: a, T2: b}
}

// NewCounter creates a new co-occurrence counter. When candidates is
// non-nil, only pairs of candidate tokens are counted; document
// frequencies are still tracked for every token.
func NewCounter(candidates []string) *Counter {
	c := &Counter{
		Nx:  make(map[string]int64),
		Nxy: make(map[TokenPair]int64),
	}
	if candidates != nil {
		c.candidates = make(map[string]struct{}, len(candidates))
		for _, tok := range candidates {
			c.candidates[tok] = struct{}{}
		}
	}
	return c
}

// AddDocument updates counts for one document. Repeated tokens contribute
// once, so a pair's count is the number of documents containing both.
func (c *Counter) AddDocument(tokens []string) {
	c.N++

	seen := make(map[string]struct{}, len(tokens))
	pairable := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		c.Nx[t]++
		if c.isCandidate(t) {
			pairable = append(pairable, t)
		}
	}

	sort.Strings(pairable)
	for i := 0; i < len(pairable); i++ {
		for j := i + 1; j < len(pairable); j++ {
			c.Nxy[TokenPair{T1: pairable[i], T2: pairable[j]}]++
		}
	}
}

func (c *Counter) isCandidate(t string) bool {
	if c.candidates == nil {
		return true
	}
	_, ok := c.candidates[t]
	return ok
}

// Merge adds the counts of other into c. Counts are additive, so shards
// may be merged in any order.
func (c *Counter) Merge(other *Counter) {
	if other == nil {
		return
	}
	c.N += other.N
	for t, n := range other.Nx {
		c.Nx[t] += n
	}
	for p, n := range other.Nxy {
		c.Nxy[p] += n
	}
}

// GetPairCount returns the co-occurrence count for a token pair
func (c *Counter) GetPairCount(t1, t2 string) int64 {
	return c.Nxy[NewPair(t1, t2)]
}

// GetTokenCount returns the document frequency for a token
func (c *Counter) GetTokenCount(t string) int64 {
	return c.Nx[t]
}

// TotalDocs returns the total number of documents processed
func (c *Counter) TotalDocs() int64 {
	return c.N
}

// UniqueTokens returns the number of unique tokens
func (c *Counter) UniqueTokens() int {
	return len(c.Nx)
}

// UniquePairs returns the number of unique token pairs
func (c *Counter) UniquePairs() int {
	return len(c.Nxy)
}
