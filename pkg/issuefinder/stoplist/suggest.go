package stoplist

import "sort"

// Stats holds document-frequency statistics for candidate evaluation
type Stats struct {
	Token     string
	DF        int64
	DFPercent float64
}

// Candidate represents a candidate stopword
type Candidate struct {
	Token     string
	DFPercent float64
	Score     float64 // confidence score in [0,1]
}

// Thresholds defines criteria for stopword identification
type Thresholds struct {
	DFPercent float64 // e.g., 30% - appears in 30% of documents
	MinDocs   int64   // corpora smaller than this yield no candidates
}

// DefaultThresholds returns sensible defaults for short news titles, where
// even the main topic word rarely exceeds half of the documents.
func DefaultThresholds() Thresholds {
	return Thresholds{
		DFPercent: 30.0,
		MinDocs:   10,
	}
}

// StatsFromDF converts per-token document frequencies into Stats.
func StatsFromDF(df map[string]int64, totalDocs int64) []Stats {
	stats := make([]Stats, 0, len(df))
	for tok, n := range df {
		pct := 0.0
		if totalDocs > 0 {
			pct = float64(n) / float64(totalDocs) * 100
		}
		stats = append(stats, Stats{Token: tok, DF: n, DFPercent: pct})
	}
	return stats
}

// SuggestCandidates suggests tokens that should be stopwords: words present
// in so many documents that they carry no discriminative value (the topic
// word itself, boilerplate). Tokens already in s are skipped. Results are
// ordered by score, then token.
func (s *Set) SuggestCandidates(stats []Stats, totalDocs int64, thresholds Thresholds) []Candidate {
	if thresholds.DFPercent <= 0 {
		thresholds.DFPercent = DefaultThresholds().DFPercent
	}
	if totalDocs == 0 || totalDocs < thresholds.MinDocs {
		return nil
	}

	var candidates []Candidate
	for _, st := range stats {
		if s.IsStop(st.Token) {
			continue // already a stopword
		}
		if st.DFPercent <= thresholds.DFPercent {
			continue
		}
		candidates = append(candidates, Candidate{
			Token:     st.Token,
			DFPercent: st.DFPercent,
			Score:     st.DFPercent / 100.0,
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Token < candidates[j].Token
	})
	return candidates
}
