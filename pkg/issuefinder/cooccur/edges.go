package cooccur

import (
	"sort"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// DefaultMinWeight keeps every edge that occurs at least once
const DefaultMinWeight = 1

// Edge is a weighted, undirected keyword relationship. Source < Target.
type Edge struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Weight int64   `json:"weight" yaml:"weight"` // documents containing both tokens
	NPMI   float64 `json:"npmi" yaml:"npmi"`
}

// Edges returns every pair with weight >= minWeight, heaviest first; ties
// are ordered by Source then Target.
func (c *Counter) Edges(minWeight int64, calc *Calculator) []Edge {
	if minWeight < DefaultMinWeight {
		minWeight = DefaultMinWeight
	}
	if calc == nil {
		calc = NewCalculator(DefaultEpsilon)
	}

	edges := make([]Edge, 0, len(c.Nxy))
	for p, w := range c.Nxy {
		if w < minWeight {
			continue
		}
		edges = append(edges, Edge{
			Source: p.T1,
			Target: p.T2,
			Weight: w,
			NPMI:   calc.NPMI(w, c.Nx[p.T1], c.Nx[p.T2], c.N),
		})
	}

	sort.Slice(edges, func(i, j int) bool {
		if edges[i].Weight != edges[j].Weight {
			return edges[i].Weight > edges[j].Weight
		}
		if edges[i].Source != edges[j].Source {
			return edges[i].Source < edges[j].Source
		}
		return edges[i].Target < edges[j].Target
	})
	return edges
}

// Aggregate builds the co-occurrence graph of a corpus. A nil candidates
// slice pairs every surviving token; otherwise only candidate tokens form
// edges (typically the top terms, to bound graph size).
func Aggregate(docs []ingest.Document, p *ingest.Pipeline, candidates []string, minWeight int64) []Edge {
	c := NewCounter(candidates)
	for _, d := range docs {
		c.AddDocument(p.Process(d))
	}
	return c.Edges(minWeight, nil)
}
