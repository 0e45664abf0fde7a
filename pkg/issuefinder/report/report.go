package report

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/issuefinder/pkg/issuefinder"
	"github.com/cognicore/issuefinder/pkg/issuefinder/cooccur"
	"github.com/cognicore/issuefinder/pkg/issuefinder/termfreq"
)

// Builder stamps analysis results with sortable run IDs
type Builder struct {
	entropy *ulid.MonotonicEntropy
	now     func() time.Time
}

// New creates a new report builder
func New() *Builder {
	return &Builder{
		entropy: ulid.Monotonic(rand.Reader, 0),
		now:     time.Now,
	}
}

// Report is the serializable output of one analysis run, handed to the
// word cloud and network renderers as opaque data.
type Report struct {
	ID          string          `json:"id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Corpus      Corpus          `json:"corpus"`
	Policy      Policy          `json:"policy"`
	Terms       []termfreq.Term `json:"terms"`
	Edges       []cooccur.Edge  `json:"edges"`
}

// Corpus describes the analyzed documents
type Corpus struct {
	Path      string `json:"path,omitempty"`
	Documents int64  `json:"documents"`
	Earliest  string `json:"earliest,omitempty"`
	Latest    string `json:"latest,omitempty"`
}

// Policy records the settings that shaped the result
type Policy struct {
	Source         string `json:"source"`
	Script         string `json:"script"`
	TopN           int    `json:"top_n"`
	MinEdgeWeight  int64  `json:"min_edge_weight"`
	MinTokenLength int    `json:"min_token_length"`
	Stopwords      int    `json:"stopwords"`
}

// Build creates a report from an analysis result
func (b *Builder) Build(res issuefinder.Result, corpus Corpus, policy Policy) Report {
	now := b.now()
	corpus.Documents = res.Documents

	terms := res.Terms
	if terms == nil {
		terms = []termfreq.Term{}
	}
	edges := res.Edges
	if edges == nil {
		edges = []cooccur.Edge{}
	}

	return Report{
		ID:          ulid.MustNew(ulid.Timestamp(now), b.entropy).String(),
		GeneratedAt: now.UTC(),
		Corpus:      corpus,
		Policy:      policy,
		Terms:       terms,
		Edges:       edges,
	}
}
