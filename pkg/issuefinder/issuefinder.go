package issuefinder

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cognicore/issuefinder/pkg/issuefinder/cooccur"
	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
	"github.com/cognicore/issuefinder/pkg/issuefinder/stoplist"
	"github.com/cognicore/issuefinder/pkg/issuefinder/termfreq"
)

// DefaultTopN matches the word cloud size the dashboard renders
const DefaultTopN = 50

// Analyzer is the keyword analysis facade: it runs a corpus through the
// ingest pipeline and produces the weighted term list and edge list.
type Analyzer struct {
	pipeline      *ingest.Pipeline
	topN          int
	minEdgeWeight int64
	restrictEdges bool
	workers       int
	calc          *cooccur.Calculator
}

// Options configures an Analyzer
type Options struct {
	Pipeline *ingest.Pipeline
	// TopN bounds the term list; <= 0 returns every term.
	TopN int
	// MinEdgeWeight drops edges seen in fewer documents; < 1 means 1.
	MinEdgeWeight int64
	// RestrictEdgesToTopTerms pairs only tokens from the term list.
	RestrictEdgesToTopTerms bool
	// Workers > 1 splits the corpus into that many shards.
	Workers int
	// Epsilon smooths edge NPMI scores; <= 0 uses cooccur.DefaultEpsilon.
	Epsilon float64
}

// New creates an Analyzer with the given options
func New(opts Options) *Analyzer {
	p := opts.Pipeline
	if p == nil {
		p = ingest.NewPipeline(ingest.SourceTitle, ingest.Normalizer{}, nil, nil)
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	return &Analyzer{
		pipeline:      p,
		topN:          opts.TopN,
		minEdgeWeight: max(opts.MinEdgeWeight, cooccur.DefaultMinWeight),
		restrictEdges: opts.RestrictEdgesToTopTerms,
		workers:       workers,
		calc:          cooccur.NewCalculator(opts.Epsilon),
	}
}

// MinEdgeWeight returns the edge weight threshold applied by Analyze.
func (a *Analyzer) MinEdgeWeight() int64 {
	return a.minEdgeWeight
}

// Result holds the two derived artifacts of one analysis run
type Result struct {
	Terms []termfreq.Term
	Edges []cooccur.Edge
	// Documents is the corpus size.
	Documents int64
	// DocFreq is the number of documents containing each surviving token.
	DocFreq map[string]int64
}

// Analyze processes the corpus. The result depends only on the documents
// and the analyzer configuration, never on the worker count.
func (a *Analyzer) Analyze(ctx context.Context, docs []ingest.Document) (Result, error) {
	freq, tokens, err := a.countTerms(ctx, docs)
	if err != nil {
		return Result{}, err
	}
	terms := freq.Top(a.topN)

	var candidates []string
	if a.restrictEdges {
		candidates = termfreq.Tokens(terms)
	}

	pairs, err := a.countPairs(ctx, tokens, candidates)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Terms:     terms,
		Edges:     pairs.Edges(a.minEdgeWeight, a.calc),
		Documents: pairs.TotalDocs(),
		DocFreq:   pairs.Nx,
	}, nil
}

// SuggestStopwords returns high document-frequency tokens that are not yet
// in stops, using the analyzer's pipeline.
func (a *Analyzer) SuggestStopwords(ctx context.Context, docs []ingest.Document, stops *stoplist.Set, th stoplist.Thresholds) ([]stoplist.Candidate, error) {
	_, tokens, err := a.countTerms(ctx, docs)
	if err != nil {
		return nil, err
	}
	// An empty candidate set counts document frequencies only.
	pairs, err := a.countPairs(ctx, tokens, []string{})
	if err != nil {
		return nil, err
	}
	stats := stoplist.StatsFromDF(pairs.Nx, pairs.TotalDocs())
	return stops.SuggestCandidates(stats, pairs.TotalDocs(), th), nil
}

// countTerms tokenizes every document once and counts term frequencies.
// Each shard owns its counter; merging after Wait is the only point where
// shard results meet.
func (a *Analyzer) countTerms(ctx context.Context, docs []ingest.Document) (*termfreq.Counter, [][]string, error) {
	ranges := shardRanges(len(docs), a.workers)
	counters := make([]*termfreq.Counter, len(ranges))
	perShard := make([][][]string, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			c := termfreq.NewCounter()
			out := make([][]string, 0, r.end-r.start)
			for idx := r.start; idx < r.end; idx++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				toks := a.pipeline.Process(docs[idx])
				c.AddDocument(idx, toks)
				out = append(out, toks)
			}
			counters[i] = c
			perShard[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	merged := termfreq.NewCounter()
	tokens := make([][]string, 0, len(docs))
	for i := range ranges {
		merged.Merge(counters[i])
		tokens = append(tokens, perShard[i]...)
	}
	return merged, tokens, nil
}

func (a *Analyzer) countPairs(ctx context.Context, tokens [][]string, candidates []string) (*cooccur.Counter, error) {
	ranges := shardRanges(len(tokens), a.workers)
	counters := make([]*cooccur.Counter, len(ranges))

	g, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		g.Go(func() error {
			c := cooccur.NewCounter(candidates)
			for idx := r.start; idx < r.end; idx++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				c.AddDocument(tokens[idx])
			}
			counters[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := cooccur.NewCounter(candidates)
	for _, c := range counters {
		merged.Merge(c)
	}
	return merged, nil
}

type shardRange struct {
	start, end int
}

// shardRanges splits n items into at most workers contiguous ranges.
// It always returns at least one (possibly empty) range.
func shardRanges(n, workers int) []shardRange {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		return []shardRange{{start: 0, end: n}}
	}

	size := (n + workers - 1) / workers
	ranges := make([]shardRange, 0, workers)
	for start := 0; start < n; start += size {
		end := min(start+size, n)
		ranges = append(ranges, shardRange{start: start, end: end})
	}
	return ranges
}
