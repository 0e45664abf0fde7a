package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cognicore/issuefinder/internal/corpus"
	"github.com/cognicore/issuefinder/internal/logger"
	"github.com/cognicore/issuefinder/pkg/issuefinder"
	"github.com/cognicore/issuefinder/pkg/issuefinder/config"
	"github.com/cognicore/issuefinder/pkg/issuefinder/report"
)

type analyzeOptions struct {
	*globalOptions
	topN           int
	minWeight      int64
	minTokenLength int
	source         string
	script         string
	workers        int
	allEdges       bool
	jsonOut        bool
	watch          bool
}

func newAnalyzeCmd(g *globalOptions) *cobra.Command {
	opts := &analyzeOptions{globalOptions: g}

	cmd := &cobra.Command{
		Use:   "analyze [corpus]",
		Short: "Compute top keywords and the keyword co-occurrence graph",
		Long: `Loads a corpus (.csv, .jsonl, .xml/.rss or .db/.sqlite), removes stopwords
and reports the most frequent keywords and the edges between keywords that
appear in the same article.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.topN, "top", "n", issuefinder.DefaultTopN, "number of keywords to keep (0 for all)")
	f.Int64Var(&opts.minWeight, "min-weight", 1, "minimum number of shared articles for an edge")
	f.IntVar(&opts.minTokenLength, "min-length", 1, "minimum keyword length in characters")
	f.StringVar(&opts.source, "source", "title", "fields to analyze: title or title+description")
	f.StringVar(&opts.script, "script", "hangul", "characters to keep: hangul or letters")
	f.IntVar(&opts.workers, "workers", 1, "number of corpus shards processed in parallel")
	f.BoolVar(&opts.allEdges, "all-edges", false, "pair every keyword, not only the top keywords")
	f.BoolVar(&opts.jsonOut, "json", false, "output the report as JSON")
	f.BoolVar(&opts.watch, "watch", false, "re-run the analysis whenever the corpus file changes")
	return cmd
}

// applyFlags overrides config values only for flags set on the command line.
func (o *analyzeOptions) applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("top") {
		cfg.Analysis.TopN = o.topN
	}
	if f.Changed("min-weight") {
		cfg.Analysis.MinEdgeWeight = o.minWeight
	}
	if f.Changed("min-length") {
		cfg.Analysis.MinTokenLength = o.minTokenLength
	}
	if f.Changed("source") {
		cfg.Analysis.Source = o.source
	}
	if f.Changed("script") {
		cfg.Analysis.Script = o.script
	}
	if f.Changed("workers") {
		cfg.Analysis.Workers = o.workers
	}
	if f.Changed("all-edges") {
		cfg.Analysis.RestrictEdgesToTopTerms = !o.allEdges
	}
}

func runAnalyze(cmd *cobra.Command, opts *analyzeOptions, path string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	opts.applyFlags(cmd, cfg)

	comp, err := buildComponents(cfg)
	if err != nil {
		return err
	}

	cache, err := corpus.NewCache(corpus.DefaultCacheSize, nil)
	if err != nil {
		return err
	}

	run := &analysisRun{
		cfg:      cfg,
		comp:     comp,
		analyzer: issuefinder.New(cfg.AnalyzerOptions(comp.Pipeline)),
		builder:  report.New(),
		cache:    cache,
		path:     path,
		jsonOut:  opts.jsonOut,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run.once(ctx, cmd); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watchCorpus(ctx, path, func() error {
		cache.Invalidate(path)
		return run.once(ctx, cmd)
	})
}

// analysisRun carries everything needed to (re-)analyze one corpus file.
type analysisRun struct {
	cfg      *config.Config
	comp     *config.Components
	analyzer *issuefinder.Analyzer
	builder  *report.Builder
	cache    *corpus.Cache
	path     string
	jsonOut  bool
}

func (r *analysisRun) once(ctx context.Context, cmd *cobra.Command) error {
	logger.Section("Analysis")

	docs, err := r.cache.Get(ctx, r.path)
	if err != nil {
		return err
	}
	logger.Info("loaded %s documents from %s", humanize.Comma(int64(len(docs))), r.path)

	res, err := r.analyzer.Analyze(ctx, docs)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", r.path, err)
	}

	sum := corpus.Summarize(docs)
	rep := r.builder.Build(res,
		report.Corpus{Path: r.path, Earliest: sum.Earliest, Latest: sum.Latest},
		report.Policy{
			Source:         r.cfg.Analysis.Source,
			Script:         r.cfg.Analysis.Script,
			TopN:           r.cfg.Analysis.TopN,
			MinEdgeWeight:  r.analyzer.MinEdgeWeight(),
			MinTokenLength: r.comp.Tokenizer.MinLength(),
			Stopwords:      r.comp.Stopwords.Len(),
		},
	)

	if r.jsonOut {
		return outputReportJSON(cmd, rep)
	}
	outputReportTable(cmd, rep)
	return nil
}

func outputReportJSON(cmd *cobra.Command, rep report.Report) error {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func outputReportTable(cmd *cobra.Command, rep report.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Corpus: %s (%s articles)\n", rep.Corpus.Path, humanize.Comma(rep.Corpus.Documents))
	if rep.Corpus.Earliest != "" {
		fmt.Fprintf(out, "Period: %s ~ %s\n", rep.Corpus.Earliest, rep.Corpus.Latest)
	}
	fmt.Fprintln(out)

	if len(rep.Terms) == 0 {
		fmt.Fprintln(out, "No keywords found.")
		return
	}

	fmt.Fprintln(out, "Keywords:")
	for i, t := range rep.Terms {
		fmt.Fprintf(out, "  %3d. %-20s %s\n", i+1, t.Token, humanize.Comma(t.Count))
	}

	fmt.Fprintln(out)
	if len(rep.Edges) == 0 {
		fmt.Fprintln(out, "No co-occurrence edges.")
		return
	}
	fmt.Fprintln(out, "Co-occurrence:")
	for _, e := range rep.Edges {
		fmt.Fprintf(out, "  %s - %s  %d (npmi %.2f)\n", e.Source, e.Target, e.Weight, e.NPMI)
	}
}
