package config

import (
	"errors"
	"fmt"

	"github.com/cognicore/issuefinder/pkg/issuefinder"
	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
	"github.com/cognicore/issuefinder/pkg/issuefinder/stoplist"
)

// Components holds the pipeline pieces built from a Config
type Components struct {
	Normalizer ingest.Normalizer
	Tokenizer  *ingest.Tokenizer
	Stopwords  *stoplist.Set
	Pipeline   *ingest.Pipeline
	// StopwordsFallback is set when the base list was unavailable and only
	// the extension phrases are in use.
	StopwordsFallback bool
}

// Build validates the config, reads the stopword list and returns
// initialized components. The stopword set is built once here and shared
// read-only by every pipeline run.
func (c *Config) Build() (*Components, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	source, _ := ingest.ParseSource(c.Analysis.Source)
	script, _ := ingest.ParseScript(c.Analysis.Script)

	comp := &Components{
		Normalizer: ingest.NewNormalizer(script),
		Tokenizer:  ingest.NewTokenizer(c.Analysis.MinTokenLength),
	}

	base, err := c.loadBase()
	if err != nil {
		if !c.Stopwords.AllowExtensionOnly || !errors.Is(err, internalerr.ErrStopwordsUnavailable) {
			return nil, fmt.Errorf("load stopwords: %w", err)
		}
		comp.StopwordsFallback = true
	}

	comp.Stopwords = stoplist.New(base, c.extension(), comp.Normalizer)
	comp.Pipeline = ingest.NewPipeline(source, comp.Normalizer, comp.Tokenizer, comp.Stopwords)
	return comp, nil
}

func (c *Config) loadBase() ([]string, error) {
	if c.Stopwords.Path == "" {
		return nil, fmt.Errorf("no stopword path configured: %w", internalerr.ErrStopwordsUnavailable)
	}
	return stoplist.Load(c.Stopwords.Path)
}

func (c *Config) extension() []string {
	var ext []string
	if !c.Stopwords.SkipDomainExtension {
		ext = append(ext, stoplist.DomainExtension...)
	}
	return append(ext, c.Stopwords.Extra...)
}

// AnalyzerOptions maps the analysis section onto issuefinder.Options.
func (c *Config) AnalyzerOptions(p *ingest.Pipeline) issuefinder.Options {
	return issuefinder.Options{
		Pipeline:                p,
		TopN:                    c.Analysis.TopN,
		MinEdgeWeight:           c.Analysis.MinEdgeWeight,
		RestrictEdgesToTopTerms: c.Analysis.RestrictEdgesToTopTerms,
		Workers:                 c.Analysis.Workers,
		Epsilon:                 c.Analysis.Epsilon,
	}
}
