package ingest

import "iter"

// StopFilter reports whether a normalized token is excluded from analysis
type StopFilter interface {
	IsStop(token string) bool
}

type noStops struct{}

func (noStops) IsStop(string) bool { return false }

// Pipeline orchestrates the per-document flow:
// source text → normalization → tokenization → stopword filtering
type Pipeline struct {
	source     Source
	normalizer Normalizer
	tokenizer  *Tokenizer
	stops      StopFilter
}

// NewPipeline creates a pipeline with the given components. A nil tokenizer
// uses DefaultMinTokenLength; a nil filter keeps every token.
func NewPipeline(source Source, normalizer Normalizer, tokenizer *Tokenizer, stops StopFilter) *Pipeline {
	if source == "" {
		source = SourceTitle
	}
	if tokenizer == nil {
		tokenizer = NewTokenizer(DefaultMinTokenLength)
	}
	if stops == nil {
		stops = noStops{}
	}
	return &Pipeline{
		source:     source,
		normalizer: normalizer,
		tokenizer:  tokenizer,
		stops:      stops,
	}
}

// Source returns the fixed field policy of the pipeline.
func (p *Pipeline) Source() Source {
	return p.source
}

// Normalizer returns the normalizer used for document text.
func (p *Pipeline) Normalizer() Normalizer {
	return p.normalizer
}

// Tokens returns the lazy sequence of surviving tokens for a document
func (p *Pipeline) Tokens(d Document) iter.Seq[string] {
	text := p.normalizer.Normalize(d.Text(p.source))
	return func(yield func(string) bool) {
		for tok := range p.tokenizer.Tokenize(text) {
			if p.stops.IsStop(tok) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Process returns every surviving token of a document in text order
func (p *Pipeline) Process(d Document) []string {
	var tokens []string
	for tok := range p.Tokens(d) {
		tokens = append(tokens, tok)
	}
	return tokens
}

// UniqueTokens returns the document's distinct surviving tokens in order of
// first appearance.
func (p *Pipeline) UniqueTokens(d Document) []string {
	return Unique(p.Process(d))
}

// Unique drops empty and repeated tokens, keeping first occurrences.
func Unique(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	var out []string
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return out
}
