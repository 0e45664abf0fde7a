package ingest

import (
	"fmt"
	"strings"

	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

// Document is one news article as loaded from the corpus.
// Missing fields are empty strings; a document is never rejected for them.
type Document struct {
	Title       string
	Description string
	PublishedAt string // opaque ordering key, e.g. RFC1123Z from the Naver API
}

// Source selects which document fields feed keyword analysis.
// It is fixed per pipeline, never chosen per call.
type Source string

const (
	// SourceTitle analyzes titles only.
	SourceTitle Source = "title"
	// SourceTitleDescription analyzes title and description together.
	SourceTitleDescription Source = "title+description"
)

// ParseSource maps a config value to a Source. Empty means SourceTitle.
func ParseSource(s string) (Source, error) {
	switch Source(strings.ToLower(strings.TrimSpace(s))) {
	case "", SourceTitle:
		return SourceTitle, nil
	case SourceTitleDescription, "title,description", "all":
		return SourceTitleDescription, nil
	default:
		return "", fmt.Errorf("source %q: %w", s, internalerr.ErrInvalidConfig)
	}
}

// Text returns the keyword source text of d under the given policy.
func (d Document) Text(src Source) string {
	if src == SourceTitleDescription && d.Description != "" {
		if d.Title == "" {
			return d.Description
		}
		return d.Title + " " + d.Description
	}
	return d.Title
}
