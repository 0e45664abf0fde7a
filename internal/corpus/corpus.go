// Package corpus loads news article corpora into ingest documents.
// Loaders are lenient: missing fields become empty strings and malformed
// records are skipped with a warning instead of failing the whole corpus.
package corpus

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

// Format identifies a corpus file format
type Format string

const (
	FormatCSV    Format = "csv"
	FormatJSONL  Format = "jsonl"
	FormatRSS    Format = "rss"
	FormatSQLite Format = "sqlite"
)

// DetectFormat infers the corpus format from the file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return FormatCSV, nil
	case ".jsonl", ".ndjson":
		return FormatJSONL, nil
	case ".xml", ".rss":
		return FormatRSS, nil
	case ".db", ".sqlite", ".sqlite3":
		return FormatSQLite, nil
	default:
		return "", fmt.Errorf("corpus %s: %w", path, internalerr.ErrUnsupportedFormat)
	}
}

// Load reads a corpus file, choosing the loader by extension.
func Load(ctx context.Context, path string) ([]ingest.Document, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatCSV:
		return LoadCSV(path)
	case FormatJSONL:
		return LoadJSONL(path)
	case FormatRSS:
		return LoadRSS(ctx, path)
	default:
		return LoadSQLite(ctx, path)
	}
}

// newDocument decodes HTML entities (the Naver API escapes quotes as
// &quot;). Tags are left in place for the normalizer to strip.
func newDocument(title, description, publishedAt string) ingest.Document {
	return ingest.Document{
		Title:       html.UnescapeString(title),
		Description: html.UnescapeString(description),
		PublishedAt: strings.TrimSpace(publishedAt),
	}
}

func unavailable(path string, err error) error {
	return fmt.Errorf("read corpus %s: %w: %w", path, internalerr.ErrCorpusUnavailable, err)
}
