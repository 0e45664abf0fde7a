package corpus

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/cognicore/issuefinder/internal/logger"
	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

var (
	titleColumns       = []string{"title"}
	descriptionColumns = []string{"description", "desc", "summary"}
	publishedColumns   = []string{"pubdate", "published_at", "publishedat", "date"}
)

// LoadCSV loads a CSV corpus with a header row, as exported from the
// Naver news search API (title, description, pubDate, ...). Columns are
// matched by name, case-insensitively.
func LoadCSV(path string) ([]ingest.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer f.Close()

	return ReadCSV(f, path)
}

// ReadCSV parses CSV corpus data; name is only used in log messages.
func ReadCSV(r io.Reader, name string) ([]ingest.Document, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []ingest.Document{}, nil
	}
	if err != nil {
		return nil, unavailable(name, err)
	}

	cols := indexColumns(header)
	titleIdx := lookup(cols, titleColumns)
	descIdx := lookup(cols, descriptionColumns)
	pubIdx := lookup(cols, publishedColumns)
	if titleIdx < 0 {
		logger.Warn("%s: no title column in header %v", name, header)
	}

	docs := []ingest.Document{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			logger.Warn("skipping malformed CSV record at line %d in %s: %v", parseErr.Line, name, err)
			continue
		}
		if err != nil {
			return nil, unavailable(name, err)
		}

		docs = append(docs, newDocument(
			field(record, titleIdx),
			field(record, descIdx),
			field(record, pubIdx),
		))
	}
	return docs, nil
}

func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := cols[h]; !dup {
			cols[h] = i
		}
	}
	return cols
}

func lookup(cols map[string]int, names []string) int {
	for _, n := range names {
		if i, ok := cols[n]; ok {
			return i
		}
	}
	return -1
}

// field returns record[i], or "" for absent columns and short rows.
func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return record[i]
}
