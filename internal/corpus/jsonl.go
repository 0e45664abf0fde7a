package corpus

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/cognicore/issuefinder/internal/logger"
	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// Item represents one news record in a JSONL corpus
type Item struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PubDate     string `json:"pubDate"`
	PublishedAt string `json:"published_at"`
}

// decodeItem reads a JSON object field by field. A field that is missing
// or not a string becomes "" and the rest of the record is kept.
func decodeItem(line []byte) (Item, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return Item{}, err
	}
	if raw == nil {
		return Item{}, errNotObject
	}
	return Item{
		Title:       stringField(raw, "title"),
		Description: stringField(raw, "description"),
		PubDate:     stringField(raw, "pubDate"),
		PublishedAt: stringField(raw, "published_at"),
	}, nil
}

func stringField(raw map[string]json.RawMessage, key string) string {
	var s string
	if err := json.Unmarshal(raw[key], &s); err != nil {
		return ""
	}
	return s
}

func (it Item) published() string {
	if it.PubDate != "" {
		return it.PubDate
	}
	return it.PublishedAt
}

var errNotObject = errors.New("not a JSON object")

// LoadJSONL loads items from a JSONL file, skipping malformed lines
func LoadJSONL(path string) ([]ingest.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer f.Close()

	return ReadJSONL(f, path)
}

// ReadJSONL parses JSONL corpus data; name is only used in log messages.
func ReadJSONL(r io.Reader, name string) ([]ingest.Document, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 4*1024*1024)

	docs := []ingest.Document{}
	for i := 1; sc.Scan(); i++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		item, err := decodeItem([]byte(line))
		if err != nil {
			logger.Warn("skipping malformed JSON at line %d in %s: %v", i, name, err)
			continue
		}
		docs = append(docs, newDocument(item.Title, item.Description, item.published()))
	}
	if err := sc.Err(); err != nil {
		return nil, unavailable(name, err)
	}
	return docs, nil
}
