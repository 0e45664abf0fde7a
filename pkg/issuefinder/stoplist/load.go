package stoplist

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

// Load reads a newline-delimited stopword file. A missing or unreadable
// file is reported as ErrStopwordsUnavailable so the caller can choose
// between aborting and falling back to DomainExtension alone.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stopwords %s: %w: %w", path, internalerr.ErrStopwordsUnavailable, err)
	}
	return Parse(data), nil
}

// Parse splits stopword file contents into entries, skipping blank lines
// and a leading UTF-8 byte order mark.
func Parse(data []byte) []string {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
