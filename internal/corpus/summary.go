package corpus

import (
	"time"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// Summary describes a loaded corpus
type Summary struct {
	Documents int    `json:"documents"`
	Earliest  string `json:"earliest,omitempty"`
	Latest    string `json:"latest,omitempty"`
}

var timeLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Summarize reports the document count and publish period. Timestamps are
// compared chronologically when every one parses, and as plain strings
// otherwise. Empty timestamps are ignored.
func Summarize(docs []ingest.Document) Summary {
	sum := Summary{Documents: len(docs)}

	var stamps []string
	var times []time.Time
	allParsed := true
	for _, d := range docs {
		if d.PublishedAt == "" {
			continue
		}
		stamps = append(stamps, d.PublishedAt)
		if t, ok := parseTime(d.PublishedAt); ok {
			times = append(times, t)
		} else {
			allParsed = false
		}
	}
	if len(stamps) == 0 {
		return sum
	}

	first, last := 0, 0
	for i := 1; i < len(stamps); i++ {
		if allParsed {
			if times[i].Before(times[first]) {
				first = i
			}
			if times[i].After(times[last]) {
				last = i
			}
			continue
		}
		if stamps[i] < stamps[first] {
			first = i
		}
		if stamps[i] > stamps[last] {
			last = i
		}
	}

	sum.Earliest = stamps[first]
	sum.Latest = stamps[last]
	return sum
}
