package corpus

import (
	"context"
	"os"

	"github.com/mmcdole/gofeed"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// LoadRSS loads items from a saved RSS/Atom document, such as the
// news.xml output of the Naver search API.
func LoadRSS(ctx context.Context, path string) ([]ingest.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer f.Close()

	feed, err := gofeed.NewParser().Parse(f)
	if err != nil {
		return nil, unavailable(path, err)
	}

	docs := make([]ingest.Document, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		docs = append(docs, newDocument(item.Title, item.Description, item.Published))
	}
	return docs, nil
}
