package corpus

import (
	"context"
	"database/sql"
	"os"

	_ "modernc.org/sqlite"

	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
)

// ArticlesQuery reads the corpus from an articles table. NULL columns
// become empty strings.
const ArticlesQuery = `
SELECT COALESCE(title, ''), COALESCE(description, ''), COALESCE(pub_date, '')
FROM articles
ORDER BY rowid;
`

// LoadSQLite loads articles from a SQLite database holding an
// articles(title, description, pub_date) table.
func LoadSQLite(ctx context.Context, path string) ([]ingest.Document, error) {
	// sql.Open would create a missing database file.
	if _, err := os.Stat(path); err != nil {
		return nil, unavailable(path, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, ArticlesQuery)
	if err != nil {
		return nil, unavailable(path, err)
	}
	defer rows.Close()

	docs := []ingest.Document{}
	for rows.Next() {
		var title, description, pubDate string
		if err := rows.Scan(&title, &description, &pubDate); err != nil {
			return nil, unavailable(path, err)
		}
		docs = append(docs, newDocument(title, description, pubDate))
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(path, err)
	}
	return docs, nil
}
