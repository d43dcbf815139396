package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultQuery selects every document body of the documents table in
// insertion order.
const DefaultQuery = `SELECT body FROM documents ORDER BY rowid;`

// Open opens the corpus file at path for reading.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open corpus: %w", err)
	}
	return f, nil
}

// ReadSQL runs query against db and returns the text of its first column,
// one row per line, in the order the rows were returned. NULL values are
// skipped. The query result is read fully before ReadSQL returns.
func ReadSQL(ctx context.Context, db *sql.DB, query string) (io.Reader, error) {
	if query == "" {
		query = DefaultQuery
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not query corpus: %w", err)
	}
	defer func(rows *sql.Rows) {
		_ = rows.Close()
	}(rows)

	var sb strings.Builder
	for rows.Next() {
		var body sql.NullString
		if err = rows.Scan(&body); err != nil {
			return nil, fmt.Errorf("could not scan corpus row: %w", err)
		}
		if !body.Valid {
			continue
		}
		sb.WriteString(body.String)
		sb.WriteByte('\n')
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating corpus rows: %w", err)
	}

	return strings.NewReader(sb.String()), nil
}
