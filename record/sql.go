package record

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// OpenSQLite opens the SQLite database at path and verifies the connection.
// Use ":memory:" for a throwaway database.
func OpenSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("record: open sqlite %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("record: connect sqlite %s: %w", path, err)
	}
	// a single connection keeps ":memory:" databases stable across queries
	db.SetMaxOpenConns(1)

	return db, nil
}

// Query runs query against db and turns each row into a Record.
//
// Columns are read by position: id, parent_id, then optionally name and ord.
// Integer ids are stringified by the driver; a NULL parent_id is blank.
func Query(ctx context.Context, db *sql.DB, query string, args ...any) ([]*Record, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("record: query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("record: columns: %w", err)
	}
	if len(cols) < 2 || len(cols) > 4 {
		return nil, fmt.Errorf("%w: got %d columns", ErrBadColumns, len(cols))
	}

	var out []*Record
	for rows.Next() {
		var (
			id, parent, name sql.NullString
			ord              sql.NullInt64
		)
		dest := []any{&id, &parent, &name, &ord}[:len(cols)]
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("record: scan row %d: %w", len(out), err)
		}
		if strings.TrimSpace(id.String) == "" {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyID, len(out))
		}
		out = append(out, &Record{
			Key:       id.String,
			ParentKey: parent.String,
			Name:      name.String,
			Order:     ord.Int64,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("record: rows: %w", err)
	}

	return out, nil
}
