package customdict

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteDict keeps custom words in a single-table SQLite database.
type SQLiteDict struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteDict, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}
	const schema = `
CREATE TABLE IF NOT EXISTS custom_words (
	word TEXT PRIMARY KEY,
	added_at TEXT NOT NULL DEFAULT (datetime('now'))
);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}
	return &SQLiteDict{db: db}, nil
}

func (d *SQLiteDict) Add(ctx context.Context, word string) error {
	_, err := d.db.ExecContext(ctx, `INSERT OR IGNORE INTO custom_words (word) VALUES (?)`, word)
	return err
}

func (d *SQLiteDict) Remove(ctx context.Context, word string) error {
	_, err := d.db.ExecContext(ctx, `DELETE FROM custom_words WHERE word = ?`, word)
	return err
}

func (d *SQLiteDict) All(ctx context.Context) ([]string, error) {
	rows, err := d.db.QueryContext(ctx, `SELECT word FROM custom_words ORDER BY word`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var words []string
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

func (d *SQLiteDict) Close() error {
	return d.db.Close()
}
