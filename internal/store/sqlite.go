package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/alkime/postcraft/internal/post"
)

// SQLitePersister stores the saved set in a local SQLite database.
type SQLitePersister struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the database at path and ensures the schema.
func OpenSQLite(path string) (*SQLitePersister, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	schema := `
	CREATE TABLE IF NOT EXISTS saved_post (
		position INTEGER PRIMARY KEY,
		id TEXT NOT NULL DEFAULT '',
		post TEXT NOT NULL,
		intent TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SQLitePersister{db: db}, nil
}

// Close releases the database handle.
func (s *SQLitePersister) Close() error {
	return s.db.Close()
}

// Load reads the whole saved set in insertion order.
func (s *SQLitePersister) Load(ctx context.Context) ([]post.Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, post, intent FROM saved_post ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Post, &p.Intent); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

// Replace overwrites the stored set with the given posts in one transaction.
func (s *SQLitePersister) Replace(ctx context.Context, posts []post.Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM saved_post`); err != nil {
		return err
	}
	for i, p := range posts {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO saved_post (position, id, post, intent) VALUES (?, ?, ?, ?)`,
			i, p.ID, p.Post, p.Intent); err != nil {
			return err
		}
	}
	return tx.Commit()
}

var _ Persister = (*SQLitePersister)(nil)
