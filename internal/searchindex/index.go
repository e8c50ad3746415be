// Package searchindex maintains a disposable SQLite full-text index over the
// snippet store. The flat file stays the source of truth; the index is
// rebuilt whenever the file's hash changes.
package searchindex

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/matsen/snip/internal/snippet"
	"github.com/matsen/snip/internal/storage"
	_ "modernc.org/sqlite"
)

// DefaultLimit is the default maximum number of search results.
const DefaultLimit = 20

// Index wraps the SQLite index database.
type Index struct {
	db *sql.DB
}

// Result is a single search hit.
type Result struct {
	snippet.Entry
	Rank float64 `json:"rank"`
}

// Open opens or creates the index database at path.
func Open(path string) (*Index, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("creating index directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening index: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Index{db: db}, nil
}

// Close closes the database connection.
func (x *Index) Close() error {
	return x.db.Close()
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE VIRTUAL TABLE IF NOT EXISTS snippets_fts USING fts5(
			name,
			value,
			position UNINDEXED
		);

		CREATE TABLE IF NOT EXISTS _meta (
			key TEXT PRIMARY KEY,
			value TEXT
		);
	`
	_, err := db.Exec(schema)
	return err
}

// storedHash returns the store file hash recorded at the last rebuild.
func (x *Index) storedHash() (string, error) {
	var hash sql.NullString
	err := x.db.QueryRow("SELECT value FROM _meta WHERE key = 'file_hash'").Scan(&hash)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return hash.String, nil
}

// LastSync returns when the index was last rebuilt (zero if never).
func (x *Index) LastSync() (time.Time, error) {
	var timeStr sql.NullString
	err := x.db.QueryRow("SELECT value FROM _meta WHERE key = 'last_sync'").Scan(&timeStr)
	if err == sql.ErrNoRows || (err == nil && !timeStr.Valid) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, timeStr.String)
}

// NeedsSync reports whether the store file changed since the last rebuild.
func (x *Index) NeedsSync(storePath string) (bool, error) {
	current, err := storage.FileHash(storePath)
	if err != nil {
		return false, err
	}
	stored, err := x.storedHash()
	if err != nil {
		return false, fmt.Errorf("reading stored hash: %w", err)
	}
	return current != stored, nil
}

// Rebuild replaces the index contents with entries and records hash.
func (x *Index) Rebuild(entries []snippet.Entry, hash string) error {
	tx, err := x.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM snippets_fts"); err != nil {
		return fmt.Errorf("clearing index: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO snippets_fts (name, value, position) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		if _, err := stmt.Exec(e.Name, e.Value, i); err != nil {
			return fmt.Errorf("indexing %s: %w", e.Name, err)
		}
	}

	if _, err := tx.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES ('file_hash', ?)`, hash); err != nil {
		return fmt.Errorf("storing hash: %w", err)
	}
	if _, err := tx.Exec(`INSERT OR REPLACE INTO _meta (key, value) VALUES ('last_sync', ?)`,
		time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("storing sync time: %w", err)
	}

	return tx.Commit()
}

// Sync rebuilds the index from the store file when it has changed.
// It reports whether a rebuild happened.
func (x *Index) Sync(storePath string, load func() ([]snippet.Entry, error)) (bool, error) {
	needs, err := x.NeedsSync(storePath)
	if err != nil {
		return false, err
	}
	if !needs {
		return false, nil
	}

	hash, err := storage.FileHash(storePath)
	if err != nil {
		return false, err
	}
	entries, err := load()
	if err != nil {
		return false, err
	}
	if err := x.Rebuild(entries, hash); err != nil {
		return false, err
	}
	return true, nil
}

// Count returns the number of indexed entries.
func (x *Index) Count() (int, error) {
	var n int
	if err := x.db.QueryRow("SELECT COUNT(*) FROM snippets_fts").Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// Search runs a full-text query over names and values, best match first.
// A limit <= 0 uses DefaultLimit.
func (x *Index) Search(query string, limit int) ([]Result, error) {
	query = PrepareQuery(query)
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	rows, err := x.db.Query(`
		SELECT name, value, bm25(snippets_fts) AS score
		FROM snippets_fts
		WHERE snippets_fts MATCH ?
		ORDER BY score, position
		LIMIT ?
	`, query, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.Name, &r.Value, &r.Rank); err != nil {
			return nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// PrepareQuery turns free text into an FTS5 query. Each word becomes a
// quoted prefix term so shell punctuation in the input is never parsed as
// FTS5 syntax. Words without letters or digits are dropped.
func PrepareQuery(query string) string {
	words := strings.Fields(query)
	terms := make([]string, 0, len(words))
	for _, w := range words {
		if strings.IndexFunc(w, isWordRune) < 0 {
			continue
		}
		w = strings.ReplaceAll(w, "\"", "\"\"")
		terms = append(terms, "\""+w+"\"*")
	}
	return strings.Join(terms, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
