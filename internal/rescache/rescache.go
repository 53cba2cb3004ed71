// Package rescache caches fetched namespace/annotation resource bodies
// by URL, so that repeated compilations against the same working
// directory skip re-fetching (SPEC_FULL.md's DOMAIN STACK entry for
// modernc.org/sqlite).
//
// Grounded on the teacher's internal/store package's dual JSONL+SQLite
// persistence, reduced to the single table a URL->body cache needs: the
// teacher's generic schema-driven store (internal/store/schema.go) is
// overkill for one fixed-shape table, so this opens the same
// modernc.org/sqlite driver directly the way internal/store/sqlite.go's
// openStoreDB does, and keeps a JSONL append log as the teacher's
// internal/storage/jsonl.go does for its write-ahead human-readable
// mirror.
package rescache

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// Cache is a URL -> resource-body cache backed by a SQLite database, with
// a JSONL append log mirroring every write for human inspection.
type Cache struct {
	mu  sync.Mutex
	db  *sql.DB
	log *os.File
}

type jsonlEntry struct {
	URL  string `json:"url"`
	Body string `json:"body"`
}

// Open opens (creating if necessary) the cache database and JSONL log
// under dir.
func Open(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "rescache.db"))
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS resources (
		url  TEXT PRIMARY KEY,
		body BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating resources table: %w", err)
	}

	logFile, err := os.OpenFile(filepath.Join(dir, "resources.jsonl"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("opening jsonl log: %w", err)
	}

	return &Cache{db: db, log: logFile}, nil
}

// Close releases the cache's database and log handles.
func (c *Cache) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	logErr := c.log.Close()
	dbErr := c.db.Close()
	if dbErr != nil {
		return dbErr
	}
	return logErr
}

// Get returns the cached body for url, if present.
func (c *Cache) Get(url string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var body []byte
	err := c.db.QueryRow(`SELECT body FROM resources WHERE url = ?`, url).Scan(&body)
	if err != nil {
		return nil, false
	}
	return body, true
}

// Put stores body under url, appending a mirroring entry to the JSONL
// log.
func (c *Cache) Put(url string, body []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.db.Exec(
		`INSERT INTO resources (url, body) VALUES (?, ?) ON CONFLICT(url) DO UPDATE SET body = excluded.body`,
		url, body,
	); err != nil {
		return fmt.Errorf("inserting resource: %w", err)
	}

	encoded, err := json.Marshal(jsonlEntry{URL: url, Body: string(body)})
	if err != nil {
		return fmt.Errorf("encoding jsonl entry: %w", err)
	}
	w := bufio.NewWriter(c.log)
	if _, err := w.Write(encoded); err != nil {
		return fmt.Errorf("writing jsonl entry: %w", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return err
	}
	return w.Flush()
}
