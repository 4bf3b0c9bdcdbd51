// Package pathcache persists entity-to-path mappings produced by folder
// creation, so downstream tooling can resolve where a tracked entity's files
// live (and which entity a given path belongs to) without rescanning disk.
package pathcache

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("path not found in cache")

// Entry is one entity-to-path mapping.
type Entry struct {
	EntityType string
	EntityID   int64
	EntityName string
	Root       string // storage root name, e.g. "primary"
	Path       string // path relative to the storage root
}

// Cache is a SQLite-backed store of Entry rows. It is safe for concurrent
// use; database/sql serializes access.
type Cache struct {
	db *sql.DB
}

// Open opens the cache database at dbPath, creating the file and schema if
// needed.
func Open(dbPath string) (*Cache, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open path cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set WAL mode on path cache: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS path_cache (
			entity_type TEXT NOT NULL,
			entity_id   INTEGER NOT NULL,
			entity_name TEXT NOT NULL,
			root        TEXT NOT NULL,
			path        TEXT NOT NULL,
			UNIQUE (entity_type, entity_id, root, path)
		);
		CREATE INDEX IF NOT EXISTS idx_path_cache_entity ON path_cache (entity_type, entity_id);
		CREATE INDEX IF NOT EXISTS idx_path_cache_path ON path_cache (root, path);
	`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create path cache tables: %w", err)
	}

	return &Cache{db: db}, nil
}

// Add inserts one mapping. Re-adding an existing mapping is a no-op.
func (c *Cache) Add(e Entry) error {
	_, err := c.db.Exec(
		"INSERT OR IGNORE INTO path_cache (entity_type, entity_id, entity_name, root, path) VALUES (?, ?, ?, ?, ?)",
		e.EntityType, e.EntityID, e.EntityName, e.Root, e.Path,
	)
	if err != nil {
		return fmt.Errorf("insert path cache entry: %w", err)
	}
	return nil
}

// AddBatch inserts all entries in a single transaction.
func (c *Cache) AddBatch(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin path cache batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }() // no-op if committed

	stmt, err := tx.Prepare(
		"INSERT OR IGNORE INTO path_cache (entity_type, entity_id, entity_name, root, path) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("prepare path cache insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		if _, err := stmt.Exec(e.EntityType, e.EntityID, e.EntityName, e.Root, e.Path); err != nil {
			return fmt.Errorf("insert path cache entry for %s %d: %w", e.EntityType, e.EntityID, err)
		}
	}
	return tx.Commit()
}

// PathsForEntity returns every cached path for the entity, in insertion
// order. An entity with no cached paths yields an empty slice.
func (c *Cache) PathsForEntity(entityType string, entityID int64) ([]string, error) {
	rows, err := c.db.Query(
		"SELECT path FROM path_cache WHERE entity_type = ? AND entity_id = ? ORDER BY rowid",
		entityType, entityID,
	)
	if err != nil {
		return nil, fmt.Errorf("query path cache: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan path cache row: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// EntityForPath resolves a path under a storage root back to its entity.
// Returns ErrNotFound if the path was never registered.
func (c *Cache) EntityForPath(root, path string) (*Entry, error) {
	row := c.db.QueryRow(
		"SELECT entity_type, entity_id, entity_name, root, path FROM path_cache WHERE root = ? AND path = ?",
		root, path,
	)

	var e Entry
	if err := row.Scan(&e.EntityType, &e.EntityID, &e.EntityName, &e.Root, &e.Path); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query path cache: %w", err)
	}
	return &e, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
