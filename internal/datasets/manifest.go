package datasets

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current manifest schema version. Bump on schema
// changes; stale manifests are advisory and safe to delete.
const schemaVersion = 1

// ErrSchemaMismatch indicates the manifest schema version doesn't match the
// expected version.
var ErrSchemaMismatch = errors.New("manifest schema version mismatch")

// Entry records one completed dataset fetch.
type Entry struct {
	Dataset           Dataset
	SourceURL         string
	FetchedAt         time.Time
	CompressedBytes   int64
	DecompressedBytes int64
}

// Manifest persists fetch metadata in SQLite under the data directory.
type Manifest struct {
	db   *sql.DB
	path string
}

// OpenManifest initializes or connects to the manifest database in dataDir.
func OpenManifest(dataDir string) (*Manifest, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "manifest.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	m := &Manifest{db: db, path: dbPath}
	if err := m.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

// Path returns the manifest database location.
func (m *Manifest) Path() string {
	if m == nil {
		return ""
	}
	return m.path
}

// Close closes the underlying database connection.
func (m *Manifest) Close() error {
	if m == nil || m.db == nil {
		return nil
	}
	return m.db.Close()
}

func (m *Manifest) initSchema(ctx context.Context) error {
	var tableExists int
	err := m.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableExists == 0 {
		return m.createSchema(ctx)
	}

	var version int
	err = m.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, m.path)
	}
	return nil
}

func (m *Manifest) createSchema(ctx context.Context) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}

// Record inserts or replaces the fetch entry for a dataset.
func (m *Manifest) Record(ctx context.Context, entry Entry) error {
	if !entry.Dataset.Valid() {
		return fmt.Errorf("record fetch: unknown dataset %q", string(entry.Dataset))
	}
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO fetches (dataset, source_url, fetched_at, compressed_bytes, decompressed_bytes)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(dataset) DO UPDATE SET
             source_url = excluded.source_url,
             fetched_at = excluded.fetched_at,
             compressed_bytes = excluded.compressed_bytes,
             decompressed_bytes = excluded.decompressed_bytes`,
		string(entry.Dataset),
		entry.SourceURL,
		entry.FetchedAt.UTC().Format(time.RFC3339Nano),
		entry.CompressedBytes,
		entry.DecompressedBytes,
	)
	if err != nil {
		return fmt.Errorf("record fetch: %w", err)
	}
	return nil
}

// Lookup returns the fetch entry for a dataset, if one was recorded.
func (m *Manifest) Lookup(ctx context.Context, d Dataset) (Entry, bool, error) {
	row := m.db.QueryRowContext(ctx,
		`SELECT source_url, fetched_at, compressed_bytes, decompressed_bytes
         FROM fetches WHERE dataset = ?`,
		string(d),
	)

	var (
		entry     = Entry{Dataset: d}
		fetchedAt string
	)
	err := row.Scan(&entry.SourceURL, &fetchedAt, &entry.CompressedBytes, &entry.DecompressedBytes)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("lookup fetch: %w", err)
	}

	entry.FetchedAt, err = time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return Entry{}, false, fmt.Errorf("lookup fetch: parse fetched_at %q: %w", fetchedAt, err)
	}
	return entry, true, nil
}

// Delete removes a dataset's fetch entry. Deleting an absent entry is not an
// error.
func (m *Manifest) Delete(ctx context.Context, d Dataset) error {
	if _, err := m.db.ExecContext(ctx, "DELETE FROM fetches WHERE dataset = ?", string(d)); err != nil {
		return fmt.Errorf("delete fetch entry: %w", err)
	}
	return nil
}
