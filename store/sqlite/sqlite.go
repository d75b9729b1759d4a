/*
Package sqlite provides a SQLite-backed implementation of history.Persistence.

PURPOSE:
  Persists the reconciliation history as a single self-describing JSON
  document under one well-known key in a key-value table. The history
  package treats storage as a whole-blob overwrite, so the schema is
  deliberately a KV table rather than one row per entry.

LAYOUT:
  kv(key TEXT PRIMARY KEY, value TEXT, updated_at TEXT)

  The history blob lives under key "register.history" as a JSON array,
  most-recent-first. Numeric fields are serialized as plain decimal
  strings to avoid any float round-trip; timestamps are ISO-8601 (RFC
  3339) instants.

FAILURE SEMANTICS:
  Load reports read and parse errors to the caller; the history store
  discards the corrupt blob and starts empty. Persist errors are likewise
  surfaced and handled upstream as best-effort (logged, non-fatal).

WAL MODE:
  SQLite is opened with WAL for better crash recovery. A single writer is
  assumed (one register session per process).

USAGE:
  store, err := sqlite.New("./register.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  entries := history.NewStore(store, logger)

SEE ALSO:
  - history/history.go: The port this package implements
  - history/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/warp/register-engine/history"
)

const historyKey = "register.history"

// Store implements history.Persistence over a SQLite key-value table.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WIRE FORMAT
// =============================================================================

// entryJSON is the persisted shape of one history entry. Numeric fields
// are plain JSON numbers carried as json.Number so the decimal round-trip
// is exact.
type entryJSON struct {
	ID            string      `json:"id"`
	Timestamp     string      `json:"timestamp"`
	TotalCash     json.Number `json:"totalCash"`
	RecordedSales json.Number `json:"recordedSales"`
	NetCashSales  json.Number `json:"netCashSales"`
	Difference    json.Number `json:"difference"`
}

func toWire(entries []history.Entry) []entryJSON {
	wire := make([]entryJSON, len(entries))
	for i, e := range entries {
		wire[i] = entryJSON{
			ID:            e.ID,
			Timestamp:     e.Timestamp.UTC().Format(time.RFC3339Nano),
			TotalCash:     json.Number(e.TotalCash.String()),
			RecordedSales: json.Number(e.RecordedSales.String()),
			NetCashSales:  json.Number(e.NetCashSales.String()),
			Difference:    json.Number(e.Difference.String()),
		}
	}
	return wire
}

func fromWire(wire []entryJSON) ([]history.Entry, error) {
	entries := make([]history.Entry, len(wire))
	for i, w := range wire {
		ts, err := time.Parse(time.RFC3339Nano, w.Timestamp)
		if err != nil {
			return nil, fmt.Errorf("entry %s: bad timestamp %q: %w", w.ID, w.Timestamp, err)
		}
		entries[i] = history.Entry{ID: w.ID, Timestamp: ts}

		for _, f := range []struct {
			name string
			raw  json.Number
			dst  *decimal.Decimal
		}{
			{"totalCash", w.TotalCash, &entries[i].TotalCash},
			{"recordedSales", w.RecordedSales, &entries[i].RecordedSales},
			{"netCashSales", w.NetCashSales, &entries[i].NetCashSales},
			{"difference", w.Difference, &entries[i].Difference},
		} {
			d, err := decimal.NewFromString(f.raw.String())
			if err != nil {
				return nil, fmt.Errorf("entry %s: bad %s %q: %w", w.ID, f.name, f.raw, err)
			}
			*f.dst = d
		}
	}
	return entries, nil
}

// =============================================================================
// PERSISTENCE IMPLEMENTATION
// =============================================================================

// Load reads the history blob. A missing key yields an empty history;
// unreadable or malformed data is an error for the caller to discard.
func (s *Store) Load(ctx context.Context) ([]history.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv WHERE key = ?`, historyKey,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var wire []entryJSON
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return nil, fmt.Errorf("corrupt history blob: %w", err)
	}
	return fromWire(wire)
}

// Persist overwrites the stored history with the given sequence.
func (s *Store) Persist(ctx context.Context, entries []history.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(toWire(entries))
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, historyKey, string(raw), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}
