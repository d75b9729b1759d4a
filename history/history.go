/*
Package history keeps the log of saved reconciliation snapshots.

PURPOSE:
  An append-by-save, user-prunable sequence of past closings. Entries are
  immutable detached snapshots: later edits to the live session never
  change saved history. The sequence is most-recent-first.

PERSISTENCE MODEL:
  The Store owns the in-memory sequence and persists the FULL sequence
  through a Persistence port after every mutation. Persistence is
  best-effort: a failed write is logged and reported to the caller, but
  the in-memory sequence remains the source of truth for the session.
  A corrupt or unreadable persisted blob is discarded at load time; the
  session starts with an empty history rather than failing.

OWNERSHIP:
  The Store exclusively owns the entry sequence. Callers get copies.

SEE ALSO:
  - store/memory.go: In-memory Persistence for tests and dev
  - store/sqlite: Production Persistence over a SQLite key-value table
*/
package history

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/warp/register-engine/register"
)

// =============================================================================
// ENTRY - Immutable saved snapshot
// =============================================================================

// Entry is one saved reconciliation. Never mutated after creation.
type Entry struct {
	ID            string
	Timestamp     time.Time
	TotalCash     decimal.Decimal
	RecordedSales decimal.Decimal
	NetCashSales  decimal.Decimal
	Difference    decimal.Decimal
}

// =============================================================================
// PERSISTENCE - External storage port
// =============================================================================

// Persistence reads and overwrites the full history sequence in external
// storage. Load is called once at startup; Persist replaces the stored
// sequence wholesale (last-writer-wins, single writer assumed).
type Persistence interface {
	Load(ctx context.Context) ([]Entry, error)
	Persist(ctx context.Context, entries []Entry) error
}

// =============================================================================
// STORE
// =============================================================================

// Store holds the history sequence in memory and mirrors it to a
// Persistence. Safe for concurrent use.
type Store struct {
	mu      sync.Mutex
	entries []Entry
	persist Persistence
	log     *slog.Logger
}

func NewStore(persist Persistence, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	return &Store{persist: persist, log: log}
}

// Load reads the persisted sequence. Any read or parse failure discards
// the stored data and starts empty; startup is never blocked.
func (s *Store) Load(ctx context.Context) {
	entries, err := s.persist.Load(ctx)
	if err != nil {
		s.log.Warn("discarding unreadable history", "error", err)
		entries = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// Save constructs an entry from the snapshot figures with a fresh id and
// the current time, prepends it, and persists the updated sequence.
// This is the sole write path that grows history. The returned error is
// a best-effort persistence failure only; the entry is always recorded
// in memory.
func (s *Store) Save(ctx context.Context, snap register.SnapshotFigures) (Entry, error) {
	entry := Entry{
		ID:            uuid.New().String(),
		Timestamp:     time.Now().UTC(),
		TotalCash:     snap.TotalCash,
		RecordedSales: snap.RecordedSales,
		NetCashSales:  snap.NetCashSales,
		Difference:    snap.Difference,
	}

	s.mu.Lock()
	s.entries = append([]Entry{entry}, s.entries...)
	snapshot := s.copyLocked()
	s.mu.Unlock()

	return entry, s.persistBestEffort(ctx, snapshot)
}

// DeleteOne removes the entry with the given id, then persists. Absent
// ids are a no-op. The bool reports whether anything was removed.
func (s *Store) DeleteOne(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	removed := false
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			removed = true
			break
		}
	}
	snapshot := s.copyLocked()
	s.mu.Unlock()

	if !removed {
		return false, nil
	}
	return true, s.persistBestEffort(ctx, snapshot)
}

// ClearAll empties the sequence and persists the empty state.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()

	return s.persistBestEffort(ctx, []Entry{})
}

// Entries returns a copy of the sequence, most recent first.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLocked()
}

func (s *Store) copyLocked() []Entry {
	entries := make([]Entry, len(s.entries))
	copy(entries, s.entries)
	return entries
}

func (s *Store) persistBestEffort(ctx context.Context, entries []Entry) error {
	if err := s.persist.Persist(ctx, entries); err != nil {
		s.log.Error("history persist failed, in-memory state retained", "error", err, "entries", len(entries))
		return err
	}
	return nil
}
