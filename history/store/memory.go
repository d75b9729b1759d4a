// Package store provides Persistence implementations.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/warp/register-engine/history"
)

// =============================================================================
// MEMORY PERSISTENCE - In-memory implementation (for testing/dev)
// =============================================================================

// ErrWriteFailed is returned by a Memory with FailWrites set. Tests use
// it to exercise best-effort persistence.
var ErrWriteFailed = errors.New("memory persistence: write failed")

type Memory struct {
	mu      sync.RWMutex
	entries []history.Entry

	// FailWrites makes every Persist call fail while leaving Load intact.
	FailWrites bool
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Load(_ context.Context) ([]history.Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	entries := make([]history.Entry, len(m.entries))
	copy(entries, m.entries)
	return entries, nil
}

func (m *Memory) Persist(_ context.Context, entries []history.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailWrites {
		return ErrWriteFailed
	}
	stored := make([]history.Entry, len(entries))
	copy(stored, entries)
	m.entries = stored
	return nil
}
