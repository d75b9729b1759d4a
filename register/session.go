/*
session.go - One register-closing session

PURPOSE:
  Aggregates the live state of a single closing: the count ledger, the
  adjustment ledger, and the two scalar inputs (recorded sales, opening
  balance). Every read of Summary() re-derives the result from current
  state; there is no cached derived value to go stale.

STATE MODEL:
  Single user, event-driven. All mutations complete synchronously before
  the next event; the session serializes access with a mutex so the HTTP
  layer can share it across requests.

RESET:
  Reset zeroes counts, clears adjustments, and zeroes recorded sales.
  The opening balance is drawer setup, not shift data, so it survives a
  reset. History is never touched by reset.

SEE ALSO:
  - engine.go: The derivation Summary() delegates to
  - history: Snapshot() feeds the history store's save path
*/
package register

import (
	"sync"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SESSION
// =============================================================================

// Session owns the mutable state of one register closing.
// Safe for concurrent use.
type Session struct {
	mu sync.Mutex

	counts         *CountLedger
	adjustments    *AdjustmentLedger
	recordedSales  decimal.Decimal
	openingBalance decimal.Decimal
}

// NewSession builds a session over the given catalog with all counts at
// zero and the given opening float.
func NewSession(catalog Catalog, openingBalance decimal.Decimal) *Session {
	return &Session{
		counts:         NewCountLedger(catalog),
		adjustments:    NewAdjustmentLedger(),
		recordedSales:  decimal.Zero,
		openingBalance: openingBalance,
	}
}

// SetCount updates one denomination's physical count.
func (s *Session) SetCount(value int64, count int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts.SetCount(value, count)
}

// SetRecordedSales replaces the point-of-sale reported total. Negative
// input is coerced to zero, which classifies as awaiting input.
func (s *Session) SetRecordedSales(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.IsNegative() {
		v = decimal.Zero
	}
	s.recordedSales = v
}

// SetOpeningBalance replaces the starting float. Negative input is
// coerced to zero.
func (s *Session) SetOpeningBalance(v decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.IsNegative() {
		v = decimal.Zero
	}
	s.openingBalance = v
}

// AddAdjustment logs a cash movement.
func (s *Session) AddAdjustment(amount decimal.Decimal, category Category) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustments.Add(amount, category)
}

// RemoveAdjustment removes one entry by id. Idempotent.
func (s *Session) RemoveAdjustment(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustments.Remove(id)
}

// Adjustments returns the logged movements in insertion order.
func (s *Session) Adjustments() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.adjustments.Entries()
}

// Lines returns the per-denomination count breakdown in catalog order.
func (s *Session) Lines() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts.Lines()
}

// Summary derives the current reconciliation result.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summaryLocked()
}

func (s *Session) summaryLocked() Summary {
	return Derive(Inputs{
		TotalCash:      s.counts.TotalValue(),
		OpeningBalance: s.openingBalance,
		RecordedSales:  s.recordedSales,
		Expenses:       s.adjustments.SumByCategory(CategoryExpense),
		Deposits:       s.adjustments.SumByCategory(CategoryDeposit),
	})
}

// BillTotal and CoinTotal expose the kind subtotals for display.
func (s *Session) BillTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts.TotalByKind(false)
}

func (s *Session) CoinTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counts.TotalByKind(true)
}

// Reset zeroes counts and shift inputs. Opening balance is preserved.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counts.Reset()
	s.adjustments.Clear()
	s.recordedSales = decimal.Zero
}

// SnapshotFigures are the four key numbers captured when saving to
// history. Fully detached from the live ledgers.
type SnapshotFigures struct {
	TotalCash     decimal.Decimal
	RecordedSales decimal.Decimal
	NetCashSales  decimal.Decimal
	Difference    decimal.Decimal
}

// Snapshot captures the current figures for the history store. Refused
// while the session is awaiting a recorded-sales figure, since the
// difference would be meaningless.
func (s *Session) Snapshot() (SnapshotFigures, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := s.summaryLocked()
	if summary.State == StateAwaitingInput {
		return SnapshotFigures{}, ErrAwaitingInput
	}
	return SnapshotFigures{
		TotalCash:     summary.TotalCash,
		RecordedSales: summary.RecordedSales,
		NetCashSales:  summary.NetCashSales,
		Difference:    summary.Difference,
	}, nil
}
