/*
adjustments.go - Manual cash movement log

PURPOSE:
  Records cash movements the raw count cannot explain: expenses paid out
  of the drawer and deposits added to it. Each entry carries a positive
  amount and a category; the engine folds the category sums into net cash
  sales.

INVARIANTS:
  1. Entries are immutable once created. There is no update operation;
     a wrong entry is removed and re-added.
  2. The sequence is insertion-ordered. Category sums are order-independent
     reductions over it.
  3. A missing, zero, or negative amount never creates an entry. The
     rejection is a user-visible notice upstream, not a fault.
  4. Removal by id is idempotent: an absent id is a silent no-op.

SEE ALSO:
  - engine.go: Consumes SumByCategory()
  - errors.go: ErrInvalidAmount, ErrUnknownCategory
*/
package register

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// =============================================================================
// ADJUSTMENT ENTRY
// =============================================================================

// Entry is one logged cash movement. Never mutated after creation.
type Entry struct {
	ID       string
	Amount   decimal.Decimal // strictly positive
	Category Category
}

// =============================================================================
// ADJUSTMENT LEDGER
// =============================================================================

// AdjustmentLedger holds the ordered adjustment sequence.
// Not safe for concurrent use; the owning Session serializes access.
type AdjustmentLedger struct {
	entries []Entry
}

func NewAdjustmentLedger() *AdjustmentLedger {
	return &AdjustmentLedger{}
}

// Add validates and appends a new entry with a fresh id.
// Non-positive amounts and unknown categories are rejected without any
// state mutation.
func (l *AdjustmentLedger) Add(amount decimal.Decimal, category Category) (Entry, error) {
	if !amount.IsPositive() {
		return Entry{}, &InvalidAmountError{Amount: amount}
	}
	switch category {
	case CategoryExpense, CategoryDeposit:
	default:
		return Entry{}, ErrUnknownCategory
	}

	entry := Entry{
		ID:       uuid.New().String(),
		Amount:   amount,
		Category: category,
	}
	l.entries = append(l.entries, entry)
	return entry, nil
}

// Remove deletes the entry with the given id if present. Absent ids are
// a silent no-op; the returned bool reports whether anything was removed.
func (l *AdjustmentLedger) Remove(id string) bool {
	for i, e := range l.entries {
		if e.ID == id {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Entries returns a copy of the sequence in insertion order.
func (l *AdjustmentLedger) Entries() []Entry {
	entries := make([]Entry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// SumByCategory reduces the sequence to the total amount for one category.
// Zero for an empty match set.
func (l *AdjustmentLedger) SumByCategory(category Category) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range l.entries {
		if e.Category == category {
			sum = sum.Add(e.Amount)
		}
	}
	return sum
}

// Clear drops all entries.
func (l *AdjustmentLedger) Clear() {
	l.entries = nil
}
