/*
counts.go - Physical denomination count ledger

PURPOSE:
  Tracks how many of each denomination are physically in the drawer and
  reduces the counts to a total cash value. This is the first of the two
  independent observations the reconciliation compares (the other being
  the recorded sales figure).

CRITICAL INVARIANTS:
  1. The ledger's key set is always exactly the catalog's value set -
     no missing keys, no extraneous keys, from construction onward.
  2. Counts are integers >= 0. Negative input is clamped to 0 at the
     boundary, never rejected as a fault.
  3. Mutation is point updates only (one denomination at a time), except
     Reset which zeroes everything as a single consistent step.

SEE ALSO:
  - types.go: Catalog definition
  - engine.go: Consumes TotalValue()
*/
package register

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// COUNT LEDGER - Denomination value -> physical count
// =============================================================================

// CountLedger maps each catalog denomination to a non-negative count.
// Not safe for concurrent use; the owning Session serializes access.
type CountLedger struct {
	catalog Catalog
	counts  map[int64]int64
}

// NewCountLedger builds a ledger with every catalog denomination at zero.
func NewCountLedger(catalog Catalog) *CountLedger {
	counts := make(map[int64]int64, len(catalog))
	for _, d := range catalog {
		counts[d.Value] = 0
	}
	return &CountLedger{catalog: catalog, counts: counts}
}

// Catalog returns the catalog this ledger was built from.
func (l *CountLedger) Catalog() Catalog {
	return l.catalog
}

// SetCount replaces one denomination's count. Negative input is clamped
// to zero. A value outside the catalog is the only error case.
func (l *CountLedger) SetCount(value int64, count int64) error {
	if _, ok := l.counts[value]; !ok {
		return ErrUnknownDenomination
	}
	if count < 0 {
		count = 0
	}
	l.counts[value] = count
	return nil
}

// Count returns the stored count for a denomination, 0 for values outside
// the catalog.
func (l *CountLedger) Count(value int64) int64 {
	return l.counts[value]
}

// TotalValue reduces the ledger: sum over the catalog of count * value.
// Zero iff every count is zero.
func (l *CountLedger) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for _, d := range l.catalog {
		if n := l.counts[d.Value]; n != 0 {
			total = total.Add(Yen(d.Value * n))
		}
	}
	return total
}

// TotalByKind sums only bills (coin=false) or only coins (coin=true).
func (l *CountLedger) TotalByKind(coin bool) decimal.Decimal {
	total := decimal.Zero
	for _, d := range l.catalog {
		if d.Coin != coin {
			continue
		}
		if n := l.counts[d.Value]; n != 0 {
			total = total.Add(Yen(d.Value * n))
		}
	}
	return total
}

// Line is one row of the count breakdown: a denomination, its count, and
// the resulting line value.
type Line struct {
	Denomination Denomination
	Count        int64
	LineValue    decimal.Decimal
}

// Lines returns the per-denomination breakdown in catalog order.
func (l *CountLedger) Lines() []Line {
	lines := make([]Line, len(l.catalog))
	for i, d := range l.catalog {
		n := l.counts[d.Value]
		lines[i] = Line{
			Denomination: d,
			Count:        n,
			LineValue:    Yen(d.Value * n),
		}
	}
	return lines
}

// Reset zeroes every count in one step. Observers never see a partially
// reset ledger.
func (l *CountLedger) Reset() {
	fresh := make(map[int64]int64, len(l.catalog))
	for _, d := range l.catalog {
		fresh[d.Value] = 0
	}
	l.counts = fresh
}
