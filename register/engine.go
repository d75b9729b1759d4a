/*
engine.go - Reconciliation derivation

PURPOSE:
  The one genuine algorithm in the system. Combines the counted drawer
  total, the opening float, and the adjustment sums into net cash sales,
  then compares against the independently recorded sales figure to
  produce the difference and its classification.

CANONICAL FORMULA:
  netCashSales = totalCash - openingBalance - expenses + deposits
  difference   = netCashSales - recordedSales

  Physical cash counted, adjusted for known cash movements, must equal
  the externally recorded sales figure; any gap is the difference.

SIGN CONVENTION:
  difference > 0 means the drawer holds MORE than recorded sales explain
  (surplus). difference < 0 means a shortfall. Downstream display logic
  branches on this sign, so it is fixed here and nowhere else.

AWAITING INPUT:
  When recordedSales <= 0 no figure has been entered yet. A zero
  difference in that state is absence-of-input, not equality, so the
  classification is StateAwaitingInput regardless of the numbers.

PURITY:
  Derive is a pure function of its inputs. It is recomputed eagerly on
  every state change; at this data scale (a dozen denominations, a
  handful of adjustments) no caching is needed or wanted.

SEE ALSO:
  - session.go: Builds Inputs from live ledgers
  - register/engine tests: Worked scenarios pinning the arithmetic
*/
package register

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUTS / SUMMARY
// =============================================================================

// Inputs are the scalars the derivation consumes. All are plain decimal
// amounts; the ledgers have already been reduced.
type Inputs struct {
	TotalCash      decimal.Decimal
	OpeningBalance decimal.Decimal
	RecordedSales  decimal.Decimal
	Expenses       decimal.Decimal
	Deposits       decimal.Decimal
}

// Summary is the derived reconciliation result.
type Summary struct {
	TotalCash      decimal.Decimal
	OpeningBalance decimal.Decimal
	RecordedSales  decimal.Decimal
	Expenses       decimal.Decimal
	Deposits       decimal.Decimal
	NetCashSales   decimal.Decimal
	Difference     decimal.Decimal
	State          State
}

// =============================================================================
// DERIVATION
// =============================================================================

// Derive computes the reconciliation triple and its classification.
// difference = 0 iff the counted drawer, after removing the starting
// float and accounting for logged movements, exactly equals recorded
// sales.
func Derive(in Inputs) Summary {
	net := in.TotalCash.
		Sub(in.OpeningBalance).
		Sub(in.Expenses).
		Add(in.Deposits)
	diff := net.Sub(in.RecordedSales)

	return Summary{
		TotalCash:      in.TotalCash,
		OpeningBalance: in.OpeningBalance,
		RecordedSales:  in.RecordedSales,
		Expenses:       in.Expenses,
		Deposits:       in.Deposits,
		NetCashSales:   net,
		Difference:     diff,
		State:          Classify(diff, in.RecordedSales),
	}
}

// ExpectedCash is the equivalent reframing used by some callers:
// what the drawer should contain given recorded sales and movements.
// totalCash - ExpectedCash yields the same difference Derive computes.
func ExpectedCash(in Inputs) decimal.Decimal {
	return in.OpeningBalance.
		Add(in.RecordedSales).
		Add(in.Expenses).
		Sub(in.Deposits)
}

// Classify maps a difference and the recorded-sales figure to a State.
// recordedSales <= 0 means no figure entered yet.
func Classify(difference, recordedSales decimal.Decimal) State {
	if !recordedSales.IsPositive() {
		return StateAwaitingInput
	}
	switch difference.Sign() {
	case 0:
		return StateMatch
	case 1:
		return StateSurplus
	default:
		return StateShortfall
	}
}
