/*
Package register provides the core cash reconciliation engine.

PURPOSE:
  This package contains the domain types and arithmetic for closing out a
  cash register: a fixed denomination catalog, a physical count ledger, a
  log of manual cash adjustments, and the pure derivation that turns those
  inputs into net cash sales and a difference versus recorded sales.

KEY CONCEPTS IN THIS FILE (types.go):
  - Denomination: A currency unit (face value + label + bill/coin kind)
  - Catalog: The fixed, ordered set of denominations for the currency
  - Category: Closed enumeration of adjustment kinds (expense, deposit)
  - State: Classification of a reconciliation result

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Closed enums: Category and State reject anything outside the stated
     members at the parsing boundary
  3. Pure core: Nothing in this package performs I/O

USAGE:
  catalog := register.DefaultCatalog()
  counts := register.NewCountLedger(catalog)
  counts.SetCount(10000, 2)
  total := counts.TotalValue() // 20000

SEE ALSO:
  - counts.go: Count ledger over the catalog
  - adjustments.go: Manual cash movement log
  - engine.go: Reconciliation derivation
*/
package register

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// DENOMINATION - Static currency configuration
// =============================================================================

// Denomination is one currency unit. The catalog is configuration data,
// never mutated at runtime.
type Denomination struct {
	Value int64  // face amount, strictly positive
	Label string // display label ("10,000円札")
	Coin  bool   // coin vs bill classification
}

// Catalog is an ordered denomination set, largest face value first.
// Values are pairwise distinct.
type Catalog []Denomination

// DefaultCatalog returns the standard Japanese Yen denomination set.
func DefaultCatalog() Catalog {
	return Catalog{
		{Value: 10000, Label: "10,000円札", Coin: false},
		{Value: 5000, Label: "5,000円札", Coin: false},
		{Value: 2000, Label: "2,000円札", Coin: false},
		{Value: 1000, Label: "1,000円札", Coin: false},
		{Value: 500, Label: "500円玉", Coin: true},
		{Value: 100, Label: "100円玉", Coin: true},
		{Value: 50, Label: "50円玉", Coin: true},
		{Value: 10, Label: "10円玉", Coin: true},
		{Value: 5, Label: "5円玉", Coin: true},
		{Value: 1, Label: "1円玉", Coin: true},
	}
}

// Contains reports whether value is a catalog denomination.
func (c Catalog) Contains(value int64) bool {
	for _, d := range c {
		if d.Value == value {
			return true
		}
	}
	return false
}

// Values returns the face values in catalog order.
func (c Catalog) Values() []int64 {
	values := make([]int64, len(c))
	for i, d := range c {
		values[i] = d.Value
	}
	return values
}

// =============================================================================
// AMOUNT HELPERS
// =============================================================================

// Yen builds a decimal amount from an integer number of yen.
func Yen(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// =============================================================================
// CATEGORY - Closed enumeration of adjustment kinds
// =============================================================================

type Category string

const (
	// CategoryExpense is cash paid out of the drawer during the shift
	// (supplies bought from the till, a payout). It reduces net cash sales.
	CategoryExpense Category = "expense"

	// CategoryDeposit is cash added to the drawer outside of sales
	// (change float top-up, returned payout). It increases net cash sales.
	CategoryDeposit Category = "deposit"
)

// ParseCategory validates a category tag from user or stored data.
// Anything outside the two members is rejected.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryExpense, CategoryDeposit:
		return Category(s), nil
	default:
		return "", ErrUnknownCategory
	}
}

// =============================================================================
// STATE - Classification of a reconciliation result
// =============================================================================

type State string

const (
	// StateAwaitingInput means no recorded-sales figure has been entered
	// yet. A zero difference in this state is meaningless and must not be
	// presented as a match.
	StateAwaitingInput State = "awaiting_input"

	// StateMatch means counted cash, net of known movements, exactly equals
	// recorded sales.
	StateMatch State = "match"

	// StateSurplus means the drawer holds more cash than recorded sales
	// explain (difference > 0).
	StateSurplus State = "surplus"

	// StateShortfall means the drawer holds less cash than recorded sales
	// explain (difference < 0).
	StateShortfall State = "shortfall"
)
