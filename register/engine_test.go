package register_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/warp/register-engine/register"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func yen(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func derive(total, opening, sales, expenses, deposits int64) register.Summary {
	return register.Derive(register.Inputs{
		TotalCash:      yen(total),
		OpeningBalance: yen(opening),
		RecordedSales:  yen(sales),
		Expenses:       yen(expenses),
		Deposits:       yen(deposits),
	})
}

// =============================================================================
// DERIVATION TESTS
// =============================================================================

func TestDerive_ExactMatch(t *testing.T) {
	// GIVEN: counts worth 25000, opening float 20000, no movements
	// WHEN: recorded sales is 5000
	// THEN: net cash sales is 5000, difference 0, state match

	s := derive(25000, 20000, 5000, 0, 0)

	if !s.NetCashSales.Equal(yen(5000)) {
		t.Errorf("expected net cash sales 5000, got %v", s.NetCashSales)
	}
	if !s.Difference.IsZero() {
		t.Errorf("expected zero difference, got %v", s.Difference)
	}
	if s.State != register.StateMatch {
		t.Errorf("expected match, got %v", s.State)
	}
}

func TestDerive_ExpenseReducesNet_Surplus(t *testing.T) {
	// GIVEN: 25000 counted, 20000 opening, 1000 expense logged
	// WHEN: recorded sales is 3500
	// THEN: net = 25000-20000-1000 = 4000; difference = +500; surplus

	s := derive(25000, 20000, 3500, 1000, 0)

	if !s.NetCashSales.Equal(yen(4000)) {
		t.Errorf("expected net cash sales 4000, got %v", s.NetCashSales)
	}
	if !s.Difference.Equal(yen(500)) {
		t.Errorf("expected difference +500, got %v", s.Difference)
	}
	if s.State != register.StateSurplus {
		t.Errorf("expected surplus, got %v", s.State)
	}
}

func TestDerive_DepositIncreasesNet(t *testing.T) {
	// GIVEN: 25000 counted, 20000 opening, 2000 deposit logged
	// WHEN: recorded sales is 8000
	// THEN: net = 25000-20000+2000 = 7000; difference = -1000; shortfall

	s := derive(25000, 20000, 8000, 0, 2000)

	if !s.NetCashSales.Equal(yen(7000)) {
		t.Errorf("expected net cash sales 7000, got %v", s.NetCashSales)
	}
	if !s.Difference.Equal(yen(-1000)) {
		t.Errorf("expected difference -1000, got %v", s.Difference)
	}
	if s.State != register.StateShortfall {
		t.Errorf("expected shortfall, got %v", s.State)
	}
}

func TestDerive_NoRecordedSales_AwaitingInput(t *testing.T) {
	// GIVEN: counts worth 25000 and any movement mix
	// WHEN: no recorded sales figure has been entered
	// THEN: state is awaiting input regardless of the numeric difference

	s := derive(25000, 20000, 0, 0, 0)

	if s.State != register.StateAwaitingInput {
		t.Errorf("expected awaiting input, got %v", s.State)
	}

	// A zero difference in this state must not classify as a match.
	s = derive(20000, 20000, 0, 0, 0)
	if !s.Difference.IsZero() {
		t.Errorf("expected zero difference, got %v", s.Difference)
	}
	if s.State != register.StateAwaitingInput {
		t.Errorf("expected awaiting input on zero difference, got %v", s.State)
	}
}

func TestDerive_InvariantHoldsAcrossInputs(t *testing.T) {
	// Property: difference == (total - opening - expenses + deposits) - sales
	cases := []struct {
		total, opening, sales, expenses, deposits int64
	}{
		{0, 0, 0, 0, 0},
		{73430, 73430, 0, 0, 0},
		{120000, 73430, 45000, 1500, 0},
		{98765, 50000, 48000, 0, 700},
		{10, 100000, 1, 2, 3},
	}

	for _, c := range cases {
		s := derive(c.total, c.opening, c.sales, c.expenses, c.deposits)
		want := yen(c.total).Sub(yen(c.opening)).Sub(yen(c.expenses)).Add(yen(c.deposits)).Sub(yen(c.sales))
		if !s.Difference.Equal(want) {
			t.Errorf("difference for %+v: expected %v, got %v", c, want, s.Difference)
		}
	}
}

func TestExpectedCash_EquivalentReframing(t *testing.T) {
	// GIVEN: arbitrary inputs
	// THEN: totalCash - ExpectedCash equals Derive's difference

	in := register.Inputs{
		TotalCash:      yen(120000),
		OpeningBalance: yen(73430),
		RecordedSales:  yen(45000),
		Expenses:       yen(1500),
		Deposits:       yen(300),
	}

	diff := register.Derive(in).Difference
	reframed := in.TotalCash.Sub(register.ExpectedCash(in))

	if !diff.Equal(reframed) {
		t.Errorf("reframings disagree: derive %v, expected-cash %v", diff, reframed)
	}
}

// =============================================================================
// CLASSIFICATION TESTS
// =============================================================================

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		difference int64
		sales      int64
		want       register.State
	}{
		{"no sales entered", 500, 0, register.StateAwaitingInput},
		{"negative sales treated as unset", 0, -100, register.StateAwaitingInput},
		{"zero difference", 0, 5000, register.StateMatch},
		{"positive difference", 1, 5000, register.StateSurplus},
		{"negative difference", -1, 5000, register.StateShortfall},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := register.Classify(yen(c.difference), yen(c.sales))
			if got != c.want {
				t.Errorf("expected %v, got %v", c.want, got)
			}
		})
	}
}
