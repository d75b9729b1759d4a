package register_test

import (
	"testing"

	"github.com/warp/register-engine/register"
)

func newTestSession() *register.Session {
	return register.NewSession(register.DefaultCatalog(), yen(20000))
}

func TestSession_SummaryRecomputedAfterEveryMutation(t *testing.T) {
	// GIVEN: a fresh session with a 20000 float
	// WHEN: counts, sales and adjustments change
	// THEN: each subsequent Summary reflects the full current state

	s := newTestSession()

	if got := s.Summary(); got.State != register.StateAwaitingInput {
		t.Fatalf("fresh session should await input, got %v", got.State)
	}

	if err := s.SetCount(10000, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SetCount(1000, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetRecordedSales(yen(5000))

	sum := s.Summary()
	if !sum.TotalCash.Equal(yen(25000)) {
		t.Errorf("expected total cash 25000, got %v", sum.TotalCash)
	}
	if !sum.NetCashSales.Equal(yen(5000)) {
		t.Errorf("expected net cash sales 5000, got %v", sum.NetCashSales)
	}
	if sum.State != register.StateMatch {
		t.Errorf("expected match, got %v", sum.State)
	}

	// Logging an expense moves the same count into surplus territory.
	s.SetRecordedSales(yen(3500))
	if _, err := s.AddAdjustment(yen(1000), register.CategoryExpense); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sum = s.Summary()
	if !sum.Difference.Equal(yen(500)) {
		t.Errorf("expected difference +500, got %v", sum.Difference)
	}
	if sum.State != register.StateSurplus {
		t.Errorf("expected surplus, got %v", sum.State)
	}
}

func TestSession_SetRecordedSales_NegativeCoercedToUnset(t *testing.T) {
	s := newTestSession()
	s.SetRecordedSales(yen(-4000))

	if got := s.Summary(); got.State != register.StateAwaitingInput {
		t.Errorf("negative sales should classify as awaiting input, got %v", got.State)
	}
}

func TestSession_Reset_KeepsOpeningBalance(t *testing.T) {
	// GIVEN: a session with counts, sales and adjustments
	// WHEN: reset
	// THEN: counts/adjustments/sales are zeroed; opening balance survives

	s := newTestSession()
	if err := s.SetCount(5000, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.SetRecordedSales(yen(9000))
	if _, err := s.AddAdjustment(yen(700), register.CategoryDeposit); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s.Reset()

	sum := s.Summary()
	if !sum.TotalCash.IsZero() {
		t.Errorf("expected zero total cash after reset, got %v", sum.TotalCash)
	}
	if len(s.Adjustments()) != 0 {
		t.Errorf("expected no adjustments after reset, got %d", len(s.Adjustments()))
	}
	if sum.State != register.StateAwaitingInput {
		t.Errorf("expected awaiting input after reset, got %v", sum.State)
	}
	if !sum.OpeningBalance.Equal(yen(20000)) {
		t.Errorf("opening balance must survive reset, got %v", sum.OpeningBalance)
	}
}

func TestSession_Snapshot_RefusedWhileAwaitingInput(t *testing.T) {
	s := newTestSession()
	if err := s.SetCount(10000, 2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Snapshot(); err == nil {
		t.Fatal("expected snapshot to be refused without recorded sales")
	}

	s.SetRecordedSales(yen(5000))
	snap, err := s.Snapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !snap.TotalCash.Equal(yen(20000)) {
		t.Errorf("expected total cash 20000, got %v", snap.TotalCash)
	}
	if !snap.Difference.Equal(yen(-5000)) {
		t.Errorf("expected difference -5000, got %v", snap.Difference)
	}
}
