/*
errors.go - Centralized error types for the register engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  Outer layers (API handlers) map these to user-visible notices.

ERROR CATEGORIES:
  1. Boundary errors - Invalid values arriving from user input
  2. Lifecycle errors - Operations attempted in the wrong state

USAGE:
  if errors.Is(err, register.ErrInvalidAmount) {
      // surface as a notice, not a fault
  }

SEE ALSO:
  - adjustments.go: Uses ErrInvalidAmount / ErrUnknownCategory
  - session.go: Uses ErrAwaitingInput
*/
package register

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrUnknownDenomination is returned when a count update names a face
	// value outside the catalog. The ledger's key set never changes.
	ErrUnknownDenomination = errors.New("unknown denomination")

	// ErrUnknownCategory is returned when an adjustment tag is neither
	// expense nor deposit. Unknown tags are rejected at the boundary.
	ErrUnknownCategory = errors.New("unknown adjustment category")

	// ErrInvalidAmount is returned when an adjustment amount is missing,
	// zero, or not positive. The entry is not created.
	ErrInvalidAmount = errors.New("adjustment amount must be positive")

	// ErrAwaitingInput is returned when a snapshot is requested before a
	// recorded-sales figure has been entered. Saving an unreconciled
	// session would record a meaningless difference.
	ErrAwaitingInput = errors.New("recorded sales not yet entered")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidAmountError reports the rejected amount alongside the sentinel.
type InvalidAmountError struct {
	Amount decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("adjustment amount must be positive, got %s", e.Amount)
}

func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}
