/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

SERIALIZATION:
  Monetary amounts cross the wire as json.Number (plain decimal numbers,
  no float round-trip). Counts are plain integers. Timestamps are
  ISO-8601 (RFC 3339) instants.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data
  carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/warp/register-engine/history"
	"github.com/warp/register-engine/register"
)

// =============================================================================
// REQUEST/RESPONSE TYPES
// =============================================================================

// CountLineDTO is one row of the denomination breakdown.
type CountLineDTO struct {
	Value     int64       `json:"value"`
	Label     string      `json:"label"`
	Coin      bool        `json:"coin"`
	Count     int64       `json:"count"`
	LineValue json.Number `json:"line_value"`
}

// SetCountRequest updates one denomination's physical count. The count
// travels as json.Number so malformed numeric input can be coerced to
// zero instead of rejected.
type SetCountRequest struct {
	Count json.Number `json:"count"`
}

// AmountRequest carries a single monetary amount (recorded sales,
// opening balance).
type AmountRequest struct {
	Amount json.Number `json:"amount"`
}

// AdjustmentDTO represents one logged cash movement.
type AdjustmentDTO struct {
	ID       string      `json:"id"`
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
}

// AddAdjustmentRequest creates a new adjustment entry.
type AddAdjustmentRequest struct {
	Amount   json.Number `json:"amount"`
	Category string      `json:"category"`
}

// SummaryDTO is the derived reconciliation result.
type SummaryDTO struct {
	TotalCash      json.Number `json:"total_cash"`
	BillTotal      json.Number `json:"bill_total"`
	CoinTotal      json.Number `json:"coin_total"`
	OpeningBalance json.Number `json:"opening_balance"`
	RecordedSales  json.Number `json:"recorded_sales"`
	Expenses       json.Number `json:"expenses"`
	Deposits       json.Number `json:"deposits"`
	NetCashSales   json.Number `json:"net_cash_sales"`
	Difference     json.Number `json:"difference"`
	State          string      `json:"state"`
}

// SessionDTO is the full session state plus the derived summary.
type SessionDTO struct {
	Counts      []CountLineDTO  `json:"counts"`
	Adjustments []AdjustmentDTO `json:"adjustments"`
	Summary     SummaryDTO      `json:"summary"`
}

// HistoryEntryDTO is one saved snapshot.
type HistoryEntryDTO struct {
	ID            string      `json:"id"`
	Timestamp     string      `json:"timestamp"`
	TotalCash     json.Number `json:"total_cash"`
	RecordedSales json.Number `json:"recorded_sales"`
	NetCashSales  json.Number `json:"net_cash_sales"`
	Difference    json.Number `json:"difference"`
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSIONS
// =============================================================================

func num(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

func toCountLineDTOs(lines []register.Line) []CountLineDTO {
	dtos := make([]CountLineDTO, len(lines))
	for i, l := range lines {
		dtos[i] = CountLineDTO{
			Value:     l.Denomination.Value,
			Label:     l.Denomination.Label,
			Coin:      l.Denomination.Coin,
			Count:     l.Count,
			LineValue: num(l.LineValue),
		}
	}
	return dtos
}

func toAdjustmentDTOs(entries []register.Entry) []AdjustmentDTO {
	dtos := make([]AdjustmentDTO, len(entries))
	for i, e := range entries {
		dtos[i] = AdjustmentDTO{
			ID:       e.ID,
			Amount:   num(e.Amount),
			Category: string(e.Category),
		}
	}
	return dtos
}

func toSummaryDTO(s register.Summary, billTotal, coinTotal decimal.Decimal) SummaryDTO {
	return SummaryDTO{
		TotalCash:      num(s.TotalCash),
		BillTotal:      num(billTotal),
		CoinTotal:      num(coinTotal),
		OpeningBalance: num(s.OpeningBalance),
		RecordedSales:  num(s.RecordedSales),
		Expenses:       num(s.Expenses),
		Deposits:       num(s.Deposits),
		NetCashSales:   num(s.NetCashSales),
		Difference:     num(s.Difference),
		State:          string(s.State),
	}
}

func toHistoryEntryDTO(e history.Entry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:            e.ID,
		Timestamp:     e.Timestamp.UTC().Format(time.RFC3339Nano),
		TotalCash:     num(e.TotalCash),
		RecordedSales: num(e.RecordedSales),
		NetCashSales:  num(e.NetCashSales),
		Difference:    num(e.Difference),
	}
}

func toHistoryEntryDTOs(entries []history.Entry) []HistoryEntryDTO {
	dtos := make([]HistoryEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toHistoryEntryDTO(e)
	}
	return dtos
}
