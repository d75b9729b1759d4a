/*
handlers.go - HTTP API handlers for the register reconciliation service

PURPOSE:
  Exposes one register session and the saved history via REST. Handles
  HTTP request/response and JSON mapping, delegates all arithmetic to
  the register package and all history semantics to the history package.

ENDPOINTS:
  Session:
    GET    /api/session                        Full state + summary
    PUT    /api/session/counts/{value}         Set one denomination count
    PUT    /api/session/sales                  Set recorded sales
    PUT    /api/session/opening-balance        Set opening float
    POST   /api/session/adjustments            Log an expense/deposit
    DELETE /api/session/adjustments/{id}       Remove an adjustment
    POST   /api/session/reset                  Zero counts and shift inputs
    GET    /api/session/summary                Derived figures + state

  History:
    GET    /api/history                        List saved snapshots
    POST   /api/history                        Save current snapshot
    DELETE /api/history/{id}                   Delete one snapshot
    DELETE /api/history                        Delete all snapshots

ERROR HANDLING:
  - 400: Malformed body, bad amount/category (user-visible notice)
  - 404: Denomination outside the catalog
  - 409: Save attempted while recorded sales is unset
  Persistence failures are logged and NOT surfaced as errors; the
  in-memory state stays authoritative for the session.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/warp/register-engine/history"
	"github.com/warp/register-engine/register"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Session *register.Session
	History *history.Store
	Log     *slog.Logger
}

// NewHandler creates a new handler over the given session and history.
func NewHandler(session *register.Session, hist *history.Store, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{Session: session, History: hist, Log: log}
}

// =============================================================================
// SESSION HANDLERS
// =============================================================================

// GetSession returns the full session state plus the derived summary.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, SessionDTO{
		Counts:      toCountLineDTOs(h.Session.Lines()),
		Adjustments: toAdjustmentDTOs(h.Session.Adjustments()),
		Summary:     h.summaryDTO(),
	})
}

// GetSummary returns only the derived figures and state.
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.summaryDTO())
}

func (h *Handler) summaryDTO() SummaryDTO {
	return toSummaryDTO(h.Session.Summary(), h.Session.BillTotal(), h.Session.CoinTotal())
}

// SetCount updates one denomination's physical count.
// PUT /api/session/counts/{value}
func (h *Handler) SetCount(w http.ResponseWriter, r *http.Request) {
	value, err := strconv.ParseInt(chi.URLParam(r, "value"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid denomination value", err)
		return
	}

	var req SetCountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := h.Session.SetCount(value, coerceCount(req.Count)); err != nil {
		if errors.Is(err, register.ErrUnknownDenomination) {
			writeError(w, http.StatusNotFound, "Denomination not in catalog", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to set count", err)
		return
	}

	writeJSON(w, http.StatusOK, h.summaryDTO())
}

// SetSales replaces the recorded point-of-sale total.
// PUT /api/session/sales
func (h *Handler) SetSales(w http.ResponseWriter, r *http.Request) {
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	h.Session.SetRecordedSales(amount)
	writeJSON(w, http.StatusOK, h.summaryDTO())
}

// SetOpeningBalance replaces the starting float.
// PUT /api/session/opening-balance
func (h *Handler) SetOpeningBalance(w http.ResponseWriter, r *http.Request) {
	amount, ok := decodeAmount(w, r)
	if !ok {
		return
	}
	h.Session.SetOpeningBalance(amount)
	writeJSON(w, http.StatusOK, h.summaryDTO())
}

// AddAdjustment logs a cash movement.
// POST /api/session/adjustments
func (h *Handler) AddAdjustment(w http.ResponseWriter, r *http.Request) {
	var req AddAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	category, err := register.ParseCategory(req.Category)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Category must be expense or deposit", err)
		return
	}

	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Please enter an amount", err)
		return
	}

	entry, err := h.Session.AddAdjustment(amount, category)
	if err != nil {
		if errors.Is(err, register.ErrInvalidAmount) {
			writeError(w, http.StatusBadRequest, "Please enter a positive amount", err)
			return
		}
		writeError(w, http.StatusBadRequest, "Failed to add adjustment", err)
		return
	}

	writeJSON(w, http.StatusCreated, AdjustmentDTO{
		ID:       entry.ID,
		Amount:   num(entry.Amount),
		Category: string(entry.Category),
	})
}

// RemoveAdjustment removes one adjustment by id. Absent ids are a no-op.
// DELETE /api/session/adjustments/{id}
func (h *Handler) RemoveAdjustment(w http.ResponseWriter, r *http.Request) {
	h.Session.RemoveAdjustment(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// ResetSession zeroes counts and shift inputs. History is untouched.
// POST /api/session/reset
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.Session.Reset()
	writeJSON(w, http.StatusOK, h.summaryDTO())
}

// =============================================================================
// HISTORY HANDLERS
// =============================================================================

// ListHistory returns the saved snapshots, most recent first.
// GET /api/history
func (h *Handler) ListHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toHistoryEntryDTOs(h.History.Entries()))
}

// SaveHistory captures the current session figures as a history entry.
// Refused while recorded sales is unset.
// POST /api/history
func (h *Handler) SaveHistory(w http.ResponseWriter, r *http.Request) {
	snap, err := h.Session.Snapshot()
	if err != nil {
		if errors.Is(err, register.ErrAwaitingInput) {
			writeError(w, http.StatusConflict, "Enter recorded sales before saving", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to snapshot session", err)
		return
	}

	entry, err := h.History.Save(r.Context(), snap)
	if err != nil {
		// Best-effort persistence: the entry is recorded in memory.
		h.Log.Error("history save not persisted", "error", err, "id", entry.ID)
	}

	writeJSON(w, http.StatusCreated, toHistoryEntryDTO(entry))
}

// DeleteHistoryEntry removes one snapshot by id.
// DELETE /api/history/{id}
func (h *Handler) DeleteHistoryEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	_, err := h.History.DeleteOne(r.Context(), id)
	if err != nil {
		h.Log.Error("history delete not persisted", "error", err, "id", id)
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearHistory removes all snapshots.
// DELETE /api/history
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	if err := h.History.ClearAll(r.Context()); err != nil {
		h.Log.Error("history clear not persisted", "error", err)
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

// coerceCount applies the count-field input policy: max(0, floor(n)),
// with unparseable input coerced to zero rather than rejected.
func coerceCount(n json.Number) int64 {
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return 0
	}
	count := d.IntPart()
	if count < 0 {
		return 0
	}
	return count
}

func decodeAmount(w http.ResponseWriter, r *http.Request) (decimal.Decimal, bool) {
	var req AmountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return decimal.Zero, false
	}
	if req.Amount == "" {
		// Empty input coerces to zero, matching the count-field policy.
		return decimal.Zero, true
	}
	amount, err := decimal.NewFromString(req.Amount.String())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return decimal.Zero, false
	}
	return amount, true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
