package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/wosadvpro-arch/finance-buddy/internal/cache"
	"github.com/wosadvpro-arch/finance-buddy/internal/core"
	"github.com/wosadvpro-arch/finance-buddy/internal/report"
)

// handleMonthly serves the 12-row yearly aggregate.
func (a *API) handleMonthly(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	year, ok := queryYear(w, r)
	if !ok {
		return
	}
	a.serveCached(w, r, sess, "monthly", []any{year}, func() any {
		return report.MonthlyAggregate(sess.manager.Transactions(), year)
	})
}

// handleCashFlow serves the per-day flow of one month. The month defaults to
// the session's selected cash-flow month and may be overridden with a
// ?month=1..12 query parameter.
func (a *API) handleCashFlow(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	year, ok := queryYear(w, r)
	if !ok {
		return
	}
	month := sess.selection.CalendarMonth()
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			writeError(w, http.StatusBadRequest, "month must be between 1 and 12")
			return
		}
		month = time.Month(m)
	}
	a.serveCached(w, r, sess, "cashflow", []any{year, month}, func() any {
		return report.DailyCashFlow(sess.manager.Transactions(), year, month)
	})
}

// handleCategories serves the per-category breakdown for one transaction
// type, expenses by default.
func (a *API) handleCategories(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	typ := core.Expense
	if raw := r.URL.Query().Get("type"); raw != "" {
		parsed, err := core.ParseTxType(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		typ = parsed
	}
	a.serveCached(w, r, sess, "categories", []any{typ}, func() any {
		return report.CategoryTotals(sess.manager.Transactions(), typ)
	})
}

// handleSummary folds the session's comparison months into one period row.
func (a *API) handleSummary(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	year, ok := queryYear(w, r)
	if !ok {
		return
	}
	months := sess.selection.CalendarMonths()
	a.serveCached(w, r, sess, "summary", []any{year, months}, func() any {
		agg := report.MonthlyAggregate(sess.manager.Transactions(), year)
		return report.PeriodSummary(agg, months)
	})
}

type selectionResponse struct {
	Month  int   `json:"month"`
	Months []int `json:"months"`
}

func (a *API) handleGetSelection(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	writeJSON(w, http.StatusOK, selectionState(sess))
}

type monthRequest struct {
	Month int `json:"month"`
}

func (a *API) handleSetMonth(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	var req monthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := sess.selection.SetMonth(req.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, selectionState(sess))
}

func (a *API) handleToggleMonth(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	var req monthRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if err := sess.selection.Toggle(req.Month); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, selectionState(sess))
}

func (a *API) handleSelectAll(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	sess.selection.SelectAll()
	writeJSON(w, http.StatusOK, selectionState(sess))
}

func (a *API) handleClearSelection(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	sess.selection.Clear()
	writeJSON(w, http.StatusOK, selectionState(sess))
}

func selectionState(sess *clientSession) selectionResponse {
	return selectionResponse{
		Month:  sess.selection.Month(),
		Months: sess.selection.Months(),
	}
}

// serveCached memoizes the marshaled view, keyed on the ledger's mutation
// counter so any write invalidates every derived view of that account.
func (a *API) serveCached(w http.ResponseWriter, r *http.Request, sess *clientSession, view string, args []any, compute func() any) {
	key := cache.Key(sess.accountKey, sess.manager.Version(), view, args...)
	if body, ok := a.reports.Get(key); ok {
		writeRaw(w, body)
		return
	}
	body, err := json.Marshal(compute())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to encode report",
			"account", sess.accountKey, "view", view, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to encode report")
		return
	}
	a.reports.Set(key, body)
	writeRaw(w, body)
}

func writeRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}

func queryYear(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("year")
	if raw == "" {
		return time.Now().Year(), true
	}
	year, err := strconv.Atoi(raw)
	if err != nil || year < 1 {
		writeError(w, http.StatusBadRequest, "invalid year")
		return 0, false
	}
	return year, true
}
