package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
	"github.com/wosadvpro-arch/finance-buddy/internal/parse"
)

func (a *API) handleListTransactions(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	txs := sess.manager.Transactions()
	if txs == nil {
		txs = []core.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

func (a *API) handleAddTransaction(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	var draft core.Draft
	if !decodeBody(w, r, &draft) {
		return
	}
	tx, err := sess.manager.Add(r.Context(), draft)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to add transaction",
			"account", sess.accountKey, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add transaction")
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

// patchRequest carries a partial edit; absent fields leave the transaction
// untouched. Value takes strings and bare numbers like the draft form does.
type patchRequest struct {
	Desc     *string          `json:"desc"`
	Type     *string          `json:"type"`
	Category *string          `json:"cat"`
	Value    *core.DraftValue `json:"value"`
	Date     *string          `json:"date"`
}

func (a *API) handleUpdateTransaction(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req patchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch := core.Patch{
		Desc:     req.Desc,
		Category: req.Category,
		Date:     req.Date,
	}
	if req.Value != nil {
		val := string(*req.Value)
		patch.Value = &val
	}
	if req.Type != nil {
		typ, err := core.ParseTxType(*req.Type)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.Type = &typ
	}

	tx, err := sess.manager.Update(r.Context(), id, patch)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to update transaction",
			"account", sess.accountKey, "tx_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to update transaction")
		return
	}
	if tx == nil {
		// unknown id: the edit silently targets nothing
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}

func (a *API) handleRemoveTransaction(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if _, err := sess.manager.Remove(r.Context(), id); err != nil {
		slog.ErrorContext(r.Context(), "Failed to remove transaction",
			"account", sess.accountKey, "tx_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to remove transaction")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type whatsAppRequest struct {
	Message string `json:"message"`
}

// handleWhatsApp ingests a free-text message, guessing type and category
// from keywords before running it through the normal add path.
func (a *API) handleWhatsApp(w http.ResponseWriter, r *http.Request, sess *clientSession) {
	var req whatsAppRequest
	if !decodeBody(w, r, &req) {
		return
	}
	draft := parse.Message(req.Message)
	tx, err := sess.manager.Add(r.Context(), draft)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		slog.ErrorContext(r.Context(), "Failed to add parsed transaction",
			"account", sess.accountKey, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to add transaction")
		return
	}
	writeJSON(w, http.StatusCreated, tx)
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction id")
		return 0, false
	}
	return id, true
}

func isValidationError(err error) bool {
	return errors.Is(err, core.ErrInvalidType) ||
		errors.Is(err, core.ErrInvalidAmount) ||
		errors.Is(err, core.ErrInvalidDate) ||
		errors.Is(err, core.ErrEmptyDescription) ||
		errors.Is(err, core.ErrDescriptionSize)
}
