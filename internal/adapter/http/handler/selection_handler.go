package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
)

// SelectionService defines the behavior needed by SelectionHandler.
type SelectionService interface {
	SelectFriend(ctx context.Context, id string) (domain.Selection, error)
	ClearSelection(ctx context.Context)
}

// SelectionHandler handles the friend selected for splitting.
type SelectionHandler struct {
	ledgerUC SelectionService
}

// NewSelectionHandler creates a new SelectionHandler.
func NewSelectionHandler(ledgerUC SelectionService) *SelectionHandler {
	return &SelectionHandler{ledgerUC: ledgerUC}
}

// Select marks a friend as the split target.
func (h *SelectionHandler) Select(w http.ResponseWriter, r *http.Request) {
	var req dto.SelectFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.FriendID == "" {
		writeError(w, http.StatusBadRequest, "missing friend ID", "")
		return
	}

	sel, err := h.ledgerUC.SelectFriend(r.Context(), req.FriendID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to select friend", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.SelectionResponse{SelectedID: sel.FriendID})
}

// Clear drops the current selection.
func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.ledgerUC.ClearSelection(r.Context())
	w.WriteHeader(http.StatusNoContent)
}
