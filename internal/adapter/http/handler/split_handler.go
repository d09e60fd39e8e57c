package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// SplitService defines the behavior needed by SplitHandler.
type SplitService interface {
	SubmitSplit(ctx context.Context, input usecase.SplitBillInput) (*domain.Friend, error)
}

// SplitHandler handles split-bill submissions.
type SplitHandler struct {
	ledgerUC SplitService
	currency string
}

// NewSplitHandler creates a new SplitHandler.
func NewSplitHandler(ledgerUC SplitService, currency string) *SplitHandler {
	return &SplitHandler{ledgerUC: ledgerUC, currency: currency}
}

// Create splits a bill with the selected friend.
func (h *SplitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SplitBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	friend, err := h.ledgerUC.SubmitSplit(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to split bill", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FriendFromDomain(friend, h.currency))
}
