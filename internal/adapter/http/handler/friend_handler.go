package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/splitledger/internal/adapter/http/dto"
	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// FriendService defines the behavior needed by FriendHandler.
type FriendService interface {
	Snapshot(ctx context.Context) usecase.State
	GetFriend(ctx context.Context, id string) (*domain.Friend, error)
	AddFriend(ctx context.Context, input usecase.AddFriendInput) (*domain.Friend, error)
	RemoveFriend(ctx context.Context, id string) error
}

// FriendHandler handles friend-related HTTP requests.
type FriendHandler struct {
	ledgerUC      FriendService
	defaultAvatar string
	currency      string
}

// NewFriendHandler creates a new FriendHandler.
func NewFriendHandler(ledgerUC FriendService, defaultAvatar, currency string) *FriendHandler {
	return &FriendHandler{
		ledgerUC:      ledgerUC,
		defaultAvatar: defaultAvatar,
		currency:      currency,
	}
}

// List returns every friend with their balance message.
func (h *FriendHandler) List(w http.ResponseWriter, r *http.Request) {
	state := h.ledgerUC.Snapshot(r.Context())
	writeJSON(w, http.StatusOK, dto.LedgerFromState(state, h.currency))
}

// Create adds a new friend.
func (h *FriendHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.AddFriendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	friend, err := h.ledgerUC.AddFriend(r.Context(), req.ToUseCaseInput(h.defaultAvatar))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to add friend", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.FriendFromDomain(friend, h.currency))
}

// Get retrieves a friend by ID.
func (h *FriendHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing friend ID", "")
		return
	}

	friend, err := h.ledgerUC.GetFriend(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get friend", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.FriendFromDomain(friend, h.currency))
}

// Delete removes a friend. Unknown IDs succeed without effect.
func (h *FriendHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing friend ID", "")
		return
	}

	if err := h.ledgerUC.RemoveFriend(r.Context(), id); err != nil {
		writeError(w, mapDomainError(err), "failed to remove friend", err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
