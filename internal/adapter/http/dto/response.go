package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// FriendResponse represents a friend in API responses.
type FriendResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Image    string          `json:"image"`
	Balance  decimal.Decimal `json:"balance"`
	Standing string          `json:"standing"`
	Message  string          `json:"message"`
}

// FriendFromDomain converts domain friend to response.
func FriendFromDomain(f *domain.Friend, currency string) *FriendResponse {
	return &FriendResponse{
		ID:       f.ID,
		Name:     f.Name,
		Image:    f.Image,
		Balance:  f.Balance,
		Standing: string(f.Standing()),
		Message:  f.Message(currency),
	}
}

// FriendsFromDomain converts domain friends to responses.
func FriendsFromDomain(friends []domain.Friend, currency string) []*FriendResponse {
	result := make([]*FriendResponse, len(friends))
	for i := range friends {
		result[i] = FriendFromDomain(&friends[i], currency)
	}
	return result
}

// TotalsResponse summarizes balances.
type TotalsResponse struct {
	Owed  decimal.Decimal `json:"owed"`
	Owing decimal.Decimal `json:"owing"`
	Net   decimal.Decimal `json:"net"`
}

// LedgerResponse represents the whole ledger state.
type LedgerResponse struct {
	Friends    []*FriendResponse `json:"friends"`
	SelectedID string            `json:"selected_id,omitempty"`
	Totals     TotalsResponse    `json:"totals"`
}

// LedgerFromState converts a use case snapshot to response.
func LedgerFromState(s usecase.State, currency string) *LedgerResponse {
	return &LedgerResponse{
		Friends:    FriendsFromDomain(s.Friends, currency),
		SelectedID: s.Selection.FriendID,
		Totals: TotalsResponse{
			Owed:  s.Totals.Owed,
			Owing: s.Totals.Owing,
			Net:   s.Totals.Net(),
		},
	}
}

// SelectionResponse represents the current selection.
type SelectionResponse struct {
	SelectedID string `json:"selected_id"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
