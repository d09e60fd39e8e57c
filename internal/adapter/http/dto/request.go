package dto

import (
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
	"github.com/iho/splitledger/internal/usecase"
)

// AddFriendRequest represents a request to add a friend.
type AddFriendRequest struct {
	Name string `json:"name"`
	// Image is optional; when absent the configured placeholder avatar is used.
	// An explicit empty string is kept so the request is rejected.
	Image *string `json:"image,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AddFriendRequest) ToUseCaseInput(defaultAvatar string) usecase.AddFriendInput {
	image := defaultAvatar
	if r.Image != nil {
		image = *r.Image
	}
	return usecase.AddFriendInput{
		Name:  r.Name,
		Image: image,
	}
}

// SelectFriendRequest represents a request to select a friend for splitting.
type SelectFriendRequest struct {
	FriendID string `json:"friend_id"`
}

// SplitBillRequest represents a submitted split-bill form.
type SplitBillRequest struct {
	FriendID    string              `json:"friend_id,omitempty"`
	Bill        decimal.NullDecimal `json:"bill"`
	YourExpense decimal.Decimal     `json:"your_expense"`
	Payer       string              `json:"payer,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *SplitBillRequest) ToUseCaseInput() usecase.SplitBillInput {
	return usecase.SplitBillInput{
		FriendID:    r.FriendID,
		Bill:        r.Bill,
		YourExpense: r.YourExpense,
		Payer:       domain.Payer(r.Payer),
	}
}
