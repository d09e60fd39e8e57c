package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/splitledger/internal/domain"
)

// LedgerUseCase owns the friend ledger and the current selection.
// Operations are serialized so each one runs to completion before the next.
type LedgerUseCase struct {
	mu        sync.Mutex
	ledger    domain.Ledger
	selection domain.Selection

	idGen   IDGenerator
	metrics MetricsRecorder
	logger  zerolog.Logger
}

// NewLedgerUseCase creates a new LedgerUseCase starting from initial.
// A nil metrics recorder disables instrumentation.
func NewLedgerUseCase(initial domain.Ledger, idGen IDGenerator, metrics MetricsRecorder, logger zerolog.Logger) *LedgerUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	metrics.Friends(initial.Len())

	return &LedgerUseCase{
		ledger:  initial,
		idGen:   idGen,
		metrics: metrics,
		logger:  logger,
	}
}

// State is an immutable view of the ledger handed to renderers.
type State struct {
	Friends   []domain.Friend
	Selection domain.Selection
	Totals    domain.Totals
}

// Snapshot returns the current state.
func (uc *LedgerUseCase) Snapshot(ctx context.Context) State {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return State{
		Friends:   uc.ledger.Friends(),
		Selection: uc.selection,
		Totals:    uc.ledger.Totals(),
	}
}

// GetFriend retrieves a friend by ID.
func (uc *LedgerUseCase) GetFriend(ctx context.Context, id string) (*domain.Friend, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	f, ok := uc.ledger.Find(id)
	if !ok {
		return nil, domain.ErrFriendNotFound
	}
	return &f, nil
}

// AddFriendInput represents input for adding a friend.
type AddFriendInput struct {
	Name  string
	Image string
}

// AddFriend appends a new friend with a zero balance.
// A missing name or image leaves the ledger untouched and returns domain.ErrIncompleteFriend.
func (uc *LedgerUseCase) AddFriend(ctx context.Context, input AddFriendInput) (*domain.Friend, error) {
	name, image, err := domain.NormalizeNewFriend(input.Name, input.Image)
	if err != nil {
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	id := uc.idGen.Generate()
	friend := domain.Friend{
		ID:      id,
		Name:    name,
		Image:   domain.AvatarURL(image, id),
		Balance: decimal.Zero,
	}

	next, err := uc.ledger.Append(friend)
	if err != nil {
		return nil, fmt.Errorf("add friend: %w", err)
	}
	uc.ledger = next

	uc.metrics.FriendAdded()
	uc.metrics.Friends(next.Len())
	uc.logger.Debug().
		Str("friend_id", id).
		Str("name", name).
		Msg("friend added")

	return &friend, nil
}

// RemoveFriend removes a friend. Unknown IDs are ignored.
// Removing the selected friend clears the selection.
func (uc *LedgerUseCase) RemoveFriend(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	next, ok := uc.ledger.Remove(id)
	if !ok {
		return nil
	}
	uc.ledger = next

	if uc.selection.Is(id) {
		uc.selection = domain.Selection{}
	}

	uc.metrics.FriendRemoved()
	uc.metrics.Friends(next.Len())
	uc.logger.Debug().Str("friend_id", id).Msg("friend removed")

	return nil
}

// SelectFriend marks a friend as the target of the next split.
func (uc *LedgerUseCase) SelectFriend(ctx context.Context, id string) (domain.Selection, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.ledger.Find(id); !ok {
		return uc.selection, fmt.Errorf("select %q: %w", id, domain.ErrFriendNotFound)
	}

	uc.selection = domain.SelectionOf(id)
	return uc.selection, nil
}

// ClearSelection drops the current selection, if any.
func (uc *LedgerUseCase) ClearSelection(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.selection = domain.Selection{}
}

// SplitBill adds moneyToGet to the selected friend's balance and clears the selection.
// selectedID must match the current selection.
func (uc *LedgerUseCase) SplitBill(ctx context.Context, selectedID string, moneyToGet decimal.Decimal) (*domain.Friend, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	return uc.splitLocked(selectedID, moneyToGet, "")
}

// SplitBillInput represents a submitted split-bill form.
type SplitBillInput struct {
	// FriendID defaults to the current selection when empty.
	FriendID    string
	Bill        decimal.NullDecimal
	YourExpense decimal.Decimal
	Payer       domain.Payer
}

// SubmitSplit validates a split-bill form and applies it to the selected friend.
// Validation failures leave the ledger and the selection unchanged.
func (uc *LedgerUseCase) SubmitSplit(ctx context.Context, input SplitBillInput) (*domain.Friend, error) {
	form, err := buildSplitForm(input)
	if err != nil {
		uc.metrics.SplitRejected(rejectionReason(err))
		return nil, err
	}

	moneyToGet, err := form.MoneyToGet()
	if err != nil {
		uc.metrics.SplitRejected(rejectionReason(err))
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	selectedID := input.FriendID
	if selectedID == "" {
		selectedID = uc.selection.FriendID
	}

	return uc.splitLocked(selectedID, moneyToGet, form.Payer())
}

func (uc *LedgerUseCase) splitLocked(selectedID string, moneyToGet decimal.Decimal, payer domain.Payer) (*domain.Friend, error) {
	if !uc.selection.IsSet() {
		uc.metrics.SplitRejected(rejectionReason(domain.ErrNoSelection))
		return nil, domain.ErrNoSelection
	}
	if !uc.selection.Is(selectedID) {
		uc.metrics.SplitRejected(rejectionReason(domain.ErrSelectionMismatch))
		return nil, fmt.Errorf("split with %q: %w", selectedID, domain.ErrSelectionMismatch)
	}

	next, ok := uc.ledger.Adjust(selectedID, moneyToGet)
	if !ok {
		// unreachable while RemoveFriend clears a matching selection
		uc.selection = domain.Selection{}
		return nil, fmt.Errorf("split with %q: %w", selectedID, domain.ErrFriendNotFound)
	}
	uc.ledger = next
	uc.selection = domain.Selection{}

	friend, _ := next.Find(selectedID)

	uc.metrics.SplitApplied(string(payer), moneyToGet)
	uc.logger.Debug().
		Str("friend_id", selectedID).
		Str("delta", moneyToGet.String()).
		Str("balance", friend.Balance.String()).
		Msg("bill split")

	return &friend, nil
}

func buildSplitForm(input SplitBillInput) (*domain.SplitForm, error) {
	if !input.Bill.Valid {
		return nil, domain.ErrBillRequired
	}

	form := domain.NewSplitForm()
	if err := form.SetBill(input.Bill.Decimal); err != nil {
		return nil, err
	}
	if err := form.SetYourExpense(input.YourExpense); err != nil {
		return nil, err
	}
	if input.Payer != "" {
		if err := form.SetPayer(input.Payer); err != nil {
			return nil, err
		}
	}

	return form, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrBillRequired):
		return "bill_required"
	case errors.Is(err, domain.ErrExpenseExceedsBill):
		return "expense_exceeds_bill"
	case errors.Is(err, domain.ErrNegativeAmount):
		return "negative_amount"
	case errors.Is(err, domain.ErrInvalidPayer):
		return "invalid_payer"
	case errors.Is(err, domain.ErrNoSelection):
		return "no_selection"
	case errors.Is(err, domain.ErrSelectionMismatch):
		return "selection_mismatch"
	default:
		return "other"
	}
}
