package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Standing describes which side of a balance the user is on.
type Standing string

const (
	StandingOwed  Standing = "owed"  // friend owes the user
	StandingOwing Standing = "owing" // user owes the friend
	StandingEven  Standing = "even"
)

// Friend is a person the user splits bills with.
// Balance is positive when the friend owes the user and negative when the user owes the friend.
type Friend struct {
	ID      string
	Name    string
	Image   string
	Balance decimal.Decimal
}

// Standing returns the sign of the balance as a Standing.
func (f Friend) Standing() Standing {
	switch f.Balance.Sign() {
	case 1:
		return StandingOwed
	case -1:
		return StandingOwing
	default:
		return StandingEven
	}
}

// Message renders the balance the way it is shown next to the friend.
// currency is appended to amounts verbatim and may be empty.
func (f Friend) Message(currency string) string {
	switch f.Standing() {
	case StandingOwing:
		return fmt.Sprintf("You owe %s%s to %s", f.Balance.Neg().String(), currency, f.Name)
	case StandingOwed:
		return fmt.Sprintf("%s owes you %s%s", f.Name, f.Balance.String(), currency)
	default:
		return fmt.Sprintf("You and %s are even", f.Name)
	}
}

// Validate checks that the fixed fields of a friend are populated.
func (f Friend) Validate() error {
	switch {
	case f.ID == "":
		return fmt.Errorf("%w: id cannot be empty", ErrInvalidFriend)
	case f.Name == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidFriend)
	case f.Image == "":
		return fmt.Errorf("%w: image cannot be empty", ErrInvalidFriend)
	}
	return nil
}

// DefaultFriends returns the friends a fresh ledger starts with.
func DefaultFriends() []Friend {
	return []Friend{
		{ID: "118836", Name: "Clark", Image: "https://i.pravatar.cc/48?u=118836", Balance: decimal.NewFromInt(-7)},
		{ID: "933372", Name: "Sarah", Image: "https://i.pravatar.cc/48?u=933372", Balance: decimal.NewFromInt(20)},
		{ID: "499476", Name: "Anthony", Image: "https://i.pravatar.cc/48?u=499476", Balance: decimal.Zero},
	}
}
