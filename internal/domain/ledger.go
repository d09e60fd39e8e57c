package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Ledger is an ordered, immutable snapshot of friends and their balances.
// Operations return a new Ledger and never modify the receiver.
type Ledger struct {
	friends []Friend
}

// Totals summarizes a ledger from the user's point of view.
type Totals struct {
	Owed  decimal.Decimal // sum of positive balances
	Owing decimal.Decimal // sum of negative balances, as a positive amount
}

// Net returns what the user is owed minus what the user owes.
func (t Totals) Net() decimal.Decimal {
	return t.Owed.Sub(t.Owing)
}

// NewLedger builds a ledger from seed friends, keeping their order.
func NewLedger(seed []Friend) (Ledger, error) {
	seen := make(map[string]struct{}, len(seed))
	friends := make([]Friend, 0, len(seed))

	for _, f := range seed {
		if err := f.Validate(); err != nil {
			return Ledger{}, err
		}
		if _, ok := seen[f.ID]; ok {
			return Ledger{}, fmt.Errorf("%w: %s", ErrDuplicateFriendID, f.ID)
		}
		seen[f.ID] = struct{}{}
		friends = append(friends, f)
	}

	return Ledger{friends: friends}, nil
}

// Len returns the number of friends.
func (l Ledger) Len() int {
	return len(l.friends)
}

// Friends returns a copy of the friends in insertion order.
func (l Ledger) Friends() []Friend {
	out := make([]Friend, len(l.friends))
	copy(out, l.friends)
	return out
}

// Find looks up a friend by id.
func (l Ledger) Find(id string) (Friend, bool) {
	for _, f := range l.friends {
		if f.ID == id {
			return f, true
		}
	}
	return Friend{}, false
}

// Append adds a friend to the end of the ledger.
func (l Ledger) Append(f Friend) (Ledger, error) {
	if err := f.Validate(); err != nil {
		return l, err
	}
	if _, ok := l.Find(f.ID); ok {
		return l, fmt.Errorf("%w: %s", ErrDuplicateFriendID, f.ID)
	}

	friends := make([]Friend, len(l.friends), len(l.friends)+1)
	copy(friends, l.friends)

	return Ledger{friends: append(friends, f)}, nil
}

// Remove filters out the friend with the given id.
// It reports false and returns the receiver when no friend matches.
func (l Ledger) Remove(id string) (Ledger, bool) {
	friends := make([]Friend, 0, len(l.friends))
	removed := false

	for _, f := range l.friends {
		if f.ID == id {
			removed = true
			continue
		}
		friends = append(friends, f)
	}

	if !removed {
		return l, false
	}
	return Ledger{friends: friends}, true
}

// Adjust adds delta to the balance of the friend with the given id.
// It reports false and returns the receiver when no friend matches.
func (l Ledger) Adjust(id string, delta decimal.Decimal) (Ledger, bool) {
	friends := make([]Friend, len(l.friends))
	adjusted := false

	for i, f := range l.friends {
		if f.ID == id {
			f.Balance = f.Balance.Add(delta)
			adjusted = true
		}
		friends[i] = f
	}

	if !adjusted {
		return l, false
	}
	return Ledger{friends: friends}, true
}

// Totals sums balances on each side.
func (l Ledger) Totals() Totals {
	t := Totals{Owed: decimal.Zero, Owing: decimal.Zero}
	for _, f := range l.friends {
		switch f.Standing() {
		case StandingOwed:
			t.Owed = t.Owed.Add(f.Balance)
		case StandingOwing:
			t.Owing = t.Owing.Sub(f.Balance)
		}
	}
	return t
}

// Selection is the friend currently targeted for a new split.
// The zero value means nothing is selected.
type Selection struct {
	FriendID string
}

// SelectionOf returns a selection pointing at id.
func SelectionOf(id string) Selection {
	return Selection{FriendID: id}
}

// IsSet reports whether a friend is selected.
func (s Selection) IsSet() bool {
	return s.FriendID != ""
}

// Is reports whether the selection points at id.
func (s Selection) Is(id string) bool {
	return s.IsSet() && s.FriendID == id
}
