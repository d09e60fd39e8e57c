package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Payer identifies who paid the bill being split.
type Payer string

const (
	PayerUser   Payer = "user"
	PayerFriend Payer = "friend"
)

// ParsePayer validates a payer string.
func ParsePayer(s string) (Payer, error) {
	switch p := Payer(s); p {
	case PayerUser, PayerFriend:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidPayer, s)
	}
}

// SplitForm collects the values needed to split a bill with one friend.
// Rejected updates leave the previous value in place.
type SplitForm struct {
	bill        decimal.NullDecimal
	yourExpense decimal.Decimal
	payer       Payer
}

// NewSplitForm returns an empty form where the user pays.
func NewSplitForm() *SplitForm {
	return &SplitForm{
		yourExpense: decimal.Zero,
		payer:       PayerUser,
	}
}

// Bill returns the bill and whether it has been set.
func (f *SplitForm) Bill() (decimal.Decimal, bool) {
	return f.bill.Decimal, f.bill.Valid
}

// YourExpense returns the user's share of the bill.
func (f *SplitForm) YourExpense() decimal.Decimal {
	return f.yourExpense
}

// Payer returns who paid the bill.
func (f *SplitForm) Payer() Payer {
	return f.payer
}

// SetBill sets the total bill amount.
func (f *SplitForm) SetBill(bill decimal.Decimal) error {
	if bill.IsNegative() {
		return fmt.Errorf("%w: bill %s", ErrNegativeAmount, bill)
	}
	f.bill = decimal.NewNullDecimal(bill)
	return nil
}

// ClearBill marks the bill as not entered.
func (f *SplitForm) ClearBill() {
	f.bill = decimal.NullDecimal{}
}

// SetYourExpense sets the user's share. An unset bill counts as zero.
func (f *SplitForm) SetYourExpense(expense decimal.Decimal) error {
	if expense.IsNegative() {
		return fmt.Errorf("%w: expense %s", ErrNegativeAmount, expense)
	}
	if expense.GreaterThan(f.bill.Decimal) {
		return ErrExpenseExceedsBill
	}
	f.yourExpense = expense
	return nil
}

// SetPayer sets who paid the bill.
func (f *SplitForm) SetPayer(p Payer) error {
	if _, err := ParsePayer(string(p)); err != nil {
		return err
	}
	f.payer = p
	return nil
}

// FriendExpense is the part of the bill that is not the user's.
func (f *SplitForm) FriendExpense() decimal.Decimal {
	return f.bill.Decimal.Sub(f.yourExpense)
}

// MoneyToGet returns the signed delta to apply to the friend's balance.
//
// When the user pays, the friend now owes their share. When the friend pays,
// the user now owes their own share.
func (f *SplitForm) MoneyToGet() (decimal.Decimal, error) {
	if !f.bill.Valid {
		return decimal.Zero, ErrBillRequired
	}
	if f.yourExpense.GreaterThan(f.bill.Decimal) {
		return decimal.Zero, ErrExpenseExceedsBill
	}

	if f.payer == PayerFriend {
		return f.yourExpense.Neg(), nil
	}
	return f.FriendExpense(), nil
}
