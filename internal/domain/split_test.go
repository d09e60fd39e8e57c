package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestSplitForm_MoneyToGet(t *testing.T) {
	tests := []struct {
		name        string
		bill        int64
		yourExpense int64
		payer       Payer
		want        decimal.Decimal
	}{
		{"user pays, friend owes their share", 100, 40, PayerUser, d(60)},
		{"friend pays, user owes own share", 50, 20, PayerFriend, d(-20)},
		{"user pays whole bill for themself", 30, 30, PayerUser, d(0)},
		{"friend pays, user had nothing", 30, 0, PayerFriend, d(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewSplitForm()
			require.NoError(t, f.SetBill(d(tt.bill)))
			require.NoError(t, f.SetYourExpense(d(tt.yourExpense)))
			require.NoError(t, f.SetPayer(tt.payer))

			got, err := f.MoneyToGet()
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestSplitForm_BillRequired(t *testing.T) {
	f := NewSplitForm()

	_, err := f.MoneyToGet()
	assert.ErrorIs(t, err, ErrBillRequired)

	require.NoError(t, f.SetBill(d(10)))
	f.ClearBill()
	_, err = f.MoneyToGet()
	assert.ErrorIs(t, err, ErrBillRequired)
}

func TestSplitForm_ExpenseAboveBillKeepsPreviousValue(t *testing.T) {
	f := NewSplitForm()
	require.NoError(t, f.SetBill(d(100)))
	require.NoError(t, f.SetYourExpense(d(40)))

	err := f.SetYourExpense(d(120))
	assert.ErrorIs(t, err, ErrExpenseExceedsBill)
	assert.True(t, f.YourExpense().Equal(d(40)))
	assert.True(t, f.FriendExpense().Equal(d(60)))
}

func TestSplitForm_ExpenseWithoutBill(t *testing.T) {
	f := NewSplitForm()

	assert.ErrorIs(t, f.SetYourExpense(d(1)), ErrExpenseExceedsBill)
	assert.NoError(t, f.SetYourExpense(d(0)))
}

func TestSplitForm_BillLoweredBelowExpense(t *testing.T) {
	f := NewSplitForm()
	require.NoError(t, f.SetBill(d(100)))
	require.NoError(t, f.SetYourExpense(d(80)))
	require.NoError(t, f.SetBill(d(50)))

	_, err := f.MoneyToGet()
	assert.ErrorIs(t, err, ErrExpenseExceedsBill)
}

func TestSplitForm_RejectsNegativeAmounts(t *testing.T) {
	f := NewSplitForm()

	assert.ErrorIs(t, f.SetBill(d(-1)), ErrNegativeAmount)
	_, set := f.Bill()
	assert.False(t, set)

	require.NoError(t, f.SetBill(d(10)))
	assert.ErrorIs(t, f.SetYourExpense(d(-1)), ErrNegativeAmount)
	assert.True(t, f.YourExpense().IsZero())
}

func TestParsePayer(t *testing.T) {
	p, err := ParsePayer("friend")
	require.NoError(t, err)
	assert.Equal(t, PayerFriend, p)

	_, err = ParsePayer("someone")
	assert.ErrorIs(t, err, ErrInvalidPayer)

	f := NewSplitForm()
	assert.ErrorIs(t, f.SetPayer("nobody"), ErrInvalidPayer)
	assert.Equal(t, PayerUser, f.Payer())
}
