package domain

import "errors"

var (
	// Friend errors
	ErrFriendNotFound    = errors.New("friend not found")
	ErrDuplicateFriendID = errors.New("friend id already exists")
	ErrInvalidFriend     = errors.New("invalid friend")
	ErrIncompleteFriend  = errors.New("friend name and image are required")

	// Selection errors
	ErrNoSelection       = errors.New("no friend selected")
	ErrSelectionMismatch = errors.New("friend is not the current selection")

	// Split errors
	ErrBillRequired       = errors.New("please enter your bill value")
	ErrExpenseExceedsBill = errors.New("expense cannot be greater than bill")
	ErrNegativeAmount     = errors.New("amount cannot be negative")
	ErrInvalidPayer       = errors.New("payer must be user or friend")
)
