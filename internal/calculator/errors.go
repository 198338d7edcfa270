package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyGroup is returned when balances are requested for a group with
	// no members; the per-person share is undefined.
	ErrEmptyGroup = errors.New("group has no members")

	// ErrDuplicateMember is returned when the member list names the same id twice.
	ErrDuplicateMember = errors.New("duplicate member")

	// ErrUnbalanced is returned if the computed balances do not sum to zero.
	ErrUnbalanced = errors.New("balances do not sum to zero")
)

// EntryKind names the ledger entry an error refers to.
type EntryKind string

const (
	EntryExpense EntryKind = "expense"
	EntryPayment EntryKind = "payment"
)

// ReferentialIntegrityError reports a ledger entry that references someone
// outside the group's member set.
type ReferentialIntegrityError struct {
	Kind     EntryKind
	EntryID  string
	MemberID string
}

func (e *ReferentialIntegrityError) Error() string {
	return fmt.Sprintf("%s %s references non-member %s", e.Kind, e.EntryID, e.MemberID)
}

// InvalidAmountError reports a ledger entry whose amount is not positive or
// has more than two decimal places.
type InvalidAmountError struct {
	Kind    EntryKind
	EntryID string
	Amount  decimal.Decimal
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s %s has invalid amount %s", e.Kind, e.EntryID, e.Amount)
}

// SelfPaymentError reports a payment whose sender and receiver are the same.
type SelfPaymentError struct {
	PaymentID string
	MemberID  string
}

func (e *SelfPaymentError) Error() string {
	return fmt.Sprintf("payment %s is from %s to themselves", e.PaymentID, e.MemberID)
}
