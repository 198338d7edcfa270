package models

import "github.com/shopspring/decimal"

// Expense is an outlay recorded by one member and shared equally by the group.
// Expenses are immutable once created.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// PaidBy is the user ID of the member who paid.
	PaidBy string

	// PaidByUsername is filled in by listings for display; it is not stored.
	PaidByUsername string

	// Amount is the positive amount paid, with at most two decimal places.
	Amount decimal.Decimal

	// Description says what the money was spent on.
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
