package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	maxGroupNameLength   = 255
	maxDescriptionLength = 500
	minPasswordLength    = 8
)

// ValidationError reports a bad field in a request.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func required(field string) error {
	return &ValidationError{Field: field, Message: "required"}
}

// ValidateAmount checks that an amount is positive, below MaxAmount and has
// at most two decimal places.
func ValidateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return &ValidationError{Field: field, Message: "must be greater than 0"}
	}
	if amount.GreaterThan(MaxAmount) {
		return &ValidationError{Field: field, Message: "must be less than 1,000,000"}
	}
	if !HasCurrencyScale(amount) {
		return &ValidationError{Field: field, Message: "must have at most 2 decimal places"}
	}
	return nil
}

// ValidateNewUser checks the fields of a user about to be created.
func ValidateNewUser(email, username, password string) error {
	if strings.TrimSpace(email) == "" {
		return required("email")
	}
	if strings.TrimSpace(username) == "" {
		return required("username")
	}
	if password == "" {
		return required("password")
	}
	if len(password) < minPasswordLength {
		return &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}
	if !strings.Contains(email, "@") {
		return &ValidationError{Field: "email", Message: "must be a valid email address"}
	}
	return nil
}

// ValidateNewGroup checks the fields of a group about to be created.
func ValidateNewGroup(name string, userIDs []string) error {
	if strings.TrimSpace(name) == "" {
		return required("name")
	}
	if len(name) > maxGroupNameLength {
		return &ValidationError{Field: "name", Message: "must be less than 255 characters"}
	}
	if len(userIDs) == 0 {
		return &ValidationError{Field: "user_ids", Message: "at least one user ID is required"}
	}
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if _, err := uuid.Parse(id); err != nil {
			return &ValidationError{Field: "user_ids", Message: fmt.Sprintf("%q is not a valid UUID", id)}
		}
		if seen[id] {
			return &ValidationError{Field: "user_ids", Message: fmt.Sprintf("%q listed twice", id)}
		}
		seen[id] = true
	}
	return nil
}

// ValidateNewExpense checks the fields of an expense about to be recorded.
func ValidateNewExpense(amount decimal.Decimal, description string) error {
	if strings.TrimSpace(description) == "" {
		return required("description")
	}
	if len(description) > maxDescriptionLength {
		return &ValidationError{Field: "description", Message: "must be less than 500 characters"}
	}
	return ValidateAmount("amount", amount)
}

// ValidateNewPayment checks the fields of a payment about to be recorded.
func ValidateNewPayment(fromUserID, toUserID string, amount decimal.Decimal) error {
	if toUserID == "" {
		return required("to_user_id")
	}
	if _, err := uuid.Parse(toUserID); err != nil {
		return &ValidationError{Field: "to_user_id", Message: "must be a valid UUID"}
	}
	if toUserID == fromUserID {
		return &ValidationError{Field: "to_user_id", Message: "cannot pay yourself"}
	}
	return ValidateAmount("amount", amount)
}
