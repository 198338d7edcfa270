package models

import "github.com/shopspring/decimal"

// CurrencyScale is the number of decimal places kept for every amount.
const CurrencyScale = 2

// MaxAmount is the largest amount accepted for a single expense or payment.
var MaxAmount = decimal.RequireFromString("999999.99")

// ToMinorUnits converts an amount to integer minor units (cents).
// The amount must already have at most CurrencyScale decimal places.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(CurrencyScale).IntPart()
}

// FromMinorUnits converts integer minor units back to an amount.
func FromMinorUnits(units int64) decimal.Decimal {
	return decimal.New(units, -CurrencyScale)
}

// HasCurrencyScale reports whether amount has no more than CurrencyScale
// significant decimal places.
func HasCurrencyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(CurrencyScale))
}
