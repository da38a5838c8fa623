package utils

import "math"

// ToCents converts a currency amount to integer cents. Ledger balances are
// summed in cents so amounts like 10.00 - 4.00 never pick up float drift.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// FromCents converts integer cents back to a two-decimal currency amount.
func FromCents(cents int64) float64 {
	return float64(cents) / 100
}
