package service

import "math"

// ToPaisa converts a decimal rupee amount to integer paisa. This is the
// only place floating-point currency is touched; everything downstream
// stores and sums int64 paisa. Rounding is half-away-from-zero, which
// round-trips exactly for amounts with at most two fractional digits.
func ToPaisa(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToRupees converts integer paisa back to the display representation.
func ToRupees(paisa int64) float64 {
	return float64(paisa) / 100
}
