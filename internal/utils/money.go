package utils

import (
	"math"
	"time"
)

// RoundPrice rounds a currency amount to 2 decimal places. Prices live in
// decimal(10,2) columns; every amount written to the store goes through
// this first.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// Nights returns the number of nights between two dates. Both arguments
// carry date precision only.
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
