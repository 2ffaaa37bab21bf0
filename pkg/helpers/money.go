package helpers

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrAmountNotANumber    = errors.New("amount is not a number")
	ErrAmountNotPositive   = errors.New("amount must be positive")
	ErrAmountTooManyPlaces = errors.New("amount has more than two decimal places")
)

// ParseAmount parses a wire amount ("120.50") into a decimal. Amounts must
// be positive finite numbers with at most two decimal places; anything else
// is a caller error, never silently rounded.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, ErrAmountNotANumber
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrAmountNotPositive
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, ErrAmountTooManyPlaces
	}
	return d, nil
}
