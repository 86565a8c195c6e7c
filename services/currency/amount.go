// Package currency converts between user-facing rupee strings and the integer
// paise every balance is stored in.
package currency

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var SupportedCurrencies = []string{"INR"}

var (
	hundred  = decimal.NewFromInt(100)
	maxCents = decimal.NewFromInt(math.MaxInt64)
)

func IsCurrencyValid(request string) bool {
	for _, c := range SupportedCurrencies {
		if request == c {
			return true
		}
	}

	return false
}

// ParseRupees parses a rupee amount such as "1499.995" and rounds it to the
// nearest paisa, half away from zero. Negative, non-numeric and oversized
// inputs are rejected.
func ParseRupees(s string) (int64, error) {
	s = strings.TrimSpace(s)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, NewAmountError(ErrInvalidAmount, s)
	}
	return RupeesToCents(d)
}

func RupeesToCents(d decimal.Decimal) (int64, error) {
	if d.IsNegative() {
		return 0, NewAmountError(ErrInvalidAmount, d.String())
	}
	cents := d.Mul(hundred).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, NewAmountError(ErrAmountOutOfRange, d.String())
	}
	return cents.IntPart(), nil
}

// ParsePositiveRupees is ParseRupees that also refuses amounts that round
// to zero.
func ParsePositiveRupees(s string) (int64, error) {
	cents, err := ParseRupees(s)
	if err != nil {
		return 0, err
	}
	if cents == 0 {
		return 0, NewAmountError(ErrInvalidAmount, s)
	}
	return cents, nil
}

// FormatCents renders paise as a two-decimal rupee string.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
