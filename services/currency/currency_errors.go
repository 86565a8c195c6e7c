package currency

import (
	"fmt"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
)

var (
	ErrInvalidAmount       = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "invalid amount")
	ErrAmountOutOfRange    = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "amount out of range")
	ErrCurrencyUnsupported = models.NewKindedError(models.KindValidation, "CURRENCY_UNSUPPORTED", "currency is not supported")
)

type AmountError struct {
	ErrorObj error
	Input    string
}

func (c *AmountError) Error() string {
	return c.ErrorObj.Error()
}

func (c *AmountError) ErrorOut() string {
	return fmt.Sprintf("%v: %q", c.ErrorObj.Error(), c.Input)
}

func (c *AmountError) Unwrap() error {
	return c.ErrorObj
}

func NewAmountError(err error, input string) *AmountError {
	return &AmountError{
		ErrorObj: err,
		Input:    input,
	}
}
