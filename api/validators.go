package api

import (
	"sync"

	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var validatorsOnce sync.Once

// registerValidators adds the `rupees` tag to gin's binding validator. It
// accepts an empty string so optional amounts can combine it with
// omitempty or required.
func registerValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := v.RegisterValidation("rupees", validRupees); err != nil {
			panic(err)
		}
	})
}

func validRupees(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := currency.ParsePositiveRupees(s)
	return err == nil
}

// optionalRupees converts a validated optional amount to cents.
func optionalRupees(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	cents, err := currency.ParsePositiveRupees(s)
	if err != nil {
		return nil, err
	}
	return &cents, nil
}
