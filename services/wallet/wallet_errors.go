package wallet

import (
	"fmt"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
)

var (
	ErrWalletNotFound    = models.NewKindedError(models.KindNotFound, "WALLET_NOT_FOUND", "wallet not found")
	ErrInsufficientFunds = models.NewKindedError(models.KindValidation, "INSUFFICIENT_FUNDS", "insufficient funds")
	ErrInvalidAmount     = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "amount must be a positive number of paise")
)

type WalletError struct {
	ErrorObj error
	UserID   int64
	Other    []error
}

func (w *WalletError) Error() string {
	return w.ErrorObj.Error()
}

func (w *WalletError) ErrorOut() string {
	return fmt.Sprintf("%v: user %v", w.ErrorObj.Error(), w.UserID)
}

func (w *WalletError) Unwrap() error {
	return w.ErrorObj
}

func NewWalletError(err error, userID int64, e ...error) *WalletError {
	return &WalletError{
		ErrorObj: err,
		UserID:   userID,
		Other:    e,
	}
}
