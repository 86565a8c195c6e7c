package advance

import (
	"fmt"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/currency"
	"github.com/google/uuid"
)

var (
	ErrAdvanceNotFound  = models.NewKindedError(models.KindNotFound, "ADVANCE_NOT_FOUND", "capital advance not found")
	ErrLimitExceeded    = models.NewKindedError(models.KindValidation, "LIMIT_EXCEEDED", "requested amount exceeds the available advance limit")
	ErrDuplicatePending = models.NewKindedError(models.KindConflict, "DUPLICATE_PENDING", "you already have a pending advance request for this project")
	ErrAlreadyProcessed = models.NewKindedError(models.KindConflict, "ALREADY_PROCESSED", "capital advance has already been decided")
	ErrExceedsRequested = models.NewKindedError(models.KindValidation, "EXCEEDS_REQUESTED", "cannot approve more than requested")
	ErrInvalidAmount    = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "amount must be greater than zero")
	ErrInvalidDecision  = models.NewKindedError(models.KindValidation, "INVALID_DECISION", "decision must be approve or reject")
	ErrForbidden        = models.NewKindedError(models.KindForbidden, "FORBIDDEN", "you are not allowed to act on this advance")
)

type AdvanceError struct {
	ErrorObj  error
	AdvanceID uuid.UUID
	Other     []error
}

func (a *AdvanceError) Error() string {
	return a.ErrorObj.Error()
}

func (a *AdvanceError) ErrorOut() string {
	return fmt.Sprintf("%v: advance %v", a.ErrorObj.Error(), a.AdvanceID)
}

func (a *AdvanceError) Unwrap() error {
	return a.ErrorObj
}

func NewAdvanceError(err error, advanceID uuid.UUID, e ...error) *AdvanceError {
	return &AdvanceError{
		ErrorObj:  err,
		AdvanceID: advanceID,
		Other:     e,
	}
}

// LimitError reports how much could have been requested.
type LimitError struct {
	Limit Limit
}

func (l *LimitError) Error() string {
	return fmt.Sprintf("%v: maximum advance available is ₹%s", ErrLimitExceeded.Error(), currency.FormatCents(l.Limit.Available))
}

func (l *LimitError) Unwrap() error {
	return ErrLimitExceeded
}

var ErrConcurrentUpdate = models.NewKindedError(models.KindConflict, "CONCURRENT_UPDATE", "capital advance changed while being updated, retry")
