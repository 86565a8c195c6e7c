package escrow

import (
	"fmt"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/google/uuid"
)

var (
	ErrNotFundable         = models.NewKindedError(models.KindValidation, "NOT_FUNDABLE", "milestone is not fundable")
	ErrRefundNoteRequired  = models.NewKindedError(models.KindValidation, "NOTE_REQUIRED", "a note is required when funding again")
	ErrNotStartable        = models.NewKindedError(models.KindValidation, "NOT_STARTABLE", "only a funded milestone can be started")
	ErrNotSubmittable      = models.NewKindedError(models.KindValidation, "NOT_SUBMITTABLE", "milestone is not submittable")
	ErrNotReleasable       = models.NewKindedError(models.KindValidation, "NOT_RELEASABLE", "only a submitted milestone can be approved")
	ErrInvalidAmount       = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "invalid release amount")
	ErrExceedsRemaining    = models.NewKindedError(models.KindValidation, "EXCEEDS_REMAINING", "release amount exceeds remaining balance")
	ErrAlreadyReleased     = models.NewKindedError(models.KindValidation, "ALREADY_RELEASED", "cannot dispute a released milestone")
	ErrAdminCannotDispute  = models.NewKindedError(models.KindForbidden, "FORBIDDEN", "admins cannot raise disputes")
	ErrConcurrentRelease   = models.NewKindedError(models.KindConflict, "CONCURRENT_UPDATE", "milestone changed while being released, reload and retry")
	ErrInvalidEvidenceFile = models.NewKindedError(models.KindValidation, "INVALID_FILE", "evidence file name is required")
)

type EscrowError struct {
	ErrorObj    error
	MilestoneID uuid.UUID
	Other       []error
}

func (e *EscrowError) Error() string {
	return e.ErrorObj.Error()
}

func (e *EscrowError) ErrorOut() string {
	return fmt.Sprintf("%v: milestone %v", e.ErrorObj.Error(), e.MilestoneID)
}

func (e *EscrowError) Unwrap() error {
	return e.ErrorObj
}

func NewEscrowError(err error, milestoneID uuid.UUID, e ...error) *EscrowError {
	return &EscrowError{
		ErrorObj:    err,
		MilestoneID: milestoneID,
		Other:       e,
	}
}
