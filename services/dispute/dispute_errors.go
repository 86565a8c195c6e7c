package dispute

import (
	"fmt"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/google/uuid"
)

var (
	ErrDisputeNotFound      = models.NewKindedError(models.KindNotFound, "NOT_FOUND", "dispute not found")
	ErrAlreadyResolved      = models.NewKindedError(models.KindConflict, "ALREADY_RESOLVED", "dispute has already been resolved")
	ErrInvalidClaimType     = models.NewKindedError(models.KindValidation, "INVALID_CLAIM_TYPE", "claim type must be one of DAMAGE, LOSS, DELAY, QUALITY")
	ErrReasonRequired       = models.NewKindedError(models.KindValidation, "REASON_REQUIRED", "a reason is required")
	ErrResolutionRequired   = models.NewKindedError(models.KindValidation, "RESOLUTION_REQUIRED", "a resolution of at least 5 characters is required")
	ErrInvalidCompensation  = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "compensation cannot be negative")
	ErrInvalidRecipient     = models.NewKindedError(models.KindValidation, "INVALID_RECIPIENT", "compensation recipient must be CLIENT or VENDOR")
	ErrNoCounterparty       = models.NewKindedError(models.KindValidation, "NO_VENDOR", "project has no vendor to settle with")
	ErrMilestoneMismatch    = models.NewKindedError(models.KindValidation, "MILESTONE_MISMATCH", "milestone does not belong to this project")
	ErrForbidden            = models.NewKindedError(models.KindForbidden, "FORBIDDEN", "only an admin can resolve claims")
	ErrAdminCannotFileClaim = models.NewKindedError(models.KindForbidden, "FORBIDDEN", "admins cannot file claims")
)

type DisputeError struct {
	ErrorObj  error
	DisputeID uuid.UUID
	Other     []error
}

func (d *DisputeError) Error() string {
	return d.ErrorObj.Error()
}

func (d *DisputeError) ErrorOut() string {
	return fmt.Sprintf("%v: dispute %v", d.ErrorObj.Error(), d.DisputeID)
}

func (d *DisputeError) Unwrap() error {
	return d.ErrorObj
}

func NewDisputeError(err error, disputeID uuid.UUID, e ...error) *DisputeError {
	return &DisputeError{
		ErrorObj:  err,
		DisputeID: disputeID,
		Other:     e,
	}
}
