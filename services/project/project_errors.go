package project

import (
	"fmt"

	"github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/google/uuid"
)

var (
	ErrProjectNotFound   = models.NewKindedError(models.KindNotFound, "PROJECT_NOT_FOUND", "project not found")
	ErrMilestoneNotFound = models.NewKindedError(models.KindNotFound, "MILESTONE_NOT_FOUND", "milestone not found")
	ErrForbidden         = models.NewKindedError(models.KindForbidden, "FORBIDDEN", "you are not allowed to act on this project")
	ErrInvalidAmount     = models.NewKindedError(models.KindValidation, "INVALID_AMOUNT", "milestone amount must be greater than zero")
	ErrInvalidInput      = models.NewKindedError(models.KindValidation, "INVALID_INPUT", "invalid project input")
)

type ProjectError struct {
	ErrorObj  error
	ProjectID uuid.UUID
	Other     []error
}

func (p *ProjectError) Error() string {
	return p.ErrorObj.Error()
}

func (p *ProjectError) ErrorOut() string {
	return fmt.Sprintf("%v: project %v", p.ErrorObj.Error(), p.ProjectID)
}

func (p *ProjectError) Unwrap() error {
	return p.ErrorObj
}

func NewProjectError(err error, projectID uuid.UUID, e ...error) *ProjectError {
	return &ProjectError{
		ErrorObj:  err,
		ProjectID: projectID,
		Other:     e,
	}
}
