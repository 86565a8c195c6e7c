package webhook

import "github.com/SwiftFiat/SwiftFiat-Escrow/models"

var (
	ErrInvalidURL       = models.NewKindedError(models.KindValidation, "INVALID_WEBHOOK_URL", "webhook url must be an absolute http(s) url")
	ErrEndpointNotFound = models.NewKindedError(models.KindNotFound, "WEBHOOK_NOT_FOUND", "webhook endpoint not found")
)
