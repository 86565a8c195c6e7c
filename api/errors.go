package api

import (
	"errors"
	"net/http"

	"github.com/SwiftFiat/SwiftFiat-Escrow/api/apistrings"
	basemodels "github.com/SwiftFiat/SwiftFiat-Escrow/models"
	"github.com/SwiftFiat/SwiftFiat-Escrow/services/advance"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusFor maps an error kind onto the HTTP status the API answers with.
func statusFor(kind basemodels.ErrorKind) int {
	switch kind {
	case basemodels.KindValidation:
		return http.StatusBadRequest
	case basemodels.KindNotFound:
		return http.StatusNotFound
	case basemodels.KindForbidden:
		return http.StatusForbidden
	case basemodels.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the envelope for err. Classified errors carry their
// message and code; anything else is logged and hidden behind ServerError.
func (s *Server) respondError(ctx *gin.Context, err error) {
	kind := basemodels.KindOf(err)
	if kind == basemodels.KindInternal {
		s.logger.WithFields(logrus.Fields{
			"path":   ctx.FullPath(),
			"method": ctx.Request.Method,
		}).WithError(err).Error("request failed")
		ctx.JSON(http.StatusInternalServerError, basemodels.NewError(apistrings.ServerError))
		return
	}

	var ke *basemodels.KindedError
	errors.As(err, &ke)
	message := ke.Message
	var limitErr *advance.LimitError
	if errors.As(err, &limitErr) {
		message = limitErr.Error()
	}
	ctx.JSON(statusFor(kind), basemodels.NewError(message, ke.Code))
}
