package middleware

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/app/models/dto"
	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Domain-rule
// rejections come out as 4xx with their own codes; anything unrecognized is
// logged and answered with a plain 500.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrOrganizationNotFound),
		errors.Is(err, apperrors.ErrMembershipNotFound),
		errors.Is(err, apperrors.ErrTermNotFound),
		errors.Is(err, apperrors.ErrPaymentNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, 404, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, err.Error()))

	case errors.Is(err, apperrors.ErrOrganizationAlreadyExists),
		errors.Is(err, apperrors.ErrMembershipAlreadyExists),
		errors.Is(err, apperrors.ErrResourceAlreadyExists),
		errors.Is(err, apperrors.ErrConflict):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, err.Error()))

	case errors.Is(err, apperrors.ErrTermAlreadyExists):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeDuplicateTerm, err.Error()))

	case errors.Is(err, apperrors.ErrMembershipClosed):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeMembershipClosed, err.Error()))

	case errors.Is(err, apperrors.ErrNoFeeDue):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeNoFeeDue, err.Error()))

	case errors.Is(err, apperrors.ErrNoFeePolicy):
		// Suspended memberships have no fee schedule; the request is
		// well-formed but unprocessable.
		respond(c, 422, dto.NewErrorDetail(dto.ErrorCodeNoFeePolicy, err.Error()))

	case errors.Is(err, apperrors.ErrInvalidPaymentAmount):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeInvalidPaymentAmount, err.Error()).WithField("amount"))

	case errors.Is(err, apperrors.ErrPaymentExceedsBalance):
		respond(c, 409, dto.NewErrorDetail(dto.ErrorCodeOverpayment, err.Error()).WithField("amount"))

	case errors.Is(err, apperrors.ErrInvalidMemberStatus):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeResourceInvalid, err.Error()).WithField("status"))

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest):
		respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()))

	default:
		logger.Error().Err(err).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("Unhandled error")
		respond(c, 500, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

// HandleBindingError answers a gin binding failure with a 400
func HandleBindingError(c *gin.Context, err error) {
	respond(c, 400, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
		WithDetails(err.Error()))
}

func respond(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.JSON(status, dto.APIResponse{
		Error:     detail,
		Timestamp: time.Now(),
	})
}
