package controllers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/studorg/memtrack/internal/pkg/apperrors"
	"github.com/studorg/memtrack/internal/pkg/helpers"
)

// parseIDParam reads a positive int64 path parameter
func parseIDParam(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", apperrors.ErrValidationFailed, name)
	}
	return id, nil
}

// parseIDQuery reads a positive int64 query parameter
func parseIDQuery(ctx *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Query(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number", apperrors.ErrValidationFailed, name)
	}
	return id, nil
}

// parseDateField parses an optional YYYY-MM-DD field, defaulting to today
func parseDateField(name, value string) (time.Time, error) {
	date, err := helpers.ParseDateOrNow(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in the form %s", apperrors.ErrValidationFailed, name, helpers.DateLayout)
	}
	return date, nil
}
