package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/statement-processor/internal/domain/error"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from panics and renders errors attached with c.Error
// when the handler did not write a response itself
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
					"user_agent": c.Request.UserAgent(),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		code := domainerr.ErrorCode(err)
		status := StatusFromCode(code)

		fields := map[string]any{
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": RequestIDFrom(c),
			"error":      err.Error(),
			"error_code": code,
		}
		if lf, ok := err.(interface{ LogFields() map[string]any }); ok {
			for k, v := range lf.LogFields() {
				fields[k] = v
			}
		}

		if status >= http.StatusInternalServerError {
			logger.Error("Request failed", fields)
		} else {
			logger.Warn("Request rejected", fields)
		}

		c.JSON(status, buildErrorResponse(err, code, status))
	}
}

func buildErrorResponse(err error, code, status int) dto.ErrorResponse {
	resp := dto.ErrorResponse{
		Code:    code,
		Message: err.Error(),
	}

	// driver messages stay in the logs
	if status >= http.StatusInternalServerError {
		resp.Message = http.StatusText(status)
	}

	var guardErr *domainerr.BookingGuardError
	var deltaErr *domainerr.InvalidDeltaError
	var dupErr *domainerr.DuplicateDocumentError

	switch {
	case errors.As(err, &guardErr):
		resp.Details = guardErr.Failures
	case errors.As(err, &deltaErr):
		resp.Details = map[string]any{
			"position": deltaErr.Position,
			"reason":   deltaErr.Reason,
		}
	case errors.As(err, &dupErr):
		resp.Details = map[string]any{
			"fingerprint": dupErr.Fingerprint,
		}
	}

	return resp
}

// StatusFromCode derives the HTTP status from a domain error code
func StatusFromCode(code int) int {
	switch code {
	case domainerr.CodeRecordNotFound:
		return http.StatusNotFound
	case domainerr.CodeDuplicateDocument,
		domainerr.CodeRecordBooked,
		domainerr.CodeNormalizationApplied,
		domainerr.CodeNormalizationDisabled:
		return http.StatusConflict
	case domainerr.CodeBookingGuardFailed,
		domainerr.CodeNoTransactionsFound,
		domainerr.CodeUnreadableDocument:
		return http.StatusUnprocessableEntity
	case domainerr.CodeDatabaseConnection:
		return http.StatusServiceUnavailable
	}

	if code >= 4000 && code < 5000 {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
