package server

import (
	"errors"
	"net/http"

	invoicedomain "github.com/a13312860897-create/invomate-sub001/internal/invoice/domain"
	"github.com/a13312860897-create/invomate-sub001/internal/monthkey"
	reportingdomain "github.com/a13312860897-create/invomate-sub001/internal/reporting/domain"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var errMalformedBody = errors.New("malformed_body")

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

// mapError translates domain errors to HTTP statuses. Validation failures
// name the offending field; internal failures never leak detail.
func mapError(err error) (int, errorPayload) {
	if field, code, ok := asValidationError(err); ok {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{Field: field, Code: code, Message: "invalid value"},
			},
		}
	}

	switch {
	case errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, reportingdomain.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable, errorPayload{
			Type:    "service_unavailable",
			Message: "service unavailable",
		}
	case errors.Is(err, reportingdomain.ErrInternalAggregation):
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}

func asValidationError(err error) (field, code string, ok bool) {
	switch {
	case errors.Is(err, reportingdomain.ErrInvalidOwner),
		errors.Is(err, invoicedomain.ErrInvalidOwner):
		return "owner_id", "invalid_owner", true
	case errors.Is(err, monthkey.ErrInvalidFormat):
		return "month_key", "invalid_month_format", true
	case errors.Is(err, monthkey.ErrOutOfRange):
		return "month_key", "invalid_month_range", true
	case errors.Is(err, invoicedomain.ErrInvalidStatus):
		return "status", "invalid_status", true
	case errors.Is(err, invoicedomain.ErrInvalidAmount):
		return "amount", "invalid_amount", true
	case errors.Is(err, invoicedomain.ErrMissingIssue):
		return "issue_date", "missing_issue_date", true
	case errors.Is(err, errMalformedBody):
		return "body", "malformed_body", true
	default:
		return "", "", false
	}
}
