package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	branchdomain "github.com/sahamit/backoffice/internal/branch/domain"
	catalogdomain "github.com/sahamit/backoffice/internal/catalog/domain"
	expensedomain "github.com/sahamit/backoffice/internal/expense/domain"
	paymentmethoddomain "github.com/sahamit/backoffice/internal/paymentmethod/domain"
	purchasingdomain "github.com/sahamit/backoffice/internal/purchasing/domain"
	reminderdomain "github.com/sahamit/backoffice/internal/reminder/domain"
	supplierdomain "github.com/sahamit/backoffice/internal/supplier/domain"
	voucherdomain "github.com/sahamit/backoffice/internal/voucher/domain"
	"gorm.io/gorm"
)

type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (v ValidationErrors) Error() string {
	return "validation error"
}

type errorPayload struct {
	Type    string            `json:"type"`
	Message string            `json:"message"`
	Errors  []ValidationError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal_error")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

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

func invalidRequestError() error {
	return newValidationError("request", "invalid_request", "invalid request")
}

func newValidationError(field, code, message string) error {
	return &ValidationErrors{
		Errors: []ValidationError{
			{
				Field:   field,
				Code:    code,
				Message: message,
			},
		},
	}
}

func mapError(err error) (int, errorPayload) {
	if err == nil {
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}

	if vErr := asValidationErrors(err); vErr != nil {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors:  vErr.Errors,
		}
	}

	// A refused voucher batch reports the offending receipt and field.
	var batchErr *voucherdomain.ValidationError
	if errors.As(err, &batchErr) {
		field := batchErr.Field
		if batchErr.ReceiptID != 0 {
			field = "receipts[" + batchErr.ReceiptID.String() + "]." + batchErr.Field
		}
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   field,
					Code:    "invalid_receipt_batch",
					Message: batchErr.Error(),
				},
			},
		}
	}

	if isValidationError(err) {
		code := err.Error()
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: "validation error",
			Errors: []ValidationError{
				{
					Field:   validationErrorField(code),
					Code:    code,
					Message: validationErrorMessage(code),
				},
			},
		}
	}

	switch {
	case isConflictError(err):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case isNotFoundError(err):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: "not found",
		}
	case errors.Is(err, ErrInternal):
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

func asValidationErrors(err error) *ValidationErrors {
	var vErr *ValidationErrors
	if errors.As(err, &vErr) && vErr != nil {
		return vErr
	}
	return nil
}

func isValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return true
	case isSupplierValidationError(err),
		isPaymentMethodValidationError(err),
		isBranchValidationError(err),
		isExpenseValidationError(err),
		isReminderValidationError(err),
		isPurchasingValidationError(err),
		isCatalogValidationError(err),
		isVoucherValidationError(err):
		return true
	default:
		return false
	}
}

func isConflictError(err error) bool {
	switch {
	case errors.Is(err, ErrConflict),
		errors.Is(err, paymentmethoddomain.ErrDuplicateName),
		errors.Is(err, branchdomain.ErrDuplicateCode),
		errors.Is(err, catalogdomain.ErrDuplicateSKU),
		errors.Is(err, purchasingdomain.ErrDuplicateNumber),
		errors.Is(err, purchasingdomain.ErrAlreadyMatched),
		errors.Is(err, reminderdomain.ErrAlreadyPaid):
		return true
	default:
		return false
	}
}

func isNotFoundError(err error) bool {
	switch {
	case errors.Is(err, ErrNotFound),
		errors.Is(err, supplierdomain.ErrNotFound),
		errors.Is(err, paymentmethoddomain.ErrNotFound),
		errors.Is(err, branchdomain.ErrNotFound),
		errors.Is(err, expensedomain.ErrNotFound),
		errors.Is(err, reminderdomain.ErrNotFound),
		errors.Is(err, purchasingdomain.ErrNotFound),
		errors.Is(err, catalogdomain.ErrNotFound),
		errors.Is(err, voucherdomain.ErrVoucherNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return true
	default:
		return false
	}
}

func validationErrorField(code string) string {
	if code == "invalid_request" {
		return "request"
	}
	if strings.HasPrefix(code, "invalid_") {
		return strings.TrimPrefix(code, "invalid_")
	}
	return ""
}

func validationErrorMessage(code string) string {
	switch code {
	case "invalid_request":
		return "invalid request"
	default:
		return "invalid value"
	}
}
