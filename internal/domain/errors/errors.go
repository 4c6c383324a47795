package errors

import (
	"net/http"

	"crosspromo/internal/errors"
)

// Kind classifies an application error by where it originates.
type Kind string

const (
	// KindValidation is a local input problem; no network call was made.
	KindValidation Kind = "validation"
	// KindNetwork means the platform backend could not be reached or failed the call.
	KindNetwork Kind = "network"
	// KindBusinessRule means the action is not allowed for the target store.
	KindBusinessRule Kind = "business_rule"
	// KindNotFound means the referenced resource is unknown.
	KindNotFound Kind = "not_found"
	// KindInternal is anything else.
	KindInternal Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind        // Error classification
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
	kind      Kind
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
		kind:      kind,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails returns a copy of the error carrying detailed information.
// errors.Is still matches the predefined error it was derived from.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
		kind:      e.kind,
	}
}

// Is matches copies made by WithDetails against the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// KindOf returns the classification of err, KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// Predefined error types
var (
	// Validation errors, surfaced next to the offending control
	ErrLocationSelectionRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"LOCATION_SELECTION_REQUIRED",
		"Select one of your locations to send the request from",
		"",
	)

	ErrConsentRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"CONSENT_REQUIRED",
		"Please confirm you agree to the partnership terms",
		"",
	)

	ErrPartnershipIDRequired = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"PARTNERSHIP_ID_REQUIRED",
		"A partnership id is required to cancel",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Business rule violations, normally prevented by disabling the action
	ErrPartnerCapReached = NewBaseError(
		KindBusinessRule,
		http.StatusConflict,
		"PARTNER_CAP_REACHED",
		"This store already has the maximum number of partners",
		"",
	)

	ErrPartnershipRequestNotAllowed = NewBaseError(
		KindBusinessRule,
		http.StatusConflict,
		"PARTNERSHIP_REQUEST_NOT_ALLOWED",
		"A partnership request cannot be sent to this store",
		"",
	)

	// Lookup errors
	ErrStoreNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store not found",
		"",
	)

	ErrPartnershipNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"PARTNERSHIP_NOT_FOUND",
		"Partnership not found",
		"",
	)

	ErrStickerNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"STICKER_NOT_FOUND",
		"Sticker not found",
		"",
	)

	// Backend errors
	ErrBackendUnavailable = NewBaseError(
		KindNetwork,
		http.StatusBadGateway,
		"BACKEND_UNAVAILABLE",
		"Failed to reach the server",
		"",
	)

	ErrBackendTimeout = NewBaseError(
		KindNetwork,
		http.StatusGatewayTimeout,
		"BACKEND_TIMEOUT",
		"Request timeout",
		"",
	)

	ErrBackendRejected = NewBaseError(
		KindNetwork,
		http.StatusBadGateway,
		"BACKEND_REJECTED",
		"The server rejected the request",
		"",
	)

	// Sticker storage
	ErrStickerStorageDisabled = NewBaseError(
		KindInternal,
		http.StatusNotImplemented,
		"STICKER_STORAGE_DISABLED",
		"Sticker storage is not configured",
		"",
	)

	// General errors
	ErrUnauthorized = NewBaseError(
		KindValidation,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrRateLimited = NewBaseError(
		KindValidation,
		http.StatusTooManyRequests,
		"RATE_LIMITED",
		"Too many requests, try again shortly",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)
