package errors

import (
	"fmt"
	"net/http"

	"pizzahouse/internal/errors"

	"github.com/shopspring/decimal"
)

// Kind groups error codes into the failure categories callers branch on.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
	KindUnauthorized      Kind = "unauthorized"
	KindNoZoneAvailable   Kind = "no_zone_available"
	KindBelowMinimumOrder Kind = "below_minimum_order"
	KindInvalidTransition Kind = "invalid_transition"
	KindCapacityExceeded  Kind = "capacity_exceeded"
	KindInternal          Kind = "internal"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// PayloadError is implemented by errors that disclose structured data to the caller.
type PayloadError interface {
	Payload() any
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so errors built
// with WithDetails still match their predefined sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

func (e *BaseError) Kind() Kind        { return e.kind }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of the error carrying the given details.
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithDetailsf is WithDetails with a format specifier.
func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

// Predefined error types
var (
	ErrInvalidInput = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"invalid input",
		"",
	)

	ErrInvalidCoordinates = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_COORDINATES",
		"coordinates are out of range",
		"",
	)

	ErrInvalidOrderType = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_ORDER_TYPE",
		"order type must be delivery or pickup",
		"",
	)

	ErrInvalidPaymentMethod = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_PAYMENT_METHOD",
		"payment method must be cash or card",
		"",
	)

	ErrInvalidStatus = NewBaseError(
		KindInvalidInput,
		http.StatusBadRequest,
		"INVALID_STATUS",
		"unrecognized order status",
		"",
	)

	ErrZoneNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ZONE_NOT_FOUND",
		"delivery zone not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"order not found",
		"",
	)

	ErrSlotNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"SLOT_NOT_FOUND",
		"time slot not found",
		"",
	)

	ErrRestaurantNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"RESTAURANT_NOT_FOUND",
		"restaurant location not found",
		"",
	)

	ErrUnauthorized = NewBaseError(
		KindUnauthorized,
		http.StatusForbidden,
		"ORDER_ACCESS_DENIED",
		"not allowed to access this order",
		"",
	)

	ErrNoZoneAvailable = NewBaseError(
		KindNoZoneAvailable,
		http.StatusUnprocessableEntity,
		"NO_ZONE_AVAILABLE",
		"no active delivery zone is configured",
		"",
	)

	ErrBelowMinimumOrder = NewBaseError(
		KindBelowMinimumOrder,
		http.StatusUnprocessableEntity,
		"BELOW_MINIMUM_ORDER",
		"order subtotal is below the zone minimum",
		"",
	)

	ErrInvalidTransition = NewBaseError(
		KindInvalidTransition,
		http.StatusConflict,
		"INVALID_TRANSITION",
		"order status change not allowed",
		"",
	)

	ErrCapacityExceeded = NewBaseError(
		KindCapacityExceeded,
		http.StatusConflict,
		"SLOT_CAPACITY_EXCEEDED",
		"time slot is fully booked",
		"",
	)

	ErrInternalError = NewBaseError(
		KindInternal,
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// BelowMinimumOrderError reports a subtotal under the resolved zone's minimum
// order amount and discloses that minimum.
type BelowMinimumOrderError struct {
	Minimum  decimal.Decimal
	Subtotal decimal.Decimal
}

// NewBelowMinimumOrderError creates a BelowMinimumOrderError
func NewBelowMinimumOrderError(minimum, subtotal decimal.Decimal) *BelowMinimumOrderError {
	return &BelowMinimumOrderError{Minimum: minimum, Subtotal: subtotal}
}

func (e *BelowMinimumOrderError) Error() string {
	return fmt.Sprintf("%s: minimum %s, subtotal %s", ErrBelowMinimumOrder.Message(), e.Minimum.StringFixed(2), e.Subtotal.StringFixed(2))
}

func (e *BelowMinimumOrderError) Is(target error) bool {
	return target == ErrBelowMinimumOrder
}

func (e *BelowMinimumOrderError) Kind() Kind        { return KindBelowMinimumOrder }
func (e *BelowMinimumOrderError) HTTPCode() int     { return ErrBelowMinimumOrder.HTTPCode() }
func (e *BelowMinimumOrderError) ErrorCode() string { return ErrBelowMinimumOrder.ErrorCode() }
func (e *BelowMinimumOrderError) Message() string   { return ErrBelowMinimumOrder.Message() }

func (e *BelowMinimumOrderError) Details() string {
	return fmt.Sprintf("minimum order amount is %s", e.Minimum.StringFixed(2))
}

// Payload exposes the minimum order amount to API callers.
func (e *BelowMinimumOrderError) Payload() any {
	return map[string]string{
		"minimumOrderAmount": e.Minimum.StringFixed(2),
		"subtotal":           e.Subtotal.StringFixed(2),
	}
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) Kind() Kind        { return KindInternal }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "database execution failed" }
func (e *DatabaseExecuteError) Details() string   { return e.details }

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	if appErr, ok := errors.Find[AppError](err); ok {
		return appErr.Kind()
	}

	return KindInternal
}
