package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUnauthorized is returned when a protected request carries no bearer token.
	ErrUnauthorized = errors.New("unauthorized access")
	// ErrInvalidToken is returned when a token fails signature, expiry or shape checks.
	ErrInvalidToken = errors.New("forbidden")
	// ErrForbidden is returned when the token identity does not own the target resource.
	ErrForbidden = errors.New("forbidden access")
	// ErrRoleRequired is returned when the caller's role does not permit the action.
	ErrRoleRequired = errors.New("insufficient role")
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrClassNotFound is returned when a class is not found.
	ErrClassNotFound = errors.New("class not found")
	// ErrClassExists is returned when a class name is already taken.
	ErrClassExists = errors.New("class already exists")
	// ErrNoSeatsAvailable is returned when a class has no seats left.
	ErrNoSeatsAvailable = errors.New("no seats available")
	// ErrInvalidRoleTransition is returned when a promotion would not raise the user's role.
	ErrInvalidRoleTransition = errors.New("invalid role transition")
	// ErrInvalidPrice is returned when a price is missing or not positive.
	ErrInvalidPrice = errors.New("price must be a positive number")
	// ErrInvalidID is returned when a path id is not a valid document id.
	ErrInvalidID = errors.New("invalid id")
	// ErrPaymentMismatch is returned when a payment record disagrees with the provider.
	ErrPaymentMismatch = errors.New("payment does not match a confirmed charge")
	// ErrDuplicatePayment is returned when a transaction has already been recorded.
	ErrDuplicatePayment = errors.New("payment already recorded")
	// ErrPaymentProvider is returned when the payment provider call fails.
	ErrPaymentProvider = errors.New("payment provider unavailable")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

var mappings = []struct {
	err    error
	status int
	code   string
}{
	{ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
	{ErrInvalidToken, http.StatusForbidden, "FORBIDDEN"},
	{ErrForbidden, http.StatusForbidden, "FORBIDDEN_ACCESS"},
	{ErrRoleRequired, http.StatusForbidden, "ROLE_REQUIRED"},
	{ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
	{ErrClassNotFound, http.StatusNotFound, "CLASS_NOT_FOUND"},
	{ErrClassExists, http.StatusConflict, "CLASS_EXISTS"},
	{ErrNoSeatsAvailable, http.StatusConflict, "NO_SEATS_AVAILABLE"},
	{ErrInvalidRoleTransition, http.StatusConflict, "INVALID_ROLE_TRANSITION"},
	{ErrInvalidPrice, http.StatusBadRequest, "INVALID_PRICE"},
	{ErrInvalidID, http.StatusBadRequest, "INVALID_ID"},
	{ErrPaymentMismatch, http.StatusBadRequest, "PAYMENT_MISMATCH"},
	{ErrDuplicatePayment, http.StatusConflict, "DUPLICATE_PAYMENT"},
	{ErrPaymentProvider, http.StatusBadGateway, "PAYMENT_PROVIDER_ERROR"},
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// MapErrorToHTTP maps domain errors, wrapped or not, to HTTP errors.
// Anything unrecognised is treated as a store failure.
func MapErrorToHTTP(err error) *HTTPError {
	for _, m := range mappings {
		if errors.Is(err, m.err) {
			return NewHTTPError(m.status, m.err.Error(), m.code)
		}
	}
	return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
}
