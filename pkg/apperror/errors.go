package apperror

import (
	"fmt"
	"net/http"
	"time"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	RetryAfter int64  `json:"retry_after,omitempty"` // seconds; set on rate-limit errors
	Err        error  `json:"-"`                     // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet connection (WALLET) ----

// ErrValidation reports malformed caller input (bad address, missing field).
// Always recoverable by correcting the input.
func ErrValidation(message string) *AppError {
	return New("WALLET_VALIDATION_ERROR", message, http.StatusBadRequest)
}

// ErrRateLimited reports too many connection attempts. Recoverable by waiting.
func ErrRateLimited(retryAfter time.Duration) *AppError {
	e := New("WALLET_RATE_LIMITED", "Too many connection attempts", http.StatusTooManyRequests)
	e.RetryAfter = int64(retryAfter.Seconds())
	if e.RetryAfter < 1 {
		e.RetryAfter = 1
	}
	return e
}

// ErrConnectionFailed is the generic nonce/connection failure. The caller
// must request a fresh nonce and retry end-to-end; nonces are never retried.
func ErrConnectionFailed() *AppError {
	return New("WALLET_CONNECTION_FAILED", "Wallet connection failed, request a new nonce", http.StatusBadRequest)
}

// ErrSignatureInvalid reports a cryptographically invalid signature. Not
// recoverable without a new valid signature.
func ErrSignatureInvalid() *AppError {
	return New("WALLET_AUTH_FAILED", "Signature verification failed", http.StatusUnauthorized)
}

// ErrNonceUnavailable reports that the ephemeral store was unreachable during
// a nonce operation. Nonce handling is the core security control and cannot
// fail open.
func ErrNonceUnavailable(err error) *AppError {
	return Wrap("WALLET_SERVICE_UNAVAILABLE", "Nonce service temporarily unavailable", http.StatusServiceUnavailable, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_INVALID_TOKEN", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an unexpected internal error.
func InternalError(err error) *AppError {
	return Wrap("SYS_INTERNAL", "Internal server error", http.StatusInternalServerError, err)
}
