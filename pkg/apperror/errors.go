package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
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

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_002", "Invalid or expired session", http.StatusUnauthorized)
}

func ErrWrongPassword() *AppError {
	return New("AUTH_003", "Current password is incorrect", http.StatusForbidden)
}

func ErrInvalidOTP() *AppError {
	return New("AUTH_004", "Invalid or expired code", http.StatusBadRequest)
}

// ---- Transfer (TRF) ----

func ErrInvalidAmount() *AppError {
	return New("TRF_001", "Please enter a valid amount", http.StatusBadRequest)
}

func ErrInsufficientBalance() *AppError {
	return New("TRF_002", "Insufficient balance", http.StatusPaymentRequired)
}

func ErrMissingBeneficiary() *AppError {
	return New("TRF_003", "Missing beneficiary details", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("TRF_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Bill Payment (BILL) ----

func ErrMissingBillDetails() *AppError {
	return New("BILL_001", "Please select a provider and enter consumer number", http.StatusBadRequest)
}

func ErrNoPendingBill() *AppError {
	return New("BILL_002", "No fetched bill to pay", http.StatusNotFound)
}

// ---- Mobile Recharge (RCH) ----

func ErrMissingRechargeFields() *AppError {
	return New("RCH_001", "Please fill all required fields", http.StatusBadRequest)
}

func ErrInvalidMobileNumber() *AppError {
	return New("RCH_002", "Please enter a valid Pakistani mobile number (03XXXXXXXXX)", http.StatusBadRequest)
}

// ---- Preferences (PREF) ----

func ErrInvalidPreference(message string) *AppError {
	return New("PREF_001", message, http.StatusBadRequest)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrStorageUnavailable wraps a session-storage failure.
func ErrStorageUnavailable(err error) *AppError {
	return Wrap("SYS_002", "Session storage unavailable", http.StatusServiceUnavailable, err)
}

// Validation returns a generic 400 validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}
