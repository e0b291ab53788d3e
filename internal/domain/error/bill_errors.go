// Package error defines domain-specific errors for the Finance Manager application.
package error

import "errors"

// Recurring bill domain errors.
var (
	// ErrInvalidDayOfMonth is returned when a recurring due day is outside [1, 31].
	ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 31")

	// ErrScheduledVariantLocked is returned when attempting to switch a scheduled
	// transaction to or from recurrence; only plain transactions toggle.
	ErrScheduledVariantLocked = errors.New("scheduled transactions cannot change recurrence")

	// ErrNotRecurringBill is returned when a bill-only operation targets a
	// transaction that is not a recurring bill.
	ErrNotRecurringBill = errors.New("transaction is not a recurring bill")

	// ErrInvalidCalendarMonth is returned when a calendar request carries a
	// month outside [1, 12].
	ErrInvalidCalendarMonth = errors.New("month must be between 1 and 12")
)

// BillErrorCode defines error codes for recurring bill errors.
// Format: BILL-XXYYYY where XX is category and YYYY is specific error.
type BillErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDayOfMonth      BillErrorCode = "BILL-010001"
	ErrCodeScheduledVariantLocked BillErrorCode = "BILL-010002"
	ErrCodeNotRecurringBill       BillErrorCode = "BILL-010003"
	ErrCodeInvalidCalendarMonth   BillErrorCode = "BILL-010004"
)

// BillError represents a recurring bill error with code and message.
type BillError struct {
	Code    BillErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BillError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BillError) Unwrap() error {
	return e.Err
}

// NewBillError creates a new BillError with the given code and message.
func NewBillError(code BillErrorCode, message string, err error) *BillError {
	return &BillError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
