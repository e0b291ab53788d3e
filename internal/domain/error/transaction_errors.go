// Package error defines domain-specific errors for the Finance Manager application.
package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotAuthorizedToModifyTransaction is returned when user is not authorized to access or modify a transaction.
	ErrNotAuthorizedToModifyTransaction = errors.New("not authorized to modify transaction")

	// ErrInvalidTransactionKind is returned when the transaction kind is neither income nor expense.
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")

	// ErrInvalidTransactionAmount is returned when the transaction amount is zero or negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be positive")

	// ErrEmptyDescription is returned when the transaction description is empty.
	ErrEmptyDescription = errors.New("description must not be empty")

	// ErrEmptyCategory is returned when the transaction category is empty.
	ErrEmptyCategory = errors.New("category must not be empty")

	// ErrInvalidDueDate is returned when a scheduled transaction's due date is malformed or impossible.
	ErrInvalidDueDate = errors.New("invalid due date")

	// ErrConflictingVariantFields is returned when a transaction is created with
	// both a due date and a recurring due day; the shapes are mutually exclusive.
	ErrConflictingVariantFields = errors.New("due date and day of month are mutually exclusive")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-XXYYYY where XX is category and YYYY is specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionKind   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeEmptyDescription         TransactionErrorCode = "TXN-010003"
	ErrCodeEmptyCategory            TransactionErrorCode = "TXN-010004"
	ErrCodeInvalidDueDate           TransactionErrorCode = "TXN-010005"
	ErrCodeMissingTransactionFields TransactionErrorCode = "TXN-010006"
	ErrCodeConflictingVariantFields TransactionErrorCode = "TXN-010007"

	// Access errors (02XXXX)
	ErrCodeTransactionNotFound      TransactionErrorCode = "TXN-020001"
	ErrCodeNotAuthorizedTransaction TransactionErrorCode = "TXN-020002"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
