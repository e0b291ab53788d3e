// Package transaction contains transaction-related use cases.
package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/application/adapter"
	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

// MaxDescriptionLength is the maximum allowed length for transaction descriptions.
const MaxDescriptionLength = 255

// CreateTransactionInput represents the input for transaction creation.
// Leaving both DueDate and DayOfMonth nil creates a plain transaction;
// setting DueDate creates a scheduled one; setting DayOfMonth creates a
// recurring bill. Setting both is rejected.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Kind          entity.TransactionKind
	Category      string
	DueDate       *time.Time
	DayOfMonth    *int
	ReferenceDate time.Time
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction *entity.Transaction
}

// CreateTransactionUseCase handles transaction creation logic.
type CreateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(transactionRepo adapter.TransactionRepository) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	if err := validateCommonFields(input.Description, input.Amount, input.Kind, input.Category); err != nil {
		return nil, err
	}

	if input.DueDate != nil && input.DayOfMonth != nil {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeConflictingVariantFields,
			"a transaction cannot have both a due date and a recurring due day",
			domainerror.ErrConflictingVariantFields,
		)
	}

	var txn *entity.Transaction
	switch {
	case input.DayOfMonth != nil:
		recurring, err := entity.NewRecurringTransaction(
			input.UserID,
			input.Description,
			input.Amount,
			input.Kind,
			input.Category,
			*input.DayOfMonth,
			input.ReferenceDate,
		)
		if err != nil {
			return nil, domainerror.NewBillError(
				domainerror.ErrCodeInvalidDayOfMonth,
				"day of month must be between 1 and 31",
				err,
			)
		}
		txn = recurring
	case input.DueDate != nil:
		txn = entity.NewScheduledTransaction(
			input.UserID,
			input.Description,
			input.Amount,
			input.Kind,
			input.Category,
			*input.DueDate,
		)
	default:
		txn = entity.NewTransaction(
			input.UserID,
			input.Description,
			input.Amount,
			input.Kind,
			input.Category,
		)
	}

	if err := uc.transactionRepo.Create(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return &CreateTransactionOutput{Transaction: txn}, nil
}

// validateCommonFields checks the fields shared by every transaction variant.
func validateCommonFields(description string, amount decimal.Decimal, kind entity.TransactionKind, category string) error {
	if description == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			"description must not be empty",
			domainerror.ErrEmptyDescription,
		)
	}
	if len(description) > MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyDescription,
			fmt.Sprintf("description must not exceed %d characters", MaxDescriptionLength),
			domainerror.ErrEmptyDescription,
		)
	}
	if category == "" {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeEmptyCategory,
			"category must not be empty",
			domainerror.ErrEmptyCategory,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be positive",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if kind != entity.KindIncome && kind != entity.KindExpense {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be 'income' or 'expense'",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	return nil
}
