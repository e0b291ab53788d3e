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

// UpdateTransactionInput represents the input for transaction update. All
// detail fields are replaced; Recurring toggles the recurring variant on or
// off (DayOfMonth is required when enabling). Scheduled transactions keep
// their variant; only their detail fields change.
type UpdateTransactionInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
	Description   string
	Amount        decimal.Decimal
	Kind          entity.TransactionKind
	Category      string
	Recurring     bool
	DayOfMonth    *int
	ReferenceDate time.Time
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction *entity.Transaction
}

// UpdateTransactionUseCase handles transaction update logic.
type UpdateTransactionUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(transactionRepo adapter.TransactionRepository) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	txn, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if !txn.IsOwnedBy(input.UserID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	if err := validateCommonFields(input.Description, input.Amount, input.Kind, input.Category); err != nil {
		return nil, err
	}

	txn.Description = input.Description
	txn.Amount = input.Amount
	txn.Kind = input.Kind
	txn.Category = input.Category
	txn.UpdatedAt = time.Now().UTC()

	// Scheduled transactions never toggle; their variant is fixed at
	// creation. Plain and recurring transactions switch freely.
	if txn.Variant != entity.VariantScheduled {
		if input.Recurring {
			if input.DayOfMonth == nil {
				return nil, domainerror.NewBillError(
					domainerror.ErrCodeInvalidDayOfMonth,
					"day of month is required to enable recurrence",
					domainerror.ErrInvalidDayOfMonth,
				)
			}
			if err := txn.EnableRecurrence(*input.DayOfMonth, input.ReferenceDate); err != nil {
				return nil, domainerror.NewBillError(
					domainerror.ErrCodeInvalidDayOfMonth,
					"day of month must be between 1 and 31",
					err,
				)
			}
		} else if err := txn.DisableRecurrence(); err != nil {
			return nil, err
		}
	}

	if err := uc.transactionRepo.Update(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &UpdateTransactionOutput{Transaction: txn}, nil
}
