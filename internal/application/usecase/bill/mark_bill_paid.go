package bill

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/application/adapter"
	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

// MarkBillPaidInput represents the input for marking a bill as paid.
type MarkBillPaidInput struct {
	UserID        uuid.UUID
	TransactionID uuid.UUID
}

// MarkBillPaidOutput represents the output of marking a bill as paid.
type MarkBillPaidOutput struct {
	Transaction *entity.Transaction
}

// MarkBillPaidUseCase flags a transaction as paid. For a recurring bill the
// next due date additionally rolls one cycle forward.
type MarkBillPaidUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewMarkBillPaidUseCase creates a new MarkBillPaidUseCase instance.
func NewMarkBillPaidUseCase(transactionRepo adapter.TransactionRepository) *MarkBillPaidUseCase {
	return &MarkBillPaidUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the payment marking. The ownership check runs before any
// mutation: a caller who does not own the transaction gets
// ErrNotAuthorizedToModifyTransaction and the bill is left untouched.
func (uc *MarkBillPaidUseCase) Execute(ctx context.Context, input MarkBillPaidInput) (*MarkBillPaidOutput, error) {
	transaction, err := uc.transactionRepo.FindByID(ctx, input.TransactionID)
	if err != nil {
		return nil, err
	}

	if !transaction.IsOwnedBy(input.UserID) {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeNotAuthorizedTransaction,
			"not authorized to modify transaction",
			domainerror.ErrNotAuthorizedToModifyTransaction,
		)
	}

	transaction.MarkPaid()

	if err := uc.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	return &MarkBillPaidOutput{Transaction: transaction}, nil
}
