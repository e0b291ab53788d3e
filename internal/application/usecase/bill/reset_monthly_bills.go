package bill

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/application/adapter"
)

// ResetMonthlyBillsInput represents the input for the monthly reset sweep.
type ResetMonthlyBillsInput struct {
	UserID        uuid.UUID
	ReferenceDate time.Time
}

// ResetMonthlyBillsOutput represents the output of the monthly reset sweep.
type ResetMonthlyBillsOutput struct {
	ResetCount int
}

// ResetMonthlyBillsUseCase sweeps a user's recurring bills and starts a new
// cycle for every bill whose due date has fallen into the past. Running the
// sweep twice with no time passing is a no-op the second time.
type ResetMonthlyBillsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewResetMonthlyBillsUseCase creates a new ResetMonthlyBillsUseCase instance.
func NewResetMonthlyBillsUseCase(transactionRepo adapter.TransactionRepository) *ResetMonthlyBillsUseCase {
	return &ResetMonthlyBillsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute performs the sweep.
func (uc *ResetMonthlyBillsUseCase) Execute(ctx context.Context, input ResetMonthlyBillsInput) (*ResetMonthlyBillsOutput, error) {
	bills, err := uc.transactionRepo.FindRecurringByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring bills: %w", err)
	}

	resetCount := 0
	for _, b := range bills {
		if !b.ResetCycle(input.ReferenceDate) {
			continue
		}
		if err := uc.transactionRepo.Update(ctx, b); err != nil {
			return nil, fmt.Errorf("failed to persist bill reset: %w", err)
		}
		resetCount++
	}

	if resetCount > 0 {
		slog.Info("Monthly bill reset completed",
			"userID", input.UserID,
			"reset", resetCount,
			"checked", len(bills),
		)
	}

	return &ResetMonthlyBillsOutput{ResetCount: resetCount}, nil
}
