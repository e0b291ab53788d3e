// Package dashboard contains dashboard-related use cases.
package dashboard

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/application/adapter"
	"github.com/finance-manager/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the dashboard summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the aggregated totals shown on the dashboard.
type GetSummaryOutput struct {
	Totals           entity.TransactionTotals
	TransactionCount int
}

// GetSummaryUseCase computes income, expense and balance totals over all of a
// user's transactions.
type GetSummaryUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(transactionRepo adapter.TransactionRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute aggregates the user's transactions. Every variant counts toward the
// totals; the balance is income minus expenses.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	transactions, err := uc.transactionRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, t := range transactions {
		switch t.Kind {
		case entity.KindIncome:
			income = income.Add(t.Amount)
		case entity.KindExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return &GetSummaryOutput{
		Totals: entity.TransactionTotals{
			IncomeTotal:  income,
			ExpenseTotal: expense,
			Balance:      income.Sub(expense),
		},
		TransactionCount: len(transactions),
	}, nil
}
