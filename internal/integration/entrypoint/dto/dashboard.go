// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/finance-manager/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the dashboard summary in API responses.
type SummaryResponse struct {
	IncomeTotal      string `json:"income_total"`
	ExpenseTotal     string `json:"expense_total"`
	Balance          string `json:"balance"`
	TransactionCount int    `json:"transaction_count"`
}

// ToSummaryResponse converts a summary output to a SummaryResponse DTO.
func ToSummaryResponse(out *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		IncomeTotal:      out.Totals.IncomeTotal.String(),
		ExpenseTotal:     out.Totals.ExpenseTotal.String(),
		Balance:          out.Totals.Balance.String(),
		TransactionCount: out.TransactionCount,
	}
}
