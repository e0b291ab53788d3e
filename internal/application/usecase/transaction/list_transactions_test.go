package transaction

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/domain/entity"
)

func TestListTransactions(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{
		entity.NewTransaction(userID, "Salary", decimal.NewFromInt(3000), entity.KindIncome, "Work"),
		entity.NewTransaction(userID, "Groceries", decimal.NewFromInt(50), entity.KindExpense, "Food"),
		entity.NewTransaction(userID, "Restaurant", decimal.NewFromInt(30), entity.KindExpense, "Food"),
		entity.NewTransaction(userID, "Fuel", decimal.NewFromInt(60), entity.KindExpense, "Car"),
		entity.NewTransaction(otherID, "Rent", decimal.NewFromInt(900), entity.KindExpense, "Housing"),
	}}
	uc := NewListTransactionsUseCase(repo)

	tests := []struct {
		name      string
		input     ListTransactionsInput
		wantNames []string
	}{
		{
			name:      "no filters returns everything for the user",
			input:     ListTransactionsInput{UserID: userID},
			wantNames: []string{"Salary", "Groceries", "Restaurant", "Fuel"},
		},
		{
			name:      "kind filter",
			input:     ListTransactionsInput{UserID: userID, Kind: kindPtr(entity.KindIncome)},
			wantNames: []string{"Salary"},
		},
		{
			name:      "category filter",
			input:     ListTransactionsInput{UserID: userID, Category: "Food"},
			wantNames: []string{"Groceries", "Restaurant"},
		},
		{
			name:      "kind and category combined",
			input:     ListTransactionsInput{UserID: userID, Kind: kindPtr(entity.KindExpense), Category: "Car"},
			wantNames: []string{"Fuel"},
		},
		{
			name:      "other users are never visible",
			input:     ListTransactionsInput{UserID: userID, Category: "Housing"},
			wantNames: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Transactions) != len(tt.wantNames) {
				t.Fatalf("got %d transactions, want %d", len(out.Transactions), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if out.Transactions[i].Description != want {
					t.Errorf("transaction[%d] = %q, want %q", i, out.Transactions[i].Description, want)
				}
			}
		})
	}
}
