package transaction

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

func TestDeleteTransaction(t *testing.T) {
	userID := uuid.New()
	txn := entity.NewTransaction(userID, "Groceries", decimal.NewFromInt(50), entity.KindExpense, "Food")
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewDeleteTransactionUseCase(repo)

	err := uc.Execute(context.Background(), DeleteTransactionInput{
		UserID:        userID,
		TransactionID: txn.ID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.transactions) != 0 {
		t.Errorf("transactions left = %d, want 0", len(repo.transactions))
	}
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewDeleteTransactionUseCase(repo)

	err := uc.Execute(context.Background(), DeleteTransactionInput{
		UserID:        uuid.New(),
		TransactionID: uuid.New(),
	})
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("error = %v, want ErrTransactionNotFound", err)
	}
}

func TestDeleteTransaction_NotOwner(t *testing.T) {
	owner := uuid.New()
	txn := entity.NewTransaction(owner, "Groceries", decimal.NewFromInt(50), entity.KindExpense, "Food")
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewDeleteTransactionUseCase(repo)

	err := uc.Execute(context.Background(), DeleteTransactionInput{
		UserID:        uuid.New(),
		TransactionID: txn.ID,
	})
	if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
		t.Fatalf("error = %v, want ErrNotAuthorizedToModifyTransaction", err)
	}
	if len(repo.transactions) != 1 {
		t.Error("transaction deleted despite authorization failure")
	}
	if repo.deleteCalls != 0 {
		t.Errorf("deleteCalls = %d, want 0", repo.deleteCalls)
	}
}
