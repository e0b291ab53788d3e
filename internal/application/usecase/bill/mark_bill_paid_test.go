package bill

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

func TestMarkBillPaid(t *testing.T) {
	userID := uuid.New()

	t.Run("recurring bill is paid and advanced one cycle", func(t *testing.T) {
		bill := recurringBill(userID, "Rent", 31, date(2024, time.January, 31), false)
		repo := &fakeTransactionRepo{}
		repo.transactions = append(repo.transactions, bill)
		uc := NewMarkBillPaidUseCase(repo)

		out, err := uc.Execute(context.Background(), MarkBillPaidInput{
			UserID:        userID,
			TransactionID: bill.ID,
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}

		if !out.Transaction.Paid {
			t.Error("bill must be paid")
		}
		if want := date(2024, time.February, 29); !out.Transaction.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s",
				out.Transaction.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
		if repo.updateCalls != 1 {
			t.Errorf("update calls = %d, want 1", repo.updateCalls)
		}
	})

	t.Run("unknown transaction yields not found", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewMarkBillPaidUseCase(repo)

		_, err := uc.Execute(context.Background(), MarkBillPaidInput{
			UserID:        userID,
			TransactionID: uuid.New(),
		})
		if !errors.Is(err, domainerror.ErrTransactionNotFound) {
			t.Errorf("err = %v, want ErrTransactionNotFound", err)
		}
	})

	t.Run("non-owner is rejected before any mutation", func(t *testing.T) {
		bill := recurringBill(userID, "Rent", 15, date(2024, time.June, 15), false)
		repo := &fakeTransactionRepo{}
		repo.transactions = append(repo.transactions, bill)
		uc := NewMarkBillPaidUseCase(repo)

		_, err := uc.Execute(context.Background(), MarkBillPaidInput{
			UserID:        uuid.New(),
			TransactionID: bill.ID,
		})
		if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
			t.Fatalf("err = %v, want ErrNotAuthorizedToModifyTransaction", err)
		}

		if bill.Paid {
			t.Error("bill must not be mutated on authorization failure")
		}
		if want := date(2024, time.June, 15); !bill.NextDueDate.Equal(want) {
			t.Error("next due date must not advance on authorization failure")
		}
		if repo.updateCalls != 0 {
			t.Errorf("update calls = %d, want 0", repo.updateCalls)
		}
	})
}
