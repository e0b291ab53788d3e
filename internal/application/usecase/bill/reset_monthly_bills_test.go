package bill

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestResetMonthlyBills(t *testing.T) {
	userID := uuid.New()
	ref := date(2024, time.March, 10)

	t.Run("resets only past-due bills", func(t *testing.T) {
		pastDuePaid := recurringBill(userID, "Rent", 31, date(2024, time.January, 31), true)
		pastDueUnpaid := recurringBill(userID, "Water", 5, date(2024, time.February, 5), false)
		current := recurringBill(userID, "Internet", 20, date(2024, time.March, 20), true)

		repo := &fakeTransactionRepo{}
		repo.transactions = append(repo.transactions, pastDuePaid, pastDueUnpaid, current)
		uc := NewResetMonthlyBillsUseCase(repo)

		out, err := uc.Execute(context.Background(), ResetMonthlyBillsInput{
			UserID:        userID,
			ReferenceDate: ref,
		})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.ResetCount != 2 {
			t.Fatalf("reset count = %d, want 2", out.ResetCount)
		}

		// Reset snaps to this month's clamped day, not one month ahead.
		if want := date(2024, time.March, 31); !pastDuePaid.NextDueDate.Equal(want) {
			t.Errorf("rent next due = %s, want %s",
				pastDuePaid.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
		if pastDuePaid.Paid {
			t.Error("paid flag must be cleared by the sweep")
		}
		if want := date(2024, time.March, 5); !pastDueUnpaid.NextDueDate.Equal(want) {
			t.Errorf("water next due = %s, want %s",
				pastDueUnpaid.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}

		// The current bill is untouched, paid flag included.
		if !current.Paid || !current.NextDueDate.Equal(date(2024, time.March, 20)) {
			t.Error("current bill must not be touched by the sweep")
		}
	})

	t.Run("second sweep with no time passing is a no-op", func(t *testing.T) {
		bill := recurringBill(userID, "Rent", 15, date(2024, time.February, 15), true)
		repo := &fakeTransactionRepo{}
		repo.transactions = append(repo.transactions, bill)
		uc := NewResetMonthlyBillsUseCase(repo)

		first, err := uc.Execute(context.Background(), ResetMonthlyBillsInput{UserID: userID, ReferenceDate: ref})
		if err != nil {
			t.Fatalf("first Execute: %v", err)
		}
		if first.ResetCount != 1 {
			t.Fatalf("first reset count = %d, want 1", first.ResetCount)
		}

		second, err := uc.Execute(context.Background(), ResetMonthlyBillsInput{UserID: userID, ReferenceDate: ref})
		if err != nil {
			t.Fatalf("second Execute: %v", err)
		}
		if second.ResetCount != 0 {
			t.Errorf("second reset count = %d, want 0", second.ResetCount)
		}
		if repo.updateCalls != 1 {
			t.Errorf("update calls = %d, want 1", repo.updateCalls)
		}
	})

	t.Run("no recurring bills is a no-op", func(t *testing.T) {
		repo := &fakeTransactionRepo{}
		uc := NewResetMonthlyBillsUseCase(repo)

		out, err := uc.Execute(context.Background(), ResetMonthlyBillsInput{UserID: userID, ReferenceDate: ref})
		if err != nil {
			t.Fatalf("Execute: %v", err)
		}
		if out.ResetCount != 0 {
			t.Errorf("reset count = %d, want 0", out.ResetCount)
		}
	})
}
