package entity

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func newRecurringBill(t *testing.T, dayOfMonth int, ref time.Time) *Transaction {
	t.Helper()
	bill, err := NewRecurringTransaction(
		uuid.New(), "Rent", decimal.NewFromInt(1200), KindExpense, "Housing", dayOfMonth, ref,
	)
	if err != nil {
		t.Fatalf("NewRecurringTransaction: %v", err)
	}
	return bill
}

func TestNewRecurringTransaction(t *testing.T) {
	t.Run("computes initial next due date", func(t *testing.T) {
		bill := newRecurringBill(t, 31, date(2024, time.February, 15))

		if bill.Variant != VariantRecurring {
			t.Errorf("variant = %s, want %s", bill.Variant, VariantRecurring)
		}
		if bill.Paid {
			t.Error("new recurring bill must start unpaid")
		}
		if want := date(2024, time.February, 29); !bill.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s", bill.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	})

	t.Run("rejects day of month outside range", func(t *testing.T) {
		for _, day := range []int{0, 32, -3} {
			_, err := NewRecurringTransaction(
				uuid.New(), "Rent", decimal.NewFromInt(1200), KindExpense, "Housing", day, date(2024, time.June, 1),
			)
			if !errors.Is(err, domainerror.ErrInvalidDayOfMonth) {
				t.Errorf("day %d: err = %v, want ErrInvalidDayOfMonth", day, err)
			}
		}
	})
}

func TestMarkPaid(t *testing.T) {
	t.Run("advances clamped into leap february", func(t *testing.T) {
		bill := newRecurringBill(t, 31, date(2024, time.January, 15))
		// Initial due date is 2024-01-31.
		bill.MarkPaid()

		if !bill.Paid {
			t.Error("bill must be paid after MarkPaid")
		}
		if want := date(2024, time.February, 29); !bill.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s", bill.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	})

	t.Run("advances back to full day after clamped month", func(t *testing.T) {
		bill := newRecurringBill(t, 31, date(2024, time.January, 15))
		bill.MarkPaid() // -> 2024-02-29
		bill.MarkPaid() // -> 2024-03-31

		if want := date(2024, time.March, 31); !bill.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s", bill.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	})

	t.Run("twelve cycles stay on day 15", func(t *testing.T) {
		bill := newRecurringBill(t, 15, date(2024, time.June, 1))

		want := date(2024, time.June, 15)
		for i := 0; i < 12; i++ {
			if !bill.NextDueDate.Equal(want) {
				t.Fatalf("cycle %d: next due date = %s, want %s",
					i, bill.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
			}
			bill.MarkPaid()
			want = date(want.Year(), want.Month()+1, 15)
		}
	})

	t.Run("plain transaction only gains the paid flag", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), "Groceries", decimal.NewFromInt(80), KindExpense, "Food")
		txn.MarkPaid()

		if !txn.Paid {
			t.Error("paid flag not set")
		}
		if txn.NextDueDate != nil {
			t.Error("plain transaction must not gain a next due date")
		}
	})
}

func TestResetCycle(t *testing.T) {
	ref := date(2024, time.March, 10)

	t.Run("past-due bill snaps to this month's clamped day", func(t *testing.T) {
		bill := newRecurringBill(t, 31, date(2024, time.January, 15))
		bill.Paid = true
		// Stored due date is 2024-01-31, well before ref.

		if !bill.ResetCycle(ref) {
			t.Fatal("expected reset for past-due bill")
		}
		if bill.Paid {
			t.Error("paid flag must be cleared on reset")
		}
		if want := date(2024, time.March, 31); !bill.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s", bill.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	})

	t.Run("reset clamps within the reference month", func(t *testing.T) {
		bill := newRecurringBill(t, 31, date(2024, time.January, 1))
		febRef := date(2023, time.February, 20)
		// Force the stored due date into the past relative to febRef.
		past := date(2023, time.January, 31)
		bill.NextDueDate = &past

		if !bill.ResetCycle(febRef) {
			t.Fatal("expected reset")
		}
		if want := date(2023, time.February, 28); !bill.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s", bill.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	})

	t.Run("second reset with no time passing is a no-op", func(t *testing.T) {
		bill := newRecurringBill(t, 5, date(2024, time.January, 1))
		past := date(2024, time.February, 5)
		bill.NextDueDate = &past
		bill.Paid = true

		if !bill.ResetCycle(ref) {
			t.Fatal("expected first reset")
		}
		first := *bill.NextDueDate

		if bill.ResetCycle(ref) {
			t.Error("second reset must be a no-op once the bill is current")
		}
		if !bill.NextDueDate.Equal(first) {
			t.Errorf("next due date changed on no-op reset: %s", bill.NextDueDate.Format("2006-01-02"))
		}
	})

	t.Run("current bill is untouched regardless of paid state", func(t *testing.T) {
		bill := newRecurringBill(t, 5, date(2024, time.March, 1))
		// Due 2024-03-05, reference date before that.
		early := date(2024, time.March, 1)
		bill.Paid = true

		if bill.ResetCycle(early) {
			t.Error("bill due in the future must not reset")
		}
		if !bill.Paid {
			t.Error("paid flag must survive a no-op reset")
		}
	})

	t.Run("plain transaction never resets", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), "Groceries", decimal.NewFromInt(80), KindExpense, "Food")
		if txn.ResetCycle(ref) {
			t.Error("plain transaction must not reset")
		}
	})
}

func TestRecurrenceToggle(t *testing.T) {
	ref := date(2024, time.June, 1)

	t.Run("enable computes next due date", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), "Gym", decimal.NewFromInt(40), KindExpense, "Health")
		if err := txn.EnableRecurrence(15, ref); err != nil {
			t.Fatalf("EnableRecurrence: %v", err)
		}
		if txn.Variant != VariantRecurring {
			t.Errorf("variant = %s, want %s", txn.Variant, VariantRecurring)
		}
		if want := date(2024, time.June, 15); !txn.NextDueDate.Equal(want) {
			t.Errorf("next due date = %s, want %s", txn.NextDueDate.Format("2006-01-02"), want.Format("2006-01-02"))
		}
	})

	t.Run("enable rejects invalid day", func(t *testing.T) {
		txn := NewTransaction(uuid.New(), "Gym", decimal.NewFromInt(40), KindExpense, "Health")
		if err := txn.EnableRecurrence(0, ref); !errors.Is(err, domainerror.ErrInvalidDayOfMonth) {
			t.Errorf("err = %v, want ErrInvalidDayOfMonth", err)
		}
	})

	t.Run("disable clears all recurrence state including paid", func(t *testing.T) {
		bill := newRecurringBill(t, 15, ref)
		bill.Paid = true

		if err := bill.DisableRecurrence(); err != nil {
			t.Fatalf("DisableRecurrence: %v", err)
		}
		if bill.Variant != VariantPlain {
			t.Errorf("variant = %s, want %s", bill.Variant, VariantPlain)
		}
		if bill.DayOfMonth != nil || bill.NextDueDate != nil {
			t.Error("recurrence fields must be cleared")
		}
		if bill.Paid {
			t.Error("stale paid flag must be cleared when recurrence is disabled")
		}
	})

	t.Run("scheduled transactions cannot toggle", func(t *testing.T) {
		txn := NewScheduledTransaction(
			uuid.New(), "Car tax", decimal.NewFromInt(300), KindExpense, "Taxes", date(2024, time.September, 1),
		)
		if err := txn.EnableRecurrence(10, ref); !errors.Is(err, domainerror.ErrScheduledVariantLocked) {
			t.Errorf("enable: err = %v, want ErrScheduledVariantLocked", err)
		}
		if err := txn.DisableRecurrence(); !errors.Is(err, domainerror.ErrScheduledVariantLocked) {
			t.Errorf("disable: err = %v, want ErrScheduledVariantLocked", err)
		}
	})
}
