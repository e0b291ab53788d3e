package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

func updateInput(userID uuid.UUID, txn *entity.Transaction) UpdateTransactionInput {
	return UpdateTransactionInput{
		UserID:        userID,
		TransactionID: txn.ID,
		Description:   txn.Description,
		Amount:        txn.Amount,
		Kind:          txn.Kind,
		Category:      txn.Category,
		Recurring:     txn.Variant == entity.VariantRecurring,
		DayOfMonth:    txn.DayOfMonth,
		ReferenceDate: date(2024, time.February, 15),
	}
}

func TestUpdateTransaction_DetailFields(t *testing.T) {
	userID := uuid.New()
	txn := entity.NewTransaction(userID, "Groceries", decimal.NewFromInt(50), entity.KindExpense, "Food")
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewUpdateTransactionUseCase(repo)

	input := updateInput(userID, txn)
	input.Description = "Weekly groceries"
	input.Amount = decimal.NewFromInt(75)
	input.Category = "Household"

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Transaction
	if got.Description != "Weekly groceries" {
		t.Errorf("description = %q", got.Description)
	}
	if !got.Amount.Equal(decimal.NewFromInt(75)) {
		t.Errorf("amount = %s", got.Amount)
	}
	if got.Category != "Household" {
		t.Errorf("category = %q", got.Category)
	}
	if got.Variant != entity.VariantPlain {
		t.Errorf("variant = %q, want plain", got.Variant)
	}
	if repo.updateCalls != 1 {
		t.Errorf("updateCalls = %d, want 1", repo.updateCalls)
	}
}

func TestUpdateTransaction_EnableRecurrence(t *testing.T) {
	userID := uuid.New()
	txn := entity.NewTransaction(userID, "Rent", decimal.NewFromInt(1200), entity.KindExpense, "Housing")
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewUpdateTransactionUseCase(repo)

	input := updateInput(userID, txn)
	input.Recurring = true
	input.DayOfMonth = intPtr(31)

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Transaction
	if got.Variant != entity.VariantRecurring {
		t.Fatalf("variant = %q, want recurring", got.Variant)
	}
	want := date(2024, time.February, 29)
	if got.NextDueDate == nil || !got.NextDueDate.Equal(want) {
		t.Errorf("next due date = %v, want %v", got.NextDueDate, want)
	}
	if got.Paid {
		t.Error("newly recurring bill must start unpaid")
	}
}

func TestUpdateTransaction_EnableRecurrenceWithoutDay(t *testing.T) {
	userID := uuid.New()
	txn := entity.NewTransaction(userID, "Rent", decimal.NewFromInt(1200), entity.KindExpense, "Housing")
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewUpdateTransactionUseCase(repo)

	input := updateInput(userID, txn)
	input.Recurring = true
	input.DayOfMonth = nil

	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrInvalidDayOfMonth) {
		t.Fatalf("error = %v, want ErrInvalidDayOfMonth", err)
	}
	if repo.updateCalls != 0 {
		t.Error("transaction persisted despite missing day of month")
	}
}

func TestUpdateTransaction_DisableRecurrence(t *testing.T) {
	userID := uuid.New()
	txn, err := entity.NewRecurringTransaction(
		userID, "Gym", decimal.NewFromInt(40), entity.KindExpense, "Health",
		10, date(2024, time.February, 15),
	)
	if err != nil {
		t.Fatal(err)
	}
	txn.Paid = true
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewUpdateTransactionUseCase(repo)

	input := updateInput(userID, txn)
	input.Recurring = false
	input.DayOfMonth = nil

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Transaction
	if got.Variant != entity.VariantPlain {
		t.Fatalf("variant = %q, want plain", got.Variant)
	}
	if got.DayOfMonth != nil || got.NextDueDate != nil {
		t.Error("recurrence fields not cleared")
	}
	if got.Paid {
		t.Error("paid flag must be cleared when recurrence is disabled")
	}
}

func TestUpdateTransaction_ScheduledKeepsVariant(t *testing.T) {
	userID := uuid.New()
	txn := entity.NewScheduledTransaction(
		userID, "Car tax", decimal.NewFromInt(300), entity.KindExpense, "Car",
		date(2024, time.April, 10),
	)
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewUpdateTransactionUseCase(repo)

	// Recurring is false here, which would strip a plain transaction's
	// recurrence. A scheduled transaction must keep its due date.
	input := updateInput(userID, txn)
	input.Recurring = false
	input.Description = "Car tax 2024"

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.Transaction
	if got.Variant != entity.VariantScheduled {
		t.Fatalf("variant = %q, want scheduled", got.Variant)
	}
	if got.DueDate == nil || !got.DueDate.Equal(date(2024, time.April, 10)) {
		t.Errorf("due date = %v, want unchanged", got.DueDate)
	}
	if got.Description != "Car tax 2024" {
		t.Errorf("description = %q", got.Description)
	}
}

func TestUpdateTransaction_NotFound(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewUpdateTransactionUseCase(repo)

	input := UpdateTransactionInput{
		UserID:        uuid.New(),
		TransactionID: uuid.New(),
		Description:   "x",
		Amount:        decimal.NewFromInt(1),
		Kind:          entity.KindExpense,
		Category:      "Misc",
	}

	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrTransactionNotFound) {
		t.Fatalf("error = %v, want ErrTransactionNotFound", err)
	}
}

func TestUpdateTransaction_NotOwner(t *testing.T) {
	owner := uuid.New()
	txn := entity.NewTransaction(owner, "Groceries", decimal.NewFromInt(50), entity.KindExpense, "Food")
	repo := &fakeTransactionRepo{transactions: []*entity.Transaction{txn}}
	uc := NewUpdateTransactionUseCase(repo)

	input := updateInput(uuid.New(), txn)
	input.Description = "hijacked"

	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrNotAuthorizedToModifyTransaction) {
		t.Fatalf("error = %v, want ErrNotAuthorizedToModifyTransaction", err)
	}
	if txn.Description != "Groceries" {
		t.Error("transaction mutated despite authorization failure")
	}
	if repo.updateCalls != 0 {
		t.Errorf("updateCalls = %d, want 0", repo.updateCalls)
	}
}
