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

func validInput(userID uuid.UUID) CreateTransactionInput {
	return CreateTransactionInput{
		UserID:        userID,
		Description:   "Groceries",
		Amount:        decimal.NewFromInt(50),
		Kind:          entity.KindExpense,
		Category:      "Food",
		ReferenceDate: date(2024, time.February, 15),
	}
}

func TestCreateTransaction_Plain(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewCreateTransactionUseCase(repo)
	userID := uuid.New()

	out, err := uc.Execute(context.Background(), validInput(userID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := out.Transaction
	if txn.Variant != entity.VariantPlain {
		t.Errorf("variant = %q, want %q", txn.Variant, entity.VariantPlain)
	}
	if txn.DueDate != nil || txn.DayOfMonth != nil || txn.NextDueDate != nil {
		t.Error("plain transaction must not carry scheduling fields")
	}
	if !txn.IsOwnedBy(userID) {
		t.Error("transaction not owned by creator")
	}
	if repo.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", repo.createCalls)
	}
}

func TestCreateTransaction_Scheduled(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewCreateTransactionUseCase(repo)

	input := validInput(uuid.New())
	due := date(2024, time.March, 10)
	input.DueDate = &due

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := out.Transaction
	if txn.Variant != entity.VariantScheduled {
		t.Errorf("variant = %q, want %q", txn.Variant, entity.VariantScheduled)
	}
	if txn.DueDate == nil || !txn.DueDate.Equal(due) {
		t.Errorf("due date = %v, want %v", txn.DueDate, due)
	}
}

func TestCreateTransaction_Recurring(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewCreateTransactionUseCase(repo)

	// Day 31 with a mid-February reference clamps to Feb 29 in a leap year.
	input := validInput(uuid.New())
	input.DayOfMonth = intPtr(31)

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	txn := out.Transaction
	if txn.Variant != entity.VariantRecurring {
		t.Errorf("variant = %q, want %q", txn.Variant, entity.VariantRecurring)
	}
	want := date(2024, time.February, 29)
	if txn.NextDueDate == nil || !txn.NextDueDate.Equal(want) {
		t.Errorf("next due date = %v, want %v", txn.NextDueDate, want)
	}
	if txn.Paid {
		t.Error("new recurring bill must start unpaid")
	}
}

func TestCreateTransaction_RecurringInvalidDay(t *testing.T) {
	for _, day := range []int{0, 32, -1} {
		repo := &fakeTransactionRepo{}
		uc := NewCreateTransactionUseCase(repo)

		input := validInput(uuid.New())
		input.DayOfMonth = intPtr(day)

		_, err := uc.Execute(context.Background(), input)
		if !errors.Is(err, domainerror.ErrInvalidDayOfMonth) {
			t.Errorf("day %d: error = %v, want ErrInvalidDayOfMonth", day, err)
		}
		if repo.createCalls != 0 {
			t.Errorf("day %d: transaction persisted despite invalid day", day)
		}
	}
}

func TestCreateTransaction_ConflictingVariantFields(t *testing.T) {
	repo := &fakeTransactionRepo{}
	uc := NewCreateTransactionUseCase(repo)

	input := validInput(uuid.New())
	due := date(2024, time.March, 10)
	input.DueDate = &due
	input.DayOfMonth = intPtr(5)

	_, err := uc.Execute(context.Background(), input)
	if !errors.Is(err, domainerror.ErrConflictingVariantFields) {
		t.Fatalf("error = %v, want ErrConflictingVariantFields", err)
	}
}

func TestCreateTransaction_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CreateTransactionInput)
		wantErr error
	}{
		{
			name:    "empty description",
			mutate:  func(in *CreateTransactionInput) { in.Description = "" },
			wantErr: domainerror.ErrEmptyDescription,
		},
		{
			name: "description too long",
			mutate: func(in *CreateTransactionInput) {
				long := make([]byte, MaxDescriptionLength+1)
				for i := range long {
					long[i] = 'a'
				}
				in.Description = string(long)
			},
			wantErr: domainerror.ErrEmptyDescription,
		},
		{
			name:    "empty category",
			mutate:  func(in *CreateTransactionInput) { in.Category = "" },
			wantErr: domainerror.ErrEmptyCategory,
		},
		{
			name:    "zero amount",
			mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.Zero },
			wantErr: domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:    "negative amount",
			mutate:  func(in *CreateTransactionInput) { in.Amount = decimal.NewFromInt(-10) },
			wantErr: domainerror.ErrInvalidTransactionAmount,
		},
		{
			name:    "unknown kind",
			mutate:  func(in *CreateTransactionInput) { in.Kind = "transfer" },
			wantErr: domainerror.ErrInvalidTransactionKind,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeTransactionRepo{}
			uc := NewCreateTransactionUseCase(repo)

			input := validInput(uuid.New())
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if repo.createCalls != 0 {
				t.Error("transaction persisted despite validation error")
			}
		})
	}
}
