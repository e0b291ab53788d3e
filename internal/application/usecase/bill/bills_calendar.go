package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/application/adapter"
	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
	"github.com/finance-manager/backend/internal/domain/schedule"
)

// BillsCalendarInput represents the input for the bill calendar view.
type BillsCalendarInput struct {
	UserID uuid.UUID
	Year   int
	Month  int
}

// BillsCalendarOutput represents the calendar view for one month: a mapping
// from day-of-month to the entries due that day. Days with nothing due are
// absent from the map.
type BillsCalendarOutput struct {
	Year        int
	Month       int
	DaysInMonth int
	Days        map[int][]*entity.Transaction
}

// BillsCalendarUseCase projects recurring bills and scheduled transactions
// onto a day-of-month grid for a given year and month.
type BillsCalendarUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewBillsCalendarUseCase creates a new BillsCalendarUseCase instance.
func NewBillsCalendarUseCase(transactionRepo adapter.TransactionRepository) *BillsCalendarUseCase {
	return &BillsCalendarUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute builds the calendar. Within a day bucket, recurring bills come
// first in repository order, followed by scheduled transactions; no further
// sorting is applied.
func (uc *BillsCalendarUseCase) Execute(ctx context.Context, input BillsCalendarInput) (*BillsCalendarOutput, error) {
	if input.Month < 1 || input.Month > 12 {
		return nil, domainerror.NewBillError(
			domainerror.ErrCodeInvalidCalendarMonth,
			"month must be between 1 and 12",
			domainerror.ErrInvalidCalendarMonth,
		)
	}

	month := time.Month(input.Month)
	firstDay := time.Date(input.Year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := time.Date(input.Year, month, schedule.DaysInMonth(input.Year, month), 0, 0, 0, 0, time.UTC)

	days := make(map[int][]*entity.Transaction)

	bucket := func(t *entity.Transaction, due time.Time) {
		if due.Before(firstDay) || due.After(lastDay) {
			return
		}
		day := due.Day()
		days[day] = append(days[day], t)
	}

	bills, err := uc.transactionRepo.FindRecurringByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring bills: %w", err)
	}
	for _, b := range bills {
		if b.NextDueDate != nil {
			bucket(b, *b.NextDueDate)
		}
	}

	scheduled, err := uc.transactionRepo.FindScheduledByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled transactions: %w", err)
	}
	for _, s := range scheduled {
		if s.DueDate != nil {
			bucket(s, *s.DueDate)
		}
	}

	return &BillsCalendarOutput{
		Year:        input.Year,
		Month:       input.Month,
		DaysInMonth: schedule.DaysInMonth(input.Year, month),
		Days:        days,
	}, nil
}
