// Package bill contains recurring-bill use cases: filtering, payment,
// cycle resets and the calendar view.
package bill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/application/adapter"
	"github.com/finance-manager/backend/internal/domain/entity"
	"github.com/finance-manager/backend/internal/domain/schedule"
)

// BillFilter selects a view over a user's recurring bills. Views are not
// mutually exclusive: an overdue bill also appears in the unpaid view.
type BillFilter string

const (
	FilterAll        BillFilter = "all"
	FilterUpcoming7  BillFilter = "upcoming7"
	FilterUpcoming30 BillFilter = "upcoming30"
	FilterOverdue    BillFilter = "overdue"
	FilterPaid       BillFilter = "paid"
	FilterUnpaid     BillFilter = "unpaid"
)

// ParseBillFilter maps a raw filter key to a BillFilter. Matching is
// case-sensitive; unrecognized keys fall back to FilterAll.
func ParseBillFilter(raw string) BillFilter {
	switch BillFilter(raw) {
	case FilterUpcoming7, FilterUpcoming30, FilterOverdue, FilterPaid, FilterUnpaid, FilterAll:
		return BillFilter(raw)
	default:
		return FilterAll
	}
}

// ListBillsInput represents the input for listing recurring bills.
type ListBillsInput struct {
	UserID        uuid.UUID
	Filter        BillFilter
	ReferenceDate time.Time
}

// ListBillsOutput represents the output of listing recurring bills.
type ListBillsOutput struct {
	Bills []*entity.Transaction
}

// ListBillsUseCase returns a filtered view over a user's recurring bills.
type ListBillsUseCase struct {
	transactionRepo adapter.TransactionRepository
}

// NewListBillsUseCase creates a new ListBillsUseCase instance.
func NewListBillsUseCase(transactionRepo adapter.TransactionRepository) *ListBillsUseCase {
	return &ListBillsUseCase{
		transactionRepo: transactionRepo,
	}
}

// Execute retrieves the user's recurring bills and applies the filter
// relative to the reference date.
func (uc *ListBillsUseCase) Execute(ctx context.Context, input ListBillsInput) (*ListBillsOutput, error) {
	bills, err := uc.transactionRepo.FindRecurringByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring bills: %w", err)
	}

	today := schedule.DateOnly(input.ReferenceDate)

	var filtered []*entity.Transaction
	for _, b := range bills {
		if matchesFilter(b, input.Filter, today) {
			filtered = append(filtered, b)
		}
	}

	return &ListBillsOutput{Bills: filtered}, nil
}

// matchesFilter evaluates one bill against a filter on the given civil date.
func matchesFilter(b *entity.Transaction, filter BillFilter, today time.Time) bool {
	switch filter {
	case FilterUpcoming7:
		return dueWithin(b, today, 7)
	case FilterUpcoming30:
		return dueWithin(b, today, 30)
	case FilterOverdue:
		return !b.Paid && b.NextDueDate != nil && b.NextDueDate.Before(today)
	case FilterPaid:
		return b.Paid
	case FilterUnpaid:
		return !b.Paid
	default:
		return true
	}
}

// dueWithin reports whether an unpaid bill falls due between today and
// today+days, both inclusive.
func dueWithin(b *entity.Transaction, today time.Time, days int) bool {
	if b.Paid || b.NextDueDate == nil {
		return false
	}
	horizon := today.AddDate(0, 0, days)
	return !b.NextDueDate.Before(today) && !b.NextDueDate.After(horizon)
}
