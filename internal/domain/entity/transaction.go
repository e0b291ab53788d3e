// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domainerror "github.com/finance-manager/backend/internal/domain/error"
	"github.com/finance-manager/backend/internal/domain/schedule"
)

// TransactionKind represents the direction of a transaction. The amount is
// always positive; the sign is carried by the kind.
type TransactionKind string

const (
	KindIncome  TransactionKind = "income"
	KindExpense TransactionKind = "expense"
)

// TransactionVariant distinguishes the three mutually exclusive transaction
// shapes. Exactly one variant's fields are populated on any transaction.
type TransactionVariant string

const (
	// VariantPlain is a one-time transaction with no due date.
	VariantPlain TransactionVariant = "plain"
	// VariantScheduled is a one-time transaction with a fixed due date.
	VariantScheduled TransactionVariant = "scheduled"
	// VariantRecurring is a monthly bill with a due day, a rolling next due
	// date and a paid flag that resets each cycle.
	VariantRecurring TransactionVariant = "recurring"
)

// Transaction represents a financial transaction in the Finance Manager
// system: a plain income/expense entry, a scheduled one-time payment, or a
// recurring monthly bill.
type Transaction struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Kind        TransactionKind
	Category    string
	Variant     TransactionVariant

	// Scheduled variant only.
	DueDate *time.Time

	// Recurring variant only.
	DayOfMonth  *int
	NextDueDate *time.Time
	Paid        bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewTransaction creates a plain one-time transaction.
func NewTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	kind TransactionKind,
	category string,
) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Kind:        kind,
		Category:    category,
		Variant:     VariantPlain,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NewScheduledTransaction creates a one-time transaction with a fixed due
// date.
func NewScheduledTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	kind TransactionKind,
	category string,
	dueDate time.Time,
) *Transaction {
	t := NewTransaction(userID, description, amount, kind, category)
	t.Variant = VariantScheduled
	due := schedule.DateOnly(dueDate)
	t.DueDate = &due
	return t
}

// NewRecurringTransaction creates a recurring monthly bill due on dayOfMonth.
// The initial next due date is the first occurrence of dayOfMonth strictly
// after ref. Returns ErrInvalidDayOfMonth when dayOfMonth is outside [1, 31].
func NewRecurringTransaction(
	userID uuid.UUID,
	description string,
	amount decimal.Decimal,
	kind TransactionKind,
	category string,
	dayOfMonth int,
	ref time.Time,
) (*Transaction, error) {
	if !schedule.ValidDayOfMonth(dayOfMonth) {
		return nil, domainerror.ErrInvalidDayOfMonth
	}
	t := NewTransaction(userID, description, amount, kind, category)
	t.Variant = VariantRecurring
	t.DayOfMonth = &dayOfMonth
	next := schedule.FirstOccurrenceOnOrAfter(dayOfMonth, ref)
	t.NextDueDate = &next
	t.Paid = false
	return t, nil
}

// IsOwnedBy reports whether the transaction belongs to the given user.
func (t *Transaction) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

// IsRecurring reports whether the transaction is a recurring bill.
func (t *Transaction) IsRecurring() bool {
	return t.Variant == VariantRecurring
}

// MarkPaid flags the transaction as paid. A recurring bill additionally rolls
// its next due date exactly one calendar month forward from the current due
// date, regardless of where that lands relative to today; catching a
// repeatedly-late bill up to the present is the reset sweep's job.
func (t *Transaction) MarkPaid() {
	t.Paid = true
	if t.Variant == VariantRecurring && t.NextDueDate != nil && t.DayOfMonth != nil {
		next := schedule.AdvanceOneMonth(*t.NextDueDate, *t.DayOfMonth)
		t.NextDueDate = &next
	}
	t.UpdatedAt = time.Now().UTC()
}

// ResetCycle starts a new payment cycle for a recurring bill whose next due
// date has fallen into the past: the paid flag is cleared and the due date
// snaps to dayOfMonth clamped within ref's own month. This is intentionally
// not AdvanceOneMonth. Returns whether the bill was reset; bills that are not
// recurring or not yet past due are left untouched.
func (t *Transaction) ResetCycle(ref time.Time) bool {
	if t.Variant != VariantRecurring || t.NextDueDate == nil || t.DayOfMonth == nil {
		return false
	}
	ref = schedule.DateOnly(ref)
	if !t.NextDueDate.Before(ref) {
		return false
	}
	t.Paid = false
	day := schedule.ClampDay(*t.DayOfMonth, ref.Year(), ref.Month())
	next := time.Date(ref.Year(), ref.Month(), day, 0, 0, 0, 0, time.UTC)
	t.NextDueDate = &next
	t.UpdatedAt = time.Now().UTC()
	return true
}

// EnableRecurrence turns a plain transaction into a recurring bill due on
// dayOfMonth, with the next due date computed from ref. Scheduled
// transactions cannot change variant.
func (t *Transaction) EnableRecurrence(dayOfMonth int, ref time.Time) error {
	if t.Variant == VariantScheduled {
		return domainerror.ErrScheduledVariantLocked
	}
	if !schedule.ValidDayOfMonth(dayOfMonth) {
		return domainerror.ErrInvalidDayOfMonth
	}
	t.Variant = VariantRecurring
	t.DayOfMonth = &dayOfMonth
	next := schedule.FirstOccurrenceOnOrAfter(dayOfMonth, ref)
	t.NextDueDate = &next
	t.Paid = false
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// DisableRecurrence turns a recurring bill back into a plain transaction.
// The due day, next due date and paid flag are all cleared so no stale
// payment state survives the switch. Scheduled transactions cannot change
// variant.
func (t *Transaction) DisableRecurrence() error {
	if t.Variant == VariantScheduled {
		return domainerror.ErrScheduledVariantLocked
	}
	t.Variant = VariantPlain
	t.DayOfMonth = nil
	t.NextDueDate = nil
	t.Paid = false
	t.UpdatedAt = time.Now().UTC()
	return nil
}

// TransactionTotals represents aggregated totals for a user's transactions.
type TransactionTotals struct {
	IncomeTotal  decimal.Decimal
	ExpenseTotal decimal.Decimal
	Balance      decimal.Decimal
}
