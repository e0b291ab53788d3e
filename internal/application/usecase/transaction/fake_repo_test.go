package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/application/adapter"
	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
)

// fakeTransactionRepo is an in-memory adapter.TransactionRepository that
// preserves insertion order.
type fakeTransactionRepo struct {
	transactions []*entity.Transaction
	createCalls  int
	updateCalls  int
	deleteCalls  int
}

func (r *fakeTransactionRepo) Create(_ context.Context, t *entity.Transaction) error {
	r.createCalls++
	r.transactions = append(r.transactions, t)
	return nil
}

func (r *fakeTransactionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Transaction, error) {
	for _, t := range r.transactions {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindByFilter(ctx context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	all, _ := r.FindByUser(ctx, filter.UserID)
	var out []*entity.Transaction
	for _, t := range all {
		if filter.Kind != nil && t.Kind != *filter.Kind {
			continue
		}
		if filter.Category != "" && t.Category != filter.Category {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindRecurringByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.Variant == entity.VariantRecurring {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) FindScheduledByUser(_ context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var out []*entity.Transaction
	for _, t := range r.transactions {
		if t.UserID == userID && t.Variant == entity.VariantScheduled {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTransactionRepo) Update(_ context.Context, updated *entity.Transaction) error {
	r.updateCalls++
	for i, t := range r.transactions {
		if t.ID == updated.ID {
			r.transactions[i] = updated
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

func (r *fakeTransactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deleteCalls++
	for i, t := range r.transactions {
		if t.ID == id {
			r.transactions = append(r.transactions[:i], r.transactions[i+1:]...)
			return nil
		}
	}
	return domainerror.ErrTransactionNotFound
}

var _ adapter.TransactionRepository = (*fakeTransactionRepo)(nil)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

func kindPtr(k entity.TransactionKind) *entity.TransactionKind { return &k }
