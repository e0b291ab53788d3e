// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/domain/entity"
)

// TransactionFilter defines filter options for listing a user's transactions.
type TransactionFilter struct {
	UserID   uuid.UUID
	Kind     *entity.TransactionKind
	Category string
}

// TransactionRepository defines the interface for transaction persistence operations.
type TransactionRepository interface {
	// Create creates a new transaction in the database.
	Create(ctx context.Context, transaction *entity.Transaction) error

	// FindByID retrieves a transaction by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error)

	// FindByUser retrieves all transactions for a given user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindByFilter retrieves transactions matching the filter criteria.
	FindByFilter(ctx context.Context, filter TransactionFilter) ([]*entity.Transaction, error)

	// FindRecurringByUser retrieves all recurring bills for a given user.
	FindRecurringByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// FindScheduledByUser retrieves all scheduled (one-time, due-dated)
	// transactions for a given user.
	FindScheduledByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error)

	// Update updates an existing transaction in the database.
	Update(ctx context.Context, transaction *entity.Transaction) error

	// Delete removes a transaction from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
