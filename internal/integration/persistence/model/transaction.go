// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database. The
// variant column drives which of the nullable scheduling columns are set.
type TransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Kind        string          `gorm:"type:varchar(10);not null;index"`
	Category    string          `gorm:"type:varchar(100);not null;index"`
	Variant     string          `gorm:"type:varchar(10);not null;index"`
	DueDate     *time.Time      `gorm:"type:date"`
	DayOfMonth  *int            `gorm:"type:integer"`
	NextDueDate *time.Time      `gorm:"type:date;index"`
	Paid        bool            `gorm:"default:false"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Amount:      m.Amount,
		Kind:        entity.TransactionKind(m.Kind),
		Category:    m.Category,
		Variant:     entity.TransactionVariant(m.Variant),
		DueDate:     m.DueDate,
		DayOfMonth:  m.DayOfMonth,
		NextDueDate: m.NextDueDate,
		Paid:        m.Paid,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TransactionFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionFromEntity(transaction *entity.Transaction) *TransactionModel {
	return &TransactionModel{
		ID:          transaction.ID,
		UserID:      transaction.UserID,
		Description: transaction.Description,
		Amount:      transaction.Amount,
		Kind:        string(transaction.Kind),
		Category:    transaction.Category,
		Variant:     string(transaction.Variant),
		DueDate:     transaction.DueDate,
		DayOfMonth:  transaction.DayOfMonth,
		NextDueDate: transaction.NextDueDate,
		Paid:        transaction.Paid,
		CreatedAt:   transaction.CreatedAt,
		UpdatedAt:   transaction.UpdatedAt,
	}
}
