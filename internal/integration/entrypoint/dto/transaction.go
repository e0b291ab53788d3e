// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-manager/backend/internal/domain/entity"
)

// DateLayout is the wire format for civil dates.
const DateLayout = "2006-01-02"

// CreateTransactionRequest represents the request body for transaction
// creation. Setting due_date creates a scheduled transaction; setting
// day_of_month creates a recurring bill; setting neither creates a plain one.
type CreateTransactionRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      string  `json:"amount" binding:"required"`
	Kind        string  `json:"kind" binding:"required,oneof=income expense"`
	Category    string  `json:"category" binding:"required,min=1,max=100"`
	DueDate     *string `json:"due_date,omitempty"`
	DayOfMonth  *int    `json:"day_of_month,omitempty"`
}

// UpdateTransactionRequest represents the request body for transaction update.
type UpdateTransactionRequest struct {
	Description string `json:"description" binding:"required,min=1,max=255"`
	Amount      string `json:"amount" binding:"required"`
	Kind        string `json:"kind" binding:"required,oneof=income expense"`
	Category    string `json:"category" binding:"required,min=1,max=100"`
	Recurring   bool   `json:"recurring"`
	DayOfMonth  *int   `json:"day_of_month,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Variant     string    `json:"variant"`
	DueDate     *string   `json:"due_date,omitempty"`
	DayOfMonth  *int      `json:"day_of_month,omitempty"`
	NextDueDate *string   `json:"next_due_date,omitempty"`
	Paid        bool      `json:"paid"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Count        int                   `json:"count"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	response := TransactionResponse{
		ID:          txn.ID.String(),
		UserID:      txn.UserID.String(),
		Description: txn.Description,
		Amount:      txn.Amount.String(),
		Kind:        string(txn.Kind),
		Category:    txn.Category,
		Variant:     string(txn.Variant),
		DayOfMonth:  txn.DayOfMonth,
		Paid:        txn.Paid,
		CreatedAt:   txn.CreatedAt,
		UpdatedAt:   txn.UpdatedAt,
	}
	if txn.DueDate != nil {
		due := txn.DueDate.Format(DateLayout)
		response.DueDate = &due
	}
	if txn.NextDueDate != nil {
		next := txn.NextDueDate.Format(DateLayout)
		response.NextDueDate = &next
	}
	return response
}

// ToTransactionListResponse converts a slice of transactions to a list DTO.
func ToTransactionListResponse(transactions []*entity.Transaction) TransactionListResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i, txn := range transactions {
		responses[i] = ToTransactionResponse(txn)
	}
	return TransactionListResponse{
		Transactions: responses,
		Count:        len(responses),
	}
}
