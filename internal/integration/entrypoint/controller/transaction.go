// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-manager/backend/internal/application/usecase/transaction"
	"github.com/finance-manager/backend/internal/domain/entity"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
	"github.com/finance-manager/backend/internal/integration/entrypoint/dto"
	"github.com/finance-manager/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /transactions requests. Optional kind and category query
// parameters narrow the result.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID:   userID,
		Category: ctx.Query("category"),
	}

	if kindStr := ctx.Query("kind"); kindStr != "" {
		kind := entity.TransactionKind(kindStr)
		if kind != entity.KindIncome && kind != entity.KindExpense {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "kind must be 'income' or 'expense'",
				Code:  string(domainerror.ErrCodeInvalidTransactionKind),
			})
			return
		}
		input.Kind = &kind
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve transactions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:        userID,
		Description:   req.Description,
		Amount:        amount,
		Kind:          entity.TransactionKind(req.Kind),
		Category:      req.Category,
		DayOfMonth:    req.DayOfMonth,
		ReferenceDate: referenceDate(ctx),
	}

	if req.DueDate != nil {
		dueDate, err := time.Parse(dto.DateLayout, *req.DueDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "due_date must be a valid calendar date in YYYY-MM-DD format",
				Code:  string(domainerror.ErrCodeInvalidDueDate),
			})
			return
		}
		input.DueDate = &dueDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PUT /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid amount",
			Code:  string(domainerror.ErrCodeInvalidTransactionAmount),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
		Description:   req.Description,
		Amount:        amount,
		Kind:          entity.TransactionKind(req.Kind),
		Category:      req.Category,
		Recurring:     req.Recurring,
		DayOfMonth:    req.DayOfMonth,
		ReferenceDate: referenceDate(ctx),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		UserID:        userID,
		TransactionID: transactionID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// referenceDate resolves the civil date calculations run against. Clients may
// pin it with the reference_date query parameter; otherwise today (UTC) is
// used. The wall clock is read only here, at the HTTP edge.
func referenceDate(ctx *gin.Context) time.Time {
	if raw := ctx.Query("reference_date"); raw != "" {
		if ref, err := time.Parse(dto.DateLayout, raw); err == nil {
			return ref
		}
	}
	return time.Now().UTC()
}

// handleTransactionError maps domain errors to HTTP responses.
func handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		ctx.JSON(statusCodeForTransactionError(txnErr.Code), dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var billErr *domainerror.BillError
	if errors.As(err, &billErr) {
		ctx.JSON(statusCodeForBillError(billErr.Code), dto.ErrorResponse{
			Error: billErr.Message,
			Code:  string(billErr.Code),
		})
		return
	}

	if errors.Is(err, domainerror.ErrTransactionNotFound) {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: "Transaction not found",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	if errors.Is(err, domainerror.ErrScheduledVariantLocked) {
		ctx.JSON(http.StatusConflict, dto.ErrorResponse{
			Error: "Scheduled transactions cannot change recurrence",
			Code:  string(domainerror.ErrCodeScheduledVariantLocked),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForTransactionError maps transaction error codes to HTTP status codes.
func statusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTransaction:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// statusCodeForBillError maps bill error codes to HTTP status codes.
func statusCodeForBillError(code domainerror.BillErrorCode) int {
	switch code {
	case domainerror.ErrCodeScheduledVariantLocked:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}
