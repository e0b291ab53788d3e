// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-manager/backend/internal/application/usecase/bill"
	domainerror "github.com/finance-manager/backend/internal/domain/error"
	"github.com/finance-manager/backend/internal/integration/entrypoint/dto"
	"github.com/finance-manager/backend/internal/integration/entrypoint/middleware"
)

// BillController handles recurring bill endpoints.
type BillController struct {
	listUseCase     *bill.ListBillsUseCase
	markPaidUseCase *bill.MarkBillPaidUseCase
	resetUseCase    *bill.ResetMonthlyBillsUseCase
	calendarUseCase *bill.BillsCalendarUseCase
}

// NewBillController creates a new bill controller instance.
func NewBillController(
	listUseCase *bill.ListBillsUseCase,
	markPaidUseCase *bill.MarkBillPaidUseCase,
	resetUseCase *bill.ResetMonthlyBillsUseCase,
	calendarUseCase *bill.BillsCalendarUseCase,
) *BillController {
	return &BillController{
		listUseCase:     listUseCase,
		markPaidUseCase: markPaidUseCase,
		resetUseCase:    resetUseCase,
		calendarUseCase: calendarUseCase,
	}
}

// List handles GET /bills requests. The filter query parameter selects a view
// over the user's recurring bills; unknown filters fall back to all.
func (c *BillController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	filter := bill.ParseBillFilter(ctx.Query("filter"))

	output, err := c.listUseCase.Execute(ctx.Request.Context(), bill.ListBillsInput{
		UserID:        userID,
		Filter:        filter,
		ReferenceDate: referenceDate(ctx),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBillListResponse(output, filter))
}

// Pay handles POST /bills/:id/pay requests.
func (c *BillController) Pay(ctx *gin.Context) {
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

	output, err := c.markPaidUseCase.Execute(ctx.Request.Context(), bill.MarkBillPaidInput{
		UserID:        userID,
		TransactionID: transactionID,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Reset handles POST /bills/reset requests: every recurring bill whose due
// date has passed starts a new cycle.
func (c *BillController) Reset(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.resetUseCase.Execute(ctx.Request.Context(), bill.ResetMonthlyBillsInput{
		UserID:        userID,
		ReferenceDate: referenceDate(ctx),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to reset bills",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ResetBillsResponse{ResetCount: output.ResetCount})
}

// Calendar handles GET /bills/calendar requests for a given year and month.
func (c *BillController) Calendar(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "year must be an integer",
			Code:  string(domainerror.ErrCodeInvalidCalendarMonth),
		})
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "month must be an integer",
			Code:  string(domainerror.ErrCodeInvalidCalendarMonth),
		})
		return
	}

	output, err := c.calendarUseCase.Execute(ctx.Request.Context(), bill.BillsCalendarInput{
		UserID: userID,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarResponse(output))
}
