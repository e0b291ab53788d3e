// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"strconv"

	"github.com/finance-manager/backend/internal/application/usecase/bill"
)

// BillListResponse represents the response for listing bills.
type BillListResponse struct {
	Bills  []TransactionResponse `json:"bills"`
	Filter string                `json:"filter"`
	Count  int                   `json:"count"`
}

// ResetBillsResponse represents the response for the monthly reset sweep.
type ResetBillsResponse struct {
	ResetCount int `json:"reset_count"`
}

// CalendarResponse represents the bill calendar for one month. Days maps the
// day of month (as a string key) to the bills due that day; days with no
// bills are omitted.
type CalendarResponse struct {
	Year        int                              `json:"year"`
	Month       int                              `json:"month"`
	DaysInMonth int                              `json:"days_in_month"`
	Days        map[string][]TransactionResponse `json:"days"`
}

// ToBillListResponse converts a bill listing output to a BillListResponse DTO.
func ToBillListResponse(out *bill.ListBillsOutput, filter bill.BillFilter) BillListResponse {
	bills := make([]TransactionResponse, len(out.Bills))
	for i, b := range out.Bills {
		bills[i] = ToTransactionResponse(b)
	}
	return BillListResponse{
		Bills:  bills,
		Filter: string(filter),
		Count:  len(bills),
	}
}

// ToCalendarResponse converts a calendar output to a CalendarResponse DTO.
func ToCalendarResponse(out *bill.BillsCalendarOutput) CalendarResponse {
	days := make(map[string][]TransactionResponse, len(out.Days))
	for day, bills := range out.Days {
		entries := make([]TransactionResponse, len(bills))
		for i, b := range bills {
			entries[i] = ToTransactionResponse(b)
		}
		days[strconv.Itoa(day)] = entries
	}
	return CalendarResponse{
		Year:        out.Year,
		Month:       out.Month,
		DaysInMonth: out.DaysInMonth,
		Days:        days,
	}
}
