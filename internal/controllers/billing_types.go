package controllers

import (
	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BillingEditable defines all values that can be set when a billing entry
// is created.
type BillingEditable struct {
	ProjectID         uint64             `json:"project_id" example:"1"`                   // ID of the project the hours were worked on
	AllocatedResource string             `json:"allocated_resource" example:"Jane Doe"`    // The person or resource billed
	MonthOfBilling    types.BillingMonth `json:"month_of_billing" example:"2024-05"`       // YYYY-MM
	YearOfBilling     int                `json:"year_of_billing" example:"2024"`           // Calendar year of the billing
	TotalHours        decimal.Decimal    `json:"total_hours" example:"37.5" minimum:"0"`   // Hours worked, must be greater than zero
	Description       string             `json:"description" example:"Frontend work"`      // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable BillingEditable) model() models.Billing {
	return models.Billing{
		ProjectID:         editable.ProjectID,
		AllocatedResource: editable.AllocatedResource,
		MonthOfBilling:    editable.MonthOfBilling,
		YearOfBilling:     editable.YearOfBilling,
		TotalHours:        editable.TotalHours,
		Description:       editable.Description,
	}
}

type BillingResponse struct {
	Data  *models.Billing `json:"data"`                                              // The billing entry, if creation was successful
	Error *string         `json:"error" example:"total_hours must be greater than zero"` // The error, if any occurred
}

type BillingListResponse struct {
	Data  []models.Billing `json:"data"`  // List of billing entries
	Error *string          `json:"error"` // The error, if any occurred
}

type BillingSummaryListResponse struct {
	Data  []models.BillingSummary `json:"data"`                                                 // List of billing summaries for the requested month
	Error *string                 `json:"error" example:"the month must be in the format YYYY-MM"` // The error, if any occurred
}

// QueryMonth is the query string for the monthly billing calculation.
type QueryMonth struct {
	Month types.BillingMonth `form:"month" example:"2024-05"` // Year and month in YYYY-MM format
}
