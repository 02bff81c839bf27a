package controllers

import (
	"github.com/billtrack/backend/internal/models"
	"github.com/shopspring/decimal"
)

// ProjectEditable defines all values that can be set when a project
// is created.
type ProjectEditable struct {
	ProjectName    string          `json:"project_name" example:"Website relaunch"` // Name of the project
	ClientName     string          `json:"client_name" example:"ACME Corp"`         // Name of the client
	Address        string          `json:"address" example:"1 Example Street"`      // Street address of the client
	PostCode       string          `json:"post_code" example:"10115"`               // Post code of the client
	Country        string          `json:"country" example:"Germany"`               // Country of the client
	BillingType    string          `json:"billing_type" example:"hourly"`           // One of 'hourly', 'monthly', 'fixed-bid'
	ContractStatus string          `json:"contract_status" example:"active"`        // One of 'active', 'inactive'
	StartDate      string          `json:"start_date" example:"01-04-2024"`         // Contract start, DD-MM-YYYY
	EndDate        string          `json:"end_date" example:"31-12-2024"`           // Contract end, DD-MM-YYYY. May be empty
	HourlyPrice    decimal.Decimal `json:"hourly_price" example:"85" minimum:"0"`   // Price per hour in USD
	FixedPrice     decimal.Decimal `json:"fixed_price" example:"0" minimum:"0"`     // Fixed project price in USD
}

// model returns the database resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		ProjectName:    editable.ProjectName,
		ClientName:     editable.ClientName,
		Address:        editable.Address,
		PostCode:       editable.PostCode,
		Country:        editable.Country,
		BillingType:    editable.BillingType,
		ContractStatus: editable.ContractStatus,
		StartDate:      editable.StartDate,
		EndDate:        editable.EndDate,
		HourlyPrice:    editable.HourlyPrice,
		FixedPrice:     editable.FixedPrice,
	}
}

type ProjectResponse struct {
	Data  *models.Project `json:"data"`                                                       // The project, if creation was successful
	Error *string         `json:"error" example:"start_date must be a date in the format DD-MM-YYYY"` // The error, if any occurred
}

type ProjectListResponse struct {
	Data  []models.Project `json:"data"`  // List of projects
	Error *string          `json:"error"` // The error, if any occurred
}
