package models

import (
	"errors"
	"strings"

	"github.com/billtrack/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Billing represents the hours a resource worked on a project
// in a specific month.
type Billing struct {
	Model
	ProjectID         uint64             `json:"project_id" example:"1"`
	Project           Project            `json:"-"`
	AllocatedResource string             `json:"allocated_resource" example:"Jane Doe"`
	MonthOfBilling    types.BillingMonth `json:"month_of_billing" example:"2024-05"` // YYYY-MM, stored verbatim
	YearOfBilling     int                `json:"year_of_billing" example:"2024"`
	TotalHours        decimal.Decimal    `json:"total_hours" gorm:"type:DECIMAL(20,8)" example:"37.5"`
	Description       string             `json:"description,omitempty" example:"Frontend work"`
}

var ErrBillingTotalHoursNotPositive = errors.New("total_hours must be greater than zero")

// BeforeCreate checks that the referenced project exists.
func (b *Billing) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Billing)
	return b.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (b *Billing) checkIntegrity(tx *gorm.DB, toSave Billing) error {
	return tx.First(&Project{}, toSave.ProjectID).Error
}

// BeforeSave validates the billing entry and trims whitespace from all
// strings. The month string is deliberately not checked against a format,
// it is stored verbatim and only interpreted at calculation time.
func (b *Billing) BeforeSave(_ *gorm.DB) error {
	b.AllocatedResource = strings.TrimSpace(b.AllocatedResource)
	b.Description = strings.TrimSpace(b.Description)

	if !b.TotalHours.IsPositive() {
		return ErrBillingTotalHoursNotPositive
	}

	return nil
}

// BillingSummary is the calculated billing amount for one billing entry
// in a specific month. It is derived on demand and never persisted.
type BillingSummary struct {
	ProjectName    string          `json:"project_name" example:"Website relaunch"`
	ResourceName   string          `json:"resource_name" example:"Jane Doe"`
	TotalAmountUSD decimal.Decimal `json:"total_amount_usd" example:"1000"`
	Month          int             `json:"month" example:"5"`
	Year           int             `json:"year" example:"2024"`
}

// MonthlySummaries calculates the billing summary for every billing entry
// recorded for the given month.
//
// Billing entries are matched on exact string equality of their stored
// month and returned in store iteration order. Entries whose project no
// longer exists are skipped. Amounts are only calculated for projects
// billed hourly, all other billing types get an amount of zero.
func MonthlySummaries(db *gorm.DB, month types.BillingMonth) ([]BillingSummary, error) {
	index, err := month.Index()
	if err != nil {
		return nil, err
	}

	var billings []Billing
	err = db.Where(&Billing{MonthOfBilling: month}).Find(&billings).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]BillingSummary, 0, len(billings))
	for _, billing := range billings {
		var project Project
		err := db.First(&project, billing.ProjectID).Error
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				continue
			}
			return nil, err
		}

		amount := decimal.Zero
		if project.BillingType == BillingTypeHourly {
			amount = billing.TotalHours.Mul(project.HourlyPrice)
		}

		summaries = append(summaries, BillingSummary{
			ProjectName:    project.ProjectName,
			ResourceName:   billing.AllocatedResource,
			TotalAmountUSD: amount,
			Month:          index,
			Year:           billing.YearOfBilling,
		})
	}

	return summaries, nil
}
