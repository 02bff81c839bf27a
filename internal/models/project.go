package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DateFormat is the format for project start and end dates, DD-MM-YYYY.
const DateFormat = "02-01-2006"

// Billing types for projects.
const (
	BillingTypeHourly   = "hourly"
	BillingTypeMonthly  = "monthly"
	BillingTypeFixedBid = "fixed-bid"
)

// Contract statuses for projects.
const (
	ContractStatusActive   = "active"
	ContractStatusInactive = "inactive"
)

// Project represents a consulting project for a client.
//
// A project is the highest level of organization in the billing tracker,
// every billing entry references one.
type Project struct {
	Model
	ProjectName    string          `json:"project_name" example:"Website relaunch"`
	ClientName     string          `json:"client_name" example:"ACME Corp"`
	Address        string          `json:"address" example:"1 Example Street"`
	PostCode       string          `json:"post_code" example:"10115"`
	Country        string          `json:"country" example:"Germany"`
	BillingType    string          `json:"billing_type" example:"hourly"`              // One of 'hourly', 'monthly', 'fixed-bid'
	ContractStatus string          `json:"contract_status" example:"active"`           // One of 'active', 'inactive'
	StartDate      string          `json:"start_date" example:"01-04-2024"`            // DD-MM-YYYY
	EndDate        string          `json:"end_date,omitempty" example:"31-12-2024"`    // DD-MM-YYYY, may be empty
	HourlyPrice    decimal.Decimal `json:"hourly_price" gorm:"type:DECIMAL(20,8)" example:"85"`
	FixedPrice     decimal.Decimal `json:"fixed_price" gorm:"type:DECIMAL(20,8)" example:"0"`
}

var (
	ErrProjectStartDateFormat       = errors.New("start_date must be a date in the format DD-MM-YYYY")
	ErrProjectEndDateFormat         = errors.New("end_date must be a date in the format DD-MM-YYYY")
	ErrProjectBillingTypeInvalid    = errors.New("billing_type must be one of 'hourly', 'monthly', 'fixed-bid'")
	ErrProjectContractStatusInvalid = errors.New("contract_status must be one of 'active', 'inactive'")
	ErrProjectPriceNegative         = errors.New("hourly_price and fixed_price must not be negative")
	ErrProjectFixedPriceNotZero     = errors.New("fixed_price must be zero when billing_type is 'hourly'")
	ErrProjectHourlyPriceNotZero    = errors.New("hourly_price must be zero when billing_type is 'fixed-bid'")
	ErrProjectHourlyPriceRequired   = errors.New("hourly_price must be greater than zero when billing_type is 'hourly'")
	ErrProjectMonthlyPricesRequired = errors.New("hourly_price and fixed_price must both be greater than zero when billing_type is 'monthly'")
)

// BeforeSave validates the project and trims whitespace from all strings
func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.ProjectName = strings.TrimSpace(p.ProjectName)
	p.ClientName = strings.TrimSpace(p.ClientName)
	p.Address = strings.TrimSpace(p.Address)
	p.PostCode = strings.TrimSpace(p.PostCode)
	p.Country = strings.TrimSpace(p.Country)

	return p.validate()
}

// validate checks all field level and cross field business rules for the
// project. The price rules are only checked once the date and enum fields
// are known to be good, their error messages refer to the billing type.
func (p Project) validate() error {
	if _, err := time.Parse(DateFormat, p.StartDate); err != nil {
		return ErrProjectStartDateFormat
	}

	if p.EndDate != "" {
		if _, err := time.Parse(DateFormat, p.EndDate); err != nil {
			return ErrProjectEndDateFormat
		}
	}

	if p.BillingType != BillingTypeHourly && p.BillingType != BillingTypeMonthly && p.BillingType != BillingTypeFixedBid {
		return ErrProjectBillingTypeInvalid
	}

	if p.ContractStatus != ContractStatusActive && p.ContractStatus != ContractStatusInactive {
		return ErrProjectContractStatusInvalid
	}

	if p.HourlyPrice.IsNegative() || p.FixedPrice.IsNegative() {
		return ErrProjectPriceNegative
	}

	switch p.BillingType {
	case BillingTypeHourly:
		if !p.HourlyPrice.IsPositive() {
			return ErrProjectHourlyPriceRequired
		}
		if p.FixedPrice.IsPositive() {
			return ErrProjectFixedPriceNotZero
		}

	case BillingTypeFixedBid:
		if p.HourlyPrice.IsPositive() {
			return ErrProjectHourlyPriceNotZero
		}

	case BillingTypeMonthly:
		if !p.HourlyPrice.IsPositive() || !p.FixedPrice.IsPositive() {
			return ErrProjectMonthlyPricesRequired
		}
	}

	return nil
}
