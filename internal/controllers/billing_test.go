package controllers_test

import (
	"net/http"
	"testing"

	"github.com/billtrack/backend/internal/controllers"
	"github.com/billtrack/backend/internal/models"
	"github.com/billtrack/backend/internal/types"
	"github.com/billtrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestBilling creates a billing entry via the API and verifies the expected status code.
func (suite *TestSuiteStandard) createTestBilling(c controllers.BillingEditable, expectedStatus ...int) controllers.BillingResponse {
	if c.AllocatedResource == "" {
		c.AllocatedResource = "Jane Doe"
	}

	if c.MonthOfBilling == "" {
		c.MonthOfBilling = types.NewBillingMonth(2024, 5)
	}

	if c.YearOfBilling == 0 {
		c.YearOfBilling = 2024
	}

	if c.TotalHours.IsZero() {
		c.TotalHours = decimal.NewFromInt(8)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/create-billing", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var b controllers.BillingResponse
	test.DecodeResponse(suite.T(), &r, &b)

	return b
}

func (suite *TestSuiteStandard) TestBillingOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/billings", "OPTIONS, GET"},
		{"http://example.com/create-billing", "OPTIONS, POST"},
		{"http://example.com/calculate-monthly-billing", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			assert.Equal(t, http.StatusNoContent, r.Code)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestCreateBilling() {
	project := suite.createTestProject(controllers.ProjectEditable{ProjectName: "Backend rewrite"})

	b := suite.createTestBilling(controllers.BillingEditable{
		ProjectID:   project.Data.ID,
		TotalHours:  decimal.RequireFromString("37.5"),
		Description: "Sprint 12",
	})

	assert.Equal(suite.T(), project.Data.ID, b.Data.ProjectID)
	assert.Equal(suite.T(), "Jane Doe", b.Data.AllocatedResource)
	assert.True(suite.T(), b.Data.TotalHours.Equal(decimal.RequireFromString("37.5")))
	assert.NotZero(suite.T(), b.Data.ID)
	assert.Nil(suite.T(), b.Error)
}

func (suite *TestSuiteStandard) TestCreateBillingNoProject() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/create-billing", controllers.BillingEditable{
		ProjectID:         4096,
		AllocatedResource: "Jane Doe",
		MonthOfBilling:    types.NewBillingMonth(2024, 5),
		YearOfBilling:     2024,
		TotalHours:        decimal.NewFromInt(8),
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var b controllers.BillingResponse
	test.DecodeResponse(suite.T(), &r, &b)
	assert.Equal(suite.T(), "there is no project matching your query", *b.Error)

	// Nothing may be persisted when the project does not exist
	var count int64
	suite.Assert().Nil(models.DB.Model(&models.Billing{}).Count(&count).Error)
	assert.Equal(suite.T(), int64(0), count)
}

func (suite *TestSuiteStandard) TestCreateBillingInvalidHours() {
	project := suite.createTestProject(controllers.ProjectEditable{ProjectName: "Zero hours"})

	tests := []struct {
		name  string
		hours decimal.Decimal
	}{
		{"Zero", decimal.Zero},
		{"Negative", decimal.NewFromInt(-3)},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/create-billing", controllers.BillingEditable{
				ProjectID:         project.Data.ID,
				AllocatedResource: "Jane Doe",
				MonthOfBilling:    types.NewBillingMonth(2024, 5),
				YearOfBilling:     2024,
				TotalHours:        tt.hours,
			})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var b controllers.BillingResponse
			test.DecodeResponse(t, &r, &b)
			assert.Equal(t, "total_hours must be greater than zero", *b.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateBillingEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/create-billing", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestGetBillings() {
	project := suite.createTestProject(controllers.ProjectEditable{ProjectName: "Listing"})

	_ = suite.createTestBilling(controllers.BillingEditable{ProjectID: project.Data.ID})
	_ = suite.createTestBilling(controllers.BillingEditable{ProjectID: project.Data.ID, MonthOfBilling: types.NewBillingMonth(2024, 6)})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/billings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BillingListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestCalculateMonthlyBillingHourly() {
	project := suite.createTestProject(controllers.ProjectEditable{
		ProjectName: "Hourly work",
		BillingType: "hourly",
		HourlyPrice: decimal.NewFromInt(100),
	})

	_ = suite.createTestBilling(controllers.BillingEditable{
		ProjectID:  project.Data.ID,
		TotalHours: decimal.NewFromInt(10),
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/calculate-monthly-billing?month=2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BillingSummaryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}

	summary := response.Data[0]
	assert.Equal(suite.T(), "Hourly work", summary.ProjectName)
	assert.Equal(suite.T(), "Jane Doe", summary.ResourceName)
	assert.True(suite.T(), summary.TotalAmountUSD.Equal(decimal.NewFromInt(1000)), "amount is %s", summary.TotalAmountUSD)
	assert.Equal(suite.T(), 5, summary.Month)
	assert.Equal(suite.T(), 2024, summary.Year)
}

func (suite *TestSuiteStandard) TestCalculateMonthlyBillingNonHourly() {
	project := suite.createTestProject(controllers.ProjectEditable{
		ProjectName: "Fixed bid work",
		BillingType: "fixed-bid",
		FixedPrice:  decimal.NewFromInt(20000),
	})

	_ = suite.createTestBilling(controllers.BillingEditable{
		ProjectID:  project.Data.ID,
		TotalHours: decimal.NewFromInt(40),
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/calculate-monthly-billing?month=2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BillingSummaryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	if !assert.Len(suite.T(), response.Data, 1) {
		return
	}

	assert.True(suite.T(), response.Data[0].TotalAmountUSD.IsZero())
}

func (suite *TestSuiteStandard) TestCalculateMonthlyBillingFiltersMonth() {
	project := suite.createTestProject(controllers.ProjectEditable{
		ProjectName: "Two months",
		BillingType: "hourly",
		HourlyPrice: decimal.NewFromInt(50),
	})

	_ = suite.createTestBilling(controllers.BillingEditable{ProjectID: project.Data.ID, MonthOfBilling: types.NewBillingMonth(2024, 5)})
	_ = suite.createTestBilling(controllers.BillingEditable{ProjectID: project.Data.ID, MonthOfBilling: types.NewBillingMonth(2024, 6)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/calculate-monthly-billing?month=2024-06", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BillingSummaryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
}

func (suite *TestSuiteStandard) TestCalculateMonthlyBillingNoEntries() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/calculate-monthly-billing?month=2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.BillingSummaryListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestCalculateMonthlyBillingMonthErrors() {
	tests := []struct {
		name  string
		url   string
		error string
	}{
		{"Missing month", "http://example.com/calculate-monthly-billing", "the month query parameter must be set"},
		{"Malformed month", "http://example.com/calculate-monthly-billing?month=May2024", "the month must be in the format YYYY-MM"},
		{"Non-numeric month", "http://example.com/calculate-monthly-billing?month=2024-ab", "the month must be in the format YYYY-MM"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.url, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response controllers.BillingSummaryListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.error, *response.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestBillingsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/billings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/calculate-monthly-billing?month=2024-05", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
