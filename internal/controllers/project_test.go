package controllers_test

import (
	"net/http"
	"testing"

	"github.com/billtrack/backend/internal/controllers"
	"github.com/billtrack/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// createTestProject creates a project via the API and verifies the expected status code.
func (suite *TestSuiteStandard) createTestProject(c controllers.ProjectEditable, expectedStatus ...int) controllers.ProjectResponse {
	if c.BillingType == "" {
		c.BillingType = "fixed-bid"
	}

	if c.ContractStatus == "" {
		c.ContractStatus = "active"
	}

	if c.StartDate == "" {
		c.StartDate = "01-01-2024"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/projects", c)
	test.AssertHTTPStatus(suite.T(), &r, expectedStatus...)

	var p controllers.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &p)

	return p
}

func (suite *TestSuiteStandard) TestProjectOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/projects", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "OPTIONS, GET, POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestCreateProject() {
	p := suite.createTestProject(controllers.ProjectEditable{
		ProjectName: "Website relaunch",
		ClientName:  "ACME Corp",
		Country:     "Germany",
		BillingType: "hourly",
		HourlyPrice: decimal.NewFromInt(85),
	})

	assert.Equal(suite.T(), "Website relaunch", p.Data.ProjectName)
	assert.Equal(suite.T(), "ACME Corp", p.Data.ClientName)
	assert.True(suite.T(), p.Data.HourlyPrice.Equal(decimal.NewFromInt(85)))
	assert.NotZero(suite.T(), p.Data.ID)
	assert.Nil(suite.T(), p.Error)
}

func (suite *TestSuiteStandard) TestCreateProjectValidationError() {
	tests := []struct {
		name  string
		body  controllers.ProjectEditable
		error string
	}{
		{
			"Bad start date",
			controllers.ProjectEditable{
				ProjectName: "Bad dates",
				BillingType: "fixed-bid",
				StartDate:   "2024-01-01",
			},
			"start_date must be a date in the format DD-MM-YYYY",
		},
		{
			"Unknown billing type",
			controllers.ProjectEditable{
				ProjectName: "Bad type",
				BillingType: "weekly",
				StartDate:   "01-01-2024",
			},
			"billing_type must be one of 'hourly', 'monthly', 'fixed-bid'",
		},
		{
			"Hourly without price",
			controllers.ProjectEditable{
				ProjectName:    "No price",
				BillingType:    "hourly",
				ContractStatus: "active",
				StartDate:      "01-01-2024",
			},
			"hourly_price must be greater than zero when billing_type is 'hourly'",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/projects", tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var p controllers.ProjectResponse
			test.DecodeResponse(t, &r, &p)
			assert.Equal(t, tt.error, *p.Error)
		})
	}
}

func (suite *TestSuiteStandard) TestCreateProjectInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/projects", `{ "project_name": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCreateProjectEmptyBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var p controllers.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &p)
	assert.Equal(suite.T(), "the request body must not be empty", *p.Error)
}

func (suite *TestSuiteStandard) TestGetProjects() {
	_ = suite.createTestProject(controllers.ProjectEditable{ProjectName: "First"})
	_ = suite.createTestProject(controllers.ProjectEditable{ProjectName: "Second"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ProjectListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "First", response.Data[0].ProjectName)
	assert.Equal(suite.T(), "Second", response.Data[1].ProjectName)
}

func (suite *TestSuiteStandard) TestGetProjectsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response controllers.ProjectListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)
}

func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/projects", controllers.ProjectEditable{
		ProjectName:    "Doomed",
		BillingType:    "fixed-bid",
		ContractStatus: "active",
		StartDate:      "01-01-2024",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/projects", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
