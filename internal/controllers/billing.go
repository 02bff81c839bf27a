package controllers

import (
	"net/http"

	"github.com/billtrack/backend/internal/httperror"
	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterBillingRoutes registers the routes for billing entries with
// the RouterGroup that is passed.
func RegisterBillingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBillingList)
	r.GET("", GetBillings)
}

// RegisterCreateBillingRoutes registers the creation endpoint for billing
// entries. Creation has its own path, it is not nested under the billing
// collection.
func RegisterCreateBillingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCreateBilling)
	r.POST("", CreateBilling)
}

// RegisterCalculateBillingRoutes registers the monthly billing calculation.
func RegisterCalculateBillingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalculateBilling)
	r.POST("", CalculateMonthlyBilling)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Billings
// @Success		204
// @Router			/billings [options]
func OptionsBillingList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Billings
// @Success		204
// @Router			/create-billing [options]
func OptionsCreateBilling(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Billings
// @Success		204
// @Router			/calculate-monthly-billing [options]
func OptionsCalculateBilling(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create billing entry
// @Description	Creates a new billing entry for a project
// @Tags			Billings
// @Accept			json
// @Produce		json
// @Success		201		{object}	BillingResponse
// @Failure		400		{object}	BillingResponse
// @Failure		404		{object}	BillingResponse
// @Failure		500		{object}	BillingResponse
// @Param			billing	body		BillingEditable	true	"Billing entry"
// @Router			/create-billing [post]
func CreateBilling(c *gin.Context) {
	var editable BillingEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), BillingResponse{
			Error: &e,
		})
		return
	}

	billing := editable.model()

	// The BeforeCreate hook checks that the project exists, a missing
	// project surfaces as a not found error here
	err = models.DB.Create(&billing).Error
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), BillingResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, BillingResponse{Data: &billing})
}

// @Summary		List billing entries
// @Description	Returns a list of all billing entries
// @Tags			Billings
// @Produce		json
// @Success		200	{object}	BillingListResponse
// @Failure		500	{object}	BillingListResponse
// @Router			/billings [get]
func GetBillings(c *gin.Context) {
	var billings []models.Billing

	err := models.DB.Find(&billings).Error
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), BillingListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BillingListResponse{Data: billings})
}

// @Summary		Calculate monthly billing
// @Description	Calculates the billing summary for every billing entry recorded for the given month
// @Tags			Billings
// @Produce		json
// @Success		200		{object}	BillingSummaryListResponse
// @Failure		400		{object}	BillingSummaryListResponse
// @Failure		500		{object}	BillingSummaryListResponse
// @Param			month	query		string	true	"Year and month in YYYY-MM format"
// @Router			/calculate-monthly-billing [post]
func CalculateMonthlyBilling(c *gin.Context) {
	var query QueryMonth

	// Every parameter is bound into a string, so this will always succeed
	_ = c.ShouldBindQuery(&query)

	if query.Month == "" {
		e := errMonthNotSetInQuery.Error()
		c.JSON(http.StatusBadRequest, BillingSummaryListResponse{
			Error: &e,
		})
		return
	}

	summaries, err := models.MonthlySummaries(models.DB, query.Month)
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), BillingSummaryListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, BillingSummaryListResponse{Data: summaries})
}
