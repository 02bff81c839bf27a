package controllers

import (
	"net/http"

	"github.com/billtrack/backend/internal/httperror"
	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterProjectRoutes registers the routes for projects with
// the RouterGroup that is passed.
func RegisterProjectRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProjectList)
	r.GET("", GetProjects)
	r.POST("", CreateProject)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Projects
// @Success		204
// @Router			/projects [options]
func OptionsProjectList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Create project
// @Description	Creates a new project
// @Tags			Projects
// @Accept			json
// @Produce		json
// @Success		201		{object}	ProjectResponse
// @Failure		400		{object}	ProjectResponse
// @Failure		500		{object}	ProjectResponse
// @Param			project	body		ProjectEditable	true	"Project"
// @Router			/projects [post]
func CreateProject(c *gin.Context) {
	var editable ProjectEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	project := editable.model()

	err = models.DB.Create(&project).Error
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), ProjectResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ProjectResponse{Data: &project})
}

// @Summary		List projects
// @Description	Returns a list of all projects
// @Tags			Projects
// @Produce		json
// @Success		200	{object}	ProjectListResponse
// @Failure		500	{object}	ProjectListResponse
// @Router			/projects [get]
func GetProjects(c *gin.Context) {
	var projects []models.Project

	err := models.DB.Find(&projects).Error
	if err != nil {
		e := err.Error()
		c.JSON(httperror.Status(err), ProjectListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ProjectListResponse{Data: projects})
}
