// Package router sets up the gin engine with all middleware and routes.
package router

import (
	"net/http"
	"net/url"
	"os"
	"strings"

	docs "github.com/billtrack/backend/api"
	"github.com/billtrack/backend/internal/controllers"
	"github.com/billtrack/backend/internal/controllers/healthz"
	"github.com/billtrack/backend/internal/httperror"
	"github.com/billtrack/backend/internal/httputil"
	"github.com/billtrack/backend/internal/models"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Config sets up the gin Engine with all middleware.
//
// The returned teardown function unregisters the Prometheus metrics,
// it must be called when the engine is discarded.
func Config(url *url.URL) (*gin.Engine, func(), error) {
	// Set up the router and middlewares
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(url))
	r.Use(MetricsMiddleware())
	r.NoMethod(NoMethod)
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, _ zerolog.Logger) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	if err := registerPrometheusMetrics(); err != nil {
		return nil, func() {}, err
	}

	docs.SwaggerInfo.Host = url.Host
	docs.SwaggerInfo.BasePath = url.Path
	docs.SwaggerInfo.Title = "Billtrack"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Description = "The backend for billtrack, a billing tracker for consulting projects."

	return r, func() { unregisterPrometheusMetrics() }, nil
}

// AttachRoutes attaches the API routes to the router group that is passed in.
// Separating this from Config allows us to attach the routes to different
// paths for different use cases.
func AttachRoutes(group *gin.RouterGroup) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	healthz.RegisterRoutes(group.Group("/healthz"))

	controllers.RegisterProjectRoutes(group.Group("/projects"))
	controllers.RegisterBillingRoutes(group.Group("/billings"))
	controllers.RegisterCreateBillingRoutes(group.Group("/create-billing"))
	controllers.RegisterCalculateBillingRoutes(group.Group("/calculate-monthly-billing"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs                    string `json:"docs" example:"https://example.com/docs/index.html"`                                // Swagger UI
	Healthz                 string `json:"healthz" example:"https://example.com/healthz"`                                     // Health endpoint
	Version                 string `json:"version" example:"https://example.com/version"`                                     // Endpoint returning the version of the backend
	Metrics                 string `json:"metrics" example:"https://example.com/metrics"`                                     // Prometheus metrics
	Projects                string `json:"projects" example:"https://example.com/projects"`                                   // URL of the project collection endpoint
	Billings                string `json:"billings" example:"https://example.com/billings"`                                   // URL of the billing entry collection endpoint
	CreateBilling           string `json:"create_billing" example:"https://example.com/create-billing"`                       // URL of the billing entry creation endpoint
	CalculateMonthlyBilling string `json:"calculate_monthly_billing" example:"https://example.com/calculate-monthly-billing"` // URL of the monthly billing calculation endpoint
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:                    url + "/docs/index.html",
			Healthz:                 url + "/healthz",
			Version:                 url + "/version",
			Metrics:                 url + "/metrics",
			Projects:                url + "/projects",
			Billings:                url + "/billings",
			CreateBilling:           url + "/create-billing",
			CalculateMonthlyBilling: url + "/calculate-monthly-billing",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

// NoMethod returns the error for HTTP methods that are not allowed.
func NoMethod(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, httperror.Error{
		Error: "this HTTP method is not allowed for the endpoint you called",
	})
}
