// Package router sets up the gin engine and all routes.
package router

import (
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/RUBENCABACVR/mi-bot-gastos/internal/controllers"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/controllers/healthz"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/models"
	"github.com/RUBENCABACVR/mi-bot-gastos/internal/tracker"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router controls the routes for the API.
func Router() (*gin.Engine, error) {
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
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, out io.Writer, latency time.Duration) zerolog.Logger {
			return log.Logger.With().
				Str("request-id", requestid.Get(c)).
				Dur("latency", latency).
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
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	// The actual clock is used outside of tests
	controllers.Engine = tracker.New(models.DB, nil)

	if enable, ok := os.LookupEnv("ENABLE_PPROF"); ok && enable == "true" {
		pprof.Register(r)
	}

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.GET("/version", GetVersion)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	healthz.RegisterRoutes(r.Group("/healthz"))

	// API v1 setup
	v1 := r.Group("/v1")
	{
		v1.GET("", GetV1)
	}

	user := v1.Group("/users/:userId")
	controllers.RegisterExpenseRoutes(user.Group("/expenses"))
	controllers.RegisterBudgetRoutes(user.Group("/budget"))
	controllers.RegisterRecurringRoutes(user.Group("/recurring"))
	controllers.RegisterReportRoutes(user.Group("/report"))
	controllers.RegisterExportRoutes(user.Group("/export"))

	log.Info().Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/healthz"`
	Version string `json:"version" example:"https://example.com/version"`
	Metrics string `json:"metrics" example:"https://example.com/metrics"`
	V1      string `json:"v1" example:"https://example.com/v1"`
}

// GetRoot is the entrypoint for the API, listing all endpoints.
func GetRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: "/healthz",
			Version: "/version",
			Metrics: "/metrics",
			V1:      "/v1",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.0.0"`
}

// GetVersion returns the version of the API.
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Expenses  string `json:"expenses" example:"https://example.com/v1/users/1/expenses"`
	Budget    string `json:"budget" example:"https://example.com/v1/users/1/budget"`
	Recurring string `json:"recurring" example:"https://example.com/v1/users/1/recurring"`
	Report    string `json:"report" example:"https://example.com/v1/users/1/report"`
	Export    string `json:"export" example:"https://example.com/v1/users/1/export"`
}

// GetV1 returns the links for v1 of the API.
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Expenses:  "/v1/users/:userId/expenses",
			Budget:    "/v1/users/:userId/budget",
			Recurring: "/v1/users/:userId/recurring",
			Report:    "/v1/users/:userId/report",
			Export:    "/v1/users/:userId/export",
		},
	})
}
