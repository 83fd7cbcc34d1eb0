package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler of the service
type Handlers struct {
	Health         *handler.HealthHandler
	Documents      *handler.DocumentHandler
	Records        *handler.RecordHandler
	Reconciliation *handler.ReconciliationHandler
	Analytics      *handler.AnalyticsHandler
	Admin          *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	router.GET("/health", h.Health.Health)
	router.GET("/categories", h.Reconciliation.Categories)
	router.POST("/documents", h.Documents.Upload)

	transactions := router.Group("/transactions")
	{
		transactions.GET("", h.Records.List)
		transactions.GET("/booked", h.Records.Booked)
		transactions.GET("/export", h.Records.Export)
	}

	router.GET("/session/export", h.Records.SessionExport)

	rec := router.Group("/reconciliation")
	{
		rec.GET("", h.Reconciliation.View)
		rec.GET("/cardholders", h.Reconciliation.Cardholders)
		rec.PUT("/scope", h.Reconciliation.SetScope)
		rec.POST("/deltas", h.Reconciliation.ApplyDeltas)
		rec.POST("/save", h.Reconciliation.Save)
		rec.POST("/book", h.Reconciliation.Book)
		rec.POST("/reset", h.Reconciliation.Reset)
		rec.POST("/refresh", h.Reconciliation.Refresh)
	}

	analytics := router.Group("/analytics")
	{
		analytics.GET("/monthly", h.Analytics.Monthly)
		analytics.GET("/top-descriptions", h.Analytics.TopDescriptions)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/purge", h.Admin.Purge)
		admin.POST("/normalize-dates", h.Admin.NormalizeDates)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, corsOrigins []string) {
	// Logger wraps ErrorHandler so the rendered error status is the one logged
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(corsOrigins))
}
