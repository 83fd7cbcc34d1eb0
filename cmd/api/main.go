package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/bootstrap"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	for _, warning := range productionWarnings(cfg) {
		log.Printf("Warning: %s", warning)
	}

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Minute)
	app, err := bootstrap.New(startupCtx, cfg)
	cancelStartup()
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	appLogger := app.Logger

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, app.TimeProvider, cfg.Server.CorsOrigins)
	routes.SetupRoutes(router, routes.Handlers{
		Health:         handler.NewHealthHandler(app.DB, appLogger),
		Documents:      handler.NewDocumentHandler(app.Ingestion, app.Desk, cfg.Extractor.MaxUploadBytes, appLogger),
		Records:        handler.NewRecordHandler(app.Reports, app.Desk, appLogger),
		Reconciliation: handler.NewReconciliationHandler(app.Desk, appLogger),
		Analytics:      handler.NewAnalyticsHandler(app.Reports),
		Admin:          handler.NewAdminHandler(app.Maintenance, app.Desk, appLogger),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":        server.Addr,
			"env":         cfg.Environment,
			"driver":      cfg.Database.Driver,
			"storage_dir": app.StorageDir,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-quit:
		appLogger.Info("Shutting down server...", map[string]any{"signal": sig.String()})
	case err := <-serverErr:
		appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
		exitCode = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	// queued desk actions finish before the store closes
	if err := app.Close(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}

	log.Println("Server exited")
	os.Exit(exitCode)
}

// productionWarnings lists settings that are legal but unwise in production
func productionWarnings(cfg *config.Config) []string {
	if cfg.Environment != config.Production {
		return nil
	}

	var warnings []string

	if cfg.Database.Driver == database.DriverPostgres {
		switch strings.ToLower(cfg.Database.SSLMode) {
		case "require", "verify-ca", "verify-full":
		default:
			warnings = append(warnings, "database.sslMode should be 'require', 'verify-ca' or 'verify-full' in production")
		}
	}

	if cfg.Server.Mode == gin.DebugMode {
		warnings = append(warnings, "server.mode is debug in production")
	}

	for _, origin := range cfg.Server.CorsOrigins {
		if origin == "*" {
			warnings = append(warnings, "server.corsOrigins allows every origin")
			break
		}
	}

	if cfg.Server.ReadTimeout < 5*time.Second {
		warnings = append(warnings, "server.readTimeout is too low for production")
	}
	if cfg.Server.WriteTimeout < 5*time.Second {
		warnings = append(warnings, "server.writeTimeout is too low for production")
	}

	return warnings
}
