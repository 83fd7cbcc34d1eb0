package bootstrap

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/ingestion"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/maintenance"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/parser"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/statement-processor/internal/domain/usecase/report"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/extractor"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/statement-processor/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
)

// App holds the wired services shared by the HTTP server and the CLI
type App struct {
	Config       *config.Config
	Logger       coreport.Logger
	TimeProvider coreport.TimeProvider
	DB           *database.Manager
	StorageDir   string

	Ingestion   *ingestion.Service
	Desk        *reconciliation.Desk
	Reports     *report.Service
	Maintenance *maintenance.Service

	queue *reconciliation.ActionQueue
}

// New connects the store, runs migrations and wires every use case
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(ctx, cfg, appLogger)
}

// NewWithLogger is New with a caller supplied logger
func NewWithLogger(ctx context.Context, cfg *config.Config, appLogger coreport.Logger) (*App, error) {
	tp := timeprovider.NewRealTimeProvider()

	storageDir := ""
	if cfg.Database.Driver == database.DriverSQLite {
		dir, err := database.ResolveStorageDir(cfg.Storage.Candidates, appLogger)
		if err != nil {
			return nil, err
		}
		storageDir = dir
	}

	dbManager := database.NewManager(database.FromAppConfig(cfg, storageDir), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbManager.Migrate(ctx); err != nil {
		_ = dbManager.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	uow := dbManager.CreateUnitOfWork()

	p := parser.NewParser(parser.Options{
		IssuerPrefix: cfg.Parser.IssuerPrefix,
		SkipPrefixes: cfg.Parser.SkipPrefixes,
	})

	ingestionService := ingestion.NewService(
		uow,
		extractor.NewExtractor(cfg.Extractor, appLogger),
		p,
		tp,
		appLogger,
		cfg.Parser.DefaultExcludeTerms,
	)

	queue := reconciliation.NewActionQueue(appLogger)
	engine := reconciliation.NewEngine(uow, entity.NewCategorySet(cfg.Reconciliation.Categories), tp, appLogger)

	norm := cfg.Maintenance.DateNormalization
	maintenanceService := maintenance.NewService(uow, maintenance.NormalizationConfig{
		Enabled:    norm.Enabled,
		FromLayout: norm.FromLayout,
		ToLayout:   norm.ToLayout,
	}, tp, appLogger)

	return &App{
		Config:       cfg,
		Logger:       appLogger,
		TimeProvider: tp,
		DB:           dbManager,
		StorageDir:   storageDir,
		Ingestion:    ingestionService,
		Desk:         reconciliation.NewDesk(engine, queue),
		Reports:      report.NewService(uow),
		Maintenance:  maintenanceService,
		queue:        queue,
	}, nil
}

// Close drains the action queue and closes the store
func (a *App) Close() error {
	a.queue.Shutdown()
	err := a.DB.Close()
	if flushErr := a.Logger.Flush(); flushErr != nil && err == nil {
		err = flushErr
	}
	return err
}
