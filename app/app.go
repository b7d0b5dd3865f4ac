package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tesouraria-ibs/app/controller"
	"tesouraria-ibs/app/router"
	"tesouraria-ibs/config"
	"tesouraria-ibs/db"
	"tesouraria-ibs/pagination"
	"tesouraria-ibs/repository"
	"tesouraria-ibs/service"
	"tesouraria-ibs/store"
)

// App is the initialized application: the HTTP handler plus what must be closed on exit
type App struct {
	Handler http.Handler
	Store   *store.Store
	kv      repository.KeyValueRepositoryInterface
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config) (*App, error) {
	log := config.GetLogger()

	// Initialize storage backend
	kv, err := openKeyValue(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Infof("✅ Initialize: using %s storage", cfg.StorageDriver)

	stateRepo := repository.NewStateRepository(kv)
	prefsRepo := repository.NewPreferencesRepository(kv)

	documents, err := store.Open(ctx, stateRepo, time.Now)
	if err != nil {
		kv.Close()
		return nil, err
	}

	letterhead, err := config.LoadLetterhead(cfg.LetterheadFile)
	if err != nil {
		kv.Close()
		return nil, err
	}

	renderService, err := service.NewRenderService(letterhead, pagination.DefaultLayout)
	if err != nil {
		kv.Close()
		return nil, err
	}

	chrome := service.NewChromeRenderer(service.ChromeConfig{
		ExecPath:   cfg.ChromePath,
		NoSandbox:  cfg.ChromeNoSandbox,
		Timeout:    cfg.ExportTimeout,
		PixelRatio: cfg.ExportPixelRatio,
	})

	// Drive backup is optional; a bad credentials file only disables it
	var backup service.BackupServiceInterface
	if cfg.DriveBackupEnabled() {
		driveService, err := service.NewDriveService(ctx, cfg.DriveCredentialsFile, cfg.DriveFolderID)
		if err != nil {
			log.Warnf("⚠️ Initialize: Drive backup disabled: %v", err)
		} else {
			backup = driveService
			log.Info("✅ Initialize: Drive backup enabled")
		}
	}

	exportService := service.NewExportService(service.ExportDeps{
		Store:       documents,
		Renderer:    renderService,
		Rasterizer:  chrome,
		Assembler:   chrome,
		Files:       service.NewFileSaveService(prefsRepo),
		Printer:     service.NewPrintService(cfg.PrinterName),
		Spreadsheet: service.NewSpreadsheetService(letterhead),
		Backup:      backup,
		Guard:       service.NewExportGuard(),
		TargetWidth: service.TargetPageWidth(cfg.ExportPixelRatio),
	})

	// Create controllers
	controllers := &router.Controllers{
		Document: controller.NewDocumentController(documents),
		Tithes:   controller.NewTithesController(documents),
		Payments: controller.NewPaymentsController(documents, time.Now),
		Export:   controller.NewExportController(documents, renderService, exportService, backup),
	}

	return &App{
		Handler: router.NewRouter(controllers, cfg.ExportTimeout+10*time.Second),
		Store:   documents,
		kv:      kv,
	}, nil
}

// Close releases the storage backend
func (a *App) Close() error {
	return a.kv.Close()
}

// openKeyValue opens the key-value backend selected by cfg.StorageDriver
func openKeyValue(ctx context.Context, cfg *config.Config) (repository.KeyValueRepositoryInterface, error) {
	switch cfg.StorageDriver {
	case config.StorageFile:
		return repository.NewFileKeyValueRepository(cfg.StateFile)
	case config.StoragePostgres:
		if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.EnsureSchema(ctx); err != nil {
			db.CloseDB()
			return nil, err
		}
		return repository.NewPostgresKeyValueRepository(), nil
	case config.StorageRedis:
		return repository.NewRedisKeyValueRepository(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, "tesouraria:")
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
}
