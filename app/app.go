package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"semar-etiquetas/app/controller"
	"semar-etiquetas/app/router"
	"semar-etiquetas/config"
	"semar-etiquetas/db"
	"semar-etiquetas/metrics"
	"semar-etiquetas/render"
	"semar-etiquetas/repository"
	"semar-etiquetas/service"
)

const (
	pngTTL        = 10 * time.Minute
	purgeInterval = time.Minute
)

// App is the wired application
type App struct {
	Handler http.Handler
	janitor *service.Janitor
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger) (*App, error) {
	reg := prom.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rec := metrics.NewRecorder(reg)

	// Print history goes to Postgres when configured, memory otherwise
	var printJobRepo repository.PrintJobRepositoryInterface
	if cfg.DatabaseURL != "" {
		if err := db.InitDB(ctx, cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		log.Infof("✓ Database connection established")
		printJobRepo = repository.NewPrintJobRepository(db.DB, log)
	} else {
		log.Warnf("⚠️  No database configured, print history is kept in memory")
		printJobRepo = repository.NewMemoryPrintJobRepository()
	}

	// Initialize services
	sessionService := service.NewSessionService(cfg.SessionTTL, cfg.PlacaTitle, log, rec)
	pngStore := service.NewPNGStore(pngTTL)
	printService := service.NewPrintService(cfg.BaseURL, cfg.ChromePath, log, rec)
	printJobService := service.NewPrintJobService(printJobRepo, log, rec)

	janitor, err := service.NewJanitor(purgeInterval, log, map[string]service.Purger{
		"sessions": sessionService,
		"png":      pngStore,
	})
	if err != nil {
		return nil, err
	}

	// Create controllers
	labelController := controller.NewLabelController(
		render.NewRenderer(cfg.Branding),
		printService,
		printJobService,
		pngStore,
		cfg.PlacaTitle,
		cfg.PrintDelay,
		log,
	)
	controllers := &router.Controllers{
		Label:    labelController,
		Session:  controller.NewSessionController(sessionService, labelController, log),
		PrintJob: controller.NewPrintJobController(printJobService, log),
		Metrics:  metrics.Handler(reg),
	}

	mux := http.NewServeMux()
	router.SetupRoutes(mux, controllers)

	janitor.Start()
	return &App{Handler: mux, janitor: janitor}, nil
}

// Close stops background jobs and the database connection
func (a *App) Close() error {
	if err := a.janitor.Stop(); err != nil {
		return fmt.Errorf("failed to stop janitor: %w", err)
	}
	return db.CloseDB()
}
