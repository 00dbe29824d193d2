package api

import (
	"github.com/calebmori/opsdesk/internal/api/handlers"
	mw "github.com/calebmori/opsdesk/internal/api/middleware"
	"github.com/calebmori/opsdesk/internal/config"
	"github.com/calebmori/opsdesk/internal/domain"
	"github.com/calebmori/opsdesk/internal/service"
	"github.com/calebmori/opsdesk/internal/store"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the router and background services for lifecycle management.
type App struct {
	Router   *chi.Mux
	Recorder *service.Recorder
	Reporter *service.Reporter // nil when running without a database

	Registry *service.Registry
}

// NewApp wires stores, services and handlers. A nil pool is allowed: the API
// stays fully functional and every persistence path degrades to a no-op.
func NewApp(pool *pgxpool.Pool, logger *zap.Logger) *App {
	// Stores (absent without a database)
	var (
		opLogStore       domain.OperationLogStore
		integrationStore domain.IntegrationStore
		metricsStore     domain.MetricsStore
	)
	if pool != nil {
		opLogStore = store.NewOperationLogStore(pool)
		integrationStore = store.NewIntegrationStore(pool)
		metricsStore = store.NewMetricsStore(pool)
	}

	// Prometheus registry is app-owned so repeated NewApp calls in tests
	// never collide on metric registration.
	promReg := prometheus.NewRegistry()
	promReg.MustRegister(collectors.NewGoCollector())
	promReg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := mw.NewMetrics(promReg)

	// Aggregate state and background services
	registry := service.NewRegistry()
	registry.SetOperationHook(metrics.RecordOperation)

	recorder := service.NewRecorder(opLogStore, config.RecorderBuffer(), logger)

	var reporter *service.Reporter
	if metricsStore != nil {
		reporter = service.NewReporter(registry, metricsStore, logger)
		reporter.SetInterval(config.MetricsInterval())
	}

	// Services
	financialSvc := service.NewFinancialService(registry, recorder, logger)
	hrSvc := service.NewHRService(registry, recorder, logger)
	supportSvc := service.NewSupportService(registry, recorder, logger)
	integrationSvc := service.NewIntegrationService(integrationStore, logger)
	analyticsSvc := service.NewAnalyticsService(registry)

	// Handlers
	systemHandler := handlers.NewSystemHandler(registry, integrationSvc)
	financialHandler := handlers.NewFinancialHandler(financialSvc)
	hrHandler := handlers.NewHRHandler(hrSvc)
	supportHandler := handlers.NewSupportHandler(supportSvc)
	integrationHandler := handlers.NewIntegrationHandler(integrationSvc)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsSvc)

	r := chi.NewRouter()

	// Global middleware (order matters)
	r.Use(mw.RequestID)
	r.Use(middleware.RealIP)
	r.Use(metrics.Middleware)
	r.Use(mw.Logging(logger))
	r.Use(middleware.Recoverer)
	r.Use(mw.RateLimit(config.RateLimitRPS(), config.RateLimitBurst()))

	r.Get("/", systemHandler.Root)
	r.Get("/health", systemHandler.Health)
	r.Get("/status", systemHandler.Status)
	r.Get("/agents", systemHandler.Agents)

	r.Post("/financial/process", financialHandler.Process)
	r.Post("/hr/process", hrHandler.Process)
	r.Post("/support/ticket", supportHandler.CreateTicket)

	r.Post("/integrations/api", integrationHandler.Setup)
	r.Get("/integrations", integrationHandler.List)

	r.Get("/analytics/operations", analyticsHandler.Operations)

	r.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))

	return &App{
		Router:   r,
		Recorder: recorder,
		Reporter: reporter,
		Registry: registry,
	}
}

// Start launches the background services.
func (app *App) Start() {
	app.Recorder.Start()
	if app.Reporter != nil {
		app.Reporter.Start()
	}
}

// Stop stops the background services, draining any buffered records.
func (app *App) Stop() {
	if app.Reporter != nil {
		app.Reporter.Stop()
	}
	app.Recorder.Stop()
}

// Ensure stores satisfy the domain interfaces at compile time.
var (
	_ domain.OperationLogStore = (*store.OperationLogStore)(nil)
	_ domain.IntegrationStore  = (*store.IntegrationStore)(nil)
	_ domain.MetricsStore      = (*store.MetricsStore)(nil)
)
