package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/facades"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/handlers"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/logger"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/middlewares"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/repositories"
	"github.com/sbilibin2017/gw-rates-dashboard/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-rates-dashboard API
// @version 1.0.0
// @description Gateway for the CBR currency rates dashboard: daily rates, conversion, favorites and analytics
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, boltPath,
		ratesURL, analyticsURL, profileURL, clientID,
		httpTimeoutSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, boltPath,
		ratesURL, analyticsURL, profileURL, clientID,
		httpTimeoutSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, storage and backend configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, boltPath string,
	ratesURL, analyticsURL, profileURL, clientID string,
	httpTimeoutSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Settings storage
	boltPath = getEnv("BOLT_PATH", "dashboard.db")

	// Backend defaults, overridable later through the settings API
	ratesURL = getEnv("RATES_BASE_URL", "http://localhost:8000")
	analyticsURL = getEnv("ANALYTICS_BASE_URL", "http://localhost:8002")
	profileURL = getEnv("PROFILE_BASE_URL", "http://localhost:8001")
	clientID = getEnv("CLIENT_ID", "")

	if httpTimeoutSecond, err = strconv.Atoi(getEnv("HTTP_TIMEOUT_SECOND", "20")); err != nil {
		return
	}

	return
}

// run initializes the logger, settings storage, backend facades and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, boltPath string,
	ratesURL, analyticsURL, profileURL, clientID string,
	httpTimeoutSecond int,
) error {
	// Initialize logger
	log, err := logger.Initialize(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Open settings storage
	db, err := repositories.OpenBolt(boltPath)
	if err != nil {
		log.Errorw("failed to open settings storage", "path", boltPath, "error", err)
		return err
	}
	defer db.Close()

	defaults := models.Settings{
		RatesURL:     ratesURL,
		AnalyticsURL: analyticsURL,
		ProfileURL:   profileURL,
		ClientID:     clientID,
	}
	settingsRepo, err := repositories.NewSettingsRepository(db, defaults)
	if err != nil {
		log.Errorw("failed to initialize settings storage", "error", err)
		return err
	}

	// Shared HTTP client for all backend calls
	client := &http.Client{Timeout: time.Duration(httpTimeoutSecond) * time.Second}

	// Initialize facades
	ratesFacade := facades.NewRatesFacade(client)
	analyticsFacade := facades.NewAnalyticsFacade(client)
	profileFacade := facades.NewProfileFacade(client)
	healthFacade := facades.NewHealthFacade(client)

	// Initialize services
	ratesView := services.NewRatesView(ratesFacade, settingsRepo)
	conversionService := services.NewConversionService(ratesFacade, settingsRepo)
	favoritesService := services.NewFavoritesService(profileFacade, settingsRepo)
	analyticsService := services.NewAnalyticsService(analyticsFacade, profileFacade, settingsRepo)
	healthService := services.NewHealthService(healthFacade, settingsRepo)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api", func(r chi.Router) {
		r.Get("/rates", handlers.NewLoadRatesHandler(ratesView))
		r.Get("/rates/view", handlers.NewRatesViewHandler(ratesView))
		r.Post("/rates/filter", handlers.NewFilterRatesHandler(ratesView))
		r.Post("/rates/sort", handlers.NewSortRatesHandler(ratesView))
		r.Get("/rates/export.csv", handlers.NewExportRatesHandler(ratesView))
		r.Get("/currencies", handlers.NewCurrenciesHandler(ratesView))

		r.Get("/convert", handlers.NewConvertHandler(conversionService))
		r.Post("/convert/swap", handlers.NewSwapHandler(conversionService))

		r.Get("/favorites", handlers.NewListFavoritesHandler(favoritesService))
		r.Post("/favorites", handlers.NewAddFavoriteHandler(favoritesService))
		r.Delete("/favorites/{id}", handlers.NewDeleteFavoriteHandler(favoritesService))

		r.Get("/analytics/volatility", handlers.NewVolatilityHandler(analyticsService))
		r.Get("/analytics/forecast", handlers.NewForecastHandler(analyticsService))
		r.Get("/history", handlers.NewHistoryHandler(analyticsService))

		r.Get("/settings", handlers.NewGetSettingsHandler(settingsRepo))
		r.Put("/settings", handlers.NewSaveSettingsHandler(settingsRepo))
		r.Post("/settings/test", handlers.NewTestSettingsHandler(healthService))
	})

	r.Get("/health", handlers.NewHealthHandler(healthService))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
