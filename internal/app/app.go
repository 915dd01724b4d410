package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kursapi/internal/adapters/bcaweb"
	"kursapi/internal/adapters/postgres"
	"kursapi/internal/api"
	"kursapi/internal/config"
	"kursapi/internal/kurs"
	"kursapi/internal/kurs/handler"
	"kursapi/internal/platform/db"
	httpserver "kursapi/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// Run wires the application components, starts HTTP server and scheduler
func Run() error {
	appCfg, err := config.Init()
	if err != nil {
		return err
	}
	// Logger
	logrus.SetOutput(os.Stdout)
	if parsedLvl, parseErr := logrus.ParseLevel(appCfg.Logging.Level); parseErr != nil {
		logrus.SetLevel(logrus.InfoLevel)
	} else {
		logrus.SetLevel(parsedLvl)
	}
	logrus.Info("✅ Config initialization successful")

	// Root context bound to OS signals for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Bounded context for startup operations
	startupCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// DB pool
	pool, err := db.CreatePoolAndPing(startupCtx, appCfg.DbServer)
	if err != nil {
		logrus.WithError(err).Error("Error connecting to db")
		return err
	}
	defer pool.Close()
	logrus.Info("✅ Postgres connection successful")

	// Base HTTP client (configurable timeout)
	httpTimeout := time.Duration(appCfg.HTTPClient.TimeoutSeconds) * time.Second
	if httpTimeout <= 0 {
		httpTimeout = 10 * time.Second
	}
	baseHTTPClient := &http.Client{Timeout: httpTimeout}

	// Upstream page client
	rateSource := bcaweb.NewClient(baseHTTPClient, appCfg.Scraper.PageURL)

	// Repository and services
	kursRepo := postgres.NewKursRepository(pool)
	kursService := kurs.NewService(kursRepo)
	dateValidator := kurs.NewDateValidator()
	indexer := kurs.NewIndexer(kursRepo, rateSource)

	// Optional scheduled daily indexing
	if appCfg.Scheduler.Enabled {
		scheduler := kurs.NewScheduler(indexer, appCfg.Scheduler.AtHour, appCfg.Scheduler.AtMin)
		// Ensure scheduler stops before DB pool closes
		defer func() {
			if shutDownErr := scheduler.Shutdown(); shutDownErr != nil {
				logrus.Errorf("Scheduler shutdown error: %v", shutDownErr)
			}
		}()
		if startErr := scheduler.Start(ctx); startErr != nil {
			logrus.WithError(startErr).Error("Failed to start scheduler")
			return startErr
		}
		logrus.Info("✅ Scheduler activation successful")
	}

	// Handlers and router
	kursHandler := handler.NewKursHandler(dateValidator, kursService, indexer)
	router := api.NewRouter(kursHandler)

	logrus.Info("Starting http server")
	// Block until context is canceled, then perform graceful shutdown.
	if serverErr := httpserver.Start(ctx, appCfg.HTTPServer, router); serverErr != nil {
		stop()
		logrus.Errorf("HTTP server error: %v", serverErr)
		return serverErr
	}
	return nil
}
