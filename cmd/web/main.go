package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"congress-tracker/cmd/internal/logger"
	"congress-tracker/cmd/web/companyinfo"
	"congress-tracker/cmd/web/httpclient"
	"congress-tracker/cmd/web/router"
	"congress-tracker/cmd/web/services"
	"congress-tracker/config"
	"congress-tracker/db"
	"congress-tracker/repositories"
)

// @title           Congress Tracker API
// @version         1.0
// @description     Congressional stock trade listings and politician profiles
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := db.Init(ctx, cfg.Mongo); err != nil {
		logger.Log.Errorf("failed to initialize MongoDB: %v", err)
		os.Exit(1)
	}
	logger.Log.Infof("MongoDB connected and indexes ensured (db=%s)", cfg.Mongo.DBName)

	// The ticker cache is read once at startup and saved on shutdown.
	var fetcher companyinfo.Fetcher
	if cfg.CompanyInfo.BaseURL != "" {
		client := httpclient.NewBaseClient(cfg.CompanyInfo.BaseURL, httpclient.New(httpclient.Config{Timeout: 5 * time.Second}))
		fetcher = companyinfo.NewHTTPFetcher(client)
	}
	cache := companyinfo.NewCache(cfg.CompanyInfo.CachePath, fetcher)
	if err := cache.Load(); err != nil {
		logger.Log.Warnf("ticker cache not loaded, starting empty: %v", err)
	}

	trades := repositories.NewTradeRepository(db.Database())
	politicians := repositories.NewPoliticianRepository(db.Database())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r, err := router.New(router.Deps{
		Trades:         services.NewTradeService(trades, cache, cfg.Pagination.PageSize),
		Profiles:       services.NewProfileService(politicians, trades, cache, cfg.Pagination.PageSize),
		Status:         services.NewStatusService(trades, politicians, cache),
		Ping:           db.Ping,
		Registry:       registry,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	if err != nil {
		logger.Log.Errorf("failed to build router: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Errorf("http server error: %v", err)
			stop()
		}
	}()

	// wait for SIGINT/SIGTERM
	<-ctx.Done()
	logger.Log.Info("received shutdown signal, shutting down web service...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorf("http server shutdown: %v", err)
	}
	if err := cache.Save(); err != nil {
		logger.Log.Errorf("failed to save ticker cache: %v", err)
	}
	if err := db.Disconnect(shutdownCtx); err != nil {
		logger.Log.Errorf("mongo disconnect: %v", err)
	}

	logger.Log.Info("web service stopped")
}
