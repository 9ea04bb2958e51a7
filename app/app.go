package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"breakout-screener/api"
	"breakout-screener/config"
	"breakout-screener/database"
	"breakout-screener/database/analysis"
	"breakout-screener/database/stocks"
	"breakout-screener/database/trades"
)

// App represents the main application
type App struct {
	config       *config.Config
	db           *database.Database
	stockRepo    *stocks.Repository
	analysisRepo *analysis.Repository
	tradeRepo    *trades.Repository
	holdings     *HoldingsAggregator
}

// New creates a new application instance
func New(cfg *config.Config) *App {
	return &App{
		config: cfg,
		db:     nil, // Will be initialized in Start()
	}
}

// Start connects the store, wires the repositories and runs the API
// server until SIGINT/SIGTERM.
func (a *App) Start() error {
	// 1. Database Connection
	log.Println("🗄️  Connecting to database...")
	db, err := database.Connect(
		a.config.DatabaseHost,
		a.config.DatabasePort,
		a.config.DatabaseName,
		a.config.DatabaseUser,
		a.config.DatabasePassword,
	)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	a.db = db

	// 2. Schema initialization
	if err := a.db.InitSchema(); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}

	// 3. Repositories and the position aggregator
	a.stockRepo = stocks.NewRepository(a.db.DB())
	a.analysisRepo = analysis.NewRepository(a.db.DB())
	a.tradeRepo = trades.NewRepository(a.db.DB())
	a.holdings = NewHoldingsAggregator(a.tradeRepo)

	// 4. API server
	apiServer := api.NewServer(a.stockRepo, a.analysisRepo, a.tradeRepo, a.holdings, a.config.CORSOrigin)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", a.config.APIPort),
		Handler: apiServer.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("🚀 API server starting on %s", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		a.closeDB()
		return fmt.Errorf("API server failed: %w", err)
	case sig := <-sigCh:
		log.Printf("📡 Received %s, shutting down...", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		log.Printf("⚠️  Server shutdown failed: %v", err)
	}

	a.closeDB()
	log.Println("✅ Shutdown complete")
	return nil
}

func (a *App) closeDB() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		log.Printf("⚠️  Failed to close database: %v", err)
	}
}
