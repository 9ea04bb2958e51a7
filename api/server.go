package api

import (
	"log"
	"net/http"
	"time"

	models "breakout-screener/database/models_pkg"
)

// StockStore provides stock reference reads
type StockStore interface {
	GetAllStocks() ([]models.Stock, error)
	GetStockBySymbol(symbol string) (*models.Stock, error)
}

// AnalysisStore provides reads over precomputed analysis rows
type AnalysisStore interface {
	GetBySymbolAndDate(symbol string, date time.Time) ([]models.StockAnalysis, error)
	GetTopByBreakout(date time.Time, limit, offset int) ([]models.AnalysisDetail, error)
	GetBySector(date time.Time, sector string) ([]models.AnalysisDetail, error)
	GetByExchange(date time.Time, exchange string) ([]models.AnalysisDetail, error)
	GetSingleByDate(symbol string, date time.Time) (*models.AnalysisDetail, error)
	GetByDateRange(symbol string, startDate, endDate time.Time) ([]models.AnalysisDetail, error)
}

// TradeStore provides trade ledger writes and reads
type TradeStore interface {
	CreateTrade(trade *models.Trade) error
	GetAllTrades() ([]models.TradeDetail, error)
}

// HoldingsProvider computes net positions from the ledger
type HoldingsProvider interface {
	Holdings(trader string, class models.InstrumentClass) ([]models.Holding, error)
}

// Server handles HTTP API requests
type Server struct {
	stocks     StockStore
	analysis   AnalysisStore
	trades     TradeStore
	holdings   HoldingsProvider
	corsOrigin string
}

// NewServer creates a new API server instance
func NewServer(stocks StockStore, analysis AnalysisStore, trades TradeStore, holdings HoldingsProvider, corsOrigin string) *Server {
	return &Server{
		stocks:     stocks,
		analysis:   analysis,
		trades:     trades,
		holdings:   holdings,
		corsOrigin: corsOrigin,
	}
}

// Handler builds the routing table with middleware applied. The app
// package owns the http.Server so it can shut the listener down cleanly.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Analysis routes. The literal /analysis/top pattern wins over the
	// {symbol} wildcard in the 1.22 mux.
	mux.HandleFunc("GET /analysis/top", s.handleTopStocks)
	mux.HandleFunc("GET /analysis/{symbol}", s.handleGetAnalysis)

	// Stock reference and filtered analysis routes
	mux.HandleFunc("GET /stocks/all", s.handleGetAllStocks)
	mux.HandleFunc("GET /stocks/sector", s.handleGetBySector)
	mux.HandleFunc("GET /stocks/exchange", s.handleGetByExchange)
	mux.HandleFunc("GET /stocks/single-date", s.handleGetSingleDate)
	mux.HandleFunc("GET /stocks/multiple-dates", s.handleGetMultipleDates)
	mux.HandleFunc("GET /stock/{symbol}", s.handleGetStock)

	// Trade ledger routes
	mux.HandleFunc("POST /trades", s.handleCreateTrade)
	mux.HandleFunc("GET /trades", s.handleGetTrades)
	mux.HandleFunc("GET /trades/holdings/{traderName}", s.handleGetHoldings)

	mux.HandleFunc("GET /health", s.handleHealth)

	return s.corsMiddleware(s.loggingMiddleware(mux))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Middleware
func (s *Server) corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", s.corsOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
