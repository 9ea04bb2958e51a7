package api

import (
	"encoding/json"
	"net/http"
	"time"

	models "breakout-screener/database/models_pkg"
)

// createTradeRequest is the wire shape of a trade payload. Dates travel
// as YYYY-MM-DD strings and are parsed before the record is built.
type createTradeRequest struct {
	StockID         int64    `json:"stock_id"`
	TraderName      string   `json:"trader_name"`
	TradeType       string   `json:"trade_type"`
	Price           float64  `json:"price"`
	TradeDate       string   `json:"trade_date"`
	Units           int64    `json:"units"`
	Rationale       string   `json:"rationale"`
	OptionType      *string  `json:"option_type"`
	StrikePrice     *float64 `json:"strike_price"`
	ExpirationDate  *string  `json:"expiration_date"`
	OptionContracts *int     `json:"option_contracts"`
}

// handleCreateTrade serves POST /trades. The payload is validated before
// the insert; the ledger is append-only so a bad row can never be fixed
// after the fact.
func (s *Server) handleCreateTrade(w http.ResponseWriter, r *http.Request) {
	var req createTradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid trade payload: "+err.Error())
		return
	}

	tradeDate, err := time.Parse(dateLayout, req.TradeDate)
	if err != nil {
		respondError(w, http.StatusBadRequest, "trade_date must be YYYY-MM-DD")
		return
	}

	var expirationDate *time.Time
	if req.ExpirationDate != nil {
		exp, err := time.Parse(dateLayout, *req.ExpirationDate)
		if err != nil {
			respondError(w, http.StatusBadRequest, "expiration_date must be YYYY-MM-DD")
			return
		}
		expirationDate = &exp
	}

	trade := models.Trade{
		StockID:         req.StockID,
		TraderName:      req.TraderName,
		TradeType:       req.TradeType,
		Price:           req.Price,
		TradeDate:       tradeDate,
		Units:           req.Units,
		Rationale:       req.Rationale,
		OptionType:      req.OptionType,
		StrikePrice:     req.StrikePrice,
		ExpirationDate:  expirationDate,
		OptionContracts: req.OptionContracts,
	}

	if err := s.trades.CreateTrade(&trade); err != nil {
		respondMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Trade created successfully",
		"trade":   trade,
	})
}

// handleGetTrades serves GET /trades. The ledger listing is the one
// response cheap enough and stable enough to advertise as cacheable.
func (s *Server) handleGetTrades(w http.ResponseWriter, r *http.Request) {
	trades, err := s.trades.GetAllTrades()
	if err != nil {
		respondMappedError(w, err)
		return
	}

	w.Header().Set("Cache-Control", "public, max-age=300, stale-while-revalidate=60")
	writeJSON(w, http.StatusOK, trades)
}

// handleGetHoldings serves GET /trades/holdings/{traderName}?trade_type=.
// trade_type selects the instrument class: "stock" for equity positions,
// "options" for option positions. An empty result maps to 404 — this
// API treats "no positive holdings" as a not-found condition.
func (s *Server) handleGetHoldings(w http.ResponseWriter, r *http.Request) {
	trader := r.PathValue("traderName")
	if trader == "" {
		respondError(w, http.StatusBadRequest, "trader name is required")
		return
	}

	tradeType := r.URL.Query().Get("trade_type")
	var class models.InstrumentClass
	switch tradeType {
	case "stock":
		class = models.ClassEquity
	case "options":
		class = models.ClassOption
	case "":
		respondError(w, http.StatusBadRequest, "trade_type is required")
		return
	default:
		respondError(w, http.StatusBadRequest, "trade_type must be stock or options")
		return
	}

	holdings, err := s.holdings.Holdings(trader, class)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	if len(holdings) == 0 {
		respondError(w, http.StatusNotFound, "no holdings found for trader "+trader)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trader":     trader,
		"trade_type": tradeType,
		"holdings":   holdings,
	})
}
