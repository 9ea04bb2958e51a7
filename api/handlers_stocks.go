package api

import (
	"net/http"
)

// handleGetAllStocks serves GET /stocks/all
func (s *Server) handleGetAllStocks(w http.ResponseWriter, r *http.Request) {
	stocks, err := s.stocks.GetAllStocks()
	if err != nil {
		respondMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stocks)
}

// handleGetStock serves GET /stock/{symbol}
func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "stock symbol is required")
		return
	}

	stock, err := s.stocks.GetStockBySymbol(symbol)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stock)
}

// handleGetBySector serves GET /stocks/sector?date=&sector=
func (s *Server) handleGetBySector(w http.ResponseWriter, r *http.Request) {
	date, err := getDateParam(r, "date")
	if err != nil {
		respondMappedError(w, err)
		return
	}
	sector := r.URL.Query().Get("sector")
	if sector == "" {
		respondError(w, http.StatusBadRequest, "sector is required")
		return
	}

	rows, err := s.analysis.GetBySector(date, sector)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleGetByExchange serves GET /stocks/exchange?date=&exchange=
func (s *Server) handleGetByExchange(w http.ResponseWriter, r *http.Request) {
	date, err := getDateParam(r, "date")
	if err != nil {
		respondMappedError(w, err)
		return
	}
	exchange := r.URL.Query().Get("exchange")
	if exchange == "" {
		respondError(w, http.StatusBadRequest, "exchange is required")
		return
	}

	rows, err := s.analysis.GetByExchange(date, exchange)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// handleGetSingleDate serves GET /stocks/single-date?symbol=&date=.
// A missing row is an ordinary result: the body is JSON null, not a 404.
func (s *Server) handleGetSingleDate(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	date, err := getDateParam(r, "date")
	if err != nil {
		respondMappedError(w, err)
		return
	}

	row, err := s.analysis.GetSingleByDate(symbol, date)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, row)
}

// handleGetMultipleDates serves GET /stocks/multiple-dates?symbol=&startDate=&endDate=
func (s *Server) handleGetMultipleDates(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	startDate, err := getDateParam(r, "startDate")
	if err != nil {
		respondMappedError(w, err)
		return
	}
	endDate, err := getDateParam(r, "endDate")
	if err != nil {
		respondMappedError(w, err)
		return
	}

	rows, err := s.analysis.GetByDateRange(symbol, startDate, endDate)
	if err != nil {
		respondMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
