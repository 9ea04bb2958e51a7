package api

import (
	"net/http"

	models "breakout-screener/database/models_pkg"
)

// topStocksResponse carries one page of the breakout ranking plus the
// has-more-pages flag.
type topStocksResponse struct {
	Rows      []models.AnalysisDetail `json:"rows"`
	FinalPage bool                    `json:"finalPage"`
}

// handleGetAnalysis serves GET /analysis/{symbol}?date=YYYY-MM-DD.
// Exactly one row must match: zero rows means no analysis ran for that
// day, and two or more means the (stock, date) uniqueness invariant is
// broken — both surface as 404 rather than a silent pick.
func (s *Server) handleGetAnalysis(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	if symbol == "" {
		respondError(w, http.StatusBadRequest, "stock symbol is required")
		return
	}

	date, err := getDateParam(r, "date")
	if err != nil {
		respondMappedError(w, err)
		return
	}

	rows, err := s.analysis.GetBySymbolAndDate(symbol, date)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	if len(rows) != 1 {
		respondError(w, http.StatusNotFound, "no analysis data found for the given stock symbol and date")
		return
	}

	writeJSON(w, http.StatusOK, rows[0])
}

// handleTopStocks serves GET /analysis/top?date=&page=&size=. It fetches
// size+1 candidate rows and returns only size of them; a short fetch
// proves the page is final without a separate count query.
func (s *Server) handleTopStocks(w http.ResponseWriter, r *http.Request) {
	date, err := getDateParam(r, "date")
	if err != nil {
		respondMappedError(w, err)
		return
	}

	page := getIntParam(r, "page", defaultPage, 1)
	size := getIntParam(r, "size", defaultSize, 1)
	limit, offset := paginate(page, size)

	rows, err := s.analysis.GetTopByBreakout(date, limit+1, offset)
	if err != nil {
		respondMappedError(w, err)
		return
	}

	finalPage := len(rows) < limit+1
	if len(rows) > limit {
		rows = rows[:limit]
	}

	writeJSON(w, http.StatusOK, topStocksResponse{Rows: rows, FinalPage: finalPage})
}
