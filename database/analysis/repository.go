package analysis

import (
	"fmt"
	"time"

	models "breakout-screener/database/models_pkg"

	"gorm.io/gorm"
)

// Repository handles read access to precomputed stock analysis rows.
// All writes come from the external analysis pipeline; this service only
// queries.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new analysis repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetBySymbolAndDate retrieves the analysis rows for a symbol on one date.
// The (stock_id, analysis_date) unique index makes more than one row a
// data defect; the caller enforces the exactly-one contract.
func (r *Repository) GetBySymbolAndDate(symbol string, date time.Time) ([]models.StockAnalysis, error) {
	var rows []models.StockAnalysis
	err := r.db.Raw(`
		SELECT sa.*
		FROM stock_analysis sa
		JOIN stocks s ON sa.stock_id = s.stock_id
		WHERE s.stock_symbol = ? AND sa.analysis_date = ?
	`, symbol, date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetBySymbolAndDate: %w", err)
	}
	return rows, nil
}

// GetTopByBreakout retrieves up to limit analysis rows for one date ranked
// by breakout percentage descending, skipping offset rows. Rows without a
// breakout percentage never rank. The symbol tiebreak keeps pagination
// stable across pages when percentages collide.
func (r *Repository) GetTopByBreakout(date time.Time, limit, offset int) ([]models.AnalysisDetail, error) {
	var rows []models.AnalysisDetail
	err := r.db.Raw(`
		SELECT s.stock_symbol, s.stock_name, sa.*
		FROM stock_analysis sa
		JOIN stocks s ON sa.stock_id = s.stock_id
		WHERE sa.analysis_date = ?
		AND sa.breakout_percentage IS NOT NULL
		ORDER BY sa.breakout_percentage DESC, s.stock_symbol ASC
		LIMIT ? OFFSET ?
	`, date, limit, offset).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetTopByBreakout: %w", err)
	}
	return rows, nil
}

// GetBySector retrieves the analysis rows for one date across a sector
func (r *Repository) GetBySector(date time.Time, sector string) ([]models.AnalysisDetail, error) {
	var rows []models.AnalysisDetail
	err := r.db.Raw(`
		SELECT s.stock_symbol, s.stock_name, sa.*
		FROM stock_analysis sa
		JOIN stocks s ON sa.stock_id = s.stock_id
		WHERE sa.analysis_date = ? AND s.sector = ?
	`, date, sector).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetBySector: %w", err)
	}
	return rows, nil
}

// GetByExchange retrieves the analysis rows for one date across an exchange
func (r *Repository) GetByExchange(date time.Time, exchange string) ([]models.AnalysisDetail, error) {
	var rows []models.AnalysisDetail
	err := r.db.Raw(`
		SELECT s.stock_symbol, s.stock_name, sa.*
		FROM stock_analysis sa
		JOIN stocks s ON sa.stock_id = s.stock_id
		WHERE sa.analysis_date = ? AND s.exchange = ?
	`, date, exchange).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetByExchange: %w", err)
	}
	return rows, nil
}

// GetSingleByDate retrieves one symbol's analysis row for one date, or nil
// when no row exists. Unlike GetBySymbolAndDate the absence of a row is an
// ordinary result here, not a not-found condition.
func (r *Repository) GetSingleByDate(symbol string, date time.Time) (*models.AnalysisDetail, error) {
	var rows []models.AnalysisDetail
	err := r.db.Raw(`
		SELECT s.stock_symbol, s.stock_name, sa.*
		FROM stock_analysis sa
		JOIN stocks s ON sa.stock_id = s.stock_id
		WHERE s.stock_symbol = ? AND sa.analysis_date = ?
	`, symbol, date).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetSingleByDate: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

// GetByDateRange retrieves one symbol's analysis rows between two dates,
// bounds inclusive
func (r *Repository) GetByDateRange(symbol string, startDate, endDate time.Time) ([]models.AnalysisDetail, error) {
	var rows []models.AnalysisDetail
	err := r.db.Raw(`
		SELECT s.stock_symbol, s.stock_name, sa.*
		FROM stock_analysis sa
		JOIN stocks s ON sa.stock_id = s.stock_id
		WHERE s.stock_symbol = ? AND sa.analysis_date BETWEEN ? AND ?
		ORDER BY sa.analysis_date ASC
	`, symbol, startDate, endDate).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetByDateRange: %w", err)
	}
	return rows, nil
}
