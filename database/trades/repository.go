package trades

import (
	"fmt"

	models "breakout-screener/database/models_pkg"

	"gorm.io/gorm"
)

// Repository handles the append-only trade ledger. Records are inserted
// exactly once and never updated or deleted.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new trades repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// CreateTrade validates and persists a trade record, filling in the
// generated trade_id. The insert is a single statement, atomic at the
// record level.
func (r *Repository) CreateTrade(trade *models.Trade) error {
	if err := ValidateNewTrade(trade); err != nil {
		return err
	}
	if err := r.db.Create(trade).Error; err != nil {
		return fmt.Errorf("CreateTrade: %w", err)
	}
	return nil
}

// GetAllTrades retrieves the full ledger joined with stock reference data
func (r *Repository) GetAllTrades() ([]models.TradeDetail, error) {
	var rows []models.TradeDetail
	err := r.db.Raw(`
		SELECT
			t.trade_id, t.stock_id, t.trader_name, t.trade_type, t.price,
			t.trade_date, t.units, t.rationale,
			t.option_type, t.strike_price, t.expiration_date, t.option_contracts,
			s.stock_symbol, s.stock_name, s.sector, s.exchange
		FROM trades t
		INNER JOIN stocks s ON t.stock_id = s.stock_id
		ORDER BY t.trade_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetAllTrades: %w", err)
	}
	return rows, nil
}

// GetByTraderAndClass retrieves one trader's trades restricted to a single
// instrument class, joined with stock reference data for the position
// aggregator. The two class predicates are disjoint and exhaustive:
// option_type NULL means equity, non-NULL means option.
func (r *Repository) GetByTraderAndClass(trader string, class models.InstrumentClass) ([]models.TradeDetail, error) {
	predicate := "t.option_type IS NULL"
	if class == models.ClassOption {
		predicate = "t.option_type IS NOT NULL"
	}

	var rows []models.TradeDetail
	err := r.db.Raw(fmt.Sprintf(`
		SELECT
			t.trade_id, t.stock_id, t.trader_name, t.trade_type, t.price,
			t.trade_date, t.units, t.rationale,
			t.option_type, t.strike_price, t.expiration_date, t.option_contracts,
			s.stock_symbol, s.stock_name, s.sector, s.exchange
		FROM trades t
		INNER JOIN stocks s ON t.stock_id = s.stock_id
		WHERE t.trader_name = ? AND %s
		ORDER BY t.trade_id
	`, predicate), trader).Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("GetByTraderAndClass: %w", err)
	}
	return rows, nil
}
