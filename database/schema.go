package database

import (
	"fmt"
	"log"

	models "breakout-screener/database/models_pkg"
)

// InitSchema performs auto-migration and creates the indexes the tag
// syntax cannot express. Stocks and stock_analysis are populated by the
// external provisioning and analysis pipelines; only trades is written
// by this service.
func (d *Database) InitSchema() error {
	log.Println("🔄 Starting database schema initialization...")

	err := d.db.AutoMigrate(
		&models.Stock{},
		&models.StockAnalysis{},
		&models.Trade{},
	)
	if err != nil {
		return fmt.Errorf("auto-migration failed: %w", err)
	}

	// Partial indexes for the holdings partition predicate. The aggregator
	// always filters on trader_name plus option_type IS [NOT] NULL.
	d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trades_trader_equity
		ON trades (trader_name, stock_id)
		WHERE option_type IS NULL
	`)
	d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trades_trader_option
		ON trades (trader_name, stock_id)
		WHERE option_type IS NOT NULL
	`)

	// Ranking index: the top-stocks query orders non-null breakout rows
	// for one date.
	d.db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_analysis_date_breakout
		ON stock_analysis (analysis_date, breakout_percentage DESC)
		WHERE breakout_percentage IS NOT NULL
	`)

	log.Println("✅ Database schema ready")
	return nil
}
