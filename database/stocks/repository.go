package stocks

import (
	"errors"
	"fmt"

	"breakout-screener/database"
	models "breakout-screener/database/models_pkg"

	"gorm.io/gorm"
)

// Repository handles read access to stock reference data
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new stocks repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAllStocks retrieves the full stock reference listing
func (r *Repository) GetAllStocks() ([]models.Stock, error) {
	var stocks []models.Stock
	if err := r.db.Order("stock_id").Find(&stocks).Error; err != nil {
		return nil, fmt.Errorf("GetAllStocks: %w", err)
	}
	return stocks, nil
}

// GetStockBySymbol retrieves a single stock by its unique symbol
func (r *Repository) GetStockBySymbol(symbol string) (*models.Stock, error) {
	var stock models.Stock
	err := r.db.Where("stock_symbol = ?", symbol).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, database.NewNotFoundErrorWithID("stock", symbol)
		}
		return nil, fmt.Errorf("GetStockBySymbol: %w", err)
	}
	return &stock, nil
}
