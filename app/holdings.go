package app

import (
	"fmt"

	"breakout-screener/database"
	models "breakout-screener/database/models_pkg"
)

// TradeLedger is the slice of the trades repository the aggregator needs.
type TradeLedger interface {
	GetByTraderAndClass(trader string, class models.InstrumentClass) ([]models.TradeDetail, error)
}

// HoldingsAggregator computes a trader's net open positions from the trade
// ledger, one instrument class at a time. It holds no state of its own;
// every call reflects the ledger as the store sees it at query time.
type HoldingsAggregator struct {
	ledger TradeLedger
}

// NewHoldingsAggregator creates a new holdings aggregator
func NewHoldingsAggregator(ledger TradeLedger) *HoldingsAggregator {
	return &HoldingsAggregator{ledger: ledger}
}

// Holdings returns every stock for which the trader's net position in the
// given instrument class is strictly positive. A closed or over-sold
// position is not a holding. The empty result is valid and means the
// trader holds nothing in that class.
func (a *HoldingsAggregator) Holdings(trader string, class models.InstrumentClass) ([]models.Holding, error) {
	if trader == "" {
		return nil, database.NewValidationError("trader", "must not be empty")
	}
	if !class.Valid() {
		return nil, database.NewValidationErrorWithValue("class", "must be equity or option", string(class))
	}

	trades, err := a.ledger.GetByTraderAndClass(trader, class)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger for %s: %w", trader, err)
	}

	return netPositions(trades), nil
}

// netPositions folds a pre-filtered slice of ledger records into net
// positions per stock: buys add units, sells subtract, and only strictly
// positive sums survive. Output order is the order each stock first
// appears in the ledger.
func netPositions(trades []models.TradeDetail) []models.Holding {
	totals := make(map[int64]*models.Holding)
	order := make([]int64, 0, len(trades))

	for _, t := range trades {
		h, ok := totals[t.StockID]
		if !ok {
			h = &models.Holding{
				StockID:     t.StockID,
				StockSymbol: t.StockSymbol,
				StockName:   t.StockName,
				Sector:      t.Sector,
				Exchange:    t.Exchange,
			}
			totals[t.StockID] = h
			order = append(order, t.StockID)
		}

		switch t.TradeType {
		case "buy":
			h.NetUnits += t.Units
		case "sell":
			h.NetUnits -= t.Units
		}
	}

	holdings := make([]models.Holding, 0, len(order))
	for _, id := range order {
		if h := totals[id]; h.NetUnits > 0 {
			holdings = append(holdings, *h)
		}
	}
	return holdings
}
