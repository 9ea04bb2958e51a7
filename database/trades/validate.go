package trades

import (
	"breakout-screener/database"
	models "breakout-screener/database/models_pkg"
)

// ValidateNewTrade checks a trade payload before it enters the ledger.
// Once written a record is immutable, so inconsistent rows can never be
// repaired in place.
//
// Option fields travel as a group: a trade with option_type set must also
// carry strike_price, expiration_date and option_contracts, and a trade
// without option_type must carry none of them. Half-specified option
// trades would blur the equity/option partition the holdings aggregation
// is built on.
func ValidateNewTrade(t *models.Trade) error {
	if t.StockID <= 0 {
		return database.NewValidationError("stock_id", "must reference a stock")
	}
	if t.TraderName == "" {
		return database.NewValidationError("trader_name", "must not be empty")
	}
	if t.TradeType != "buy" && t.TradeType != "sell" {
		return database.NewValidationErrorWithValue("trade_type", "must be buy or sell", t.TradeType)
	}
	if t.Price <= 0 {
		return database.NewValidationErrorWithValue("price", "must be positive", t.Price)
	}
	if t.TradeDate.IsZero() {
		return database.NewValidationError("trade_date", "must not be empty")
	}
	if t.Units <= 0 {
		return database.NewValidationErrorWithValue("units", "must be positive", t.Units)
	}
	if t.Rationale == "" {
		return database.NewValidationError("rationale", "must not be empty")
	}

	if t.OptionType == nil {
		if t.StrikePrice != nil {
			return database.NewValidationError("strike_price", "requires option_type")
		}
		if t.ExpirationDate != nil {
			return database.NewValidationError("expiration_date", "requires option_type")
		}
		if t.OptionContracts != nil {
			return database.NewValidationError("option_contracts", "requires option_type")
		}
		return nil
	}

	if *t.OptionType != "call" && *t.OptionType != "put" {
		return database.NewValidationErrorWithValue("option_type", "must be call or put", *t.OptionType)
	}
	if t.StrikePrice == nil {
		return database.NewValidationError("strike_price", "required for option trades")
	}
	if *t.StrikePrice <= 0 {
		return database.NewValidationErrorWithValue("strike_price", "must be positive", *t.StrikePrice)
	}
	if t.ExpirationDate == nil {
		return database.NewValidationError("expiration_date", "required for option trades")
	}
	if t.OptionContracts == nil {
		return database.NewValidationError("option_contracts", "required for option trades")
	}
	if *t.OptionContracts <= 0 {
		return database.NewValidationErrorWithValue("option_contracts", "must be positive", *t.OptionContracts)
	}
	return nil
}
