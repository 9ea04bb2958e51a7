package trades

import (
	"errors"
	"testing"
	"time"

	"breakout-screener/database"
	models "breakout-screener/database/models_pkg"
)

func validEquityTrade() *models.Trade {
	return &models.Trade{
		StockID:    1,
		TraderName: "alice",
		TradeType:  "buy",
		Price:      187.50,
		TradeDate:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Units:      100,
		Rationale:  "breakout above trendline",
	}
}

func validOptionTrade() *models.Trade {
	t := validEquityTrade()
	t.OptionType = strPtr("call")
	t.StrikePrice = floatPtr(190)
	t.ExpirationDate = timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
	t.OptionContracts = intPtr(2)
	return t
}

func TestValidateNewTrade(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Trade)
		wantField string // empty means valid
	}{
		{"valid equity trade", func(tr *models.Trade) {}, ""},
		{"valid option trade", func(tr *models.Trade) {
			tr.OptionType = strPtr("put")
			tr.StrikePrice = floatPtr(180)
			tr.ExpirationDate = timePtr(time.Date(2024, 6, 21, 0, 0, 0, 0, time.UTC))
			tr.OptionContracts = intPtr(1)
		}, ""},
		{"missing stock reference", func(tr *models.Trade) { tr.StockID = 0 }, "stock_id"},
		{"missing trader name", func(tr *models.Trade) { tr.TraderName = "" }, "trader_name"},
		{"unknown trade type", func(tr *models.Trade) { tr.TradeType = "short" }, "trade_type"},
		{"zero price", func(tr *models.Trade) { tr.Price = 0 }, "price"},
		{"missing trade date", func(tr *models.Trade) { tr.TradeDate = time.Time{} }, "trade_date"},
		{"zero units", func(tr *models.Trade) { tr.Units = 0 }, "units"},
		{"negative units", func(tr *models.Trade) { tr.Units = -10 }, "units"},
		{"missing rationale", func(tr *models.Trade) { tr.Rationale = "" }, "rationale"},
		{"strike without option type", func(tr *models.Trade) { tr.StrikePrice = floatPtr(190) }, "strike_price"},
		{"expiration without option type", func(tr *models.Trade) {
			tr.ExpirationDate = timePtr(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
		}, "expiration_date"},
		{"contracts without option type", func(tr *models.Trade) { tr.OptionContracts = intPtr(2) }, "option_contracts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := validEquityTrade()
			tt.mutate(trade)
			err := ValidateNewTrade(trade)
			checkValidation(t, err, tt.wantField)
		})
	}
}

func TestValidateOptionGroup(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*models.Trade)
		wantField string
	}{
		{"complete option group", func(tr *models.Trade) {}, ""},
		{"unknown option type", func(tr *models.Trade) { tr.OptionType = strPtr("straddle") }, "option_type"},
		{"missing strike", func(tr *models.Trade) { tr.StrikePrice = nil }, "strike_price"},
		{"zero strike", func(tr *models.Trade) { tr.StrikePrice = floatPtr(0) }, "strike_price"},
		{"missing expiration", func(tr *models.Trade) { tr.ExpirationDate = nil }, "expiration_date"},
		{"missing contracts", func(tr *models.Trade) { tr.OptionContracts = nil }, "option_contracts"},
		{"zero contracts", func(tr *models.Trade) { tr.OptionContracts = intPtr(0) }, "option_contracts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade := validOptionTrade()
			tt.mutate(trade)
			err := ValidateNewTrade(trade)
			checkValidation(t, err, tt.wantField)
		})
	}
}

func checkValidation(t *testing.T, err error, wantField string) {
	t.Helper()
	if wantField == "" {
		if err != nil {
			t.Fatalf("expected valid trade, got %v", err)
		}
		return
	}
	var vErr *database.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for %s, got %v", wantField, err)
	}
	if vErr.Field != wantField {
		t.Errorf("expected validation on field %s, got %s", wantField, vErr.Field)
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func timePtr(t time.Time) *time.Time { return &t }
