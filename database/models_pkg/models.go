package models

import "time"

// InstrumentClass partitions the trade ledger into equities and options.
// Every trade belongs to exactly one class: option_type NULL means equity,
// non-NULL means option.
type InstrumentClass string

const (
	ClassEquity InstrumentClass = "equity"
	ClassOption InstrumentClass = "option"
)

// Valid reports whether the class is one of the two recognized values.
func (c InstrumentClass) Valid() bool {
	return c == ClassEquity || c == ClassOption
}

// Stock represents immutable stock reference data. Rows are provisioned
// externally; this service never writes them.
type Stock struct {
	StockID     int64  `gorm:"column:stock_id;primaryKey;autoIncrement" json:"stock_id"`
	StockName   string `gorm:"column:stock_name;size:100;not null" json:"stock_name"`
	StockSymbol string `gorm:"column:stock_symbol;size:10;uniqueIndex;not null" json:"stock_symbol"`
	Sector      string `gorm:"column:sector;size:50" json:"sector"`
	Exchange    string `gorm:"column:exchange;size:20" json:"exchange"`
}

// TableName specifies the table name for Stock
func (Stock) TableName() string {
	return "stocks"
}

// StockAnalysis represents one precomputed technical-analysis row for a
// (stock, date) pair, written by the external analysis pipeline.
//
// Key Fields:
//   - AnalysisDate: trading day the row describes; at most one row per
//     (stock_id, analysis_date)
//   - BreakoutPercentage: close-price deviation from the fitted trendline,
//     used to rank stocks; NULL when no valid trendline was found
//   - ConsecutiveDaysAboveTrendline / TrendlineAccuracy: NULL together
//     with BreakoutPercentage
//
// The remaining indicator columns (RSI, MACD, Bollinger bands, EMAs,
// volume ratio) are nullable because the pipeline skips them when the
// price history is too short for the indicator window.
type StockAnalysis struct {
	AnalysisID                    int64     `gorm:"column:analysis_id;primaryKey;autoIncrement" json:"analysis_id"`
	StockID                       int64     `gorm:"column:stock_id;index:idx_analysis_stock_date,unique,priority:1;not null" json:"stock_id"`
	AnalysisDate                  time.Time `gorm:"column:analysis_date;type:date;index:idx_analysis_stock_date,unique,priority:2;not null" json:"analysis_date"`
	AnalysisPeriod                string    `gorm:"column:analysis_period;size:20" json:"analysis_period"`
	ClosePrice                    float64   `gorm:"column:close_price;type:decimal(12,2)" json:"close_price"`
	BreakoutPercentage            *float64  `gorm:"column:breakout_percentage;type:decimal(10,4)" json:"breakout_percentage"`
	ConsecutiveDaysAboveTrendline *int      `gorm:"column:consecutive_days_above_trendline" json:"consecutive_days_above_trendline"`
	TrendlineAccuracy             *int      `gorm:"column:trendline_accuracy" json:"trendline_accuracy"`
	RSIValue                      *float64  `gorm:"column:rsi_value;type:decimal(10,4)" json:"rsi_value"`
	MACDValue                     *float64  `gorm:"column:macd_value;type:decimal(10,4)" json:"macd_value"`
	MACDSignal                    *float64  `gorm:"column:macd_signal;type:decimal(10,4)" json:"macd_signal"`
	UpperBollingerBand            *float64  `gorm:"column:upper_bollinger_band;type:decimal(12,4)" json:"upper_bollinger_band"`
	MiddleBollingerBand           *float64  `gorm:"column:middle_bollinger_band;type:decimal(12,4)" json:"middle_bollinger_band"`
	LowerBollingerBand            *float64  `gorm:"column:lower_bollinger_band;type:decimal(12,4)" json:"lower_bollinger_band"`
	VolumeRatio                   *float64  `gorm:"column:volume_ratio;type:decimal(10,4)" json:"volume_ratio"`
	Volume                        *int64    `gorm:"column:volume" json:"volume"`
	NineEMA                       *float64  `gorm:"column:nine_ema;type:decimal(12,4)" json:"nine_ema"`
	TwelveEMA                     *float64  `gorm:"column:twelve_ema;type:decimal(12,4)" json:"twelve_ema"`
	TwentyOneEMA                  *float64  `gorm:"column:twenty_one_ema;type:decimal(12,4)" json:"twenty_one_ema"`
	FiftyEMA                      *float64  `gorm:"column:fifty_ema;type:decimal(12,4)" json:"fifty_ema"`
	CreatedAt                     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for StockAnalysis
func (StockAnalysis) TableName() string {
	return "stock_analysis"
}

// AnalysisDetail is a StockAnalysis row joined with the stock's symbol and
// name, the shape every filtered/ranked analysis read returns. Not a table.
type AnalysisDetail struct {
	StockSymbol string `gorm:"column:stock_symbol" json:"stock_symbol"`
	StockName   string `gorm:"column:stock_name" json:"stock_name"`
	StockAnalysis
}

// Trade represents one record of the append-only trade ledger. Rows are
// never updated or deleted once written.
//
// Key Fields:
//   - TradeType: buy or sell
//   - Units: shares for equity trades, underlying units for option trades
//   - OptionType: NULL for equity trades; call or put for option trades,
//     in which case StrikePrice, ExpirationDate and OptionContracts are
//     required as a group
type Trade struct {
	TradeID         int64      `gorm:"column:trade_id;primaryKey;autoIncrement" json:"trade_id"`
	StockID         int64      `gorm:"column:stock_id;index;not null" json:"stock_id"`
	TraderName      string     `gorm:"column:trader_name;size:100;index;not null" json:"trader_name"`
	TradeType       string     `gorm:"column:trade_type;size:10;not null" json:"trade_type"` // buy, sell
	Price           float64    `gorm:"column:price;type:decimal(12,2);not null" json:"price"`
	TradeDate       time.Time  `gorm:"column:trade_date;type:date;not null" json:"trade_date"`
	Units           int64      `gorm:"column:units;not null" json:"units"`
	Rationale       string     `gorm:"column:rationale;type:text" json:"rationale"`
	OptionType      *string    `gorm:"column:option_type;size:10" json:"option_type,omitempty"` // call, put
	StrikePrice     *float64   `gorm:"column:strike_price;type:decimal(12,2)" json:"strike_price,omitempty"`
	ExpirationDate  *time.Time `gorm:"column:expiration_date;type:date" json:"expiration_date,omitempty"`
	OptionContracts *int       `gorm:"column:option_contracts" json:"option_contracts,omitempty"`
}

// TableName specifies the table name for Trade
func (Trade) TableName() string {
	return "trades"
}

// IsOption reports whether the trade belongs to the option class.
func (t *Trade) IsOption() bool {
	return t.OptionType != nil
}

// TradeDetail is a Trade joined with the stock's reference data, the shape
// the ledger listing and the position aggregator consume. Not a table.
type TradeDetail struct {
	Trade
	StockSymbol string `gorm:"column:stock_symbol" json:"stock_symbol"`
	StockName   string `gorm:"column:stock_name" json:"stock_name"`
	Sector      string `gorm:"column:sector" json:"sector"`
	Exchange    string `gorm:"column:exchange" json:"exchange"`
}

// Holding is a trader's net open position in one stock, derived on demand
// from the ledger. Only strictly positive positions are ever materialized.
type Holding struct {
	StockID     int64  `json:"stock_id"`
	StockSymbol string `json:"stock_symbol"`
	StockName   string `json:"stock_name"`
	Sector      string `json:"sector"`
	Exchange    string `json:"exchange"`
	NetUnits    int64  `json:"net_units"`
}
