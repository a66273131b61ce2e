package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TickerRecord is one stored daily observation for one symbol.
//
// The pair (Ticker, TradeDate) is unique: at most one record per symbol per
// calendar day. Re-ingesting the same day overwrites the price, volume,
// dividend and split fields and refreshes UpdatedAt; CreatedAt is set once
// on first insert and never touched again.
//
// Prices are decimals (numeric(20,6) in Postgres) rather than binary floats,
// so repeated upserts of the same provider data do not drift.
type TickerRecord struct {
	ID          int64           `json:"id"`
	Ticker      string          `json:"ticker"`
	TradeDate   time.Time       `json:"date"`
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Close       decimal.Decimal `json:"close"`
	Volume      int64           `json:"volume"`
	Dividends   decimal.Decimal `json:"dividends"`
	StockSplits decimal.Decimal `json:"stock_splits"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TickerStats summarizes stored coverage for one symbol: how many daily
// records exist and the date range they span.
type TickerStats struct {
	Ticker       string    `json:"ticker"`
	RecordCount  int64     `json:"record_count"`
	EarliestDate time.Time `json:"earliest_date"`
	LatestDate   time.Time `json:"latest_date"`
}

// AvailableTickers pairs the configured watchlist with per-ticker storage
// stats. The two lists are independent: a configured symbol with no stored
// rows appears only in Configured, and callers reconcile them.
type AvailableTickers struct {
	Configured []string      `json:"configured_tickers"`
	Stored     []TickerStats `json:"tickers_in_database"`
}
