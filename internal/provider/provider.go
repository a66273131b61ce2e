package provider

import (
	"context"
	"time"
)

// Bar is one provider-supplied daily OHLCV observation for a symbol.
//
// Numeric fields are pointers because the provider may omit individual
// points (Yahoo returns JSON nulls inside its arrays); the normalizer in
// the ingestion layer decides what a missing field means. Dividends and
// StockSplits are nil on days without a corporate action.
type Bar struct {
	Timestamp   time.Time
	Open        *float64
	High        *float64
	Low         *float64
	Close       *float64
	Volume      *float64
	Dividends   *float64
	StockSplits *float64
}

// MarketData fetches daily price history for a symbol over a lookback
// period. Bars are returned oldest-to-newest; an empty slice (no error)
// means the symbol has no data for the period.
type MarketData interface {
	History(ctx context.Context, symbol string, period Period) ([]Bar, error)
}
