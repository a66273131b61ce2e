package ingestion

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tickerpulse/internal/domain/models"
	"github.com/guttosm/tickerpulse/internal/provider"
)

// NormalizeBar converts one provider bar into a canonical TickerRecord.
//
// Coercions:
//   - open/high/low/close/volume are required; a nil field yields a
//     MalformedBarError naming it.
//   - volume truncates to an integer.
//   - missing dividends or splits default to zero.
//   - the trade date is the calendar day of the bar timestamp in UTC; the
//     source timezone is dropped.
func NormalizeBar(symbol string, bar provider.Bar) (models.TickerRecord, error) {
	day := truncateToDay(bar.Timestamp)

	required := []struct {
		name  string
		value *float64
	}{
		{"open", bar.Open},
		{"high", bar.High},
		{"low", bar.Low},
		{"close", bar.Close},
		{"volume", bar.Volume},
	}
	for _, f := range required {
		if f.value == nil {
			return models.TickerRecord{}, &MalformedBarError{Ticker: symbol, Date: day, Field: f.name}
		}
	}

	rec := models.TickerRecord{
		Ticker:      symbol,
		TradeDate:   day,
		Open:        decimal.NewFromFloat(*bar.Open),
		High:        decimal.NewFromFloat(*bar.High),
		Low:         decimal.NewFromFloat(*bar.Low),
		Close:       decimal.NewFromFloat(*bar.Close),
		Volume:      int64(*bar.Volume),
		Dividends:   decimal.Zero,
		StockSplits: decimal.Zero,
	}
	if bar.Dividends != nil {
		rec.Dividends = decimal.NewFromFloat(*bar.Dividends)
	}
	if bar.StockSplits != nil {
		rec.StockSplits = decimal.NewFromFloat(*bar.StockSplits)
	}
	return rec, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
