package ingestion

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tickerpulse/internal/provider"
)

func fp(v float64) *float64 { return &v }

func fullBar(ts time.Time) provider.Bar {
	return provider.Bar{
		Timestamp: ts,
		Open:      fp(48.1),
		High:      fp(49.0),
		Low:       fp(47.8),
		Close:     fp(48.7),
		Volume:    fp(1000),
	}
}

func TestNormalizeBar_Coercions(t *testing.T) {
	ts := time.Date(2024, 1, 2, 21, 0, 0, 0, time.FixedZone("EST", -5*3600))
	bar := fullBar(ts)
	bar.Volume = fp(1000.9)
	bar.Dividends = fp(0.04)

	rec, err := NormalizeBar("NVDA", bar)
	if err != nil {
		t.Fatalf("NormalizeBar: %v", err)
	}

	if rec.Ticker != "NVDA" {
		t.Fatalf("ticker = %q", rec.Ticker)
	}
	// Calendar day of the UTC instant; 21:00 EST on Jan 2 is Jan 3 UTC
	want := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	if !rec.TradeDate.Equal(want) {
		t.Fatalf("trade date = %v, want %v", rec.TradeDate, want)
	}
	if rec.Volume != 1000 {
		t.Fatalf("volume should truncate, got %d", rec.Volume)
	}
	if !rec.Open.Equal(decimal.NewFromFloat(48.1)) || !rec.Close.Equal(decimal.NewFromFloat(48.7)) {
		t.Fatalf("unexpected prices: open=%s close=%s", rec.Open, rec.Close)
	}
	if !rec.Dividends.Equal(decimal.NewFromFloat(0.04)) {
		t.Fatalf("dividends = %s", rec.Dividends)
	}
	// Missing splits default to zero
	if !rec.StockSplits.IsZero() {
		t.Fatalf("splits = %s, want 0", rec.StockSplits)
	}
}

func TestNormalizeBar_MissingRequiredField(t *testing.T) {
	ts := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		field  string
		mutate func(*provider.Bar)
	}{
		{"open", func(b *provider.Bar) { b.Open = nil }},
		{"high", func(b *provider.Bar) { b.High = nil }},
		{"low", func(b *provider.Bar) { b.Low = nil }},
		{"close", func(b *provider.Bar) { b.Close = nil }},
		{"volume", func(b *provider.Bar) { b.Volume = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			bar := fullBar(ts)
			tc.mutate(&bar)

			_, err := NormalizeBar("TSM", bar)
			var malformed *MalformedBarError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected MalformedBarError, got %v", err)
			}
			if malformed.Field != tc.field || malformed.Ticker != "TSM" {
				t.Fatalf("unexpected error details: %+v", malformed)
			}
		})
	}
}
