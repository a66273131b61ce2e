package ingestion

import (
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/tickerpulse/internal/provider"
)

// errNoData marks a ticker the provider returned zero bars for. It surfaces
// in IngestionResult.Errors as "<ticker>: no data available".
var errNoData = errors.New("no data available")

// InvalidPeriodError rejects an ingestion request before any I/O happens.
type InvalidPeriodError struct {
	Period provider.Period
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid period %q (valid: 1d,5d,1mo,3mo,6mo,1y,2y,5y,10y,ytd,max)", string(e.Period))
}

// MalformedBarError reports a provider bar missing a required numeric field.
// It aborts the affected ticker only; other tickers in the same run proceed.
type MalformedBarError struct {
	Ticker string
	Date   time.Time
	Field  string
}

func (e *MalformedBarError) Error() string {
	return fmt.Sprintf("malformed bar on %s: missing %s", e.Date.Format("2006-01-02"), e.Field)
}
