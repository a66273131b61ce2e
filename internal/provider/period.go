package provider

// Period is the lookback window requested from the market-data provider.
type Period string

const (
	Period1D  Period = "1d"
	Period5D  Period = "5d"
	Period1Mo Period = "1mo"
	Period3Mo Period = "3mo"
	Period6Mo Period = "6mo"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	Period5Y  Period = "5y"
	Period10Y Period = "10y"
	PeriodYTD Period = "ytd"
	PeriodMax Period = "max"
)

// DefaultPeriod is used when a request does not name a period.
const DefaultPeriod = Period1Y

var validPeriods = map[Period]struct{}{
	Period1D: {}, Period5D: {}, Period1Mo: {}, Period3Mo: {}, Period6Mo: {},
	Period1Y: {}, Period2Y: {}, Period5Y: {}, Period10Y: {}, PeriodYTD: {}, PeriodMax: {},
}

// Valid reports whether p is one of the enumerated lookback windows.
func (p Period) Valid() bool {
	_, ok := validPeriods[p]
	return ok
}

func (p Period) String() string { return string(p) }
