package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/guttosm/tickerpulse/internal/logger"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// YahooClient fetches daily history from the Yahoo Finance chart API
// (GET /v8/finance/chart/{symbol}?interval=1d&range={period}&events=div|split).
type YahooClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// YahooOption configures a YahooClient.
type YahooOption func(*YahooClient)

// NewYahooClient creates a chart API client for the given base URL
// (e.g., "https://query1.finance.yahoo.com").
func NewYahooClient(baseURL string, opts ...YahooOption) *YahooClient {
	c := &YahooClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: logger.With("provider"),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) YahooOption {
	return func(c *YahooClient) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) YahooOption {
	return func(c *YahooClient) {
		c.httpClient = hc
	}
}

// chartResponse mirrors the subset of the Yahoo chart payload we consume.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []quoteBlock `json:"quote"`
	} `json:"indicators"`
	Events *eventsBlock `json:"events"`
}

// quoteBlock holds parallel arrays indexed like Timestamp. Entries may be
// JSON null (halted days, partial sessions), hence the pointer elements.
type quoteBlock struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type eventsBlock struct {
	Dividends map[string]dividendEvent `json:"dividends"`
	Splits    map[string]splitEvent    `json:"splits"`
}

type dividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

type splitEvent struct {
	Numerator   float64 `json:"numerator"`
	Denominator float64 `json:"denominator"`
	Date        int64   `json:"date"`
}

// History fetches daily bars for symbol over period, oldest-to-newest.
// Returns an empty slice when the provider reports no data points, and an
// error for transport failures, non-200 responses, or chart-level errors
// (e.g., unknown symbol).
func (c *YahooClient) History(ctx context.Context, symbol string, period Period) ([]Bar, error) {
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), url.Values{
		"interval": {"1d"},
		"range":    {period.String()},
		"events":   {"div|split"},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	// Yahoo rejects requests without a browser-like agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; tickerpulse/1.0)")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var body chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", symbol, err)
	}

	if e := body.Chart.Error; e != nil {
		return nil, fmt.Errorf("provider error for %s: %s (%s)", symbol, e.Description, e.Code)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: unexpected status %d", symbol, resp.StatusCode)
	}
	if len(body.Chart.Result) == 0 {
		return nil, nil
	}

	bars := resultToBars(body.Chart.Result[0])

	c.log.Debug().
		Str("symbol", symbol).
		Str("period", period.String()).
		Int("bars", len(bars)).
		Dur("elapsed", time.Since(start)).
		Msg("history fetched")

	return bars, nil
}

// resultToBars zips the parallel quote arrays into Bars and attaches
// dividend/split events by calendar day (UTC).
func resultToBars(res chartResult) []Bar {
	if len(res.Timestamp) == 0 || len(res.Indicators.Quote) == 0 {
		return nil
	}
	quote := res.Indicators.Quote[0]

	dividends := map[string]float64{}
	splits := map[string]float64{}
	if res.Events != nil {
		for _, ev := range res.Events.Dividends {
			dividends[dayKey(ev.Date)] = ev.Amount
		}
		for _, ev := range res.Events.Splits {
			if ev.Denominator != 0 {
				splits[dayKey(ev.Date)] = ev.Numerator / ev.Denominator
			}
		}
	}

	bars := make([]Bar, 0, len(res.Timestamp))
	for i, ts := range res.Timestamp {
		bar := Bar{Timestamp: time.Unix(ts, 0).UTC()}
		if i < len(quote.Open) {
			bar.Open = quote.Open[i]
		}
		if i < len(quote.High) {
			bar.High = quote.High[i]
		}
		if i < len(quote.Low) {
			bar.Low = quote.Low[i]
		}
		if i < len(quote.Close) {
			bar.Close = quote.Close[i]
		}
		if i < len(quote.Volume) {
			bar.Volume = quote.Volume[i]
		}
		key := dayKey(ts)
		if amount, ok := dividends[key]; ok {
			a := amount
			bar.Dividends = &a
		}
		if ratio, ok := splits[key]; ok {
			r := ratio
			bar.StockSplits = &r
		}
		bars = append(bars, bar)
	}
	return bars
}

func dayKey(unixSeconds int64) string {
	return time.Unix(unixSeconds, 0).UTC().Format("2006-01-02")
}
