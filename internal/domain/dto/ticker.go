package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tickerpulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// FetchRequest is the body of POST /api/v1/tickers/fetch.
//
// Tickers may be empty to use the configured watchlist; Period defaults to
// "1y" when absent.
type FetchRequest struct {
	Tickers []string `json:"tickers" example:"NVDA,TSM"`
	Period  string   `json:"period" example:"1y"`
}

// FetchResponse mirrors models.IngestionResult on the wire.
type FetchResponse struct {
	Success          bool     `json:"success"`
	Message          string   `json:"message"`
	RecordsCreated   int      `json:"records_created" example:"250"`
	RecordsUpdated   int      `json:"records_updated" example:"0"`
	TickersProcessed int      `json:"tickers_processed" example:"4"`
	Errors           []string `json:"errors"`
}

// NewFetchResponse converts an ingestion result into its API shape.
func NewFetchResponse(res *models.IngestionResult) FetchResponse {
	return FetchResponse{
		Success:          res.Success,
		Message:          res.Message,
		RecordsCreated:   res.RecordsCreated,
		RecordsUpdated:   res.RecordsUpdated,
		TickersProcessed: res.TickersProcessed,
		Errors:           res.Errors,
	}
}

// HistoryRecord is one stored daily observation as returned by
// GET /api/v1/tickers/{ticker}/history. The trade date is serialized
// date-only; prices keep their decimal representation.
type HistoryRecord struct {
	ID          int64           `json:"id"`
	Ticker      string          `json:"ticker" example:"NVDA"`
	Date        string          `json:"date" example:"2024-01-02"`
	Open        decimal.Decimal `json:"open"`
	High        decimal.Decimal `json:"high"`
	Low         decimal.Decimal `json:"low"`
	Close       decimal.Decimal `json:"close"`
	Volume      int64           `json:"volume" example:"41234500"`
	Dividends   decimal.Decimal `json:"dividends"`
	StockSplits decimal.Decimal `json:"stock_splits"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewHistoryRecords converts stored records into their API shape,
// preserving order.
func NewHistoryRecords(records []models.TickerRecord) []HistoryRecord {
	out := make([]HistoryRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, HistoryRecord{
			ID:          rec.ID,
			Ticker:      rec.Ticker,
			Date:        rec.TradeDate.Format(dateLayout),
			Open:        rec.Open,
			High:        rec.High,
			Low:         rec.Low,
			Close:       rec.Close,
			Volume:      rec.Volume,
			Dividends:   rec.Dividends,
			StockSplits: rec.StockSplits,
			CreatedAt:   rec.CreatedAt,
			UpdatedAt:   rec.UpdatedAt,
		})
	}
	return out
}

// TickerInfo summarizes stored coverage for one symbol.
type TickerInfo struct {
	Ticker       string `json:"ticker" example:"NVDA"`
	RecordCount  int64  `json:"record_count" example:"250"`
	EarliestDate string `json:"earliest_date" example:"2023-01-03"`
	LatestDate   string `json:"latest_date" example:"2024-01-02"`
}

// AvailableTickersResponse is the body of GET /api/v1/tickers.
type AvailableTickersResponse struct {
	ConfiguredTickers []string     `json:"configured_tickers"`
	TickersInDatabase []TickerInfo `json:"tickers_in_database"`
}

// NewAvailableTickersResponse converts the availability aggregation into
// its API shape.
func NewAvailableTickersResponse(av *models.AvailableTickers) AvailableTickersResponse {
	stored := make([]TickerInfo, 0, len(av.Stored))
	for _, st := range av.Stored {
		stored = append(stored, TickerInfo{
			Ticker:       st.Ticker,
			RecordCount:  st.RecordCount,
			EarliestDate: st.EarliestDate.Format(dateLayout),
			LatestDate:   st.LatestDate.Format(dateLayout),
		})
	}
	return AvailableTickersResponse{
		ConfiguredTickers: av.Configured,
		TickersInDatabase: stored,
	}
}
