package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerpulse/internal/domain/dto"
	"github.com/guttosm/tickerpulse/internal/domain/models"
	"github.com/guttosm/tickerpulse/internal/ingestion"
	"github.com/guttosm/tickerpulse/internal/provider"
	"github.com/guttosm/tickerpulse/internal/service"
)

const (
	dateLayout   = "2006-01-02"
	defaultLimit = 100
	maxLimit     = 1000
)

// Ingestor is the slice of the ingestion service the HTTP layer needs.
type Ingestor interface {
	Ingest(ctx context.Context, tickers []string, period provider.Period) (*models.IngestionResult, error)
}

// Handler provides HTTP handlers for the ticker history endpoints.
//
// Responsibilities:
//   - Validate incoming parameters (period, dates, limit)
//   - Translate service results into response DTOs
//   - Map domain conditions to HTTP status codes (404 for empty history,
//     400 for bad input); the services themselves never speak HTTP
type Handler struct {
	ingest Ingestor
	query  service.QueryService
}

// NewHandler constructs a Handler over the ingestion and query services.
func NewHandler(ingest Ingestor, query service.QueryService) *Handler {
	return &Handler{ingest: ingest, query: query}
}

// FetchTickers handles POST /api/v1/tickers/fetch requests.
//
// FetchTickers godoc
// @Summary      Fetch and store ticker history
// @Description  Fetches daily bars from the market-data provider for the given tickers (or the configured watchlist) and merges them into the store
// @Tags         tickers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.FetchRequest  false  "Tickers and period"
// @Success      200      {object}  dto.FetchResponse      "Run completed (possibly with per-ticker errors)"
// @Failure      400      {object}  dto.ErrorResponse      "Invalid period or body"
// @Failure      500      {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/tickers/fetch [post]
func (h *Handler) FetchTickers(c *gin.Context) {
	var req dto.FetchRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	period := provider.Period(req.Period)
	if req.Period == "" {
		period = provider.DefaultPeriod
	}

	res, err := h.ingest.Ingest(c.Request.Context(), req.Tickers, period)
	if err != nil {
		var invalid *ingestion.InvalidPeriodError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid period", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("ingestion failed", err))
		return
	}

	// Per-ticker failures are part of the result body, not an HTTP error:
	// the run itself completed.
	c.JSON(http.StatusOK, dto.NewFetchResponse(res))
}

// GetHistory handles GET /api/v1/tickers/:ticker/history requests.
//
// GetHistory godoc
// @Summary      Get stored history for a ticker
// @Description  Returns stored daily records for one ticker, newest first, optionally bounded by start_date/end_date (inclusive, YYYY-MM-DD)
// @Tags         tickers
// @Produce      json
// @Param        ticker      path      string  true   "Ticker symbol" example(NVDA)
// @Param        start_date  query     string  false  "Inclusive lower bound (YYYY-MM-DD)" example(2024-01-03)
// @Param        end_date    query     string  false  "Inclusive upper bound (YYYY-MM-DD)" example(2024-01-05)
// @Param        limit       query     int     false  "Maximum records (1-1000, default 100)"
// @Success      200         {array}   dto.HistoryRecord      "Success"
// @Failure      400         {object}  dto.ErrorResponse      "Bad Request"
// @Failure      404         {object}  dto.ErrorResponse      "No data for ticker"
// @Failure      500         {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/tickers/{ticker}/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	// Ticker matching is case-sensitive; "2330.TW" and "2330.tw" are
	// different symbols as far as the store is concerned.
	ticker := strings.TrimSpace(c.Param("ticker"))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("ticker is required", nil))
		return
	}

	start, ok := parseDateParam(c, "start_date")
	if !ok {
		return
	}
	end, ok := parseDateParam(c, "end_date")
	if !ok {
		return
	}

	limit := defaultLimit
	if s := c.Query("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > maxLimit {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf("limit must be an integer between 1 and %d", maxLimit), err))
			return
		}
		limit = n
	}

	records, err := h.query.GetHistory(c.Request.Context(), ticker, start, end, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch history", err))
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(fmt.Sprintf("no historical data found for ticker %s", ticker), nil))
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoryRecords(records))
}

// GetAvailable handles GET /api/v1/tickers requests.
//
// GetAvailable godoc
// @Summary      List available tickers
// @Description  Returns the configured watchlist and, independently, per-ticker record counts and date ranges for symbols with stored data
// @Tags         tickers
// @Produce      json
// @Success      200  {object}  dto.AvailableTickersResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse             "Internal Error"
// @Router       /api/v1/tickers [get]
func (h *Handler) GetAvailable(c *gin.Context) {
	av, err := h.query.GetAvailable(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch available tickers", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewAvailableTickersResponse(av))
}

// parseDateParam reads an optional YYYY-MM-DD query parameter. On malformed
// input it writes a 400 response and reports ok=false.
func parseDateParam(c *gin.Context, name string) (*time.Time, bool) {
	s := c.Query(name)
	if s == "" {
		return nil, true
	}
	parsed, err := time.Parse(dateLayout, s)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(fmt.Sprintf("invalid %s format, expected YYYY-MM-DD", name), err))
		return nil, false
	}
	return &parsed, true
}
