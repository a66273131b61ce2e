package ingestion

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/tickerpulse/internal/domain/models"
	"github.com/guttosm/tickerpulse/internal/logger"
	"github.com/guttosm/tickerpulse/internal/provider"
	"github.com/guttosm/tickerpulse/internal/storage"
)

// Service orchestrates per-ticker fetch, normalize and merge-upsert.
//
// Tickers are processed sequentially; each ticker is its own atomicity unit
// (one transaction, committed or rolled back before the next ticker starts),
// so one ticker's failure neither aborts the remaining tickers nor unwinds
// already-committed batches.
type Service struct {
	market    provider.MarketData
	repo      storage.HistoryRepository
	watchlist []string
	log       zerolog.Logger

	// locks serializes concurrent Ingest calls touching the same symbol so
	// the created-vs-updated classification cannot be double-counted.
	locks sync.Map
}

// NewService builds an ingestion service. watchlist is the configured
// default ticker set, used when an Ingest call names no tickers.
func NewService(market provider.MarketData, repo storage.HistoryRepository, watchlist []string) *Service {
	return &Service{
		market:    market,
		repo:      repo,
		watchlist: watchlist,
		log:       logger.With("ingestion"),
	}
}

// Ingest fetches and stores daily history for the given tickers over period.
//
// An invalid period is rejected with InvalidPeriodError before any I/O. An
// empty ticker list falls back to the configured watchlist. The returned
// result always covers the whole run: per-ticker failures are recorded in
// Errors (in processing order) while the remaining tickers are still
// processed.
func (s *Service) Ingest(ctx context.Context, tickers []string, period provider.Period) (*models.IngestionResult, error) {
	if !period.Valid() {
		return nil, &InvalidPeriodError{Period: period}
	}
	if len(tickers) == 0 {
		tickers = s.watchlist
	}

	s.log.Info().Strs("tickers", tickers).Str("period", period.String()).Msg("ingestion start")

	res := &models.IngestionResult{Errors: []string{}}
	for _, symbol := range tickers {
		start := time.Now()
		created, updated, err := s.ingestTicker(ctx, symbol, period)
		if err != nil {
			s.log.Error().Str("ticker", symbol).Dur("elapsed", time.Since(start)).Err(err).Msg("ticker failed")
			res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", symbol, err))
			continue
		}
		res.RecordsCreated += created
		res.RecordsUpdated += updated
		res.TickersProcessed++
		s.log.Info().
			Str("ticker", symbol).
			Int("created", created).
			Int("updated", updated).
			Dur("elapsed", time.Since(start)).
			Msg("ticker done")
	}

	res.Finalize()
	return res, nil
}

// ingestTicker runs the fetch → normalize → upsert pipeline for one symbol.
// All bars are normalized before any write, so a malformed bar aborts the
// ticker with nothing staged; store failures roll back inside UpsertBatch.
func (s *Service) ingestTicker(ctx context.Context, symbol string, period provider.Period) (int, int, error) {
	mu := s.lockFor(symbol)
	mu.Lock()
	defer mu.Unlock()

	bars, err := s.market.History(ctx, symbol, period)
	if err != nil {
		return 0, 0, err
	}
	if len(bars) == 0 {
		return 0, 0, errNoData
	}

	records := make([]models.TickerRecord, 0, len(bars))
	for _, bar := range bars {
		rec, err := NormalizeBar(symbol, bar)
		if err != nil {
			return 0, 0, err
		}
		records = append(records, rec)
	}

	return s.repo.UpsertBatch(ctx, records)
}

func (s *Service) lockFor(symbol string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(symbol, &sync.Mutex{})
	return mu.(*sync.Mutex)
}
