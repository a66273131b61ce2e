package service

import (
	"context"
	"time"

	"github.com/guttosm/tickerpulse/internal/domain/models"
	"github.com/guttosm/tickerpulse/internal/storage"
)

// QueryService defines the read paths over stored ticker history.
// It never performs writes and never treats absence of rows as an error;
// 404-style semantics belong to the HTTP layer.
type QueryService interface {
	// GetHistory returns records for one ticker, newest first. start/end are
	// inclusive bounds on the trade date when provided; limit caps the count.
	GetHistory(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]models.TickerRecord, error)

	// GetAvailable pairs the configured watchlist with per-ticker storage
	// stats (count, earliest and latest date), tickers ascending.
	GetAvailable(ctx context.Context) (*models.AvailableTickers, error)
}

type queryService struct {
	repo      storage.HistoryRepository
	watchlist []string
}

// NewQueryService builds a QueryService over repo. watchlist is the static
// configured ticker list, passed through by GetAvailable without touching
// the store.
func NewQueryService(repo storage.HistoryRepository, watchlist []string) QueryService {
	return &queryService{repo: repo, watchlist: watchlist}
}

func (s *queryService) GetHistory(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]models.TickerRecord, error) {
	return s.repo.SelectHistory(ctx, ticker, start, end, limit)
}

func (s *queryService) GetAvailable(ctx context.Context) (*models.AvailableTickers, error) {
	stored, err := s.repo.AggregateByTicker(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AvailableTickers{
		Configured: s.watchlist,
		Stored:     stored,
	}, nil
}
