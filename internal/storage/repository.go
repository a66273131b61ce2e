package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tickerpulse/internal/domain/models"
)

// UpsertOutcome is the tagged result of a merge-upsert: the store reports
// which branch fired instead of the caller inferring it after the fact.
type UpsertOutcome int

const (
	OutcomeInserted UpsertOutcome = iota
	OutcomeUpdated
)

// HistoryRepository defines the contract for ticker history DB operations.
//
// UpsertBatch is the per-ticker atomicity unit: all records of one batch are
// written in a single transaction, committed on success and rolled back on
// the first failure.
type HistoryRepository interface {
	UpsertBatch(ctx context.Context, records []models.TickerRecord) (created, updated int, err error)
	SelectHistory(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]models.TickerRecord, error)
	AggregateByTicker(ctx context.Context) ([]models.TickerStats, error)
}

type historyRepository struct {
	db *sql.DB
}

func NewHistoryRepository(db *sql.DB) HistoryRepository {
	return &historyRepository{db: db}
}

// upsertQuery merges one record on the (ticker, date) unique key.
// RETURNING (xmax = 0) is true only for freshly inserted rows, which gives
// the Inserted/Updated classification directly from the write.
const upsertQuery = `
	INSERT INTO ticker_history (ticker, date, open, high, low, close, volume, dividends, stock_splits)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (ticker, date)
	DO UPDATE SET open = EXCLUDED.open,
				  high = EXCLUDED.high,
				  low = EXCLUDED.low,
				  close = EXCLUDED.close,
				  volume = EXCLUDED.volume,
				  dividends = EXCLUDED.dividends,
				  stock_splits = EXCLUDED.stock_splits,
				  updated_at = NOW()
	RETURNING (xmax = 0) AS inserted`

// UpsertBatch merges all records in one transaction and reports how many
// ended up inserted vs. updated. On any failure the whole batch is rolled
// back and (0, 0, err) is returned; committed rows from earlier batches are
// unaffected.
func (r *historyRepository) UpsertBatch(ctx context.Context, records []models.TickerRecord) (int, int, error) {
	if len(records) == 0 {
		return 0, 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("begin: %w", err)
	}

	var created, updated int
	for _, rec := range records {
		outcome, err := upsertRecord(ctx, tx, rec)
		if err != nil {
			_ = tx.Rollback()
			return 0, 0, fmt.Errorf("upsert %s %s: %w", rec.Ticker, rec.TradeDate.Format("2006-01-02"), err)
		}
		switch outcome {
		case OutcomeInserted:
			created++
		case OutcomeUpdated:
			updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, fmt.Errorf("commit: %w", err)
	}
	return created, updated, nil
}

// upsertRecord writes one record inside tx and returns which branch fired.
func upsertRecord(ctx context.Context, tx *sql.Tx, rec models.TickerRecord) (UpsertOutcome, error) {
	var inserted bool
	err := tx.QueryRowContext(ctx, upsertQuery,
		rec.Ticker,
		rec.TradeDate,
		rec.Open,
		rec.High,
		rec.Low,
		rec.Close,
		rec.Volume,
		rec.Dividends,
		rec.StockSplits,
	).Scan(&inserted)
	if err != nil {
		return 0, err
	}
	if inserted {
		return OutcomeInserted, nil
	}
	return OutcomeUpdated, nil
}

// SelectHistory returns records for one ticker ordered by date descending.
// start/end are inclusive bounds on the trade date when provided; limit caps
// the result count. No matching rows yields an empty slice, not an error.
func (r *historyRepository) SelectHistory(ctx context.Context, ticker string, start, end *time.Time, limit int) ([]models.TickerRecord, error) {
	// Build dynamic conditions for the date range filters.
	// $1 is always ticker; subsequent placeholders depend on provided dates.
	conditions := "ticker = $1"
	args := []interface{}{ticker}
	if start != nil {
		conditions += fmt.Sprintf(" AND date >= $%d", len(args)+1)
		args = append(args, *start)
	}
	if end != nil {
		conditions += fmt.Sprintf(" AND date <= $%d", len(args)+1)
		args = append(args, *end)
	}
	args = append(args, limit)

	query := fmt.Sprintf(`
		SELECT id, ticker, date, open, high, low, close, volume, dividends, stock_splits, created_at, updated_at
		FROM ticker_history
		WHERE %s
		ORDER BY date DESC
		LIMIT $%d`, conditions, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.TickerRecord{}
	for rows.Next() {
		var rec models.TickerRecord
		var dividends, splits decimal.NullDecimal
		if err := rows.Scan(
			&rec.ID,
			&rec.Ticker,
			&rec.TradeDate,
			&rec.Open,
			&rec.High,
			&rec.Low,
			&rec.Close,
			&rec.Volume,
			&dividends,
			&splits,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		// Schema allows NULL dividends/splits on rows written before those
		// columns existed; expose them as zero.
		if dividends.Valid {
			rec.Dividends = dividends.Decimal
		}
		if splits.Valid {
			rec.StockSplits = splits.Decimal
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AggregateByTicker groups all stored records by ticker, returning count and
// date range per symbol, ordered ascending by ticker.
func (r *historyRepository) AggregateByTicker(ctx context.Context) ([]models.TickerStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ticker, COUNT(*) AS record_count, MIN(date) AS earliest_date, MAX(date) AS latest_date
		FROM ticker_history
		GROUP BY ticker
		ORDER BY ticker`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := []models.TickerStats{}
	for rows.Next() {
		var st models.TickerStats
		if err := rows.Scan(&st.Ticker, &st.RecordCount, &st.EarliestDate, &st.LatestDate); err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}
