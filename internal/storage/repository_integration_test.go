//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	"github.com/shopspring/decimal"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/tickerpulse/internal/domain/models"
)

// startPostgres spins up a Postgres container and returns a DSN and terminate func.
func startPostgres(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "tickerpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=tickerpulse sslmode=disable", host, port.Port())
		}).WithStartupTimeout(60 * time.Second),
	}

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container start: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", "postgres", "postgres", host, port.Port(), "tickerpulse")
	terminate = func() { _ = container.Terminate(context.Background()) }
	return dsn, terminate
}

func openDB(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	// migrations path relative to this test file (internal/storage → ../../db/migrations)
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate up: %v", err)
	}
}

func record(ticker string, day time.Time, close float64, volume int64) models.TickerRecord {
	return models.TickerRecord{
		Ticker:    ticker,
		TradeDate: day,
		Open:      decimal.NewFromFloat(close - 1),
		High:      decimal.NewFromFloat(close + 1),
		Low:       decimal.NewFromFloat(close - 2),
		Close:     decimal.NewFromFloat(close),
		Volume:    volume,
	}
}

func TestRepository_Integration(t *testing.T) {
	dsn, terminate := startPostgres(t)
	defer terminate()
	db := openDB(t, dsn)
	defer db.Close()
	runMigrations(t, db)

	ctx := context.Background()
	repo := NewHistoryRepository(db)

	base := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	days := []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)}

	t.Run("first upsert inserts all", func(t *testing.T) {
		created, updated, err := repo.UpsertBatch(ctx, []models.TickerRecord{
			record("TEST", days[0], 10.5, 100),
			record("TEST", days[1], 11.0, 200),
			record("TEST", days[2], 12.0, 150),
		})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if created != 3 || updated != 0 {
			t.Fatalf("got created=%d updated=%d, want 3/0", created, updated)
		}
	})

	t.Run("second upsert updates in place", func(t *testing.T) {
		created, updated, err := repo.UpsertBatch(ctx, []models.TickerRecord{
			record("TEST", days[0], 10.7, 110),
			record("TEST", days[1], 11.2, 210),
		})
		if err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if created != 0 || updated != 2 {
			t.Fatalf("got created=%d updated=%d, want 0/2", created, updated)
		}

		var cnt int
		if err := db.QueryRow("SELECT COUNT(*) FROM ticker_history WHERE ticker='TEST'").Scan(&cnt); err != nil {
			t.Fatalf("count: %v", err)
		}
		if cnt != 3 {
			t.Fatalf("expected 3 rows after re-upsert, got %d", cnt)
		}
	})

	t.Run("select history ordering and bounds", func(t *testing.T) {
		recs, err := repo.SelectHistory(ctx, "TEST", nil, nil, 100)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if len(recs) != 3 {
			t.Fatalf("expected 3 records, got %d", len(recs))
		}
		// newest first
		if !recs[0].TradeDate.Equal(days[2]) || !recs[2].TradeDate.Equal(days[0]) {
			t.Fatalf("unexpected order: %v, %v", recs[0].TradeDate, recs[2].TradeDate)
		}
		// re-upserted close survives
		if !recs[2].Close.Equal(decimal.NewFromFloat(10.7)) {
			t.Fatalf("day1 close = %s, want 10.7", recs[2].Close)
		}

		bounded, err := repo.SelectHistory(ctx, "TEST", &days[1], &days[1], 100)
		if err != nil {
			t.Fatalf("select bounded: %v", err)
		}
		if len(bounded) != 1 || !bounded[0].TradeDate.Equal(days[1]) {
			t.Fatalf("bounded select: %+v", bounded)
		}

		limited, err := repo.SelectHistory(ctx, "TEST", nil, nil, 2)
		if err != nil {
			t.Fatalf("select limited: %v", err)
		}
		if len(limited) != 2 {
			t.Fatalf("limit 2 returned %d rows", len(limited))
		}
	})

	t.Run("select unknown ticker is empty", func(t *testing.T) {
		recs, err := repo.SelectHistory(ctx, "GHOST", nil, nil, 100)
		if err != nil {
			t.Fatalf("select: %v", err)
		}
		if len(recs) != 0 {
			t.Fatalf("expected empty, got %d", len(recs))
		}
	})

	t.Run("aggregate by ticker", func(t *testing.T) {
		if _, _, err := repo.UpsertBatch(ctx, []models.TickerRecord{
			record("AAA", days[0], 5.0, 50),
		}); err != nil {
			t.Fatalf("seed AAA: %v", err)
		}

		stats, err := repo.AggregateByTicker(ctx)
		if err != nil {
			t.Fatalf("aggregate: %v", err)
		}
		if len(stats) != 2 {
			t.Fatalf("expected 2 tickers, got %d", len(stats))
		}
		// ordered ascending by ticker
		if stats[0].Ticker != "AAA" || stats[1].Ticker != "TEST" {
			t.Fatalf("unexpected order: %+v", stats)
		}
		if stats[1].RecordCount != 3 {
			t.Fatalf("TEST count = %d, want 3", stats[1].RecordCount)
		}
		if !stats[1].EarliestDate.Equal(days[0]) || !stats[1].LatestDate.Equal(days[2]) {
			t.Fatalf("TEST range = %v..%v", stats[1].EarliestDate, stats[1].LatestDate)
		}
	})
}
