package db

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"koala/internal/platform/config"
)

// Seed fills in settings that the app expects to exist. Existing values
// are never overwritten, so operators can change rates from the UI.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	_, err := pool.Exec(ctx, `
    INSERT INTO settings (key, value)
    VALUES ('tracker_hourly_rate', $1)
    ON CONFLICT (key) DO NOTHING
  `, strconv.FormatFloat(cfg.TrackerHourlyRate, 'f', 2, 64))
	return err
}
