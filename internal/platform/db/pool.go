package db

import (
	"context"
	"fmt"
	"kursapi/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// CreatePoolAndPing opens the connection pool backing the kurs rate
// store and verifies the database is reachable before wiring proceeds.
func CreatePoolAndPing(ctx context.Context, cfg config.DbServer) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to parse kurs store connection string: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create kurs store pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("kurs store unreachable: %w", err)
	}
	logrus.Infof("✅ Kurs store connected (max conns: %d)", poolCfg.MaxConns)
	return pool, nil
}
