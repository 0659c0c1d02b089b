package db

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Dali-debug/Jinen/internal/config"
)

func NewDb(ctx context.Context, cfg config.Config) (*Database, error) {
	pool, err := pgxpool.Connect(ctx, cfg.DSN())
	if err != nil {
		return nil, err
	}
	return NewDatabase(pool), nil
}
