package app

import (
	"context"
	"database/sql"
	"log/slog"

	"notes-auth/internal/config"
	"notes-auth/internal/db"
	"notes-auth/internal/redis"

	_ "github.com/lib/pq"
)

// Infra holds the external backends. Either field may be nil: an empty
// DSN or redis address selects the in-memory store for that concern,
// which keeps local development dependency-free.
type Infra struct {
	DB    *db.DB
	Redis *redis.Client
}

func setupInfra(ctx context.Context, cfg config.Config) (*Infra, error) {
	infra := &Infra{}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := sql.Open("postgres", cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}

		if err := sqlDB.PingContext(ctx); err != nil {
			return nil, err
		}

		if err := db.RunMigration(ctx, sqlDB); err != nil {
			return nil, err
		}

		infra.DB = &db.DB{DB: sqlDB}
		slog.InfoContext(ctx, "database ready")
	} else {
		slog.WarnContext(ctx, "no DATABASE_DSN, accounts held in memory")
	}

	if cfg.RedisAddr != "" {
		redisClient, err := redis.New(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, err
		}

		infra.Redis = redisClient
		slog.InfoContext(ctx, "redis ready")
	} else {
		slog.WarnContext(ctx, "no REDIS_ADDR, sessions held in memory")
	}

	return infra, nil
}
