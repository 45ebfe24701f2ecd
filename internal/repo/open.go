package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/pool-logbook/backend/internal/config"
	"github.com/pkordes/pool-logbook/backend/migrations"
)

// Backend is an opened store with its inspector. Close releases the
// underlying connection or database handle.
type Backend struct {
	Driver    string
	Store     Store
	Inspector Inspector
	close     func(context.Context) error
}

// Close releases the backend's resources.
func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Open connects the store selected by cfg.StoreDriver. For Postgres the
// embedded goose migrations are applied before the store is returned, so a
// fresh database is usable immediately.
func Open(ctx context.Context, cfg config.Config, logger *slog.Logger) (*Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverMongo:
		client, err := OpenMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := NewMongoStore(client, cfg.MongoDatabase, cfg.MongoCollection)
		return &Backend{
			Driver:    cfg.StoreDriver,
			Store:     store,
			Inspector: store,
			close:     client.Disconnect,
		}, nil

	case config.DriverPostgres:
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("repo.Open: create pool: %w", err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("repo.Open: ping: %w", err)
		}
		if err := migrate(ctx, pool, logger); err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Driver:    cfg.StoreDriver,
			Store:     NewPostgresStore(pool),
			Inspector: NewPostgresInspector(pool),
			close: func(context.Context) error {
				pool.Close()
				return nil
			},
		}, nil

	case config.DriverBadger:
		db, err := OpenBadger(cfg.BadgerDir, logger)
		if err != nil {
			return nil, err
		}
		store := NewBadgerStore(db)
		return &Backend{
			Driver:    cfg.StoreDriver,
			Store:     store,
			Inspector: store,
			close:     func(context.Context) error { return db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("repo.Open: unknown store driver %q", cfg.StoreDriver)
}

// migrate applies pending migrations through a database/sql view of pool.
func migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("repo.migrate: create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("repo.migrate: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}
