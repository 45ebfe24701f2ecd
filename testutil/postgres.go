// Package testutil provides shared helpers for store and integration tests.
// Helpers backed by an external server skip the test when the environment
// variable naming that server is unset; the Badger helper never skips.
package testutil

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/pool-logbook/backend/migrations"
)

// PostgresEnv names the variable holding the Postgres test DSN.
const PostgresEnv = "TEST_DATABASE_URL"

// NewPostgresPool connects to the database named by TEST_DATABASE_URL. The
// pool is closed when the test and its subtests finish.
func NewPostgresPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := requireEnv(t, PostgresEnv)
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("testutil.NewPostgresPool: open pool: %v", err)
	}
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		t.Fatalf("testutil.NewPostgresPool: ping: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

// NewPostgresTx begins a transaction that is rolled back when the test
// finishes, so every pool document written through it disappears again.
// The pools table must already exist (see MigratePostgres).
func NewPostgresTx(t *testing.T) pgx.Tx {
	t.Helper()

	tx, err := NewPostgresPool(t).Begin(context.Background())
	if err != nil {
		t.Fatalf("testutil.NewPostgresTx: begin: %v", err)
	}
	t.Cleanup(func() { _ = tx.Rollback(context.Background()) })
	return tx
}

// NewPostgresSQLDB returns a database/sql view over a test pool, for goose.
func NewPostgresSQLDB(t *testing.T) *sql.DB {
	t.Helper()

	db := stdlib.OpenDBFromPool(NewPostgresPool(t))
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// MigratePostgres applies every pending migration to the database at dsn.
// It is meant for TestMain, where no *testing.T is available.
func MigratePostgres(ctx context.Context, dsn string) error {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return err
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return err
	}
	_, err = provider.Up(ctx)
	return err
}

func requireEnv(t *testing.T, key string) string {
	t.Helper()
	v := os.Getenv(key)
	if v == "" {
		t.Skipf("%s not set; skipping integration test", key)
	}
	return v
}
