package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresStore keeps each pool as a JSONB document in the pools table.
// Logbook operations are single UPDATE statements over the embedded array.
type PostgresStore struct {
	db db
}

// NewPostgresStore constructs a Store backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPostgresStore(db db) *PostgresStore {
	return &PostgresStore{db: db}
}

// Create inserts the document and returns the generated UUID.
func (s *PostgresStore) Create(ctx context.Context, pool domain.Pool) (string, error) {
	const q = `
		INSERT INTO pools (doc)
		VALUES (@doc::jsonb)
		RETURNING id::text`

	doc, err := encodeDocument(pool)
	if err != nil {
		return "", fmt.Errorf("repo.PostgresStore.Create: %w", err)
	}

	var id string
	if err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"doc": string(doc)}).Scan(&id); err != nil {
		return "", fmt.Errorf("repo.PostgresStore.Create: %w", err)
	}
	return id, nil
}

// ReadAll returns every pool in insertion order.
func (s *PostgresStore) ReadAll(ctx context.Context) ([]domain.Pool, error) {
	const q = `SELECT id::text, doc FROM pools ORDER BY seq`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PostgresStore.ReadAll: %w", err)
	}
	defer rows.Close()

	pools := []domain.Pool{}
	for rows.Next() {
		p, err := scanPool(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PostgresStore.ReadAll: scan: %w", err)
		}
		pools = append(pools, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PostgresStore.ReadAll: rows: %w", err)
	}
	return pools, nil
}

// ReadOne retrieves a pool by primary key.
func (s *PostgresStore) ReadOne(ctx context.Context, id string) (domain.Pool, bool, error) {
	const q = `SELECT id::text, doc FROM pools WHERE id = @id`

	uid, ok := pgID(id)
	if !ok {
		return domain.Pool{}, false, nil
	}
	p, err := scanPool(s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": uid}))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Pool{}, false, nil
	}
	if err != nil {
		return domain.Pool{}, false, fmt.Errorf("repo.PostgresStore.ReadOne: %w", err)
	}
	return p, true, nil
}

// Update merges the patch into the document. The containment guard skips the
// write when every patched value is already stored.
func (s *PostgresStore) Update(ctx context.Context, id string, patch domain.PoolPatch) (bool, error) {
	const q = `
		UPDATE pools
		SET doc = doc || @patch::jsonb
		WHERE id = @id
		  AND NOT doc @> @patch::jsonb`

	uid, ok := pgID(id)
	if !ok || patch.IsEmpty() {
		return false, nil
	}
	doc, err := patchDocument(patch)
	if err != nil {
		return false, fmt.Errorf("repo.PostgresStore.Update: %w", err)
	}
	return s.exec(ctx, "Update", q, pgx.NamedArgs{"id": uid, "patch": string(doc)})
}

// Delete removes a pool by primary key.
func (s *PostgresStore) Delete(ctx context.Context, id string) (bool, error) {
	const q = `DELETE FROM pools WHERE id = @id`

	uid, ok := pgID(id)
	if !ok {
		return false, nil
	}
	return s.exec(ctx, "Delete", q, pgx.NamedArgs{"id": uid})
}

// DeleteAll removes every row.
func (s *PostgresStore) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := s.db.Exec(ctx, `DELETE FROM pools`)
	if err != nil {
		return 0, fmt.Errorf("repo.PostgresStore.DeleteAll: %w", err)
	}
	return tag.RowsAffected(), nil
}

// AppendLog appends to the logbook unless an entry with the same id is present.
func (s *PostgresStore) AppendLog(ctx context.Context, poolID string, log domain.PoolLog) (bool, error) {
	const q = `
		UPDATE pools
		SET doc = jsonb_set(doc, '{logbook}',
		        COALESCE(doc->'logbook', '[]'::jsonb) || jsonb_build_array(@log::jsonb))
		WHERE id = @id
		  AND NOT COALESCE(doc->'logbook', '[]'::jsonb)
		          @> jsonb_build_array(jsonb_build_object('id', @log_id::text))`

	uid, ok := pgID(poolID)
	if !ok {
		return false, nil
	}
	entry, err := json.Marshal(log)
	if err != nil {
		return false, fmt.Errorf("repo.PostgresStore.AppendLog: encode: %w", err)
	}
	return s.exec(ctx, "AppendLog", q, pgx.NamedArgs{
		"id":     uid,
		"log":    string(entry),
		"log_id": log.ID,
	})
}

// ListLogs returns the embedded logbook array.
func (s *PostgresStore) ListLogs(ctx context.Context, poolID string) ([]domain.PoolLog, error) {
	const q = `SELECT COALESCE(doc->'logbook', '[]'::jsonb) FROM pools WHERE id = @id`

	uid, ok := pgID(poolID)
	if !ok {
		return []domain.PoolLog{}, nil
	}
	var raw []byte
	err := s.db.QueryRow(ctx, q, pgx.NamedArgs{"id": uid}).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return []domain.PoolLog{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("repo.PostgresStore.ListLogs: %w", err)
	}
	logs, err := decodeLogbook(raw)
	if err != nil {
		return nil, fmt.Errorf("repo.PostgresStore.ListLogs: %w", err)
	}
	return logs, nil
}

// GetLog returns the first entry with a matching id.
func (s *PostgresStore) GetLog(ctx context.Context, poolID, logID string) (domain.PoolLog, bool, error) {
	logs, err := s.ListLogs(ctx, poolID)
	if err != nil {
		return domain.PoolLog{}, false, fmt.Errorf("repo.PostgresStore.GetLog: %w", err)
	}
	log, ok := findLog(logs, logID)
	return log, ok, nil
}

// UpdateLog overwrites the first entry whose id matches, located by ordinality.
func (s *PostgresStore) UpdateLog(ctx context.Context, poolID, logID string, log domain.PoolLog) (bool, error) {
	const q = `
		UPDATE pools p
		SET doc = jsonb_set(p.doc, ARRAY['logbook', (m.ord - 1)::text], @log::jsonb)
		FROM (
			SELECT e.ord
			FROM pools,
			     jsonb_array_elements(pools.doc->'logbook') WITH ORDINALITY AS e(entry, ord)
			WHERE pools.id = @id
			  AND e.entry->>'id' = @log_id::text
			ORDER BY e.ord
			LIMIT 1
		) m
		WHERE p.id = @id`

	uid, ok := pgID(poolID)
	if !ok {
		return false, nil
	}
	entry, err := json.Marshal(log)
	if err != nil {
		return false, fmt.Errorf("repo.PostgresStore.UpdateLog: encode: %w", err)
	}
	return s.exec(ctx, "UpdateLog", q, pgx.NamedArgs{
		"id":     uid,
		"log":    string(entry),
		"log_id": logID,
	})
}

// DeleteLog rebuilds the logbook without the matching entries.
func (s *PostgresStore) DeleteLog(ctx context.Context, poolID, logID string) (bool, error) {
	const q = `
		UPDATE pools
		SET doc = jsonb_set(doc, '{logbook}', COALESCE((
			SELECT jsonb_agg(e.entry ORDER BY e.ord)
			FROM jsonb_array_elements(doc->'logbook') WITH ORDINALITY AS e(entry, ord)
			WHERE e.entry->>'id' IS DISTINCT FROM @log_id::text
		), '[]'::jsonb))
		WHERE id = @id
		  AND doc->'logbook' @> jsonb_build_array(jsonb_build_object('id', @log_id::text))`

	uid, ok := pgID(poolID)
	if !ok {
		return false, nil
	}
	return s.exec(ctx, "DeleteLog", q, pgx.NamedArgs{"id": uid, "log_id": logID})
}

// ClearLogs empties a non-empty logbook.
func (s *PostgresStore) ClearLogs(ctx context.Context, poolID string) (bool, error) {
	const q = `
		UPDATE pools
		SET doc = jsonb_set(doc, '{logbook}', '[]'::jsonb)
		WHERE id = @id
		  AND COALESCE(doc->'logbook', '[]'::jsonb) <> '[]'::jsonb`

	uid, ok := pgID(poolID)
	if !ok {
		return false, nil
	}
	return s.exec(ctx, "ClearLogs", q, pgx.NamedArgs{"id": uid})
}

func (s *PostgresStore) exec(ctx context.Context, op, q string, args pgx.NamedArgs) (bool, error) {
	tag, err := s.db.Exec(ctx, q, args)
	if err != nil {
		return false, fmt.Errorf("repo.PostgresStore.%s: %w", op, err)
	}
	return tag.RowsAffected() > 0, nil
}

// pgID parses a pool id; anything that is not a UUID names no row.
func pgID(id string) (uuid.UUID, bool) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return uid, true
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanPool to be
// reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

func scanPool(s scanner) (domain.Pool, error) {
	var (
		id  string
		raw []byte
	)
	if err := s.Scan(&id, &raw); err != nil {
		return domain.Pool{}, err
	}
	return decodeDocument(id, raw)
}

// PostgresInspector reports server and pool statistics for the health endpoints.
type PostgresInspector struct {
	pool *pgxpool.Pool
}

// NewPostgresInspector constructs an Inspector over the connection pool.
func NewPostgresInspector(pool *pgxpool.Pool) *PostgresInspector {
	return &PostgresInspector{pool: pool}
}

// Ping acquires a connection and pings the server.
func (i *PostgresInspector) Ping(ctx context.Context) error {
	if err := i.pool.Ping(ctx); err != nil {
		return fmt.Errorf("repo.PostgresInspector.Ping: %w", err)
	}
	return nil
}

// ServerInfo reports the server version and the installed table access methods.
func (i *PostgresInspector) ServerInfo(ctx context.Context) (domain.ServerInfo, error) {
	info := domain.ServerInfo{Engine: "postgres", StorageEngines: []string{}}

	var full, num string
	err := i.pool.QueryRow(ctx,
		`SELECT current_setting('server_version'), version(), current_setting('server_version_num')`,
	).Scan(&info.Version, &full, &num)
	if err != nil {
		return domain.ServerInfo{}, fmt.Errorf("repo.PostgresInspector.ServerInfo: %w", err)
	}
	info.BuildEnvironment = map[string]any{
		"version_string":     full,
		"server_version_num": num,
	}

	rows, err := i.pool.Query(ctx, `SELECT amname FROM pg_am WHERE amtype = 't' ORDER BY amname`)
	if err != nil {
		return domain.ServerInfo{}, fmt.Errorf("repo.PostgresInspector.ServerInfo: access methods: %w", err)
	}
	engines, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return domain.ServerInfo{}, fmt.Errorf("repo.PostgresInspector.ServerInfo: access methods: %w", err)
	}
	info.StorageEngines = append(info.StorageEngines, engines...)
	return info, nil
}

// Uptime is the time since the postmaster started.
func (i *PostgresInspector) Uptime(ctx context.Context) (float64, error) {
	var secs float64
	err := i.pool.QueryRow(ctx,
		`SELECT EXTRACT(EPOCH FROM now() - pg_postmaster_start_time())::float8`,
	).Scan(&secs)
	if err != nil {
		return 0, fmt.Errorf("repo.PostgresInspector.Uptime: %w", err)
	}
	return secs, nil
}

// StorageStats reports the default table access method and the database size.
// Postgres does not expose process memory through SQL, so Memory stays empty.
func (i *PostgresInspector) StorageStats(ctx context.Context) (domain.StorageStats, error) {
	var (
		stats domain.StorageStats
		size  int64
	)
	err := i.pool.QueryRow(ctx,
		`SELECT current_setting('default_table_access_method'), pg_database_size(current_database())`,
	).Scan(&stats.StorageEngine, &size)
	if err != nil {
		return domain.StorageStats{}, fmt.Errorf("repo.PostgresInspector.StorageStats: %w", err)
	}
	stats.SizeBytes = &size
	return stats, nil
}

// ConnectionStats combines server-side backend counts with the pool's own
// lifetime connection counter.
func (i *PostgresInspector) ConnectionStats(ctx context.Context) (domain.ConnectionStats, error) {
	var current, maxConns int64
	err := i.pool.QueryRow(ctx, `
		SELECT (SELECT count(*) FROM pg_stat_activity WHERE datname = current_database()),
		       current_setting('max_connections')::bigint`,
	).Scan(&current, &maxConns)
	if err != nil {
		return domain.ConnectionStats{}, fmt.Errorf("repo.PostgresInspector.ConnectionStats: %w", err)
	}
	available := maxConns - current
	created := i.pool.Stat().NewConnsCount()
	return domain.ConnectionStats{
		Current:      &current,
		Available:    &available,
		TotalCreated: &created,
	}, nil
}
