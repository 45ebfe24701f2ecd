package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

const (
	badgerPoolPrefix = "pool/"
	badgerModule     = "github.com/dgraph-io/badger/v3"
	badgerEngine     = "badger"

	// maxTxnRetries bounds the retry loop on optimistic transaction conflicts.
	maxTxnRetries = 5
)

// BadgerStore keeps each pool as a JSON document under "pool/<id>" in an
// embedded Badger database. Ids are UUIDv7, so key order is creation order.
// Every mutation is a read-modify-write inside one Badger transaction.
type BadgerStore struct {
	db      *badger.DB
	started time.Time
}

// OpenBadger opens a Badger database in dir, or in memory when dir is empty.
// Badger's internal logging is routed through logger.
func OpenBadger(dir string, logger *slog.Logger) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	opts = opts.WithLogger(badgerLogger{logger: logger.With("component", "badger")})

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("repo.OpenBadger: %w", err)
	}
	return db, nil
}

// NewBadgerStore constructs a Store over an open Badger database.
func NewBadgerStore(db *badger.DB) *BadgerStore {
	return &BadgerStore{db: db, started: time.Now()}
}

// Create stores the document under a fresh UUIDv7.
func (s *BadgerStore) Create(ctx context.Context, pool domain.Pool) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("repo.BadgerStore.Create: %w", err)
	}
	doc, err := encodeDocument(pool)
	if err != nil {
		return "", fmt.Errorf("repo.BadgerStore.Create: %w", err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(poolKey(id.String()), doc)
	})
	if err != nil {
		return "", fmt.Errorf("repo.BadgerStore.Create: %w", err)
	}
	return id.String(), nil
}

// ReadAll iterates the pool prefix in key order.
func (s *BadgerStore) ReadAll(ctx context.Context) ([]domain.Pool, error) {
	pools := []domain.Pool{}
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerPoolPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			item := it.Item()
			raw, err := item.ValueCopy(nil)
			if err != nil {
				return err
			}
			id := strings.TrimPrefix(string(item.Key()), badgerPoolPrefix)
			p, err := decodeDocument(id, raw)
			if err != nil {
				return err
			}
			pools = append(pools, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("repo.BadgerStore.ReadAll: %w", err)
	}
	return pools, nil
}

// ReadOne loads a single document.
func (s *BadgerStore) ReadOne(ctx context.Context, id string) (domain.Pool, bool, error) {
	key, ok := badgerKey(id)
	if !ok {
		return domain.Pool{}, false, nil
	}
	var (
		pool  domain.Pool
		found bool
	)
	err := s.db.View(func(txn *badger.Txn) error {
		p, ok, err := getPool(txn, key, id)
		pool, found = p, ok
		return err
	})
	if err != nil {
		return domain.Pool{}, false, fmt.Errorf("repo.BadgerStore.ReadOne: %w", err)
	}
	return pool, found, nil
}

// Update applies the patch and writes only when a value changed.
func (s *BadgerStore) Update(ctx context.Context, id string, patch domain.PoolPatch) (bool, error) {
	if patch.IsEmpty() {
		return false, nil
	}
	changed, err := s.mutate(ctx, id, func(p *domain.Pool) bool {
		return patch.Apply(p)
	})
	if err != nil {
		return false, fmt.Errorf("repo.BadgerStore.Update: %w", err)
	}
	return changed, nil
}

// Delete removes one document.
func (s *BadgerStore) Delete(ctx context.Context, id string) (bool, error) {
	key, ok := badgerKey(id)
	if !ok {
		return false, nil
	}
	var existed bool
	err := s.retry(ctx, func(txn *badger.Txn) error {
		existed = false
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		existed = true
		return txn.Delete(key)
	})
	if err != nil {
		return false, fmt.Errorf("repo.BadgerStore.Delete: %w", err)
	}
	return existed, nil
}

// DeleteAll collects every pool key and removes them in one write batch.
func (s *BadgerStore) DeleteAll(ctx context.Context) (int64, error) {
	var keys [][]byte
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(badgerPoolPrefix)
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("repo.BadgerStore.DeleteAll: scan: %w", err)
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for _, k := range keys {
		if err := wb.Delete(k); err != nil {
			return 0, fmt.Errorf("repo.BadgerStore.DeleteAll: %w", err)
		}
	}
	if err := wb.Flush(); err != nil {
		return 0, fmt.Errorf("repo.BadgerStore.DeleteAll: flush: %w", err)
	}
	return int64(len(keys)), nil
}

// AppendLog appends unless the logbook already holds the id.
func (s *BadgerStore) AppendLog(ctx context.Context, poolID string, log domain.PoolLog) (bool, error) {
	appended, err := s.mutate(ctx, poolID, func(p *domain.Pool) bool {
		if _, dup := p.FindLog(log.ID); dup {
			return false
		}
		p.LogMaintenance(log)
		return true
	})
	if err != nil {
		return false, fmt.Errorf("repo.BadgerStore.AppendLog: %w", err)
	}
	return appended, nil
}

// ListLogs returns the logbook of the pool, empty when it does not exist.
func (s *BadgerStore) ListLogs(ctx context.Context, poolID string) ([]domain.PoolLog, error) {
	pool, ok, err := s.ReadOne(ctx, poolID)
	if err != nil {
		return nil, fmt.Errorf("repo.BadgerStore.ListLogs: %w", err)
	}
	if !ok {
		return []domain.PoolLog{}, nil
	}
	return pool.Logbook, nil
}

// GetLog returns the first entry with a matching id.
func (s *BadgerStore) GetLog(ctx context.Context, poolID, logID string) (domain.PoolLog, bool, error) {
	logs, err := s.ListLogs(ctx, poolID)
	if err != nil {
		return domain.PoolLog{}, false, fmt.Errorf("repo.BadgerStore.GetLog: %w", err)
	}
	log, ok := findLog(logs, logID)
	return log, ok, nil
}

// UpdateLog replaces the first matching entry. A match is reported even when
// the replacement equals the stored entry.
func (s *BadgerStore) UpdateLog(ctx context.Context, poolID, logID string, log domain.PoolLog) (bool, error) {
	var matched bool
	_, err := s.mutate(ctx, poolID, func(p *domain.Pool) bool {
		matched = false
		for i := range p.Logbook {
			if p.Logbook[i].ID == logID {
				p.Logbook[i] = log
				matched = true
				return true
			}
		}
		return false
	})
	if err != nil {
		return false, fmt.Errorf("repo.BadgerStore.UpdateLog: %w", err)
	}
	return matched, nil
}

// DeleteLog removes every entry with a matching id.
func (s *BadgerStore) DeleteLog(ctx context.Context, poolID, logID string) (bool, error) {
	removed, err := s.mutate(ctx, poolID, func(p *domain.Pool) bool {
		kept := p.Logbook[:0]
		for _, l := range p.Logbook {
			if l.ID != logID {
				kept = append(kept, l)
			}
		}
		changed := len(kept) != len(p.Logbook)
		p.Logbook = kept
		return changed
	})
	if err != nil {
		return false, fmt.Errorf("repo.BadgerStore.DeleteLog: %w", err)
	}
	return removed, nil
}

// ClearLogs empties a non-empty logbook.
func (s *BadgerStore) ClearLogs(ctx context.Context, poolID string) (bool, error) {
	cleared, err := s.mutate(ctx, poolID, func(p *domain.Pool) bool {
		if len(p.Logbook) == 0 {
			return false
		}
		p.Logbook = []domain.PoolLog{}
		return true
	})
	if err != nil {
		return false, fmt.Errorf("repo.BadgerStore.ClearLogs: %w", err)
	}
	return cleared, nil
}

// mutate loads the pool, applies fn, and writes the document back when fn
// reports a change. It returns false for unknown ids.
func (s *BadgerStore) mutate(ctx context.Context, id string, fn func(*domain.Pool) bool) (bool, error) {
	key, ok := badgerKey(id)
	if !ok {
		return false, nil
	}
	var changed bool
	err := s.retry(ctx, func(txn *badger.Txn) error {
		changed = false
		pool, found, err := getPool(txn, key, id)
		if err != nil || !found {
			return err
		}
		if !fn(&pool) {
			return nil
		}
		doc, err := encodeDocument(pool)
		if err != nil {
			return err
		}
		changed = true
		return txn.Set(key, doc)
	})
	return changed, err
}

// retry runs fn in an update transaction, retrying on write conflicts.
func (s *BadgerStore) retry(ctx context.Context, fn func(*badger.Txn) error) error {
	var err error
	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		err = s.db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return err
}

func getPool(txn *badger.Txn, key []byte, id string) (domain.Pool, bool, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Pool{}, false, nil
	}
	if err != nil {
		return domain.Pool{}, false, err
	}
	raw, err := item.ValueCopy(nil)
	if err != nil {
		return domain.Pool{}, false, err
	}
	pool, err := decodeDocument(id, raw)
	if err != nil {
		return domain.Pool{}, false, err
	}
	return pool, true, nil
}

func poolKey(id string) []byte {
	return []byte(badgerPoolPrefix + id)
}

// badgerKey maps a pool id to its key; ids that are not UUIDs name no pool.
func badgerKey(id string) ([]byte, bool) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, false
	}
	return poolKey(uid.String()), true
}

// Ping fails once the database has been closed.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("repo.BadgerStore.Ping: database is closed")
	}
	return nil
}

// ServerInfo reports the linked Badger module version.
func (s *BadgerStore) ServerInfo(ctx context.Context) (domain.ServerInfo, error) {
	info := domain.ServerInfo{
		Engine:         badgerEngine,
		Version:        "unknown",
		StorageEngines: []string{badgerEngine},
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		info.BuildEnvironment = map[string]any{"go_version": bi.GoVersion}
		for _, dep := range bi.Deps {
			if dep.Path == badgerModule {
				info.Version = dep.Version
				break
			}
		}
	}
	return info, nil
}

// Uptime is the time since the store was constructed.
func (s *BadgerStore) Uptime(ctx context.Context) (float64, error) {
	return time.Since(s.started).Seconds(), nil
}

// StorageStats reports the LSM tree plus value log size.
func (s *BadgerStore) StorageStats(ctx context.Context) (domain.StorageStats, error) {
	lsm, vlog := s.db.Size()
	size := lsm + vlog
	return domain.StorageStats{
		StorageEngine: badgerEngine,
		SizeBytes:     &size,
	}, nil
}

// ConnectionStats is empty; an embedded database has no client connections.
func (s *BadgerStore) ConnectionStats(ctx context.Context) (domain.ConnectionStats, error) {
	return domain.ConnectionStats{}, nil
}

// badgerLogger adapts slog to badger.Logger. Badger is chatty at info level,
// so its info messages are logged at debug.
type badgerLogger struct {
	logger *slog.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

var _ badger.Logger = badgerLogger{}
