package repo

import (
	"encoding/json"
	"fmt"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// encodeDocument serializes a pool for the JSON-document backends (Postgres
// JSONB and Badger). The id lives outside the document, in the primary key.
func encodeDocument(pool domain.Pool) ([]byte, error) {
	pool.ID = ""
	if pool.Logbook == nil {
		pool.Logbook = []domain.PoolLog{}
	}
	b, err := json.Marshal(pool)
	if err != nil {
		return nil, fmt.Errorf("encode pool document: %w", err)
	}
	return b, nil
}

// decodeDocument is the inverse of encodeDocument.
func decodeDocument(id string, raw []byte) (domain.Pool, error) {
	var pool domain.Pool
	if err := json.Unmarshal(raw, &pool); err != nil {
		return domain.Pool{}, fmt.Errorf("decode pool document %s: %w", id, err)
	}
	pool.ID = id
	if pool.Logbook == nil {
		pool.Logbook = []domain.PoolLog{}
	}
	return pool, nil
}

func decodeLogbook(raw []byte) ([]domain.PoolLog, error) {
	logs := []domain.PoolLog{}
	if len(raw) == 0 {
		return logs, nil
	}
	if err := json.Unmarshal(raw, &logs); err != nil {
		return nil, fmt.Errorf("decode logbook: %w", err)
	}
	if logs == nil {
		logs = []domain.PoolLog{}
	}
	return logs, nil
}

// patchDocument renders the set fields of a patch as a JSON object.
func patchDocument(patch domain.PoolPatch) ([]byte, error) {
	fields := patch.Fields()
	m := make(map[string]any, len(fields))
	for _, f := range fields {
		m[f.Name] = f.Value
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode pool patch: %w", err)
	}
	return b, nil
}

func findLog(logs []domain.PoolLog, logID string) (domain.PoolLog, bool) {
	for _, l := range logs {
		if l.ID == logID {
			return l, true
		}
	}
	return domain.PoolLog{}, false
}
