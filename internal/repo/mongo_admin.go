package repo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
)

// Ping checks that the primary is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("repo.MongoStore.Ping: %w", err)
	}
	return nil
}

// ServerInfo runs buildInfo against the admin database.
func (s *MongoStore) ServerInfo(ctx context.Context) (domain.ServerInfo, error) {
	doc, err := s.adminCommand(ctx, "buildInfo")
	if err != nil {
		return domain.ServerInfo{}, fmt.Errorf("repo.MongoStore.ServerInfo: %w", err)
	}
	return parseBuildInfo(doc), nil
}

// Uptime reads the uptime field of serverStatus.
func (s *MongoStore) Uptime(ctx context.Context) (float64, error) {
	doc, err := s.adminCommand(ctx, "serverStatus")
	if err != nil {
		return 0, fmt.Errorf("repo.MongoStore.Uptime: %w", err)
	}
	v, ok := number(doc["uptime"])
	if !ok {
		return 0, fmt.Errorf("repo.MongoStore.Uptime: serverStatus has no uptime")
	}
	return v, nil
}

// StorageStats reads storageEngine and mem from serverStatus.
func (s *MongoStore) StorageStats(ctx context.Context) (domain.StorageStats, error) {
	doc, err := s.adminCommand(ctx, "serverStatus")
	if err != nil {
		return domain.StorageStats{}, fmt.Errorf("repo.MongoStore.StorageStats: %w", err)
	}
	return parseStorage(doc), nil
}

// ConnectionStats reads the connections section of serverStatus.
func (s *MongoStore) ConnectionStats(ctx context.Context) (domain.ConnectionStats, error) {
	doc, err := s.adminCommand(ctx, "serverStatus")
	if err != nil {
		return domain.ConnectionStats{}, fmt.Errorf("repo.MongoStore.ConnectionStats: %w", err)
	}
	return parseConnections(doc), nil
}

func (s *MongoStore) adminCommand(ctx context.Context, name string) (bson.M, error) {
	var doc bson.M
	cmd := bson.D{{Key: name, Value: 1}}
	if err := s.client.Database("admin").RunCommand(ctx, cmd).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

func parseBuildInfo(doc bson.M) domain.ServerInfo {
	info := domain.ServerInfo{
		Engine:         "mongodb",
		StorageEngines: []string{},
	}
	info.Version, _ = doc["version"].(string)
	info.JavaScriptEngine, _ = doc["javascriptEngine"].(string)

	if env, ok := subdocument(doc["buildEnvironment"]); ok {
		info.BuildEnvironment = map[string]any(env)
	}
	if engines, ok := doc["storageEngines"].(bson.A); ok {
		for _, e := range engines {
			if name, ok := e.(string); ok {
				info.StorageEngines = append(info.StorageEngines, name)
			}
		}
	}
	return info
}

func parseStorage(doc bson.M) domain.StorageStats {
	var stats domain.StorageStats
	if engine, ok := subdocument(doc["storageEngine"]); ok {
		stats.StorageEngine, _ = engine["name"].(string)
	}
	if mem, ok := subdocument(doc["mem"]); ok {
		stats.Memory.ResidentMB = numberPtr(mem["resident"])
		stats.Memory.VirtualMB = numberPtr(mem["virtual"])
		stats.Memory.MappedMB = numberPtr(mem["mapped"])
	}
	return stats
}

func parseConnections(doc bson.M) domain.ConnectionStats {
	var stats domain.ConnectionStats
	conns, ok := subdocument(doc["connections"])
	if !ok {
		return stats
	}
	stats.Current = intPtr(conns["current"])
	stats.Available = intPtr(conns["available"])
	stats.TotalCreated = intPtr(conns["totalCreated"])
	return stats
}

// subdocument normalizes the decoded forms of an embedded document.
func subdocument(v any) (bson.M, bool) {
	switch d := v.(type) {
	case bson.M:
		return d, true
	case map[string]any:
		return bson.M(d), true
	case bson.D:
		m := make(bson.M, len(d))
		for _, e := range d {
			m[e.Key] = e.Value
		}
		return m, true
	default:
		return nil, false
	}
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case int:
		return float64(n), true
	case primitive.Decimal128:
		f, err := decimalFloat(n)
		return f, err == nil
	default:
		return 0, false
	}
}

func decimalFloat(d primitive.Decimal128) (float64, error) {
	var f float64
	_, err := fmt.Sscan(d.String(), &f)
	return f, err
}

func numberPtr(v any) *float64 {
	f, ok := number(v)
	if !ok {
		return nil
	}
	return &f
}

func intPtr(v any) *int64 {
	f, ok := number(v)
	if !ok {
		return nil
	}
	n := int64(f)
	return &n
}
