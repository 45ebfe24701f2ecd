package repo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseBuildInfo(t *testing.T) {
	doc := bson.M{
		"version":          "7.0.4",
		"javascriptEngine": "mozjs",
		"buildEnvironment": bson.D{{Key: "distarch", Value: "x86_64"}},
		"storageEngines":   bson.A{"devnull", "wiredTiger"},
	}

	info := parseBuildInfo(doc)

	assert.Equal(t, "mongodb", info.Engine)
	assert.Equal(t, "7.0.4", info.Version)
	assert.Equal(t, "mozjs", info.JavaScriptEngine)
	assert.Equal(t, "x86_64", info.BuildEnvironment["distarch"])
	assert.Equal(t, []string{"devnull", "wiredTiger"}, info.StorageEngines)
}

func TestParseBuildInfo_Sparse(t *testing.T) {
	info := parseBuildInfo(bson.M{})

	assert.Empty(t, info.Version)
	assert.NotNil(t, info.StorageEngines)
	assert.Nil(t, info.BuildEnvironment)
}

func TestParseStorage(t *testing.T) {
	doc := bson.M{
		"storageEngine": bson.M{"name": "wiredTiger"},
		"mem":           bson.M{"resident": int32(120), "virtual": int64(2048)},
	}

	stats := parseStorage(doc)

	assert.Equal(t, "wiredTiger", stats.StorageEngine)
	require.NotNil(t, stats.Memory.ResidentMB)
	assert.Equal(t, 120.0, *stats.Memory.ResidentMB)
	require.NotNil(t, stats.Memory.VirtualMB)
	assert.Equal(t, 2048.0, *stats.Memory.VirtualMB)
	assert.Nil(t, stats.Memory.MappedMB, "mapped is absent on modern servers")
}

func TestParseConnections(t *testing.T) {
	doc := bson.M{"connections": bson.D{
		{Key: "current", Value: int32(5)},
		{Key: "available", Value: int32(838855)},
		{Key: "totalCreated", Value: int64(41)},
	}}

	stats := parseConnections(doc)

	require.NotNil(t, stats.Current)
	assert.Equal(t, int64(5), *stats.Current)
	require.NotNil(t, stats.Available)
	assert.Equal(t, int64(838855), *stats.Available)
	require.NotNil(t, stats.TotalCreated)
	assert.Equal(t, int64(41), *stats.TotalCreated)
}

func TestParseConnections_Missing(t *testing.T) {
	stats := parseConnections(bson.M{})
	assert.Nil(t, stats.Current)
	assert.Nil(t, stats.Available)
	assert.Nil(t, stats.TotalCreated)
}

func TestLogIDString(t *testing.T) {
	u := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "0f8fad5b-d9cb-469f-a165-70867728950e", "0f8fad5b-d9cb-469f-a165-70867728950e"},
		{"binary subtype 4", primitive.Binary{Subtype: binarySubtypeUUID, Data: u[:]}, u.String()},
		{"binary subtype 3", primitive.Binary{Subtype: binarySubtypeUUIDOld, Data: u[:]}, u.String()},
		{"other binary", primitive.Binary{Subtype: 0x00, Data: []byte{0xab, 0xcd}}, "abcd"},
		{"nil", nil, ""},
		{"number", int32(7), "7"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, logIDString(tc.in))
		})
	}
}

func TestLogIDCandidates(t *testing.T) {
	u := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")

	got := logIDCandidates(u.String())
	require.Len(t, got, 2)
	assert.Equal(t, u.String(), got[0])
	assert.Equal(t, primitive.Binary{Subtype: binarySubtypeUUID, Data: u[:]}, got[1])

	assert.Len(t, logIDCandidates("legacy-7"), 1, "non-uuid ids only match as strings")
}
