package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pkordes/pool-logbook/backend/internal/domain"
	"github.com/pkordes/pool-logbook/backend/internal/repo"
	"github.com/pkordes/pool-logbook/backend/testutil"
)

// Documents written by older clients store log ids as BSON binary UUIDs.
// They must read back, update and delete through their string form.
func TestMongoStore_BinaryLogIDs(t *testing.T) {
	client, dbName := testutil.NewMongoDatabase(t)
	ctx := context.Background()
	coll := client.Database(dbName).Collection("pools")
	s := repo.NewMongoStore(client, dbName, "pools")

	logID := uuid.New()
	res, err := coll.InsertOne(ctx, bson.D{
		{Key: "owner_name", Value: "Legacy"},
		{Key: "length", Value: 8.0},
		{Key: "width", Value: 4.0},
		{Key: "depth", Value: 1.5},
		{Key: "type", Value: "Above ground"},
		{Key: "water_volume", Value: 48.0},
		{Key: "logbook", Value: bson.A{bson.D{
			{Key: "id", Value: primitive.Binary{Subtype: 0x04, Data: logID[:]}},
			{Key: "date", Value: "2023-07-01"},
			{Key: "pH_level", Value: 7.3},
			{Key: "chlorine_level", Value: 1.8},
			{Key: "notes", Value: "Imported"},
		}}},
	})
	require.NoError(t, err)
	poolID := res.InsertedID.(primitive.ObjectID).Hex()

	got, ok, err := s.GetLog(ctx, poolID, logID.String())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, logID.String(), got.ID)

	ok, err = s.AppendLog(ctx, poolID, domain.PoolLog{ID: logID.String(), Date: "2023-07-02"})
	require.NoError(t, err)
	assert.False(t, ok, "binary id counts as a duplicate")

	got.Notes = "Re-read"
	ok, err = s.UpdateLog(ctx, poolID, logID.String(), got)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.DeleteLog(ctx, poolID, logID.String())
	require.NoError(t, err)
	assert.True(t, ok)

	logs, err := s.ListLogs(ctx, poolID)
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestMongoStore_Inspector(t *testing.T) {
	client, dbName := testutil.NewMongoDatabase(t)
	ctx := context.Background()
	s := repo.NewMongoStore(client, dbName, "pools")

	require.NoError(t, s.Ping(ctx))

	info, err := s.ServerInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mongodb", info.Engine)
	assert.NotEmpty(t, info.Version)

	uptime, err := s.Uptime(ctx)
	require.NoError(t, err)
	assert.Greater(t, uptime, 0.0)

	conns, err := s.ConnectionStats(ctx)
	require.NoError(t, err)
	assert.NotNil(t, conns.Current)
}
