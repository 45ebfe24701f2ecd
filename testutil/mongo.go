package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDatabase connects to the server named by TEST_MONGO_URI and returns
// a client plus the name of a database unique to this test. The database is
// dropped and the client disconnected when the test finishes.
//
// The test is skipped automatically if TEST_MONGO_URI is not set.
func NewMongoDatabase(t *testing.T) (*mongo.Client, string) {
	t.Helper()

	uri := requireEnv(t, "TEST_MONGO_URI")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("testutil.NewMongoDatabase: connect: %v", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Fatalf("testutil.NewMongoDatabase: ping: %v", err)
	}

	name := fmt.Sprintf("pool_logbook_test_%d", time.Now().UnixNano())
	t.Cleanup(func() {
		ctx := context.Background()
		_ = client.Database(name).Drop(ctx)
		_ = client.Disconnect(ctx)
	})
	return client, name
}
