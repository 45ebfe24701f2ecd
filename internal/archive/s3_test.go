package archive_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/pool-logbook/backend/internal/archive"
)

// fakeS3 records PutObject requests sent in path style.
type fakeS3 struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	status  int
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if f.status != 0 {
		w.WriteHeader(f.status)
		return
	}
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	f.mu.Lock()
	f.objects[r.URL.Path] = body
	f.types[r.URL.Path] = r.Header.Get("Content-Type")
	f.mu.Unlock()
	w.Header().Set("ETag", `"etag123"`)
	w.WriteHeader(http.StatusOK)
}

func newArchiver(t *testing.T, fake *fakeS3, prefix string) *archive.S3Archiver {
	t.Helper()
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	a, err := archive.NewS3Archiver(context.Background(), archive.Config{
		Bucket:    "pool-exports",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		PathStyle: true,
		Prefix:    prefix,
	}, func(o *s3.Options) {
		o.Credentials = credentials.NewStaticCredentialsProvider("AKIA", "SECRET", "")
	})
	require.NoError(t, err)
	return a
}

func TestS3Archiver_Upload(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	a := newArchiver(t, fake, "exports")

	loc, err := a.Upload(context.Background(), "pools-20240101T000000Z.csv", []byte("pool_id\n"), "text/csv")

	require.NoError(t, err)
	assert.Equal(t, "s3://pool-exports/exports/pools-20240101T000000Z.csv", loc)
	assert.Equal(t, []byte("pool_id\n"), fake.objects["/pool-exports/exports/pools-20240101T000000Z.csv"])
	assert.Equal(t, "text/csv", fake.types["/pool-exports/exports/pools-20240101T000000Z.csv"])
}

func TestS3Archiver_Upload_NoPrefix(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}}
	a := newArchiver(t, fake, "")

	loc, err := a.Upload(context.Background(), "pools.csv", []byte("x"), "text/csv")

	require.NoError(t, err)
	assert.Equal(t, "s3://pool-exports/pools.csv", loc)
	assert.Contains(t, fake.objects, "/pool-exports/pools.csv")
}

func TestS3Archiver_Upload_ServerError(t *testing.T) {
	fake := &fakeS3{objects: map[string][]byte{}, types: map[string]string{}, status: http.StatusForbidden}
	a := newArchiver(t, fake, "")

	_, err := a.Upload(context.Background(), "pools.csv", []byte("x"), "text/csv")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "archive.S3Archiver.Upload")
}

func TestNewS3Archiver_RequiresBucket(t *testing.T) {
	_, err := archive.NewS3Archiver(context.Background(), archive.Config{})

	require.Error(t, err)
}
