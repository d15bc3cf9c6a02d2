package dataset

import (
	"context"
	"errors"
	"testing"

	"github.com/roach88/datasets/internal/testutil"
)

var errDiskFull = errors.New("disk full")

// newTestGateway returns a gateway over a fresh in-memory store.
func newTestGateway(t *testing.T) (*Gateway, *testutil.MemStore) {
	t.Helper()
	ms := testutil.NewMemStore()
	return New(ms, testutil.QuietLogger()), ms
}

// newSQLiteGateway returns a gateway over a real SQLite store.
func newSQLiteGateway(t *testing.T) *Gateway {
	t.Helper()
	return New(testutil.OpenStore(t), testutil.QuietLogger())
}

func mustInsert(t *testing.T, g *Gateway, dataset, payload string) int64 {
	t.Helper()
	res, err := g.Insert(context.Background(), dataset, []byte(payload))
	if err != nil {
		t.Fatalf("Insert(%q, %s) failed: %v", dataset, payload, err)
	}
	return res.RecordID
}
