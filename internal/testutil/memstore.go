package testutil

import (
	"context"
	"sort"
	"sync"

	"github.com/roach88/datasets/internal/store"
)

// MemStore is an in-memory record store with the same contract as
// store.Store: ids start at 1 and increase, reads return arrival order, and
// an unknown dataset lists as empty.
//
// Set Err to make every call fail with it.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type MemStore struct {
	mu      sync.Mutex
	nextID  int64
	records []store.Record

	Err error
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Append stores a copy of payload and returns its id.
func (m *MemStore) Append(_ context.Context, name string, payload []byte) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	return m.appendLocked(name, payload), nil
}

// AppendBatch stores all payloads or none.
func (m *MemStore) AppendBatch(_ context.Context, name string, payloads [][]byte) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	ids := make([]int64, 0, len(payloads))
	for _, p := range payloads {
		ids = append(ids, m.appendLocked(name, p))
	}
	return ids, nil
}

func (m *MemStore) appendLocked(name string, payload []byte) int64 {
	m.nextID++
	m.records = append(m.records, store.Record{
		ID:      m.nextID,
		Dataset: name,
		Payload: append([]byte(nil), payload...),
	})
	return m.nextID
}

// ListByDataset returns the dataset's records in id order.
func (m *MemStore) ListByDataset(_ context.Context, name string) ([]store.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	out := []store.Record{}
	for _, r := range m.records {
		if r.Dataset == name {
			out = append(out, r)
		}
	}
	return out, nil
}

// Count returns the number of records in a dataset.
func (m *MemStore) Count(_ context.Context, name string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return 0, m.Err
	}
	var n int64
	for _, r := range m.records {
		if r.Dataset == name {
			n++
		}
	}
	return n, nil
}

// Ping returns Err.
func (m *MemStore) Ping() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}

// Datasets returns every dataset with its record count, ordered by name.
func (m *MemStore) Datasets(_ context.Context) ([]store.DatasetInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	counts := map[string]int64{}
	for _, r := range m.records {
		counts[r.Dataset]++
	}
	out := []store.DatasetInfo{}
	for name, n := range counts {
		out = append(out, store.DatasetInfo{Name: name, Records: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Records returns a copy of every stored record in id order.
func (m *MemStore) Records() []store.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]store.Record(nil), m.records...)
}

// Len returns the total number of stored records.
func (m *MemStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.records)
}
