package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListByDataset_ArrivalOrder(t *testing.T) {
	s := createTestStore(t)
	mustAppend(t, s, "employees", `{"department":"HR","n":1}`)
	mustAppend(t, s, "products", `{"price":20}`)
	mustAppend(t, s, "employees", `{"department":"IT","n":2}`)
	mustAppend(t, s, "employees", `{"department":"HR","n":3}`)

	records, err := s.ListByDataset(context.Background(), "employees")
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, int64(1), records[0].ID)
	assert.Equal(t, int64(3), records[1].ID)
	assert.Equal(t, int64(4), records[2].ID)
	for _, r := range records {
		assert.Equal(t, "employees", r.Dataset)
	}
	assert.Equal(t, `{"department":"IT","n":2}`, string(records[1].Payload))
}

func TestListByDataset_UnknownDatasetIsEmpty(t *testing.T) {
	s := createTestStore(t)

	records, err := s.ListByDataset(context.Background(), "missing")
	require.NoError(t, err)
	assert.NotNil(t, records, "should return empty slice, not nil")
	assert.Empty(t, records)
}

func TestListByDataset_CaseSensitive(t *testing.T) {
	s := createTestStore(t)
	mustAppend(t, s, "Employees", `{"a":1}`)
	mustAppend(t, s, "employees", `{"a":2}`)

	upper, err := s.ListByDataset(context.Background(), "Employees")
	require.NoError(t, err)
	assert.Len(t, upper, 1)

	lower, err := s.ListByDataset(context.Background(), "employees")
	require.NoError(t, err)
	assert.Len(t, lower, 1)
}

func TestCount(t *testing.T) {
	s := createTestStore(t)
	mustAppend(t, s, "employees", `{}`)
	mustAppend(t, s, "employees", `{}`)

	n, err := s.Count(context.Background(), "employees")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = s.Count(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDatasets(t *testing.T) {
	s := createTestStore(t)

	infos, err := s.Datasets(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, infos)
	assert.Empty(t, infos)

	mustAppend(t, s, "products", `{}`)
	mustAppend(t, s, "employees", `{}`)
	mustAppend(t, s, "products", `{}`)

	infos, err = s.Datasets(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []DatasetInfo{
		{Name: "employees", Records: 1},
		{Name: "products", Records: 2},
	}, infos)
}
