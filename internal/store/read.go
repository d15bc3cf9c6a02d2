package store

import (
	"context"
	"fmt"
)

// Record is one persisted row.
type Record struct {
	ID      int64
	Dataset string
	Payload []byte
}

// DatasetInfo summarizes one dataset.
type DatasetInfo struct {
	Name    string `json:"name"`
	Records int64  `json:"records"`
}

// ListByDataset returns all records of a dataset in arrival order
// (ORDER BY id ASC).
//
// Returns an empty slice (not nil) if the dataset has no records.
func (s *Store) ListByDataset(ctx context.Context, datasetName string) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, dataset_name, json_data
		FROM records
		WHERE dataset_name = ?
		ORDER BY id ASC
	`, datasetName)
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		var (
			rec  Record
			data string
		)
		if err := rows.Scan(&rec.ID, &rec.Dataset, &data); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		rec.Payload = []byte(data)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}

	return records, nil
}

// Count returns the number of records in a dataset.
func (s *Store) Count(ctx context.Context, datasetName string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM records WHERE dataset_name = ?
	`, datasetName).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// Datasets lists every dataset with its record count, ordered by name.
func (s *Store) Datasets(ctx context.Context) ([]DatasetInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT dataset_name, COUNT(*)
		FROM records
		GROUP BY dataset_name
		ORDER BY dataset_name COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query datasets: %w", err)
	}
	defer rows.Close()

	infos := []DatasetInfo{}
	for rows.Next() {
		var info DatasetInfo
		if err := rows.Scan(&info.Name, &info.Records); err != nil {
			return nil, fmt.Errorf("scan dataset: %w", err)
		}
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate datasets: %w", err)
	}

	return infos, nil
}
