package store

import (
	"context"
	"fmt"
)

// Append inserts a record into the dataset and returns its assigned id.
// The payload is stored verbatim. Appending to an unknown dataset creates it.
func (s *Store) Append(ctx context.Context, datasetName string, payload []byte) (int64, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO records (dataset_name, json_data)
		VALUES (?, ?)
	`, datasetName, string(payload))
	if err != nil {
		return 0, fmt.Errorf("append record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("append record: last insert id: %w", err)
	}

	return id, nil
}

// AppendBatch inserts several records into one dataset in a single
// transaction. Either every payload is stored or none is.
// Returned ids are in payload order.
func (s *Store) AppendBatch(ctx context.Context, datasetName string, payloads [][]byte) ([]int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("append batch: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (dataset_name, json_data)
		VALUES (?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("append batch: prepare: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(payloads))
	for i, payload := range payloads {
		result, err := stmt.ExecContext(ctx, datasetName, string(payload))
		if err != nil {
			return nil, fmt.Errorf("append batch: record %d: %w", i, err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("append batch: record %d: last insert id: %w", i, err)
		}
		ids = append(ids, id)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("append batch: commit: %w", err)
	}

	return ids, nil
}
