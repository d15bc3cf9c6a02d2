// Package dataset is the façade between the outer surfaces (HTTP, CLI) and
// the record store and query engine.
//
// The gateway owns input validation and the existence/emptiness signalling:
// a groupBy against a dataset with no records is DATASET_NOT_FOUND, while a
// sortBy against the same dataset returns an empty list.
package dataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tidwall/gjson"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/datasets/internal/apperr"
	"github.com/roach88/datasets/internal/store"
	"github.com/roach88/datasets/internal/value"
)

// InsertedMessage is reported on every successful insert.
const InsertedMessage = "Record added successfully"

// RecordStore is the storage the gateway needs. *store.Store implements it.
type RecordStore interface {
	Append(ctx context.Context, datasetName string, payload []byte) (int64, error)
	AppendBatch(ctx context.Context, datasetName string, payloads [][]byte) ([]int64, error)
	ListByDataset(ctx context.Context, datasetName string) ([]store.Record, error)
	Count(ctx context.Context, datasetName string) (int64, error)
	Datasets(ctx context.Context) ([]store.DatasetInfo, error)
	Ping() error
}

// Gateway translates insert/query requests into store and engine calls.
// Safe for concurrent use.
type Gateway struct {
	store  RecordStore
	logger *slog.Logger
}

// New creates a Gateway. A nil logger uses slog.Default().
func New(st RecordStore, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: st, logger: logger}
}

// Inserted is the response to a successful insert.
type Inserted struct {
	Message  string `json:"message"`
	Dataset  string `json:"dataset"`
	RecordID int64  `json:"recordId"`
}

// Insert validates raw as a JSON object and appends it verbatim to the
// dataset, creating the dataset if needed.
func (g *Gateway) Insert(ctx context.Context, datasetName string, raw []byte) (Inserted, error) {
	name, err := normalizeName(datasetName)
	if err != nil {
		return Inserted{}, err
	}
	if err := validateObject(raw); err != nil {
		return Inserted{}, err
	}

	g.logger.Info("inserting record", "dataset", name)
	g.logger.Debug("record size", "dataset", name, "bytes", len(raw))

	id, err := g.store.Append(ctx, name, raw)
	if err != nil {
		return Inserted{}, apperr.Wrap(apperr.CodeStorageFault, "append record", err)
	}

	g.logger.Info("record inserted", "dataset", name, "record_id", id)
	return Inserted{Message: InsertedMessage, Dataset: name, RecordID: id}, nil
}

// InsertMany validates every payload before writing any, then appends them
// in one transaction. Ids are returned in payload order.
func (g *Gateway) InsertMany(ctx context.Context, datasetName string, payloads [][]byte) ([]int64, error) {
	name, err := normalizeName(datasetName)
	if err != nil {
		return nil, err
	}
	for i, raw := range payloads {
		if err := validateObject(raw); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}

	g.logger.Info("inserting records", "dataset", name, "count", len(payloads))

	ids, err := g.store.AppendBatch(ctx, name, payloads)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageFault, "append records", err)
	}
	return ids, nil
}

// Datasets lists known datasets with their record counts.
func (g *Gateway) Datasets(ctx context.Context) ([]store.DatasetInfo, error) {
	infos, err := g.store.Datasets(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageFault, "list datasets", err)
	}
	return infos, nil
}

// Dataset reports the record count of one dataset. An unknown dataset
// reports zero records.
func (g *Gateway) Dataset(ctx context.Context, datasetName string) (store.DatasetInfo, error) {
	name, err := normalizeName(datasetName)
	if err != nil {
		return store.DatasetInfo{}, err
	}
	n, err := g.store.Count(ctx, name)
	if err != nil {
		return store.DatasetInfo{}, apperr.Wrap(apperr.CodeStorageFault, "count records", err)
	}
	return store.DatasetInfo{Name: name, Records: n}, nil
}

// Ping checks that the store is reachable.
func (g *Gateway) Ping() error {
	if err := g.store.Ping(); err != nil {
		return apperr.Wrap(apperr.CodeStorageFault, "ping store", err)
	}
	return nil
}

// normalizeName rejects empty names and NFC-normalizes the rest.
// Case is preserved: dataset names are case-sensitive.
func normalizeName(name string) (string, error) {
	if name == "" {
		return "", apperr.New(apperr.CodeBadRequest, "dataset name must not be empty")
	}
	return norm.NFC.String(name), nil
}

// validateObject checks that raw is exactly one well-formed JSON object
// that value.Decode will accept when the record is read back.
func validateObject(raw []byte) error {
	if !gjson.ValidBytes(raw) {
		return apperr.New(apperr.CodeMalformedPayload, "request body is not valid JSON")
	}
	if !gjson.ParseBytes(raw).IsObject() {
		return apperr.New(apperr.CodeMalformedPayload, "request body must be a JSON object")
	}
	if _, err := value.Decode(raw); err != nil {
		return err
	}
	return nil
}

// decodeRecords decodes stored payloads in order.
func decodeRecords(records []store.Record) ([]value.Object, error) {
	decoded := make([]value.Object, 0, len(records))
	for _, rec := range records {
		obj, err := value.Decode(rec.Payload)
		if err != nil {
			return nil, fmt.Errorf("decode record %d: %w", rec.ID, err)
		}
		decoded = append(decoded, obj)
	}
	return decoded, nil
}
