package dataset

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/roach88/datasets/internal/apperr"
	"github.com/roach88/datasets/internal/query"
	"github.com/roach88/datasets/internal/value"
)

// MissingQueryMessage is the BAD_REQUEST message when neither groupBy nor
// sortBy is given.
const MissingQueryMessage = "Provide either groupBy or sortBy"

// Request describes one query. Empty strings mean "not set".
// When both GroupBy and SortBy are set, GroupBy wins and Order is ignored.
type Request struct {
	Dataset string
	GroupBy string
	SortBy  string
	Order   string
}

// Result holds exactly one of Grouped or Sorted.
type Result struct {
	Grouped *query.Groups
	Sorted  []value.Object
}

// IsGrouped reports whether the result came from a groupBy.
func (r *Result) IsGrouped() bool {
	return r.Grouped != nil
}

// MarshalJSON encodes {"groupedRecords": {...}} or {"sortedRecords": [...]}.
func (r *Result) MarshalJSON() ([]byte, error) {
	var (
		key  string
		body []byte
		err  error
	)
	if r.Grouped != nil {
		key = "groupedRecords"
		body, err = r.Grouped.MarshalJSON()
	} else {
		key = "sortedRecords"
		sorted := r.Sorted
		if sorted == nil {
			sorted = []value.Object{}
		}
		body, err = json.Marshal(sorted)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(`{"` + key + `":`)
	buf.Write(body)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Query loads and decodes the dataset once, then groups or sorts it.
//
// Errors:
//   - BAD_REQUEST: neither GroupBy nor SortBy, empty name, or invalid Order
//   - DATASET_NOT_FOUND: groupBy on a dataset with zero records
//   - MALFORMED_PAYLOAD: a stored record no longer decodes
//   - STORAGE_FAULT: the store failed
func (g *Gateway) Query(ctx context.Context, req Request) (*Result, error) {
	name, err := normalizeName(req.Dataset)
	if err != nil {
		return nil, err
	}

	var order query.Order
	switch {
	case req.GroupBy != "":
	case req.SortBy != "":
		order, err = query.ParseOrder(req.Order)
		if err != nil {
			return nil, err
		}
	default:
		g.logger.Warn("bad request: neither groupBy nor sortBy provided", "dataset", name)
		return nil, apperr.New(apperr.CodeBadRequest, MissingQueryMessage)
	}

	g.logger.Info("querying dataset", "dataset", name)

	stored, err := g.store.ListByDataset(ctx, name)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeStorageFault, "list records", err)
	}

	if req.GroupBy != "" && len(stored) == 0 {
		return nil, apperr.Newf(apperr.CodeDatasetNotFound, "No records found for dataset: %s", name)
	}

	records, err := decodeRecords(stored)
	if err != nil {
		return nil, err
	}

	if req.GroupBy != "" {
		g.logger.Info("grouping records", "dataset", name, "group_by", req.GroupBy, "records", len(records))
		groups, err := query.GroupBy(records, req.GroupBy)
		if err != nil {
			return nil, err
		}
		return &Result{Grouped: groups}, nil
	}

	g.logger.Info("sorting records", "dataset", name, "sort_by", req.SortBy, "order", order.String(), "records", len(records))
	return &Result{Sorted: query.SortBy(records, req.SortBy, order)}, nil
}
