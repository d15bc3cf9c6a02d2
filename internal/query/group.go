package query

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/roach88/datasets/internal/apperr"
	"github.com/roach88/datasets/internal/value"
)

// Groups is the result of GroupBy: records bucketed by group key.
// Keys iterate in the order they were first seen in the input.
type Groups struct {
	keys   []string
	groups map[string][]value.Object
}

// Keys returns group keys in first-seen order.
func (g *Groups) Keys() []string {
	return g.keys
}

// Get returns the records of one group in input order.
func (g *Groups) Get(key string) []value.Object {
	return g.groups[key]
}

// Len returns the number of groups.
func (g *Groups) Len() int {
	return len(g.keys)
}

// Map returns the groups as a plain map.
func (g *Groups) Map() map[string][]value.Object {
	return g.groups
}

// MarshalJSON encodes the groups as a JSON object with keys in first-seen
// order.
func (g *Groups) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range g.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("marshal group key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')

		rb, err := json.Marshal(g.groups[k])
		if err != nil {
			return nil, fmt.Errorf("marshal group %q: %w", k, err)
		}
		buf.Write(rb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// GroupBy partitions records by the group key of field.
//
// Fails with apperr.CodeDatasetEmpty when records is empty. When records
// exist but none carries the field, the result is empty and err is nil.
func GroupBy(records []value.Object, field string) (*Groups, error) {
	if len(records) == 0 {
		return nil, apperr.New(apperr.CodeDatasetEmpty, "no records to group")
	}

	g := &Groups{
		keys:   []string{},
		groups: make(map[string][]value.Object),
	}
	for _, rec := range records {
		v, ok := rec.Get(field)
		if !ok {
			continue
		}
		key := value.GroupKey(v)
		if _, seen := g.groups[key]; !seen {
			g.keys = append(g.keys, key)
		}
		g.groups[key] = append(g.groups[key], rec)
	}

	return g, nil
}
