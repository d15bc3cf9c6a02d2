package query

import (
	"testing"

	"github.com/roach88/datasets/internal/value"
)

// decodeAll decodes JSON payloads into records, failing the test on error.
func decodeAll(t *testing.T, payloads ...string) []value.Object {
	t.Helper()
	records := make([]value.Object, 0, len(payloads))
	for _, p := range payloads {
		obj, err := value.Decode([]byte(p))
		if err != nil {
			t.Fatalf("Decode(%s) failed: %v", p, err)
		}
		records = append(records, obj)
	}
	return records
}

// field extracts one field from each record as a group key string,
// "<absent>" when missing.
func field(records []value.Object, name string) []string {
	out := make([]string, len(records))
	for i, r := range records {
		v, ok := r.Get(name)
		if !ok {
			out[i] = "<absent>"
			continue
		}
		out[i] = value.GroupKey(v)
	}
	return out
}
