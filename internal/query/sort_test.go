package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/datasets/internal/value"
)

func TestSortBy_Prices(t *testing.T) {
	records := decodeAll(t,
		`{"item":"A","price":20}`,
		`{"item":"B","price":10}`,
	)

	asc := SortBy(records, "price", Asc)
	assert.Equal(t, []string{"10", "20"}, field(asc, "price"))

	desc := SortBy(records, "price", Desc)
	assert.Equal(t, []string{"20", "10"}, field(desc, "price"))
}

func TestSortBy_NullPlacement(t *testing.T) {
	records := decodeAll(t,
		`{"item":"Pen","size":null}`,
		`{"item":"Notebook","size":100}`,
	)

	asc := SortBy(records, "size", Asc)
	assert.Equal(t, []string{"Pen", "Notebook"}, field(asc, "item"))

	desc := SortBy(records, "size", Desc)
	assert.Equal(t, []string{"Notebook", "Pen"}, field(desc, "item"))
}

func TestSortBy_AbsentTreatedAsNull(t *testing.T) {
	records := decodeAll(t,
		`{"n":1,"size":5}`,
		`{"n":2}`,
		`{"n":3,"size":null}`,
		`{"n":4,"size":1}`,
	)

	asc := SortBy(records, "size", Asc)
	assert.Equal(t, []string{"2", "3", "4", "1"}, field(asc, "n"))

	desc := SortBy(records, "size", Desc)
	assert.Equal(t, []string{"1", "4", "2", "3"}, field(desc, "n"))
}

func TestSortBy_Stable(t *testing.T) {
	records := decodeAll(t,
		`{"n":1,"grade":"B"}`,
		`{"n":2,"grade":"A"}`,
		`{"n":3,"grade":"B"}`,
		`{"n":4,"grade":"A"}`,
		`{"n":5,"grade":"B"}`,
	)

	asc := SortBy(records, "grade", Asc)
	assert.Equal(t, []string{"2", "4", "1", "3", "5"}, field(asc, "n"))

	desc := SortBy(records, "grade", Desc)
	assert.Equal(t, []string{"1", "3", "5", "2", "4"}, field(desc, "n"))
}

func TestSortBy_MixedNumberLiterals(t *testing.T) {
	records := decodeAll(t,
		`{"v":2.5}`,
		`{"v":-1}`,
		`{"v":1e1}`,
		`{"v":3}`,
	)

	asc := SortBy(records, "v", Asc)
	assert.Equal(t, []string{"-1", "2.5", "3", "1e1"}, field(asc, "v"))
}

func TestSortBy_Strings(t *testing.T) {
	records := decodeAll(t,
		`{"name":"banana"}`,
		`{"name":"Apple"}`,
		`{"name":"apple"}`,
	)

	asc := SortBy(records, "name", Asc)
	assert.Equal(t, []string{"Apple", "apple", "banana"}, field(asc, "name"))
}

func TestSortBy_Booleans(t *testing.T) {
	records := decodeAll(t, `{"ok":true}`, `{"ok":false}`)

	asc := SortBy(records, "ok", Asc)
	assert.Equal(t, []string{"false", "true"}, field(asc, "ok"))
}

func TestSortBy_EmptyInput(t *testing.T) {
	out := SortBy(nil, "price", Asc)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestSortBy_DoesNotMutateInput(t *testing.T) {
	records := decodeAll(t, `{"p":3}`, `{"p":1}`, `{"p":2}`)

	_ = SortBy(records, "p", Asc)
	assert.Equal(t, []string{"3", "1", "2"}, field(records, "p"))
}

func TestSortBy_Deterministic(t *testing.T) {
	records := decodeAll(t,
		`{"v":"b"}`,
		`{"v":2}`,
		`{"v":"a"}`,
		`{"v":1}`,
		`{"v":null}`,
	)

	first := SortBy(records, "v", Asc)
	for i := 0; i < 5; i++ {
		assert.Equal(t, field(first, "v"), field(SortBy(records, "v", Asc), "v"))
	}
	assert.Equal(t, value.NullKey, field(first, "v")[0])
}

func TestSortBy_MixedKinds(t *testing.T) {
	records := decodeAll(t,
		`{"item":"A","price":20}`,
		`{"item":"B","price":"n/a"}`,
		`{"item":"C","price":10}`,
		`{"item":"D","price":true}`,
		`{"item":"E","price":"free"}`,
		`{"item":"F","price":null}`,
	)

	asc := SortBy(records, "price", Asc)
	assert.Equal(t, []string{"F", "D", "C", "A", "E", "B"}, field(asc, "item"))

	desc := SortBy(records, "price", Desc)
	assert.Equal(t, []string{"B", "E", "A", "C", "D", "F"}, field(desc, "item"))
}

func TestSortBy_ContainersKeepInputOrder(t *testing.T) {
	records := decodeAll(t,
		`{"n":1,"v":{"b":1}}`,
		`{"n":2,"v":[2]}`,
		`{"n":3,"v":{"a":1}}`,
		`{"n":4,"v":[1]}`,
	)

	asc := SortBy(records, "v", Asc)
	assert.Equal(t, []string{"2", "4", "1", "3"}, field(asc, "n"))
}

func TestCompareForOrder(t *testing.T) {
	one := value.Number("1")
	two := value.Number("2")

	assert.Equal(t, -1, compareForOrder(one, two, Asc))
	assert.Equal(t, 1, compareForOrder(one, two, Desc))
	assert.Equal(t, -1, compareForOrder(nil, one, Asc))
	assert.Equal(t, 1, compareForOrder(value.Null{}, one, Desc))
	assert.Equal(t, 0, compareForOrder(nil, value.Null{}, Desc))
	assert.Equal(t, -1, compareForOrder(value.Number("99"), value.String("a"), Asc))
	assert.Equal(t, 1, compareForOrder(value.Number("99"), value.String("a"), Desc))
	assert.Equal(t, -1, compareForOrder(value.Bool(true), value.Number("0"), Asc))
}
