// Package query implements the two query shapes over decoded records:
// group-by-field and sort-by-field.
//
// Both operations are pure functions over a slice of value.Object. They
// never mutate their input and hold no state, so they are safe to call
// concurrently.
//
// # Absent vs null
//
// GroupBy drops records that lack the field entirely but keeps records
// whose field is null, keyed under value.NullKey. SortBy treats an absent
// field exactly like null.
//
// # Null placement
//
// SortBy places nulls independently of the value comparator: first for
// ascending order, last for descending. Descending order reverses the
// ordering of non-null values; records that compare equal keep their input
// order in both directions.
//
// # Mixed kinds
//
// value.Compare treats values of different kinds as equal. SortBy breaks
// those ties by kind rank (boolean < number < string < array < object) so
// that every same-kind run is ordered and the result is total for any
// input. Descending order reverses the rank along with the values.
package query
