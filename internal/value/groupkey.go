package value

import "strconv"

// NullKey is the group key for null values.
const NullKey = "null"

// GroupKey renders a value as the string used to bucket records in a
// group-by. Numbers keep their literal text; nested structures render as
// compact JSON.
func GroupKey(v Value) string {
	switch val := v.(type) {
	case nil, Null:
		return NullKey
	case Bool:
		return strconv.FormatBool(bool(val))
	case Number:
		return string(val)
	case String:
		return string(val)
	case Array, Object:
		b, err := Marshal(val)
		if err != nil {
			return ""
		}
		return string(b)
	default:
		return ""
	}
}
