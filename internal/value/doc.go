// Package value represents schema-less JSON records as tagged unions.
//
// Every decoded JSON value is one of six sealed variants: Null, Bool,
// Number, String, Array or Object. Code that inspects values switches on
// the concrete type (or on Kind) explicitly; nothing relies on runtime
// casts to a common comparable interface.
//
// Key constraints:
//   - Null is an explicit variant, never a nil Value
//   - Number keeps the JSON literal text, so 30 and 30.0 stay distinct
//     when rendered and both compare equal numerically
//   - Objects encode with keys in UTF-16 code unit order
//   - Values of different kinds are unordered relative to each other
//     (Compare returns 0), see Compare
package value
