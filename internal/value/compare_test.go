package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want int
	}{
		{"null null", Null{}, Null{}, 0},
		{"nil null", nil, Null{}, 0},
		{"null before number", Null{}, Number("1"), -1},
		{"number after null", Number("1"), Null{}, 1},
		{"absent before string", nil, String("a"), -1},
		{"bool false < true", Bool(false), Bool(true), -1},
		{"bool equal", Bool(true), Bool(true), 0},
		{"int less", Number("10"), Number("20"), -1},
		{"int greater", Number("20"), Number("10"), 1},
		{"int vs decimal equal", Number("30"), Number("30.0"), 0},
		{"decimal less", Number("1.5"), Number("2"), -1},
		{"negative", Number("-3"), Number("2"), -1},
		{"exponent", Number("1e3"), Number("999"), 1},
		{"big ints", Number("9223372036854775807"), Number("9223372036854775808"), -1},
		{"string less", String("apple"), String("banana"), -1},
		{"string case", String("Z"), String("a"), -1},
		{"string prefix", String("ab"), String("abc"), -1},
		{"string equal", String("x"), String("x"), 0},
		{"arrays unordered", Array{Number("1")}, Array{Number("2")}, 0},
		{"objects unordered", Object{"a": Number("1")}, Object{}, 0},
		{"cross kind number string", Number("1"), String("1"), 0},
		{"cross kind bool number", Bool(true), Number("0"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestCompare_Antisymmetric(t *testing.T) {
	values := []Value{Null{}, Bool(false), Bool(true), Number("-1"), Number("2.5"), String("a"), String("b")}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, -Compare(a, b), Compare(b, a), "Compare(%v, %v)", a, b)
		}
	}
}

func TestCompareUTF16_SupplementaryPlane(t *testing.T) {
	// U+FF61 encodes as one unit 0xFF61, U+1F600 as surrogates 0xD83D 0xDE00.
	// UTF-8 byte order puts U+FF61 first; UTF-16 order puts the emoji first.
	assert.Equal(t, 1, compareUTF16("｡", "\U0001F600"))
	assert.Equal(t, -1, compareUTF16("\U0001F600", "｡"))
}

func TestIsNull(t *testing.T) {
	assert.True(t, IsNull(nil))
	assert.True(t, IsNull(Null{}))
	assert.False(t, IsNull(String("")))
	assert.False(t, IsNull(Number("0")))
}

func TestGroupKey(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"nil", nil, "null"},
		{"true", Bool(true), "true"},
		{"false", Bool(false), "false"},
		{"int", Number("30"), "30"},
		{"decimal keeps literal", Number("30.0"), "30.0"},
		{"string", String("HR"), "HR"},
		{"string null text", String("null"), "null"},
		{"array", Array{Number("1"), String("a")}, `[1,"a"]`},
		{"object", Object{"b": Bool(true), "a": Null{}}, `{"a":null,"b":true}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GroupKey(tt.v))
		})
	}
}
