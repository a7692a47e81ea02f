package resp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		v    Value
	}{
		{"simple string", NewSimpleString("OK")},
		{"simple error", NewSimpleError("ERR boom")},
		{"integer", NewInteger(-42)},
		{"bulk string", NewBulkStringFromString("hello")},
		{"bulk string empty", NewBulkStringFromString("")},
		{"bulk string binary", NewBulkString([]byte{0x00, '\r', '\n', 0xff})},
		{"null bulk string", NewNullBulkString()},
		{"array empty", NewArray(nil)},
		{"array nested", NewArray([]Value{
			NewBulkStringFromString("SET"),
			NewBulkStringFromString("k"),
			NewArray([]Value{NewInteger(1), NewNullBulkString()}),
		})},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := tc.v.Serialize()
			require.NoError(t, err)

			size, err := tc.v.Size()
			require.NoError(t, err)
			assert.Equal(t, len(b), size, "size must match serialized length")

			got, n, err := Deserialize(b)
			require.NoError(t, err)
			assert.Equal(t, len(b), n)
			assertValuesEqual(t, tc.v, got)
		})
	}
}

// assertValuesEqual compares two Values for equality, treating a nil Array
// (constructed directly) and an empty-but-non-nil Array (produced by the
// parser) as equal: both serialize identically, which is all the round-trip
// property actually requires.
func assertValuesEqual(t *testing.T, want, got Value) {
	t.Helper()
	assert.Equal(t, want.Kind, got.Kind)
	assert.Equal(t, want.Str, got.Str)
	assert.Equal(t, want.Int, got.Int)
	assert.Equal(t, want.Bulk, got.Bulk)
	require.Equal(t, len(want.Items), len(got.Items))
	for i := range want.Items {
		assertValuesEqual(t, want.Items[i], got.Items[i])
	}
}

func TestSerializeInvalidUTF8(t *testing.T) {
	v := Value{Kind: SimpleString, Str: string([]byte{0xff, 0xfe})}
	_, err := v.Serialize()
	require.Error(t, err)
}

func TestSerializeRejectsCRLFInSimpleValues(t *testing.T) {
	v := NewSimpleString("a\r\nb")
	_, err := v.Serialize()
	require.Error(t, err)
}
