// Package resp implements the value model and wire codec for the subset of
// RESP (REdis Serialization Protocol) this server speaks: simple strings,
// simple errors, integers, bulk strings (with a distinguished null), and
// arrays. The codec works directly off byte slices — parse one value,
// report how many bytes it consumed — so it can be driven straight off
// whatever a single socket read produced.
package resp

import (
	"bytes"
	"strconv"
	"unicode/utf8"

	"github.com/ridgewood-io/respkv/internal/apperr"
)

// Kind identifies which of the five RESP wire types (plus the null bulk
// string variant) a Value holds.
type Kind int

const (
	SimpleString Kind = iota
	SimpleError
	Integer
	BulkString
	NullBulkString
	Array
)

// Value is a tagged variant covering every RESP type this server emits or
// accepts. Only the field matching Kind is meaningful.
type Value struct {
	Kind Kind

	Str string // SimpleString / SimpleError payload; must be UTF-8, no CR/LF
	Int int64  // Integer payload

	Bulk []byte // BulkString payload; arbitrary bytes

	Items []Value // Array payload, in order
}

// NewSimpleString builds a SimpleString value.
func NewSimpleString(s string) Value { return Value{Kind: SimpleString, Str: s} }

// NewSimpleError builds a SimpleError value.
func NewSimpleError(s string) Value { return Value{Kind: SimpleError, Str: s} }

// NewSimpleErrorFromErr builds a SimpleError value from any error, using its
// Error() text verbatim. Every apperr.Error already carries the canonical
// wire message, so no further formatting happens here.
func NewSimpleErrorFromErr(err error) Value { return NewSimpleError(err.Error()) }

// NewInteger builds an Integer value.
func NewInteger(n int64) Value { return Value{Kind: Integer, Int: n} }

// NewBulkString builds a BulkString value from binary-safe bytes.
func NewBulkString(b []byte) Value { return Value{Kind: BulkString, Bulk: b} }

// NewBulkStringFromString is a convenience wrapper over NewBulkString for
// callers holding a Go string rather than a []byte.
func NewBulkStringFromString(s string) Value { return NewBulkString([]byte(s)) }

// NewNullBulkString builds the distinguished null bulk string value.
func NewNullBulkString() Value { return Value{Kind: NullBulkString} }

// NewArray builds an Array value. items may be nil or empty.
func NewArray(items []Value) Value { return Value{Kind: Array, Items: items} }

// IsBulkString reports whether v is a BulkString (not NullBulkString).
func (v Value) IsBulkString() bool { return v.Kind == BulkString }

// Serialize produces the canonical RESP encoding of v. The only failure mode
// is a SimpleString/SimpleError payload containing non-UTF-8 bytes or a bare
// CR/LF, which the wire format cannot represent on a single line.
func (v Value) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Size reports the exact number of bytes Serialize would produce, without
// requiring the caller to serialize first. It is defined as
// len(Serialize(v)) so the two operations can never disagree.
func (v Value) Size() (int, error) {
	b, err := v.Serialize()
	if err != nil {
		return 0, err
	}
	return len(b), nil
}

func (v Value) writeTo(buf *bytes.Buffer) error {
	switch v.Kind {
	case SimpleString:
		return writeLine(buf, '+', v.Str)
	case SimpleError:
		return writeLine(buf, '-', v.Str)
	case Integer:
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatInt(v.Int, 10))
		buf.WriteString("\r\n")
		return nil
	case BulkString:
		buf.WriteByte('$')
		buf.WriteString(strconv.Itoa(len(v.Bulk)))
		buf.WriteString("\r\n")
		buf.Write(v.Bulk)
		buf.WriteString("\r\n")
		return nil
	case NullBulkString:
		buf.WriteString("$-1\r\n")
		return nil
	case Array:
		buf.WriteByte('*')
		buf.WriteString(strconv.Itoa(len(v.Items)))
		buf.WriteString("\r\n")
		for _, item := range v.Items {
			if err := item.writeTo(buf); err != nil {
				return err
			}
		}
		return nil
	default:
		return apperr.NewInvalidPrefix()
	}
}

func writeLine(buf *bytes.Buffer, prefix byte, payload string) error {
	if !utf8.ValidString(payload) {
		return apperr.NewInvalidUTF8()
	}
	for i := 0; i < len(payload); i++ {
		if payload[i] == '\r' || payload[i] == '\n' {
			return apperr.NewInvalidUTF8()
		}
	}
	buf.WriteByte(prefix)
	buf.WriteString(payload)
	buf.WriteString("\r\n")
	return nil
}
