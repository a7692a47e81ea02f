package resp

import (
	"strconv"
	"unicode/utf8"

	"github.com/ridgewood-io/respkv/internal/apperr"
)

// lineStatus is the outcome of scanning for a CRLF-terminated header line.
type lineStatus int

const (
	lineFound lineStatus = iota
	lineTruncated
	lineBadCRLF
)

// findLineEnd scans b for the first "\r\n" pair and returns the index of the
// '\r' byte. If a lone '\n' (not preceded by '\r') is found first, the line
// is malformed. If neither is found, the input is incomplete.
func findLineEnd(b []byte) (idx int, status lineStatus) {
	for i := 0; i < len(b); i++ {
		if b[i] == '\n' {
			if i == 0 || b[i-1] != '\r' {
				return i, lineBadCRLF
			}
			return i - 1, lineFound
		}
	}
	return 0, lineTruncated
}

// Deserialize parses exactly one RESP value from the start of b and reports
// how many bytes it consumed. Trailing bytes are never consumed. Arrays are
// parsed recursively, consuming each child's reported length in turn.
func Deserialize(b []byte) (Value, int, error) {
	if len(b) == 0 {
		return Value{}, 0, apperr.NewTruncated()
	}

	switch b[0] {
	case '+':
		return parseLine(b, SimpleString)
	case '-':
		return parseLine(b, SimpleError)
	case ':':
		return parseInteger(b)
	case '$':
		return parseBulk(b)
	case '*':
		return parseArray(b)
	default:
		return Value{}, 0, apperr.NewInvalidPrefix()
	}
}

func parseLine(b []byte, kind Kind) (Value, int, error) {
	rel, status := findLineEnd(b[1:])
	switch status {
	case lineTruncated:
		return Value{}, 0, apperr.NewTruncated()
	case lineBadCRLF:
		return Value{}, 0, apperr.NewInvalidCRLF()
	}

	payload := b[1 : 1+rel]
	if !utf8.Valid(payload) {
		return Value{}, 0, apperr.NewInvalidUTF8()
	}
	total := 1 + rel + 2
	return Value{Kind: kind, Str: string(payload)}, total, nil
}

func parseInteger(b []byte) (Value, int, error) {
	rel, status := findLineEnd(b[1:])
	switch status {
	case lineTruncated:
		return Value{}, 0, apperr.NewTruncated()
	case lineBadCRLF:
		return Value{}, 0, apperr.NewInvalidCRLF()
	}

	payload := b[1 : 1+rel]
	total := 1 + rel + 2

	if len(payload) == 0 {
		return Value{}, 0, apperr.NewInvalidInteger()
	}
	j := 0
	if payload[0] == '-' {
		if len(payload) == 1 {
			return Value{}, 0, apperr.NewInvalidInteger()
		}
		j = 1
	}
	for ; j < len(payload); j++ {
		if payload[j] < '0' || payload[j] > '9' {
			return Value{}, 0, apperr.NewInvalidInteger()
		}
	}

	n, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return Value{}, 0, apperr.NewInvalidInteger()
	}
	return Value{Kind: Integer, Int: n}, total, nil
}

// parseCount validates and parses a length/count header: a nonnegative
// decimal integer, or exactly "-1" when allowNegOne is set.
func parseCount(raw []byte, allowNegOne bool) (int, bool) {
	if allowNegOne && string(raw) == "-1" {
		return -1, true
	}
	if len(raw) == 0 {
		return 0, false
	}
	for _, c := range raw {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(string(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func parseBulk(b []byte) (Value, int, error) {
	rel, status := findLineEnd(b[1:])
	switch status {
	case lineTruncated:
		return Value{}, 0, apperr.NewTruncated()
	case lineBadCRLF:
		return Value{}, 0, apperr.NewInvalidCRLF()
	}

	lengthField := b[1 : 1+rel]
	headerLen := 1 + rel + 2

	count, ok := parseCount(lengthField, true)
	if !ok {
		return Value{}, 0, apperr.NewInvalidLength()
	}
	if count == -1 {
		return Value{Kind: NullBulkString}, headerLen, nil
	}

	if len(b) < headerLen+count+2 {
		return Value{}, 0, apperr.NewTruncated()
	}
	if b[headerLen+count] != '\r' || b[headerLen+count+1] != '\n' {
		return Value{}, 0, apperr.NewInvalidCRLF()
	}

	payload := b[headerLen : headerLen+count]
	total := headerLen + count + 2
	return Value{Kind: BulkString, Bulk: payload}, total, nil
}

func parseArray(b []byte) (Value, int, error) {
	rel, status := findLineEnd(b[1:])
	switch status {
	case lineTruncated:
		return Value{}, 0, apperr.NewTruncated()
	case lineBadCRLF:
		return Value{}, 0, apperr.NewInvalidCRLF()
	}

	countField := b[1 : 1+rel]
	pos := 1 + rel + 2

	count, ok := parseCount(countField, false)
	if !ok {
		return Value{}, 0, apperr.NewInvalidLength()
	}

	items := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		item, n, err := Deserialize(b[pos:])
		if err != nil {
			return Value{}, 0, err
		}
		items = append(items, item)
		pos += n
	}
	return Value{Kind: Array, Items: items}, pos, nil
}

// ReadValues parses b into a sequence of top-level RESP values, repeatedly
// invoking Deserialize until the buffer is exhausted. Any failure — including
// a trailing value that is incomplete — aborts the whole sequence with the
// first error encountered.
func ReadValues(b []byte) ([]Value, error) {
	var values []Value
	for len(b) > 0 {
		v, n, err := Deserialize(b)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		b = b[n:]
	}
	return values, nil
}
