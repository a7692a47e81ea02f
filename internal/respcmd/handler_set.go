package respcmd

import (
	"strconv"
	"time"

	"github.com/ridgewood-io/respkv/internal/apperr"
	"github.com/ridgewood-io/respkv/internal/resp"
	"github.com/ridgewood-io/respkv/internal/store"
)

// setHandler implements SET key value [PX ms], backed by the datastore
// actor's Sender. Arity and argument-type validation happens entirely
// before any message is sent.
type setHandler struct {
	sender store.Sender
}

func (h setHandler) Handle(args []resp.Value) resp.Value {
	n := len(args)
	if n != 2 && n != 4 {
		if n == 3 {
			return resp.NewSimpleErrorFromErr(apperr.NewArgCount("SET", n, "SET with EXPIRY"))
		}
		return resp.NewSimpleErrorFromErr(apperr.NewArgCount("SET", n, "2 or 4"))
	}

	key, ok := bulkBytes(args[0])
	if !ok {
		return resp.NewSimpleErrorFromErr(apperr.NewInvalidArgType("bulk string"))
	}
	value, ok := bulkBytes(args[1])
	if !ok {
		return resp.NewSimpleErrorFromErr(apperr.NewInvalidArgType("bulk string"))
	}

	var expiresAt time.Time
	var hasExpiry bool
	if n == 4 {
		marker, ok := bulkBytes(args[2])
		if !ok || string(marker) != "PX" {
			return resp.NewSimpleErrorFromErr(apperr.NewInvalidArg("SET", "PX", argText(args[2])))
		}
		millisBytes, ok := bulkBytes(args[3])
		if !ok {
			return resp.NewSimpleErrorFromErr(apperr.NewInvalidArgType("bulk string"))
		}
		millis, err := strconv.ParseInt(string(millisBytes), 10, 64)
		if err != nil || millis < 0 {
			return resp.NewSimpleErrorFromErr(apperr.NewInvalidExpiry())
		}
		expiresAt = time.Now().Add(time.Duration(millis) * time.Millisecond)
		hasExpiry = true
	}

	return h.sender.Set(key, value, expiresAt, hasExpiry)
}

// bulkBytes reports whether v is a BulkString and, if so, its payload.
func bulkBytes(v resp.Value) ([]byte, bool) {
	if v.Kind != resp.BulkString {
		return nil, false
	}
	return v.Bulk, true
}

// argText renders v for inclusion in an InvalidArg error message.
func argText(v resp.Value) string {
	switch v.Kind {
	case resp.BulkString:
		return string(v.Bulk)
	case resp.SimpleString, resp.SimpleError:
		return v.Str
	case resp.Integer:
		return strconv.FormatInt(v.Int, 10)
	default:
		return ""
	}
}
