package respcmd

import (
	"github.com/ridgewood-io/respkv/internal/apperr"
	"github.com/ridgewood-io/respkv/internal/resp"
	"github.com/ridgewood-io/respkv/internal/store"
)

// getHandler implements GET key, delegating the lookup to the datastore
// actor and blocking for its reply.
type getHandler struct {
	sender store.Sender
}

func (h getHandler) Handle(args []resp.Value) resp.Value {
	if len(args) != 1 {
		return resp.NewSimpleErrorFromErr(apperr.NewArgCount("GET", len(args), "1"))
	}
	key, ok := bulkBytes(args[0])
	if !ok {
		return resp.NewSimpleErrorFromErr(apperr.NewInvalidArgType("bulk string"))
	}
	return h.sender.Get(key)
}
