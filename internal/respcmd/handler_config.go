package respcmd

import (
	"github.com/ridgewood-io/respkv/internal/apperr"
	"github.com/ridgewood-io/respkv/internal/config"
	"github.com/ridgewood-io/respkv/internal/resp"
)

// configGetHandler implements the single literal command name "CONFIG GET"
// (with the embedded space; see spec's known divergence from the compound
// CONFIG/GET subcommand form). Exactly one argument, the field name.
type configGetHandler struct {
	snapshot config.Snapshot
}

func (h configGetHandler) Handle(args []resp.Value) resp.Value {
	if len(args) != 1 {
		return resp.NewSimpleErrorFromErr(apperr.NewArgCount("CONFIG GET", len(args), "1"))
	}
	fieldBytes, ok := bulkBytes(args[0])
	if !ok {
		return resp.NewSimpleErrorFromErr(apperr.NewInvalidArgType("bulk string"))
	}
	field := string(fieldBytes)
	if !config.Known(field) {
		return resp.NewSimpleErrorFromErr(apperr.NewInvalidConfigField(field))
	}
	return resp.NewArray([]resp.Value{
		resp.NewBulkStringFromString(field),
		h.snapshot.Get(config.Field(field)),
	})
}
