package respcmd

import (
	"github.com/ridgewood-io/respkv/internal/apperr"
	"github.com/ridgewood-io/respkv/internal/resp"
)

// echoHandler implements ECHO: exactly one argument, returned unchanged.
type echoHandler struct{}

func (echoHandler) Handle(args []resp.Value) resp.Value {
	if len(args) != 1 {
		return resp.NewSimpleErrorFromErr(apperr.NewArgCount("ECHO", len(args), "1"))
	}
	return args[0]
}
