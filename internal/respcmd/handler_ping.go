package respcmd

import "github.com/ridgewood-io/respkv/internal/resp"

// pingHandler implements PING: no arguments, always replies PONG.
type pingHandler struct{}

func (pingHandler) Handle(args []resp.Value) resp.Value {
	return resp.NewSimpleString("PONG")
}
