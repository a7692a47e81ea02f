// Package respcmd implements the command registry and the handler for each
// command this server understands: a case-insensitive name-to-handler
// lookup, where each handler is an ordinary value rather than a bare
// function closing over global state.
package respcmd

import (
	"strings"

	"github.com/ridgewood-io/respkv/internal/apperr"
	"github.com/ridgewood-io/respkv/internal/resp"
)

// Handler is the capability every command implements: validate args, run,
// produce a RESP value (success or error) to write back to the client.
type Handler interface {
	Handle(args []resp.Value) resp.Value
}

// HandlerFunc adapts a plain function to Handler, the way http.HandlerFunc
// adapts a function to http.Handler.
type HandlerFunc func(args []resp.Value) resp.Value

// Handle calls f(args).
func (f HandlerFunc) Handle(args []resp.Value) resp.Value { return f(args) }

// Registry is a case-insensitive name-to-handler mapping. Registration
// normalizes the key to upper case; lookup normalizes the argument
// identically, so any casing of a registered name dispatches to the same
// handler.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry builds an empty Registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

// Register adds h under name, case-insensitively.
func (r *Registry) Register(name string, h Handler) {
	r.handlers[strings.ToUpper(name)] = h
}

// Invoke looks up name case-insensitively and runs its handler with args. An
// unregistered name yields an UnknownCommand error value rather than a Go
// error, since every outcome here must become a single RESP reply.
func (r *Registry) Invoke(name string, args []resp.Value) resp.Value {
	h, ok := r.handlers[strings.ToUpper(name)]
	if !ok {
		return resp.NewSimpleErrorFromErr(apperr.NewUnknownCommand(name))
	}
	return h.Handle(args)
}

// InvokeNoArgs is Invoke(name, nil); it exists only for clarity at call
// sites that never pass arguments.
func (r *Registry) InvokeNoArgs(name string) resp.Value {
	return r.Invoke(name, nil)
}
