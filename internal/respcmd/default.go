package respcmd

import (
	"github.com/ridgewood-io/respkv/internal/config"
	"github.com/ridgewood-io/respkv/internal/store"
)

// NewDefault builds the Registry serving this server's full command
// surface: PING, ECHO, SET, GET, CONFIG GET. sender is the datastore
// actor's send handle; snapshot is the immutable startup config.
func NewDefault(sender store.Sender, snapshot config.Snapshot) *Registry {
	r := NewRegistry()
	r.Register("PING", pingHandler{})
	r.Register("ECHO", echoHandler{})
	r.Register("SET", setHandler{sender: sender})
	r.Register("GET", getHandler{sender: sender})
	r.Register("CONFIG GET", configGetHandler{snapshot: snapshot})
	return r
}
