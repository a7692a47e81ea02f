package respcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgewood-io/respkv/internal/resp"
)

func TestRegistryCaseInsensitiveDispatch(t *testing.T) {
	r := NewRegistry()
	r.Register("PING", pingHandler{})

	for _, name := range []string{"PING", "ping", "PiNg"} {
		got := r.Invoke(name, nil)
		assert.Equal(t, resp.NewSimpleString("PONG"), got)
	}
}

func TestRegistryUnknownCommand(t *testing.T) {
	r := NewRegistry()
	got := r.Invoke("NOPE", nil)
	require.Equal(t, resp.SimpleError, got.Kind)
	assert.Equal(t, "ERR unknown command 'NOPE'", got.Str)
}

func TestInvokeNoArgsIsInvokeWithEmptyArgs(t *testing.T) {
	r := NewRegistry()
	r.Register("PING", pingHandler{})
	assert.Equal(t, r.Invoke("PING", nil), r.InvokeNoArgs("PING"))
}
