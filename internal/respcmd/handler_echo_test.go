package respcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridgewood-io/respkv/internal/resp"
)

func TestEchoReturnsArgUnchanged(t *testing.T) {
	h := echoHandler{}
	got := h.Handle([]resp.Value{resp.NewBulkStringFromString("hey")})
	assert.Equal(t, resp.NewBulkStringFromString("hey"), got)
}

func TestEchoWrongArity(t *testing.T) {
	h := echoHandler{}

	got := h.Handle(nil)
	assert.Equal(t, resp.SimpleError, got.Kind)

	got = h.Handle([]resp.Value{resp.NewBulkStringFromString("a"), resp.NewBulkStringFromString("b")})
	assert.Equal(t, resp.SimpleError, got.Kind)
}
