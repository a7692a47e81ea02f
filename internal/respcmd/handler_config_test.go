package respcmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgewood-io/respkv/internal/config"
	"github.com/ridgewood-io/respkv/internal/resp"
)

func TestConfigGetKnownField(t *testing.T) {
	h := configGetHandler{snapshot: config.New("", "redis.rdb")}
	got := h.Handle([]resp.Value{resp.NewBulkStringFromString("dbfilename")})

	require.Equal(t, resp.Array, got.Kind)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "dbfilename", string(got.Items[0].Bulk))
	assert.Equal(t, "redis.rdb", string(got.Items[1].Bulk))
}

func TestConfigGetUnsetFieldIsNullBulkString(t *testing.T) {
	h := configGetHandler{snapshot: config.New("", "")}
	got := h.Handle([]resp.Value{resp.NewBulkStringFromString("dir")})

	require.Equal(t, resp.Array, got.Kind)
	assert.Equal(t, resp.NullBulkString, got.Items[1].Kind)
}

func TestConfigGetUnknownField(t *testing.T) {
	h := configGetHandler{snapshot: config.New("", "")}
	got := h.Handle([]resp.Value{resp.NewBulkStringFromString("maxmemory")})
	require.Equal(t, resp.SimpleError, got.Kind)
}

func TestConfigGetWrongArity(t *testing.T) {
	h := configGetHandler{}
	got := h.Handle(nil)
	require.Equal(t, resp.SimpleError, got.Kind)
}
