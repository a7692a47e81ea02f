package respcmd

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ridgewood-io/respkv/internal/applog"
	"github.com/ridgewood-io/respkv/internal/resp"
	"github.com/ridgewood-io/respkv/internal/store"
)

func newTestSender(t *testing.T) store.Sender {
	t.Helper()
	a := store.New(applog.New(), nil, 0, 0)
	go a.Run()
	t.Cleanup(a.Stop)
	return a.Sender()
}

func TestSetUnconditionalThenGet(t *testing.T) {
	sender := newTestSender(t)
	set := setHandler{sender: sender}
	get := getHandler{sender: sender}

	reply := set.Handle([]resp.Value{
		resp.NewBulkStringFromString("hello"),
		resp.NewBulkStringFromString("world"),
	})
	assert.Equal(t, resp.NewSimpleString("OK"), reply)

	got := get.Handle([]resp.Value{resp.NewBulkStringFromString("hello")})
	assert.Equal(t, resp.NewBulkString([]byte("world")), got)
}

func TestSetWithPxExpiry(t *testing.T) {
	sender := newTestSender(t)
	set := setHandler{sender: sender}
	get := getHandler{sender: sender}

	reply := set.Handle([]resp.Value{
		resp.NewBulkStringFromString("hello"),
		resp.NewBulkStringFromString("world"),
		resp.NewBulkStringFromString("PX"),
		resp.NewBulkStringFromString("1"),
	})
	assert.Equal(t, resp.NewSimpleString("OK"), reply)

	got := get.Handle([]resp.Value{resp.NewBulkStringFromString("hello")})
	assert.Equal(t, resp.NewBulkString([]byte("world")), got)

	time.Sleep(5 * time.Millisecond)

	got = get.Handle([]resp.Value{resp.NewBulkStringFromString("hello")})
	assert.Equal(t, resp.NewNullBulkString(), got)
}

func TestSetArityThreeIsTaggedExpiryError(t *testing.T) {
	set := setHandler{}
	got := set.Handle([]resp.Value{
		resp.NewBulkStringFromString("k"),
		resp.NewBulkStringFromString("v"),
		resp.NewBulkStringFromString("PX"),
	})
	require.Equal(t, resp.SimpleError, got.Kind)
	assert.Contains(t, got.Str, "SET with EXPIRY")
}

func TestSetBadArity(t *testing.T) {
	set := setHandler{}
	got := set.Handle([]resp.Value{resp.NewBulkStringFromString("only-one")})
	require.Equal(t, resp.SimpleError, got.Kind)
	assert.Contains(t, got.Str, "2 or 4")
}

func TestSetThirdArgNotPx(t *testing.T) {
	set := setHandler{}
	got := set.Handle([]resp.Value{
		resp.NewBulkStringFromString("k"),
		resp.NewBulkStringFromString("v"),
		resp.NewBulkStringFromString("EX"),
		resp.NewBulkStringFromString("1"),
	})
	require.Equal(t, resp.SimpleError, got.Kind)
	assert.Contains(t, got.Str, "EX")
}

func TestSetThirdArgPxIsCaseSensitive(t *testing.T) {
	set := setHandler{}
	got := set.Handle([]resp.Value{
		resp.NewBulkStringFromString("k"),
		resp.NewBulkStringFromString("v"),
		resp.NewBulkStringFromString("px"),
		resp.NewBulkStringFromString("1"),
	})
	require.Equal(t, resp.SimpleError, got.Kind)
}

func TestSetInvalidExpiryMillis(t *testing.T) {
	set := setHandler{}
	got := set.Handle([]resp.Value{
		resp.NewBulkStringFromString("k"),
		resp.NewBulkStringFromString("v"),
		resp.NewBulkStringFromString("PX"),
		resp.NewBulkStringFromString("not-a-number"),
	})
	require.Equal(t, resp.SimpleError, got.Kind)
}

func TestSetRequiresBulkStringKeyAndValue(t *testing.T) {
	set := setHandler{}
	got := set.Handle([]resp.Value{
		resp.NewSimpleString("k"),
		resp.NewBulkStringFromString("v"),
	})
	require.Equal(t, resp.SimpleError, got.Kind)
}

func TestGetWrongArity(t *testing.T) {
	get := getHandler{}
	got := get.Handle(nil)
	require.Equal(t, resp.SimpleError, got.Kind)
}

func TestGetRequiresBulkStringKey(t *testing.T) {
	get := getHandler{}
	got := get.Handle([]resp.Value{resp.NewSimpleString("k")})
	require.Equal(t, resp.SimpleError, got.Kind)
}
