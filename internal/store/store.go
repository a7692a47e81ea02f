// Package store implements the datastore actor: a single consumer task
// that exclusively owns the keyspace and processes Set/Get requests sent
// to it over a channel, in the order they arrive. Handlers never touch
// the keyspace directly; they send a request and block for its reply.
package store

import (
	"time"

	"github.com/ridgewood-io/respkv/internal/applog"
	"github.com/ridgewood-io/respkv/internal/resp"
)

// DefaultInboxSize is the reference bound for the actor's request channel.
const DefaultInboxSize = 1024

// DefaultSweepInterval is how often the optional eager-eviction sweep runs.
const DefaultSweepInterval = time.Hour

type entry struct {
	value     []byte
	expiresAt time.Time
	hasExpiry bool
}

func (e entry) expired(now time.Time) bool {
	return e.hasExpiry && !now.Before(e.expiresAt)
}

// request is the sealed set of message variants the actor understands.
// New variants extend this interface; the actor's loop dispatches on
// concrete type.
type request interface{ isRequest() }

type setRequest struct {
	key       string
	value     []byte
	expiresAt time.Time
	hasExpiry bool
	reply     chan resp.Value
}

func (setRequest) isRequest() {}

type getRequest struct {
	key   string
	reply chan resp.Value
}

func (getRequest) isRequest() {}

type sweepRequest struct{}

func (sweepRequest) isRequest() {}

// countRequest reports the current keyspace size (including not-yet-lazily-
// evicted expired entries), for ambient reporting via internal/opstats. It
// is not part of the command surface; no handler sends one.
type countRequest struct {
	reply chan int
}

func (countRequest) isRequest() {}

// Actor owns the keyspace exclusively; it must only ever be read from or
// written to by the single goroutine running Run.
type Actor struct {
	inbox  chan request
	log    *applog.Logger
	keys   map[string]entry
	sweep  time.Duration
	stopCh chan struct{}
}

// New builds an Actor with an empty keyspace, optionally pre-populated (used
// by tests) via initial. inboxSize <= 0 uses DefaultInboxSize; sweepInterval
// <= 0 disables the periodic sweep ticker.
func New(log *applog.Logger, initial map[string][]byte, inboxSize int, sweepInterval time.Duration) *Actor {
	if inboxSize <= 0 {
		inboxSize = DefaultInboxSize
	}
	keys := make(map[string]entry, len(initial))
	for k, v := range initial {
		keys[k] = entry{value: v}
	}
	return &Actor{
		inbox:  make(chan request, inboxSize),
		log:    log,
		keys:   keys,
		sweep:  sweepInterval,
		stopCh: make(chan struct{}),
	}
}

// Sender is the shared, clonable handle command handlers hold: the send end
// of the actor's inbox. The receive end is uniquely owned by the Actor.
type Sender struct {
	inbox chan<- request
}

// Sender returns a new handle to this actor's inbox. Safe to call from any
// goroutine and to share across many connection tasks.
func (a *Actor) Sender() Sender { return Sender{inbox: a.inbox} }

// Run is the actor's core loop: it must be invoked exactly once, from its own
// goroutine, and never returns until Stop is called. It processes messages
// strictly in the order they arrive at the inbox — no priorities, no
// reordering.
func (a *Actor) Run() {
	var ticker *time.Ticker
	var tickC <-chan time.Time
	if a.sweep > 0 {
		ticker = time.NewTicker(a.sweep)
		tickC = ticker.C
		defer ticker.Stop()
	}

	for {
		select {
		case <-a.stopCh:
			return
		case <-tickC:
			a.runSweep()
		case req := <-a.inbox:
			a.handle(req)
		}
	}
}

// Stop halts the actor's loop. Safe to call once.
func (a *Actor) Stop() { close(a.stopCh) }

func (a *Actor) handle(req request) {
	switch r := req.(type) {
	case setRequest:
		a.keys[r.key] = entry{value: r.value, expiresAt: r.expiresAt, hasExpiry: r.hasExpiry}
		a.sendReply(r.reply, resp.NewSimpleString("OK"))
	case getRequest:
		item, ok := a.keys[r.key]
		if ok && item.expired(time.Now()) {
			delete(a.keys, r.key)
			ok = false
		}
		if !ok {
			a.sendReply(r.reply, resp.NewNullBulkString())
			return
		}
		a.sendReply(r.reply, resp.NewBulkString(item.value))
	case sweepRequest:
		now := time.Now()
		for k, item := range a.keys {
			if item.expired(now) {
				delete(a.keys, k)
			}
		}
	case countRequest:
		select {
		case r.reply <- len(a.keys):
		default:
		}
	}
}

// runSweep is invoked only from the ticker case of Run's select, so it never
// races with handle's map access; it defers the actual work to the same
// single-consumer loop by dispatching a sweepRequest through handle directly
// rather than re-entering the channel, since it already runs on the actor's
// own goroutine.
func (a *Actor) runSweep() {
	a.handle(sweepRequest{})
}

// sendReply always attempts delivery without blocking. Each reply channel is
// a fresh size-1 buffered channel, so the send succeeds even if the caller
// has gone away; such a reply is simply never read, and nothing detects or
// logs that case. The warning fires only if the buffer is already full.
func (a *Actor) sendReply(reply chan resp.Value, v resp.Value) {
	select {
	case reply <- v:
	default:
		a.log.Warn("store: reply channel had no receiver, dropping response")
	}
}

// Set sends a Set request to the actor and blocks for its reply. expiresAt
// is ignored when hasExpiry is false.
func (s Sender) Set(key, value []byte, expiresAt time.Time, hasExpiry bool) resp.Value {
	reply := make(chan resp.Value, 1)
	s.inbox <- setRequest{key: string(key), value: value, expiresAt: expiresAt, hasExpiry: hasExpiry, reply: reply}
	return <-reply
}

// Get sends a Get request to the actor and blocks for its reply.
func (s Sender) Get(key []byte) resp.Value {
	reply := make(chan resp.Value, 1)
	s.inbox <- getRequest{key: string(key), reply: reply}
	return <-reply
}

// KeyCount sends a countRequest to the actor and blocks for its reply. Used
// only by ambient reporting (internal/opstats), never by a command handler.
func (s Sender) KeyCount() int {
	reply := make(chan int, 1)
	s.inbox <- countRequest{reply: reply}
	return <-reply
}
