// Package server implements the connection pipeline: the per-connection
// task that reads bytes off a TCP socket, decodes them with internal/resp,
// dispatches through internal/respcmd, and writes the replies back.
package server

import (
	"bufio"
	"io"
	"net"
	"sync"

	"github.com/ridgewood-io/respkv/internal/applog"
	"github.com/ridgewood-io/respkv/internal/resp"
	"github.com/ridgewood-io/respkv/internal/respcmd"
)

// readBufferSize is the fixed per-iteration read size. A request spanning
// more than one read is not reassembled; whatever arrives in a single
// 1024-byte read is all the buffer that iteration gets to parse.
const readBufferSize = 1024

// invalidRequestMsg is written back when a parsed RESP value is not a
// nonempty Array whose first element names a command. The taxonomy's
// InvalidCommand kind is reserved for a command name whose bytes fail
// UTF-8 conversion, which never happens in Go (converting a []byte to a
// string is always lossless, even for invalid UTF-8), so this rejection
// uses its own literal message instead.
const invalidRequestMsg = "ERR invalid command"

// Server accepts TCP connections and runs the connection pipeline for each
// one. It holds no mutable keyspace state of its own; all of that lives in
// the datastore actor reachable through the registry's handlers.
type Server struct {
	listener net.Listener
	registry *respcmd.Registry
	log      *applog.Logger

	wg sync.WaitGroup
}

// Listen binds addr and returns a Server ready to Serve.
func Listen(addr string, registry *respcmd.Registry, log *applog.Logger) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	return &Server{listener: ln, registry: registry, log: log}, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() net.Addr { return s.listener.Addr() }

// Serve runs the accept loop, spawning one connection task per accepted
// socket, until the listener is closed (by Close, typically from a signal
// handler). It then waits for in-flight connections to drain before
// returning, so shutdown never drops a reply mid-flight.
func (s *Server) Serve() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.wg.Wait()
			return err
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// Close stops accepting new connections. Serve returns once in-flight
// connections have drained.
func (s *Server) Close() error {
	return s.listener.Close()
}

func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	w := bufio.NewWriter(conn)
	buf := make([]byte, readBufferSize)

	for {
		n, err := conn.Read(buf)
		if n == 0 {
			if err != nil && err != io.EOF {
				s.log.Warn("server: read error from %s: %v", conn.RemoteAddr(), err)
			}
			return
		}

		values, parseErr := resp.ReadValues(buf[:n])
		if parseErr != nil {
			if !s.writeValue(w, resp.NewSimpleErrorFromErr(parseErr)) {
				return
			}
			continue
		}

		for _, v := range values {
			reply := s.dispatch(v)
			if !s.writeValue(w, reply) {
				return
			}
		}
	}
}

// dispatch validates the request shape, pulls out the command name, and
// invokes the registry.
func (s *Server) dispatch(v resp.Value) resp.Value {
	if v.Kind != resp.Array || len(v.Items) == 0 || v.Items[0].Kind != resp.BulkString {
		return resp.NewSimpleError(invalidRequestMsg)
	}
	name := string(v.Items[0].Bulk)
	return s.registry.Invoke(name, v.Items[1:])
}

// writeValue serializes and writes one reply, flushing immediately so each
// response reaches the peer in the order its request was parsed. It reports
// whether the connection should continue.
func (s *Server) writeValue(w *bufio.Writer, v resp.Value) bool {
	b, err := v.Serialize()
	if err != nil {
		// Serialize only fails for a non-UTF-8/CR-LF-bearing SimpleString or
		// SimpleError payload; none of this server's own handlers ever
		// construct one, so this would indicate a bug rather than bad
		// client input. Report it the same way any other write failure is
		// reported: drop the connection.
		s.log.Error("server: failed to serialize reply: %v", err)
		return false
	}
	if _, err := w.Write(b); err != nil {
		s.log.Warn("server: write error: %v", err)
		return false
	}
	if err := w.Flush(); err != nil {
		s.log.Warn("server: flush error: %v", err)
		return false
	}
	return true
}
