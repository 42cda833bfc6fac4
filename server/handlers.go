// File: server/handlers.go
package server

import (
	"errors"
	"io"
	"net"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/net/websocket"
)

// HandleSubscribe returns the websocket handler for /subscribe. It seats the
// connection, announces the role, streams snapshots at the tick rate, and
// reads input frames until the client goes away.
func (s *Server) HandleSubscribe() func(ws *websocket.Conn) {
	return func(ws *websocket.Conn) {
		addr := ws.Request().RemoteAddr

		defer func() {
			if r := recover(); r != nil {
				s.log.Error().
					Str("addr", addr).
					Interface("panic", r).
					Bytes("stack", debug.Stack()).
					Msg("recovered in subscribe handler")
			}
			s.unregister(ws)
			ws.Close()
			s.log.Info().Str("addr", addr).Msg("client disconnected")
		}()

		role := s.register(ws)
		s.log.Info().Str("addr", addr).Str("role", role).Msg("client connected")

		if err := websocket.JSON.Send(ws, SeatMessage{MessageType: "seat", Role: role}); err != nil {
			s.log.Warn().Str("addr", addr).Err(err).Msg("seat message failed")
			return
		}

		stopWriter := make(chan struct{})
		defer close(stopWriter)
		go s.writeState(ws, stopWriter)

		s.readLoop(ws)
	}
}

// writeState pushes the latest snapshot to one client at the tick rate until
// the client leaves or the loop shuts down.
func (s *Server) writeState(ws *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(s.loop.Config().TickPeriod())
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-s.loop.Done():
			// Wake the read loop so the handler unwinds.
			ws.Close()
			return
		case <-ticker.C:
			if err := websocket.JSON.Send(ws, s.loop.Snapshot()); err != nil {
				return
			}
		}
	}
}

// readLoop consumes input frames until the connection drops. Only the seat
// holder steers; spectator input is ignored.
func (s *Server) readLoop(ws *websocket.Conn) {
	addr := ws.Request().RemoteAddr
	for {
		var msg InputMessage
		if err := websocket.JSON.Receive(ws, &msg); err != nil {
			if !isClosedErr(err) {
				s.log.Warn().Str("addr", addr).Err(err).Msg("read failed")
			}
			return
		}

		if msg.Type == MessageQuit {
			return
		}
		if !s.isController(ws) {
			continue
		}
		command, ok := msg.Command()
		if !ok {
			s.log.Debug().Str("addr", addr).Str("type", msg.Type).Msg("ignoring unknown input type")
			continue
		}
		s.loop.Tell(command)
	}
}

// isClosedErr reports whether a read error just means the peer went away.
func isClosedErr(err error) bool {
	if errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "use of closed network connection")
}

// HandleState serves the latest snapshot as plain HTTP JSON, for anything
// that wants the score without holding a websocket open.
func (s *Server) HandleState() func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(s.loop.StateJSON()); err != nil {
			s.log.Warn().Err(err).Msg("state response failed")
		}
	}
}
