package server

import (
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/Gao0602-kimi/gopong/game"
)

// Server fans a match loop out to websocket subscribers. Exactly one
// connection holds the control seat at a time; everyone else spectates.
// The seat frees when its holder disconnects and the next connection to
// arrive inherits it.
type Server struct {
	loop *game.Loop
	log  zerolog.Logger

	mu         sync.Mutex
	conns      map[*websocket.Conn]bool
	controller *websocket.Conn
}

func New(loop *game.Loop, logger zerolog.Logger) *Server {
	return &Server{
		loop:  loop,
		log:   logger,
		conns: make(map[*websocket.Conn]bool),
	}
}

// register adds a connection and seats it as the player when the seat is
// free. Returns the role the connection was given.
func (s *Server) register(ws *websocket.Conn) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conns[ws] = true
	if s.controller == nil {
		s.controller = ws
		return RolePlayer
	}
	return RoleSpectator
}

// unregister drops a connection, freeing the control seat if it held it.
func (s *Server) unregister(ws *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conns, ws)
	if s.controller == ws {
		s.controller = nil
	}
}

func (s *Server) isController(ws *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.controller == ws
}

// ClientCount reports how many connections are currently subscribed.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}
