package main

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/Gao0602-kimi/gopong/game"
	"github.com/Gao0602-kimi/gopong/server"
	"github.com/Gao0602-kimi/gopong/utils"
)

// backend feeds snapshots to the UI and carries input back to whoever runs
// the match.
type backend interface {
	Snapshot() game.Snapshot
	Send(command game.Command)
	Role() string
	Done() <-chan struct{}
	Close()
}

// localBackend runs the match in-process, no server involved.
type localBackend struct {
	loop *game.Loop
}

func newLocalBackend(cfg utils.Config) *localBackend {
	loop := game.NewLoop(cfg, game.NewRand(time.Now().UnixNano()), zerolog.Nop())
	loop.Start()
	return &localBackend{loop: loop}
}

func (b *localBackend) Snapshot() game.Snapshot   { return b.loop.Snapshot() }
func (b *localBackend) Send(command game.Command) { b.loop.Tell(command) }
func (b *localBackend) Role() string              { return server.RolePlayer }
func (b *localBackend) Done() <-chan struct{}     { return b.loop.Done() }
func (b *localBackend) Close()                    { b.loop.Stop() }

// remoteBackend subscribes to a running server over websocket.
type remoteBackend struct {
	ws     *websocket.Conn
	latest atomic.Value // game.Snapshot
	role   atomic.Value // string
	done   chan struct{}
}

func newRemoteBackend(addr string) (*remoteBackend, error) {
	wsURL := fmt.Sprintf("ws://%s/subscribe", addr)
	origin := fmt.Sprintf("http://%s/", addr)
	ws, err := websocket.Dial(wsURL, "", origin)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", wsURL, err)
	}

	b := &remoteBackend{ws: ws, done: make(chan struct{})}
	b.latest.Store(game.Snapshot{})
	b.role.Store("")
	go b.receive()
	return b, nil
}

// receive sorts incoming frames: the seat assignment first, snapshots after.
func (b *remoteBackend) receive() {
	defer close(b.done)
	for {
		var data []byte
		if err := websocket.Message.Receive(b.ws, &data); err != nil {
			return
		}

		var head struct {
			MessageType string `json:"messageType"`
		}
		if err := json.Unmarshal(data, &head); err != nil {
			continue
		}
		if head.MessageType == "seat" {
			var seat server.SeatMessage
			if err := json.Unmarshal(data, &seat); err == nil {
				b.role.Store(seat.Role)
			}
			continue
		}

		var snap game.Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			b.latest.Store(snap)
		}
	}
}

func (b *remoteBackend) Snapshot() game.Snapshot {
	snap, _ := b.latest.Load().(game.Snapshot)
	return snap
}

func (b *remoteBackend) Send(command game.Command) {
	msg, ok := wireMessage(command)
	if !ok {
		return
	}
	// A dead connection surfaces through Done; nothing useful to do here.
	_ = websocket.JSON.Send(b.ws, msg)
}

func (b *remoteBackend) Role() string {
	role, _ := b.role.Load().(string)
	return role
}

func (b *remoteBackend) Done() <-chan struct{} { return b.done }

func (b *remoteBackend) Close() { b.ws.Close() }

// wireMessage translates a match command into its wire form.
func wireMessage(command game.Command) (server.InputMessage, bool) {
	switch c := command.(type) {
	case game.PointerMoved:
		return server.InputMessage{Type: server.MessagePointer, Y: c.Y}, true
	case game.KeyHeld:
		return server.InputMessage{Type: server.MessageKey, Dir: string(c.Direction)}, true
	case game.PauseToggle:
		return server.InputMessage{Type: server.MessagePause}, true
	case game.ResetCommand:
		return server.InputMessage{Type: server.MessageReset}, true
	case game.QuitCommand:
		return server.InputMessage{Type: server.MessageQuit}, true
	}
	return server.InputMessage{}, false
}
