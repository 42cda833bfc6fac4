// File: test/e2e_setup_test.go
package test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/net/websocket"

	"github.com/Gao0602-kimi/gopong/game"
	"github.com/Gao0602-kimi/gopong/server"
	"github.com/Gao0602-kimi/gopong/utils"
)

// E2ESetupResult holds everything a scenario needs to talk to a running match.
type E2ESetupResult struct {
	Loop   *game.Loop
	Server *httptest.Server
	WsURL  string
	Origin string
	Cfg    utils.Config
}

// SetupE2ETest starts a match loop behind a real HTTP server with both the
// websocket and the plain state routes mounted.
func SetupE2ETest(t *testing.T, cfg utils.Config) E2ESetupResult {
	t.Helper()

	loop := game.NewLoop(cfg, game.NewRand(time.Now().UnixNano()), zerolog.Nop())
	loop.Start()

	wsServer := server.New(loop, zerolog.Nop())
	mux := http.NewServeMux()
	mux.Handle("/subscribe", websocket.Handler(wsServer.HandleSubscribe()))
	mux.HandleFunc("/state", wsServer.HandleState())
	s := httptest.NewServer(mux)

	t.Cleanup(func() {
		s.Close()
		loop.Stop()
		select {
		case <-loop.Done():
		case <-time.After(2 * time.Second):
			t.Error("loop did not stop during cleanup")
		}
	})

	return E2ESetupResult{
		Loop:   loop,
		Server: s,
		WsURL:  "ws" + strings.TrimPrefix(s.URL, "http") + "/subscribe",
		Origin: "http://localhost/",
		Cfg:    cfg,
	}
}

// dialPlayer connects and consumes the seat frame, asserting the role.
func dialPlayer(t *testing.T, setup E2ESetupResult, wantRole string) *websocket.Conn {
	t.Helper()
	ws, err := websocket.Dial(setup.WsURL, "", setup.Origin)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}

	var seat server.SeatMessage
	if err := ReadWsJSONMessage(t, ws, 5*time.Second, &seat); err != nil {
		t.Fatalf("reading seat frame failed: %v", err)
	}
	if seat.MessageType != "seat" {
		t.Fatalf("first frame type = %q, want seat", seat.MessageType)
	}
	if seat.Role != wantRole {
		t.Fatalf("seat role = %q, want %q", seat.Role, wantRole)
	}
	return ws
}
