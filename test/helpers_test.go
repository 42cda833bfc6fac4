// File: test/helpers_test.go
package test

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"golang.org/x/net/websocket"

	"github.com/Gao0602-kimi/gopong/game"
)

// ReadWsJSONMessage reads one JSON frame from the websocket under a read
// deadline, so a missing frame fails the test instead of hanging it.
func ReadWsJSONMessage(t *testing.T, ws *websocket.Conn, timeout time.Duration, v interface{}) error {
	t.Helper()
	if ws == nil {
		return errors.New("websocket connection is nil")
	}
	if err := ws.SetReadDeadline(time.Now().Add(timeout)); err != nil {
		return fmt.Errorf("set read deadline: %w", err)
	}
	err := websocket.JSON.Receive(ws, v)
	_ = ws.SetReadDeadline(time.Time{})
	return err
}

// isConnGone reports whether a read error means the connection is finished
// rather than a transient decode problem.
func isConnGone(err error) bool {
	return errors.Is(err, io.EOF) ||
		strings.Contains(err.Error(), "closed") ||
		strings.Contains(err.Error(), "reset by peer")
}

// waitForSnapshotCondition keeps reading snapshot frames until the condition
// holds or the timeout elapses. It returns the last snapshot it saw.
func waitForSnapshotCondition(t *testing.T, ws *websocket.Conn, timeout time.Duration, condition func(snap game.Snapshot) bool) (game.Snapshot, bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	var last game.Snapshot
	for time.Now().Before(deadline) {
		var snap game.Snapshot
		err := ReadWsJSONMessage(t, ws, time.Second, &snap)
		if err != nil {
			if isConnGone(err) {
				t.Logf("connection closed while waiting for state condition: %v", err)
				return last, false
			}
			t.Logf("error reading state while waiting for condition: %v", err)
			continue
		}
		last = snap
		if condition(snap) {
			return snap, true
		}
	}
	t.Logf("timeout waiting for state condition after %v", timeout)
	return last, false
}
