// File: game/loop.go
package game

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Gao0602-kimi/gopong/utils"
)

// mailboxSize bounds the command backlog between ticks. Input is refreshed
// every tick, so a command dropped on overflow costs one tick of staleness
// at worst.
const mailboxSize = 64

// Loop drives a Match at a fixed tick rate from a single goroutine. Commands
// arrive through a buffered mailbox and fold into one Input per tick; the
// resulting snapshot and its JSON form publish through atomic values so
// readers never contend with the simulation.
type Loop struct {
	match *Match
	cfg   utils.Config
	log   zerolog.Logger

	commands chan Command
	dropped  atomic.Int64

	snapshot  atomic.Value // Snapshot
	stateJSON atomic.Value // []byte

	startOnce sync.Once
	stopOnce  sync.Once
	stopCh    chan struct{}
	doneCh    chan struct{}
}

// NewLoop assembles a loop around a fresh match and publishes the initial
// snapshot so readers see valid state before the first tick.
func NewLoop(cfg utils.Config, rng Rand, logger zerolog.Logger) *Loop {
	l := &Loop{
		match:    NewMatch(cfg, rng),
		cfg:      cfg,
		log:      logger,
		commands: make(chan Command, mailboxSize),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	l.publish()
	return l
}

// Start launches the tick goroutine. Subsequent calls are no-ops.
func (l *Loop) Start() {
	l.startOnce.Do(func() {
		go l.run()
	})
}

// Stop ends the loop from outside. Safe to call from any goroutine, any
// number of times; Done unblocks once the tick goroutine has exited.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
	})
}

// Done closes when the loop has fully stopped, whether by Stop or by a quit
// command reaching the match.
func (l *Loop) Done() <-chan struct{} { return l.doneCh }

// Config returns the immutable configuration the loop runs under.
func (l *Loop) Config() utils.Config { return l.cfg }

// Tell queues a command for the next tick without blocking the caller. On a
// full mailbox the command is dropped and counted.
func (l *Loop) Tell(command Command) {
	select {
	case l.commands <- command:
	default:
		n := l.dropped.Add(1)
		l.log.Warn().Int64("dropped", n).Msgf("mailbox full, dropping %T", command)
	}
}

// Snapshot returns the most recently published render state.
func (l *Loop) Snapshot() Snapshot {
	return l.snapshot.Load().(Snapshot)
}

// StateJSON returns the most recently published snapshot as marshalled JSON.
func (l *Loop) StateJSON() []byte {
	return l.stateJSON.Load().([]byte)
}

func (l *Loop) run() {
	defer close(l.doneCh)

	ticker := time.NewTicker(l.cfg.TickPeriod())
	defer ticker.Stop()

	l.log.Info().
		Int("tickRate", l.cfg.TickRate).
		Float64("fieldWidth", l.cfg.FieldWidth).
		Float64("fieldHeight", l.cfg.FieldHeight).
		Msg("match loop started")

	for {
		select {
		case <-l.stopCh:
			l.log.Info().Uint64("tick", l.Snapshot().Tick).Msg("match loop stopped")
			return
		case <-ticker.C:
			l.step()
			if l.match.Status() == StatusTerminated {
				l.log.Info().Uint64("tick", l.Snapshot().Tick).Msg("match terminated")
				return
			}
		}
	}
}

// step runs exactly one tick: drain input, advance the match, publish.
func (l *Loop) step() {
	in := Gather(l.drain())

	prevLeft, prevRight := l.match.Scores()
	prevStatus := l.match.Status()

	l.match.Tick(in)
	l.publish()

	left, right := l.match.Scores()
	if left > prevLeft || right > prevRight {
		l.log.Info().Int("left", left).Int("right", right).Msg("point scored")
	}
	if in.Reset {
		l.log.Info().Msg("match reset")
	}
	if status := l.match.Status(); status != prevStatus && status != StatusTerminated {
		l.log.Info().Str("status", string(status)).Msg("status changed")
	}
}

func (l *Loop) drain() []Command {
	var batch []Command
	for {
		select {
		case command := <-l.commands:
			batch = append(batch, command)
		default:
			return batch
		}
	}
}

func (l *Loop) publish() {
	snap := l.match.Snapshot()
	l.snapshot.Store(snap)

	payload, err := json.Marshal(snap)
	if err != nil {
		l.log.Error().Err(err).Msg("marshal snapshot")
		return
	}
	l.stateJSON.Store(payload)
}
