package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lguibr/asciiring/helpers"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"

	"github.com/Gao0602-kimi/gopong/game"
	"github.com/Gao0602-kimi/gopong/render"
	"github.com/Gao0602-kimi/gopong/server"
	"github.com/Gao0602-kimi/gopong/utils"
)

// Frame size for the plain ASCII stream.
const (
	asciiCols = 100
	asciiRows = 30
)

func main() {
	addr := flag.String("addr", "localhost:3001", "server address for remote play")
	local := flag.Bool("local", false, "run the match in-process instead of connecting")
	ascii := flag.Bool("ascii", false, "spectate as a plain ASCII stream, no TUI")
	configPath := flag.String("config", "", "path to a TOML config file, local mode only")
	flag.Parse()

	b, err := buildBackend(*local, *addr, *configPath)
	if err != nil {
		fmt.Println("Error starting client:", err)
		os.Exit(1)
	}
	defer b.Close()

	if *ascii {
		runASCII(b)
		return
	}
	if err := runUI(b); err != nil {
		fmt.Println("Error running UI:", err)
		os.Exit(1)
	}
}

func buildBackend(local bool, addr, configPath string) (backend, error) {
	if !local {
		return newRemoteBackend(addr)
	}
	cfg, err := utils.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	return newLocalBackend(cfg), nil
}

// runASCII streams colored frames to stdout until interrupted. Spectator
// only: no input is read.
func runASCII(b backend) {
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	helpers.ClearScreen()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-interrupt:
			return
		case <-b.Done():
			return
		case <-ticker.C:
			fmt.Print("\033[H" + render.Frame(b.Snapshot(), asciiCols, asciiRows))
		}
	}
}

func runUI(b backend) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	termbox.SetInputMode(termbox.InputEsc | termbox.InputMouse)

	events := make(chan termbox.Event)
	quit := make(chan struct{})
	go func() {
		for {
			select {
			case <-quit:
				return
			default:
				events <- termbox.PollEvent()
			}
		}
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	for {
		select {
		case <-b.Done():
			close(quit)
			return nil
		case ev := <-events:
			command, stop := handleEvent(ev, b.Snapshot())
			if stop {
				close(quit)
				b.Send(game.QuitCommand{})
				return nil
			}
			if command != nil {
				b.Send(command)
			}
		case <-ticker.C:
			draw(b.Snapshot(), b.Role())
		}
	}
}

// handleEvent maps one terminal event to a match command. stop reports that
// the player wants out.
func handleEvent(ev termbox.Event, snap game.Snapshot) (command game.Command, stop bool) {
	switch ev.Type {
	case termbox.EventMouse:
		if ev.Key == termbox.MouseRelease {
			return nil, false
		}
		_, rows := termbox.Size()
		if rows <= 2 || snap.FieldHeight <= 0 {
			return nil, false
		}
		// Row 0 is the HUD, the last row the hint; the field spans the rest.
		fieldY := float64(ev.MouseY-1) / float64(rows-2) * snap.FieldHeight
		return game.PointerMoved{Y: fieldY}, false
	case termbox.EventKey:
		switch ev.Key {
		case termbox.KeyArrowUp:
			return game.KeyHeld{Direction: game.DirUp}, false
		case termbox.KeyArrowDown:
			return game.KeyHeld{Direction: game.DirDown}, false
		case termbox.KeySpace:
			return game.PauseToggle{}, false
		case termbox.KeyEsc, termbox.KeyCtrlC:
			return nil, true
		}
		switch ev.Ch {
		case 'k', 'K':
			return game.KeyHeld{Direction: game.DirUp}, false
		case 'j', 'J':
			return game.KeyHeld{Direction: game.DirDown}, false
		case 'r', 'R':
			return game.ResetCommand{}, false
		case 'q', 'Q':
			return nil, true
		}
	}
	return nil, false
}

const hintLine = "mouse/arrows/kj move | space pause | r reset | q quit"

// drawText centers a line of text on one terminal row.
func drawText(row, cols int, text string, fg termbox.Attribute) {
	x := (cols - runewidth.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	for _, c := range text {
		termbox.SetCell(x, row, c, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(c)
	}
}

// draw paints the HUD line, the rasterized field, and the hint line straight
// into termbox cells.
func draw(snap game.Snapshot, role string) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	cols, rows := termbox.Size()
	if cols < 2 || rows < 3 {
		termbox.Flush()
		return
	}

	hud := fmt.Sprintf("%d : %d", snap.LeftScore, snap.RightScore)
	if snap.Paused {
		hud += "  [paused]"
	}
	if role == server.RoleSpectator {
		hud += "  (spectating)"
	}
	drawText(0, cols, hud, termbox.ColorWhite)

	for y, row := range render.Rasterize(snap, cols, rows-2) {
		for cx, pixel := range row {
			if pixel == render.ColorBackground {
				continue
			}
			fg := termbox.ColorWhite
			if pixel == render.ColorPaddle {
				fg = termbox.ColorCyan
			}
			termbox.SetCell(cx, y+1, rune(render.Glyph(pixel)), fg, termbox.ColorDefault)
		}
	}

	drawText(rows-1, cols, hintLine, termbox.ColorBlue)
	termbox.Flush()
}
