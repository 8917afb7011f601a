// Package terminal implements the Backend interface on top of tcell,
// rendering the surface into terminal cells and sampling keyboard state
// into the button mask.
package terminal

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/timing"
	"github.com/screenburn/screentest/screentest/video"
)

// keyTimeout is how long a key press counts as held. Terminals deliver no
// key-up events, so a button is "held" while key repeat keeps refreshing
// its timestamp.
const keyTimeout = 100 * time.Millisecond

// Backend renders frames to the terminal with tcell.
type Backend struct {
	screen  tcell.Screen
	limiter *timing.TickerLimiter
	config  backend.Config

	mu        sync.Mutex
	keyStates map[input.Buttons]time.Time
	sigExit   bool
}

func New() *Backend {
	return &Backend{
		keyStates: make(map[input.Buttons]time.Time),
	}
}

func (t *Backend) Init(config backend.Config) error {
	t.config = config

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal: %v", err)
	}
	t.screen = screen

	t.screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	t.screen.Clear()

	t.limiter = timing.NewTickerLimiter()

	go t.handleSignals()

	return nil
}

func (t *Backend) handleSignals() {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
	<-signals

	t.mu.Lock()
	t.sigExit = true
	t.mu.Unlock()
}

// keyMapping maps special tcell keys to buttons.
var keyMapping = map[tcell.Key]input.Buttons{
	tcell.KeyRight:  input.ButtonNext,
	tcell.KeyLeft:   input.ButtonPrev,
	tcell.KeyEnter:  input.ButtonNext,
	tcell.KeyTab:    input.ButtonOverlay,
	tcell.KeyEscape: input.ButtonExit,
	tcell.KeyCtrlC:  input.ButtonExit,
}

// runeMapping maps printable keys to buttons.
var runeMapping = map[rune]input.Buttons{
	'n': input.ButtonNext,
	' ': input.ButtonNext,
	'p': input.ButtonPrev,
	'i': input.ButtonOverlay,
	'+': input.ButtonSpeedUp,
	'=': input.ButtonSpeedUp,
	'-': input.ButtonSpeedDown,
	'_': input.ButtonSpeedDown,
	'q': input.ButtonExit,
}

// Poll drains pending key events and returns the mask of buttons whose
// last press is recent enough to count as held.
func (t *Backend) Poll() input.Buttons {
	now := time.Now()

	for t.screen.HasPendingEvent() {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			t.processKeyEvent(ev, now)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}

	var held input.Buttons
	t.mu.Lock()
	for button, lastPressed := range t.keyStates {
		if now.Sub(lastPressed) < keyTimeout {
			held |= button
		} else {
			delete(t.keyStates, button)
		}
	}
	if t.sigExit {
		held |= input.ButtonExit
	}
	t.mu.Unlock()

	return held
}

func (t *Backend) processKeyEvent(ev *tcell.EventKey, now time.Time) {
	if button, ok := keyMapping[ev.Key()]; ok {
		t.mu.Lock()
		t.keyStates[button] = now
		t.mu.Unlock()
		return
	}
	if ev.Key() == tcell.KeyRune {
		if button, ok := runeMapping[ev.Rune()]; ok {
			t.mu.Lock()
			t.keyStates[button] = now
			t.mu.Unlock()
		}
	}
}

// Present draws the surface into the terminal, sampling one pixel per
// cell. Colors go into the cell background so the image survives any
// terminal font.
func (t *Backend) Present(frame *video.Surface, _ video.PresentMode) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}

	width := frame.Width()
	height := frame.Height()

	for cy := 0; cy < rows; cy++ {
		py := cy * height / rows
		for cx := 0; cx < cols; cx++ {
			px := cx * width / cols
			r, g, b := video.Unpack(frame.GetPixel(px, py))
			style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
			t.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}

	t.screen.Show()
	return nil
}

// WaitVblank paces the loop with a ticker; terminals have no real vblank.
func (t *Backend) WaitVblank() {
	t.limiter.WaitForNextFrame()
}

func (t *Backend) Cleanup() error {
	if t.limiter != nil {
		t.limiter.Stop()
	}
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

var _ backend.Backend = (*Backend)(nil)
