//go:build linux && cgo

// Package fbdev implements the Backend interface on the Linux framebuffer
// device, scaling the surface to whatever mode /dev/fb0 is in. Key input
// comes from the controlling terminal switched into raw mode.
package fbdev

import (
	"fmt"
	"image"
	"os"
	"sync"
	"time"

	fb "github.com/gonutz/framebuffer"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/term"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/timing"
	"github.com/screenburn/screentest/screentest/video"
)

// keyTimeout mirrors the terminal backend: raw tty input has no key-up
// events, so a press counts as held until key repeat stops refreshing it.
const keyTimeout = 100 * time.Millisecond

// Backend presents frames to /dev/fb0.
type Backend struct {
	device  *fb.Device
	canvas  *image.RGBA
	limiter *timing.TickerLimiter

	ttyState *term.State

	mu        sync.Mutex
	keyStates map[input.Buttons]time.Time
}

func New() *Backend {
	return &Backend{
		keyStates: make(map[input.Buttons]time.Time),
	}
}

func (b *Backend) Init(config backend.Config) error {
	device, err := fb.Open("/dev/fb0")
	if err != nil {
		return fmt.Errorf("failed to open framebuffer device: %v", err)
	}
	b.device = device

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		device.Close()
		return fmt.Errorf("failed to set terminal raw mode: %v", err)
	}
	b.ttyState = state

	b.limiter = timing.NewTickerLimiter()

	go b.readKeys()

	return nil
}

// readKeys consumes raw tty bytes and records press timestamps. Arrow keys
// arrive as ESC [ C / ESC [ D sequences; a bare ESC is exit.
func (b *Backend) readKeys() {
	buf := make([]byte, 8)
	for {
		n, err := os.Stdin.Read(buf)
		if err != nil {
			return
		}
		now := time.Now()
		for i := 0; i < n; i++ {
			var button input.Buttons
			switch buf[i] {
			case 0x1B:
				if i+2 < n && buf[i+1] == '[' {
					switch buf[i+2] {
					case 'C':
						button = input.ButtonNext
					case 'D':
						button = input.ButtonPrev
					}
					i += 2
				} else {
					button = input.ButtonExit
				}
			case 'n', ' ', '\r':
				button = input.ButtonNext
			case 'p':
				button = input.ButtonPrev
			case 'i', '\t':
				button = input.ButtonOverlay
			case '+', '=':
				button = input.ButtonSpeedUp
			case '-', '_':
				button = input.ButtonSpeedDown
			case 'q', 0x03:
				button = input.ButtonExit
			}
			if button != 0 {
				b.mu.Lock()
				b.keyStates[button] = now
				b.mu.Unlock()
			}
		}
	}
}

func (b *Backend) Poll() input.Buttons {
	now := time.Now()
	var held input.Buttons

	b.mu.Lock()
	for button, lastPressed := range b.keyStates {
		if now.Sub(lastPressed) < keyTimeout {
			held |= button
		} else {
			delete(b.keyStates, button)
		}
	}
	b.mu.Unlock()

	return held
}

func (b *Backend) Present(frame *video.Surface, _ video.PresentMode) error {
	if b.canvas == nil {
		b.canvas = image.NewRGBA(image.Rect(0, 0, frame.Width(), frame.Height()))
	}

	// The surface bytes are already R,G,B,A in memory; copy rows without
	// the stride padding into the canvas, then scale onto the device.
	width := frame.Width()
	for y := 0; y < frame.Height(); y++ {
		row := frame.Row(y)
		off := b.canvas.PixOffset(0, y)
		for x := 0; x < width; x++ {
			p := row[x]
			b.canvas.Pix[off] = byte(p)
			b.canvas.Pix[off+1] = byte(p >> 8)
			b.canvas.Pix[off+2] = byte(p >> 16)
			b.canvas.Pix[off+3] = 0xFF
			off += 4
		}
	}

	xdraw.NearestNeighbor.Scale(b.device, b.device.Bounds(), b.canvas, b.canvas.Bounds(), xdraw.Src, nil)
	return nil
}

// WaitVblank paces the loop with a ticker; fbdev exposes no vblank signal.
func (b *Backend) WaitVblank() {
	b.limiter.WaitForNextFrame()
}

func (b *Backend) Cleanup() error {
	if b.limiter != nil {
		b.limiter.Stop()
	}
	if b.ttyState != nil {
		term.Restore(int(os.Stdin.Fd()), b.ttyState)
	}
	if b.device != nil {
		b.device.Close()
	}
	return nil
}

var _ backend.Backend = (*Backend)(nil)
