//go:build sdl2

// Package sdl2 implements the Backend interface in an SDL2 window.
// Building it requires the SDL2 development libraries; default builds use
// the stub instead (build tag sdl2).
package sdl2

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/video"
)

// Backend renders frames into a streaming texture and tracks held keys
// from keydown/keyup events.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	config   backend.Config

	held   input.Buttons
	closed bool

	width  int
	height int
	stride int
}

func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.Config) error {
	s.config = config

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %v", err)
	}
	return nil
}

// open lazily creates the window and texture once the surface dimensions
// are known from the first presented frame.
func (s *Backend) open(frame *video.Surface) error {
	scale := s.config.Scale
	if scale < 1 {
		scale = 1
	}

	s.width = frame.Width()
	s.height = frame.Height()
	s.stride = frame.Stride()

	window, err := sdl.CreateWindow(
		s.config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(s.width*scale),
		int32(s.height*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("failed to create window: %v", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create renderer: %v", err)
	}
	s.renderer = renderer

	// The surface's A8B8G8R8 packing is byte order R,G,B,A in memory,
	// which is SDL's ABGR8888, so rows upload without conversion.
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(s.width),
		int32(s.height),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("failed to create texture: %v", err)
	}
	s.texture = texture

	return nil
}

// keyMapping maps SDL2 keys to buttons.
var keyMapping = map[sdl.Keycode]input.Buttons{
	sdl.K_RIGHT:  input.ButtonNext,
	sdl.K_n:      input.ButtonNext,
	sdl.K_SPACE:  input.ButtonNext,
	sdl.K_RETURN: input.ButtonNext,
	sdl.K_LEFT:   input.ButtonPrev,
	sdl.K_p:      input.ButtonPrev,
	sdl.K_i:      input.ButtonOverlay,
	sdl.K_TAB:    input.ButtonOverlay,
	sdl.K_PLUS:   input.ButtonSpeedUp,
	sdl.K_EQUALS: input.ButtonSpeedUp,
	sdl.K_MINUS:  input.ButtonSpeedDown,
	sdl.K_ESCAPE: input.ButtonExit,
	sdl.K_q:      input.ButtonExit,
}

// Poll pumps the SDL event queue and returns the held-button mask.
func (s *Backend) Poll() input.Buttons {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.closed = true
		case *sdl.KeyboardEvent:
			button, ok := keyMapping[e.Keysym.Sym]
			if !ok {
				break
			}
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				s.held |= button
			} else if e.Type == sdl.KEYUP {
				s.held &^= button
			}
		}
	}

	if s.closed {
		return s.held | input.ButtonExit
	}
	return s.held
}

func (s *Backend) Present(frame *video.Surface, _ video.PresentMode) error {
	if s.window == nil {
		if err := s.open(frame); err != nil {
			return err
		}
	}

	pixels := frame.ToSlice()
	s.texture.Update(nil, unsafe.Pointer(&pixels[0]), s.stride*4)

	s.renderer.SetDrawColor(0, 0, 0, 255)
	s.renderer.Clear()
	s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()
	return nil
}

// WaitVblank is a no-op: the renderer is created with PRESENTVSYNC, so
// Present itself blocks on the refresh boundary.
func (s *Backend) WaitVblank() {}

func (s *Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

var _ backend.Backend = (*Backend)(nil)
