//go:build !sdl2

package sdl2

import (
	"fmt"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/video"
)

// Backend stub for when SDL2 is not available
type Backend struct{}

// New creates a stub SDL2 backend that returns an error
func New() *Backend {
	return &Backend{}
}

// Init returns an error indicating SDL2 is not available
func (s *Backend) Init(config backend.Config) error {
	return fmt.Errorf("SDL2 backend not available - build with -tags sdl2 to enable")
}

func (s *Backend) Present(frame *video.Surface, mode video.PresentMode) error {
	return fmt.Errorf("SDL2 backend not available")
}

func (s *Backend) WaitVblank() {}

func (s *Backend) Poll() input.Buttons {
	return input.ButtonExit
}

func (s *Backend) Cleanup() error {
	return nil
}

var _ backend.Backend = (*Backend)(nil)
