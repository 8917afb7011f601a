//go:build !linux || !cgo

package fbdev

import (
	"fmt"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/video"
)

// Backend stub for platforms without the Linux framebuffer device
type Backend struct{}

func New() *Backend {
	return &Backend{}
}

func (b *Backend) Init(config backend.Config) error {
	return fmt.Errorf("fbdev backend is only available on Linux")
}

func (b *Backend) Present(frame *video.Surface, mode video.PresentMode) error {
	return fmt.Errorf("fbdev backend is only available on Linux")
}

func (b *Backend) WaitVblank() {}

func (b *Backend) Poll() input.Buttons {
	return input.ButtonExit
}

func (b *Backend) Cleanup() error {
	return nil
}

var _ backend.Backend = (*Backend)(nil)
