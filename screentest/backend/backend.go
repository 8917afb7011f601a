package backend

import (
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/video"
)

// Backend is a complete presentation platform: it shows surfaces, paces
// the loop to the display refresh and reports button state. A backend is
// both the video.Display collaborator of the presenter and the
// input.Source sampled by the session loop.
//
// Contract per frame: the session calls Poll once, draws into the back
// surface, then the presenter calls WaitVblank followed by Present. A
// backend must not retain a presented surface past the next Present call.
type Backend interface {
	// Init opens the platform resources. Failure here is fatal: the
	// session never starts.
	Init(config Config) error

	// Present submits a surface for output.
	Present(frame *video.Surface, mode video.PresentMode) error

	// WaitVblank blocks until the next refresh boundary.
	WaitVblank()

	// Poll returns the latest known button state without blocking.
	Poll() input.Buttons

	// Cleanup releases platform resources on shutdown.
	Cleanup() error
}

// Config holds backend configuration.
type Config struct {
	Title string
	Scale int
}

// A Backend serves as both collaborator roles; keep the conformance
// explicit so a drift breaks the build.
var (
	_ video.Display = Backend(nil)
	_ input.Source  = Backend(nil)
)
