// Package headless implements a display-less backend for automated runs:
// input comes from a per-frame script, presentation is a counter plus
// optional PNG snapshots, and there is no frame pacing.
package headless

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/snapshot"
	"github.com/screenburn/screentest/screentest/video"
)

// SnapshotConfig controls periodic PNG snapshots of presented frames.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int
	Directory string
	BaseName  string
}

// Backend runs the session for a fixed number of frames. Button samples
// come from an optional script keyed by frame number; past the frame
// budget every poll reports the exit button held.
type Backend struct {
	config         backend.Config
	maxFrames      int
	frameCount     int
	script         map[int]input.Buttons
	snapshotConfig SnapshotConfig
}

func New(maxFrames int, script map[int]input.Buttons, snapshotConfig SnapshotConfig) *Backend {
	return &Backend{
		maxFrames:      maxFrames,
		script:         script,
		snapshotConfig: snapshotConfig,
	}
}

func (h *Backend) Init(config backend.Config) error {
	h.config = config

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshotConfig.Interval,
		"snapshot_dir", h.snapshotConfig.Directory)
	return nil
}

func (h *Backend) Present(frame *video.Surface, _ video.PresentMode) error {
	h.frameCount++

	if h.snapshotConfig.Enabled && h.frameCount%h.snapshotConfig.Interval == 0 {
		name := fmt.Sprintf("%s_frame_%d", h.snapshotConfig.BaseName, h.frameCount)
		if err := snapshot.Save(frame, name, h.snapshotConfig.Directory); err != nil {
			slog.Error("Failed to save snapshot", "frame", h.frameCount, "error", err)
		}
	}

	if h.frameCount%60 == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}
	return nil
}

func (h *Backend) WaitVblank() {}

// Poll returns the scripted sample for the upcoming frame. Scripts are
// keyed by the number of frames presented so far, so frame 0 is the first
// poll of the session.
func (h *Backend) Poll() input.Buttons {
	if h.frameCount >= h.maxFrames {
		return input.ButtonExit
	}
	return h.script[h.frameCount]
}

func (h *Backend) Cleanup() error {
	slog.Info("Headless execution completed", "frames", h.frameCount)
	return nil
}

// FrameCount reports how many frames have been presented.
func (h *Backend) FrameCount() int {
	return h.frameCount
}

var _ backend.Backend = (*Backend)(nil)
