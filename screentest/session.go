// Package screentest drives the test pattern session: a single-threaded,
// frame-stepped loop that polls input, draws the selected pattern and
// overlay into the back surface and presents it at the display's refresh
// cadence.
package screentest

import (
	"log/slog"

	"github.com/screenburn/screentest/screentest/backend"
	"github.com/screenburn/screentest/screentest/display"
	"github.com/screenburn/screentest/screentest/input"
	"github.com/screenburn/screentest/screentest/overlay"
	"github.com/screenburn/screentest/screentest/pattern"
	"github.com/screenburn/screentest/screentest/video"
)

// State is the session's lifecycle state.
type State int

const (
	// StateWelcome shows the static welcome screen until confirmed.
	StateWelcome State = iota
	// StateRunning renders patterns and processes navigation.
	StateRunning
	// StateExiting terminates the loop; no further frames are rendered.
	StateExiting
)

// Options configures a session.
type Options struct {
	Backend backend.Backend
	Title   string
	Scale   int

	// StartPattern selects the first pattern shown after the welcome screen.
	StartPattern pattern.Pattern
	// Speed is the initial animation speed, clamped to [SpeedMin, SpeedMax].
	Speed int
	// SkipWelcome starts directly in the running state (headless runs).
	SkipWelcome bool
}

// Session owns all mutable per-session state: the active pattern, the
// animation phase, the overlay and the presenter. Nothing here is global
// and nothing allocates per frame.
type Session struct {
	backend    backend.Backend
	presenter  *video.Presenter
	controller *input.Controller

	state   State
	pattern pattern.Pattern
	anim    pattern.AnimationState
	overlay overlay.State
}

// NewSession initializes the backend and allocates the double-buffered
// surfaces. Any failure here is fatal; the loop never starts.
func NewSession(opts Options) (*Session, error) {
	if err := opts.Backend.Init(backend.Config{Title: opts.Title, Scale: opts.Scale}); err != nil {
		return nil, err
	}

	speed := opts.Speed
	if speed < display.SpeedMin {
		speed = display.DefaultSpeed
	}
	if speed > display.SpeedMax {
		speed = display.SpeedMax
	}

	start := opts.StartPattern
	if start < 0 || start >= pattern.Count {
		start = 0
	}

	s := &Session{
		backend: opts.Backend,
		presenter: video.NewPresenter(
			display.ScreenWidth,
			display.ScreenHeight,
			display.ScreenStride,
			opts.Backend,
		),
		controller: input.NewController(),
		state:      StateWelcome,
		pattern:    start,
		anim:       pattern.NewAnimationState(speed),
		overlay:    overlay.NewState(),
	}
	if opts.SkipWelcome {
		s.state = StateRunning
	}
	return s, nil
}

// Run executes the session loop until the exit transition.
func (s *Session) Run() error {
	defer s.backend.Cleanup()

	for s.state != StateExiting {
		if err := s.StepFrame(); err != nil {
			return err
		}
	}
	return nil
}

// StepFrame advances the session by exactly one frame: sample input, apply
// the resulting intents, draw into the back surface, present and swap,
// then advance the animation and overlay counters.
func (s *Session) StepFrame() error {
	intents := s.controller.Update(s.backend.Poll())
	s.apply(intents)

	if s.state == StateExiting {
		return nil
	}

	back := s.presenter.AcquireBack()

	switch s.state {
	case StateWelcome:
		overlay.DrawWelcome(back)
	case StateRunning:
		s.pattern.Draw(back, s.anim)
		if s.overlay.Visible {
			overlay.DrawIndicator(back, int(s.pattern)+1, int(pattern.Count))
		}
	}

	if err := s.presenter.PresentAndSwap(); err != nil {
		return err
	}

	if s.state == StateRunning {
		s.anim.Frame++
		s.overlay.Tick()
	}
	return nil
}

// apply performs the state transitions for one frame's intents.
func (s *Session) apply(intents input.Intents) {
	switch s.state {
	case StateWelcome:
		if intents.Confirm {
			s.state = StateRunning
			s.anim = pattern.NewAnimationState(s.anim.Speed)
			s.overlay = overlay.NewState()
			slog.Info("Session started", "pattern", s.pattern)
		}

	case StateRunning:
		if intents.Exit {
			s.state = StateExiting
			slog.Info("Session ending")
			return
		}
		if intents.Next {
			s.selectPattern(s.pattern.Next())
		}
		if intents.Prev {
			s.selectPattern(s.pattern.Prev())
		}
		if intents.ToggleOverlay {
			s.overlay.Toggle()
		}
		if intents.SpeedUp {
			if s.anim.Speed < display.SpeedMax {
				s.anim.Speed++
			}
			s.overlay.Show()
			slog.Debug("Speed changed", "speed", s.anim.Speed)
		}
		if intents.SpeedDown {
			if s.anim.Speed > display.SpeedMin {
				s.anim.Speed--
			}
			s.overlay.Show()
			slog.Debug("Speed changed", "speed", s.anim.Speed)
		}
	}
}

// selectPattern switches the active pattern, restarting its animation and
// re-showing the indicator.
func (s *Session) selectPattern(p pattern.Pattern) {
	s.pattern = p
	s.anim.Frame = 0
	s.overlay.Show()
	slog.Debug("Pattern selected", "pattern", p, "index", int(p)+1, "total", int(pattern.Count))
}

// Pattern returns the currently selected pattern.
func (s *Session) Pattern() pattern.Pattern { return s.pattern }

// State returns the session lifecycle state.
func (s *Session) State() State { return s.state }

// Animation returns the current animation state.
func (s *Session) Animation() pattern.AnimationState { return s.anim }

// Overlay returns the current overlay state.
func (s *Session) Overlay() overlay.State { return s.overlay }
