package timing

import (
	"time"

	"github.com/screenburn/screentest/screentest/display"
)

// Limiter paces the frame loop for backends without a native vblank
// signal. WaitForNextFrame is the vblank-wait analog: it blocks until the
// next refresh boundary and is the loop's only timing source.
type Limiter interface {
	WaitForNextFrame()
	Reset()
}

// FrameDuration returns the target duration of a single frame at the
// display's refresh rate.
func FrameDuration() time.Duration {
	return time.Second / display.TargetFPS
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless runs).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

// TickerLimiter uses time.Ticker for simple, consistent frame pacing.
type TickerLimiter struct {
	ticker *time.Ticker
	ch     <-chan time.Time
}

func NewTickerLimiter() *TickerLimiter {
	ticker := time.NewTicker(FrameDuration())
	return &TickerLimiter{
		ticker: ticker,
		ch:     ticker.C,
	}
}

func (t *TickerLimiter) WaitForNextFrame() {
	<-t.ch
}

func (t *TickerLimiter) Reset() {
	t.ticker.Reset(FrameDuration())
}

func (t *TickerLimiter) Stop() {
	t.ticker.Stop()
}
