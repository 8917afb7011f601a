// Package input turns per-frame button samples into session intents.
package input

// Buttons is a bitmask of the buttons held at a single poll. Backends map
// their physical keys onto these bits; the controller only ever sees the
// mask.
type Buttons uint32

const (
	ButtonNext Buttons = 1 << iota
	ButtonPrev
	ButtonOverlay
	ButtonSpeedUp
	ButtonSpeedDown
	ButtonExit
)

// Has reports whether every button in mask is held.
func (b Buttons) Has(mask Buttons) bool {
	return b&mask == mask
}

// Source provides the latest known button state without blocking. It is
// sampled exactly once per loop iteration.
type Source interface {
	Poll() Buttons
}
