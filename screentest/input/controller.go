package input

// Intents is the set of user-facing actions derived from one input sample.
// Each field corresponds to a button edge in that sample.
type Intents struct {
	Next          bool
	Prev          bool
	ToggleOverlay bool
	SpeedUp       bool
	SpeedDown     bool
	Exit          bool
	Confirm       bool
}

// Controller edge-detects button transitions between consecutive samples.
// An edge is a bit set in the current sample and unset in the previous one;
// holding a button produces exactly one intent.
type Controller struct {
	prev Buttons
}

func NewController() *Controller {
	return &Controller{}
}

// Update consumes one sample and returns the intents its edges produce.
func (c *Controller) Update(sample Buttons) Intents {
	pressed := sample &^ c.prev
	c.prev = sample

	return Intents{
		Next:          pressed.Has(ButtonNext),
		Prev:          pressed.Has(ButtonPrev),
		ToggleOverlay: pressed.Has(ButtonOverlay),
		SpeedUp:       pressed.Has(ButtonSpeedUp),
		SpeedDown:     pressed.Has(ButtonSpeedDown),
		Exit:          pressed.Has(ButtonExit),
		// Any of the navigation or exit buttons confirms the welcome screen.
		Confirm: pressed&(ButtonNext|ButtonExit) != 0,
	}
}
