package video

// PresentMode selects when a submitted surface becomes visible.
type PresentMode int

const (
	// PresentImmediate applies the new front surface right away.
	PresentImmediate PresentMode = iota
	// PresentNextVblank applies it at the next refresh boundary.
	PresentNextVblank
)

// Display is the external presentation collaborator. WaitVblank blocks
// until the next refresh boundary and is the frame loop's only timing
// source; Present submits a surface for output and must not retain it
// past the next swap.
type Display interface {
	Present(frame *Surface, mode PresentMode) error
	WaitVblank()
}

// Presenter owns the two surfaces of the double buffer and tracks which
// one is front (being shown) and which is back (being drawn). The
// application draws only into the surface returned by AcquireBack; the
// front surface belongs to the display until the next swap.
type Presenter struct {
	surfaces [2]*Surface
	back     int
	display  Display
}

// NewPresenter allocates both surfaces up front. This is the only
// allocation the presentation path ever performs; per-frame operation is
// allocation-free.
func NewPresenter(width, height, stride int, display Display) *Presenter {
	return &Presenter{
		surfaces: [2]*Surface{
			NewSurfaceWithStride(width, height, stride),
			NewSurfaceWithStride(width, height, stride),
		},
		back:    0,
		display: display,
	}
}

// AcquireBack returns the surface currently in the back role, the only
// surface the caller may write to.
func (p *Presenter) AcquireBack() *Surface {
	return p.surfaces[p.back]
}

// PresentAndSwap waits for the refresh boundary, submits the back surface
// for display and swaps the roles, so the previous front surface becomes
// the new writable back. Called exactly once per rendered frame, after all
// drawing into the back surface is done.
func (p *Presenter) PresentAndSwap() error {
	p.display.WaitVblank()
	if err := p.display.Present(p.surfaces[p.back], PresentImmediate); err != nil {
		return err
	}
	p.back = 1 - p.back
	return nil
}
