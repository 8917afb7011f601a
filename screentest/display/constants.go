package display

// Screen dimensions
const (
	// ScreenWidth is the logical width of the output surface in pixels
	ScreenWidth = 960
	// ScreenHeight is the logical height of the output surface in pixels
	ScreenHeight = 544
	// ScreenStride is the row stride of the output surface in pixels.
	// The stride may exceed the logical width; padding pixels at the end
	// of each row are never written.
	ScreenStride = 960
)

// Timing constants
const (
	// TargetFPS is the display refresh rate the frame loop is bound to
	TargetFPS = 60
)

// Animation constants
const (
	// SpeedMin is the minimum animation speed multiplier
	SpeedMin = 1
	// SpeedMax is the maximum animation speed multiplier
	SpeedMax = 10
	// DefaultSpeed is the animation speed a new session starts with
	DefaultSpeed = 2
	// MovingBarThickness is the thickness in pixels of the moving bar patterns
	MovingBarThickness = 64
	// InversionPeriodFrames is the number of frames per inversion flash phase
	InversionPeriodFrames = 60
	// ColorBarBands is the number of bands in the color bar patterns
	ColorBarBands = 8
	// GrayRampLevels is the number of bands in the gray level ramp
	GrayRampLevels = 16
	// CheckerSmallCell and CheckerLargeCell are the checkerboard cell sizes
	CheckerSmallCell = 8
	CheckerLargeCell = 64
)

// Overlay constants
const (
	// OverlayTimeoutFrames is how long the pattern indicator stays visible
	// after a navigation, speed change or explicit toggle-on
	OverlayTimeoutFrames = 180
)

// Backend scaling constants
const (
	// DefaultPixelScale is the default window scaling factor for windowed backends
	DefaultPixelScale = 1
)
