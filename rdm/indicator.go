package rdm

// IndicatorPort abstracts a single GPIO-driven status indicator. The
// responder core never touches hardware directly; concrete
// implementations (e.g. the gpiocdev-backed one in package indicator)
// are supplied by the hosting application.
type IndicatorPort interface {
	// ConfigureOutput drives the line into output mode.
	ConfigureOutput()
	// Set drives the line high (true) or low (false).
	Set(level bool)
	// Toggle inverts the line's current level.
	Toggle()
}
