package rdm

// Tasks drives the two indicator blinkers: the identify indicator
// toggles every FlashFast ticks while IdentifyOn is set, and the mute
// indicator toggles every FlashSlow ticks while the responder is
// unmuted. It is purely cooperative — it never blocks, allocates, or
// performs I/O beyond an indicator-port write — and should be invoked
// at least every few milliseconds by the host scheduler.
func (r *Responder) Tasks() {
	if r.Clock == nil {
		return
	}

	if r.IdentifyOn && r.identifyPort != nil {
		if r.Clock.HasElapsed(r.identifyTimer, FlashFast) {
			r.identifyTimer = r.Clock.Now()
			r.identifyPort.Toggle()
		}
	}

	if !r.IsMuted && r.mutePort != nil {
		if r.Clock.HasElapsed(r.muteTimer, FlashSlow) {
			r.muteTimer = r.Clock.Now()
			r.mutePort.Toggle()
		}
	}
}
