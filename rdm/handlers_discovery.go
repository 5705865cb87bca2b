package rdm

// SetMute implements DISC_MUTE. A non-empty PDL is a malformed discovery
// request, which per section 6.3 of E1.20 must be silently dropped
// rather than NACKed.
func (r *Responder) SetMute(header Header) ([]byte, int) {
	if header.ParamDataLength != 0 {
		return nil, NoResponse
	}

	r.IsMuted = true
	if r.mutePort != nil {
		r.mutePort.Set(false)
	}

	if !header.DestUID.IsUnicast() {
		return nil, NoResponse
	}
	pd := PushUint16(nil, r.controlField())
	return r.buildResponse(header, ResponseACK, pd)
}

// SetUnMute implements DISC_UN_MUTE, the mirror image of SetMute.
func (r *Responder) SetUnMute(header Header) ([]byte, int) {
	if header.ParamDataLength != 0 {
		return nil, NoResponse
	}

	r.IsMuted = false
	if r.mutePort != nil {
		r.mutePort.Set(true)
	}
	if r.Clock != nil {
		r.muteTimer = r.Clock.Now()
	}

	if !header.DestUID.IsUnicast() {
		return nil, NoResponse
	}
	pd := PushUint16(nil, r.controlField())
	return r.buildResponse(header, ResponseACK, pd)
}
