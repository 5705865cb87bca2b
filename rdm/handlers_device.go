package rdm

// GetDeviceLabel implements DEVICE_LABEL GET.
func GetDeviceLabel(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericReturnString(header, r.DeviceLabel, RDMDefaultStringSize)
}

// SetDeviceLabel implements DEVICE_LABEL SET. PDL longer than
// RDMDefaultStringSize is a format error; anything else replaces the
// label and clears UsingFactoryDefaults.
func SetDeviceLabel(r *Responder, header Header, paramData []byte) ([]byte, int) {
	if int(header.ParamDataLength) > RDMDefaultStringSize {
		return r.BuildNack(header, NRFormatError)
	}
	r.DeviceLabel = boundedCopy(string(paramData[:header.ParamDataLength]), RDMDefaultStringSize)
	r.UsingFactoryDefaults = false
	return r.BuildSetAck(header)
}

// GetDMXPersonality implements DMX_PERSONALITY GET.
func GetDMXPersonality(r *Responder, header Header, _ []byte) ([]byte, int) {
	pd := []byte{r.CurrentPersonality, byte(r.Def.PersonalityCount())}
	return r.buildResponse(header, ResponseACK, pd)
}

// SetDMXPersonality implements DMX_PERSONALITY SET. The new personality
// must be a valid 1-based index; changing it clears UsingFactoryDefaults.
func SetDMXPersonality(r *Responder, header Header, paramData []byte) ([]byte, int) {
	if header.ParamDataLength != 1 {
		return r.BuildNack(header, NRFormatError)
	}
	newPersonality := paramData[0]
	if newPersonality == 0 || int(newPersonality) > r.Def.PersonalityCount() {
		return r.BuildNack(header, NRDataOutOfRange)
	}
	if r.CurrentPersonality != newPersonality {
		r.UsingFactoryDefaults = false
	}
	r.CurrentPersonality = newPersonality
	return r.BuildSetAck(header)
}

// GetDMXPersonalityDescription implements DMX_PERSONALITY_DESCRIPTION
// GET, a per-index query: paramData[0] selects a 1-based personality.
func GetDMXPersonalityDescription(r *Responder, header Header, paramData []byte) ([]byte, int) {
	index := paramData[0]
	if index == 0 || int(index) > r.Def.PersonalityCount() {
		return r.BuildNack(header, NRDataOutOfRange)
	}
	personality := r.Def.Personality(index)
	if personality == nil {
		return r.BuildNack(header, NRHardwareFault)
	}

	pd := []byte{index}
	pd = PushUint16(pd, personality.DMXFootprint)
	pd = AppendBoundedString(pd, personality.Description, RDMDefaultStringSize)
	return r.buildResponse(header, ResponseACK, pd)
}

// GetDMXStartAddress implements DMX_START_ADDRESS GET.
func GetDMXStartAddress(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericGetUint16(header, r.DMXStartAddress)
}

// SetDMXStartAddress implements DMX_START_ADDRESS SET. The address must
// fall within [1, MaxDMXStartAddress]; UsingFactoryDefaults only clears
// if the address actually changes.
func SetDMXStartAddress(r *Responder, header Header, paramData []byte) ([]byte, int) {
	if header.ParamDataLength != 2 {
		return r.BuildNack(header, NRFormatError)
	}
	address := ExtractUint16(paramData)
	if address == 0 || address > MaxDMXStartAddress {
		return r.BuildNack(header, NRDataOutOfRange)
	}
	if r.DMXStartAddress != address {
		r.UsingFactoryDefaults = false
	}
	r.DMXStartAddress = address
	return r.BuildSetAck(header)
}

// GetSlotInfo implements SLOT_INFO, capped at MaxSlotInfoPerFrame
// entries per reply. Slots beyond the cap are never reported: this
// responder does not implement ACK_OVERFLOW pagination for SLOT_INFO, so
// every GET returns the same first MaxSlotInfoPerFrame entries.
func GetSlotInfo(r *Responder, header Header, _ []byte) ([]byte, int) {
	personality := r.CurrentPersonalityDef()
	if personality == nil || len(personality.Slots) == 0 {
		return r.BuildNack(header, NRHardwareFault)
	}

	slotCount := len(personality.Slots)
	if slotCount > MaxSlotInfoPerFrame {
		slotCount = MaxSlotInfoPerFrame
	}

	var pd []byte
	for i := 0; i < slotCount; i++ {
		pd = PushUint16(pd, uint16(i))
		pd = append(pd, personality.Slots[i].SlotType)
		pd = PushUint16(pd, personality.Slots[i].SlotLabelID)
	}
	return r.buildResponse(header, ResponseACK, pd)
}

// GetSlotDescription implements SLOT_DESCRIPTION, a per-index query.
func GetSlotDescription(r *Responder, header Header, paramData []byte) ([]byte, int) {
	slotIndex := ExtractUint16(paramData)

	personality := r.CurrentPersonalityDef()
	if personality == nil || len(personality.Slots) == 0 {
		return r.BuildNack(header, NRHardwareFault)
	}
	if int(slotIndex) >= len(personality.Slots) {
		return r.BuildNack(header, NRDataOutOfRange)
	}

	pd := PushUint16(nil, slotIndex)
	pd = AppendBoundedString(pd, personality.Slots[slotIndex].Description, RDMDefaultStringSize)
	return r.buildResponse(header, ResponseACK, pd)
}

// GetDefaultSlotValue implements DEFAULT_SLOT_VALUE, capped at
// MaxDefaultSlotValuePerFrame entries per reply (see GetSlotInfo's note
// on ACK_OVERFLOW).
func GetDefaultSlotValue(r *Responder, header Header, _ []byte) ([]byte, int) {
	personality := r.CurrentPersonalityDef()
	if personality == nil || len(personality.Slots) == 0 {
		return r.BuildNack(header, NRHardwareFault)
	}

	slotCount := len(personality.Slots)
	if slotCount > MaxDefaultSlotValuePerFrame {
		slotCount = MaxDefaultSlotValuePerFrame
	}

	var pd []byte
	for i := 0; i < slotCount; i++ {
		pd = PushUint16(pd, uint16(i))
		pd = append(pd, personality.Slots[i].DefaultValue)
	}
	return r.buildResponse(header, ResponseACK, pd)
}

// GetIdentifyDevice implements IDENTIFY_DEVICE GET.
func GetIdentifyDevice(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericGetBool(header, r.IdentifyOn)
}

// SetIdentifyDevice implements IDENTIFY_DEVICE SET, driving the identify
// indicator and (re)starting its blink timer on a genuine transition.
func SetIdentifyDevice(r *Responder, header Header, paramData []byte) ([]byte, int) {
	previous := r.IdentifyOn
	reply, n := r.GenericSetBool(header, paramData, &r.IdentifyOn)
	if r.IdentifyOn == previous {
		return reply, n
	}

	r.UsingFactoryDefaults = false
	if r.IdentifyOn {
		if r.Clock != nil {
			r.identifyTimer = r.Clock.Now()
		}
		if r.identifyPort != nil {
			r.identifyPort.Set(true)
		}
	} else if r.identifyPort != nil {
		r.identifyPort.Set(false)
	}
	return reply, n
}
