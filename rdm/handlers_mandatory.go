package rdm

// BootSoftwareVersion and BootSoftwareVersionLabel describe the
// bootloader, not the application — they are fixed per firmware build
// rather than part of a ResponderDefinition, mirroring the distinction
// the reference firmware draws between "software version" (the
// application, per-model) and "boot software version" (the loader,
// per-build).
var (
	BootSoftwareVersion      uint32 = 0x00000001
	BootSoftwareVersionLabel        = "0.0.1"
)

// mandatoryPIDs is the set of PIDs every responder must support, and
// which SUPPORTED_PARAMETERS therefore omits at the root level: a
// controller already knows these; on a sub-device it may not, so the
// full list is reported there instead.
var mandatoryPIDs = map[uint16]bool{
	PIDDiscUniqueBranch:     true,
	PIDDiscMute:             true,
	PIDDiscUnMute:           true,
	PIDSupportedParameters:  true,
	PIDParameterDescription: true,
	PIDDeviceInfo:           true,
	PIDSoftwareVersionLabel: true,
	PIDDMXStartAddress:      true,
	PIDIdentifyDevice:       true,
}

// GetSupportedParameters lists the PID table, omitting the mandatory
// PIDs at the root level.
func GetSupportedParameters(r *Responder, header Header, _ []byte) ([]byte, int) {
	var pd []byte
	for _, desc := range r.Def.Descriptors {
		if mandatoryPIDs[desc.PID] && !r.IsSubDevice {
			continue
		}
		pd = PushUint16(pd, desc.PID)
	}
	return r.buildResponse(header, ResponseACK, pd)
}

// GetDeviceInfo implements DEVICE_INFO, the 19-byte summary of a
// responder's model, addressing, and counts.
func GetDeviceInfo(r *Responder, header Header, _ []byte) ([]byte, int) {
	personality := r.CurrentPersonalityDef()

	var pd []byte
	pd = PushUint16(pd, RDMVersion)
	pd = PushUint16(pd, r.Def.ModelID)
	pd = PushUint16(pd, r.Def.ProductCategory)
	pd = PushUint32(pd, r.Def.SoftwareVersion)
	if personality != nil {
		pd = PushUint16(pd, personality.DMXFootprint)
	} else {
		pd = PushUint16(pd, 0)
	}
	pd = append(pd, r.CurrentPersonality)
	if r.Def.PersonalityCount() > 0 {
		pd = append(pd, byte(r.Def.PersonalityCount()))
	} else {
		pd = append(pd, 1)
	}
	pd = PushUint16(pd, r.DMXStartAddress)
	pd = PushUint16(pd, r.SubDeviceCount)
	pd = append(pd, byte(r.Def.SensorCount()))

	return r.buildResponse(header, ResponseACK, pd)
}

// GetProductDetailIDList implements PRODUCT_DETAIL_ID_LIST, capped at
// MaxProductDetails entries.
func GetProductDetailIDList(r *Responder, header Header, _ []byte) ([]byte, int) {
	ids := r.Def.ProductDetailIDs
	if len(ids) > MaxProductDetails {
		ids = ids[:MaxProductDetails]
	}
	var pd []byte
	for _, id := range ids {
		pd = PushUint16(pd, id)
	}
	return r.buildResponse(header, ResponseACK, pd)
}

// GetDeviceModelDescription implements DEVICE_MODEL_DESCRIPTION.
func GetDeviceModelDescription(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericReturnString(header, r.Def.ModelDescription, RDMDefaultStringSize)
}

// GetManufacturerLabel implements MANUFACTURER_LABEL.
func GetManufacturerLabel(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericReturnString(header, r.Def.ManufacturerLabel, RDMDefaultStringSize)
}

// GetSoftwareVersionLabel implements SOFTWARE_VERSION_LABEL.
func GetSoftwareVersionLabel(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericReturnString(header, r.Def.SoftwareVersionLabel, RDMDefaultStringSize)
}

// GetBootSoftwareVersionID implements BOOT_SOFTWARE_VERSION_ID.
func GetBootSoftwareVersionID(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericGetUint32(header, BootSoftwareVersion)
}

// GetBootSoftwareVersionLabel implements BOOT_SOFTWARE_VERSION_LABEL.
func GetBootSoftwareVersionLabel(r *Responder, header Header, _ []byte) ([]byte, int) {
	return r.GenericReturnString(header, BootSoftwareVersionLabel, RDMDefaultStringSize)
}

// GetParameterDescription implements PARAMETER_DESCRIPTION GET: it looks
// up the requested PID in the descriptor table and, if that PID carries
// manufacturer-specific metadata, replies with it. Standard PIDs (which
// never set PIDDescriptor.Description) and unknown PIDs both NACK
// DATA_OUT_OF_RANGE, matching E1.20's guidance that this query is only
// meaningful for manufacturer-specific parameters.
func GetParameterDescription(r *Responder, header Header, paramData []byte) ([]byte, int) {
	pid := ExtractUint16(paramData)
	for _, desc := range r.Def.Descriptors {
		if desc.PID == pid && desc.Description != nil {
			return r.BuildParameterDescription(header, pid, *desc.Description)
		}
	}
	return r.BuildNack(header, NRDataOutOfRange)
}

// GetCommsStatus implements COMMS_STATUS GET: the three receiver error
// counters.
func GetCommsStatus(counters ReceiverCounters) GetHandler {
	return func(r *Responder, header Header, _ []byte) ([]byte, int) {
		var pd []byte
		pd = PushUint16(pd, counters.RDMShortFrame())
		pd = PushUint16(pd, counters.RDMLengthMismatch())
		pd = PushUint16(pd, counters.RDMChecksumInvalid())
		return r.buildResponse(header, ResponseACK, pd)
	}
}

// SetCommsStatus implements COMMS_STATUS SET: an empty-PDL request that
// zeroes the receiver counters.
func SetCommsStatus(counters ReceiverCounters) SetHandler {
	return func(r *Responder, header Header, _ []byte) ([]byte, int) {
		if header.ParamDataLength != 0 {
			return r.BuildNack(header, NRFormatError)
		}
		counters.ResetCommsStatus()
		return r.BuildSetAck(header)
	}
}
