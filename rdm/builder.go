package rdm

// NoResponse is the sentinel returned by any builder/handler when the
// caller must not transmit anything — either because the request was
// broadcast/vendorcast and only non-unicast rules apply, or because a
// discovery PID we may not answer was targeted.
const NoResponse = 0

// finalize writes the fixed RDM header into the first HeaderSize bytes of
// buf (which must already hold the full reply: a HeaderSize-byte
// placeholder header followed by the PDL bytes) and appends the
// checksum. It returns the completed frame and its length, or
// (nil, NoResponse) if in.CommandClass isn't discovery/GET/SET.
func (r *Responder) finalize(in Header, responseType ResponseType, buf []byte) ([]byte, int) {
	responseClass, ok := responseCommandClass(in.CommandClass)
	if !ok {
		return nil, NoResponse
	}

	buf[0] = StartCode
	buf[1] = SubStartCode
	buf[2] = byte(len(buf))
	copy(buf[3:9], in.SrcUID[:])
	copy(buf[9:15], in.DestUID[:])
	buf[15] = in.TransactionNumber
	buf[16] = byte(responseType)
	buf[17] = r.QueuedMessageCount
	copy(buf[18:20], []byte{byte(in.SubDevice >> 8), byte(in.SubDevice)})
	buf[20] = responseClass
	copy(buf[21:23], []byte{byte(in.ParamID >> 8), byte(in.ParamID)})
	buf[23] = byte(len(buf) - HeaderSize)

	reply := AppendChecksum(buf)
	return reply, len(reply)
}

// buildResponse assembles a reply with the given response type and
// parameter data, reserving the header placeholder up front.
func (r *Responder) buildResponse(in Header, responseType ResponseType, paramData []byte) ([]byte, int) {
	buf := make([]byte, HeaderSize, HeaderSize+len(paramData)+ChecksumSize)
	buf = append(buf, paramData...)
	return r.finalize(in, responseType, buf)
}

// BuildSetAck returns an empty-PDL ACK, or NoResponse if the request was
// not unicast.
func (r *Responder) BuildSetAck(in Header) ([]byte, int) {
	if !in.DestUID.IsUnicast() {
		return nil, NoResponse
	}
	return r.buildResponse(in, ResponseACK, nil)
}

// BuildNack returns a NACK_REASON reply carrying reason, or NoResponse if
// the request was not unicast.
func (r *Responder) BuildNack(in Header, reason NackReason) ([]byte, int) {
	if !in.DestUID.IsUnicast() {
		return nil, NoResponse
	}
	pd := PushUint16(nil, uint16(reason))
	return r.buildResponse(in, ResponseNackReason, pd)
}

// BuildAckTimer returns an ACK_TIMER reply promising a response within
// delay10ms * 10ms.
func (r *Responder) BuildAckTimer(in Header, delay10ms uint16) ([]byte, int) {
	pd := PushUint16(nil, delay10ms)
	return r.buildResponse(in, ResponseACKTimer, pd)
}

// BuildParameterDescription returns an ACK reply describing a
// manufacturer-specific PID (PARAMETER_DESCRIPTION).
func (r *Responder) BuildParameterDescription(in Header, pid uint16, desc ParameterDescription) ([]byte, int) {
	pd := PushUint16(nil, pid)
	pd = append(pd, desc.PDLSize, desc.DataType, desc.CommandClass, 0, desc.Unit, desc.Prefix)
	pd = PushUint32(pd, desc.MinValidValue)
	pd = PushUint32(pd, desc.MaxValidValue)
	pd = PushUint32(pd, desc.DefaultValue)
	pd = AppendBoundedString(pd, desc.Description, RDMDefaultStringSize)
	return r.buildResponse(in, ResponseACK, pd)
}

// GenericReturnString returns an ACK whose PDL is up to max bytes of s.
func (r *Responder) GenericReturnString(in Header, s string, max int) ([]byte, int) {
	pd := AppendBoundedString(nil, s, max)
	return r.buildResponse(in, ResponseACK, pd)
}

// GenericGetBool returns an ACK carrying a single boolean byte.
func (r *Responder) GenericGetBool(in Header, value bool) ([]byte, int) {
	var b byte
	if value {
		b = 1
	}
	return r.buildResponse(in, ResponseACK, []byte{b})
}

// GenericSetBool decodes a one-byte boolean SET, writing *value and
// replying with BuildSetAck. It NACKs FORMAT_ERROR on the wrong PDL and
// DATA_OUT_OF_RANGE on any byte other than 0x00/0x01.
func (r *Responder) GenericSetBool(in Header, paramData []byte, value *bool) ([]byte, int) {
	if in.ParamDataLength != 1 {
		return r.BuildNack(in, NRFormatError)
	}
	switch paramData[0] {
	case 0:
		*value = false
	case 1:
		*value = true
	default:
		return r.BuildNack(in, NRDataOutOfRange)
	}
	return r.BuildSetAck(in)
}

// GenericGetUint8 returns an ACK carrying a single byte.
func (r *Responder) GenericGetUint8(in Header, value byte) ([]byte, int) {
	return r.buildResponse(in, ResponseACK, []byte{value})
}

// GenericSetUint8 decodes a one-byte SET, writing *value.
func (r *Responder) GenericSetUint8(in Header, paramData []byte, value *byte) ([]byte, int) {
	if in.ParamDataLength != 1 {
		return r.BuildNack(in, NRFormatError)
	}
	*value = paramData[0]
	return r.BuildSetAck(in)
}

// GenericGetUint16 returns an ACK carrying a big-endian uint16.
func (r *Responder) GenericGetUint16(in Header, value uint16) ([]byte, int) {
	return r.buildResponse(in, ResponseACK, PushUint16(nil, value))
}

// GenericSetUint16 decodes a two-byte SET, writing *value.
func (r *Responder) GenericSetUint16(in Header, paramData []byte, value *uint16) ([]byte, int) {
	if in.ParamDataLength != 2 {
		return r.BuildNack(in, NRFormatError)
	}
	*value = ExtractUint16(paramData)
	return r.BuildSetAck(in)
}

// GenericGetUint32 returns an ACK carrying a big-endian uint32.
func (r *Responder) GenericGetUint32(in Header, value uint32) ([]byte, int) {
	return r.buildResponse(in, ResponseACK, PushUint32(nil, value))
}

// GenericSetUint32 decodes a four-byte SET, writing *value.
func (r *Responder) GenericSetUint32(in Header, paramData []byte, value *uint32) ([]byte, int) {
	if in.ParamDataLength != 4 {
		return r.BuildNack(in, NRFormatError)
	}
	*value = ExtractUint32(paramData)
	return r.BuildSetAck(in)
}
