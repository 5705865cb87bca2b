package rdm

// Header is the logical decoding of an RDM frame's fixed portion. A
// transceiver is responsible for finding frame boundaries and checksum
// validation before populating one of these; the core never re-verifies
// start_code, sub_start_code, message_length, or the checksum.
type Header struct {
	MessageLength     byte
	DestUID           UID
	SrcUID            UID
	TransactionNumber byte
	PortID            byte
	MessageCount      byte
	SubDevice         uint16
	CommandClass      byte
	ParamID           uint16
	ParamDataLength   byte
}

// DecodeHeader parses the fixed 24-byte RDM header from a validated
// frame. It assumes frame[0] and frame[1] are the already-verified start
// code and sub-start code.
func DecodeHeader(frame []byte) Header {
	var h Header
	h.MessageLength = frame[2]
	copy(h.DestUID[:], frame[3:9])
	copy(h.SrcUID[:], frame[9:15])
	h.TransactionNumber = frame[15]
	h.PortID = frame[16]
	h.MessageCount = frame[17]
	h.SubDevice = ExtractUint16(frame[18:20])
	h.CommandClass = frame[20]
	h.ParamID = ExtractUint16(frame[21:23])
	h.ParamDataLength = frame[23]
	return h
}

// responseCommandClass derives the response command class from a request
// command class (DISCOVERY_COMMAND -> DISCOVERY_COMMAND_RESPONSE,
// GET_COMMAND -> GET_COMMAND_RESPONSE, SET_COMMAND -> SET_COMMAND_RESPONSE).
// ok is false for any other command class, in which case no reply may be
// built.
func responseCommandClass(requestClass byte) (responseClass byte, ok bool) {
	switch requestClass {
	case DiscoveryCommand:
		return DiscoveryCommandResponse, true
	case GetCommand:
		return GetCommandResponse, true
	case SetCommand:
		return SetCommandResponse, true
	default:
		return 0, false
	}
}
