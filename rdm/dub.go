package rdm

// dubPreambleByte and dubSeparatorByte are the framing bytes
// prefixing every DUB response, E1.20 section 6.3.2.
const (
	dubPreambleByte   byte = 0xFE
	dubSeparatorByte  byte = 0xAA
	dubPreambleLength      = 7

	aaConstant    byte = 0xAA
	five5Constant byte = 0x55

	// DUBResponseLength is the fixed length of a DUB reply: 7 preamble
	// bytes, 1 separator, 12 encoded UID bytes, 4 encoded checksum bytes.
	DUBResponseLength = 24
)

// HandleDUB evaluates a Discovery-Unique-Branch range match against the
// responder's UID and, on a match, emits the 24-byte discovery response
// (7 preamble bytes, a separator, the encoded UID and its checksum). It returns (nil, NoResponse) when muted, when
// paramData isn't exactly 12 bytes (a 6-byte lower and upper UID bound),
// or when the UID falls outside [lo, hi]. On a match it returns the
// encoded reply and -DUBResponseLength: a negative length distinguishes
// a raw, already-framed DUB reply from a normal header-and-checksum
// response built by finalize.
func (r *Responder) HandleDUB(paramData []byte) ([]byte, int) {
	if r.IsMuted || len(paramData) != 2*UIDLength {
		return nil, NoResponse
	}

	var lo, hi UID
	copy(lo[:], paramData[0:UIDLength])
	copy(hi[:], paramData[UIDLength:2*UIDLength])

	uid := r.uid
	if !uid.Between(lo, hi) {
		return nil, NoResponse
	}

	reply := make([]byte, DUBResponseLength)
	for i := 0; i < dubPreambleLength; i++ {
		reply[i] = dubPreambleByte
	}
	reply[dubPreambleLength] = dubSeparatorByte

	encoded := reply[8:20]
	for i, b := range uid {
		encoded[2*i] = b | aaConstant
		encoded[2*i+1] = b | five5Constant
	}

	var checksum uint16
	for _, b := range encoded {
		checksum += uint16(b)
	}
	msb, lsb := byte(checksum>>8), byte(checksum)
	reply[20] = msb | aaConstant
	reply[21] = msb | five5Constant
	reply[22] = lsb | aaConstant
	reply[23] = lsb | five5Constant

	return reply, -DUBResponseLength
}
