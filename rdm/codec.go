package rdm

// Byte codec primitives. All multi-byte fields on the wire are
// big-endian, per E1.20.

// PushUint16 appends v to dst, big-endian, and returns the grown slice.
func PushUint16(dst []byte, v uint16) []byte {
	return append(dst, byte(v>>8), byte(v))
}

// PushUint32 appends v to dst, big-endian, and returns the grown slice.
func PushUint32(dst []byte, v uint32) []byte {
	return append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

// ExtractUint16 reads a big-endian uint16 from the first two bytes of src.
func ExtractUint16(src []byte) uint16 {
	return uint16(src[0])<<8 | uint16(src[1])
}

// ExtractUint32 reads a big-endian uint32 from the first four bytes of src.
func ExtractUint32(src []byte) uint32 {
	return uint32(src[0])<<24 | uint32(src[1])<<16 | uint32(src[2])<<8 | uint32(src[3])
}

// AppendBoundedString appends up to max bytes of s to dst and returns the
// grown slice. It does not NUL-terminate: RDM strings occupy exactly the
// bytes they carry on the wire, with a trailing NUL only if one happened
// to fit within max.
func AppendBoundedString(dst []byte, s string, max int) []byte {
	n := len(s)
	if n > max {
		n = max
	}
	return append(dst, s[:n]...)
}

// checksum16 sums the bytes of frame modulo 2^16.
func checksum16(frame []byte) uint16 {
	var sum uint32
	for _, b := range frame {
		sum += uint32(b)
	}
	return uint16(sum)
}

// AppendChecksum computes the unsigned 16-bit sum of frame and appends it,
// big-endian. It returns the grown frame, whose length is
// len(frame) + ChecksumSize.
func AppendChecksum(frame []byte) []byte {
	return PushUint16(frame, checksum16(frame))
}

// VerifyChecksum reports whether the last two bytes of frame equal the
// unsigned 16-bit sum of the bytes preceding them. Used only by the
// transceiver boundary — the dispatcher trusts its input.
func VerifyChecksum(frame []byte) bool {
	if len(frame) < ChecksumSize {
		return false
	}
	body := frame[:len(frame)-ChecksumSize]
	want := ExtractUint16(frame[len(frame)-ChecksumSize:])
	return checksum16(body) == want
}
