package rdm

import "fmt"

// UIDLength is the byte width of an RDM UID.
const UIDLength = 6

// UID is a 48-bit RDM device identity: 2 bytes manufacturer, 4 bytes device.
type UID [UIDLength]byte

// String renders a UID in the conventional "MMMM:DDDDDDDD" hex form.
func (u UID) String() string {
	return fmt.Sprintf("%02X%02X:%02X%02X%02X%02X", u[0], u[1], u[2], u[3], u[4], u[5])
}

// Manufacturer returns the high 2 bytes of the UID.
func (u UID) Manufacturer() uint16 {
	return ExtractUint16(u[0:2])
}

// Compare returns -1, 0, or +1 as u is lexicographically less than, equal
// to, or greater than other.
func (u UID) Compare(other UID) int {
	for i := 0; i < UIDLength; i++ {
		if u[i] < other[i] {
			return -1
		}
		if u[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Between reports whether lo <= u <= hi, lexicographically — the range
// test a Discovery-Unique-Branch request uses to decide whether a
// responder falls inside the branch being searched.
func (u UID) Between(lo, hi UID) bool {
	return lo.Compare(u) <= 0 && u.Compare(hi) <= 0
}

// BroadcastUID is the all-FF UID that every responder must answer to.
var BroadcastUID = UID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}

// IsBroadcast reports whether u addresses every responder on the bus.
func (u UID) IsBroadcast() bool {
	return u == BroadcastUID
}

// IsVendorcast reports whether u addresses every responder made by a
// specific manufacturer: the low 4 bytes are all 0xFF and the high 2 are
// not (that combination is the full broadcast UID, handled separately).
func (u UID) IsVendorcast() bool {
	for i := 2; i < UIDLength; i++ {
		if u[i] != 0xFF {
			return false
		}
	}
	return !u.IsBroadcast()
}

// IsUnicast reports whether u is neither broadcast nor vendorcast — i.e.
// whether a reply addressed to u would actually reach one responder.
func (u UID) IsUnicast() bool {
	return !u.IsBroadcast() && !u.IsVendorcast()
}
