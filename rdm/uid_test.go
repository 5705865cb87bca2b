package rdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUIDString(t *testing.T) {
	u := UID{0x7A, 0x70, 0x00, 0x00, 0x00, 0x01}
	assert.Equal(t, "7A70:00000001", u.String())
}

func TestUIDManufacturer(t *testing.T) {
	u := UID{0x12, 0x34, 0, 0, 0, 0}
	assert.Equal(t, uint16(0x1234), u.Manufacturer())
}

func TestUIDCompare(t *testing.T) {
	low := UID{0, 0, 0, 0, 0, 1}
	high := UID{0, 0, 0, 0, 0, 2}
	assert.Equal(t, -1, low.Compare(high))
	assert.Equal(t, 1, high.Compare(low))
	assert.Equal(t, 0, low.Compare(low))
}

func TestUIDBetween(t *testing.T) {
	lo := UID{0, 0, 0, 0, 0, 10}
	hi := UID{0, 0, 0, 0, 0, 20}
	assert.True(t, UID{0, 0, 0, 0, 0, 15}.Between(lo, hi))
	assert.True(t, lo.Between(lo, hi))
	assert.True(t, hi.Between(lo, hi))
	assert.False(t, UID{0, 0, 0, 0, 0, 9}.Between(lo, hi))
	assert.False(t, UID{0, 0, 0, 0, 0, 21}.Between(lo, hi))
}

// TestAddressClassification checks that every UID is in exactly one of
// broadcast, vendorcast, unicast.
func TestAddressClassification(t *testing.T) {
	cases := []struct {
		name              string
		uid               UID
		broadcast, vendor, unicast bool
	}{
		{"broadcast", BroadcastUID, true, false, false},
		{"vendorcast", UID{0x7A, 0x70, 0xFF, 0xFF, 0xFF, 0xFF}, false, true, false},
		{"unicast", UID{0x7A, 0x70, 0x00, 0x00, 0x00, 0x01}, false, false, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.broadcast, c.uid.IsBroadcast())
			assert.Equal(t, c.vendor, c.uid.IsVendorcast())
			assert.Equal(t, c.unicast, c.uid.IsUnicast())

			count := 0
			for _, v := range []bool{c.uid.IsBroadcast(), c.uid.IsVendorcast(), c.uid.IsUnicast()} {
				if v {
					count++
				}
			}
			assert.Equal(t, 1, count)
		})
	}
}
