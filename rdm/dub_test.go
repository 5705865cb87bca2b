package rdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResponder(uid UID) *Responder {
	def := &ResponderDefinition{Descriptors: StandardDescriptors(nil)}
	r := &Responder{Def: def}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: uid})
	return r
}

func TestHandleDUBMatchesRange(t *testing.T) {
	uid := UID{0x7A, 0x70, 0, 0, 0, 10}
	r := newTestResponder(uid)

	lo := UID{0x7A, 0x70, 0, 0, 0, 5}
	hi := UID{0x7A, 0x70, 0, 0, 0, 15}
	paramData := append(append([]byte{}, lo[:]...), hi[:]...)

	reply, n := r.HandleDUB(paramData)
	require.Equal(t, -DUBResponseLength, n)
	require.Len(t, reply, DUBResponseLength)

	for i := 0; i < 7; i++ {
		assert.Equal(t, dubPreambleByte, reply[i])
	}
	assert.Equal(t, dubSeparatorByte, reply[7])
}

func TestHandleDUBOutsideRangeNoResponse(t *testing.T) {
	uid := UID{0x7A, 0x70, 0, 0, 0, 10}
	r := newTestResponder(uid)

	lo := UID{0x7A, 0x70, 0, 0, 0, 20}
	hi := UID{0x7A, 0x70, 0, 0, 0, 30}
	paramData := append(append([]byte{}, lo[:]...), hi[:]...)

	reply, n := r.HandleDUB(paramData)
	assert.Nil(t, reply)
	assert.Equal(t, NoResponse, n)
}

func TestHandleDUBWhileMutedNoResponse(t *testing.T) {
	uid := UID{0x7A, 0x70, 0, 0, 0, 10}
	r := newTestResponder(uid)
	r.IsMuted = true

	lo := UID{0, 0, 0, 0, 0, 0}
	hi := UID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	paramData := append(append([]byte{}, lo[:]...), hi[:]...)

	_, n := r.HandleDUB(paramData)
	assert.Equal(t, NoResponse, n)
}

func TestHandleDUBWrongParamLength(t *testing.T) {
	r := newTestResponder(UID{1, 2, 3, 4, 5, 6})
	_, n := r.HandleDUB([]byte{0x01, 0x02})
	assert.Equal(t, NoResponse, n)
}

// TestDUBEncodingRecoverable checks that the Manchester-like OR encoding
// can be decoded back to the original bytes by masking each encoded
// byte pair against 0xAA and 0x55.
func TestDUBEncodingRecoverable(t *testing.T) {
	uid := UID{0x7A, 0x70, 0x11, 0x22, 0x33, 0x44}
	r := newTestResponder(uid)

	lo := UID{0, 0, 0, 0, 0, 0}
	hi := UID{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	paramData := append(append([]byte{}, lo[:]...), hi[:]...)

	reply, n := r.HandleDUB(paramData)
	require.Equal(t, -DUBResponseLength, n)

	// (b|0xAA) & (b|0x55) == b, since 0xAA and 0x55 are complementary.
	var decoded UID
	for i := 0; i < UIDLength; i++ {
		decoded[i] = reply[8+2*i] & reply[8+2*i+1]
	}
	assert.Equal(t, uid, decoded)
}
