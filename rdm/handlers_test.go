package rdm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPersonalityBoundInvariant checks that DMX_PERSONALITY SET never
// accepts an index outside [1, PersonalityCount], and that
// DMX_START_ADDRESS always remains within [1, MaxDMXStartAddress] once a
// personality exists.
func TestPersonalityBoundInvariant(t *testing.T) {
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})

	in := testHeader(r.GetUID(), SetCommand)
	in.ParamID = PIDDMXPersonality
	in.ParamDataLength = 1

	reply, _ := SetDMXPersonality(r, in, []byte{0})
	assert.Equal(t, byte(ResponseNackReason), reply[16])

	reply, _ = SetDMXPersonality(r, in, []byte{3})
	assert.Equal(t, byte(ResponseNackReason), reply[16])

	reply, _ = SetDMXPersonality(r, in, []byte{2})
	require.Equal(t, byte(ResponseACK), reply[16])
	assert.Equal(t, byte(2), r.CurrentPersonality)

	assert.GreaterOrEqual(t, r.DMXStartAddress, uint16(1))
	assert.LessOrEqual(t, r.DMXStartAddress, MaxDMXStartAddress)
}

func TestGetDeviceLabelRoundTrip(t *testing.T) {
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})

	setHeader := testHeader(r.GetUID(), SetCommand)
	setHeader.ParamID = PIDDeviceLabel
	setHeader.ParamDataLength = 5
	reply, _ := SetDeviceLabel(r, setHeader, []byte("hello"))
	require.Equal(t, byte(ResponseACK), reply[16])
	assert.False(t, r.UsingFactoryDefaults)

	getHeader := testHeader(r.GetUID(), GetCommand)
	getHeader.ParamID = PIDDeviceLabel
	reply, n := GetDeviceLabel(r, getHeader, nil)
	require.Greater(t, n, 0)
	assert.Equal(t, "hello", string(reply[24:29]))
}

func TestSetDMXStartAddressRejectsZeroAndOutOfRange(t *testing.T) {
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})

	in := testHeader(r.GetUID(), SetCommand)
	in.ParamID = PIDDMXStartAddress
	in.ParamDataLength = 2

	reply, _ := SetDMXStartAddress(r, in, PushUint16(nil, 0))
	assert.Equal(t, byte(ResponseNackReason), reply[16])

	reply, _ = SetDMXStartAddress(r, in, PushUint16(nil, MaxDMXStartAddress+1))
	assert.Equal(t, byte(ResponseNackReason), reply[16])

	reply, _ = SetDMXStartAddress(r, in, PushUint16(nil, 100))
	require.Equal(t, byte(ResponseACK), reply[16])
	assert.Equal(t, uint16(100), r.DMXStartAddress)
}

func TestSetIdentifyDeviceDrivesIndicator(t *testing.T) {
	identify := &mockIndicator{}
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}, IdentifyPort: identify})

	in := testHeader(r.GetUID(), SetCommand)
	in.ParamID = PIDIdentifyDevice
	in.ParamDataLength = 1

	reply, _ := SetIdentifyDevice(r, in, []byte{1})
	require.Equal(t, byte(ResponseACK), reply[16])
	assert.True(t, r.IdentifyOn)
	assert.True(t, identify.level)

	reply, _ = SetIdentifyDevice(r, in, []byte{0})
	require.Equal(t, byte(ResponseACK), reply[16])
	assert.False(t, r.IdentifyOn)
	assert.False(t, identify.level)
}

func TestSensorValueGetOutOfRangeNacks(t *testing.T) {
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})

	in := testHeader(r.GetUID(), GetCommand)
	in.ParamID = PIDSensorValue
	in.ParamDataLength = 1

	reply, _ := GetSensorValue(r, in, []byte{5})
	assert.Equal(t, byte(ResponseNackReason), reply[16])
}

func TestSensorValueGetForcedNack(t *testing.T) {
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})
	r.Sensors[0].ShouldNack = true
	r.Sensors[0].NackReason = NRHardwareFault

	in := testHeader(r.GetUID(), GetCommand)
	in.ParamID = PIDSensorValue
	in.ParamDataLength = 1

	reply, _ := GetSensorValue(r, in, []byte{0})
	assert.Equal(t, byte(ResponseNackReason), reply[16])
	assert.Equal(t, uint16(NRHardwareFault), ExtractUint16(reply[24:26]))
}

func TestGetParameterDescriptionDescribesManufacturerPID(t *testing.T) {
	const mfrPID uint16 = 0x8000
	def := testDefinition()
	def.Descriptors = append(def.Descriptors, PIDDescriptor{
		PID:          mfrPID,
		GetHandler:   GetDeviceLabel,
		GetParamSize: 0,
		Description: &ParameterDescription{
			PDLSize:     2,
			DataType:    0x02,
			Description: "Test Param",
		},
	})
	r := &Responder{Def: def}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})

	in := testHeader(r.GetUID(), GetCommand)
	in.ParamID = PIDParameterDescription
	in.ParamDataLength = 2

	reply, n := GetParameterDescription(r, in, PushUint16(nil, mfrPID))
	require.Greater(t, n, 0)
	require.Equal(t, byte(ResponseACK), reply[16])
	assert.Equal(t, mfrPID, ExtractUint16(reply[24:26]))
}

func TestGetParameterDescriptionNacksStandardPID(t *testing.T) {
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}})

	in := testHeader(r.GetUID(), GetCommand)
	in.ParamID = PIDParameterDescription
	in.ParamDataLength = 2

	reply, _ := GetParameterDescription(r, in, PushUint16(nil, PIDDeviceInfo))
	assert.Equal(t, byte(ResponseNackReason), reply[16])
}

func TestTasksBlinksIdentifyIndicator(t *testing.T) {
	identify := &mockIndicator{}
	r := &Responder{Def: testDefinition()}
	clock := &CoarseClock{}
	r.Initialize(clock, Settings{UID: UID{1, 2, 3, 4, 5, 6}, IdentifyPort: identify})
	r.IdentifyOn = true
	r.identifyTimer = clock.Now()

	clock.SetCounter(FlashFast + 1)
	r.Tasks()
	assert.True(t, identify.level)

	clock.SetCounter(clock.Now() + FlashFast + 1)
	r.Tasks()
	assert.False(t, identify.level)
}
