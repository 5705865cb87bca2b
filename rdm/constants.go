package rdm

// Wire constants from ANSI E1.20, section 6.

const (
	StartCode    byte = 0xCC
	SubStartCode byte = 0x01

	// HeaderSize is the byte count of the fixed RDM header, from start
	// code up to and including the PDL byte.
	HeaderSize = 24

	// ChecksumSize is the byte count of the trailing checksum field.
	ChecksumSize = 2

	RDMVersion uint16 = 0x0100
)

// Command classes, E1.20 table 3-1.
const (
	DiscoveryCommand         byte = 0x10
	DiscoveryCommandResponse byte = 0x11
	GetCommand               byte = 0x20
	GetCommandResponse       byte = 0x21
	SetCommand               byte = 0x30
	SetCommandResponse       byte = 0x31
)

// ResponseType occupies the port_id field of a response header.
type ResponseType byte

const (
	ResponseACK        ResponseType = 0x00
	ResponseACKTimer   ResponseType = 0x01
	ResponseNackReason ResponseType = 0x02
	ResponseACKOverflow ResponseType = 0x03
)

// NackReason enumerates the reasons carried in a NACK_REASON reply, E1.20
// table A-17.
type NackReason uint16

const (
	NRUnknownPID               NackReason = 0x0000
	NRFormatError              NackReason = 0x0001
	NRHardwareFault            NackReason = 0x0002
	NRProxyRejected            NackReason = 0x0003
	NRWriteProtect             NackReason = 0x0004
	NRUnsupportedCommandClass  NackReason = 0x0005
	NRDataOutOfRange           NackReason = 0x0006
	NRBufferFull               NackReason = 0x0007
	NRPacketSizeUnsupported    NackReason = 0x0008
	NRSubDeviceOutOfRange      NackReason = 0x0009
	NRProxyBufferFull          NackReason = 0x000A
)

// PIDs this responder supports. Only a subset of E1.20's registry; adding
// more is data (a PIDDescriptor table entry), not architecture.
const (
	PIDDiscUniqueBranch           uint16 = 0x0001
	PIDDiscMute                   uint16 = 0x0002
	PIDDiscUnMute                 uint16 = 0x0003
	PIDProxiedDevices             uint16 = 0x0010
	PIDProxiedDeviceCount         uint16 = 0x0011
	PIDCommsStatus                uint16 = 0x0015
	PIDSupportedParameters        uint16 = 0x0050
	PIDParameterDescription       uint16 = 0x0051
	PIDDeviceInfo                 uint16 = 0x0060
	PIDProductDetailIDList        uint16 = 0x0070
	PIDDeviceModelDescription     uint16 = 0x0080
	PIDManufacturerLabel          uint16 = 0x0081
	PIDDeviceLabel                uint16 = 0x0082
	PIDFactoryDefaults            uint16 = 0x0090
	PIDSoftwareVersionLabel       uint16 = 0x00C0
	PIDBootSoftwareVersionID      uint16 = 0x00C1
	PIDBootSoftwareVersionLabel   uint16 = 0x00C2
	PIDDMXPersonality             uint16 = 0x00E0
	PIDDMXPersonalityDescription  uint16 = 0x00E1
	PIDDMXStartAddress            uint16 = 0x00F0
	PIDSlotInfo                   uint16 = 0x0120
	PIDSlotDescription            uint16 = 0x0121
	PIDDefaultSlotValue           uint16 = 0x0122
	PIDSensorDefinition           uint16 = 0x0200
	PIDSensorValue                uint16 = 0x0201
	PIDRecordSensors              uint16 = 0x0202
	PIDIdentifyDevice             uint16 = 0x1000
)

// Well-known sizes and sentinels.
const (
	InvalidDMXStartAddress uint16 = 0xFFFF
	MaxDMXStartAddress     uint16 = 512
	MaxProductDetails             = 6
	MaxSlotInfoPerFrame           = 46
	MaxDefaultSlotValuePerFrame   = 77
	AllSensors             byte   = 0xFF
	SensorValueUnsupported uint16 = 0xFFFF
	RDMDefaultStringSize          = 32

	FlashFast uint32 = 1000
	FlashSlow uint32 = 10000
)

// sensor recorded-value-support bits, E1.20 table A-4.
const (
	SensorSupportsLowestHighestMask byte = 0x02
	SensorSupportsRecordingMask     byte = 0x01
)

// Mute response control field bits, E1.20 section 6.3.4.
const (
	MuteSubDeviceFlag  uint16 = 0x0001
	MuteManagedProxyFlag uint16 = 0x0002
	MuteProxyFlag      uint16 = 0x0004
)
