package rdm

// SlotDefinition describes one DMX slot within a personality.
type SlotDefinition struct {
	SlotType     byte
	SlotLabelID  uint16
	DefaultValue byte
	Description  string
}

// PersonalityDefinition describes one DMX footprint/profile a responder
// may expose.
type PersonalityDefinition struct {
	DMXFootprint uint16
	Description  string
	Slots        []SlotDefinition
}

// SensorDefinition is the immutable description of one sensor, E1.20
// SENSOR_DEFINITION.
type SensorDefinition struct {
	Type                  byte
	Unit                  byte
	Prefix                byte
	RangeMinimumValue     uint16
	RangeMaximumValue     uint16
	NormalMinimumValue    uint16
	NormalMaximumValue    uint16
	RecordedValueSupport  byte
	Description           string
}

// GetHandler answers a GET request for one PID, returning the reply
// frame (or nil for NoResponse) and its length.
type GetHandler func(r *Responder, header Header, paramData []byte) ([]byte, int)

// SetHandler answers a SET request for one PID, returning the reply
// frame (or nil for NoResponse) and its length.
type SetHandler func(r *Responder, header Header, paramData []byte) ([]byte, int)

// PIDDescriptor binds a parameter ID to its handlers and the exact PDL a
// GET request for it must carry. Description is only set for
// manufacturer-specific PIDs that PARAMETER_DESCRIPTION must be able to
// describe; standard PIDs leave it nil.
type PIDDescriptor struct {
	PID          uint16
	GetHandler   GetHandler
	SetHandler   SetHandler
	GetParamSize byte
	Description  *ParameterDescription
}

// ParameterDescription carries the metadata PARAMETER_DESCRIPTION GETs
// return for a manufacturer-specific PID.
type ParameterDescription struct {
	PDLSize         byte
	DataType        byte
	CommandClass    byte
	Unit            byte
	Prefix          byte
	MinValidValue   uint32
	MaxValidValue   uint32
	DefaultValue    uint32
	Description     string
}

// ResponderDefinition is the immutable descriptor of a device model:
// everything that does not change across factory resets. One
// ResponderDefinition can back many Responder instances (e.g. one per
// sub-device).
type ResponderDefinition struct {
	ModelDescription      string
	ManufacturerLabel     string
	SoftwareVersionLabel  string
	SoftwareVersion       uint32
	ModelID               uint16
	ProductCategory       uint16
	ProductDetailIDs      []uint16
	DefaultDeviceLabel    string
	Personalities         []PersonalityDefinition
	Sensors               []SensorDefinition
	Descriptors           []PIDDescriptor
}

// PersonalityCount returns the number of personalities this definition
// carries, or 0 if it has none.
func (d *ResponderDefinition) PersonalityCount() int {
	return len(d.Personalities)
}

// SensorCount returns the number of sensors this definition carries.
func (d *ResponderDefinition) SensorCount() int {
	return len(d.Sensors)
}

// Personality returns the 1-based personality at index, or nil if index
// is out of range or there are no personalities.
func (d *ResponderDefinition) Personality(index byte) *PersonalityDefinition {
	if index == 0 || int(index) > len(d.Personalities) {
		return nil
	}
	return &d.Personalities[index-1]
}
