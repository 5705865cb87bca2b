package rdm

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// configDocument is the on-disk shape of a responder definition file.
// Field names are the lowerCamel YAML spelling of ResponderDefinition's
// exported fields.
type configDocument struct {
	ModelDescription     string              `yaml:"modelDescription"`
	ManufacturerLabel    string              `yaml:"manufacturerLabel"`
	SoftwareVersionLabel string              `yaml:"softwareVersionLabel"`
	SoftwareVersion      uint32              `yaml:"softwareVersion"`
	ModelID              uint16              `yaml:"modelId"`
	ProductCategory      uint16              `yaml:"productCategory"`
	ProductDetailIDs     []uint16            `yaml:"productDetailIds"`
	DefaultDeviceLabel   string              `yaml:"defaultDeviceLabel"`
	Personalities        []configPersonality `yaml:"personalities"`
	Sensors              []configSensor      `yaml:"sensors"`
}

type configPersonality struct {
	DMXFootprint uint16       `yaml:"dmxFootprint"`
	Description  string       `yaml:"description"`
	Slots        []configSlot `yaml:"slots"`
}

type configSlot struct {
	SlotType     byte   `yaml:"slotType"`
	SlotLabelID  uint16 `yaml:"slotLabelId"`
	DefaultValue byte   `yaml:"defaultValue"`
	Description  string `yaml:"description"`
}

type configSensor struct {
	Type                 byte   `yaml:"type"`
	Unit                 byte   `yaml:"unit"`
	Prefix               byte   `yaml:"prefix"`
	RangeMinimumValue    uint16 `yaml:"rangeMinimum"`
	RangeMaximumValue    uint16 `yaml:"rangeMaximum"`
	NormalMinimumValue   uint16 `yaml:"normalMinimum"`
	NormalMaximumValue   uint16 `yaml:"normalMaximum"`
	RecordedValueSupport byte   `yaml:"recordedValueSupport"`
	Description          string `yaml:"description"`
}

// LoadDefinition parses a YAML responder definition and returns the
// ResponderDefinition it describes, with Descriptors set to
// StandardDescriptors(counters) plus any manufacturer-specific entries
// extra supplies. Personalities and sensors come entirely from the
// document; a definition with no personalities is valid (a responder
// with a fixed, non-DMX personality, e.g. a pure sensor device).
func LoadDefinition(data []byte, counters ReceiverCounters, extra []PIDDescriptor) (*ResponderDefinition, error) {
	var doc configDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("rdm: parse responder definition: %w", err)
	}

	def := &ResponderDefinition{
		ModelDescription:     doc.ModelDescription,
		ManufacturerLabel:    doc.ManufacturerLabel,
		SoftwareVersionLabel: doc.SoftwareVersionLabel,
		SoftwareVersion:      doc.SoftwareVersion,
		ModelID:              doc.ModelID,
		ProductCategory:      doc.ProductCategory,
		ProductDetailIDs:     doc.ProductDetailIDs,
		DefaultDeviceLabel:   doc.DefaultDeviceLabel,
	}

	for _, p := range doc.Personalities {
		personality := PersonalityDefinition{
			DMXFootprint: p.DMXFootprint,
			Description:  p.Description,
		}
		for _, s := range p.Slots {
			personality.Slots = append(personality.Slots, SlotDefinition{
				SlotType:     s.SlotType,
				SlotLabelID:  s.SlotLabelID,
				DefaultValue: s.DefaultValue,
				Description:  s.Description,
			})
		}
		def.Personalities = append(def.Personalities, personality)
	}

	for _, s := range doc.Sensors {
		def.Sensors = append(def.Sensors, SensorDefinition{
			Type:                 s.Type,
			Unit:                 s.Unit,
			Prefix:               s.Prefix,
			RangeMinimumValue:    s.RangeMinimumValue,
			RangeMaximumValue:    s.RangeMaximumValue,
			NormalMinimumValue:   s.NormalMinimumValue,
			NormalMaximumValue:   s.NormalMaximumValue,
			RecordedValueSupport: s.RecordedValueSupport,
			Description:          s.Description,
		})
	}

	if err := validateDefinition(def); err != nil {
		return nil, err
	}

	def.Descriptors = append(StandardDescriptors(counters), extra...)
	return def, nil
}

// maxPersonalities and maxSensors are the largest counts a byte-sized
// 1-based personality index or sensor index can address; AllSensors
// (0xFF) is reserved, so sensors stop one short of that.
const (
	maxPersonalities = 255
	maxSensors       = 254
)

// validateDefinition rejects a structurally well-formed but
// semantically invalid document before it can back a Responder:
// too many product detail IDs, more personalities or sensors than a
// byte index can address, or slots that fall outside their
// personality's declared DMX footprint.
func validateDefinition(def *ResponderDefinition) error {
	if len(def.ProductDetailIDs) > MaxProductDetails {
		return fmt.Errorf("rdm: %d product detail ids exceeds the maximum of %d", len(def.ProductDetailIDs), MaxProductDetails)
	}
	if len(def.Personalities) > maxPersonalities {
		return fmt.Errorf("rdm: %d personalities exceeds the maximum of %d", len(def.Personalities), maxPersonalities)
	}
	for i, p := range def.Personalities {
		if len(p.Slots) > int(p.DMXFootprint) {
			return fmt.Errorf("rdm: personality %d declares %d slots but a footprint of only %d", i+1, len(p.Slots), p.DMXFootprint)
		}
	}
	if len(def.Sensors) > maxSensors {
		return fmt.Errorf("rdm: %d sensors exceeds the maximum of %d", len(def.Sensors), maxSensors)
	}
	return nil
}
