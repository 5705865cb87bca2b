package rdm

// StandardDescriptors returns the PID descriptor table entries every
// responder built with this package carries: the mandatory PIDs plus a
// set of commonly-supported optional ones. Discovery PIDs
// (DISC_UNIQUE_BRANCH/DISC_MUTE/DISC_UN_MUTE) are listed here purely so
// SUPPORTED_PARAMETERS can see and skip them — they are actually
// dispatched through Dispatcher.handleDiscovery, never through this
// table's GetHandler/SetHandler.
//
// Callers append manufacturer-specific descriptors (the table is
// searched linearly in the order given) and pass the combined slice as
// ResponderDefinition.Descriptors.
func StandardDescriptors(counters ReceiverCounters) []PIDDescriptor {
	if counters == nil {
		counters = NullReceiverCounters{}
	}
	return []PIDDescriptor{
		{PID: PIDDiscUniqueBranch},
		{PID: PIDDiscMute},
		{PID: PIDDiscUnMute},
		{PID: PIDSupportedParameters, GetHandler: GetSupportedParameters, GetParamSize: 0},
		{PID: PIDParameterDescription, GetHandler: GetParameterDescription, GetParamSize: 2},
		{PID: PIDDeviceInfo, GetHandler: GetDeviceInfo, GetParamSize: 0},
		{PID: PIDProductDetailIDList, GetHandler: GetProductDetailIDList, GetParamSize: 0},
		{PID: PIDDeviceModelDescription, GetHandler: GetDeviceModelDescription, GetParamSize: 0},
		{PID: PIDManufacturerLabel, GetHandler: GetManufacturerLabel, GetParamSize: 0},
		{PID: PIDSoftwareVersionLabel, GetHandler: GetSoftwareVersionLabel, GetParamSize: 0},
		{PID: PIDBootSoftwareVersionID, GetHandler: GetBootSoftwareVersionID, GetParamSize: 0},
		{PID: PIDBootSoftwareVersionLabel, GetHandler: GetBootSoftwareVersionLabel, GetParamSize: 0},
		{PID: PIDDeviceLabel, GetHandler: GetDeviceLabel, SetHandler: SetDeviceLabel, GetParamSize: 0},
		{PID: PIDDMXPersonality, GetHandler: GetDMXPersonality, SetHandler: SetDMXPersonality, GetParamSize: 0},
		{PID: PIDDMXPersonalityDescription, GetHandler: GetDMXPersonalityDescription, GetParamSize: 1},
		{PID: PIDDMXStartAddress, GetHandler: GetDMXStartAddress, SetHandler: SetDMXStartAddress, GetParamSize: 0},
		{PID: PIDSlotInfo, GetHandler: GetSlotInfo, GetParamSize: 0},
		{PID: PIDSlotDescription, GetHandler: GetSlotDescription, GetParamSize: 2},
		{PID: PIDDefaultSlotValue, GetHandler: GetDefaultSlotValue, GetParamSize: 0},
		{PID: PIDSensorDefinition, GetHandler: GetSensorDefinition, GetParamSize: 1},
		{PID: PIDSensorValue, GetHandler: GetSensorValue, SetHandler: SetSensorValue, GetParamSize: 1},
		{PID: PIDRecordSensors, SetHandler: SetRecordSensor},
		{PID: PIDIdentifyDevice, GetHandler: GetIdentifyDevice, SetHandler: SetIdentifyDevice, GetParamSize: 0},
		{PID: PIDCommsStatus, GetHandler: GetCommsStatus(counters), SetHandler: SetCommsStatus(counters), GetParamSize: 0},
	}
}
