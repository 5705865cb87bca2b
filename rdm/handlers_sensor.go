package rdm

// buildSensorValue appends one sensor's SENSOR_VALUE payload (index,
// present, lowest, highest, recorded).
func buildSensorValue(pd []byte, index byte, s SensorData) []byte {
	pd = append(pd, index)
	pd = PushUint16(pd, s.PresentValue)
	pd = PushUint16(pd, s.LowestValue)
	pd = PushUint16(pd, s.HighestValue)
	pd = PushUint16(pd, s.RecordedValue)
	return pd
}

// sensorValuePayloadLength is sizeof(index) + 4 uint16 fields.
const sensorValuePayloadLength = 1 + 2*4

// GetSensorDefinition implements SENSOR_DEFINITION, a per-index query.
func GetSensorDefinition(r *Responder, header Header, paramData []byte) ([]byte, int) {
	index := paramData[0]
	if int(index) >= r.Def.SensorCount() {
		return r.BuildNack(header, NRDataOutOfRange)
	}

	def := r.Def.Sensors[index]
	pd := []byte{index, def.Type, def.Unit, def.Prefix}
	pd = PushUint16(pd, def.RangeMinimumValue)
	pd = PushUint16(pd, def.RangeMaximumValue)
	pd = PushUint16(pd, def.NormalMinimumValue)
	pd = PushUint16(pd, def.NormalMaximumValue)
	pd = append(pd, def.RecordedValueSupport)
	pd = AppendBoundedString(pd, def.Description, RDMDefaultStringSize)

	return r.buildResponse(header, ResponseACK, pd)
}

// GetSensorValue implements SENSOR_VALUE GET. A sensor with
// ShouldNack=true NACKs with its own configured reason — a deliberate
// test hook preserved from the reference firmware.
func GetSensorValue(r *Responder, header Header, paramData []byte) ([]byte, int) {
	index := paramData[0]
	if int(index) >= r.Def.SensorCount() {
		return r.BuildNack(header, NRDataOutOfRange)
	}

	sensor := r.Sensors[index]
	if sensor.ShouldNack {
		return r.BuildNack(header, sensor.NackReason)
	}

	pd := buildSensorValue(nil, index, sensor)
	return r.buildResponse(header, ResponseACK, pd)
}

// SetSensorValue implements SENSOR_VALUE SET: reset one sensor, or every
// sensor when index is AllSensors.
func SetSensorValue(r *Responder, header Header, paramData []byte) ([]byte, int) {
	if header.ParamDataLength != 1 {
		return r.BuildNack(header, NRFormatError)
	}

	index := paramData[0]
	switch {
	case int(index) < r.Def.SensorCount():
		r.resetSensor(int(index))
	case index == AllSensors:
		for i := range r.Sensors {
			r.resetSensor(i)
		}
	default:
		return r.BuildNack(header, NRDataOutOfRange)
	}

	if !header.DestUID.IsUnicast() {
		return nil, NoResponse
	}

	var pd []byte
	if index == AllSensors {
		pd = make([]byte, sensorValuePayloadLength)
	} else {
		pd = buildSensorValue(nil, index, r.Sensors[index])
	}
	return r.buildResponse(header, ResponseACK, pd)
}

// SetRecordSensor implements RECORD_SENSORS: record one sensor's present
// value, or every sensor's when index is AllSensors. Recording a sensor
// that doesn't support it is a data-out-of-range error.
func SetRecordSensor(r *Responder, header Header, paramData []byte) ([]byte, int) {
	if header.ParamDataLength != 1 {
		return r.BuildNack(header, NRFormatError)
	}

	index := paramData[0]
	switch {
	case int(index) < r.Def.SensorCount():
		if r.Def.Sensors[index].RecordedValueSupport&SensorSupportsRecordingMask == 0 {
			return r.BuildNack(header, NRDataOutOfRange)
		}
		r.recordSensor(int(index))
		return r.BuildSetAck(header)
	case index == AllSensors:
		for i := range r.Sensors {
			r.recordSensor(i)
		}
		return r.BuildSetAck(header)
	default:
		return r.BuildNack(header, NRDataOutOfRange)
	}
}
