package volume

// SensitiveDetector records the readout parameters of a photosensor.
type SensitiveDetector struct {
	Name        string  `json:"name"`
	TimeBinning float64 `json:"timeBinning"`
	// SensorDepth is the depth of the sensor id in the touchable history.
	SensorDepth int `json:"sensorDepth"`
	// MotherDepth is the depth of the volume carrying the board copy number.
	MotherDepth int `json:"motherDepth"`
	// NamingOrder scales the mother copy number in the sensor id.
	NamingOrder int `json:"namingOrder"`
}

// SensorID combines the mother and sensor copy numbers.
func (sd *SensitiveDetector) SensorID(motherCopyNo, sensorCopyNo int) int {
	return motherCopyNo*sd.NamingOrder + sensorCopyNo
}
