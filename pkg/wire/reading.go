package wire

// Reading is a single CO2 measurement as carried on the wire.
//
// OwnerID identifies the company that owns the sensor in the single-tier
// deployment and the zone the sensor belongs to in the two-tier deployment;
// the frame grammar names the field accordingly (COMPANY vs ZONE).
// Timestamp is virtual time in microseconds and only travels in single-tier
// frames.
type Reading struct {
	SensorID  uint32
	OwnerID   uint32
	CO2PPM    float64
	Timestamp int64
}
