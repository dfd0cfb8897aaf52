package models

import "time"

// Known sensor types emitted by the simulator. The store does not enforce
// this vocabulary; unknown types are stored and simply ignored by the
// maintenance analysis.
const (
	SensorTrashLevel   = "trash_level"
	SensorGrassHeight  = "grass_height"
	SensorTemperature  = "temperature"
	SensorHumidity     = "humidity"
	SensorSoilMoisture = "soil_moisture"
	SensorAirQuality   = "air_quality"
)

// IotSensorReading is a single timestamped measurement attributed to a park.
// Value is kept as text; consumers parse it per sensor type.
type IotSensorReading struct {
	ID         int       `json:"id"`
	ParkID     int       `json:"parkId"`
	SensorType string    `json:"sensorType"`
	Value      string    `json:"value"`
	Unit       *string   `json:"unit,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// InsertSensorReading is the caller-supplied shape for recording a reading.
type InsertSensorReading struct {
	ParkID     int     `json:"parkId" binding:"required"`
	SensorType string  `json:"sensorType" binding:"required"`
	Value      string  `json:"value" binding:"required"`
	Unit       *string `json:"unit"`
}
