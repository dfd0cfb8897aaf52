package models

import "time"

// UsagePrediction is a stored forecast of park occupancy for one time slot.
type UsagePrediction struct {
	ID             int       `json:"id"`
	ParkID         int       `json:"parkId"`
	TimeSlot       string    `json:"timeSlot"`       // display label, e.g. "10:00 AM - 12:00 PM"
	PredictedUsage string    `json:"predictedUsage"` // low | medium | high
	Confidence     int       `json:"confidence"`     // 0-100, defaults to 75
	CreatedAt      time.Time `json:"createdAt"`
}

// InsertUsagePrediction is the caller-supplied shape for storing a prediction.
type InsertUsagePrediction struct {
	ParkID         int    `json:"parkId" binding:"required"`
	TimeSlot       string `json:"timeSlot" binding:"required"`
	PredictedUsage string `json:"predictedUsage" binding:"required"`
	Confidence     *int   `json:"confidence"` // defaults to 75
}
