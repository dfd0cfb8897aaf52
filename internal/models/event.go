package models

import "time"

// Event is a community event scheduled in a park. Date and Time are display
// labels ("Saturday", "2:00 PM - 8:00 PM"), not parsed timestamps.
type Event struct {
	ID          int       `json:"id"`
	ParkID      int       `json:"parkId"` // not checked against the parks collection
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Signups     int       `json:"signups"`
	MaxSignups  *int      `json:"maxSignups,omitempty"`
	Category    string    `json:"category"` // free text, "general" by default
	CreatedAt   time.Time `json:"createdAt"`
}

// InsertEvent is the caller-supplied shape for creating an event.
type InsertEvent struct {
	ParkID      int     `json:"parkId" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time" binding:"required"`
	Signups     *int    `json:"signups"`    // defaults to 0
	MaxSignups  *int    `json:"maxSignups"` // defaults to 50
	Category    *string `json:"category"`   // defaults to "general"
}
