package models

import "time"

// Park is one managed green space shown on the dashboard.
type Park struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	Description       *string   `json:"description,omitempty"`
	Status            string    `json:"status"`            // free text, "active" by default
	CurrentUsage      string    `json:"currentUsage"`      // low | medium | high
	MaintenanceStatus string    `json:"maintenanceStatus"` // good | needs_attention | urgent
	NextEvent         *string   `json:"nextEvent,omitempty"`
	ImageURL          *string   `json:"imageUrl,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// InsertPark is the caller-supplied shape for creating a park.
// The store assigns ID and CreatedAt and fills defaults for nil fields.
type InsertPark struct {
	Name              string  `json:"name" binding:"required"`
	Location          string  `json:"location" binding:"required"`
	Description       *string `json:"description"`
	Status            *string `json:"status"`
	CurrentUsage      *string `json:"currentUsage"`
	MaintenanceStatus *string `json:"maintenanceStatus"`
	NextEvent         *string `json:"nextEvent"`
	ImageURL          *string `json:"imageUrl"`
}

// ParkPatch is a partial update: nil fields are left untouched,
// non-nil fields overwrite (last write wins per field).
type ParkPatch struct {
	Name              *string `json:"name"`
	Location          *string `json:"location"`
	Description       *string `json:"description"`
	Status            *string `json:"status"`
	CurrentUsage      *string `json:"currentUsage"`
	MaintenanceStatus *string `json:"maintenanceStatus"`
	NextEvent         *string `json:"nextEvent"`
	ImageURL          *string `json:"imageUrl"`
}
