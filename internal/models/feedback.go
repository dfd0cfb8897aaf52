package models

import "time"

// Feedback is a visitor comment about a park. Likes only ever grow.
type Feedback struct {
	ID        int       `json:"id"`
	ParkID    int       `json:"parkId"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

// InsertFeedback is the caller-supplied shape for creating feedback.
type InsertFeedback struct {
	ParkID   int    `json:"parkId" binding:"required"`
	Username string `json:"username" binding:"required"`
	Message  string `json:"message" binding:"required"`
	Likes    *int   `json:"likes"` // defaults to 0
}
