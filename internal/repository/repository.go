package repository

import (
	"context"

	"github.com/Kanestar/greener/internal/models"
)

// Repos hold all state in process memory. Operations are total: lookups
// signal absence through an ok bool instead of an error, and the caller
// decides whether that means 404 or no-op. Ids are assigned by the repo,
// monotonically increasing, and never reused (nothing is ever deleted).

type ParkRepo interface {
	List(ctx context.Context) []models.Park
	Get(ctx context.Context, id int) (models.Park, bool)
	Create(ctx context.Context, in models.InsertPark) models.Park
	Update(ctx context.Context, id int, patch models.ParkPatch) (models.Park, bool)
}

type EventRepo interface {
	List(ctx context.Context) []models.Event
	ListByPark(ctx context.Context, parkID int) []models.Event
	Get(ctx context.Context, id int) (models.Event, bool)
	Create(ctx context.Context, in models.InsertEvent) models.Event
	// IncrementSignups adds one signup unconditionally; capacity checks
	// belong to the service layer.
	IncrementSignups(ctx context.Context, id int) (models.Event, bool)
}

type FeedbackRepo interface {
	// List returns feedback sorted by CreatedAt descending (newest first).
	List(ctx context.Context) []models.Feedback
	ListByPark(ctx context.Context, parkID int) []models.Feedback
	Create(ctx context.Context, in models.InsertFeedback) models.Feedback
	IncrementLikes(ctx context.Context, id int) (models.Feedback, bool)
}

type PredictionRepo interface {
	ListByPark(ctx context.Context, parkID int) []models.UsagePrediction
	Create(ctx context.Context, in models.InsertUsagePrediction) models.UsagePrediction
}

type SensorRepo interface {
	ListByPark(ctx context.Context, parkID int) []models.IotSensorReading
	Create(ctx context.Context, in models.InsertSensorReading) models.IotSensorReading
}

type Repository struct {
	Parks       ParkRepo
	Events      EventRepo
	Feedback    FeedbackRepo
	Predictions PredictionRepo
	Sensors     SensorRepo
}

// NewRepository builds the in-memory store pre-populated with seed data.
func NewRepository() *Repository {
	parks := NewParkMemory()
	events := NewEventMemory()
	feedback := NewFeedbackMemory()
	seed(parks, events, feedback)

	return &Repository{
		Parks:       parks,
		Events:      events,
		Feedback:    feedback,
		Predictions: NewPredictionMemory(),
		Sensors:     NewSensorMemory(),
	}
}
