package service

import (
	"context"
	"time"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

// Parks exposes read/write access to the park collection.
type Parks interface {
	List(ctx context.Context) ([]models.Park, error)
	Get(ctx context.Context, id int) (models.Park, error)
	Create(ctx context.Context, in models.InsertPark) (models.Park, error)
	Update(ctx context.Context, id int, patch models.ParkPatch) (models.Park, error)
}

// Events exposes event listing, creation and signups (with capacity check).
type Events interface {
	List(ctx context.Context) ([]models.Event, error)
	ListByPark(ctx context.Context, parkID int) ([]models.Event, error)
	Create(ctx context.Context, in models.InsertEvent) (models.Event, error)
	SignUp(ctx context.Context, id int) (models.Event, error)
}

// Feedback exposes the visitor feedback feed.
type Feedback interface {
	List(ctx context.Context) ([]models.Feedback, error)
	ListByPark(ctx context.Context, parkID int) ([]models.Feedback, error)
	Create(ctx context.Context, in models.InsertFeedback) (models.Feedback, error)
	Like(ctx context.Context, id int) (models.Feedback, error)
}

// Predictions exposes the usage forecast, stored and on demand.
type Predictions interface {
	ForPark(ctx context.Context, parkID int) ([]models.UsagePrediction, error)
	Evaluate(in PredictionInput) (PredictionOutput, error)
}

// Sensors exposes sensor readings and the maintenance analysis derived
// from them.
type Sensors interface {
	ForPark(ctx context.Context, parkID int) ([]models.IotSensorReading, error)
	Record(ctx context.Context, in models.InsertSensorReading) (models.IotSensorReading, error)
	Analyze(ctx context.Context, parkID int) (MaintenanceReport, error)
}

// Simulator runs the background loop producing sensor readings and keeping
// park maintenance statuses current. Stop via context cancellation in main().
type Simulator interface {
	Run(ctx context.Context, tick time.Duration)
}

// Service aggregates all sub-services behind one wiring point.
type Service struct {
	Parks
	Events
	Feedback
	Predictions
	Sensors
	Simulator
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository) *Service {
	return &Service{
		Parks:       NewParkService(repos.Parks),
		Events:      NewEventService(repos.Events),
		Feedback:    NewFeedbackService(repos.Feedback),
		Predictions: NewPredictionService(repos.Predictions),
		Sensors:     NewSensorService(repos.Sensors, repos.Parks),
		Simulator:   NewSimulatorService(repos.Parks, repos.Sensors),
	}
}
