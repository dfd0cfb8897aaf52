package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

type SensorService struct {
	sensorRepo repository.SensorRepo
	parkRepo   repository.ParkRepo
	generate   func(parkID int) []models.InsertSensorReading
	now        func() time.Time
}

func NewSensorService(sensorRepo repository.SensorRepo, parkRepo repository.ParkRepo) *SensorService {
	return &SensorService{
		sensorRepo: sensorRepo,
		parkRepo:   parkRepo,
		generate:   GenerateReadings,
		now:        time.Now,
	}
}

// ForPark returns all readings recorded for a park. On first access a
// simulated batch is generated and stored so the dashboard is never empty.
func (s *SensorService) ForPark(ctx context.Context, parkID int) ([]models.IotSensorReading, error) {
	stored := s.sensorRepo.ListByPark(ctx, parkID)
	if len(stored) > 0 {
		return stored, nil
	}

	generated := make([]models.IotSensorReading, 0)
	for _, in := range s.generate(parkID) {
		generated = append(generated, s.sensorRepo.Create(ctx, in))
	}
	return generated, nil
}

func (s *SensorService) Record(ctx context.Context, in models.InsertSensorReading) (models.IotSensorReading, error) {
	return s.sensorRepo.Create(ctx, in), nil
}

// Analyze runs the maintenance rules over the park's latest reading per
// sensor type and writes the derived status back onto the park.
func (s *SensorService) Analyze(ctx context.Context, parkID int) (MaintenanceReport, error) {
	if _, ok := s.parkRepo.Get(ctx, parkID); !ok {
		return MaintenanceReport{}, ErrParkNotFound
	}

	batch := latestPerType(s.sensorRepo.ListByPark(ctx, parkID))
	alerts := AnalyzeReadings(batch)
	status := MaintenanceStatusFor(alerts)

	if _, ok := s.parkRepo.Update(ctx, parkID, models.ParkPatch{MaintenanceStatus: &status}); !ok {
		return MaintenanceReport{}, ErrParkNotFound
	}

	return MaintenanceReport{
		ID:         uuid.NewString(),
		ParkID:     parkID,
		Status:     status,
		Alerts:     alerts,
		AnalyzedAt: s.now().UTC(),
	}, nil
}

// latestPerType reduces a reading history to the most recent reading of
// each sensor type. Readings arrive in id order, so the last one of a type
// wins.
func latestPerType(readings []models.IotSensorReading) []models.IotSensorReading {
	latest := make(map[string]models.IotSensorReading, len(readings))
	order := make([]string, 0, len(readings))
	for _, r := range readings {
		if _, seen := latest[r.SensorType]; !seen {
			order = append(order, r.SensorType)
		}
		latest[r.SensorType] = r
	}
	out := make([]models.IotSensorReading, 0, len(order))
	for _, t := range order {
		out = append(out, latest[t])
	}
	return out
}
