package service

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

// Sampling ranges for simulated sensors: [min, min+span).
var sensorRanges = []struct {
	sensorType string
	unit       string
	min, span  int
}{
	{models.SensorTrashLevel, "%", 0, 100},
	{models.SensorGrassHeight, "cm", 5, 20},
	{models.SensorTemperature, "°F", 50, 40},
	{models.SensorHumidity, "%", 20, 60},
	{models.SensorSoilMoisture, "%", 10, 80},
	{models.SensorAirQuality, "AQI", 0, 300},
}

// GenerateReadings produces one uniformly sampled reading per sensor type.
func GenerateReadings(parkID int) []models.InsertSensorReading {
	return generateReadings(parkID, rand.Intn)
}

func generateReadings(parkID int, intn func(n int) int) []models.InsertSensorReading {
	out := make([]models.InsertSensorReading, 0, len(sensorRanges))
	for _, sr := range sensorRanges {
		unit := sr.unit
		out = append(out, models.InsertSensorReading{
			ParkID:     parkID,
			SensorType: sr.sensorType,
			Value:      strconv.Itoa(sr.min + intn(sr.span)),
			Unit:       &unit,
		})
	}
	return out
}

// SimulatorService periodically emits sensor readings for every park and
// keeps each park's maintenance status in line with them.
type SimulatorService struct {
	parkRepo   repository.ParkRepo
	sensorRepo repository.SensorRepo
	intn       func(n int) int
}

func NewSimulatorService(parkRepo repository.ParkRepo, sensorRepo repository.SensorRepo) *SimulatorService {
	return &SimulatorService{
		parkRepo:   parkRepo,
		sensorRepo: sensorRepo,
		intn:       rand.Intn,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

// step emits one reading batch per park and refreshes its maintenance
// status from that batch.
func (s *SimulatorService) step(ctx context.Context) {
	for _, park := range s.parkRepo.List(ctx) {
		batch := make([]models.IotSensorReading, 0, len(sensorRanges))
		for _, in := range generateReadings(park.ID, s.intn) {
			batch = append(batch, s.sensorRepo.Create(ctx, in))
		}

		status := MaintenanceStatusFor(AnalyzeReadings(batch))
		s.parkRepo.Update(ctx, park.ID, models.ParkPatch{MaintenanceStatus: &status})
	}
}
