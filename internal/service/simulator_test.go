package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

func TestGenerateReadings_ValuesWithinRanges(t *testing.T) {
	for i := 0; i < 50; i++ {
		bounds := map[string][2]int{
			models.SensorTrashLevel:   {0, 99},
			models.SensorGrassHeight:  {5, 24},
			models.SensorTemperature:  {50, 89},
			models.SensorHumidity:     {20, 79},
			models.SensorSoilMoisture: {10, 89},
			models.SensorAirQuality:   {0, 299},
		}
		for _, r := range GenerateReadings(1) {
			b, ok := bounds[r.SensorType]
			if !ok {
				t.Fatalf("unexpected sensor type %q", r.SensorType)
			}
			v, err := strconv.Atoi(r.Value)
			if err != nil {
				t.Fatalf("value %q not an integer: %v", r.Value, err)
			}
			if v < b[0] || v > b[1] {
				t.Fatalf("%s value %d outside [%d,%d]", r.SensorType, v, b[0], b[1])
			}
		}
	}
}

func TestSimulatorService_StepRecordsReadingsAndStatus(t *testing.T) {
	parks := repository.NewParkMemory()
	sensors := repository.NewSensorMemory()
	ctx := context.Background()
	a := parks.Create(ctx, models.InsertPark{Name: "A", Location: "North"})
	b := parks.Create(ctx, models.InsertPark{Name: "B", Location: "South"})

	sim := NewSimulatorService(parks, sensors)
	// Force every sample to the top of its range: trash and grass both
	// urgent, so the derived status is urgent for every park.
	sim.intn = func(n int) int { return n - 1 }

	sim.step(ctx)

	for _, park := range []models.Park{a, b} {
		readings := sensors.ListByPark(ctx, park.ID)
		if len(readings) != 6 {
			t.Fatalf("park %d: expected 6 readings, got %d", park.ID, len(readings))
		}
		got, _ := parks.Get(ctx, park.ID)
		if got.MaintenanceStatus != StatusUrgent {
			t.Fatalf("park %d: expected urgent, got %q", park.ID, got.MaintenanceStatus)
		}
	}

	// A calm batch flips the status back.
	sim.intn = func(n int) int { return 0 }
	sim.step(ctx)
	got, _ := parks.Get(ctx, a.ID)
	if got.MaintenanceStatus != StatusGood {
		t.Fatalf("expected good after calm batch, got %q", got.MaintenanceStatus)
	}
}

func TestSimulatorService_RunStopsOnCancel(t *testing.T) {
	parks := repository.NewParkMemory()
	sensors := repository.NewSensorMemory()
	sim := NewSimulatorService(parks, sensors)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sim.Run(ctx, time.Millisecond)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
	// Cancelling again must be harmless.
	cancel()
}
