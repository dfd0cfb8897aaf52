package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

// SensorMemory keeps sensor readings keyed by id. Readings accumulate for
// the process lifetime; there is no retention policy.
type SensorMemory struct {
	mu       sync.RWMutex
	readings map[int]models.IotSensorReading
	nextID   int
	now      func() time.Time
}

func NewSensorMemory() *SensorMemory {
	return &SensorMemory{
		readings: make(map[int]models.IotSensorReading),
		nextID:   1,
		now:      time.Now,
	}
}

func (r *SensorMemory) ListByPark(ctx context.Context, parkID int) []models.IotSensorReading {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.IotSensorReading, 0)
	for _, s := range r.readings {
		if s.ParkID == parkID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create stamps the reading with the current instant and stores it.
func (r *SensorMemory) Create(ctx context.Context, in models.InsertSensorReading) models.IotSensorReading {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.IotSensorReading{
		ID:         r.nextID,
		ParkID:     in.ParkID,
		SensorType: in.SensorType,
		Value:      in.Value,
		Unit:       in.Unit,
		Timestamp:  r.now().UTC(),
	}
	r.nextID++
	r.readings[s.ID] = s
	return s
}
