package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

const defaultPredictionConfidence = 75

// PredictionMemory keeps stored usage forecasts keyed by id.
type PredictionMemory struct {
	mu          sync.RWMutex
	predictions map[int]models.UsagePrediction
	nextID      int
	now         func() time.Time
}

func NewPredictionMemory() *PredictionMemory {
	return &PredictionMemory{
		predictions: make(map[int]models.UsagePrediction),
		nextID:      1,
		now:         time.Now,
	}
}

func (r *PredictionMemory) ListByPark(ctx context.Context, parkID int) []models.UsagePrediction {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.UsagePrediction, 0)
	for _, p := range r.predictions {
		if p.ParkID == parkID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *PredictionMemory) Create(ctx context.Context, in models.InsertUsagePrediction) models.UsagePrediction {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := models.UsagePrediction{
		ID:             r.nextID,
		ParkID:         in.ParkID,
		TimeSlot:       in.TimeSlot,
		PredictedUsage: in.PredictedUsage,
		Confidence:     intOr(in.Confidence, defaultPredictionConfidence),
		CreatedAt:      r.now().UTC(),
	}
	r.nextID++
	r.predictions[p.ID] = p
	return p
}
