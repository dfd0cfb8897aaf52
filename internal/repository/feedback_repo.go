package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

// FeedbackMemory keeps feedback in a map keyed by id.
type FeedbackMemory struct {
	mu       sync.RWMutex
	feedback map[int]models.Feedback
	nextID   int
	now      func() time.Time
}

func NewFeedbackMemory() *FeedbackMemory {
	return &FeedbackMemory{
		feedback: make(map[int]models.Feedback),
		nextID:   1,
		now:      time.Now,
	}
}

func (r *FeedbackMemory) put(f models.Feedback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.feedback[f.ID] = f
	if f.ID >= r.nextID {
		r.nextID = f.ID + 1
	}
}

// List returns feedback newest first. The dashboard's feed relies on this
// ordering, so it follows CreatedAt, not insertion sequence. Equal
// timestamps fall back to id order.
func (r *FeedbackMemory) List(ctx context.Context) []models.Feedback {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Feedback, 0, len(r.feedback))
	for _, f := range r.feedback {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (r *FeedbackMemory) ListByPark(ctx context.Context, parkID int) []models.Feedback {
	out := r.List(ctx)
	filtered := out[:0]
	for _, f := range out {
		if f.ParkID == parkID {
			filtered = append(filtered, f)
		}
	}
	return filtered
}

func (r *FeedbackMemory) Create(ctx context.Context, in models.InsertFeedback) models.Feedback {
	r.mu.Lock()
	defer r.mu.Unlock()

	f := models.Feedback{
		ID:        r.nextID,
		ParkID:    in.ParkID,
		Username:  in.Username,
		Message:   in.Message,
		Likes:     intOr(in.Likes, 0),
		CreatedAt: r.now().UTC(),
	}
	r.nextID++
	r.feedback[f.ID] = f
	return f
}

// IncrementLikes adds one like. There is no way to take a like back.
func (r *FeedbackMemory) IncrementLikes(ctx context.Context, id int) (models.Feedback, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, ok := r.feedback[id]
	if !ok {
		return models.Feedback{}, false
	}
	f.Likes++
	r.feedback[id] = f
	return f, true
}
