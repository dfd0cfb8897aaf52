package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

const (
	defaultEventCategory   = "general"
	defaultEventMaxSignups = 50
)

// EventMemory keeps events in a map keyed by id.
type EventMemory struct {
	mu     sync.RWMutex
	events map[int]models.Event
	nextID int
	now    func() time.Time
}

func NewEventMemory() *EventMemory {
	return &EventMemory{
		events: make(map[int]models.Event),
		nextID: 1,
		now:    time.Now,
	}
}

func (r *EventMemory) put(e models.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events[e.ID] = e
	if e.ID >= r.nextID {
		r.nextID = e.ID + 1
	}
}

func (r *EventMemory) List(ctx context.Context) []models.Event {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Event, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListByPark filters by park id. Dangling park references are allowed, so
// an unknown park simply yields an empty slice.
func (r *EventMemory) ListByPark(ctx context.Context, parkID int) []models.Event {
	out := r.List(ctx)
	filtered := out[:0]
	for _, e := range out {
		if e.ParkID == parkID {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func (r *EventMemory) Get(ctx context.Context, id int) (models.Event, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.events[id]
	return e, ok
}

func (r *EventMemory) Create(ctx context.Context, in models.InsertEvent) models.Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxSignups := intOr(in.MaxSignups, defaultEventMaxSignups)
	e := models.Event{
		ID:          r.nextID,
		ParkID:      in.ParkID,
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Time:        in.Time,
		Signups:     intOr(in.Signups, 0),
		MaxSignups:  &maxSignups,
		Category:    stringOr(in.Category, defaultEventCategory),
		CreatedAt:   r.now().UTC(),
	}
	r.nextID++
	r.events[e.ID] = e
	return e
}

// IncrementSignups adds one signup. It does not look at MaxSignups: the
// capacity pre-check is the caller's job.
func (r *EventMemory) IncrementSignups(ctx context.Context, id int) (models.Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.events[id]
	if !ok {
		return models.Event{}, false
	}
	e.Signups++
	r.events[id] = e
	return e, true
}
