package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

// Defaults applied to insert shapes when the caller leaves a field unset.
const (
	defaultParkStatus      = "active"
	defaultParkUsage       = "low"
	defaultParkMaintenance = "good"
)

// ParkMemory keeps parks in a map keyed by id. The map is guarded by a
// RWMutex: HTTP handlers and the sensor simulator touch it concurrently.
type ParkMemory struct {
	mu     sync.RWMutex
	parks  map[int]models.Park
	nextID int
	now    func() time.Time
}

func NewParkMemory() *ParkMemory {
	return &ParkMemory{
		parks:  make(map[int]models.Park),
		nextID: 1,
		now:    time.Now,
	}
}

// put installs a park under a fixed id and keeps the counter past it.
// Used for seeding only.
func (r *ParkMemory) put(p models.Park) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.parks[p.ID] = p
	if p.ID >= r.nextID {
		r.nextID = p.ID + 1
	}
}

// List returns all parks in insertion order (ids are monotone).
func (r *ParkMemory) List(ctx context.Context) []models.Park {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Park, 0, len(r.parks))
	for _, p := range r.parks {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *ParkMemory) Get(ctx context.Context, id int) (models.Park, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.parks[id]
	return p, ok
}

// Create assigns the next id, stamps CreatedAt, fills defaults and stores.
func (r *ParkMemory) Create(ctx context.Context, in models.InsertPark) models.Park {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := models.Park{
		ID:                r.nextID,
		Name:              in.Name,
		Location:          in.Location,
		Description:       in.Description,
		Status:            stringOr(in.Status, defaultParkStatus),
		CurrentUsage:      stringOr(in.CurrentUsage, defaultParkUsage),
		MaintenanceStatus: stringOr(in.MaintenanceStatus, defaultParkMaintenance),
		NextEvent:         in.NextEvent,
		ImageURL:          in.ImageURL,
		CreatedAt:         r.now().UTC(),
	}
	r.nextID++
	r.parks[p.ID] = p
	return p
}

// Update merges non-nil patch fields into the stored park. CreatedAt is
// never touched.
func (r *ParkMemory) Update(ctx context.Context, id int, patch models.ParkPatch) (models.Park, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parks[id]
	if !ok {
		return models.Park{}, false
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.Description != nil {
		p.Description = patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.CurrentUsage != nil {
		p.CurrentUsage = *patch.CurrentUsage
	}
	if patch.MaintenanceStatus != nil {
		p.MaintenanceStatus = *patch.MaintenanceStatus
	}
	if patch.NextEvent != nil {
		p.NextEvent = patch.NextEvent
	}
	if patch.ImageURL != nil {
		p.ImageURL = patch.ImageURL
	}
	r.parks[id] = p
	return p, true
}

// stringOr dereferences s or falls back to def.
func stringOr(s *string, def string) string {
	if s != nil {
		return *s
	}
	return def
}

// intOr dereferences n or falls back to def.
func intOr(n *int, def int) int {
	if n != nil {
		return *n
	}
	return def
}
