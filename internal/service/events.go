package service

import (
	"context"
	"errors"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

var (
	ErrEventNotFound = errors.New("event not found")
	ErrEventFull     = errors.New("event is full")
)

type EventService struct {
	eventRepo repository.EventRepo
}

func NewEventService(eventRepo repository.EventRepo) *EventService {
	return &EventService{eventRepo: eventRepo}
}

func (s *EventService) List(ctx context.Context) ([]models.Event, error) {
	return s.eventRepo.List(ctx), nil
}

func (s *EventService) ListByPark(ctx context.Context, parkID int) ([]models.Event, error) {
	return s.eventRepo.ListByPark(ctx, parkID), nil
}

func (s *EventService) Create(ctx context.Context, in models.InsertEvent) (models.Event, error) {
	return s.eventRepo.Create(ctx, in), nil
}

// SignUp registers one attendee. The capacity pre-check lives here, not in
// the store: the repo would happily increment past MaxSignups if asked.
func (s *EventService) SignUp(ctx context.Context, id int) (models.Event, error) {
	e, ok := s.eventRepo.Get(ctx, id)
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	if e.MaxSignups != nil && e.Signups >= *e.MaxSignups {
		return models.Event{}, ErrEventFull
	}
	e, ok = s.eventRepo.IncrementSignups(ctx, id)
	if !ok {
		return models.Event{}, ErrEventNotFound
	}
	return e, nil
}
