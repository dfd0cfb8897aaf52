package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

func TestEventService_SignUpIncrementsUntilFull(t *testing.T) {
	events := repository.NewEventMemory()
	svc := NewEventService(events)
	ctx := context.Background()

	max := 2
	e := events.Create(ctx, models.InsertEvent{ParkID: 1, Name: "Picnic", Date: "Today", Time: "noon", MaxSignups: &max})

	for i := 1; i <= max; i++ {
		got, err := svc.SignUp(ctx, e.ID)
		if err != nil {
			t.Fatalf("signup %d: %v", i, err)
		}
		if got.Signups != i {
			t.Fatalf("signup %d: got %d", i, got.Signups)
		}
	}

	if _, err := svc.SignUp(ctx, e.ID); !errors.Is(err, ErrEventFull) {
		t.Fatalf("expected ErrEventFull, got %v", err)
	}
	got, _ := events.Get(ctx, e.ID)
	if got.Signups != max {
		t.Fatalf("full event must not gain signups, got %d", got.Signups)
	}
}

func TestEventService_SignUpMissingEvent(t *testing.T) {
	svc := NewEventService(repository.NewEventMemory())
	if _, err := svc.SignUp(context.Background(), 123); !errors.Is(err, ErrEventNotFound) {
		t.Fatalf("expected ErrEventNotFound, got %v", err)
	}
}
