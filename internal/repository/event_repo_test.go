package repository

import (
	"context"
	"testing"

	"github.com/Kanestar/greener/internal/models"
)

func TestEventMemory_CreateAppliesDefaults(t *testing.T) {
	r := NewEventMemory()
	e := r.Create(context.Background(), models.InsertEvent{
		ParkID: 1,
		Name:   "Tai Chi",
		Date:   "Monday",
		Time:   "7:00 AM - 8:00 AM",
	})

	if e.Signups != 0 {
		t.Fatalf("expected signups 0, got %d", e.Signups)
	}
	if e.MaxSignups == nil || *e.MaxSignups != 50 {
		t.Fatalf("expected maxSignups default 50, got %v", e.MaxSignups)
	}
	if e.Category != "general" {
		t.Fatalf("expected category general, got %q", e.Category)
	}
}

func TestEventMemory_IncrementSignupsNTimes(t *testing.T) {
	r := NewEventMemory()
	ctx := context.Background()
	e := r.Create(ctx, models.InsertEvent{ParkID: 1, Name: "Run Club", Date: "Today", Time: "6 PM"})

	const n = 5
	var last models.Event
	for i := 0; i < n; i++ {
		var ok bool
		last, ok = r.IncrementSignups(ctx, e.ID)
		if !ok {
			t.Fatalf("increment %d: event disappeared", i)
		}
	}
	if last.Signups != n {
		t.Fatalf("expected signups %d, got %d", n, last.Signups)
	}
}

func TestEventMemory_IncrementSignupsMissingLeavesOthersUnchanged(t *testing.T) {
	r := NewEventMemory()
	ctx := context.Background()
	e := r.Create(ctx, models.InsertEvent{ParkID: 1, Name: "Run Club", Date: "Today", Time: "6 PM"})

	if _, ok := r.IncrementSignups(ctx, 999); ok {
		t.Fatalf("expected ok=false for missing event")
	}
	got, _ := r.Get(ctx, e.ID)
	if got.Signups != 0 {
		t.Fatalf("other events must be untouched, got signups %d", got.Signups)
	}
}

func TestEventMemory_IncrementSignupsIgnoresCapacity(t *testing.T) {
	// The store itself does not enforce MaxSignups; that check belongs to
	// the service layer.
	r := NewEventMemory()
	ctx := context.Background()
	max := 1
	e := r.Create(ctx, models.InsertEvent{ParkID: 1, Name: "Tiny", Date: "Today", Time: "6 PM", MaxSignups: &max})

	for i := 0; i < 3; i++ {
		if _, ok := r.IncrementSignups(ctx, e.ID); !ok {
			t.Fatalf("increment %d failed", i)
		}
	}
	got, _ := r.Get(ctx, e.ID)
	if got.Signups != 3 {
		t.Fatalf("expected store to allow 3 signups past capacity, got %d", got.Signups)
	}
}

func TestEventMemory_ListByParkFilters(t *testing.T) {
	r := NewEventMemory()
	ctx := context.Background()
	r.Create(ctx, models.InsertEvent{ParkID: 1, Name: "A", Date: "d", Time: "t"})
	r.Create(ctx, models.InsertEvent{ParkID: 2, Name: "B", Date: "d", Time: "t"})
	r.Create(ctx, models.InsertEvent{ParkID: 1, Name: "C", Date: "d", Time: "t"})

	got := r.ListByPark(ctx, 1)
	if len(got) != 2 || got[0].Name != "A" || got[1].Name != "C" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
	// Dangling park references are permitted; unknown park is just empty.
	if got := r.ListByPark(ctx, 77); len(got) != 0 {
		t.Fatalf("expected empty result for unknown park, got %+v", got)
	}
}
