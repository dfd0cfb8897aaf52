package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Kanestar/greener/internal/models"
)

func TestFeedbackMemory_ListSortsByCreatedAtDescending(t *testing.T) {
	r := NewFeedbackMemory()
	ctx := context.Background()

	// Pin the clock so insertion order and timestamp order diverge: the
	// second insert is older than the first.
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := base
	r.now = func() time.Time { return clock }

	newer := r.Create(ctx, models.InsertFeedback{ParkID: 1, Username: "ana", Message: "newer"})
	clock = base.Add(-3 * time.Hour)
	older := r.Create(ctx, models.InsertFeedback{ParkID: 1, Username: "bo", Message: "older"})

	got := r.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0].ID != newer.ID || got[1].ID != older.ID {
		t.Fatalf("order must follow createdAt, not insertion: %+v", got)
	}
}

func TestFeedbackMemory_SeedOrderingAndCounter(t *testing.T) {
	repos := NewRepository()
	ctx := context.Background()

	got := repos.Feedback.List(ctx)
	if len(got) != 2 {
		t.Fatalf("expected 2 seeded feedback items, got %d", len(got))
	}
	// Seed: id 1 is 2h old, id 2 is 5h old, so id 1 comes first.
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected seed ordering: %+v", got)
	}

	created := repos.Feedback.Create(ctx, models.InsertFeedback{ParkID: 1, Username: "cy", Message: "hi"})
	if created.ID != 3 {
		t.Fatalf("expected next feedback id 3, got %d", created.ID)
	}
	// Freshly created item is the newest and must lead the list.
	if got := repos.Feedback.List(ctx); got[0].ID != 3 {
		t.Fatalf("expected new item first, got %+v", got)
	}
}

func TestFeedbackMemory_IncrementLikes(t *testing.T) {
	r := NewFeedbackMemory()
	ctx := context.Background()
	f := r.Create(ctx, models.InsertFeedback{ParkID: 1, Username: "ana", Message: "nice"})

	for i := 1; i <= 3; i++ {
		got, ok := r.IncrementLikes(ctx, f.ID)
		if !ok || got.Likes != i {
			t.Fatalf("like %d: ok=%v likes=%d", i, ok, got.Likes)
		}
	}
	if _, ok := r.IncrementLikes(ctx, 404); ok {
		t.Fatalf("expected ok=false for missing feedback")
	}
}

func TestFeedbackMemory_ListByParkFilters(t *testing.T) {
	r := NewFeedbackMemory()
	ctx := context.Background()
	r.Create(ctx, models.InsertFeedback{ParkID: 1, Username: "ana", Message: "a"})
	r.Create(ctx, models.InsertFeedback{ParkID: 2, Username: "bo", Message: "b"})

	got := r.ListByPark(ctx, 2)
	if len(got) != 1 || got[0].Username != "bo" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}
