package repository

import (
	"time"

	"github.com/Kanestar/greener/internal/models"
)

// seed pre-populates the store with demo content so the dashboard has
// something to show on a fresh start. Fixed ids 1..N per collection; the
// per-collection counters end up one past the highest seeded id.
func seed(parks *ParkMemory, events *EventMemory, feedback *FeedbackMemory) {
	now := time.Now().UTC()

	for _, p := range []models.Park{
		{
			ID:                1,
			Name:              "Central Park",
			Location:          "Downtown",
			Description:       strPtr("Large urban park with walking paths and recreational facilities"),
			Status:            "active",
			CurrentUsage:      "high",
			MaintenanceStatus: "needs_attention",
			NextEvent:         strPtr("Yoga Class - 2 PM"),
			ImageURL:          strPtr("https://images.unsplash.com/photo-1441974231531-c6227db76b6e?auto=format&fit=crop&w=800&h=200"),
			CreatedAt:         now,
		},
		{
			ID:                2,
			Name:              "Green Valley Park",
			Location:          "Westside",
			Description:       strPtr("Peaceful park with mature trees and open grass areas"),
			Status:            "active",
			CurrentUsage:      "medium",
			MaintenanceStatus: "good",
			NextEvent:         strPtr("Music Festival - Sat"),
			ImageURL:          strPtr("https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?auto=format&fit=crop&w=800&h=200"),
			CreatedAt:         now,
		},
		{
			ID:                3,
			Name:              "Riverside Park",
			Location:          "Eastside",
			Description:       strPtr("Park with river views and recreational facilities"),
			Status:            "active",
			CurrentUsage:      "low",
			MaintenanceStatus: "urgent",
			NextEvent:         strPtr("Cleanup Day - Sun"),
			ImageURL:          strPtr("https://images.unsplash.com/photo-1506905925346-21bda4d32df4?auto=format&fit=crop&w=800&h=200"),
			CreatedAt:         now,
		},
	} {
		parks.put(p)
	}

	for _, e := range []models.Event{
		{
			ID:          1,
			ParkID:      1,
			Name:        "Morning Yoga",
			Description: strPtr("Start your day with energizing yoga session"),
			Date:        "Today",
			Time:        "8:00 AM - 9:00 AM",
			Signups:     12,
			MaxSignups:  intPtr(25),
			Category:    "fitness",
			CreatedAt:   now,
		},
		{
			ID:          2,
			ParkID:      2,
			Name:        "Music Festival",
			Description: strPtr("Local musicians performing throughout the day"),
			Date:        "Saturday",
			Time:        "2:00 PM - 8:00 PM",
			Signups:     45,
			MaxSignups:  intPtr(100),
			Category:    "entertainment",
			CreatedAt:   now,
		},
		{
			ID:          3,
			ParkID:      3,
			Name:        "Community Cleanup",
			Description: strPtr("Help keep our parks clean and beautiful"),
			Date:        "Sunday",
			Time:        "9:00 AM - 12:00 PM",
			Signups:     28,
			MaxSignups:  intPtr(50),
			Category:    "community",
			CreatedAt:   now,
		},
	} {
		events.put(e)
	}

	for _, f := range []models.Feedback{
		{
			ID:       1,
			ParkID:   1,
			Username: "Sarah Johnson",
			Message: "The new playground equipment is fantastic! My kids love the updated swings and slides. " +
				"Would love to see more benches for parents to sit and supervise.",
			Likes:     8,
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:       2,
			ParkID:   3,
			Username: "Mike Chen",
			Message: "The maintenance crew did an excellent job cleaning up after the storm. " +
				"The walking paths are clear and safe again. Thank you for the quick response!",
			Likes:     15,
			CreatedAt: now.Add(-5 * time.Hour),
		},
	} {
		feedback.put(f)
	}
}

func strPtr(s string) *string { return &s }

func intPtr(n int) *int { return &n }
