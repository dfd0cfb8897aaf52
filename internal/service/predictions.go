package service

import (
	"context"
	"time"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

type PredictionService struct {
	predictionRepo repository.PredictionRepo
	now            func() time.Time
}

func NewPredictionService(predictionRepo repository.PredictionRepo) *PredictionService {
	return &PredictionService{predictionRepo: predictionRepo, now: time.Now}
}

// ForPark returns the stored forecast for a park. On first access there is
// nothing stored yet, so the daily forecast is generated and persisted.
func (s *PredictionService) ForPark(ctx context.Context, parkID int) ([]models.UsagePrediction, error) {
	stored := s.predictionRepo.ListByPark(ctx, parkID)
	if len(stored) > 0 {
		return stored, nil
	}

	generated := make([]models.UsagePrediction, 0, len(forecastSlots))
	for _, slot := range DailyForecast(parkID, s.now()) {
		confidence := slot.Confidence
		generated = append(generated, s.predictionRepo.Create(ctx, models.InsertUsagePrediction{
			ParkID:         parkID,
			TimeSlot:       slot.TimeSlot,
			PredictedUsage: slot.UsageLevel,
			Confidence:     &confidence,
		}))
	}
	return generated, nil
}

// Evaluate runs the predictor once without storing anything.
func (s *PredictionService) Evaluate(in PredictionInput) (PredictionOutput, error) {
	if in.TimeOfDay < 0 || in.TimeOfDay > 23 || in.DayOfWeek < 0 || in.DayOfWeek > 6 {
		return PredictionOutput{}, ErrInvalidForecastInput
	}
	return PredictUsage(in), nil
}
