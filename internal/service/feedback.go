package service

import (
	"context"
	"errors"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

var ErrFeedbackNotFound = errors.New("feedback not found")

type FeedbackService struct {
	feedbackRepo repository.FeedbackRepo
}

func NewFeedbackService(feedbackRepo repository.FeedbackRepo) *FeedbackService {
	return &FeedbackService{feedbackRepo: feedbackRepo}
}

func (s *FeedbackService) List(ctx context.Context) ([]models.Feedback, error) {
	return s.feedbackRepo.List(ctx), nil
}

func (s *FeedbackService) ListByPark(ctx context.Context, parkID int) ([]models.Feedback, error) {
	return s.feedbackRepo.ListByPark(ctx, parkID), nil
}

func (s *FeedbackService) Create(ctx context.Context, in models.InsertFeedback) (models.Feedback, error) {
	return s.feedbackRepo.Create(ctx, in), nil
}

func (s *FeedbackService) Like(ctx context.Context, id int) (models.Feedback, error) {
	f, ok := s.feedbackRepo.IncrementLikes(ctx, id)
	if !ok {
		return models.Feedback{}, ErrFeedbackNotFound
	}
	return f, nil
}
