package service

import (
	"context"
	"errors"

	"github.com/Kanestar/greener/internal/models"
	"github.com/Kanestar/greener/internal/repository"
)

var ErrParkNotFound = errors.New("park not found")

type ParkService struct {
	parkRepo repository.ParkRepo
}

func NewParkService(parkRepo repository.ParkRepo) *ParkService {
	return &ParkService{parkRepo: parkRepo}
}

func (s *ParkService) List(ctx context.Context) ([]models.Park, error) {
	return s.parkRepo.List(ctx), nil
}

func (s *ParkService) Get(ctx context.Context, id int) (models.Park, error) {
	p, ok := s.parkRepo.Get(ctx, id)
	if !ok {
		return models.Park{}, ErrParkNotFound
	}
	return p, nil
}

func (s *ParkService) Create(ctx context.Context, in models.InsertPark) (models.Park, error) {
	return s.parkRepo.Create(ctx, in), nil
}

// Update merges the patch into an existing park (per-field last write wins).
func (s *ParkService) Update(ctx context.Context, id int, patch models.ParkPatch) (models.Park, error) {
	p, ok := s.parkRepo.Update(ctx, id, patch)
	if !ok {
		return models.Park{}, ErrParkNotFound
	}
	return p, nil
}
