package rate

import (
	"context"
	"errors"

	"giftstore/internal/domain"
	raterepo "giftstore/internal/repository/rate"
)

// ErrInvalidRate is returned for zero or negative rates.
var ErrInvalidRate = errors.New("rate must be positive")

// Service exposes the configured USD-per-V-Buck exchange rate.
type Service struct {
	repo raterepo.Repository
}

func New(repo raterepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (*domain.VBucksRate, error) {
	return s.repo.Get(ctx)
}

func (s *Service) Update(ctx context.Context, rate float64) (*domain.VBucksRate, error) {
	if rate <= 0 {
		return nil, ErrInvalidRate
	}
	return s.repo.Update(ctx, rate)
}
