package rate

import (
	"context"

	"giftstore/internal/domain"
)

type Repository interface {
	Get(ctx context.Context) (*domain.VBucksRate, error)
	Update(ctx context.Context, rate float64) (*domain.VBucksRate, error)
}
