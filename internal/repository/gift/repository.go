package gift

import (
	"context"

	"giftstore/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, gift domain.Gift) (*domain.Gift, error)
	GetByID(ctx context.Context, id string) (*domain.Gift, error)
	List(ctx context.Context) ([]domain.Gift, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Gift, error)
	SetStatus(ctx context.Context, id, status string) error
}
