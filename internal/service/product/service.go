package product

import (
	"context"
	"errors"
	"strings"

	"giftstore/internal/domain"
	productrepo "giftstore/internal/repository/product"
)

// Service manages the admin-maintained product catalog.
type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Input carries the fields accepted when creating or updating a product.
type Input struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
	ImageURL    string `json:"imageUrl"`
	Amount      int64  `json:"amount"`
	Kind        string `json:"kind"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return errors.New("title required")
	}
	if in.PriceCents <= 0 {
		return errors.New("price must be positive")
	}
	switch in.Kind {
	case domain.ProductKindVBucks, domain.ProductKindRobux, domain.ProductKindItem:
	default:
		return errors.New("unknown product kind")
	}
	if in.Kind != domain.ProductKindItem && in.Amount <= 0 {
		return errors.New("currency amount must be positive")
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, domain.Product{
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Amount:      in.Amount,
		Kind:        in.Kind,
	})
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, errors.New("product id required")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, domain.Product{
		ID:          id,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		PriceCents:  in.PriceCents,
		ImageURL:    strings.TrimSpace(in.ImageURL),
		Amount:      in.Amount,
		Kind:        in.Kind,
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return errors.New("product id required")
	}
	return s.repo.Delete(ctx, id)
}
