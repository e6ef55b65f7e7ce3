package gift

import (
	"context"
	"errors"
	"io"
	"log"
	"math"
	"strings"

	"github.com/google/uuid"

	"giftstore/internal/domain"
	giftrepo "giftstore/internal/repository/gift"
	raterepo "giftstore/internal/repository/rate"
)

var (
	// ErrRecipientRequired is returned when placing a gift without a
	// recipient username.
	ErrRecipientRequired = errors.New("recipient required")
	// ErrRateNotConfigured is returned when no exchange rate exists yet.
	ErrRateNotConfigured = errors.New("vbucks rate not configured")
	// ErrUnknownStatus is returned for a status outside the known set.
	ErrUnknownStatus = errors.New("unknown gift status")
	// ErrStatusFinal is returned when changing an already resolved gift.
	ErrStatusFinal = errors.New("gift status already resolved")
)

// Publisher emits fulfillment events for newly placed gifts.
type Publisher interface {
	PublishGiftCreated(ctx context.Context, gift domain.Gift) error
}

// Service places gift orders and manages their fulfillment status.
type Service struct {
	repo      giftrepo.Repository
	rates     raterepo.Repository
	publisher Publisher
	logger    *log.Logger
}

// New creates a Service. publisher may be nil, in which case no
// fulfillment events are emitted.
func New(repo giftrepo.Repository, rates raterepo.Repository, publisher Publisher, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, rates: rates, publisher: publisher, logger: logger}
}

// PlaceGift creates a pending gift order for the cart item, pricing it in
// USD at the rate configured when the order is placed. The fulfillment
// event is best-effort: a publish failure is logged, never rolled back.
func (s *Service) PlaceGift(ctx context.Context, recipient string, item domain.CartItem, userID *string) (*domain.Gift, error) {
	recipient = strings.TrimSpace(recipient)
	if recipient == "" {
		return nil, ErrRecipientRequired
	}

	rate, err := s.rates.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrRateNotConfigured
		}
		return nil, err
	}

	gift := domain.Gift{
		ID:            uuid.NewString(),
		UserID:        userID,
		Recipient:     recipient,
		ItemID:        item.ItemID,
		ItemName:      item.DisplayName,
		Image:         item.Image,
		PriceVBucks:   item.Price,
		PriceUSDCents: usdCents(item.Price, rate.Rate),
		Status:        domain.GiftStatusPending,
	}

	created, err := s.repo.Create(ctx, gift)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishGiftCreated(ctx, *created); err != nil {
			s.logger.Printf("gift service: publish gift id=%s error=%v", created.ID, err)
		}
	}
	return created, nil
}

// List returns all gift orders for the admin back-office.
func (s *Service) List(ctx context.Context) ([]domain.Gift, error) {
	return s.repo.List(ctx)
}

// ListByUser returns the gift orders placed by one account.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]domain.Gift, error) {
	return s.repo.ListByUser(ctx, userID)
}

// SetStatus resolves a pending gift as delivered or failed. Resolved
// gifts cannot change again.
func (s *Service) SetStatus(ctx context.Context, id, status string) error {
	if !domain.ValidGiftStatus(status) {
		return ErrUnknownStatus
	}
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if current.Status != domain.GiftStatusPending && current.Status != status {
		return ErrStatusFinal
	}
	return s.repo.SetStatus(ctx, id, status)
}

func usdCents(priceVBucks int64, rate float64) int64 {
	return int64(math.Round(float64(priceVBucks) * rate * 100))
}
