// Package checkout models the storefront's three-step gift checkout flow.
// The user-info step is skipped entirely when an authenticated account
// already supplies the recipient username.
package checkout

import (
	"context"
	"errors"
	"strings"

	"giftstore/internal/domain"
)

// Step identifies a checkout state.
type Step int

const (
	StepSummary Step = iota + 1
	StepUserInfo
	StepPayment
)

func (s Step) String() string {
	switch s {
	case StepSummary:
		return "summary"
	case StepUserInfo:
		return "user-info"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

var (
	// ErrEmptyCart is returned when checkout is started without a cart item.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrUsernameRequired is the recoverable validation error for a blank
	// recipient username. The session stays at the user-info step.
	ErrUsernameRequired = errors.New("username required")
	// ErrInvalidTransition is returned for an action not defined at the
	// session's current step.
	ErrInvalidTransition = errors.New("invalid transition")
)

// GiftPlacer creates the gift order when the user pays. Placement itself
// (pricing, persistence, fulfillment) belongs to the collaborator.
type GiftPlacer interface {
	PlaceGift(ctx context.Context, recipient string, item domain.CartItem, userID *string) (*domain.Gift, error)
}

// Session is a single checkout in progress. It is owned by one request
// flow and is not safe for concurrent use.
type Session struct {
	step          Step
	item          domain.CartItem
	username      string
	authenticated bool
	userID        *string
}

// Begin starts a checkout session for the given cart item. A nil item
// means the cart is empty and no session is created. When user is non-nil
// the session is pre-authenticated and the username is taken from the
// account profile.
func Begin(item *domain.CartItem, user *domain.User) (*Session, error) {
	if item == nil {
		return nil, ErrEmptyCart
	}
	s := &Session{step: StepSummary, item: *item}
	if user != nil {
		s.authenticated = true
		s.username = user.Username
		id := user.ID
		s.userID = &id
	}
	return s, nil
}

// Step returns the current step.
func (s *Session) Step() Step { return s.step }

// Username returns the recipient username collected so far.
func (s *Session) Username() string { return s.username }

// Item returns the cart item being checked out.
func (s *Session) Item() domain.CartItem { return s.item }

// Authenticated reports whether the session was started with a logged-in
// account, in which case the user-info step is skipped.
func (s *Session) Authenticated() bool { return s.authenticated }

// Continue advances past the summary step: authenticated sessions go
// straight to payment, anonymous ones to the user-info step.
func (s *Session) Continue() error {
	if s.step != StepSummary {
		return ErrInvalidTransition
	}
	if s.authenticated {
		s.step = StepPayment
	} else {
		s.step = StepUserInfo
	}
	return nil
}

// SubmitUsername stores the trimmed recipient username and advances to
// payment. A blank username keeps the session at the user-info step and
// returns ErrUsernameRequired.
func (s *Session) SubmitUsername(username string) error {
	if s.step != StepUserInfo {
		return ErrInvalidTransition
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return ErrUsernameRequired
	}
	s.username = username
	s.step = StepPayment
	return nil
}

// Back retraces the forward path one step, skipping the user-info step for
// sessions that never visited it. Going back from the summary step is not
// a session transition (control returns to the shop).
func (s *Session) Back() error {
	switch s.step {
	case StepUserInfo:
		s.step = StepSummary
	case StepPayment:
		if s.authenticated {
			s.step = StepSummary
		} else {
			s.step = StepUserInfo
		}
	default:
		return ErrInvalidTransition
	}
	return nil
}

// Pay places the gift order through the collaborator. On failure the
// session stays at the payment step so the user can retry.
func (s *Session) Pay(ctx context.Context, placer GiftPlacer) (*domain.Gift, error) {
	if s.step != StepPayment {
		return nil, ErrInvalidTransition
	}
	gift, err := placer.PlaceGift(ctx, s.username, s.item, s.userID)
	if err != nil {
		return nil, err
	}
	return gift, nil
}
