package user

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"giftstore/internal/domain"
	tokenrepo "giftstore/internal/repository/token"
)

type stubUserRepo struct {
	created      *domain.User
	createErr    error
	byEmail      *domain.User
	byEmailErr   error
	byID         *domain.User
	byIDErr      error
	lastCreated  domain.User
	lastAdminID  string
	lastAdminVal bool
	setAdminErr  error
}

func (s *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	s.lastCreated = u
	return s.created, s.createErr
}

func (s *stubUserRepo) GetByID(_ context.Context, _ string) (*domain.User, error) {
	return s.byID, s.byIDErr
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return s.byEmail, s.byEmailErr
}

func (s *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

func (s *stubUserRepo) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	s.lastAdminID = id
	s.lastAdminVal = isAdmin
	return s.setAdminErr
}

type memTokenRepo struct {
	tokens map[string]tokenrepo.Token
}

func newMemTokenRepo() *memTokenRepo {
	return &memTokenRepo{tokens: map[string]tokenrepo.Token{}}
}

func (m *memTokenRepo) Create(_ context.Context, t tokenrepo.Token) error {
	if _, ok := m.tokens[t.Token]; ok {
		return domain.ErrAlreadyExists
	}
	m.tokens[t.Token] = t
	return nil
}

func (m *memTokenRepo) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := m.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memTokenRepo) Delete(_ context.Context, token string) error {
	if _, ok := m.tokens[token]; !ok {
		return domain.ErrNotFound
	}
	delete(m.tokens, token)
	return nil
}

func TestRegister_Validation(t *testing.T) {
	svc := New(&stubUserRepo{}, newMemTokenRepo())
	cases := map[string]RegisterInput{
		"blank username": {Username: "  ", Email: "a@b.c", Password: "Abcdefg1"},
		"bad email":      {Username: "ninja", Email: "not-an-email", Password: "Abcdefg1"},
		"short password": {Username: "ninja", Email: "a@b.c", Password: "Ab1"},
		"weak password":  {Username: "ninja", Email: "a@b.c", Password: "abcdefgh"},
	}
	for name, in := range cases {
		if _, err := svc.Register(context.Background(), in); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestRegister_HashesPasswordAndNormalizesEmail(t *testing.T) {
	repo := &stubUserRepo{created: &domain.User{ID: "u1"}}
	svc := New(repo, newMemTokenRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "Ninja",
		Email:    "  Ninja@Example.COM ",
		Password: "Abcdefg1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.lastCreated.Email != "ninja@example.com" {
		t.Fatalf("expected normalized email, got %q", repo.lastCreated.Email)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.lastCreated.PasswordHash), []byte("Abcdefg1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestRegister_EmailConflict(t *testing.T) {
	repo := &stubUserRepo{createErr: domain.ErrAlreadyExists}
	svc := New(repo, newMemTokenRepo())

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "ninja",
		Email:    "a@b.c",
		Password: "Abcdefg1",
	})
	if err != ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc := New(&stubUserRepo{byEmailErr: domain.ErrNotFound}, newMemTokenRepo())
	if _, _, err := svc.Login(context.Background(), "a@b.c", "whatever"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("Correct1pw"), bcrypt.MinCost)
	svc = New(&stubUserRepo{byEmail: &domain.User{ID: "u1", PasswordHash: string(hash)}}, newMemTokenRepo())
	if _, _, err := svc.Login(context.Background(), "a@b.c", "Wrong1pw"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestLoginAndLookupByToken(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("Correct1pw"), bcrypt.MinCost)
	u := &domain.User{ID: "u1", Username: "ninja", PasswordHash: string(hash)}
	tokens := newMemTokenRepo()
	svc := New(&stubUserRepo{byEmail: u, byID: u}, tokens)

	got, access, err := svc.Login(context.Background(), "a@b.c", "Correct1pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "u1" || access == "" {
		t.Fatalf("unexpected login result user=%+v token=%q", got, access)
	}

	resolved, err := svc.LookupByToken(context.Background(), access)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolved.ID != "u1" {
		t.Fatalf("unexpected user: %+v", resolved)
	}
}

func TestLookupByToken_ExpiredTokenRejected(t *testing.T) {
	tokens := newMemTokenRepo()
	tokens.tokens["stale"] = tokenrepo.Token{
		Token:     "stale",
		UserID:    "u1",
		Kind:      "access",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := New(&stubUserRepo{byID: &domain.User{ID: "u1"}}, tokens)

	if _, err := svc.LookupByToken(context.Background(), "stale"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
	if _, ok := tokens.tokens["stale"]; ok {
		t.Fatal("expected expired token to be deleted")
	}
}

func TestSetAdmin_RequiresID(t *testing.T) {
	svc := New(&stubUserRepo{}, newMemTokenRepo())
	if err := svc.SetAdmin(context.Background(), "  ", true); err == nil {
		t.Fatal("expected error for blank id")
	}
}
