package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"giftstore/internal/domain"
	giftsvc "giftstore/internal/service/gift"
)

func TestCheckout_AnonymousHappyPath(t *testing.T) {
	store := newMemCartStore()
	store.items["anon:sess-1"] = domain.CartItem{ItemID: "skin-1", DisplayName: "Renegade Raider", Price: 1200}
	gifts := &stubGiftService{}
	router := newTestRouter(Deps{Carts: store, GiftSvc: gifts})

	rec := doRequest(router, http.MethodPost, "/api/checkout",
		`{"username":"Ninja"}`, map[string]string{"X-Session-Id": "sess-1"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Gift domain.Gift `json:"gift"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Gift.Recipient != "Ninja" || body.Gift.ItemID != "skin-1" {
		t.Fatalf("unexpected gift: %+v", body.Gift)
	}
	if body.Gift.UserID != nil {
		t.Fatalf("anonymous order must not carry an account id, got %v", *body.Gift.UserID)
	}
	if _, ok := store.items["anon:sess-1"]; ok {
		t.Fatal("expected cart cleared after successful checkout")
	}
}

func TestCheckout_AnonymousWithoutUsername(t *testing.T) {
	store := newMemCartStore()
	store.items["anon:sess-1"] = domain.CartItem{ItemID: "skin-1", DisplayName: "Renegade Raider", Price: 1200}
	router := newTestRouter(Deps{Carts: store})

	rec := doRequest(router, http.MethodPost, "/api/checkout", "", map[string]string{"X-Session-Id": "sess-1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if _, ok := store.items["anon:sess-1"]; !ok {
		t.Fatal("cart must survive a failed checkout")
	}
}

func TestCheckout_AuthenticatedSkipsUserInfo(t *testing.T) {
	store := newMemCartStore()
	store.items["user:u1"] = domain.CartItem{ItemID: "skin-1", DisplayName: "Renegade Raider", Price: 1200}
	users := &stubUserService{byToken: map[string]*domain.User{
		"tok-1": {ID: "u1", Username: "ninja"},
	}}
	gifts := &stubGiftService{}
	router := newTestRouter(Deps{Carts: store, UserSvc: users, GiftSvc: gifts})

	// No body at all: the account username supplies the recipient.
	rec := doRequest(router, http.MethodPost, "/api/checkout", "", map[string]string{
		"Authorization": "Bearer tok-1",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Gift domain.Gift `json:"gift"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Gift.Recipient != "ninja" {
		t.Fatalf("expected account username as recipient, got %q", body.Gift.Recipient)
	}
	if body.Gift.UserID == nil || *body.Gift.UserID != "u1" {
		t.Fatalf("expected order bound to account, got %v", body.Gift.UserID)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	router := newTestRouter(Deps{})

	rec := doRequest(router, http.MethodPost, "/api/checkout",
		`{"username":"Ninja"}`, map[string]string{"X-Session-Id": "sess-1"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for empty cart, got %d", rec.Code)
	}
}

func TestCheckout_MissingSession(t *testing.T) {
	router := newTestRouter(Deps{})
	rec := doRequest(router, http.MethodPost, "/api/checkout", `{"username":"Ninja"}`, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without a session, got %d", rec.Code)
	}
}

func TestCheckout_PaymentFailures(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
	}{
		"rate not configured": {giftsvc.ErrRateNotConfigured, http.StatusServiceUnavailable},
		"placement error":     {domain.ErrNotFound, http.StatusInternalServerError},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			store := newMemCartStore()
			store.items["anon:sess-1"] = domain.CartItem{ItemID: "skin-1", DisplayName: "Renegade Raider", Price: 1200}
			gifts := &stubGiftService{placeErr: tc.err}
			router := newTestRouter(Deps{Carts: store, GiftSvc: gifts})

			rec := doRequest(router, http.MethodPost, "/api/checkout",
				`{"username":"Ninja"}`, map[string]string{"X-Session-Id": "sess-1"})
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if _, ok := store.items["anon:sess-1"]; !ok {
				t.Fatal("cart must survive a failed payment")
			}
		})
	}
}
