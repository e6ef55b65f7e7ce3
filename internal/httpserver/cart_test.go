package httpserver

import (
	"encoding/json"
	"net/http"
	"testing"

	"giftstore/internal/domain"
)

func TestCartEndpoints_Anonymous(t *testing.T) {
	store := newMemCartStore()
	router := newTestRouter(Deps{Carts: store})
	headers := map[string]string{"X-Session-Id": "sess-1"}

	rec := doRequest(router, http.MethodGet, "/api/cart", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without session header, got %d", rec.Code)
	}

	rec = doRequest(router, http.MethodGet, "/api/cart", "", headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for empty cart, got %d", rec.Code)
	}
	var body struct {
		Item *domain.CartItem `json:"item"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Item != nil {
		t.Fatalf("expected null item, got %+v", body.Item)
	}

	rec = doRequest(router, http.MethodPut, "/api/cart",
		`{"itemId":"skin-1","displayName":"Renegade Raider","price":1200}`, headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := store.items["anon:sess-1"]; got.ItemID != "skin-1" {
		t.Fatalf("expected item persisted under anon key, got %+v", got)
	}

	// Setting another item replaces the previous one.
	rec = doRequest(router, http.MethodPut, "/api/cart",
		`{"itemId":"emote-1","displayName":"Floss","price":500}`, headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := store.items["anon:sess-1"]; got.ItemID != "emote-1" {
		t.Fatalf("expected replacement, got %+v", got)
	}

	rec = doRequest(router, http.MethodDelete, "/api/cart", "", headers)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if _, ok := store.items["anon:sess-1"]; ok {
		t.Fatal("expected cart cleared")
	}
}

func TestCartPut_Validation(t *testing.T) {
	router := newTestRouter(Deps{})
	headers := map[string]string{"X-Session-Id": "sess-1"}

	cases := map[string]string{
		"missing itemId": `{"displayName":"Floss","price":500}`,
		"missing name":   `{"itemId":"emote-1","price":500}`,
		"zero price":     `{"itemId":"emote-1","displayName":"Floss","price":0}`,
	}
	for name, body := range cases {
		rec := doRequest(router, http.MethodPut, "/api/cart", body, headers)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestCartKeyedByAccountWhenAuthenticated(t *testing.T) {
	store := newMemCartStore()
	users := &stubUserService{byToken: map[string]*domain.User{
		"tok-1": {ID: "u1"},
	}}
	router := newTestRouter(Deps{Carts: store, UserSvc: users})

	rec := doRequest(router, http.MethodPut, "/api/cart",
		`{"itemId":"skin-1","displayName":"Renegade Raider","price":1200}`,
		map[string]string{"Authorization": "Bearer tok-1", "X-Session-Id": "sess-1"})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if _, ok := store.items["user:u1"]; !ok {
		t.Fatal("expected cart keyed by account id")
	}
	if _, ok := store.items["anon:sess-1"]; ok {
		t.Fatal("account cart must not use the anonymous namespace")
	}
}
