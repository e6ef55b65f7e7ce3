package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Title       string
	Description string
	PriceCents  int64
	Amount      int64
	Kind        string
}

// Apply inserts basic seed data for manual testing. It is idempotent via
// ON CONFLICT. rate is the initial USD-per-V-Buck exchange rate; an
// already configured rate is left alone.
func Apply(ctx context.Context, pool *pgxpool.Pool, rate float64) error {
	if err := ensureAdmin(ctx, pool); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}
	if err := ensureRate(ctx, pool, rate); err != nil {
		return fmt.Errorf("ensure vbucks rate: %w", err)
	}

	products := []productSeed{
		{
			Title:       "1000 V-Bucks",
			Description: "Fortnite currency pack",
			PriceCents:  899,
			Amount:      1000,
			Kind:        "vbucks",
		},
		{
			Title:       "2800 V-Bucks",
			Description: "Fortnite currency pack",
			PriceCents:  2249,
			Amount:      2800,
			Kind:        "vbucks",
		},
		{
			Title:       "800 Robux",
			Description: "Roblox currency pack",
			PriceCents:  999,
			Amount:      800,
			Kind:        "robux",
		},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Title, err)
		}
	}

	return nil
}

func ensureAdmin(ctx context.Context, pool *pgxpool.Pool) error {
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123"
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO users (username, email, password_hash, is_admin)
VALUES ('admin', 'admin@giftstore.local', $1, true)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, string(hashed))
	return err
}

func ensureRate(ctx context.Context, pool *pgxpool.Pool, rate float64) error {
	const q = `
INSERT INTO vbucks_rate (id, rate)
VALUES (1, $1)
ON CONFLICT (id) DO NOTHING
`
	_, err := pool.Exec(ctx, q, rate)
	return err
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	const q = `
INSERT INTO products (title, description, price_cents, amount, kind)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (title) DO UPDATE
SET description = EXCLUDED.description,
    price_cents = EXCLUDED.price_cents,
    amount = EXCLUDED.amount,
    kind = EXCLUDED.kind
`
	_, err := pool.Exec(ctx, q, p.Title, p.Description, p.PriceCents, p.Amount, p.Kind)
	return err
}
