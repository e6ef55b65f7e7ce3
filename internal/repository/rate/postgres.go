package rate

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftstore/internal/domain"
)

// The store configures exactly one current rate, kept as a single row.
const rateRowID = 1

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Get(ctx context.Context) (*domain.VBucksRate, error) {
	const q = `SELECT rate, updated_at FROM vbucks_rate WHERE id = $1`
	var out domain.VBucksRate
	if err := r.pool.QueryRow(ctx, q, rateRowID).Scan(&out.Rate, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) Update(ctx context.Context, rate float64) (*domain.VBucksRate, error) {
	const q = `
INSERT INTO vbucks_rate (id, rate, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (id) DO UPDATE SET rate = EXCLUDED.rate, updated_at = now()
RETURNING rate, updated_at
`
	var out domain.VBucksRate
	if err := r.pool.QueryRow(ctx, q, rateRowID, rate).Scan(&out.Rate, &out.UpdatedAt); err != nil {
		return nil, err
	}
	return &out, nil
}
