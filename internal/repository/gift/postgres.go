package gift

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"giftstore/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

const giftColumns = `id::text, user_id::text, recipient, item_id, item_name, COALESCE(image, ''), price_vbucks, price_usd_cents, status, created_at`

func (r *postgresRepo) Create(ctx context.Context, gift domain.Gift) (*domain.Gift, error) {
	const q = `
INSERT INTO gifts (id, user_id, recipient, item_id, item_name, image, price_vbucks, price_usd_cents, status)
VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
RETURNING created_at
`
	out := gift
	err := r.pool.QueryRow(ctx, q,
		gift.ID, gift.UserID, gift.Recipient, gift.ItemID, gift.ItemName, gift.Image,
		gift.PriceVBucks, gift.PriceUSDCents, gift.Status,
	).Scan(&out.CreatedAt)
	if err != nil {
		r.logger.Printf("gift repo: create recipient=%s item=%s error=%v", gift.Recipient, gift.ItemID, err)
		return nil, err
	}
	r.logger.Printf("gift repo: created id=%s recipient=%s item=%s", out.ID, out.Recipient, out.ItemID)
	return &out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Gift, error) {
	const q = `SELECT ` + giftColumns + ` FROM gifts WHERE id = $1`
	var g domain.Gift
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&g.ID, &g.UserID, &g.Recipient, &g.ItemID, &g.ItemName, &g.Image,
		&g.PriceVBucks, &g.PriceUSDCents, &g.Status, &g.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("gift repo: get id=%s error=%v", id, err)
		return nil, err
	}
	return &g, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Gift, error) {
	const q = `SELECT ` + giftColumns + ` FROM gifts ORDER BY created_at DESC`
	return r.queryList(ctx, q)
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Gift, error) {
	const q = `SELECT ` + giftColumns + ` FROM gifts WHERE user_id = $1 ORDER BY created_at DESC`
	return r.queryList(ctx, q, userID)
}

func (r *postgresRepo) queryList(ctx context.Context, q string, args ...any) ([]domain.Gift, error) {
	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		r.logger.Printf("gift repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Gift
	for rows.Next() {
		var g domain.Gift
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Recipient, &g.ItemID, &g.ItemName, &g.Image,
			&g.PriceVBucks, &g.PriceUSDCents, &g.Status, &g.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("gift repo: list rows error=%v", err)
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) SetStatus(ctx context.Context, id, status string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE gifts SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		r.logger.Printf("gift repo: set status id=%s error=%v", id, err)
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Printf("gift repo: set status id=%s status=%s", id, status)
	return nil
}
