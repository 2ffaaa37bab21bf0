package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

type ContractRepository struct {
	pool *pgxpool.Pool
}

func NewContractRepository(pool *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{pool: pool}
}

func (r *ContractRepository) GetForProfile(ctx context.Context, contractID, profileID string) (*entity.Contract, error) {
	c := &entity.Contract{}

	row := pick(ctx, r.pool).QueryRow(ctx, `
		SELECT id, client_id, contractor_id, terms, status, created_at, updated_at
		FROM contracts
		WHERE id = $1 AND (client_id = $2 OR contractor_id = $2)
	`, contractID, profileID)

	if err := row.Scan(&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &c.Status,
		&c.CreatedAt, &c.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *ContractRepository) ListForProfile(ctx context.Context, profileID string) ([]*entity.Contract, error) {
	rows, err := pick(ctx, r.pool).Query(ctx, `
		SELECT id, client_id, contractor_id, terms, status, created_at, updated_at
		FROM contracts
		WHERE (client_id = $1 OR contractor_id = $1) AND status <> 'terminated'
		ORDER BY created_at
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Contract
	for rows.Next() {
		c := &entity.Contract{}
		if err := rows.Scan(&c.ID, &c.ClientID, &c.ContractorID, &c.Terms, &c.Status,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

var _ repository.ContractRepository = (*ContractRepository)(nil)
