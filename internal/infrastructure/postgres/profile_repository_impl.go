package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	p := &entity.Profile{}
	var balance string

	row := pick(ctx, r.pool).QueryRow(ctx, `
		SELECT id, type, first_name, last_name, COALESCE(profession, ''), balance::text, avatar_url, email, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`, id)

	if err := row.Scan(&p.ID, &p.Type, &p.FirstName, &p.LastName, &p.Profession,
		&balance, &p.AvatarURL, &p.Email, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	b, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, err
	}
	p.Balance = b
	return p, nil
}

// DebitIfSufficient is the guarded conditional decrement: the balance
// predicate is evaluated at write time inside the row update, so a
// concurrent settlement that drained the balance between an earlier read
// and this write makes the statement affect zero rows instead of driving
// the balance negative.
func (r *ProfileRepository) DebitIfSufficient(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	tag, err := pick(ctx, r.pool).Exec(ctx, `
		UPDATE profiles
		SET balance = balance - $2, updated_at = now()
		WHERE id = $1 AND balance >= $2
	`, id, amount.StringFixed(2))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// Credit is guarded only by row existence; zero rows affected signals the
// profile vanished mid-transaction.
func (r *ProfileRepository) Credit(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	tag, err := pick(ctx, r.pool).Exec(ctx, `
		UPDATE profiles
		SET balance = balance + $2, updated_at = now()
		WHERE id = $1
	`, id, amount.StringFixed(2))
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (r *ProfileRepository) UpdateAvatarURL(ctx context.Context, id, url string) error {
	tag, err := pick(ctx, r.pool).Exec(ctx, `
		UPDATE profiles
		SET avatar_url = $2, updated_at = now()
		WHERE id = $1
	`, id, url)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
