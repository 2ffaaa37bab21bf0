package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

type JobRepository struct {
	pool *pgxpool.Pool
}

func NewJobRepository(pool *pgxpool.Pool) *JobRepository {
	return &JobRepository{pool: pool}
}

// FindPayableForUpdate locks the job row (FOR UPDATE OF j) so a concurrent
// settlement of the same job waits here, re-evaluates the unpaid predicate
// against the committed row, and comes back empty.
func (r *JobRepository) FindPayableForUpdate(ctx context.Context, jobID, clientID string) (*entity.Job, error) {
	j := &entity.Job{}
	var price string

	row := pick(ctx, r.pool).QueryRow(ctx, `
		SELECT j.id, j.contract_id, j.description, j.price::text, j.paid, j.payment_date,
		       j.created_at, j.updated_at, c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.id = $1
		  AND j.paid = false
		  AND c.status = 'in_progress'
		  AND c.client_id = $2
		FOR UPDATE OF j
	`, jobID, clientID)

	if err := row.Scan(&j.ID, &j.ContractID, &j.Description, &price, &j.Paid, &j.PaymentDate,
		&j.CreatedAt, &j.UpdatedAt, &j.ContractorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	j.Price = p
	return j, nil
}

func (r *JobRepository) ListUnpaidForClient(ctx context.Context, clientID string) ([]*entity.Job, error) {
	rows, err := pick(ctx, r.pool).Query(ctx, `
		SELECT j.id, j.contract_id, j.description, j.price::text, j.paid, j.payment_date,
		       j.created_at, j.updated_at, c.contractor_id
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = false
		  AND c.status = 'in_progress'
		  AND c.client_id = $1
		ORDER BY j.created_at
	`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Job
	for rows.Next() {
		j := &entity.Job{}
		var price string
		if err := rows.Scan(&j.ID, &j.ContractID, &j.Description, &price, &j.Paid, &j.PaymentDate,
			&j.CreatedAt, &j.UpdatedAt, &j.ContractorID); err != nil {
			return nil, err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		j.Price = p
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *JobRepository) SumUnpaidForClient(ctx context.Context, clientID string) (decimal.Decimal, error) {
	var sum string

	row := pick(ctx, r.pool).QueryRow(ctx, `
		SELECT COALESCE(SUM(j.price), 0)::text
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		WHERE j.paid = false
		  AND c.status = 'in_progress'
		  AND c.client_id = $1
	`, clientID)

	if err := row.Scan(&sum); err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromString(sum)
}

// MarkPaid re-checks "not already paid" in the update predicate; zero rows
// affected means another settlement won the race.
func (r *JobRepository) MarkPaid(ctx context.Context, jobID string, at time.Time) (bool, error) {
	tag, err := pick(ctx, r.pool).Exec(ctx, `
		UPDATE jobs
		SET paid = true, payment_date = $2, updated_at = now()
		WHERE id = $1 AND paid = false
	`, jobID, at)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// ListPaidBetween is the aggregation snapshot: one statement, so the sums
// folded from it reflect a single consistent read. Bounds are inclusive.
func (r *JobRepository) ListPaidBetween(ctx context.Context, from, to *time.Time) ([]repository.PaidJobRow, error) {
	rows, err := pick(ctx, r.pool).Query(ctx, `
		SELECT j.id, j.price::text, j.payment_date,
		       ct.profession, cl.id, cl.first_name || ' ' || cl.last_name,
		       ct.id, ct.first_name || ' ' || ct.last_name
		FROM jobs j
		JOIN contracts c ON c.id = j.contract_id
		JOIN profiles cl ON cl.id = c.client_id
		JOIN profiles ct ON ct.id = c.contractor_id
		WHERE j.paid = true
		  AND ($1::timestamptz IS NULL OR j.payment_date >= $1)
		  AND ($2::timestamptz IS NULL OR j.payment_date <= $2)
	`, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []repository.PaidJobRow
	for rows.Next() {
		var r0 repository.PaidJobRow
		var price string
		if err := rows.Scan(&r0.JobID, &price, &r0.PaymentDate,
			&r0.Profession, &r0.ClientID, &r0.ClientName,
			&r0.ContractorID, &r0.ContractorName); err != nil {
			return nil, err
		}
		p, err := decimal.NewFromString(price)
		if err != nil {
			return nil, err
		}
		r0.Price = p
		out = append(out, r0)
	}
	return out, rows.Err()
}

var _ repository.JobRepository = (*JobRepository)(nil)
