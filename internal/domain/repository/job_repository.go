package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
)

// PaidJobRow is one row of the aggregation snapshot: a paid job joined to
// its contract's client and contractor profiles.
type PaidJobRow struct {
	JobID          string
	Price          decimal.Decimal
	PaymentDate    time.Time
	Profession     string
	ClientID       string
	ClientName     string
	ContractorID   string
	ContractorName string
}

// JobRepository defines job reads and the paid-flag transition. The payable
// lookup and MarkPaid are both predicated on "currently unpaid" so a job can
// transition unpaid -> paid exactly once.
type JobRepository interface {
	// FindPayableForUpdate locates the job by id such that it is unpaid,
	// belongs to an in_progress contract, and that contract's client is
	// clientID. The row is locked for the duration of the surrounding
	// transaction; a concurrent settlement of the same job re-evaluates the
	// predicate after commit and finds nothing.
	FindPayableForUpdate(ctx context.Context, jobID, clientID string) (*entity.Job, error)

	// ListUnpaidForClient returns the client's unpaid jobs under in_progress
	// contracts.
	ListUnpaidForClient(ctx context.Context, clientID string) ([]*entity.Job, error)

	// SumUnpaidForClient computes the client's exposure: the sum of prices
	// of unpaid jobs under in_progress contracts. Zero when none exist.
	SumUnpaidForClient(ctx context.Context, clientID string) (decimal.Decimal, error)

	// MarkPaid sets paid=true and the payment date, guarded by "not already
	// paid". Returns false when the guard did not hold.
	MarkPaid(ctx context.Context, jobID string, at time.Time) (bool, error)

	// ListPaidBetween returns the aggregation snapshot for paymentDate in
	// [from, to], bounds inclusive, either side open when nil.
	ListPaidBetween(ctx context.Context, from, to *time.Time) ([]PaidJobRow, error)
}
