package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
)

// ProfileRepository defines profile lookups and the guarded balance
// mutations the settlement and deposit paths are built on. The guarded
// updates are single conditional statements: they report whether the write
// took effect instead of letting callers read-check-write.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Profile, error)

	// DebitIfSufficient subtracts amount from the profile's balance only if
	// the balance covers it at write time. Returns false when the guard did
	// not hold (balance too low or profile missing).
	DebitIfSufficient(ctx context.Context, id string, amount decimal.Decimal) (bool, error)

	// Credit adds amount to the profile's balance. Returns false when the
	// profile does not exist.
	Credit(ctx context.Context, id string, amount decimal.Decimal) (bool, error)

	UpdateAvatarURL(ctx context.Context, id, url string) error
}
