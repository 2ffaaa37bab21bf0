package repository

import (
	"context"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
)

// ContractRepository is the read-only contract surface. Contracts are
// created and transitioned outside this service.
type ContractRepository interface {
	// GetForProfile returns the contract only when the given profile is one
	// of its two parties.
	GetForProfile(ctx context.Context, contractID, profileID string) (*entity.Contract, error)

	// ListForProfile returns the profile's non-terminated contracts.
	ListForProfile(ctx context.Context, profileID string) ([]*entity.Contract, error)
}
