package application

import (
	"context"
	"errors"

	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

// ContractService is the read-only contract/job surface. No invariants live
// here; it only scopes queries to the calling profile.
type ContractService struct {
	Contracts repository.ContractRepository
	Jobs      repository.JobRepository
}

func NewContractService(contracts repository.ContractRepository, jobs repository.JobRepository) *ContractService {
	return &ContractService{Contracts: contracts, Jobs: jobs}
}

// GetContract returns the contract only when the caller is one of its parties.
func (s *ContractService) GetContract(ctx context.Context, caller *entity.Profile, contractID string) (*entity.Contract, error) {
	c, err := s.Contracts.GetForProfile(ctx, contractID, caller.ID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("contract not found").
			With("contract_id", contractID)
	}
	if err != nil {
		return nil, apperror.Internal("load contract", err)
	}
	return c, nil
}

// ListContracts returns the caller's non-terminated contracts.
func (s *ContractService) ListContracts(ctx context.Context, caller *entity.Profile) ([]*entity.Contract, error) {
	cs, err := s.Contracts.ListForProfile(ctx, caller.ID)
	if err != nil {
		return nil, apperror.Internal("list contracts", err)
	}
	return cs, nil
}

// ListUnpaidJobs returns the caller's unpaid jobs under in_progress
// contracts. For a client these are exactly the jobs that make up their
// exposure.
func (s *ContractService) ListUnpaidJobs(ctx context.Context, caller *entity.Profile) ([]*entity.Job, error) {
	if !caller.IsClient() {
		return nil, apperror.Forbidden("unpaid-job listing is a client view").
			With("profile_id", caller.ID)
	}
	jobs, err := s.Jobs.ListUnpaidForClient(ctx, caller.ID)
	if err != nil {
		return nil, apperror.Internal("list unpaid jobs", err)
	}
	return jobs, nil
}
