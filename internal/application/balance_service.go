package application

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

var four = decimal.NewFromInt(4)

// BalanceService applies the deposit-limiting rule: a client may not top up
// by more than a quarter of their outstanding unpaid-job exposure. With no
// exposure the allowed deposit is zero, not unlimited.
type BalanceService struct {
	Profiles repository.ProfileRepository
	Jobs     repository.JobRepository
	Tx       repository.TxManager
	Logger   *logrus.Logger
}

func NewBalanceService(profiles repository.ProfileRepository, jobs repository.JobRepository, tx repository.TxManager, logger *logrus.Logger) *BalanceService {
	return &BalanceService{Profiles: profiles, Jobs: jobs, Tx: tx, Logger: logger}
}

// Deposit credits amount to the caller's balance when it is within the
// limit. Exposure is computed and the balance credited inside one
// transaction; amount == exposure/4 is allowed, anything above is rejected.
func (s *BalanceService) Deposit(ctx context.Context, caller *entity.Profile, amount decimal.Decimal) (*entity.Profile, error) {
	if !caller.IsClient() {
		return nil, apperror.Forbidden("only clients can deposit").
			With("profile_id", caller.ID)
	}
	if !amount.IsPositive() {
		return nil, apperror.InvalidArgument("deposit amount must be positive").
			With("amount", amount.String())
	}

	var updated *entity.Profile
	err := s.Tx.WithTx(ctx, func(txCtx context.Context) error {
		exposure, err := s.Jobs.SumUnpaidForClient(txCtx, caller.ID)
		if err != nil {
			return apperror.Internal("compute exposure", err)
		}

		limit := exposure.Div(four)
		if amount.GreaterThan(limit) {
			return apperror.DepositLimitExceeded("deposit exceeds 25% of unpaid-job exposure").
				With("amount", amount.StringFixed(2)).
				With("exposure", exposure.StringFixed(2)).
				With("limit", limit.StringFixed(2))
		}

		ok, err := s.Profiles.Credit(txCtx, caller.ID, amount)
		if err != nil {
			return apperror.Internal("credit balance", err)
		}
		if !ok {
			return apperror.NotFound("profile missing").
				With("profile_id", caller.ID)
		}

		updated, err = s.Profiles.GetByID(txCtx, caller.ID)
		if err != nil {
			return apperror.Internal("reload profile", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"profile_id": caller.ID,
		"amount":     amount.StringFixed(2),
		"balance":    updated.Balance.StringFixed(2),
	}).Info("deposit accepted")
	return updated, nil
}
