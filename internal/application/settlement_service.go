package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
	"github.com/gigpayhq/gigpay/pkg/mailer"
)

// ReceiptPublisher pushes a payment receipt onto the queue consumed by
// cmd/receipt_worker. Satisfied by helpers.RabbitPublisher.
type ReceiptPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// SettlementService executes the atomic transfer of a job's price from the
// client's balance to the contractor's balance, paired with marking the job
// paid. All mutation happens inside one transaction; the balance writes are
// guarded conditional updates, so concurrent settlements on the same client
// or job cannot produce a negative balance or a double payment.
type SettlementService struct {
	Profiles repository.ProfileRepository
	Jobs     repository.JobRepository
	Tx       repository.TxManager
	Logger   *logrus.Logger

	// Post-commit side effects, both best-effort.
	Receipts ReceiptPublisher
	ES       *elasticsearch.Client
	ESIndex  string
}

func NewSettlementService(profiles repository.ProfileRepository, jobs repository.JobRepository, tx repository.TxManager, logger *logrus.Logger, receipts ReceiptPublisher, es *elasticsearch.Client, esIndex string) *SettlementService {
	return &SettlementService{
		Profiles: profiles,
		Jobs:     jobs,
		Tx:       tx,
		Logger:   logger,
		Receipts: receipts,
		ES:       es,
		ESIndex:  esIndex,
	}
}

// PayJob settles one unpaid job on behalf of the calling client.
//
// Inside the transaction:
//  1. locate-and-lock the job (unpaid, in_progress contract, owned by caller);
//  2. read the client balance for error context and the cheap pre-check;
//  3. guarded debit, re-checking balance >= price at write time;
//  4. guarded credit of the contractor;
//  5. mark the job paid.
//
// Any failure rolls the whole transaction back: no partial balance movement,
// no orphaned paid flag.
func (s *SettlementService) PayJob(ctx context.Context, caller *entity.Profile, jobID string) (*entity.Job, error) {
	if !caller.IsClient() {
		return nil, apperror.Forbidden("only clients can pay for jobs").
			With("profile_id", caller.ID)
	}

	var job *entity.Job
	err := s.Tx.WithTx(ctx, func(txCtx context.Context) error {
		var err error
		job, err = s.Jobs.FindPayableForUpdate(txCtx, jobID, caller.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperror.NotFound("no payable job matches").
				With("job_id", jobID)
		}
		if err != nil {
			return apperror.Internal("find payable job", err)
		}

		client, err := s.Profiles.GetByID(txCtx, caller.ID)
		if err != nil {
			return apperror.Internal("load client balance", err)
		}
		if client.Balance.LessThan(job.Price) {
			return apperror.InsufficientFunds("balance does not cover job price").
				With("job_id", job.ID).
				With("price", job.Price.StringFixed(2)).
				With("balance", client.Balance.StringFixed(2))
		}

		// The balance may have moved since the read above; the predicate in
		// the update is what actually protects the invariant.
		ok, err := s.Profiles.DebitIfSufficient(txCtx, caller.ID, job.Price)
		if err != nil {
			return apperror.Internal("debit client", err)
		}
		if !ok {
			return apperror.InsufficientFunds("balance changed concurrently").
				With("job_id", job.ID).
				With("price", job.Price.StringFixed(2))
		}

		ok, err = s.Profiles.Credit(txCtx, job.ContractorID, job.Price)
		if err != nil {
			return apperror.Internal("credit contractor", err)
		}
		if !ok {
			return apperror.Internal("contractor profile missing during settlement", nil).
				With("job_id", job.ID).
				With("contractor_id", job.ContractorID)
		}

		now := time.Now().UTC()
		ok, err = s.Jobs.MarkPaid(txCtx, job.ID, now)
		if err != nil {
			return apperror.Internal("mark job paid", err)
		}
		if !ok {
			return apperror.NotFound("job was settled concurrently").
				With("job_id", job.ID)
		}
		job.Paid = true
		job.PaymentDate = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.WithFields(logrus.Fields{
		"job_id":        job.ID,
		"client_id":     caller.ID,
		"contractor_id": job.ContractorID,
		"price":         job.Price.StringFixed(2),
	}).Info("job settled")

	s.afterSettlement(caller, job)
	return job, nil
}

// afterSettlement runs the post-commit side effects: receipt email via the
// queue and best-effort search indexing. Neither can fail the settlement.
func (s *SettlementService) afterSettlement(client *entity.Profile, job *entity.Job) {
	if s.Receipts != nil && client.Email != "" {
		rj := mailer.ReceiptJob{
			To:          client.Email,
			JobID:       job.ID,
			Description: job.Description,
			Amount:      job.Price.StringFixed(2),
			PaidAt:      job.PaymentDate.UTC(),
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := s.Receipts.PublishJSON(ctx, rj); err != nil {
				s.Logger.WithError(err).WithField("job_id", job.ID).Warn("receipt publish failed")
			}
		}()
	}
	s.indexPayment(client, job)
}

func (s *SettlementService) indexPayment(client *entity.Profile, job *entity.Job) {
	if s.ES == nil || s.ESIndex == "" {
		return
	}
	doc := map[string]any{
		"job_id":        job.ID,
		"description":   job.Description,
		"client_id":     client.ID,
		"client_name":   client.FullName(),
		"contractor_id": job.ContractorID,
		"amount":        job.Price.StringFixed(2),
		"payment_date":  job.PaymentDate.UTC().Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESIndex, DocumentID: job.ID, Body: strings.NewReader(string(b)), Refresh: "false"}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	res, err := req.Do(ctx, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("job_id", job.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("job_id", job.ID).Warn("es index response error")
	}
}
