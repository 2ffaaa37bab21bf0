package application_test

import (
	"context"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

// mockProfileRepo is a mock implementation for unit testing
type mockProfileRepo struct {
	getByIDFunc           func(ctx context.Context, id string) (*entity.Profile, error)
	debitIfSufficientFunc func(ctx context.Context, id string, amount decimal.Decimal) (bool, error)
	creditFunc            func(ctx context.Context, id string, amount decimal.Decimal) (bool, error)
	updateAvatarURLFunc   func(ctx context.Context, id, url string) error
}

func (m *mockProfileRepo) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProfileRepo) DebitIfSufficient(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	if m.debitIfSufficientFunc != nil {
		return m.debitIfSufficientFunc(ctx, id, amount)
	}
	return true, nil
}

func (m *mockProfileRepo) Credit(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
	if m.creditFunc != nil {
		return m.creditFunc(ctx, id, amount)
	}
	return true, nil
}

func (m *mockProfileRepo) UpdateAvatarURL(ctx context.Context, id, url string) error {
	if m.updateAvatarURLFunc != nil {
		return m.updateAvatarURLFunc(ctx, id, url)
	}
	return nil
}

// mockJobRepo is a mock implementation for unit testing
type mockJobRepo struct {
	findPayableForUpdateFunc func(ctx context.Context, jobID, clientID string) (*entity.Job, error)
	listUnpaidForClientFunc  func(ctx context.Context, clientID string) ([]*entity.Job, error)
	sumUnpaidForClientFunc   func(ctx context.Context, clientID string) (decimal.Decimal, error)
	markPaidFunc             func(ctx context.Context, jobID string, at time.Time) (bool, error)
	listPaidBetweenFunc      func(ctx context.Context, from, to *time.Time) ([]repository.PaidJobRow, error)
}

func (m *mockJobRepo) FindPayableForUpdate(ctx context.Context, jobID, clientID string) (*entity.Job, error) {
	if m.findPayableForUpdateFunc != nil {
		return m.findPayableForUpdateFunc(ctx, jobID, clientID)
	}
	return nil, nil
}

func (m *mockJobRepo) ListUnpaidForClient(ctx context.Context, clientID string) ([]*entity.Job, error) {
	if m.listUnpaidForClientFunc != nil {
		return m.listUnpaidForClientFunc(ctx, clientID)
	}
	return nil, nil
}

func (m *mockJobRepo) SumUnpaidForClient(ctx context.Context, clientID string) (decimal.Decimal, error) {
	if m.sumUnpaidForClientFunc != nil {
		return m.sumUnpaidForClientFunc(ctx, clientID)
	}
	return decimal.Zero, nil
}

func (m *mockJobRepo) MarkPaid(ctx context.Context, jobID string, at time.Time) (bool, error) {
	if m.markPaidFunc != nil {
		return m.markPaidFunc(ctx, jobID, at)
	}
	return true, nil
}

func (m *mockJobRepo) ListPaidBetween(ctx context.Context, from, to *time.Time) ([]repository.PaidJobRow, error) {
	if m.listPaidBetweenFunc != nil {
		return m.listPaidBetweenFunc(ctx, from, to)
	}
	return nil, nil
}

// mockContractRepo is a mock implementation for unit testing
type mockContractRepo struct {
	getForProfileFunc  func(ctx context.Context, contractID, profileID string) (*entity.Contract, error)
	listForProfileFunc func(ctx context.Context, profileID string) ([]*entity.Contract, error)
}

func (m *mockContractRepo) GetForProfile(ctx context.Context, contractID, profileID string) (*entity.Contract, error) {
	if m.getForProfileFunc != nil {
		return m.getForProfileFunc(ctx, contractID, profileID)
	}
	return nil, nil
}

func (m *mockContractRepo) ListForProfile(ctx context.Context, profileID string) ([]*entity.Contract, error) {
	if m.listForProfileFunc != nil {
		return m.listForProfileFunc(ctx, profileID)
	}
	return nil, nil
}

// mockTx runs the callback without a real transaction; the services under
// test only care that an error from fn propagates out.
type mockTx struct{}

func (mockTx) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
