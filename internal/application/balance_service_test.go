package application_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
)

func newBalance(profiles *mockProfileRepo, jobs *mockJobRepo) *application.BalanceService {
	return application.NewBalanceService(profiles, jobs, mockTx{}, testLogger())
}

func TestDeposit_LimitBoundary(t *testing.T) {
	// Exposure 400.00 -> limit 100.00. Exactly the limit passes, one cent
	// over is rejected.
	tests := []struct {
		name     string
		exposure string
		amount   string
		wantKind apperror.Kind
	}{
		{name: "exactly a quarter of exposure", exposure: "400.00", amount: "100.00", wantKind: apperror.KindUnknown},
		{name: "below the limit", exposure: "400.00", amount: "99.99", wantKind: apperror.KindUnknown},
		{name: "one cent over the limit", exposure: "400.00", amount: "100.01", wantKind: apperror.KindDepositLimitExceeded},
		{name: "zero exposure rejects any deposit", exposure: "0.00", amount: "0.01", wantKind: apperror.KindDepositLimitExceeded},
		{name: "odd exposure divides exactly", exposure: "1.00", amount: "0.25", wantKind: apperror.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient("client-1", "10.00")
			profiles := &mockProfileRepo{
				getByIDFunc: func(ctx context.Context, id string) (*entity.Profile, error) {
					return client, nil
				},
			}
			jobs := &mockJobRepo{
				sumUnpaidForClientFunc: func(ctx context.Context, clientID string) (decimal.Decimal, error) {
					return dec(tt.exposure), nil
				},
			}

			_, err := newBalance(profiles, jobs).Deposit(context.Background(), client, dec(tt.amount))
			if tt.wantKind == apperror.KindUnknown {
				if err != nil {
					t.Fatalf("Deposit: %v", err)
				}
				return
			}
			if apperror.KindOf(err) != tt.wantKind {
				t.Fatalf("expected kind %v, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestDeposit_CreditsWithinTransaction(t *testing.T) {
	client := newClient("client-1", "10.00")
	var creditedID string
	var credited decimal.Decimal
	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*entity.Profile, error) {
			return &entity.Profile{ID: id, Type: entity.ProfileTypeClient, Balance: dec("60.00")}, nil
		},
		creditFunc: func(ctx context.Context, id string, amount decimal.Decimal) (bool, error) {
			creditedID, credited = id, amount
			return true, nil
		},
	}
	jobs := &mockJobRepo{
		sumUnpaidForClientFunc: func(ctx context.Context, clientID string) (decimal.Decimal, error) {
			return dec("400.00"), nil
		},
	}

	updated, err := newBalance(profiles, jobs).Deposit(context.Background(), client, dec("50.00"))
	if err != nil {
		t.Fatalf("Deposit: %v", err)
	}
	if creditedID != "client-1" || !credited.Equal(dec("50.00")) {
		t.Errorf("credit: got id=%s amount=%s", creditedID, credited)
	}
	if !updated.Balance.Equal(dec("60.00")) {
		t.Errorf("expected reloaded balance 60.00, got %s", updated.Balance)
	}
}

func TestDeposit_ContractorForbidden(t *testing.T) {
	contractor := &entity.Profile{ID: "contractor-1", Type: entity.ProfileTypeContractor}

	_, err := newBalance(&mockProfileRepo{}, &mockJobRepo{}).Deposit(context.Background(), contractor, dec("10.00"))
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestDeposit_NonPositiveAmount(t *testing.T) {
	client := newClient("client-1", "10.00")
	for _, amount := range []string{"0", "-5.00"} {
		_, err := newBalance(&mockProfileRepo{}, &mockJobRepo{}).Deposit(context.Background(), client, dec(amount))
		if apperror.KindOf(err) != apperror.KindInvalidArgument {
			t.Fatalf("amount %s: expected invalid argument, got %v", amount, err)
		}
	}
}

func TestDeposit_ErrorContextFields(t *testing.T) {
	client := newClient("client-1", "10.00")
	jobs := &mockJobRepo{
		sumUnpaidForClientFunc: func(ctx context.Context, clientID string) (decimal.Decimal, error) {
			return dec("100.00"), nil
		},
	}

	_, err := newBalance(&mockProfileRepo{}, jobs).Deposit(context.Background(), client, dec("30.00"))
	if apperror.KindOf(err) != apperror.KindDepositLimitExceeded {
		t.Fatalf("expected deposit limit exceeded, got %v", err)
	}
	fields := apperror.FieldsOf(err)
	if fields["limit"] != "25.00" || fields["exposure"] != "100.00" || fields["amount"] != "30.00" {
		t.Errorf("expected amount/exposure/limit context, got %v", fields)
	}
}
