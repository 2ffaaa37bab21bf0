package application_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
)

func TestGetContract_PartyScoped(t *testing.T) {
	client := newClient("client-1", "10.00")
	contract := &entity.Contract{ID: "contract-1", ClientID: "client-1", ContractorID: "contractor-1"}
	contracts := &mockContractRepo{
		getForProfileFunc: func(ctx context.Context, contractID, profileID string) (*entity.Contract, error) {
			if contractID != "contract-1" || profileID != "client-1" {
				t.Fatalf("unexpected lookup: contract=%s profile=%s", contractID, profileID)
			}
			return contract, nil
		},
	}

	got, err := application.NewContractService(contracts, &mockJobRepo{}).GetContract(context.Background(), client, "contract-1")
	if err != nil {
		t.Fatalf("GetContract: %v", err)
	}
	if got.ID != "contract-1" {
		t.Errorf("expected contract-1, got %s", got.ID)
	}
}

func TestGetContract_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		repoErr  error
		wantKind apperror.Kind
	}{
		{name: "missing row is not found", repoErr: repository.ErrNotFound, wantKind: apperror.KindNotFound},
		{name: "store failure is internal", repoErr: errors.New("connection refused"), wantKind: apperror.KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient("client-1", "10.00")
			contracts := &mockContractRepo{
				getForProfileFunc: func(ctx context.Context, contractID, profileID string) (*entity.Contract, error) {
					return nil, tt.repoErr
				},
			}

			_, err := application.NewContractService(contracts, &mockJobRepo{}).GetContract(context.Background(), client, "contract-1")
			if apperror.KindOf(err) != tt.wantKind {
				t.Fatalf("expected kind %v, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestListUnpaidJobs_ContractorForbidden(t *testing.T) {
	contractor := &entity.Profile{ID: "contractor-1", Type: entity.ProfileTypeContractor}

	_, err := application.NewContractService(&mockContractRepo{}, &mockJobRepo{}).ListUnpaidJobs(context.Background(), contractor)
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("expected forbidden, got %v", err)
	}
}
