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

func TestGetProfile_ErrorMapping(t *testing.T) {
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
			profiles := &mockProfileRepo{
				getByIDFunc: func(ctx context.Context, id string) (*entity.Profile, error) {
					return nil, tt.repoErr
				},
			}
			svc := application.NewProfileService(profiles, nil, "", testLogger())

			_, err := svc.GetProfile(context.Background(), "profile-1")
			if apperror.KindOf(err) != tt.wantKind {
				t.Fatalf("expected kind %v, got %v", tt.wantKind, err)
			}
		})
	}
}

func TestGetProfile_ReturnsStoredBalance(t *testing.T) {
	profiles := &mockProfileRepo{
		getByIDFunc: func(ctx context.Context, id string) (*entity.Profile, error) {
			return &entity.Profile{ID: id, Type: entity.ProfileTypeClient, Balance: dec("42.50")}, nil
		},
	}
	svc := application.NewProfileService(profiles, nil, "", testLogger())

	p, err := svc.GetProfile(context.Background(), "profile-1")
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if !p.Balance.Equal(dec("42.50")) {
		t.Errorf("expected balance 42.50, got %s", p.Balance)
	}
}
