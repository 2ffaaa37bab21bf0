package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/domain/apperror"
	"github.com/gigpayhq/gigpay/internal/domain/entity"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
	"github.com/gigpayhq/gigpay/pkg/helpers"
)

// ProfileService covers the non-core profile surface: reads and avatar
// uploads to GCS.
type ProfileService struct {
	Profiles  repository.ProfileRepository
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewProfileService(profiles repository.ProfileRepository, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *ProfileService {
	return &ProfileService{Profiles: profiles, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	p, err := s.Profiles.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperror.NotFound("profile not found").With("profile_id", id)
	}
	if err != nil {
		return nil, apperror.Internal("load profile", err)
	}
	return p, nil
}

// UploadAvatar stores the image in GCS under avatars/<profile>/<uuid><ext>
// and persists the public URL on the profile.
func (s *ProfileService) UploadAvatar(ctx context.Context, profileID string, r io.Reader, filename, contentType string) (string, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return "", apperror.Internal("object storage not configured", errors.New("gcs client missing"))
	}

	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", profileID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", apperror.Internal("upload avatar", err)
	}

	if err := s.Profiles.UpdateAvatarURL(ctx, profileID, url); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", apperror.NotFound("profile not found").With("profile_id", profileID)
		}
		return "", apperror.Internal("save avatar url", err)
	}
	return url, nil
}
