package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
	"github.com/gigpayhq/gigpay/pkg/response"
)

const maxAvatarBytes = 5 << 20 // 5 MiB

type ProfileHandler struct {
	Profiles *application.ProfileService
	Logger   *logrus.Logger
}

func NewProfileHandler(profiles *application.ProfileService, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{Profiles: profiles, Logger: logger}
}

// Get returns the calling profile with its current balance.
// GET /api/profile
func (h *ProfileHandler) Get(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	// Balance must come from the store, not the middleware cache.
	p, err := h.Profiles.GetProfile(c.Request.Context(), caller.ID)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profileJSON(p), "profile", nil)
}

// UploadAvatar stores an avatar image in GCS and saves its URL.
// PUT /api/profile/avatar (multipart field: avatar)
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	file, header, err := c.Request.FormFile("avatar")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing avatar file", map[string]string{"avatar": "is required"})
		return
	}
	defer func() { _ = file.Close() }()

	if header.Size > maxAvatarBytes {
		response.Error[any](c, http.StatusBadRequest, "avatar too large", map[string]string{"avatar": "must be at most 5 MiB"})
		return
	}

	url, err := h.Profiles.UploadAvatar(c.Request.Context(), caller.ID, file, header.Filename, header.Header.Get("Content-Type"))
	if err != nil {
		h.Logger.WithError(err).WithField("profile_id", caller.ID).Warn("avatar upload failed")
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"avatar_url": url}, "avatar updated", nil)
}
