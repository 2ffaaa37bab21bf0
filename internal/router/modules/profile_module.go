package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/internal/container"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
	handlers "github.com/gigpayhq/gigpay/internal/interface/http"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
)

// ProfileModule wires the calling profile's own endpoints.
// GET /api/profile, PUT /api/profile/avatar
type ProfileModule struct {
	Handler  *handlers.ProfileHandler
	Profiles repository.ProfileRepository
}

func NewProfileModule(h *handlers.ProfileHandler, profiles repository.ProfileRepository) *ProfileModule {
	return &ProfileModule{Handler: h, Profiles: profiles}
}

func (m *ProfileModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	auth := rg.Group("/")
	auth.Use(middleware.ProfileAuth(m.Profiles, container.GetRedis(), cfg.ProfileCacheTTL))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByProfileID(), nil))
	{
		auth.GET("/profile", m.Handler.Get)
		auth.PUT("/profile/avatar", m.Handler.UploadAvatar)
	}
}
