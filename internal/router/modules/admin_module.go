package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/internal/container"
	handlers "github.com/gigpayhq/gigpay/internal/interface/http"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
	"github.com/gigpayhq/gigpay/pkg/helpers"
)

// AdminModule wires the back-office endpoints.
// Public: POST /api/admin/login, POST /api/admin/refresh
// Protected (JWT): GET /api/admin/best-profession, GET /api/admin/best-clients,
// GET /api/admin/payments/search
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	// Login is brute-forceable, keep the IP limit low.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	rg.POST("/admin/login", loginLimiter, m.Handler.Login)
	rg.POST("/admin/refresh", loginLimiter, m.Handler.Refresh)

	auth := rg.Group("/")
	auth.Use(middleware.AdminAuth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByIP(), nil))
	{
		auth.GET("/admin/best-profession", m.Handler.BestProfession)
		auth.GET("/admin/best-clients", m.Handler.BestClients)
		auth.GET("/admin/payments/search", m.Handler.SearchPayments)
	}
}
