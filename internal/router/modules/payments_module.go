package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/internal/container"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
	handlers "github.com/gigpayhq/gigpay/internal/interface/http"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
)

// PaymentsModule wires the money-moving endpoints.
// POST /api/jobs/:job_id/pay and POST /api/balances/deposit both require a
// resolved profile and carry tight per-profile rate limits.
type PaymentsModule struct {
	Jobs     *handlers.JobHandler
	Balances *handlers.BalanceHandler
	Profiles repository.ProfileRepository
}

func NewPaymentsModule(jobs *handlers.JobHandler, balances *handlers.BalanceHandler, profiles repository.ProfileRepository) *PaymentsModule {
	return &PaymentsModule{Jobs: jobs, Balances: balances, Profiles: profiles}
}

func (m *PaymentsModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	auth := rg.Group("/")
	auth.Use(middleware.ProfileAuth(m.Profiles, container.GetRedis(), cfg.ProfileCacheTTL))
	auth.Use(middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByProfileID(), nil))
	{
		auth.POST("/jobs/:job_id/pay", m.Jobs.Pay)
		auth.POST("/balances/deposit", m.Balances.Deposit)
	}
}
