package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/internal/container"
	"github.com/gigpayhq/gigpay/internal/domain/repository"
	handlers "github.com/gigpayhq/gigpay/internal/interface/http"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
)

// ContractsModule wires the read-side endpoints for contracts and unpaid jobs.
// GET /api/contracts, GET /api/contracts/:contract_id, GET /api/jobs/unpaid
type ContractsModule struct {
	Contracts *handlers.ContractHandler
	Jobs      *handlers.JobHandler
	Profiles  repository.ProfileRepository
}

func NewContractsModule(contracts *handlers.ContractHandler, jobs *handlers.JobHandler, profiles repository.ProfileRepository) *ContractsModule {
	return &ContractsModule{Contracts: contracts, Jobs: jobs, Profiles: profiles}
}

func (m *ContractsModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()

	auth := rg.Group("/")
	auth.Use(middleware.ProfileAuth(m.Profiles, container.GetRedis(), cfg.ProfileCacheTTL))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByProfileID(), nil))
	{
		auth.GET("/contracts", m.Contracts.List)
		auth.GET("/contracts/:contract_id", m.Contracts.Get)
		auth.GET("/jobs/unpaid", m.Jobs.ListUnpaid)
	}
}
