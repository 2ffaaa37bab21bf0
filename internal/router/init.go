package router

import (
	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/container"
	pginfra "github.com/gigpayhq/gigpay/internal/infrastructure/postgres"
	handlers "github.com/gigpayhq/gigpay/internal/interface/http"
	"github.com/gigpayhq/gigpay/internal/router/modules"
)

// InitModules builds the application services from the container singletons
// and registers every feature module with the router registry. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	pool := container.GetPGPool()
	logger := container.GetLogger()

	profiles := pginfra.NewProfileRepository(pool)
	contracts := pginfra.NewContractRepository(pool)
	jobs := pginfra.NewJobRepository(pool)
	tx := pginfra.NewTxManager(pool)

	settlement := application.NewSettlementService(
		profiles, jobs, tx, logger,
		receiptPublisher(),
		container.GetES(), cfg.ESPaymentsIndex,
	)
	balance := application.NewBalanceService(profiles, jobs, tx, logger)
	analytics := application.NewAnalyticsService(jobs, container.GetES(), cfg.ESPaymentsIndex)
	contractSvc := application.NewContractService(contracts, jobs)
	profileSvc := application.NewProfileService(profiles, container.GetGCS(), cfg.GCSBucket, logger)

	jobHandler := handlers.NewJobHandler(settlement, contractSvc, logger)
	balanceHandler := handlers.NewBalanceHandler(balance, logger)
	contractHandler := handlers.NewContractHandler(contractSvc)
	profileHandler := handlers.NewProfileHandler(profileSvc, logger)
	adminHandler := handlers.NewAdminHandler(analytics, container.GetJWT(), logger,
		cfg.AdminEmail, cfg.AdminPasswordHash)

	r.Add(modules.NewPaymentsModule(jobHandler, balanceHandler, profiles))
	r.Add(modules.NewContractsModule(contractHandler, jobHandler, profiles))
	r.Add(modules.NewProfileModule(profileHandler, profiles))
	r.Add(modules.NewAdminModule(adminHandler, container.GetJWT()))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}

// receiptPublisher returns nil (interface) when RabbitMQ was not configured,
// keeping the settlement path free of typed-nil surprises.
func receiptPublisher() application.ReceiptPublisher {
	if p := container.GetReceiptPub(); p != nil {
		return p
	}
	return nil
}
