package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
	"github.com/gigpayhq/gigpay/pkg/response"
)

type JobHandler struct {
	Settlement *application.SettlementService
	Contracts  *application.ContractService
	Logger     *logrus.Logger
}

func NewJobHandler(settlement *application.SettlementService, contracts *application.ContractService, logger *logrus.Logger) *JobHandler {
	return &JobHandler{Settlement: settlement, Contracts: contracts, Logger: logger}
}

// Pay settles an unpaid job on behalf of the calling client.
// POST /api/jobs/:job_id/pay
func (h *JobHandler) Pay(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	job, err := h.Settlement.PayJob(c.Request.Context(), caller, c.Param("job_id"))
	if err != nil {
		h.Logger.WithError(err).WithFields(logrus.Fields{
			"job_id":     c.Param("job_id"),
			"profile_id": caller.ID,
		}).Warn("settlement rejected")
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, jobJSON(job), "job paid", nil)
}

// ListUnpaid returns the caller's unpaid jobs under in_progress contracts.
// GET /api/jobs/unpaid
func (h *JobHandler) ListUnpaid(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	jobs, err := h.Contracts.ListUnpaidJobs(c.Request.Context(), caller)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, jobJSON(j))
	}
	response.Success(c, http.StatusOK, out, "unpaid jobs", gin.H{"count": len(out)})
}
