package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
	"github.com/gigpayhq/gigpay/pkg/helpers"
	"github.com/gigpayhq/gigpay/pkg/response"
	"github.com/gigpayhq/gigpay/pkg/validation"
)

type BalanceHandler struct {
	Balance *application.BalanceService
	Logger  *logrus.Logger
}

func NewBalanceHandler(balance *application.BalanceService, logger *logrus.Logger) *BalanceHandler {
	return &BalanceHandler{Balance: balance, Logger: logger}
}

type depositRequest struct {
	// Amount travels as a decimal string to avoid float rounding on the wire.
	Amount string `json:"amount" binding:"required"`
}

// Deposit tops up the calling client's balance, subject to the deposit limit.
// POST /api/balances/deposit
func (h *BalanceHandler) Deposit(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	var req depositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	amount, err := helpers.ParseAmount(req.Amount)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid amount", map[string]string{"amount": err.Error()})
		return
	}

	p, err := h.Balance.Deposit(c.Request.Context(), caller, amount)
	if err != nil {
		h.Logger.WithError(err).WithField("profile_id", caller.ID).Warn("deposit rejected")
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, profileJSON(p), "deposit accepted", nil)
}
