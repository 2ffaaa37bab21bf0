package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/internal/interface/middleware"
	"github.com/gigpayhq/gigpay/pkg/response"
)

type ContractHandler struct {
	Contracts *application.ContractService
}

func NewContractHandler(contracts *application.ContractService) *ContractHandler {
	return &ContractHandler{Contracts: contracts}
}

// Get returns one contract when the caller is a party to it.
// GET /api/contracts/:contract_id
func (h *ContractHandler) Get(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	contract, err := h.Contracts.GetContract(c.Request.Context(), caller, c.Param("contract_id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, contractJSON(contract), "contract", nil)
}

// List returns the caller's non-terminated contracts.
// GET /api/contracts
func (h *ContractHandler) List(c *gin.Context) {
	caller, ok := middleware.ProfileFromCtx(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "profile not resolved", nil)
		return
	}

	contracts, err := h.Contracts.ListContracts(c.Request.Context(), caller)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(contracts))
	for _, ct := range contracts {
		out = append(out, contractJSON(ct))
	}
	response.Success(c, http.StatusOK, out, "contracts", gin.H{"count": len(out)})
}
