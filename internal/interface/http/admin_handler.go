package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/gigpayhq/gigpay/internal/application"
	"github.com/gigpayhq/gigpay/pkg/helpers"
	"github.com/gigpayhq/gigpay/pkg/response"
	"github.com/gigpayhq/gigpay/pkg/validation"
)

type AdminHandler struct {
	Analytics *application.AnalyticsService
	JWT       *helpers.JWTManager
	Logger    *logrus.Logger

	AdminEmail        string
	AdminPasswordHash string
}

func NewAdminHandler(analytics *application.AnalyticsService, jwt *helpers.JWTManager, logger *logrus.Logger, adminEmail, adminPasswordHash string) *AdminHandler {
	return &AdminHandler{
		Analytics:         analytics,
		JWT:               jwt,
		Logger:            logger,
		AdminEmail:        adminEmail,
		AdminPasswordHash: adminPasswordHash,
	}
}

type adminLoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// Login authenticates the configured admin and issues a JWT pair.
// POST /api/admin/login
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if req.Email != h.AdminEmail || h.AdminPasswordHash == "" ||
		!helpers.CompareHashAndPassword(h.AdminPasswordHash, req.Password) {
		response.Error[any](c, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	access, aexp, err := h.JWT.GenerateAccessToken(req.Email)
	if err != nil {
		h.Logger.WithError(err).Error("generate access token failed")
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	refresh, rexp, err := h.JWT.GenerateRefreshToken(req.Email)
	if err != nil {
		h.Logger.WithError(err).Error("generate refresh token failed")
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"access_token":  access,
		"refresh_token": refresh,
	}, "login successful", gin.H{"access_expires_at": aexp, "refresh_expires_at": rexp})
}

// Refresh rotates the admin access token.
// POST /api/admin/refresh
func (h *AdminHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	claims, err := h.JWT.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		response.Error[any](c, http.StatusUnauthorized, "invalid refresh token", nil)
		return
	}
	access, aexp, err := h.JWT.GenerateAccessToken(claims.AdminEmail)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "token generation failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"access_token": access}, "token refreshed", gin.H{"access_expires_at": aexp})
}

// BestProfession returns the profession with the highest total paid amount
// over the (inclusive) date range.
// GET /api/admin/best-profession?start=&end=
func (h *AdminHandler) BestProfession(c *gin.Context) {
	from, err := parseDateBound(c.Query("start"), false)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid start date", map[string]string{"start": "must be YYYY-MM-DD or RFC3339"})
		return
	}
	to, err := parseDateBound(c.Query("end"), true)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid end date", map[string]string{"end": "must be YYYY-MM-DD or RFC3339"})
		return
	}

	best, err := h.Analytics.BestProfession(c.Request.Context(), from, to)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"profession": best.Profession,
		"total_paid": best.TotalPaid.StringFixed(2),
	}, "best profession", nil)
}

// BestClients returns the top clients by amount paid over the range.
// GET /api/admin/best-clients?start=&end=&limit=
func (h *AdminHandler) BestClients(c *gin.Context) {
	from, err := parseDateBound(c.Query("start"), false)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid start date", map[string]string{"start": "must be YYYY-MM-DD or RFC3339"})
		return
	}
	to, err := parseDateBound(c.Query("end"), true)
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid end date", map[string]string{"end": "must be YYYY-MM-DD or RFC3339"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			response.Error[any](c, http.StatusBadRequest, "invalid limit", map[string]string{"limit": "must be a positive integer"})
			return
		}
	}

	clients, err := h.Analytics.BestClients(c.Request.Context(), from, to, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	out := make([]gin.H, 0, len(clients))
	for _, cl := range clients {
		out = append(out, gin.H{
			"client_id":  cl.ClientID,
			"full_name":  cl.FullName,
			"total_paid": cl.TotalPaid.StringFixed(2),
		})
	}
	response.Success(c, http.StatusOK, out, "best clients", gin.H{"count": len(out)})
}

// SearchPayments queries the payments search index.
// GET /api/admin/payments/search?q=&size=
func (h *AdminHandler) SearchPayments(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", map[string]string{"q": "is required"})
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Analytics.SearchPayments(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Warn("payment search failed")
		response.Error[any](c, http.StatusInternalServerError, "search failed", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "payments", gin.H{"count": len(hits)})
}
