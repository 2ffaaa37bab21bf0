package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gigpayhq/gigpay/pkg/helpers"
	"github.com/gigpayhq/gigpay/pkg/response"
)

// AdminAuth validates the bearer access token issued by the admin login
// endpoint and sets "adminEmail" in the Gin context.
func AdminAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		c.Set("adminEmail", claims.AdminEmail)
		c.Next()
	}
}
