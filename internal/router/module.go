package router

import "github.com/gin-gonic/gin"

// Module is one feature surface (payments, contracts, admin, ...) that
// registers its own routes and route-scoped middleware on the /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
