package http

import "github.com/gin-gonic/gin"

// Register attaches project routes to the given router group. guard protects
// the admin-only operations.
func (h *Handler) Register(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	rg.GET("", h.list)
	rg.GET("/:id", h.get)

	rg.GET("/admin/all", guard, h.adminList)
	rg.POST("", guard, h.create)
	rg.PUT("/:id", guard, h.update)
	rg.DELETE("/:id", guard, h.delete)
}
