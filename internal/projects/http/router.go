package http

import "github.com/gin-gonic/gin"

// Register attaches project and stats routes to the /api group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/projects", h.list)
	rg.GET("/projects/:project_id", h.get)
	rg.POST("/projects/:project_id", h.update)
	rg.GET("/stats", h.stats)
}
