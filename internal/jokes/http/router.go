package http

import "github.com/gin-gonic/gin"

// Register attaches joke routes to the /api group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/joke", h.random)
	rg.GET("/jokes/:category", h.randomInCategory)
	rg.GET("/joke-categories", h.categories)
}
