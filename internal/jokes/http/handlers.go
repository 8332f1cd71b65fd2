package http

import (
	"errors"
	"net/http"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) random(c *gin.Context) {
	j, err := h.svc.Random()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No jokes available"})
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *Handler) randomInCategory(c *gin.Context) {
	j, err := h.svc.RandomInCategory(c.Param("category"))
	if errors.Is(err, domain.ErrNoJokesInCategory) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No jokes found for this category"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, j)
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, categoriesResponse{Categories: h.svc.Categories()})
}
