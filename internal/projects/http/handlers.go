package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
	"github.com/gin-gonic/gin"
)

const (
	msgProjectNotFound = "Project not found"
	msgInvalidID       = "Invalid project id"
	msgInvalidBody     = "Invalid request body"
	msgInvalidProgress = "Invalid progress value"
	msgNoProjects      = "No projects available"
	msgInternal        = "Internal server error"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, "list_projects", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	p, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, "get_project", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	// Unknown ids are a 404 whatever the body looks like.
	if _, err := h.svc.Get(c.Request.Context(), id); err != nil {
		h.fail(c, "update_project", err)
		return
	}

	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidBody})
		return
	}

	req := &domain.UpdateProjectRequest{}
	if raw, ok := body["progress"]; ok {
		v, err := parseProgress(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidProgress})
			return
		}
		req.Progress = &v
	}

	p, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, "update_project", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) stats(c *gin.Context) {
	s, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		h.fail(c, "project_stats", err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgProjectNotFound})
	case errors.Is(err, domain.ErrNoProjects):
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgNoProjects})
	default:
		h.log.WithField("request_id", c.GetString("request_id")).
			WithField("operation", op).
			WithError(err).
			Error("project store failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgInternal})
	}
}

func projectID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("project_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": msgInvalidID})
		return 0, false
	}
	return id, true
}

// parseProgress accepts any JSON number. null and non-numbers are rejected.
func parseProgress(raw json.RawMessage) (float64, error) {
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return 0, domain.ErrInvalidProgress
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, domain.ErrInvalidProgress
	}
	return v, nil
}
