package web

import (
	"embed"
	"errors"
	"html/template"
	"net/http"

	jokesvc "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/service"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
	projectsvc "github.com/GoSim-25-26J-441/showcase-backend/internal/projects/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

const homeTemplate = "index.html"

type homeView struct {
	Title         string
	Projects      []domain.Project
	Stats         *domain.Stats
	Categories    []string
	StaticEnabled bool
}

// HomeHandler renders the dashboard page from the current store state.
type HomeHandler struct {
	title         string
	projects      *projectsvc.ProjectService
	jokes         *jokesvc.JokeService
	staticEnabled bool
	log           logrus.FieldLogger
}

func NewHomeHandler(title string, projects *projectsvc.ProjectService, jokes *jokesvc.JokeService, staticEnabled bool, log logrus.FieldLogger) *HomeHandler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &HomeHandler{
		title:         title,
		projects:      projects,
		jokes:         jokes,
		staticEnabled: staticEnabled,
		log:           log,
	}
}

// Templates parses the embedded page templates.
func Templates() (*template.Template, error) {
	return template.ParseFS(templatesFS, "templates/*.html")
}

// Register installs the templates on r and mounts GET /.
func (h *HomeHandler) Register(r *gin.Engine) error {
	tmpl, err := Templates()
	if err != nil {
		return err
	}
	r.SetHTMLTemplate(tmpl)
	r.GET("/", h.home)
	return nil
}

func (h *HomeHandler) home(c *gin.Context) {
	ctx := c.Request.Context()

	items, err := h.projects.List(ctx)
	if err != nil {
		h.log.WithField("request_id", c.GetString("request_id")).WithError(err).Error("render home")
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	view := homeView{
		Title:         h.title,
		Projects:      items,
		Categories:    h.jokes.Categories(),
		StaticEnabled: h.staticEnabled,
	}

	// Stats are computed from the same snapshot the page lists.
	if s, err := domain.ComputeStats(items); err == nil {
		view.Stats = &s
	} else if !errors.Is(err, domain.ErrNoProjects) {
		h.log.WithError(err).Warn("home stats")
	}

	c.HTML(http.StatusOK, homeTemplate, view)
}
