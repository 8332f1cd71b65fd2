package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jokedomain "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/domain"
	jokesvc "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/service"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/repository"
	projectsvc "github.com/GoSim-25-26J-441/showcase-backend/internal/projects/service"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHome(t *testing.T, seed []domain.Project, static bool) (*gin.Engine, *projectsvc.ProjectService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, _ := test.NewNullLogger()
	projects := projectsvc.NewProjectService(repository.NewMemoryRepo(seed))
	jokes := jokesvc.NewJokeService(jokedomain.DefaultCatalog(), nil)

	r := gin.New()
	require.NoError(t, NewHomeHandler("Showcase", projects, jokes, static, log).Register(r))
	return r, projects
}

func render(r http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates()
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup(homeTemplate))
}

func TestHome_ListsProjects(t *testing.T) {
	r, _ := setupHome(t, domain.SeedProjects(), false)

	rr := render(r)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")

	body := rr.Body.String()
	for _, p := range domain.SeedProjects() {
		assert.Contains(t, body, p.Name)
	}
	assert.Contains(t, body, `data-progress="20"`)
	assert.Contains(t, body, `<option value="school">`)
	assert.NotContains(t, body, "/static/js/app.js")
}

func TestHome_ReflectsCurrentState(t *testing.T) {
	r, projects := setupHome(t, domain.SeedProjects(), true)

	v := 150.0
	_, err := projects.Update(t.Context(), 4, &domain.UpdateProjectRequest{Progress: &v})
	require.NoError(t, err)

	body := render(r).Body.String()
	assert.Contains(t, body, `data-project-id="4"`)
	assert.NotContains(t, body, `data-progress="20"`)
	assert.Contains(t, body, "/static/js/app.js")
}

func TestHome_EmptyStore(t *testing.T) {
	r, _ := setupHome(t, nil, false)

	rr := render(r)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "No projects yet.")
	assert.NotContains(t, rr.Body.String(), "stat-number")
}

func TestHome_EscapesNames(t *testing.T) {
	seed := []domain.Project{{ID: 1, Name: "<script>x</script>", Status: "active", Progress: 5}}
	r, _ := setupHome(t, seed, false)

	body := render(r).Body.String()
	assert.NotContains(t, body, "<script>x</script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
