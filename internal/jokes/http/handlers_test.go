package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/domain"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/service"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(catalog []domain.Joke) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	New(service.NewJokeService(catalog, nil)).Register(r.Group("/api"))
	return r
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func categories(t *testing.T, r http.Handler) []string {
	t.Helper()
	rr := get(r, "/api/joke-categories")
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body.Categories
}

func TestJokeCategories(t *testing.T) {
	r := setupRouter(domain.DefaultCatalog())

	assert.ElementsMatch(t, []string{"programming", "food", "pun", "school"}, categories(t, r))
}

func TestRandomJoke_Shape(t *testing.T) {
	r := setupRouter(domain.DefaultCatalog())
	known := categories(t, r)

	for i := 0; i < 25; i++ {
		rr := get(r, "/api/joke")
		require.Equal(t, http.StatusOK, rr.Code)

		var raw map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
		assert.Len(t, raw, 3)
		assert.NotEmpty(t, raw["setup"])
		assert.NotEmpty(t, raw["punchline"])
		assert.Contains(t, known, raw["category"])
	}
}

func TestRandomJokeByCategory(t *testing.T) {
	r := setupRouter(domain.DefaultCatalog())

	for _, c := range []string{"programming", "food", "pun", "school"} {
		rr := get(r, "/api/jokes/"+c)
		require.Equal(t, http.StatusOK, rr.Code, c)

		var j domain.Joke
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &j))
		assert.Equal(t, c, j.Category)
		assert.Contains(t, domain.DefaultCatalog(), j)
	}
}

func TestRandomJokeByCategory_NotFound(t *testing.T) {
	r := setupRouter(domain.DefaultCatalog())

	for _, c := range []string{"nonexistent", "Food"} {
		rr := get(r, "/api/jokes/"+c)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error": "No jokes found for this category"}`, rr.Body.String())
	}
}

func TestRandomJoke_EmptyCatalog(t *testing.T) {
	r := setupRouter(nil)

	rr := get(r, "/api/joke")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "No jokes available"}`, rr.Body.String())

	assert.JSONEq(t, `{"categories": []}`, get(r, "/api/joke-categories").Body.String())
}
