package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/api/projects/:project_id", func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, id := range []string{"1", "2", "3"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/projects/"+id, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}

	got := testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/projects/:project_id", "200"))
	assert.Equal(t, 3.0, got)
}

func TestMiddleware_Unmatched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()

	r := gin.New()
	r.Use(m.Middleware())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues("GET", "unmatched", "404")))
}

func TestDomainCounters(t *testing.T) {
	m := New()

	m.RecordProgressUpdate(4, 100)
	m.RecordProgressUpdate(4, 10)
	m.RecordJokeServed("pun")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.progressUpdates.WithLabelValues("4")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.jokesServed.WithLabelValues("pun")))
}

func TestHandler_Exposition(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	m.RecordJokeServed("food")

	r := gin.New()
	r.GET("/metrics", m.Handler())

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), `showcase_jokes_served_total{category="food"} 1`))
}
