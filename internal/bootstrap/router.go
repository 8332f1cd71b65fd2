package bootstrap

import (
	"fmt"
	"time"

	httpapi "github.com/GoSim-25-26J-441/showcase-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/api/http/middleware"
	jokedomain "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/domain"
	jokehttp "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/http"
	jokesvc "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/service"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/metrics"
	projecthttp "github.com/GoSim-25-26J-441/showcase-backend/internal/projects/http"
	projectsvc "github.com/GoSim-25-26J-441/showcase-backend/internal/projects/service"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/web"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	Store          *ProjectStore
	Jokes          []jokedomain.Joke
	Picker         jokesvc.Picker // nil picks with math/rand/v2
	AllowedOrigins []string
	StaticDir      string
	Metrics        *metrics.Metrics
	Log            logrus.FieldLogger
}

func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	if dep.Log == nil {
		dep.Log = logrus.StandardLogger()
	}
	if dep.Metrics == nil {
		dep.Metrics = metrics.New()
	}

	corsCfg := corsConfig(dep.AllowedOrigins)
	if err := corsCfg.Validate(); err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID(dep.Log))
	r.Use(dep.Metrics.Middleware())
	r.Use(cors.New(corsCfg))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Store.Pinger)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", dep.Metrics.Handler())

	projects := projectsvc.NewProjectService(dep.Store.Repo).
		WithProgressObserver(dep.Metrics.RecordProgressUpdate)
	jokes := jokesvc.NewJokeService(dep.Jokes, dep.Picker).
		WithDrawObserver(func(j jokedomain.Joke) { dep.Metrics.RecordJokeServed(j.Category) })

	api := r.Group("/api")
	projecthttp.New(projects, dep.Log).Register(api)
	jokehttp.New(jokes).Register(api)

	staticEnabled := dep.StaticDir != ""
	if staticEnabled {
		r.Static("/static", dep.StaticDir)
	}

	home := web.NewHomeHandler(dep.ServiceName, projects, jokes, staticEnabled, dep.Log)
	if err := home.Register(r); err != nil {
		return nil, err
	}

	return r, nil
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.HeaderRequestID},
		ExposeHeaders: []string{middleware.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
