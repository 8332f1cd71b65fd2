package bootstrap

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/showcase-backend/config"
	httpapi "github.com/GoSim-25-26J-441/showcase-backend/internal/api/http"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/repository"
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/service"
	"github.com/sirupsen/logrus"
)

// ProjectStore is the seeded project backend chosen by configuration.
type ProjectStore struct {
	Repo   service.ProjectRepository
	Pinger httpapi.Pinger // nil for the in-memory store
	Close  func() error
}

// OpenProjectStore creates the configured store and seeds it. The seed is
// written on every start, so state never survives a restart.
func OpenProjectStore(ctx context.Context, cfg *config.Config, log logrus.FieldLogger) (*ProjectStore, error) {
	seed := domain.SeedProjects()

	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := OpenRedis(ctx, RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}

		repo := repository.NewRedisRepo(client, cfg.Redis.KeyPrefix)
		if err := repo.Seed(ctx, seed); err != nil {
			_ = client.Close()
			return nil, err
		}
		log.WithField("addr", cfg.Redis.Addr).WithField("projects", len(seed)).Info("project store: redis")
		return &ProjectStore{Repo: repo, Pinger: repo, Close: client.Close}, nil

	case config.BackendMemory, "":
		log.WithField("projects", len(seed)).Info("project store: memory")
		return &ProjectStore{
			Repo:  repository.NewMemoryRepo(seed),
			Close: func() error { return nil },
		}, nil

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
