package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKeyPrefix = "showcase:"

	projectKeyPrefix = "project:"  // hash per project: {prefix}project:{id}
	projectListKey   = "projects" // ordered ids: {prefix}projects
)

// RedisRepo stores projects in Redis so several server processes share
// one view of progress updates. Seed overwrites whatever is stored, which
// keeps the reset-on-restart behaviour of the in-memory store.
type RedisRepo struct {
	client *redis.Client
	prefix string
}

func NewRedisRepo(client *redis.Client, prefix string) *RedisRepo {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisRepo{client: client, prefix: prefix}
}

// Seed replaces the stored projects with seed, atomically.
func (r *RedisRepo) Seed(ctx context.Context, seed []domain.Project) error {
	existing, err := r.client.LRange(ctx, r.listKey(), 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to read project ids: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range existing {
			pipe.Del(ctx, r.prefix+projectKeyPrefix+id)
		}
		pipe.Del(ctx, r.listKey())
		for _, p := range seed {
			pipe.HSet(ctx, r.projectKey(p.ID),
				"id", p.ID,
				"name", p.Name,
				"status", p.Status,
				"progress", p.Progress,
			)
			pipe.RPush(ctx, r.listKey(), p.ID)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to seed projects: %w", err)
	}
	return nil
}

func (r *RedisRepo) List(ctx context.Context) ([]domain.Project, error) {
	ids, err := r.client.LRange(ctx, r.listKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list project ids: %w", err)
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, pipe.HGetAll(ctx, r.prefix+projectKeyPrefix+id))
	}
	if len(cmds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to load projects: %w", err)
		}
	}

	out := make([]domain.Project, 0, len(cmds))
	for _, cmd := range cmds {
		fields := cmd.Val()
		if len(fields) == 0 {
			continue
		}
		p, err := decodeProject(fields)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *RedisRepo) Get(ctx context.Context, id int) (*domain.Project, error) {
	fields, err := r.client.HGetAll(ctx, r.projectKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if len(fields) == 0 {
		return nil, domain.ErrProjectNotFound
	}
	return decodeProject(fields)
}

// SetProgress overwrites the progress field. Projects are never created
// here, so a missing key is ErrProjectNotFound.
func (r *RedisRepo) SetProgress(ctx context.Context, id, progress int) (*domain.Project, error) {
	key := r.projectKey(id)

	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrProjectNotFound
	}

	if err := r.client.HSet(ctx, key, "progress", progress).Err(); err != nil {
		return nil, fmt.Errorf("failed to update progress: %w", err)
	}
	return r.Get(ctx, id)
}

// Ping reports whether Redis is reachable.
func (r *RedisRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepo) projectKey(id int) string {
	return r.prefix + projectKeyPrefix + strconv.Itoa(id)
}

func (r *RedisRepo) listKey() string {
	return r.prefix + projectListKey
}

func decodeProject(fields map[string]string) (*domain.Project, error) {
	id, err := strconv.Atoi(fields["id"])
	if err != nil {
		return nil, fmt.Errorf("failed to decode project id %q: %w", fields["id"], err)
	}
	progress, err := strconv.Atoi(fields["progress"])
	if err != nil {
		return nil, fmt.Errorf("failed to decode progress of project %d: %w", id, err)
	}
	return &domain.Project{
		ID:       id,
		Name:     fields["name"],
		Status:   fields["status"],
		Progress: progress,
	}, nil
}
