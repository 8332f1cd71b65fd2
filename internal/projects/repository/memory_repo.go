package repository

import (
	"context"
	"sync"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
)

// MemoryRepo keeps projects in process memory. Contents are lost on restart.
type MemoryRepo struct {
	mu       sync.RWMutex
	projects []domain.Project
}

// NewMemoryRepo creates a store holding a copy of seed, in seed order.
func NewMemoryRepo(seed []domain.Project) *MemoryRepo {
	projects := make([]domain.Project, len(seed))
	copy(projects, seed)
	return &MemoryRepo{projects: projects}
}

func (r *MemoryRepo) List(_ context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

func (r *MemoryRepo) Get(_ context.Context, id int) (*domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	p := r.projects[i]
	return &p, nil
}

// SetProgress overwrites the progress of project id. The caller clamps.
func (r *MemoryRepo) SetProgress(_ context.Context, id, progress int) (*domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, domain.ErrProjectNotFound
	}
	r.projects[i].Progress = progress
	p := r.projects[i]
	return &p, nil
}

// first match wins; ids are unique in practice. Caller holds mu.
func (r *MemoryRepo) indexOf(id int) int {
	for i := range r.projects {
		if r.projects[i].ID == id {
			return i
		}
	}
	return -1
}
