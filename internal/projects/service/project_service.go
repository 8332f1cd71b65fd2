package service

import (
	"context"

	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/domain"
)

// ProjectRepository is the storage the service needs. Implemented by
// repository.MemoryRepo and repository.RedisRepo.
type ProjectRepository interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int) (*domain.Project, error)
	SetProgress(ctx context.Context, id, progress int) (*domain.Project, error)
}

// ProgressObserver is told about every applied progress update.
type ProgressObserver func(projectID, progress int)

// ProjectService handles business logic for the project dashboard
type ProjectService struct {
	repo     ProjectRepository
	observer ProgressObserver
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo ProjectRepository) *ProjectService {
	return &ProjectService{repo: repo}
}

// WithProgressObserver registers fn to be called after each progress write.
func (s *ProjectService) WithProgressObserver(fn ProgressObserver) *ProjectService {
	s.observer = fn
	return s
}

// List returns every project in store order
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.repo.List(ctx)
}

// Get retrieves a project by id
func (s *ProjectService) Get(ctx context.Context, id int) (*domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Update applies req to project id. The project must exist even when req
// carries no changes.
func (s *ProjectService) Update(ctx context.Context, id int, req *domain.UpdateProjectRequest) (*domain.Project, error) {
	if req == nil || req.Progress == nil {
		return s.repo.Get(ctx, id)
	}

	progress := domain.ClampProgress(*req.Progress)
	p, err := s.repo.SetProgress(ctx, id, progress)
	if err != nil {
		return nil, err
	}

	if s.observer != nil {
		s.observer(id, p.Progress)
	}
	return p, nil
}

// Stats aggregates the current store contents
func (s *ProjectService) Stats(ctx context.Context) (domain.Stats, error) {
	projects, err := s.repo.List(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(projects)
}
