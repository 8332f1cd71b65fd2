package domain

import "math"

// Progress bounds. Stored progress never leaves [MinProgress, MaxProgress].
const (
	MinProgress = 0
	MaxProgress = 100
)

// Status values present in the seed. Status is free text; only
// StatusCompleted and StatusActive carry meaning for Stats.
const (
	StatusActive     = "active"
	StatusCompleted  = "completed"
	StatusInProgress = "in-progress"
	StatusPlanning   = "planning"
)

// Project is a single dashboard entry. Only Progress is ever mutated.
type Project struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

// UpdateProjectRequest carries the optional fields of a project update.
// A nil Progress leaves the project unchanged.
type UpdateProjectRequest struct {
	Progress *float64
}

// Stats is the aggregate view over the whole store.
type Stats struct {
	TotalProjects   int     `json:"total_projects"`
	Completed       int     `json:"completed"`
	Active          int     `json:"active"`
	AverageProgress float64 `json:"average_progress"`
}

// ClampProgress constrains v to [MinProgress, MaxProgress] and rounds
// fractional values half away from zero.
func ClampProgress(v float64) int {
	v = math.Max(MinProgress, math.Min(MaxProgress, v))
	return int(math.Round(v))
}

// ComputeStats aggregates a snapshot of projects. The average is rounded
// to one decimal, half to even.
func ComputeStats(projects []Project) (Stats, error) {
	if len(projects) == 0 {
		return Stats{}, ErrNoProjects
	}

	var s Stats
	sum := 0
	for _, p := range projects {
		switch p.Status {
		case StatusCompleted:
			s.Completed++
		case StatusActive:
			s.Active++
		}
		sum += p.Progress
	}
	s.TotalProjects = len(projects)

	avg := float64(sum) / float64(len(projects))
	s.AverageProgress = math.RoundToEven(avg*10) / 10
	return s, nil
}
