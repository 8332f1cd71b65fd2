package domain

// SeedProjects returns a fresh copy of the startup project list.
func SeedProjects() []Project {
	return []Project{
		{ID: 1, Name: "AI Assistant", Status: StatusActive, Progress: 85},
		{ID: 2, Name: "Web Dashboard", Status: StatusCompleted, Progress: 100},
		{ID: 3, Name: "Mobile App", Status: StatusInProgress, Progress: 60},
		{ID: 4, Name: "Data Pipeline", Status: StatusPlanning, Progress: 20},
	}
}
