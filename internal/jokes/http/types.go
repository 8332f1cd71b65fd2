package http

import "github.com/GoSim-25-26J-441/showcase-backend/internal/jokes/service"

// Handler bundles the dependencies for joke endpoints.
type Handler struct {
	svc *service.JokeService
}

func New(svc *service.JokeService) *Handler {
	return &Handler{svc: svc}
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}
