package http

import (
	"github.com/GoSim-25-26J-441/showcase-backend/internal/projects/service"
	"github.com/sirupsen/logrus"
)

// Handler bundles the dependencies for projects HTTP endpoints.
type Handler struct {
	svc *service.ProjectService
	log logrus.FieldLogger
}

func New(svc *service.ProjectService, log logrus.FieldLogger) *Handler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Handler{svc: svc, log: log}
}
