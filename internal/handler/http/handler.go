package http

import (
	"github.com/MKhiriev/go-task-sync/internal/logger"
	"github.com/MKhiriev/go-task-sync/internal/service"
)

// Handler serves the task service REST API on top of [service.Services].
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, log *logger.Logger) *Handler {
	child := &logger.Logger{Logger: log.With().Str("component", "http").Logger()}
	child.Info().Msg("task API handler created")

	return &Handler{
		services: services,
		logger:   child,
	}
}
