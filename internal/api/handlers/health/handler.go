package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/MedConnect-AppointmentService/internal/api/handlers"
)

const (
	readinessTimeout = 2 * time.Second
	pingTimeout      = 1 * time.Second
)

type Handler struct {
	version      string
	dependencies []Dependency
	logger       Logger
}

func NewHandler(version string, logger Logger, dependencies ...Dependency) *Handler {
	return &Handler{
		version:      version,
		dependencies: dependencies,
		logger:       logger,
	}
}

// Liveness GET /health/live
func (h *Handler) Liveness(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, LivenessResponse{
		Status:  statusOK,
		Version: h.version,
	})
}

// Readiness GET /health/ready
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := statusOK
	deps := make(map[string]string, len(h.dependencies))

	for _, dep := range h.dependencies {
		pingCtx, pingCancel := context.WithTimeout(ctx, pingTimeout)
		err := dep.Ping(pingCtx)
		pingCancel()

		if err == nil {
			deps[dep.Name] = statusOK
			continue
		}

		h.logger.Warn("GET /health/ready - Dependency %s is down: %v", dep.Name, err)
		deps[dep.Name] = statusDown
		switch {
		case dep.Critical:
			status = statusError
		case status == statusOK:
			status = statusDegraded
		}
	}

	httpStatus := http.StatusOK
	if status == statusError {
		httpStatus = http.StatusServiceUnavailable
	}

	handlers.RespondJSON(w, httpStatus, ReadinessResponse{
		Status:       status,
		Version:      h.version,
		Dependencies: deps,
	})
}
