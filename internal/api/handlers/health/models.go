package health

import "context"

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDegraded = "degraded"
	statusError    = "error"
)

// Dependency внешняя зависимость, проверяемая в readiness.
// Падение некритичной зависимости переводит сервис в degraded, а не в error.
type Dependency struct {
	Name     string
	Critical bool
	Ping     func(ctx context.Context) error
}

// LivenessResponse HTTP response model
type LivenessResponse struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
}

// ReadinessResponse HTTP response model
type ReadinessResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version,omitempty"`
	Dependencies map[string]string `json:"dependencies"`
}
