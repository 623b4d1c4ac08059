package services

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"bizdash/internal/infrastructure"
)

// SnapshotCounter reports the size of the loaded collections.
type SnapshotCounter interface {
	Counts() map[string]int
}

// HealthService provides health check functionality
type HealthService struct {
	version   string
	snapshot  SnapshotCounter
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
	Snapshot  map[string]int         `json:"snapshot,omitempty"`
}

// NewHealthService creates a health service. snapshot may be nil.
func NewHealthService(version string, snapshot SnapshotCounter, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		snapshot:  snapshot,
		startTime: time.Now(),
		logger:    infrastructure.WithComponent(logger, "health_service"),
	}
}

// HealthCheck returns overall health status
func (hs *HealthService) HealthCheck(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   hs.version,
		Runtime: map[string]interface{}{
			"uptime":     time.Since(hs.startTime).Seconds(),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
	if hs.snapshot != nil {
		status.Snapshot = hs.snapshot.Counts()
	}

	hs.logger.DebugContext(ctx, "HealthCheck: completed",
		slog.String("status", status.Status),
		slog.String("uptime", time.Since(hs.startTime).String()))

	return status
}
