package grpcapi

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const CountryServiceName = "country.CountryService"

type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports SERVING while the database answers pings.
type HealthHandler struct {
	server *health.Server
	db     Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		server: health.NewServer(),
		db:     db,
	}
}

func (h *HealthHandler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.server)
}

// Check pings the database once and updates the serving status.
func (h *HealthHandler) Check(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.db.PingContext(ctx); err != nil {
		slog.Warn("database ping failed", "error", err)
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.server.SetServingStatus("", status)
	h.server.SetServingStatus(CountryServiceName, status)
	return status
}

// Watch re-checks the database every interval until ctx is done.
func (h *HealthHandler) Watch(ctx context.Context, interval time.Duration) {
	h.Check(ctx)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			h.server.Shutdown()
			return
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}
