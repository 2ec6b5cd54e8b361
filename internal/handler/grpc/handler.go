// Package grpc exposes the standard gRPC health service of the remote store.
// The serving status follows the reachability of the records database.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-records-sync/internal/logger"
	"github.com/MKhiriev/go-records-sync/internal/service"
)

// RecordsServiceName is the health service name reported for the records
// API. The empty name reports the overall server status.
const RecordsServiceName = "records.v1.Records"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Both statuses start as NOT_SERVING until
// the first [Handler.Check].
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Check pings the records database and updates the serving status.
func (h *Handler) Check(ctx context.Context) error {
	if err := h.services.RecordService.Ping(ctx); err != nil {
		h.logger.Err(err).Str("func", "*Handler.Check").Msg("records database is unreachable")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return err
	}

	h.setStatus(healthpb.HealthCheckResponse_SERVING)
	return nil
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(RecordsServiceName, status)
}
