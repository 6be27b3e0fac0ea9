package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/limiter"
)

type AlertServer struct {
	Alerts           *alerts.Alerts
	RateLimiterStore *limiter.RateLimiterStore
}

func (s *AlertServer) CheckClientLimiter(clientKey string) bool {
	return s.RateLimiterStore.Allow(clientKey)
}

// DefaultLimitedMethods are the calls that hit the database on every request.
var DefaultLimitedMethods = []string{
	ListAlertsMethod,
	MarkAsReadMethod,
	MarkAllAsReadMethod,
	SyncAlertsMethod,
}

// NewServer builds a grpc.Server with the alert service and the standard
// health service registered.
func NewServer(alertServer *AlertServer, limitedMethods []string, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	opts = append(opts, grpc.UnaryInterceptor(alertServer.CreateRateLimitInterceptor(limitedMethods)))
	server := grpc.NewServer(opts...)
	RegisterAlertServiceServer(server, alertServer)

	healthServer := health.NewServer()
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(server, healthServer)

	return server, healthServer
}
