package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"liyu1981.xyz/inventory-alert-service/pkg/alerts"
	"liyu1981.xyz/inventory-alert-service/pkg/common"
	"liyu1981.xyz/inventory-alert-service/pkg/config"
	"liyu1981.xyz/inventory-alert-service/pkg/db"
	"liyu1981.xyz/inventory-alert-service/pkg/events"
	alertsGrpc "liyu1981.xyz/inventory-alert-service/pkg/grpc"
	alertsHttp "liyu1981.xyz/inventory-alert-service/pkg/http"
	"liyu1981.xyz/inventory-alert-service/pkg/limiter"
	"liyu1981.xyz/inventory-alert-service/pkg/models"
	"liyu1981.xyz/inventory-alert-service/pkg/relay"
	"liyu1981.xyz/inventory-alert-service/pkg/scheduler"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to a .yaml or .toml config file")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal("Error loading .env file: ", err)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	var dbInstance *db.DB
	switch cfg.DBType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteFileDialector(cfg.DBPath))
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	case "postgres":
		dbInstance = db.GetInstance(db.UsePostgresDialector(cfg.PostgresDSN))
	default:
		log.Fatal("Unknown ALERTS_DB_TYPE: " + cfg.DBType)
	}

	logger := common.GetLogger()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := events.NewBus()

	alertsCore := alerts.Alerts{
		Db:         *dbInstance,
		Bus:        bus,
		Clock:      common.RealClock{},
		WindowDays: cfg.WindowDays,
	}
	alertsCore.WithDefaultServices()

	relays := startRelays(ctx, cfg, bus, logger)

	sched := scheduler.NewScheduler(alertsCore.Reconciler, cfg.ScanInterval, cfg.ScanHour)
	sched.Start(ctx)

	limiterInfo := zap.String("default_limiter",
		fmt.Sprintf("{\"default_rate\": %v, \"default_burst\": %v}", cfg.DefaultRate, cfg.DefaultBurst))

	var grpcServer *grpc.Server
	var healthServer *health.Server
	if grpcHostPort := strings.TrimSpace(cfg.GRPCHostPort); grpcHostPort != "" {
		listener, err := net.Listen("tcp", grpcHostPort)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}

		s, hs := alertsGrpc.NewServer(&alertsGrpc.AlertServer{
			Alerts:           &alertsCore,
			RateLimiterStore: limiter.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
		}, alertsGrpc.DefaultLimitedMethods)
		grpcServer, healthServer = s, hs
		logger.Info("gRPC server created with:", limiterInfo)

		go func() {
			logger.Info("start gRPC server on " + grpcHostPort)
			if err := s.Serve(listener); err != nil {
				logger.Error("grpc server failed to serve", zap.Error(err))
			}
		}()
	}

	rs := &alertsHttp.RestfulServer{
		Server:           gin.Default(),
		Alerts:           &alertsCore,
		Scheduler:        sched,
		RateLimiterStore: limiter.NewRateLimiterStore(rate.Limit(cfg.DefaultRate), cfg.DefaultBurst),
	}
	rs.Setup()
	logger.Info("http server created with:", limiterInfo)

	httpServer := &http.Server{
		Addr:    cfg.HTTPHostPort,
		Handler: rs.Server,
	}
	go func() {
		logger.Info("Starting HTTP server on: " + cfg.HTTPHostPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server failed to serve: %v", err)
		}
	}()

	// one pass at boot so alerts are current before the first scheduled run
	sched.Trigger(models.SyncSourceCron)

	<-ctx.Done()
	logger.Info("Shutting down")

	sched.Stop()
	for _, r := range relays {
		if err := r.Stop(); err != nil {
			logger.Warn("Failed to close relay", zap.String("relay", r.Name), zap.Error(err))
		}
	}
	if healthServer != nil {
		healthServer.Shutdown()
	}
	// closing the bus ends the SSE, websocket and gRPC streams
	bus.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.GracefulStop()
	}

	_ = logger.Sync()
}

func startRelays(ctx context.Context, cfg *config.Config, bus *events.Bus, logger *zap.Logger) []*relay.Relay {
	var relays []*relay.Relay

	add := func(name string, publisher relay.Publisher, err error) {
		if err != nil {
			logger.Error("Relay disabled", zap.String("relay", name), zap.Error(err))
			return
		}
		r := relay.NewRelay(name, bus, publisher)
		// relays keep publishing until Stop so buffered events flush after the signal
		r.Start(context.WithoutCancel(ctx))
		relays = append(relays, r)
	}

	if cfg.Relay.NATSURL != "" {
		p, err := relay.NewNATSPublisher(cfg.Relay.NATSURL, cfg.Relay.NATSSubject)
		add("nats", p, err)
	}
	if cfg.Relay.KafkaBrokers != "" {
		p, err := relay.NewKafkaPublisher(cfg.Relay.KafkaBrokers, cfg.Relay.KafkaTopic)
		add("kafka", p, err)
	}
	if cfg.Relay.RedisAddr != "" {
		p, err := relay.NewRedisPublisher(ctx, cfg.Relay.RedisAddr, cfg.Relay.RedisChannel)
		add("redis", p, err)
	}

	return relays
}
