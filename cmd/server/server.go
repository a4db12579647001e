package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/rpg-targeting/internal/config"
	"github.com/KirkDiggler/rpg-targeting/internal/handlers/targeting/v1alpha1"
	"github.com/KirkDiggler/rpg-targeting/internal/logging"
	"github.com/KirkDiggler/rpg-targeting/internal/orchestrators/targeting"
	"github.com/KirkDiggler/rpg-targeting/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-targeting/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-targeting/internal/redis"
	"github.com/KirkDiggler/rpg-targeting/internal/repositories/scenes"
	"github.com/KirkDiggler/rpg-targeting/internal/schema"
	engine "github.com/KirkDiggler/rpg-targeting/internal/targeting"
)

var (
	grpcPort      int
	redisEndpoint string
	configPath    string
	logLevel      string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the targeting gRPC server. Scenes are kept in Redis when an
endpoint is configured and in memory otherwise. Send SIGHUP to reload the
targeting defaults from the config file.`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (overrides config)")
	serverCmd.Flags().StringVar(&redisEndpoint, "redis", "", "Redis endpoint, empty keeps scenes in memory (overrides config)")
	serverCmd.Flags().StringVar(&configPath, "config", "", "Path to config file")
	serverCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

// loadServerConfig reads the config file and applies flag overrides
func loadServerConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("port") {
		cfg.Server.Port = grpcPort
	}
	if cmd.Flags().Changed("redis") {
		cfg.Redis.Endpoint = redisEndpoint
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Prefix: "targeting",
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	eng, err := engine.New(&engine.Config{
		Defaults: cfg.Targeting,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	sceneRepo, closeRepo, err := newSceneRepository(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeRepo()

	validator, err := schema.NewSceneValidator()
	if err != nil {
		return fmt.Errorf("failed to create scene validator: %w", err)
	}

	service, err := targeting.NewOrchestrator(&targeting.Config{
		Engine:      eng,
		SceneRepo:   sceneRepo,
		Validator:   validator,
		IDGenerator: idgen.NewUUID(""),
	})
	if err != nil {
		return fmt.Errorf("failed to create targeting service: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		TargetingService: service,
	})
	if err != nil {
		return fmt.Errorf("failed to create targeting handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(grpc_recovery.WithRecoveryHandler(recoverPanic)),
		),
	)

	v1alpha1.RegisterTargetingServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	go watchReload(ctx, eng)

	errChan := make(chan error, 1)
	go func() {
		logger.Info("gRPC server starting", "port", cfg.Server.Port, "redis", cfg.Redis.Endpoint != "")
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutting down gRPC server")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			logger.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			logger.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newSceneRepository picks Redis when an endpoint is set and memory otherwise
func newSceneRepository(ctx context.Context, cfg config.RedisConfig) (scenes.Repository, func(), error) {
	if cfg.Endpoint == "" {
		slog.Info("Using in-memory scene repository")
		return scenes.NewInMemory(clock.New()), func() {}, nil
	}

	client, err := redisclient.NewClient(cfg.Endpoint, cfg.Options())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create redis client: %w", err)
	}
	if err := redisclient.Ping(ctx, client, 5*time.Second); err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	repo, err := scenes.NewRedisRepository(&scenes.Config{
		Client: client,
		Clock:  clock.New(),
	})
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to create scene repository: %w", err)
	}

	slog.Info("Using redis scene repository", "endpoint", cfg.Endpoint)
	return repo, func() { _ = client.Close() }, nil
}

// watchReload applies the targeting defaults from the config file on SIGHUP
func watchReload(ctx context.Context, eng *engine.Engine) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			cfg, err := config.Load(configPath)
			if err != nil {
				slog.Error("Config reload failed", "error", err)
				continue
			}
			if err := eng.SetDefaults(cfg.Targeting); err != nil {
				slog.Error("Config reload rejected", "error", err)
			}
		}
	}
}

func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func recoverPanic(p any) error {
	slog.Error("Recovered from panic", "panic", p)
	return status.Errorf(codes.Internal, "internal error")
}
