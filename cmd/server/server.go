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

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/KirkDiggler/monster-api/internal/handlers/tuxemon/v1alpha1"
	"github.com/KirkDiggler/monster-api/internal/orchestrators/itemeffect"
	"github.com/KirkDiggler/monster-api/internal/orchestrators/journal"
	"github.com/KirkDiggler/monster-api/internal/pkg/clock"
	"github.com/KirkDiggler/monster-api/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-api/internal/repositories/monster"
	"github.com/KirkDiggler/monster-api/internal/repositories/technique"
	"github.com/KirkDiggler/monster-api/internal/repositories/tuxepedia"
	"github.com/KirkDiggler/monster-api/internal/selector"
)

var (
	grpcPort    int
	serverDBDir string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long:  `Start the monster API gRPC server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port (defaults to MONSTER_API_GRPC_PORT or 50051)")
	serverCmd.Flags().StringVar(&serverDBDir, "db-dir", "", "Tuxemon db directory; seeds Redis on start (defaults to MONSTER_API_DB_DIR)")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	port := cfg.GRPC.Port
	if grpcPort != 0 {
		port = grpcPort
	}

	redisClient, err := connectRedis(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = redisClient.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	techniqueRepo, err := technique.NewRedis(&technique.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create technique repository: %w", err)
	}
	monsterRepo, err := monster.NewRedis(&monster.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create monster repository: %w", err)
	}
	tuxepediaRepo, err := tuxepedia.NewRedis(&tuxepedia.RedisConfig{Client: redisClient})
	if err != nil {
		return fmt.Errorf("failed to create tuxepedia repository: %w", err)
	}

	techniques, monsters, err := loadCatalogs(ctx, dbDirOrConfig(serverDBDir), techniqueRepo)
	if err != nil {
		return err
	}

	techniqueSelector, err := selector.New(&selector.Config{Techniques: techniques})
	if err != nil {
		return fmt.Errorf("failed to create selector: %w", err)
	}

	eventBus := events.NewBus()
	eventBus.SubscribeFunc(itemeffect.EventTechniqueLearned, 0, func(ctx context.Context, e events.Event) error {
		learned, _ := e.Context().Get(itemeffect.ContextKeyTechnique)
		slog.DebugContext(ctx, "Event published",
			"event", e.Type(),
			"monster_id", e.Source().GetID(),
			"technique", learned)
		return nil
	})

	itemEffects, err := itemeffect.NewOrchestrator(&itemeffect.Config{
		MonsterRepo: monsterRepo,
		Selector:    techniqueSelector,
		EventBus:    eventBus,
		IDGenerator: idgen.NewUUID("learn"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create item effect orchestrator: %w", err)
	}

	journalService, err := journal.NewOrchestrator(&journal.Config{
		Monsters:      monsters,
		TuxepediaRepo: tuxepediaRepo,
	})
	if err != nil {
		return fmt.Errorf("failed to create journal orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		Techniques:  techniques,
		Selector:    techniqueSelector,
		ItemEffects: itemEffects,
		Journal:     journalService,
	})
	if err != nil {
		return fmt.Errorf("failed to create technique handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	logger := grpc_logging.LoggerFunc(logFunc)
	recoveryHandler := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "Recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logger),
			grpc_recovery.UnaryServerInterceptor(recoveryHandler),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logger),
			grpc_recovery.StreamServerInterceptor(recoveryHandler),
		),
	)

	v1alpha1.RegisterTechniqueServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)

	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		slog.Info("gRPC server starting", "port", port)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutting down gRPC server...")
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
			slog.Warn("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			slog.Info("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	slog.Log(ctx, slog.Level(level), msg, fields...)
}
