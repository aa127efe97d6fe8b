package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-country-service/internal/app/background"
	"github.com/LavaJover/shvark-country-service/internal/app/setup"
	"github.com/LavaJover/shvark-country-service/internal/config"
	"github.com/LavaJover/shvark-country-service/internal/delivery/grpcapi"
	"github.com/LavaJover/shvark-country-service/internal/delivery/http/handlers"
	"github.com/LavaJover/shvark-country-service/internal/delivery/http/router"
	"github.com/LavaJover/shvark-country-service/internal/infrastructure/logger"
	"github.com/joho/godotenv"
	"google.golang.org/grpc"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	l, err := logger.New(cfg.LogConfig)
	if err != nil {
		log.Fatalf("failed to init logger: %v\n", err)
	}
	slog.SetDefault(l)

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v\n", err)
	}
	defer deps.Close()

	useCases := setup.InitializeUseCases(deps)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	background.NewBackgroundTasks(useCases.RefreshUsecase, cfg.Refresh.Interval).StartAll(ctx)

	// gRPC health
	sqlDB, err := deps.DB.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v\n", err)
	}
	grpcServer := grpc.NewServer()
	healthHandler := grpcapi.NewHealthHandler(sqlDB)
	healthHandler.Register(grpcServer)
	go healthHandler.Watch(ctx, 15*time.Second)

	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.GRPCServer.Host, cfg.GRPCServer.Port))
	if err != nil {
		log.Fatalf("failed to listen: %v", err)
	}
	go func() {
		slog.Info("gRPC server started", "addr", lis.Addr().String())
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server stopped", "error", err)
		}
	}()

	// HTTP API
	countryHandler := handlers.NewCountryHandler(useCases.CountryUsecase, useCases.RefreshUsecase, useCases.SummaryUsecase)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           router.SetupRoutes(countryHandler, deps.Registry),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		slog.Info("HTTP server started", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP shutdown failed", "error", err)
	}
	grpcServer.GracefulStop()
}
