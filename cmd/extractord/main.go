package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"log/slog"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/readlee/doc-extractor/gen/proto/extraction/v1"
	"github.com/readlee/doc-extractor/internal/common"
	"github.com/readlee/doc-extractor/internal/extract"
	"github.com/readlee/doc-extractor/internal/quality"
	repo "github.com/readlee/doc-extractor/internal/repository"
	svc "github.com/readlee/doc-extractor/internal/server"
	"github.com/readlee/doc-extractor/internal/storage"
	"github.com/readlee/doc-extractor/internal/worker"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	cfg, err := common.LoadConfig(".env")
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:              cfg.Database.DSN,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	jobsRepo := repo.NewDocumentJobRepository(pool, logger)
	docsRepo := repo.NewDocumentRepository(entc, pool, logger)

	blobs, err := storage.NewFSStore(cfg.Storage.Root, logger)
	if err != nil {
		logger.Error("failed to open blob store", "root", cfg.Storage.Root, "error", err)
		os.Exit(1)
	}

	extractCfg := extract.Config{
		Pdftotext:     cfg.Extract.Pdftotext,
		Pdftoppm:      cfg.Extract.Pdftoppm,
		Tesseract:     cfg.Extract.Tesseract,
		TesseractLang: cfg.Extract.TesseractLang,
		DPI:           cfg.Extract.DPI,
		MaxPages:      cfg.Extract.MaxPages,
	}
	textEngine := extract.NewTextLayerEngine(extractCfg, logger)
	ocrEngine := extract.NewOCREngine(extractCfg, logger)

	evaluator := quality.NewEvaluator(quality.Config{
		MinCharCount: cfg.Quality.MinCharCount,
		CharsPerPage: cfg.Quality.CharsPerPage,
		MinDensity:   cfg.Quality.MinDensity,
	}, logger)

	workerPool := worker.NewPool(cfg.Worker.Concurrency, cfg.Worker.WorkerID, func(workerID string) *worker.Worker {
		return worker.New(worker.Config{
			WorkerID:        workerID,
			PollInterval:    cfg.Worker.PollInterval,
			LeaseDuration:   cfg.Worker.LeaseDuration,
			PipelineVersion: cfg.Worker.PipelineVersion,
		}, jobsRepo, docsRepo, blobs, textEngine, ocrEngine, evaluator, logger)
	}, logger)
	workerPool.Start(ctx)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	adminService := svc.NewAdminService(jobsRepo, docsRepo, cfg.Worker.MaxAttempts, logger)
	v1.RegisterExtractionAdminServiceServer(grpcServer, adminService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("extractord listening", "addr", cfg.Server.GRPCAddr, "workers", cfg.Worker.Concurrency)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	workerPool.Wait(drainCtx)
	grpcServer.GracefulStop()
}
