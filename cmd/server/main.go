package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "podcast-summarizer/docs"

	"podcast-summarizer/internal/delivery/http/routers"
	"podcast-summarizer/internal/domain/repositories"
	"podcast-summarizer/internal/domain/schema"
	"podcast-summarizer/internal/infrastructure/storage"
	"podcast-summarizer/internal/infrastructure/summarizer"
	"podcast-summarizer/internal/pkg/config"
	"podcast-summarizer/internal/pkg/logger"
	"podcast-summarizer/internal/usecases"
	consts "podcast-summarizer/pkg/constants"
	apperrors "podcast-summarizer/pkg/errors"
	"podcast-summarizer/pkg/errors/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Headroom for multipart boundaries and text fields, so an oversized file reaches the
// intake size check instead of being cut off by the body limit.
const multipartOverhead = 10 * 1024 * 1024

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	zl, err := logger.New(logger.Config{
		Service:  "podcast-summarizer",
		Env:      cfg.Server.Env,
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		log.Fatalf("logger oluşturulamadı: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if err := cfg.Validate(); err != nil {
		zl.Fatal("invalid configuration", zap.Error(err))
	}
	if missing := cfg.MissingStorage(); len(missing) > 0 {
		zl.Warn("storage not configured, uploads will be rejected", zap.Strings("missing", missing))
	}
	if err := i18n.Load(cfg.Server.Locale); err != nil {
		zl.Warn("error catalog not loaded, using default messages", zap.String("locale", cfg.Server.Locale), zap.Error(err))
	}

	objectStorage, cleanupService, err := newStorage(context.Background(), cfg, zl)
	if err != nil {
		zl.Fatal("storage init failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit:    int(cfg.Upload.MaxFileSize) + multipartOverhead,
		ErrorHandler: apperrors.FiberErrorHandler(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CORSOrigins}))

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	if cfg.Storage.Driver == consts.StorageDriverLocal {
		app.Static("/files", cfg.Storage.LocalDir)
	}

	// Services
	validator := schema.New()
	uploadService := usecases.NewUploadService(objectStorage, validator, usecases.UploadOptions{
		KeyPrefix:    cfg.Upload.KeyPrefix,
		MaxFileSize:  cfg.Upload.MaxFileSize,
		Bucket:       cfg.Storage.Bucket,
		Region:       cfg.Storage.Region,
		URLMode:      cfg.Storage.URLMode,
		SignedURLTTL: cfg.Storage.SignedURLTTL,
	}, zl.Named("upload"))
	summarizeService := usecases.NewSummarizeService(summarizer.NewHTTPClient(cfg.Summarizer.BaseURL, zl.Named("summarizer")), validator)
	healthService := usecases.NewHealthService(objectStorage, cfg.MissingStorage(), zl.Named("health"))

	// Routes
	scheduler := cron.New(cron.WithSeconds())
	if err := routers.SetupUploadRoutes(app, uploadService, cleanupService, scheduler, zl.Named("upload")); err != nil {
		zl.Fatal("upload routes", zap.Error(err))
	}
	routers.SetupSummarizeRoutes(app, summarizeService, zl.Named("summarize"))
	if err := routers.SetupHealthRoutes(app, healthService, scheduler, cfg.Health.ProbeSchedule); err != nil {
		zl.Fatal("health routes", zap.Error(err), zap.String("schedule", cfg.Health.ProbeSchedule))
	}

	scheduler.Start()
	go healthService.Probe(context.Background())

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zl.Info("server starting",
		zap.String("addr", addr),
		zap.String("storage_driver", cfg.Storage.Driver),
		zap.String("url_mode", cfg.Storage.URLMode),
		zap.String("backend_url", cfg.Summarizer.BaseURL),
	)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			zl.Fatal("server başlatılamadı", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutdown signal received")

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	select {
	case <-scheduler.Stop().Done():
	case <-ctxShut.Done():
	}

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		zl.Error("server did not shut down cleanly", zap.Error(err))
		return
	}
	zl.Info("server stopped")
}

func newStorage(ctx context.Context, cfg *config.Config, zl *zap.Logger) (repositories.ObjectStorage, usecases.CleanupService, error) {
	if cfg.Storage.Driver == consts.StorageDriverLocal {
		local, err := storage.NewLocalStorage(cfg.Storage.LocalDir, cfg.Storage.PublicBaseURL)
		if err != nil {
			return nil, nil, err
		}
		return local, usecases.NewCleanupService(cfg.Storage.LocalDir, zl.Named("cleanup")), nil
	}

	s3Storage, err := storage.NewS3Storage(ctx, storage.S3Options{
		Bucket:          cfg.Storage.Bucket,
		Region:          cfg.Storage.Region,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		Endpoint:        cfg.Storage.Endpoint,
		UsePathStyle:    cfg.Storage.UsePathStyle,
	})
	if err != nil {
		return nil, nil, err
	}
	return s3Storage, nil, nil
}
