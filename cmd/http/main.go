package main

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/delivery/http/controllers"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/delivery/http/routers"
	"intake-service/internal/app/drivers/database"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/mailer"
	"intake-service/internal/app/drivers/messaging"
	"intake-service/internal/app/drivers/storage"
	"intake-service/internal/app/services/core/submissions"
	sharedMailer "intake-service/internal/app/services/shared/mailer"
	"intake-service/internal/app/services/shared/metrics"
	"intake-service/internal/app/services/shared/notificationqueue"
	"intake-service/internal/app/services/shared/ratelimiter"
	"intake-service/internal/app/services/shared/redis"
	sharedStorage "intake-service/internal/app/services/shared/storage"
	"intake-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	for _, warning := range internalConfig.Warnings() {
		log.Warn(warning)
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bootstrapingTheApp(ctx, bootstrap)

	server := &http.Server{
		Addr:              ":" + internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started", zap.String("addr", server.Addr), zap.String("env", internalConfig.App.Env))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	cancel()

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
	}
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Rate limiter
	var store contracts.RateLimitStore
	switch internalConfig.RateLimit.Store {
	case constvars.RateLimitStoreRedis:
		bootstrap.Redis = database.NewRedisClient(bootstrap.DriverConfig)
		store = ratelimiter.NewRedisStore(redis.NewRedisRepository(bootstrap.Redis), internalConfig.RateLimit.KeyPrefix)
	default:
		store = ratelimiter.NewMemoryStore()
	}
	limiter := ratelimiter.NewLimiter(store, internalConfig.RateLimit.MaxRequests, internalConfig.RateLimit.Window, log)
	bootstrap.WorkerStop = limiter.StartSweeper(ctx, internalConfig.RateLimit.SweepInterval)

	// Metrics
	collector := metrics.NewCollector()

	// Mailer
	sender := sharedMailer.NewGuardedSender(newTransport(bootstrap), sharedMailer.GuardConfig{
		RatePerSecond: internalConfig.Mailer.RatePerSecond,
		MaxFailures:   internalConfig.Mailer.BreakerMaxFailures,
		OpenTimeout:   internalConfig.Mailer.BreakerTimeout,
	}, log)

	// Archive
	var archive contracts.Archive
	if internalConfig.Archive.Enabled {
		bootstrap.Minio = storage.NewMinio(bootstrap.DriverConfig)
		if err := storage.EnsureBucket(ctx, bootstrap.Minio, internalConfig.Archive.BucketName); err != nil {
			log.Fatal("Failed to prepare archive bucket",
				zap.String(constvars.LoggingBucketKey, internalConfig.Archive.BucketName),
				zap.Error(err),
			)
		}
		archive = sharedStorage.NewMinioArchive(bootstrap.Minio, internalConfig.Archive.BucketName, log)
	}

	// Submissions
	composer := submissions.NewComposer(internalConfig.Notification.FromEmail, internalConfig.Mailer.SenderName, submissions.Offices{
		SanFrancisco: internalConfig.Notification.ToEmailSF,
		Sonoma:       internalConfig.Notification.ToEmailSonoma,
	})
	submissionUsecase := submissions.NewSubmissionUsecase(composer, sender, archive, collector, log)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            log,
		InternalConfig: internalConfig,
		RateLimiter:    limiter,
		Metrics:        collector,
	}

	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares,
		controllers.NewSubmissionController(log, submissionUsecase, internalConfig),
		controllers.NewFlowController(log, internalConfig),
		controllers.NewHealthController(collector.Handler()),
	)
}

// newTransport picks how office notifications leave the service.
func newTransport(bootstrap *config.Bootstrap) contracts.MessageSender {
	log := bootstrap.Logger
	switch bootstrap.InternalConfig.Mailer.Transport {
	case constvars.MailerTransportSMTP:
		return sharedMailer.NewSMTPSender(mailer.NewSMTPClient(bootstrap.DriverConfig, log), log)
	case constvars.MailerTransportQueue:
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(bootstrap.DriverConfig)
		queue, err := notificationqueue.NewService(bootstrap.RabbitMQ, log,
			bootstrap.InternalConfig.RabbitMQ.NotificationQueue,
			bootstrap.InternalConfig.RabbitMQ.Prefetch,
		)
		if err != nil {
			log.Fatal("Failed to set up notification queue", zap.Error(err))
		}
		return sharedMailer.NewQueueSender(queue)
	default:
		log.Warn("Mailer transport is log; notifications will not be delivered",
			zap.String(constvars.LoggingTransportKey, bootstrap.InternalConfig.Mailer.Transport))
		return sharedMailer.NewLogSender(log)
	}
}
