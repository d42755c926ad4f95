package main

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/drivers/logger"
	"intake-service/internal/app/drivers/mailer"
	"intake-service/internal/app/drivers/messaging"
	"intake-service/internal/app/services/core/dispatch"
	sharedMailer "intake-service/internal/app/services/shared/mailer"
	"intake-service/internal/app/services/shared/notificationqueue"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	queue, err := notificationqueue.NewService(rabbitMQ, log,
		internalConfig.RabbitMQ.NotificationQueue,
		internalConfig.RabbitMQ.Prefetch,
	)
	if err != nil {
		log.Fatal("Failed to set up notification queue", zap.Error(err))
	}

	sender := sharedMailer.NewGuardedSender(
		sharedMailer.NewSMTPSender(mailer.NewSMTPClient(driverConfig, log), log),
		sharedMailer.GuardConfig{
			RatePerSecond: internalConfig.Mailer.RatePerSecond,
			MaxFailures:   internalConfig.Mailer.BreakerMaxFailures,
			OpenTimeout:   internalConfig.Mailer.BreakerTimeout,
		},
		log,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := dispatch.NewWorker(log, internalConfig, queue, sender, nil)
	bootstrap := &config.Bootstrap{
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
		WorkerStop:     worker.Start(ctx),
	}

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer shutdownCancel()

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
	}
}
