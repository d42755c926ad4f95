package config

import (
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "localhost"),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
			Port:     utils.GetEnvInt("SMTP_PORT", 2525),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                  utils.GetEnvString("APP_PORT", "8080"),
			Version:               utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:               utils.GetEnvString("APP_ADDRESS", "localhost"),
			EndpointPrefix:        utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			AllowedOrigins:        utils.GetEnvList("APP_ALLOWED_ORIGINS", []string{"https://docrianos.com", "http://localhost:3000"}),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeout:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestTimeoutSeconds: utils.GetEnvInt("APP_REQUEST_TIMEOUT_IN_SECONDS", 10),
		},
		RateLimit: AppRateLimit{
			Store:         utils.GetEnvString("RATE_LIMIT_STORE", constvars.RateLimitStoreMemory),
			Window:        utils.GetEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			MaxRequests:   utils.GetEnvInt("RATE_LIMIT_MAX_REQUESTS", 5),
			SweepInterval: utils.GetEnvDuration("RATE_LIMIT_SWEEP_INTERVAL", 5*time.Minute),
			KeyPrefix:     utils.GetEnvString("RATE_LIMIT_KEY_PREFIX", "INTAKE:RATE_LIMIT"),
		},
		Mailer: AppMailer{
			Transport:          utils.GetEnvString("MAILER_TRANSPORT", constvars.MailerTransportLog),
			SenderName:         utils.GetEnvString("MAILER_SENDER_NAME", "Dr. Riaño Orthodontics"),
			RatePerSecond:      utils.GetEnvInt("MAILER_RATE_PER_SECOND", 5),
			BreakerMaxFailures: utils.GetEnvInt("MAILER_BREAKER_MAX_FAILURES", 5),
			BreakerTimeout:     utils.GetEnvDuration("MAILER_BREAKER_TIMEOUT", 30*time.Second),
		},
		Notification: AppNotification{
			FromEmail:     utils.GetEnvString("FROM_EMAIL", DefaultFromEmail),
			ToEmailSF:     utils.GetEnvString("TO_EMAIL_SF", DefaultToEmailSF),
			ToEmailSonoma: utils.GetEnvString("TO_EMAIL_SONOMA", DefaultToEmailSonoma),
		},
		RabbitMQ: AppRabbitMQ{
			NotificationQueue: utils.GetEnvString("APP_RABBITMQ_NOTIFICATION_QUEUE", "intake_notification_queue"),
			Prefetch:          utils.GetEnvInt("APP_RABBITMQ_PREFETCH", 5),
			PollInterval:      utils.GetEnvDuration("APP_WORKER_POLL_INTERVAL", 30*time.Second),
			BatchSize:         utils.GetEnvInt("APP_WORKER_BATCH_SIZE", 10),
			MaxRetries:        utils.GetEnvInt("APP_WORKER_MAX_RETRIES", 5),
		},
		Archive: AppArchive{
			Enabled:    utils.GetEnvBool("ARCHIVE_ENABLED", false),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "intake-submissions"),
		},
		Submission: AppSubmission{
			Timeout: utils.GetEnvDuration("SUBMISSION_TIMEOUT", 15*time.Second),
			APIURL:  utils.GetEnvString("INTAKE_API_URL", "http://localhost:8080"),
		},
	}
}
