package config

import (
	"fmt"
	"intake-service/internal/pkg/utils"
	"time"
)

const (
	DefaultFromEmail     = "noreply@docrianos.com"
	DefaultToEmailSF     = "info@docrianos.com"
	DefaultToEmailSonoma = "infosonoma@docrianos.com"
)

type InternalConfig struct {
	App          App             `mapstructure:"app"`
	RateLimit    AppRateLimit    `mapstructure:"rate_limit"`
	Mailer       AppMailer       `mapstructure:"mailer"`
	Notification AppNotification `mapstructure:"notification"`
	RabbitMQ     AppRabbitMQ     `mapstructure:"rabbitmq"`
	Archive      AppArchive      `mapstructure:"archive"`
	Submission   AppSubmission   `mapstructure:"submission"`
}

type App struct {
	Env                   string   `mapstructure:"env"`
	Port                  string   `mapstructure:"port"`
	Version               string   `mapstructure:"version"`
	Address               string   `mapstructure:"address"`
	EndpointPrefix        string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	MaxRequests           int      `mapstructure:"max_requests"`
	ShutdownTimeout       int      `mapstructure:"shutdown_timeout"`
	RequestTimeoutSeconds int      `mapstructure:"request_timeout_in_seconds"`
}

// AppRateLimit is the per-client budget on intake submissions.
type AppRateLimit struct {
	Store         string        `mapstructure:"store"`
	Window        time.Duration `mapstructure:"window"`
	MaxRequests   int           `mapstructure:"max_requests"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
	KeyPrefix     string        `mapstructure:"key_prefix"`
}

type AppMailer struct {
	// Transport is one of smtp, queue or log.
	Transport          string        `mapstructure:"transport"`
	SenderName         string        `mapstructure:"sender_name"`
	RatePerSecond      int           `mapstructure:"rate_per_second"`
	BreakerMaxFailures int           `mapstructure:"breaker_max_failures"`
	BreakerTimeout     time.Duration `mapstructure:"breaker_timeout"`
}

type AppNotification struct {
	FromEmail     string `mapstructure:"from_email"`
	ToEmailSF     string `mapstructure:"to_email_sf"`
	ToEmailSonoma string `mapstructure:"to_email_sonoma"`
}

type AppRabbitMQ struct {
	NotificationQueue string        `mapstructure:"notification_queue"`
	Prefetch          int           `mapstructure:"prefetch"`
	PollInterval      time.Duration `mapstructure:"poll_interval"`
	BatchSize         int           `mapstructure:"batch_size"`
	MaxRetries        int           `mapstructure:"max_retries"`
}

type AppArchive struct {
	Enabled    bool   `mapstructure:"enabled"`
	BucketName string `mapstructure:"bucket_name"`
}

type AppSubmission struct {
	Timeout time.Duration `mapstructure:"timeout"`
	APIURL  string        `mapstructure:"api_url"`
}

var optionalNotificationVars = []struct {
	key          string
	defaultValue string
}{
	{"FROM_EMAIL", DefaultFromEmail},
	{"TO_EMAIL_SF", DefaultToEmailSF},
	{"TO_EMAIL_SONOMA", DefaultToEmailSonoma},
}

// Warnings lists the optional notification settings that fell back to their
// defaults, for logging at startup.
func (c *InternalConfig) Warnings() []string {
	var warnings []string
	for _, v := range optionalNotificationVars {
		if utils.EnvDefaulted(v.key) {
			warnings = append(warnings, fmt.Sprintf("%s is not set, using %s", v.key, v.defaultValue))
		}
	}
	return warnings
}
