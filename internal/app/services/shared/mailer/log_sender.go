package mailer

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

// logSender only writes the notification to the log. It is the development
// transport when no mail server is configured.
type logSender struct {
	log *zap.Logger
}

func NewLogSender(logger *zap.Logger) contracts.MessageSender {
	return &logSender{log: logger}
}

func (s *logSender) Name() string {
	return constvars.MailerTransportLog
}

func (s *logSender) Send(ctx context.Context, notification *requests.Notification) error {
	s.log.Info("logSender.Send notification",
		zap.String(constvars.LoggingNotificationKey, notification.ID),
		zap.String("form_type", notification.FormType),
		zap.String("subject", notification.Subject),
		zap.Strings(constvars.LoggingRecipientsKey, notification.To),
		zap.String("text_body", notification.TextBody),
	)
	return nil
}
