package mailer

import (
	"context"
	"fmt"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/drivers/mailer"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"net/mail"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type smtpSender struct {
	client   *mailer.SMTPClient
	log      *zap.Logger
	sendMail sendMailFunc
}

func NewSMTPSender(client *mailer.SMTPClient, logger *zap.Logger) contracts.MessageSender {
	return &smtpSender{client: client, log: logger, sendMail: smtp.SendMail}
}

func (s *smtpSender) Name() string {
	return constvars.MailerTransportSMTP
}

func (s *smtpSender) Send(ctx context.Context, notification *requests.Notification) error {
	if err := ctx.Err(); err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.client.Host)
	}

	envelopeFrom := notification.From
	if address, err := mail.ParseAddress(notification.From); err == nil {
		envelopeFrom = address.Address
	}

	msg := fmt.Sprintf(constvars.EmailSendHTMLSubjectFormat,
		notification.From,
		strings.Join(notification.To, ", "),
		notification.ReplyTo,
		notification.Subject,
		notification.HTMLBody,
	)

	addr := fmt.Sprintf("%s:%d", s.client.Host, s.client.Port)
	if err := s.sendMail(addr, s.client.Auth, envelopeFrom, notification.To, []byte(msg)); err != nil {
		return exceptions.ErrSMTPSendEmail(err, s.client.Host)
	}

	s.log.Info("smtpSender.Send succeeded",
		zap.String(constvars.LoggingNotificationKey, notification.ID),
		zap.Strings(constvars.LoggingRecipientsKey, notification.To),
	)
	return nil
}
