package mailer

import (
	"context"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/shared/notificationqueue"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
)

type enqueuer interface {
	Enqueue(ctx context.Context, message notificationqueue.Message) error
}

// queueSender hands the notification to the worker. A confirmed publish
// counts as dispatched.
type queueSender struct {
	queue enqueuer
}

func NewQueueSender(queue enqueuer) contracts.MessageSender {
	return &queueSender{queue: queue}
}

func (s *queueSender) Name() string {
	return constvars.MailerTransportQueue
}

func (s *queueSender) Send(ctx context.Context, notification *requests.Notification) error {
	return s.queue.Enqueue(ctx, notificationqueue.Message{Notification: *notification})
}
