package contracts

import (
	"context"
	"intake-service/internal/pkg/dto/requests"
)

// MessageSender delivers one office notification. Implementations exist for
// SMTP, the notification queue and a log-only sink.
type MessageSender interface {
	Name() string
	Send(ctx context.Context, notification *requests.Notification) error
}

// Archive keeps a copy of every dispatched notification.
type Archive interface {
	Store(ctx context.Context, notification *requests.Notification) (string, error)
}
