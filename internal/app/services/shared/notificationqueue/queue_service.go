package notificationqueue

import (
	"context"
	"fmt"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const deadLetterSuffix = "_dlq"

// Message is the payload stored in RabbitMQ.
type Message struct {
	Notification requests.Notification `json:"notification"`
	FailedCount  int                   `json:"failed_count"`
}

// QueuedItem is a fetched delivery and its decoded payload.
type QueuedItem struct {
	DeliveryTag uint64
	Message     Message
}

// Service publishes office notifications to a durable queue and hands them
// back to the worker with at-least-once semantics.
type Service struct {
	ch         *amqp.Channel
	log        *zap.Logger
	queue      string
	deadLetter string
	confirms   chan amqp.Confirmation
	mu         sync.Mutex
}

// NewService declares the queue and its dead letter queue, sets QoS and
// enables publisher confirms.
func NewService(conn *amqp.Connection, log *zap.Logger, queue string, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	deadLetter := queue + deadLetterSuffix
	for _, name := range []string{queue, deadLetter} {
		if _, err := ch.QueueDeclare(name, true, false, false, false, nil); err != nil {
			return nil, err
		}
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:         ch,
		log:        log,
		queue:      queue,
		deadLetter: deadLetter,
		confirms:   ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

func (s *Service) QueueName() string {
	return s.queue
}

// Enqueue publishes a message to the tail of the queue and waits for the confirm.
func (s *Service) Enqueue(ctx context.Context, message Message) error {
	s.log.Info("NotificationQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID(ctx)),
		zap.String(constvars.LoggingNotificationKey, message.Notification.ID),
	)
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, s.queue, body)
}

// EnqueueToDeadQueue parks a message that exhausted its attempts.
func (s *Service) EnqueueToDeadQueue(ctx context.Context, message Message) error {
	s.log.Warn("NotificationQueue.EnqueueToDeadQueue called",
		zap.String(constvars.LoggingNotificationKey, message.Notification.ID),
		zap.Int("failed_count", message.FailedCount),
	)
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return s.publish(ctx, s.deadLetter, body)
}

// FetchN retrieves up to n messages using basic.get without auto-ack.
func (s *Service) FetchN(ctx context.Context, n int) ([]QueuedItem, error) {
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(s.queue, false)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		var message Message
		if err := json.Unmarshal(d.Body, &message); err != nil {
			// poison message: park it rather than loop on it
			s.log.Error("NotificationQueue.FetchN invalid payload, moving to dead letter queue", zap.Error(err))
			_ = d.Ack(false)
			_ = s.publish(ctx, s.deadLetter, d.Body)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Message: message})
	}
	return items, nil
}

func (s *Service) Ack(ctx context.Context, deliveryTag uint64) error {
	return s.ch.Ack(deliveryTag, false)
}

// Nack rejects a fetched delivery. With requeue set the broker puts it back
// on its queue.
func (s *Service) Nack(ctx context.Context, deliveryTag uint64, requeue bool) error {
	return s.ch.Nack(deliveryTag, false, requeue)
}

func (s *Service) publish(ctx context.Context, queue string, body []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := s.ch.PublishWithContext(ctx, "", queue, false, false, msg); err != nil {
		return exceptions.ErrPublishMessage(err, queue)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return exceptions.ErrPublishMessage(fmt.Errorf("message not confirmed"), queue)
		}
	case <-ctx.Done():
		return exceptions.ErrPublishMessage(ctx.Err(), queue)
	}
	return nil
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return id
}
