package dispatch

import (
	"context"
	"intake-service/internal/app/config"
	"intake-service/internal/app/contracts"
	"intake-service/internal/app/services/shared/notificationqueue"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/utils"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Queue is the part of notificationqueue.Service the worker drives.
type Queue interface {
	FetchN(ctx context.Context, n int) ([]notificationqueue.QueuedItem, error)
	Enqueue(ctx context.Context, message notificationqueue.Message) error
	EnqueueToDeadQueue(ctx context.Context, message notificationqueue.Message) error
	Ack(ctx context.Context, deliveryTag uint64) error
	Nack(ctx context.Context, deliveryTag uint64, requeue bool) error
}

// Worker drains queued office notifications into a real transport with
// at-least-once semantics. Failed messages go back to the tail with their
// failure count bumped, and to the dead queue once they run out of retries.
// A delivery that cannot be republished is handed back to the broker.
type Worker struct {
	log          *zap.Logger
	queue        Queue
	sender       contracts.MessageSender
	metrics      contracts.SubmissionMetrics
	pollInterval time.Duration
	batchSize    int
	maxRetries   int
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, queue Queue, sender contracts.MessageSender, metrics contracts.SubmissionMetrics) *Worker {
	w := &Worker{
		log:          log,
		queue:        queue,
		sender:       sender,
		metrics:      metrics,
		pollInterval: cfg.RabbitMQ.PollInterval,
		batchSize:    cfg.RabbitMQ.BatchSize,
		maxRetries:   cfg.RabbitMQ.MaxRetries,
	}
	if w.pollInterval <= 0 {
		w.pollInterval = 30 * time.Second
	}
	if w.batchSize <= 0 {
		w.batchSize = 1
	}
	if w.maxRetries <= 0 {
		w.maxRetries = 1
	}
	return w
}

// Start begins the ticker loop. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(w.pollInterval)
	done := make(chan struct{})
	var once sync.Once

	w.log.Info("Dispatch worker started",
		zap.Duration("poll_interval", w.pollInterval),
		zap.String(constvars.LoggingTransportKey, w.sender.Name()),
	)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-done:
				return
			case now := <-ticker.C:
				w.RunOnce(ctx, now)
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}
}

// RunOnce processes at most one batch and reports how many messages were sent.
func (w *Worker) RunOnce(ctx context.Context, now time.Time) int {
	w.log.Debug("dispatch.worker.RunOnce tick", zap.Time("now", now))

	items, err := w.queue.FetchN(ctx, w.batchSize)
	if err != nil {
		w.log.Error("queue.FetchN error", zap.Error(err))
		return 0
	}
	if len(items) > 0 {
		w.log.Info("queue.FetchN success", zap.Int("fetched_count", len(items)))
	}

	sent := 0
	for _, item := range items {
		if w.processItem(ctx, item) {
			sent++
		}
	}
	return sent
}

func (w *Worker) processItem(ctx context.Context, item notificationqueue.QueuedItem) bool {
	msg := item.Message
	notification := msg.Notification

	start := time.Now()
	err := utils.LogOperation(w.log, "dispatch.send", notification.ID, func() error {
		return w.sender.Send(ctx, &notification)
	})
	if w.metrics != nil {
		w.metrics.ObserveDispatch(w.sender.Name(), time.Since(start).Seconds())
	}

	if err == nil {
		if ackErr := w.queue.Ack(ctx, item.DeliveryTag); ackErr != nil {
			w.log.Warn("ack failed after send",
				zap.String(constvars.LoggingNotificationKey, notification.ID),
				zap.Error(ackErr),
			)
		}
		w.log.Info("notification sent; removed from queue",
			zap.String(constvars.LoggingNotificationKey, notification.ID),
			zap.String(constvars.LoggingFormTypeKey, notification.FormType),
		)
		return true
	}

	w.requeue(ctx, item, err)
	return false
}

func (w *Worker) requeue(ctx context.Context, item notificationqueue.QueuedItem, cause error) {
	msg := item.Message
	msg.FailedCount++

	if msg.FailedCount >= w.maxRetries {
		if err := w.queue.EnqueueToDeadQueue(ctx, msg); err != nil {
			w.log.Error("enqueue to DLQ failed",
				zap.String(constvars.LoggingNotificationKey, msg.Notification.ID),
				zap.Error(err),
			)
			w.release(ctx, item)
			return
		}
		_ = w.queue.Ack(ctx, item.DeliveryTag)
		w.log.Warn("moved notification to DLQ",
			zap.String(constvars.LoggingNotificationKey, msg.Notification.ID),
			zap.Int("failed_count", msg.FailedCount),
			zap.Error(cause),
		)
		return
	}

	if err := w.queue.Enqueue(ctx, msg); err != nil {
		w.log.Error("reenqueue failed",
			zap.String(constvars.LoggingNotificationKey, msg.Notification.ID),
			zap.Error(err),
		)
		w.release(ctx, item)
		return
	}
	_ = w.queue.Ack(ctx, item.DeliveryTag)
	w.log.Info("send failed; incremented failed count and requeued",
		zap.String(constvars.LoggingNotificationKey, msg.Notification.ID),
		zap.Int("failed_count", msg.FailedCount),
		zap.Error(cause),
	)
}

func (w *Worker) release(ctx context.Context, item notificationqueue.QueuedItem) {
	if err := w.queue.Nack(ctx, item.DeliveryTag, true); err != nil {
		w.log.Error("nack failed; broker will redeliver on channel close",
			zap.String(constvars.LoggingNotificationKey, item.Message.Notification.ID),
			zap.Error(err),
		)
	}
}
