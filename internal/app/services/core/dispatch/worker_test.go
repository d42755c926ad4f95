package dispatch

import (
	"context"
	"errors"
	"intake-service/internal/app/config"
	"intake-service/internal/app/services/shared/notificationqueue"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/schema"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeQueue struct {
	mu         sync.Mutex
	pending    []notificationqueue.QueuedItem
	requeued   []notificationqueue.Message
	dead       []notificationqueue.Message
	acked      []uint64
	nacked     []uint64
	fetchErr   error
	publishErr error
}

func (q *fakeQueue) FetchN(ctx context.Context, n int) ([]notificationqueue.QueuedItem, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.fetchErr != nil {
		return nil, q.fetchErr
	}
	if n > len(q.pending) {
		n = len(q.pending)
	}
	items := q.pending[:n]
	q.pending = q.pending[n:]
	return items, nil
}

func (q *fakeQueue) Enqueue(ctx context.Context, message notificationqueue.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.publishErr != nil {
		return q.publishErr
	}
	q.requeued = append(q.requeued, message)
	return nil
}

func (q *fakeQueue) EnqueueToDeadQueue(ctx context.Context, message notificationqueue.Message) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.publishErr != nil {
		return q.publishErr
	}
	q.dead = append(q.dead, message)
	return nil
}

func (q *fakeQueue) Ack(ctx context.Context, deliveryTag uint64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.acked = append(q.acked, deliveryTag)
	return nil
}

func (q *fakeQueue) Nack(ctx context.Context, deliveryTag uint64, requeue bool) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if requeue {
		q.nacked = append(q.nacked, deliveryTag)
	}
	return nil
}

type fakeSender struct {
	mu   sync.Mutex
	err  error
	sent []string
}

func (s *fakeSender) Name() string { return "smtp" }

func (s *fakeSender) Send(ctx context.Context, notification *requests.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, notification.ID)
	return nil
}

type dispatchRecorder struct {
	transports []string
}

func (r *dispatchRecorder) ObserveSubmission(flowType schema.FlowType, outcome string) {}
func (r *dispatchRecorder) ObserveRateLimited(flowType string)                       {}
func (r *dispatchRecorder) ObserveDispatch(transport string, seconds float64) {
	r.transports = append(r.transports, transport)
}

func item(tag uint64, id string, failed int) notificationqueue.QueuedItem {
	return notificationqueue.QueuedItem{
		DeliveryTag: tag,
		Message: notificationqueue.Message{
			Notification: requests.Notification{ID: id, FormType: "contact"},
			FailedCount:  failed,
		},
	}
}

func testConfig(maxRetries int) *config.InternalConfig {
	return &config.InternalConfig{RabbitMQ: config.AppRabbitMQ{
		PollInterval: 10 * time.Millisecond,
		BatchSize:    10,
		MaxRetries:   maxRetries,
	}}
}

func TestWorker_RunOnce_SendsAndAcks(t *testing.T) {
	queue := &fakeQueue{pending: []notificationqueue.QueuedItem{item(1, "a", 0), item(2, "b", 0)}}
	sender := &fakeSender{}
	recorder := &dispatchRecorder{}
	worker := NewWorker(zap.NewNop(), testConfig(3), queue, sender, recorder)

	sent := worker.RunOnce(context.Background(), time.Now())
	assert.Equal(t, 2, sent)
	assert.Equal(t, []string{"a", "b"}, sender.sent)
	assert.Equal(t, []uint64{1, 2}, queue.acked)
	assert.Empty(t, queue.requeued)
	assert.Equal(t, []string{"smtp", "smtp"}, recorder.transports)
}

func TestWorker_RunOnce_RequeuesWithIncrementedCount(t *testing.T) {
	queue := &fakeQueue{pending: []notificationqueue.QueuedItem{item(7, "a", 0)}}
	worker := NewWorker(zap.NewNop(), testConfig(3), queue, &fakeSender{err: errors.New("421 try later")}, nil)

	assert.Zero(t, worker.RunOnce(context.Background(), time.Now()))
	require.Len(t, queue.requeued, 1)
	assert.Equal(t, 1, queue.requeued[0].FailedCount)
	assert.Equal(t, []uint64{7}, queue.acked)
	assert.Empty(t, queue.dead)
}

func TestWorker_RunOnce_MovesExhaustedMessagesToDeadQueue(t *testing.T) {
	queue := &fakeQueue{pending: []notificationqueue.QueuedItem{item(9, "a", 2)}}
	worker := NewWorker(zap.NewNop(), testConfig(3), queue, &fakeSender{err: errors.New("550 mailbox unavailable")}, nil)

	worker.RunOnce(context.Background(), time.Now())
	require.Len(t, queue.dead, 1)
	assert.Equal(t, 3, queue.dead[0].FailedCount)
	assert.Empty(t, queue.requeued)
	assert.Equal(t, []uint64{9}, queue.acked)
}

func TestWorker_RunOnce_NacksWhenRepublishFails(t *testing.T) {
	tests := map[string]notificationqueue.QueuedItem{
		"retry":       item(11, "a", 0),
		"dead letter": item(12, "b", 2),
	}
	for name, pending := range tests {
		t.Run(name, func(t *testing.T) {
			queue := &fakeQueue{
				pending:    []notificationqueue.QueuedItem{pending},
				publishErr: errors.New("channel closed"),
			}
			worker := NewWorker(zap.NewNop(), testConfig(3), queue, &fakeSender{err: errors.New("421 try later")}, nil)

			assert.Zero(t, worker.RunOnce(context.Background(), time.Now()))
			assert.Empty(t, queue.acked)
			assert.Equal(t, []uint64{pending.DeliveryTag}, queue.nacked)
			assert.Empty(t, queue.requeued)
			assert.Empty(t, queue.dead)
		})
	}
}

func TestWorker_RunOnce_FetchError(t *testing.T) {
	queue := &fakeQueue{fetchErr: errors.New("channel closed")}
	sender := &fakeSender{}
	worker := NewWorker(zap.NewNop(), testConfig(3), queue, sender, nil)

	assert.Zero(t, worker.RunOnce(context.Background(), time.Now()))
	assert.Empty(t, sender.sent)
}

func TestWorker_StartAndStop(t *testing.T) {
	queue := &fakeQueue{pending: []notificationqueue.QueuedItem{item(1, "a", 0)}}
	sender := &fakeSender{}
	worker := NewWorker(zap.NewNop(), testConfig(3), queue, sender, nil)

	stop := worker.Start(context.Background())
	assert.Eventually(t, func() bool {
		sender.mu.Lock()
		defer sender.mu.Unlock()
		return len(sender.sent) == 1
	}, time.Second, 5*time.Millisecond)

	stop()
	assert.NotPanics(t, stop)
}
