// Package submission posts assembled payloads to the intake endpoints and
// turns every outcome into a message that is safe to show a patient.
package submission

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/payload"
	"intake-service/internal/pkg/schema"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Pending
	Success
	Failure
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Success:
		return "success"
	case Failure:
		return "failure"
	default:
		return "idle"
	}
}

var ErrSubmissionInFlight = errors.New("submission already in flight")

const (
	DefaultTimeout      = 15 * time.Second
	maxResponseBodySize = 64 << 10
)

type Result struct {
	State      State
	Message    string
	StatusCode int
	// Err keeps the technical cause for logs; Message is what the user sees.
	Err error
}

// Pipeline sends one submission at a time. A second Submit while the first
// is pending fails without touching the network.
type Pipeline struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
	log     *zap.Logger

	mu    sync.Mutex
	state State
}

func NewPipeline(baseURL string, timeout time.Duration, logger *zap.Logger) *Pipeline {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Pipeline{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
		client:  &http.Client{},
		log:     logger,
	}
}

// WithHTTPClient swaps the transport, mostly for tests.
func (p *Pipeline) WithHTTPClient(client *http.Client) *Pipeline {
	p.client = client
	return p
}

func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Submit posts body to the endpoint of flowType. There is no retry; the
// user decides whether to try again.
func (p *Pipeline) Submit(ctx context.Context, flowType schema.FlowType, body payload.Payload) Result {
	p.mu.Lock()
	if p.state == Pending {
		p.mu.Unlock()
		return Result{State: Failure, Message: constvars.ErrClientSubmissionInFlight, Err: ErrSubmissionInFlight}
	}
	p.state = Pending
	p.mu.Unlock()

	result := p.send(ctx, flowType, body)

	p.mu.Lock()
	defer p.mu.Unlock()
	if ctx.Err() != nil {
		// the caller walked away; nobody is left to show the result to
		p.state = Idle
		return Result{State: Idle, Err: ctx.Err()}
	}
	p.state = result.State
	return result
}

func (p *Pipeline) send(ctx context.Context, flowType schema.FlowType, body payload.Payload) Result {
	endpoint := fmt.Sprintf("%s/api/%s", p.baseURL, flowType)
	p.log.Info("Pipeline.Submit called",
		zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
		zap.String(constvars.LoggingEndpointKey, endpoint),
	)

	raw, err := json.Marshal(body)
	if err != nil {
		p.log.Error("Pipeline.Submit error marshaling payload", zap.Error(err))
		return failure(0, constvars.ErrClientDispatchFailed, err)
	}

	reqCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, constvars.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		p.log.Error("Pipeline.Submit error creating HTTP request", zap.Error(err))
		return failure(0, constvars.ErrClientDispatchFailed, err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error("Pipeline.Submit error sending HTTP request",
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
			zap.Error(err),
		)
		return failure(0, constvars.ErrClientDispatchFailed, err)
	}
	defer resp.Body.Close()

	var decoded responses.Submission
	bodyBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
	if err == nil && len(bodyBytes) > 0 {
		err = json.Unmarshal(bodyBytes, &decoded)
	}
	if err != nil {
		p.log.Warn("Pipeline.Submit could not decode response body",
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.Error(err),
		)
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		p.log.Info("Pipeline.Submit succeeded",
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return Result{State: Success, Message: decoded.Message, StatusCode: resp.StatusCode}
	case resp.StatusCode == constvars.StatusBadRequest && decoded.Error != "":
		return failure(resp.StatusCode, decoded.Error, fmt.Errorf("rejected: %s", decoded.Error))
	case resp.StatusCode == constvars.StatusTooManyRequests:
		return failure(resp.StatusCode, constvars.ErrClientTooManyRequests, errors.New("rate limited"))
	default:
		p.log.Error("Pipeline.Submit endpoint failed",
			zap.String(constvars.LoggingFlowTypeKey, flowType.String()),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
			zap.String(constvars.LoggingErrorMessageKey, decoded.Error),
		)
		return failure(resp.StatusCode, constvars.ErrClientDispatchFailed, fmt.Errorf("endpoint returned %d", resp.StatusCode))
	}
}

func failure(statusCode int, message string, err error) Result {
	return Result{State: Failure, Message: message, StatusCode: statusCode, Err: err}
}
