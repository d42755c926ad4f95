package submission

import (
	"context"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/payload"
	"intake-service/internal/pkg/schema"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var body = payload.Payload{"email": "jane@example.com", "message": "Hello", "formType": "contact"}

func respond(code int, raw string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		io.WriteString(w, raw)
	}
}

// stalledServer holds every request open until the client gives up or the
// test ends.
func stalledServer(t *testing.T) *httptest.Server {
	t.Helper()
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.CloseClientConnections()
		server.Close()
	})
	return server
}

func TestPipeline_Submit(t *testing.T) {
	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantState  State
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "success",
			handler:    respond(http.StatusOK, `{"success":true,"message":"Email sent successfully"}`),
			wantState:  Success,
			wantStatus: http.StatusOK,
			wantMsg:    "Email sent successfully",
		},
		{
			name:       "validation reason is shown",
			handler:    respond(http.StatusBadRequest, `{"success":false,"error":"Email must be a valid email","details":"email"}`),
			wantState:  Failure,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Email must be a valid email",
		},
		{
			name:       "rate limited",
			handler:    respond(http.StatusTooManyRequests, `{"success":false,"error":"Too many requests. Please try again later."}`),
			wantState:  Failure,
			wantStatus: http.StatusTooManyRequests,
			wantMsg:    constvars.ErrClientTooManyRequests,
		},
		{
			name:       "server error stays generic",
			handler:    respond(http.StatusInternalServerError, `{"success":false,"error":"smtp: 535 auth failed"}`),
			wantState:  Failure,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    constvars.ErrClientDispatchFailed,
		},
		{
			name:       "non json error body",
			handler:    respond(http.StatusBadGateway, `<html>bad gateway</html>`),
			wantState:  Failure,
			wantStatus: http.StatusBadGateway,
			wantMsg:    constvars.ErrClientDispatchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			pipeline := NewPipeline(server.URL, time.Second, zap.NewNop())
			result := pipeline.Submit(context.Background(), schema.FlowContact, body)

			assert.Equal(t, tt.wantState, result.State)
			assert.Equal(t, tt.wantStatus, result.StatusCode)
			assert.Equal(t, tt.wantMsg, result.Message)
			assert.Equal(t, tt.wantState, pipeline.State())
		})
	}
}

func TestPipeline_PostsJSONToFlowEndpoint(t *testing.T) {
	var gotPath, gotContentType string
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		respond(http.StatusOK, `{"success":true,"message":"Virtual care request submitted successfully"}`)(w, r)
	}))
	defer server.Close()

	result := NewPipeline(server.URL+"/", 0, zap.NewNop()).Submit(context.Background(), schema.FlowVirtualCare, body)
	require.Equal(t, Success, result.State)
	assert.Equal(t, "/api/virtual-care", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "jane@example.com", got["email"])
}

func TestPipeline_RejectsWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	arrived := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		respond(http.StatusOK, `{"success":true,"message":"ok"}`)(w, r)
	}))
	defer server.Close()

	pipeline := NewPipeline(server.URL, 5*time.Second, zap.NewNop())
	done := make(chan Result, 1)
	go func() {
		done <- pipeline.Submit(context.Background(), schema.FlowContact, body)
	}()

	<-arrived
	assert.Equal(t, Pending, pipeline.State())
	second := pipeline.Submit(context.Background(), schema.FlowContact, body)
	assert.Equal(t, Failure, second.State)
	assert.ErrorIs(t, second.Err, ErrSubmissionInFlight)

	close(release)
	first := <-done
	assert.Equal(t, Success, first.State)
	assert.Equal(t, Success, pipeline.State())
}

func TestPipeline_CancelledContextReturnsToIdle(t *testing.T) {
	server := stalledServer(t)

	ctx, cancel := context.WithCancel(context.Background())
	pipeline := NewPipeline(server.URL, 5*time.Second, zap.NewNop())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	result := pipeline.Submit(ctx, schema.FlowContact, body)
	assert.Equal(t, Idle, result.State)
	assert.Empty(t, result.Message)
	assert.Equal(t, Idle, pipeline.State())
}

func TestPipeline_TimeoutIsAFailure(t *testing.T) {
	server := stalledServer(t)

	pipeline := NewPipeline(server.URL, 50*time.Millisecond, zap.NewNop())
	result := pipeline.Submit(context.Background(), schema.FlowContact, body)
	assert.Equal(t, Failure, result.State)
	assert.Equal(t, constvars.ErrClientDispatchFailed, result.Message)
	assert.Error(t, result.Err)
}
