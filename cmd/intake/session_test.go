package main

import (
	"bytes"
	"context"
	"intake-service/internal/pkg/flows"
	"intake-service/internal/pkg/schema"
	"intake-service/internal/pkg/submission"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestSession_ContactInquiry(t *testing.T) {
	var got map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/contact", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"message":"Email sent successfully"}`)
	}))
	defer server.Close()

	def, _ := flows.Get(schema.FlowContact)
	var out bytes.Buffer
	input := script(
		"1", // San Francisco
		"b", // back to location
		"2", // Sonoma
		"3", // Other
		"Jane", "Doe", "jane@example.com", "5551234567", "Question about my retainer",
		"", // confirm summary
	)

	pipeline := submission.NewPipeline(server.URL, time.Second, zap.NewNop())
	result, err := newSession(def, pipeline, input, &out, zap.NewNop()).run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, submission.Success, result.State)

	assert.Equal(t, "sonoma", got["location"])
	assert.Equal(t, "Other", got["topic"])
	assert.Equal(t, "(555) 123-4567", got["phone"])
	assert.Equal(t, "contact", got["formType"])
	assert.Contains(t, out.String(), "Thank you! Email sent successfully")
	assert.Contains(t, out.String(), "Location: Sonoma")
}

func TestSession_ReprintsInvalidStep(t *testing.T) {
	def, _ := flows.Get(schema.FlowContact)
	var out bytes.Buffer
	input := script(
		"9", "1", // out of range, then San Francisco
		"2",
		"", "", "not-an-email", "", "Hi",
	)

	pipeline := submission.NewPipeline("http://127.0.0.1:0", time.Second, zap.NewNop())
	_, err := newSession(def, pipeline, input, &out, zap.NewNop()).run(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "! Pick a number between 1 and 3")
	assert.Contains(t, out.String(), "! Email must be a valid email")
}

func TestSession_FailedSubmissionCanBeRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		if calls == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			io.WriteString(w, `{"success":false,"error":"boom"}`)
			return
		}
		io.WriteString(w, `{"success":true,"message":"Email sent successfully"}`)
	}))
	defer server.Close()

	def, _ := flows.Get(schema.FlowContact)
	var out bytes.Buffer
	input := script("1", "3", "", "", "jane@example.com", "", "Hello", "", "y")

	pipeline := submission.NewPipeline(server.URL, time.Second, zap.NewNop())
	result, err := newSession(def, pipeline, input, &out, zap.NewNop()).run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, submission.Success, result.State)
	assert.Equal(t, 2, calls)
	assert.NotContains(t, out.String(), "boom")
}
