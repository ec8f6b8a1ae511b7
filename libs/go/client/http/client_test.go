package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chokka/chokka-api/libs/go/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingMetrics struct {
	paths []string
}

func (m *recordingMetrics) RecordRequestDuration(_, path string, _ int, _ time.Duration) {
	m.paths = append(m.paths, path)
}
func (m *recordingMetrics) RecordRequestCount(_, path string, _ int) { m.paths = append(m.paths, path) }
func (m *recordingMetrics) RecordRequestError(_, path string)        { m.paths = append(m.paths, path) }

func TestDoRequest_RedactsSecretInPath(t *testing.T) {
	prev := logger.Log
	logger.Log = zap.NewNop()
	t.Cleanup(func() { logger.Log = prev })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botk3y/send", r.URL.Path)
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	metrics := &recordingMetrics{}
	client := NewHTTPClient(
		WithBaseURL(server.URL),
		WithRetryConfig(nil),
		WithRedactedSecret("k3y"),
		WithMetricsCollector(metrics),
	)

	_, err := client.Post(context.Background(), "/botk3y/send", map[string]string{"a": "b"})

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.StatusCode)
	assert.NotContains(t, httpErr.Error(), "k3y")
	assert.Contains(t, httpErr.URL, "/botREDACTED/send")
	for _, p := range metrics.paths {
		assert.Equal(t, "/botREDACTED/send", p)
	}
}

func TestDoRequest_RedactsTransportError(t *testing.T) {
	prev := logger.Log
	logger.Log = zap.NewNop()
	t.Cleanup(func() { logger.Log = prev })

	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client := NewHTTPClient(WithBaseURL(baseURL), WithRetryConfig(nil), WithRedactedSecret("k3y"))
	_, err := client.Get(context.Background(), "/botk3y/getMe")

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "k3y")
	assert.Contains(t, err.Error(), "REDACTED")
}

func TestRedactSecrets(t *testing.T) {
	assert.Equal(t, "/botREDACTED/x", redactSecrets("/botabc/x", []string{"abc"}))
	assert.Equal(t, "/botabc/x", redactSecrets("/botabc/x", []string{""}))
	assert.Equal(t, "/botabc/x", redactSecrets("/botabc/x", nil))
}
