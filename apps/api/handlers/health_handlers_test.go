package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
		wantBody   string
	}{
		{name: "database reachable", pinger: stubPinger{}, wantStatus: http.StatusOK, wantBody: `{"status":"ok","database":"ok"}`},
		{name: "database down", pinger: stubPinger{err: errors.New("dial tcp: refused")}, wantStatus: http.StatusServiceUnavailable, wantBody: `{"status":"degraded","database":"unreachable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			router.GET("/health", NewHealthHandler(tt.pinger).Health)

			w := performRequest(t, router, http.MethodGet, "/health", nil)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}
