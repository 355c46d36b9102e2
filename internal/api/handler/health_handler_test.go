package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

type stubPinger struct{ err error }

func (p stubPinger) PingContext(context.Context) error { return p.err }

func TestHealthHandler_Liveness(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")
	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthDependenciesHandler_Readiness(t *testing.T) {
	tests := []struct {
		name       string
		db, redis  Pinger
		wantCode   int
		wantRedis  string
		wantStatus string
	}{
		{"all up", stubPinger{}, stubPinger{}, http.StatusOK, "ok", "ok"},
		{"redis disabled", stubPinger{}, nil, http.StatusOK, "disabled", "ok"},
		{"redis down", stubPinger{}, stubPinger{err: errors.New("refused")}, http.StatusServiceUnavailable, "unhealthy", "degraded"},
		{"db down", stubPinger{err: errors.New("refused")}, nil, http.StatusServiceUnavailable, "disabled", "degraded"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/health/ready", "")
			if err := NewHealthDependenciesHandler(tc.db, tc.redis).Readiness(c); err != nil {
				t.Fatalf("handler error: %v", err)
			}
			if rec.Code != tc.wantCode {
				t.Fatalf("expected %d, got %d", tc.wantCode, rec.Code)
			}

			var resp readinessResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp.Status != tc.wantStatus || resp.Dependencies["redis"].Status != tc.wantRedis {
				t.Fatalf("unexpected response: %+v", resp)
			}
		})
	}
}
