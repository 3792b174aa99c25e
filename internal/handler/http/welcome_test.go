package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestWelcome(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rr := doRequest(t, router, http.MethodGet, "/", nil, "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, msgWelcome, rr.Body.String())
}

func TestDashboard_GreetsCaller(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rr := doRequest(t, router, http.MethodGet, "/api/dashboard", nil, validToken)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Welcome back, "+testIdentity.Email, decodeMessage(t, rr))
}

func TestDashboard_RejectsMissingToken(t *testing.T) {
	router := newTestRouter(t, newTestServices())

	rr := doRequest(t, router, http.MethodGet, "/api/dashboard", nil, "")

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, msgNoToken, decodeMessage(t, rr))
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"store reachable", nil, http.StatusOK, "ok"},
		{"store down", fmt.Errorf("%w: %w", service.ErrStoreUnavailable, errors.New("dial tcp")), http.StatusServiceUnavailable, msgStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.HealthService = &mockHealthService{err: tt.err}
			router := newTestRouter(t, svcs)

			rr := doRequest(t, router, http.MethodGet, "/api/health", nil, "")

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rr))
			assert.NotContains(t, rr.Body.String(), "dial tcp")
		})
	}
}
