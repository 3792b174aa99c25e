package handler

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuth struct{ service.AuthService }

type stubEntries struct{ service.EntryService }

type stubAppInfo struct{}

func (stubAppInfo) GetAppVersion(context.Context) string { return "test" }

type stubHealth struct{}

func (stubHealth) Check(context.Context) error { return nil }

// allServices returns a bundle whose members are never called by the
// construction tests below.
func allServices() *service.Services {
	return &service.Services{
		AuthService:    stubAuth{},
		EntryService:   stubEntries{},
		AppInfoService: stubAppInfo{},
		HealthService:  stubHealth{},
	}
}

func TestNewHandlers_TransportsFollowAddresses(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Server
		wantHTTP bool
		wantGRPC bool
	}{
		{"both", config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, true, true},
		{"http only", config.Server{HTTPAddress: ":8080"}, true, false},
		{"grpc only", config.Server{GRPCAddress: ":9090"}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandlers(allServices(), tt.cfg, logger.Nop())

			require.NoError(t, err)
			assert.Equal(t, tt.wantHTTP, h.HTTP != nil)
			assert.Equal(t, tt.wantGRPC, h.GRPC != nil)
		})
	}
}

func TestNewHandlers_NoAddresses(t *testing.T) {
	h, err := NewHandlers(allServices(), config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_MissingServices(t *testing.T) {
	tests := []struct {
		name   string
		cfg    config.Server
		mutate func(*service.Services)
		nilAll bool
	}{
		{name: "nil bundle", cfg: config.Server{HTTPAddress: ":8080"}, nilAll: true},
		{name: "no auth", cfg: config.Server{HTTPAddress: ":8080"}, mutate: func(s *service.Services) { s.AuthService = nil }},
		{name: "no entries", cfg: config.Server{HTTPAddress: ":8080"}, mutate: func(s *service.Services) { s.EntryService = nil }},
		{name: "no app info", cfg: config.Server{HTTPAddress: ":8080"}, mutate: func(s *service.Services) { s.AppInfoService = nil }},
		{name: "no health for http", cfg: config.Server{HTTPAddress: ":8080"}, mutate: func(s *service.Services) { s.HealthService = nil }},
		{name: "no health for grpc", cfg: config.Server{GRPCAddress: ":9090"}, mutate: func(s *service.Services) { s.HealthService = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := allServices()
			if tt.mutate != nil {
				tt.mutate(services)
			}
			if tt.nilAll {
				services = nil
			}

			h, err := NewHandlers(services, tt.cfg, logger.Nop())

			require.ErrorIs(t, err, errMissingService)
			assert.Nil(t, h)
		})
	}
}

func TestNewHandlers_GRPCNeedsOnlyHealth(t *testing.T) {
	services := &service.Services{HealthService: stubHealth{}}

	h, err := NewHandlers(services, config.Server{GRPCAddress: ":9090"}, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, h.GRPC)
}

func TestNewHandlers_HTTPHandlerServesRoutes(t *testing.T) {
	h, err := NewHandlers(allServices(), config.Server{HTTPAddress: ":8080", BasePath: "/api"}, logger.Nop())
	require.NoError(t, err)

	routes := h.HTTP.Init().Routes()
	patterns := make([]string, 0, len(routes))
	for _, r := range routes {
		patterns = append(patterns, r.Pattern)
	}

	assert.Contains(t, patterns, "/api/entries")
	assert.Contains(t, patterns, "/api/entries/{id}")
	assert.Contains(t, patterns, "/api/login")
}
