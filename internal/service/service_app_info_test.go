package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_Version(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		want       string
	}{
		{"semantic version", "1.0.0", "1.0.0"},
		{"build metadata", "v1.2.3-beta+build.42", "v1.2.3-beta+build.42"},
		{"placeholder", "N/A", "N/A"},
		{"surrounding whitespace", "  2.0.0\n", "2.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(config.App{Version: tt.configured}, logger.Nop())
			require.NoError(t, err)

			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestNewAppInfoService_BlankVersion(t *testing.T) {
	for _, version := range []string{"", "   ", "\t"} {
		svc, err := NewAppInfoService(config.App{Version: version}, logger.Nop())

		assert.ErrorIs(t, err, ErrVersionIsNotSpecified, "version %q", version)
		assert.Nil(t, svc)
	}
}

func TestNewAppInfoService_LogsVersion(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf).Level(zerolog.DebugLevel)}

	_, err := NewAppInfoService(config.App{Version: "3.1.4"}, log)

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"version":"3.1.4"`)
}

func TestGetAppVersion_IgnoresCancelledContext(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
