package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

// appInfoService reports facts about the running build. They are fixed at
// startup, so the value is safe to share.
type appInfoService struct {
	version string
}

// NewAppInfoService fails when cfg carries no version: cmd/server always
// fills one from the build, so an empty value means a wiring bug.
func NewAppInfoService(cfg config.App, log *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	log.Debug().Str("version", version).Msg("app info service ready")

	return appInfoService{version: version}, nil
}

func (s appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
