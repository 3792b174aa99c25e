package http

import (
	"strings"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
)

// maxBodyBytes bounds every JSON request body.
const maxBodyBytes = 1 << 20

type Handler struct {
	services *service.Services

	basePath       string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Str("base_path", cfg.BasePath).Msg("http handler created")
	return &Handler{
		services:       services,
		basePath:       strings.TrimRight(cfg.BasePath, "/"),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
