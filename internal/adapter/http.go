package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// Routes are resolved against adapterCfg.HTTPAddress joined with
// adapterCfg.BasePath; "/" and the base path itself are the only two roots.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errInvalidAddress, err)
	}

	client := utils.NewHTTPClient(baseURL+strings.TrimRight(adapterCfg.BasePath, "/"), adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Signup implements [ServerAdapter]. It POSTs to {base}/signup.
func (h *httpServerAdapter) Signup(ctx context.Context, request models.SignupRequest) (models.User, error) {
	var result models.SignupResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/signup")
	if err != nil {
		return models.User{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return result.User, nil
}

// Login implements [ServerAdapter]. It POSTs to {base}/login and keeps the
// returned token for later gated calls.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var result models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&result).
		Post("/login")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}
	if result.Token == "" {
		return models.LoginResponse{}, fmt.Errorf("login response: %w: empty token", ErrUnauthorized)
	}

	h.SetToken(result.Token)
	h.logger.Debug().Str("email", result.User.Email).Msg("logged in")
	return result, nil
}

func (h *httpServerAdapter) Dashboard(ctx context.Context) (string, error) {
	var result models.MessageResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Get("/dashboard")
	if err != nil {
		return "", fmt.Errorf("dashboard request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.Message, nil
}

func (h *httpServerAdapter) ListEntries(ctx context.Context) ([]models.Entry, error) {
	var entries []models.Entry

	resp, err := h.authedRequest(ctx).
		SetResult(&entries).
		Get("/entries")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.Entry{}
	}
	return entries, nil
}

func (h *httpServerAdapter) CreateEntry(ctx context.Context, payload models.EntryPayload) (models.Entry, error) {
	var result models.EntryCreatedResponse

	resp, err := h.authedRequest(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/entries")
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return result.Entry, nil
}

func (h *httpServerAdapter) UpdateEntry(ctx context.Context, entryID string, patch models.EntryPatch) (models.Entry, error) {
	var entry models.Entry

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", entryID).
		SetBody(patch).
		SetResult(&entry).
		Put("/entries/{id}")
	if err != nil {
		return models.Entry{}, fmt.Errorf("update entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Entry{}, err
	}

	return entry, nil
}

func (h *httpServerAdapter) DeleteEntry(ctx context.Context, entryID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", entryID).
		Delete("/entries/{id}")
	if err != nil {
		return fmt.Errorf("delete entry request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
