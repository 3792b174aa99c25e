package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
	"github.com/MKhiriev/go-fin-tracker/internal/utils"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/require"
)

// mockAuthService implements service.AuthService for unit tests.
// A nil function field panics when called, which fails the test.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, request models.SignupRequest) (models.User, error)
	loginFn        func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.SignupRequest) (models.User, error) {
	return m.registerUserFn(ctx, request)
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	return m.loginFn(ctx, request)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockEntryService struct {
	listFn   func(ctx context.Context, ownerID int64) ([]models.Entry, error)
	createFn func(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error)
	updateFn func(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error)
	deleteFn func(ctx context.Context, ownerID int64, entryID string) error
}

func (m *mockEntryService) List(ctx context.Context, ownerID int64) ([]models.Entry, error) {
	return m.listFn(ctx, ownerID)
}

func (m *mockEntryService) Create(ctx context.Context, ownerID int64, payload models.EntryPayload) (models.Entry, error) {
	return m.createFn(ctx, ownerID, payload)
}

func (m *mockEntryService) Update(ctx context.Context, ownerID int64, entryID string, patch models.EntryPatch) (models.Entry, error) {
	return m.updateFn(ctx, ownerID, entryID, patch)
}

func (m *mockEntryService) Delete(ctx context.Context, ownerID int64, entryID string) error {
	return m.deleteFn(ctx, ownerID, entryID)
}

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockHealthService struct {
	err error
}

func (m *mockHealthService) Check(_ context.Context) error {
	return m.err
}

// testIdentity is the caller that validToken resolves to.
var testIdentity = models.IdentityClaim{UserID: 42, Email: "ann@example.com"}

const validToken = "stub-token"

// acceptingAuth returns an AuthService whose ParseToken accepts validToken only.
func acceptingAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, s string) (models.Token, error) {
			if s != validToken {
				return models.Token{}, service.ErrTokenIsInvalid
			}
			return models.Token{Identity: testIdentity}, nil
		},
	}
}

// newTestServices fills every service with a harmless default so that
// routing tests never hit a nil interface.
func newTestServices() *service.Services {
	return &service.Services{
		AuthService:    acceptingAuth(),
		EntryService:   &mockEntryService{},
		AppInfoService: &mockAppInfoService{version: "test-version"},
		HealthService:  &mockHealthService{},
	}
}

func newTestRouter(t *testing.T, svcs *service.Services) http.Handler {
	t.Helper()
	return NewHandler(svcs, config.Server{BasePath: "/api"}, logger.Nop()).Init()
}

// doRequest sends body (marshalled unless it is already a string) through h.
func doRequest(t *testing.T, h http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// injectNopLogger attaches a discarding logger the way the trace-id
// middleware attaches the request logger.
func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().Logger.WithContext(r.Context()))
}

// withIdentity builds a request that already passed the access-control gate.
func withIdentity(r *http.Request, identity models.IdentityClaim) *http.Request {
	r = injectNopLogger(r)
	return r.WithContext(utils.WithIdentity(r.Context(), identity))
}

func decodeMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp), "body: %s", rr.Body.String())
	return resp.Message
}
