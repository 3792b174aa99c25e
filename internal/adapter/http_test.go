// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpServerAdapter pointed at serverURL + "/api".
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, BasePath: "/api", RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.MessageResponse{Message: message})
}

// ---- construction ----

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())

	require.ErrorIs(t, err, errInvalidAddress)
}

// ---- Signup ----

func TestSignup_Success(t *testing.T) {
	request := models.SignupRequest{FirstName: "Ann", LastName: "Lee", Email: "ann@example.com", Username: "ann", Password: "secret"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/signup", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var got models.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, request, got)

		writeJSON(w, http.StatusCreated, models.SignupResponse{
			Message: "Signup successful",
			User:    models.User{UserID: 1, Email: got.Email, Username: got.Username},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Signup(context.Background(), request)

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Equal(t, "ann@example.com", user.Email)
	assert.Empty(t, a.Token(), "signup does not log in")
}

func TestSignup_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusConflict, "Email or username already exists")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.SignupRequest{Email: "ann@example.com"})

	require.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "Email or username already exists")
}

// ---- Login ----

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   "header.payload.signature",
			User:    models.LoginUser{Name: "Ann", Email: "ann@example.com"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "Ann", got.User.Name)
	assert.Equal(t, "header.payload.signature", a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    any
		wantErr error
	}{
		{"bad credentials", http.StatusUnauthorized, models.MessageResponse{Message: "Invalid email or password."}, ErrUnauthorized},
		{"missing fields", http.StatusBadRequest, models.MessageResponse{Message: "Email and password are required."}, ErrBadRequest},
		{"server error", http.StatusInternalServerError, models.MessageResponse{Message: "Server error. Please try again later."}, ErrInternalServerError},
		{"success without token", http.StatusOK, models.LoginResponse{Message: "Login successful"}, ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tt.status, tt.body)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.LoginRequest{Email: "ann@example.com", Password: "x"})

			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, a.Token())
		})
	}
}

// ---- gated calls ----

func TestGatedCalls_SendBearerToken(t *testing.T) {
	var (
		mu      sync.Mutex
		gotAuth []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		mu.Unlock()
		switch {
		case r.URL.Path == "/api/dashboard":
			writeMessage(w, http.StatusOK, "Welcome back, ann@example.com")
		case r.URL.Path == "/api/entries" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, []models.Entry{})
		default:
			writeMessage(w, http.StatusOK, "Deleted")
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  tok  ")

	greeting, err := a.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Welcome back, ann@example.com", greeting)

	entries, err := a.ListEntries(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	require.NoError(t, a.DeleteEntry(context.Background(), "some-id"))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"Bearer tok", "Bearer tok", "Bearer tok"}, gotAuth)
}

func TestGatedCalls_NoTokenSendsNoHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeMessage(w, http.StatusUnauthorized, "Access denied. No token provided.")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.ListEntries(context.Background())

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "No token provided")
}

// ---- entries ----

func TestCreateEntry_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entries", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Rent","startDate":null,"endDate":null,"income":[],"expenses":[{"label":"flat","amount":500,"category":"home"}]}`, string(raw))

		writeJSON(w, http.StatusCreated, models.EntryCreatedResponse{
			Message: "Entry saved successfully",
			Entry:   models.Entry{ID: "e-1", Title: "Rent"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	entry, err := a.CreateEntry(context.Background(), models.EntryPayload{
		Title:    "Rent",
		Expenses: models.Lines[models.Expense]{{Label: "flat", Amount: 500, Category: "home"}},
	})

	require.NoError(t, err)
	assert.Equal(t, "e-1", entry.ID)
}

func TestUpdateEntry_PathAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/entries/e-1", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"title":"Utilities"}`, string(raw))

		writeJSON(w, http.StatusOK, models.Entry{ID: "e-1", Title: "Utilities"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	title := "Utilities"
	entry, err := a.UpdateEntry(context.Background(), "e-1", models.EntryPatch{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, "Utilities", entry.Title)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Entry not found")
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")
	title := "x"
	_, err := a.UpdateEntry(context.Background(), "missing", models.EntryPatch{Title: &title})

	require.ErrorIs(t, err, ErrNotFound)
}

// ---- public info ----

func TestVersionAndHealth(t *testing.T) {
	var unhealthy atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/version":
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			_, _ = w.Write([]byte("1.4.0"))
		case "/api/health":
			if !unhealthy.Load() {
				writeMessage(w, http.StatusOK, "ok")
				return
			}
			writeMessage(w, http.StatusServiceUnavailable, "Service unavailable")
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)

	version, err := a.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", version)

	require.NoError(t, a.Health(context.Background()))

	unhealthy.Store(true)
	require.ErrorIs(t, a.Health(context.Background()), ErrServiceUnavailable)
}

// ---- error mapping ----

func TestMapHTTPError_PlainBodyAndUnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Health(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
	assert.Contains(t, err.Error(), http.StatusText(http.StatusTeapot))
}

// ---- normalizeBaseURL ----

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
