package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// traceThrough runs one request with the given X-Trace-ID through
// withTraceID and returns the echoed id and the id logged by the handler.
func traceThrough(t *testing.T, incoming string) (echoed, logged string) {
	t.Helper()

	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/entries", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	logged, _ = line[logger.TraceIDFieldName].(string)

	return rr.Header().Get(traceIDHeader), logged
}

func TestWithTraceID_IncomingIDIsReused(t *testing.T) {
	for _, id := range []string{
		"my-custom-trace-id",
		"550e8400-e29b-41d4-a716-446655440000",
		"span:0af7651916cd43dd.01",
		strings.Repeat("a", maxTraceIDLen),
	} {
		t.Run(id, func(t *testing.T) {
			echoed, logged := traceThrough(t, id)

			assert.Equal(t, id, echoed)
			assert.Equal(t, id, logged)
		})
	}
}

func TestWithTraceID_UnusableIDIsReplaced(t *testing.T) {
	for name, id := range map[string]string{
		"absent":        "",
		"too long":      strings.Repeat("a", maxTraceIDLen+1),
		"log injection": "abc\n{\"level\":\"error\"}",
		"spaces":        "has spaces",
		"quotes":        `"quoted"`,
		"non-ascii":     "trace-ü",
	} {
		t.Run(name, func(t *testing.T) {
			echoed, logged := traceThrough(t, id)

			assert.NotEqual(t, id, echoed)
			assert.NoError(t, uuid.Validate(echoed), "fresh id must be a UUID, got %q", echoed)
			assert.Equal(t, echoed, logged)
		})
	}
}

func TestIsUsableTraceID(t *testing.T) {
	assert.True(t, isUsableTraceID("A-z_0.9:x"))
	assert.False(t, isUsableTraceID(""))
	assert.False(t, isUsableTraceID("a/b"))
	assert.False(t, isUsableTraceID("a\tb"))
}

func TestWithTraceID_PassesResponseThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_ConcurrentRequestsGetDistinctIDs(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	const n = 50
	ids := make([]string, n)

	var wg sync.WaitGroup
	for i := range n {
		wg.Go(func() {
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			ids[i] = rr.Header().Get(traceIDHeader)
		})
	}
	wg.Wait()

	seen := make(map[string]struct{}, n)
	for _, id := range ids {
		require.NoError(t, uuid.Validate(id))
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	originalCtx := req.Context()

	h.withTraceID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEqual(t, originalCtx, r.Context())
	})).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
