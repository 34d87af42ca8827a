package web

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

type recorder struct {
	mu   sync.Mutex
	envs []*telegram.Envelope
	err  error
}

func (r *recorder) Handle(_ context.Context, env *telegram.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.envs = append(r.envs, env)
	return r.err
}

func post(t *testing.T, h http.Handler, body, secret string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	if secret != "" {
		req.Header.Set(SecretHeader, secret)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

const message = `{"update_id": 5, "message": {"message_id": 1, "chat": {"id": 2}, "text": "hi"}}`

func TestWebhook(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		header    string
		body      string
		wantCode  int
		checkFunc func(t *testing.T, rec *recorder, st Status)
	}{
		{
			name:     "accepted",
			body:     message,
			wantCode: http.StatusOK,
			checkFunc: func(t *testing.T, rec *recorder, st Status) {
				require.Len(t, rec.envs, 1)
				assert.Equal(t, int64(5), rec.envs[0].UpdateID)
				assert.Equal(t, telegram.UpdateMessage, rec.envs[0].Type)
				assert.Equal(t, int64(1), st.Received)
				assert.Equal(t, "message", st.LastType)
			},
		},
		{
			name:     "secret matches",
			secret:   "s3cret",
			header:   "s3cret",
			body:     message,
			wantCode: http.StatusOK,
			checkFunc: func(t *testing.T, rec *recorder, st Status) {
				assert.Len(t, rec.envs, 1)
			},
		},
		{
			name:     "secret mismatch",
			secret:   "s3cret",
			header:   "guess",
			body:     message,
			wantCode: http.StatusUnauthorized,
			checkFunc: func(t *testing.T, rec *recorder, st Status) {
				assert.Empty(t, rec.envs)
				assert.Equal(t, int64(1), st.Rejected)
			},
		},
		{
			name:     "secret missing",
			secret:   "s3cret",
			body:     message,
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "no update id",
			body:     `{"message": {"text": "hi"}}`,
			wantCode: http.StatusBadRequest,
			checkFunc: func(t *testing.T, rec *recorder, st Status) {
				assert.Empty(t, rec.envs)
				assert.Equal(t, int64(1), st.Rejected)
			},
		},
		{
			name:     "not json",
			body:     `<html>`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed payload is acknowledged",
			body:     `{"update_id": 6, "message": {"chat": {"id": "two"}}}`,
			wantCode: http.StatusOK,
			checkFunc: func(t *testing.T, rec *recorder, st Status) {
				assert.Empty(t, rec.envs)
				assert.Equal(t, int64(1), st.Received)
				assert.Equal(t, int64(1), st.Failed)
			},
		},
		{
			name:     "update without payload",
			body:     `{"update_id": 7, "some_future_kind": {}}`,
			wantCode: http.StatusOK,
			checkFunc: func(t *testing.T, rec *recorder, st Status) {
				require.Len(t, rec.envs, 1)
				assert.Equal(t, telegram.UpdateNone, rec.envs[0].Type)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s := NewServer(rec, tt.secret, zaptest.NewLogger(t))
			w := post(t, s.Routes(), tt.body, tt.header)
			assert.Equal(t, tt.wantCode, w.Code)
			if tt.checkFunc != nil {
				tt.checkFunc(t, rec, s.Status())
			}
		})
	}
}

func TestWebhookHandlerErrorStillAcknowledged(t *testing.T) {
	rec := &recorder{err: errors.New("boom")}
	s := NewServer(rec, "", nil)
	w := post(t, s.Routes(), message, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(1), s.Status().Failed)
}

func TestWebhookMethod(t *testing.T) {
	s := NewServer(&recorder{}, "", nil)
	w := httptest.NewRecorder()
	s.Routes().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/telegram/webhook", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestStatusAndHealth(t *testing.T) {
	s := NewServer(&recorder{}, "", nil)
	h := s.Routes()
	post(t, h, message, "")

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	var st Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, "ok", st.Status)
	assert.Equal(t, int64(1), st.Received)
	assert.False(t, st.LastUpdate.IsZero())

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, "OK", w.Body.String())
}

func TestHome(t *testing.T) {
	h := NewServer(&recorder{}, "", nil).Routes()

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?lang=de", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Bot-Status")

	w = httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s := NewServer(&recorder{}, "", zaptest.NewLogger(t))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestKeepAlive(t *testing.T) {
	var pings atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		pings.Add(1)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		KeepAlive(ctx, srv.Client(), srv.URL+"/health", 10*time.Millisecond, zaptest.NewLogger(t))
		close(done)
	}()

	require.Eventually(t, func() bool { return pings.Load() >= 2 }, 5*time.Second, 5*time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("keep-alive did not stop")
	}
}
