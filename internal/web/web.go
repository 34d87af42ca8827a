// Package web serves the Telegram webhook and the status endpoints.
package web

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/AlexYaroshenko/tgwire/internal/i18n"
	"github.com/AlexYaroshenko/tgwire/internal/telegram"
)

// SecretHeader carries the secret token registered with setWebhook.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

const maxBody = 1 << 20

// EnvelopeHandler receives every update the webhook accepts; *bot.Bot
// satisfies it.
type EnvelopeHandler interface {
	Handle(ctx context.Context, env *telegram.Envelope) error
}

type Server struct {
	handler EnvelopeHandler
	secret  string
	logger  *zap.Logger
	started time.Time

	received atomic.Int64
	rejected atomic.Int64
	failed   atomic.Int64

	mu         sync.RWMutex
	lastUpdate time.Time
	lastType   telegram.UpdateType
}

// NewServer returns a server handing updates to h. An empty secret turns
// the header check off.
func NewServer(h EnvelopeHandler, secret string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{handler: h, secret: secret, logger: logger, started: time.Now()}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleHome)
	mux.HandleFunc("/telegram/webhook", s.handleWebhook)
	mux.HandleFunc("/status", s.handleStatus)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	return mux
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      s.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("web server listening", zap.String("addr", addr))
		errc <- server.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	s.logger.Info("web server stopped")
	return nil
}

// handleWebhook answers 200 for every update that has an id, including
// malformed payloads and failed handlers, so Telegram does not redeliver
// them.
func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if s.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(SecretHeader)), []byte(s.secret)) != 1 {
		s.rejected.Add(1)
		s.logger.Warn("webhook secret mismatch", zap.String("remote", r.RemoteAddr))
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	env, err := telegram.DecodeEnvelope(body)
	if env == nil {
		s.rejected.Add(1)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.received.Add(1)
	s.mu.Lock()
	s.lastUpdate = time.Now()
	s.lastType = env.Type
	s.mu.Unlock()

	if err != nil {
		s.failed.Add(1)
		s.logger.Warn("update payload rejected",
			zap.Int64("update_id", env.UpdateID),
			zap.Stringer("type", env.Type),
			zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := s.handler.Handle(r.Context(), env); err != nil {
		s.failed.Add(1)
		s.logger.Error("handler failed",
			zap.Int64("update_id", env.UpdateID),
			zap.Stringer("type", env.Type),
			zap.Error(err))
	}
	w.WriteHeader(http.StatusOK)
}

// Status is the body of /status.
type Status struct {
	Status     string    `json:"status"`
	Received   int64     `json:"received"`
	Rejected   int64     `json:"rejected"`
	Failed     int64     `json:"failed"`
	LastUpdate time.Time `json:"last_update,omitzero"`
	LastType   string    `json:"last_type,omitempty"`
	Uptime     string    `json:"uptime"`
}

func (s *Server) Status() Status {
	s.mu.RLock()
	last, kind := s.lastUpdate, s.lastType
	s.mu.RUnlock()

	st := Status{
		Status:     "ok",
		Received:   s.received.Load(),
		Rejected:   s.rejected.Load(),
		Failed:     s.failed.Load(),
		LastUpdate: last,
		Uptime:     time.Since(s.started).Round(time.Second).String(),
	}
	if !last.IsZero() {
		st.LastType = kind.String()
	}
	return st
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.Status())
}

var homeTmpl = template.Must(template.New("home").Funcs(template.FuncMap{
	"T": i18n.T,
}).Parse(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8" />
    <title>{{T .Lang "status_title"}}</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; margin: 0; background: #f7f8fb; color: #111; }
        .container { max-width: 720px; margin: 0 auto; padding: 24px; }
        .card { background: #fff; border-radius: 12px; padding: 16px; box-shadow: 0 2px 8px rgba(0,0,0,.06); }
        .muted { color: #666; font-size: 13px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{T .Lang "status_title"}}</h1>
        <div class="card">
            <p>{{T .Lang "status_running"}} · {{.Status.Uptime}}</p>
            <p>received {{.Status.Received}} · rejected {{.Status.Rejected}} · failed {{.Status.Failed}}</p>
            {{if .Status.LastType}}<p class="muted">{{.Status.LastType}} {{.Status.LastUpdate.Format "2006-01-02 15:04:05"}}</p>{{end}}
        </div>
    </div>
</body>
</html>`))

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	view := struct {
		Lang   string
		Status Status
	}{Lang: i18n.DetectLang(r), Status: s.Status()}
	if err := homeTmpl.Execute(w, view); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// KeepAlive requests url every interval until ctx is done.
func KeepAlive(ctx context.Context, client *http.Client, url string, interval time.Duration, logger *zap.Logger) {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("keep-alive started", zap.String("url", url), zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			logger.Error("keep-alive request", zap.Error(err))
			return
		}
		resp, err := client.Do(req)
		if err != nil {
			logger.Warn("keep-alive ping failed", zap.Error(err))
			continue
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			logger.Warn("keep-alive ping returned status", zap.Int("status", resp.StatusCode))
			continue
		}
		logger.Debug("keep-alive ping ok")
	}
}
