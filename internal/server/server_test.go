package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/codeassist/internal/gateway"
	"github.com/ziadkadry99/codeassist/internal/llm"
	"github.com/ziadkadry99/codeassist/internal/prompt"
)

type fixedProvider struct{ content string }

func (p fixedProvider) Name() string { return "fixed" }

func (p fixedProvider) Complete(context.Context, llm.CompletionRequest) (*llm.CompletionResponse, error) {
	return &llm.CompletionResponse{Content: p.content}, nil
}

func newTestServer(cfg Config, logger zerolog.Logger) *Server {
	g := gateway.New(fixedProvider{content: " done "}, prompt.DefaultParams(), time.Second, logger)
	return New(cfg, g, logger)
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(Config{Port: 0}, zerolog.Nop())

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}

func TestOperationRoutesMounted(t *testing.T) {
	srv := newTestServer(Config{}, zerolog.Nop())

	req := httptest.NewRequest("POST", "/debug", strings.NewReader(`{"code":"x"}`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body["debuggedCode"] != "done" {
		t.Errorf("debuggedCode = %q", body["debuggedCode"])
	}
}

func TestGetOnOperationRouteNotAllowed(t *testing.T) {
	srv := newTestServer(Config{}, zerolog.Nop())

	req := httptest.NewRequest("GET", "/convert", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	srv := newTestServer(Config{}, zerolog.Nop())

	req := httptest.NewRequest("OPTIONS", "/convert", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("expected Allow-Origin *, got %q", got)
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	srv := newTestServer(Config{CORSOrigins: []string{"http://localhost:5173"}}, zerolog.Nop())

	allowed := httptest.NewRequest("OPTIONS", "/convert", nil)
	allowed.Header.Set("Origin", "http://localhost:5173")
	allowed.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, allowed)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Errorf("expected configured origin echoed, got %q", got)
	}

	denied := httptest.NewRequest("OPTIONS", "/convert", nil)
	denied.Header.Set("Origin", "http://evil.example")
	denied.Header.Set("Access-Control-Request-Method", "POST")
	w = httptest.NewRecorder()
	srv.Router().ServeHTTP(w, denied)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("expected no Allow-Origin for unlisted origin, got %q", got)
	}
}

func TestRequestLoggerWritesAccessLine(t *testing.T) {
	var buf bytes.Buffer
	srv := newTestServer(Config{}, zerolog.New(&buf))

	req := httptest.NewRequest("POST", "/quality", strings.NewReader(`{"code":`))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	var found bool
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) != nil || entry["message"] != "HTTP request" {
			continue
		}
		found = true
		if entry["path"] != "/quality" || entry["status"] != float64(http.StatusBadRequest) || entry["level"] != "warn" {
			t.Errorf("unexpected access entry %v", entry)
		}
		if entry["request_id"] == "" {
			t.Error("expected a request id")
		}
	}
	if !found {
		t.Errorf("no access log line in %q", buf.String())
	}
}

func TestShutdownBeforeStart(t *testing.T) {
	srv := newTestServer(Config{}, zerolog.Nop())
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}
