package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestClientFactory_DefaultInstance(t *testing.T) {
	f := NewFactory(Config{})
	h, err := f.Handle("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h == nil {
		t.Fatal("expected a handle for the default instance")
	}
}

func TestClientFactory_NamedInstanceHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Tenant"); got != "acme" {
			t.Errorf("expected X-Tenant=acme, got %q", got)
		}
		if r.Header.Get("X-Request-Id") == "" {
			t.Error("expected a generated X-Request-Id")
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	f := NewFactory(Config{})
	f.RegisterClient("tenant", Config{Headers: map[string]string{"X-Tenant": "acme"}})

	h, err := f.Handle("tenant")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer h.Release()

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	resp, err := h.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
}

func TestClientFactory_UnknownNameFallsBackToDefaults(t *testing.T) {
	f := NewFactory(Config{Timeout: 42 * time.Second})
	h, err := f.Handle("never-registered")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Name() != "never-registered" {
		t.Errorf("expected handle named never-registered, got %q", h.Name())
	}
}

func TestClientFactory_CachesClientPerName(t *testing.T) {
	f := NewFactory(Config{})
	h1, _ := f.Handle("a")
	h2, _ := f.Handle("a")
	if h1 == h2 {
		t.Error("each call must mint a fresh handle")
	}
	if h1.client != h2.client {
		t.Error("handles for the same name must share the underlying client")
	}
}

func TestHandle_DefaultHeaderDoesNotOverrideRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer explicit" {
			t.Errorf("request header must win over handle default, got %q", got)
		}
		w.WriteHeader(200)
	}))
	defer srv.Close()

	f := NewFactory(Config{})
	h, _ := f.Handle("")
	h.SetDefaultHeader("Authorization", "Bearer default")

	req, _ := http.NewRequest(http.MethodGet, srv.URL, nil)
	req.Header.Set("Authorization", "Bearer explicit")
	resp, err := h.Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = resp.Body.Close()
}

func TestHandle_UseAfterRelease(t *testing.T) {
	f := NewFactory(Config{})
	h, _ := f.Handle("")
	h.Release()

	req, _ := http.NewRequest(http.MethodGet, "http://127.0.0.1:1", nil)
	if _, err := h.Do(req); err == nil {
		t.Error("expected error when using a released handle")
	}
}

func TestComponent_Lifecycle(t *testing.T) {
	c := NewComponent(Config{}, map[string]Config{
		"search": {Timeout: 10 * time.Second},
	})

	if h := c.Health(context.Background()); h.Status != "unhealthy" {
		t.Errorf("expected unhealthy before Start, got %s", h.Status)
	}
	if err := c.Start(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Adapter() == nil || c.Factory() == nil {
		t.Fatal("expected adapter and factory after Start")
	}
	if h := c.Health(context.Background()); h.Status != "healthy" {
		t.Errorf("expected healthy after Start, got %s", h.Status)
	}
	if c.Name() != "httpclient" {
		t.Errorf("expected default name httpclient, got %q", c.Name())
	}
	if err := c.Stop(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
