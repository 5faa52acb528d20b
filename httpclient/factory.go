package httpclient

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// Config configures one named transport instance.
type Config struct {
	// Name identifies the instance. "" is the default instance.
	Name string `yaml:"name" mapstructure:"name"`

	// Timeout is the per-request timeout. Defaults to 30s.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`

	// Headers are default headers applied to every request sent through
	// this instance. Negotiated and custom request headers override them.
	Headers map[string]string `yaml:"headers" mapstructure:"headers"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = defaultTimeout
	}
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("httpclient: timeout must not be negative")
	}
	return nil
}

// Factory hands out transport handles by instance name. An empty name
// resolves the default instance. Each handle is scoped to a single send.
type Factory interface {
	Handle(name string) (*Handle, error)
}

// ClientFactory is the standard Factory: it keeps one *http.Client per
// named configuration and mints a fresh Handle per call.
type ClientFactory struct {
	mu       sync.Mutex
	defaults Config
	named    map[string]Config
	clients  map[string]*http.Client
}

// NewFactory creates a factory with the given default instance config.
func NewFactory(defaults Config) *ClientFactory {
	defaults.ApplyDefaults()
	return &ClientFactory{
		defaults: defaults,
		named:    make(map[string]Config),
		clients:  make(map[string]*http.Client),
	}
}

// RegisterClient registers a named instance configuration. Re-registering a
// name replaces its config; the cached client is rebuilt on next use.
func (f *ClientFactory) RegisterClient(name string, cfg Config) {
	cfg.Name = name
	cfg.ApplyDefaults()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.named[name] = cfg
	delete(f.clients, name)
}

// Handle returns a fresh handle for the named instance, or the default
// instance when name is empty. Unknown names fall back to the default
// configuration under that name.
func (f *ClientFactory) Handle(name string) (*Handle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	cfg, ok := f.named[name]
	if !ok {
		cfg = f.defaults
		cfg.Name = name
	}

	client, ok := f.clients[name]
	if !ok {
		client = &http.Client{Timeout: cfg.Timeout}
		f.clients[name] = client
	}

	h := &Handle{name: name, client: client, header: make(http.Header, len(cfg.Headers)+1)}
	for k, v := range cfg.Headers {
		h.header.Set(k, v)
	}
	h.header.Set("X-Request-Id", uuid.NewString())
	return h, nil
}

// Close releases idle connections held by all cached clients.
func (f *ClientFactory) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.clients {
		c.CloseIdleConnections()
	}
	return nil
}

// Handle sends a single request through one transport instance. It carries
// per-call default headers (instance defaults, request ID, authorization)
// that apply only where the request has not set the header itself. A handle
// is not safe for concurrent use and must be released after the call.
type Handle struct {
	name     string
	client   *http.Client
	header   http.Header
	released bool
}

// Name returns the instance name the handle was minted for.
func (h *Handle) Name() string { return h.name }

// SetDefaultHeader sets a default header for this call.
func (h *Handle) SetDefaultHeader(key, value string) {
	h.header.Set(key, value)
}

// Do sends the request, filling in the handle's default headers for any
// key the request leaves unset.
func (h *Handle) Do(req *http.Request) (*http.Response, error) {
	if h.released {
		return nil, fmt.Errorf("httpclient: handle for %q used after release", h.name)
	}
	for k, vs := range h.header {
		if req.Header.Get(k) == "" && len(vs) > 0 {
			req.Header.Set(k, vs[0])
		}
	}
	return h.client.Do(req)
}

// Release marks the handle as spent. The underlying client is shared and
// stays usable; releasing only ends this handle's lifetime.
func (h *Handle) Release() {
	h.released = true
	h.header = nil
}
