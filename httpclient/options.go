package httpclient

import (
	"github.com/kbukum/reqkit/auth"
	"github.com/kbukum/reqkit/codec"
)

// Options holds all per-request configuration: target client identity, body
// payload, auth token, headers, serialization format and text encoding.
// Options values are immutable once built; the dispatch pipeline reads them
// but never mutates them, so a value is safe to share across goroutines.
// Build a fresh Options per logical request with an OptionsBuilder.
type Options struct {
	client      string
	body        any
	bearerToken string
	tokenSource auth.TokenSource
	headers     map[string]string
	format      codec.Format
	encoding    codec.Encoding
}

// Client returns the named transport instance to use; "" means the default.
func (o Options) Client() string { return o.client }

// Body returns the request payload; nil means the request carries no content.
func (o Options) Body() any { return o.body }

// BearerToken returns the literal bearer token, if configured.
func (o Options) BearerToken() string { return o.bearerToken }

// TokenSource returns the dynamic token source, if configured. When both a
// literal token and a source are set, the source wins.
func (o Options) TokenSource() auth.TokenSource { return o.tokenSource }

// Headers returns a copy of the custom headers.
func (o Options) Headers() map[string]string {
	if o.headers == nil {
		return nil
	}
	out := make(map[string]string, len(o.headers))
	for k, v := range o.headers {
		out[k] = v
	}
	return out
}

// Format returns the active serialization format.
func (o Options) Format() codec.Format { return o.format }

// Encoding returns the text encoding used for JSON framing.
func (o Options) Encoding() codec.Encoding { return o.encoding }

// OptionsBuilder accumulates request options through a fluent chain. Every
// setter mutates the same draft and returns the builder; Build produces the
// immutable Options value handed to the pipeline.
type OptionsBuilder struct {
	opts Options
}

// NewOptions creates a builder with defaults: default client, no body, no
// auth, JSON format with camelCase keys, UTF-8 framing.
func NewOptions() *OptionsBuilder {
	return &OptionsBuilder{opts: Options{format: codec.Default()}}
}

// WithClient selects the named transport instance to send through.
func (b *OptionsBuilder) WithClient(name string) *OptionsBuilder {
	b.opts.client = name
	return b
}

// WithBody sets the request payload. It is serialized at send time using
// the active format.
func (b *OptionsBuilder) WithBody(body any) *OptionsBuilder {
	b.opts.body = body
	return b
}

// WithBearerToken sets a literal bearer token; the pipeline adds
// "Authorization: Bearer <token>" to the transport handle.
func (b *OptionsBuilder) WithBearerToken(token string) *OptionsBuilder {
	b.opts.bearerToken = token
	return b
}

// WithTokenSource sets a dynamic token source consulted at send time.
// It takes precedence over a literal bearer token.
func (b *OptionsBuilder) WithTokenSource(ts auth.TokenSource) *OptionsBuilder {
	b.opts.tokenSource = ts
	return b
}

// WithHeaders replaces the custom headers wholesale.
func (b *OptionsBuilder) WithHeaders(headers map[string]string) *OptionsBuilder {
	b.opts.headers = headers
	return b
}

// AddHeader inserts or overwrites a single header entry.
func (b *OptionsBuilder) AddHeader(key, value string) *OptionsBuilder {
	if b.opts.headers == nil {
		b.opts.headers = make(map[string]string)
	}
	b.opts.headers[key] = value
	return b
}

// WithJSONSettings selects JSON as the active format with the given
// settings, discarding any MessagePack settings.
func (b *OptionsBuilder) WithJSONSettings(s codec.JSONSettings) *OptionsBuilder {
	b.opts.format = codec.JSON(s)
	return b
}

// WithMessagePackSettings selects MessagePack as the active format with the
// given settings, discarding any JSON settings. The zero settings value
// means format defaults.
func (b *OptionsBuilder) WithMessagePackSettings(s codec.MessagePackSettings) *OptionsBuilder {
	b.opts.format = codec.MessagePack(s)
	return b
}

// WithEncoding sets the text encoding used for JSON framing.
func (b *OptionsBuilder) WithEncoding(enc codec.Encoding) *OptionsBuilder {
	b.opts.encoding = enc
	return b
}

// Build returns the accumulated options as an immutable value. The headers
// map is copied so later builder mutations cannot leak into built values.
func (b *OptionsBuilder) Build() Options {
	out := b.opts
	if b.opts.headers != nil {
		out.headers = make(map[string]string, len(b.opts.headers))
		for k, v := range b.opts.headers {
			out.headers[k] = v
		}
	}
	return out
}
