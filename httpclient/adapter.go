package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/kbukum/reqkit/codec"
	"github.com/kbukum/reqkit/logger"
	"github.com/kbukum/reqkit/observability"
)

// RawResponse is the untyped result of a dispatch: status code, flattened
// headers and the full body. Non-success statuses are returned here, not as
// errors — the adapter performs no status-code interpretation.
type RawResponse struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, first value per key.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// IsSuccess returns true if the status code is 2xx.
func (r *RawResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Adapter is the send/serialize/deserialize pipeline. It acquires a
// transport handle per call, serializes the body per the options' format,
// sets content-negotiation headers, dispatches, and shapes the response.
// An Adapter is safe for concurrent use.
type Adapter struct {
	factory Factory
	log     *logger.Logger
}

// AdapterOption customizes an Adapter.
type AdapterOption func(*Adapter)

// WithLogger sets the logger used for dispatch logging.
func WithLogger(l *logger.Logger) AdapterOption {
	return func(a *Adapter) { a.log = l }
}

// NewAdapter creates an adapter dispatching through the given factory.
func NewAdapter(factory Factory, opts ...AdapterOption) *Adapter {
	a := &Adapter{factory: factory}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		a.log = logger.GetGlobalLogger().WithComponent("httpclient")
	}
	return a
}

// Send dispatches one request and returns the raw response. The handle is
// acquired fresh for the call and released on every exit path. Cancelling
// ctx aborts the in-flight call and surfaces as an ErrCodeCanceled error.
func (a *Adapter) Send(ctx context.Context, method, url string, opts Options) (*RawResponse, error) {
	ctx, span := observability.StartSpan(ctx, observability.SpanSend)
	defer span.End()
	observability.SetSpanAttribute(ctx, observability.AttrHTTPMethod, method)
	observability.SetSpanAttribute(ctx, observability.AttrHTTPURL, url)

	resp, err := a.send(ctx, method, url, opts)
	if err != nil {
		observability.SetSpanError(ctx, err)
		a.log.WithError(err).Debug("dispatch failed", logger.Fields(
			logger.FieldOperation, method,
			"url", url,
		))
		return nil, err
	}
	observability.SetSpanAttribute(ctx, observability.AttrHTTPStatus, resp.StatusCode)
	return resp, nil
}

func (a *Adapter) send(ctx context.Context, method, url string, opts Options) (*RawResponse, error) {
	handle, err := a.factory.Handle(opts.client)
	if err != nil {
		return nil, NewTransportError(err)
	}
	defer handle.Release()

	token, err := a.resolveToken(ctx, opts)
	if err != nil {
		return nil, err
	}
	if token != "" {
		handle.SetDefaultHeader("Authorization", "Bearer "+token)
	}

	bodyReader, contentType, err := encodeBody(opts)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, NewTransportError(err)
	}

	// Content negotiation: Accept always mirrors the active format so the
	// server replies in the format the caller can decode.
	req.Header.Set("Accept", opts.format.MediaType())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Custom headers merge last and win on collision.
	for k, v := range opts.headers {
		req.Header.Set(k, v)
	}

	a.log.Debug("dispatching request", logger.Fields(
		logger.FieldOperation, method,
		"url", url,
		"client", opts.client,
		"format", opts.format.Kind().String(),
	))

	resp, err := handle.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewCanceledError(ctx.Err())
		}
		return nil, NewTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewCanceledError(ctx.Err())
		}
		return nil, NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	return &RawResponse{
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
		Body:       body,
	}, nil
}

// resolveToken picks the bearer token: a token source wins over a literal.
func (a *Adapter) resolveToken(ctx context.Context, opts Options) (string, error) {
	if opts.tokenSource != nil {
		token, err := opts.tokenSource.Token(ctx)
		if err != nil {
			return "", fmt.Errorf("httpclient: resolve bearer token: %w", err)
		}
		return token, nil
	}
	return opts.bearerToken, nil
}

// encodeBody serializes the options' body per the active format. A nil body
// yields no reader and no content type.
func encodeBody(opts Options) (io.Reader, string, error) {
	if opts.body == nil {
		return nil, "", nil
	}
	data, err := opts.format.Marshal(opts.body)
	if err != nil {
		return nil, "", NewEncodeError(err)
	}

	contentType := opts.format.MediaType()
	if opts.format.Kind() == codec.KindJSON {
		data, err = opts.encoding.Encode(data)
		if err != nil {
			return nil, "", NewEncodeError(err)
		}
		if cs := opts.encoding.Charset(); cs != "" {
			contentType += "; charset=" + cs
		}
	}
	return bytes.NewReader(data), contentType, nil
}

// sendTyped dispatches and decodes the response body with the same format
// that was negotiated on the way out. Empty bodies yield a nil value.
func sendTyped[T any](ctx context.Context, a *Adapter, method, url string, opts Options) (*T, error) {
	resp, err := a.Send(ctx, method, url, opts)
	if err != nil {
		return nil, err
	}
	if len(resp.Body) == 0 {
		return nil, nil
	}

	data := resp.Body
	if opts.format.Kind() == codec.KindJSON {
		if data, err = opts.encoding.Decode(data); err != nil {
			return nil, NewDecodeError(err)
		}
	}

	var out T
	if err := opts.format.Unmarshal(data, &out); err != nil {
		return nil, NewDecodeError(err)
	}
	return &out, nil
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
