package httpclient

import (
	"context"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/kbukum/reqkit/codec"
)

// Request accumulates a method, URL and options, then dispatches through an
// Adapter. Builder methods mutate the same Request and return it for
// chaining.
type Request struct {
	method string
	url    string
	opts   Options
}

// NewRequest creates a request builder for the given method and URL. The
// URL is not validated here; an empty or malformed URL fails at dispatch.
func NewRequest(method, rawURL string) *Request {
	return &Request{method: method, url: rawURL, opts: Options{format: codec.Default()}}
}

// Method returns the HTTP method.
func (r *Request) Method() string { return r.method }

// URL returns the target URL, including any appended query parameters.
func (r *Request) URL() string { return r.url }

// Options returns the request options.
func (r *Request) Options() Options { return r.opts }

// WithOptions attaches built options to the request.
func (r *Request) WithOptions(opts Options) *Request {
	r.opts = opts
	return r
}

// WithQueryParams appends the given parameters to the URL's query string,
// merging with any query already present. Entries with nil values, typed
// nil pointers included, are dropped. Booleans render lowercase, times with a zero clock render as
// dates (2006-01-02), other times as RFC 3339, everything else uses its
// natural string form. When nothing survives filtering the URL is left
// byte-identical.
func (r *Request) WithQueryParams(params map[string]any) *Request {
	filtered := make(map[string]string, len(params))
	for k, v := range params {
		if v == nil || isNilPointer(v) {
			continue
		}
		filtered[k] = queryValue(v)
	}
	if len(filtered) == 0 {
		return r
	}

	u, err := url.Parse(r.url)
	if err != nil {
		// Defer URL failures to dispatch, matching unvalidated creation.
		return r
	}
	q := u.Query()
	for k, v := range filtered {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	r.url = u.String()
	return r
}

// ApplyIf applies transform to the request only when cond is true,
// enabling optional steps without breaking the fluent chain.
func (r *Request) ApplyIf(cond bool, transform func(*Request) *Request) *Request {
	if cond && transform != nil {
		return transform(r)
	}
	return r
}

// Send dispatches the request and returns the raw response: status code,
// headers and body bytes.
func (r *Request) Send(ctx context.Context, a *Adapter) (*RawResponse, error) {
	return a.Send(ctx, r.method, r.url, r.opts)
}

// SendTyped dispatches the request and decodes the response body into T
// using the request's active format. A nil result means the response body
// was empty.
func SendTyped[T any](ctx context.Context, a *Adapter, r *Request) (*T, error) {
	return sendTyped[T](ctx, a, r.method, r.url, r.opts)
}

// queryValue converts a query parameter value to its wire string form.
func queryValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case time.Time:
		if isDateOnly(val) {
			return val.Format("2006-01-02")
		}
		return val.Format(time.RFC3339)
	case *time.Time:
		return queryValue(*val)
	case fmt.Stringer:
		return val.String()
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}

// isNilPointer reports whether v is a typed nil pointer, which counts as an
// absent value just like an untyped nil.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// isDateOnly reports whether t carries no clock component.
func isDateOnly(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}
