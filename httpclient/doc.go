// Package httpclient provides a configurable HTTP request construction and
// dispatch layer. Callers describe a request through fluent builders —
// method, URL, headers, bearer auth, query parameters, body and
// serialization format — and the Adapter serializes the body, issues the
// call through a named transport handle, and deserializes the response into
// a typed value or raw bytes plus status.
//
// The adapter performs no retries, no status-code branching and no response
// validation beyond decoding: transport failures and non-success statuses
// surface to the caller untranslated.
//
// # Basic Usage
//
//	factory := httpclient.NewFactory(httpclient.Config{Timeout: 30 * time.Second})
//	adapter := httpclient.NewAdapter(factory)
//
//	opts := httpclient.NewOptions().
//	    WithBearerToken("my-token").
//	    WithBody(payload).
//	    Build()
//
//	user, err := httpclient.SendTyped[User](ctx, adapter,
//	    httpclient.NewRequest(http.MethodPost, "https://api.example.com/users").
//	        WithOptions(opts).
//	        WithQueryParams(map[string]any{"notify": true}))
//
// # Raw Responses
//
//	resp, err := httpclient.NewRequest(http.MethodGet, url).Send(ctx, adapter)
//	// resp.StatusCode, resp.Headers, resp.Body
package httpclient
