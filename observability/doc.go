// Package observability provides thin tracing helpers over the
// OpenTelemetry API. Only the API is used — wiring a real tracer provider
// (SDK, exporters, sampling) is the host application's job; without one,
// spans are no-ops.
package observability
