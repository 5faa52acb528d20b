// Package component defines the lifecycle contract for managed
// infrastructure pieces such as the HTTP dispatch layer: named start/stop
// with health reporting, plus optional self-description for startup
// summaries.
package component
