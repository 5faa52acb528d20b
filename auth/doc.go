// Package auth provides bearer token sources for the dispatch pipeline.
//
// A TokenSource yields the token attached as "Authorization: Bearer <token>"
// at send time. StaticTokenSource wraps a fixed string; ServiceTokenSource
// mints short-lived HS256 service tokens and caches them until near expiry.
package auth
