package auth

import (
	"context"
	"errors"
	"os"
)

// TokenSource yields a bearer token for one outgoing request. Sources must
// be safe for concurrent use.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenSource returns the same token for every request.
type StaticTokenSource struct {
	token string
}

// NewStaticTokenSource wraps a fixed token string.
func NewStaticTokenSource(token string) *StaticTokenSource {
	return &StaticTokenSource{token: token}
}

// Token returns the wrapped token.
func (s *StaticTokenSource) Token(_ context.Context) (string, error) {
	if s.token == "" {
		return "", errors.New("auth: static token is empty")
	}
	return s.token, nil
}

// EnvTokenSource reads the token from an environment variable on every
// request, picking up rotation without a restart.
type EnvTokenSource struct {
	key string
}

// NewEnvTokenSource reads tokens from the named environment variable.
func NewEnvTokenSource(key string) *EnvTokenSource {
	return &EnvTokenSource{key: key}
}

// Token returns the current value of the environment variable.
func (s *EnvTokenSource) Token(_ context.Context) (string, error) {
	v := os.Getenv(s.key)
	if v == "" {
		return "", errors.New("auth: environment variable " + s.key + " is empty")
	}
	return v, nil
}
