package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceTokenConfig configures minted service tokens.
type ServiceTokenConfig struct {
	// Secret is the HS256 signing secret. Required.
	Secret string `yaml:"secret" mapstructure:"secret"`
	// Issuer is written into the iss claim.
	Issuer string `yaml:"issuer" mapstructure:"issuer"`
	// Subject is written into the sub claim.
	Subject string `yaml:"subject" mapstructure:"subject"`
	// Audience is written into the aud claim.
	Audience string `yaml:"audience" mapstructure:"audience"`
	// TTL is the token lifetime. Defaults to 5 minutes.
	TTL time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ApplyDefaults fills in zero-value fields with sensible defaults.
func (c *ServiceTokenConfig) ApplyDefaults() {
	if c.TTL <= 0 {
		c.TTL = 5 * time.Minute
	}
}

// Validate checks that the configuration is valid.
func (c *ServiceTokenConfig) Validate() error {
	if c.Secret == "" {
		return fmt.Errorf("auth: service token secret is required")
	}
	return nil
}

// ServiceTokenSource mints short-lived HS256 service tokens. A minted token
// is reused until it is within refreshAhead of expiry, then replaced.
type ServiceTokenSource struct {
	cfg ServiceTokenConfig
	now func() time.Time

	mu      sync.Mutex
	token   string
	expires time.Time
}

// refreshAhead is how long before expiry a cached token is replaced.
const refreshAhead = 30 * time.Second

// NewServiceTokenSource creates a token source minting HS256 tokens with
// the given claims configuration.
func NewServiceTokenSource(cfg ServiceTokenConfig) (*ServiceTokenSource, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &ServiceTokenSource{cfg: cfg, now: time.Now}, nil
}

// Token returns a signed token, minting a new one when the cached token is
// missing or close to expiry.
func (s *ServiceTokenSource) Token(_ context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if s.token != "" && now.Add(refreshAhead).Before(s.expires) {
		return s.token, nil
	}

	expires := now.Add(s.cfg.TTL)
	claims := jwt.RegisteredClaims{
		Issuer:    s.cfg.Issuer,
		Subject:   s.cfg.Subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	if s.cfg.Audience != "" {
		claims.Audience = jwt.ClaimStrings{s.cfg.Audience}
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("auth: sign service token: %w", err)
	}

	s.token = signed
	s.expires = expires
	return signed, nil
}
