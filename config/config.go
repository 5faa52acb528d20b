package config

import (
	"fmt"
	"net/textproto"

	"github.com/kbukum/reqkit/httpclient"
	"github.com/kbukum/reqkit/logger"
)

// Config is the standard host configuration for the dispatch layer: one
// default transport instance plus any number of named ones, and logging.
// Hosts with more concerns embed this in their own config structs.
type Config struct {
	Name        string `yaml:"name" mapstructure:"name" validate:"required"`
	Environment string `yaml:"environment" mapstructure:"environment" validate:"omitempty,oneof=development staging production"`

	Logging logger.Config     `yaml:"logging" mapstructure:"logging"`
	Client  httpclient.Config `yaml:"client" mapstructure:"client"`

	// Clients holds named transport instance configurations, keyed by the
	// client identity used in request options.
	Clients map[string]httpclient.Config `yaml:"clients" mapstructure:"clients"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	c.Logging.ApplyDefaults()
	c.Client.ApplyDefaults()
	for name, cfg := range c.Clients {
		cfg.Name = name
		cfg.ApplyDefaults()
		c.Clients[name] = cfg
	}
}

// canonicalizeHeaders rewrites default-header map keys into canonical MIME
// form. Viper lowercases YAML map keys during unmarshal, so without this a
// header written as X-Tenant would be stored as x-tenant.
func (c *Config) canonicalizeHeaders() {
	c.Client.Headers = canonicalHeaderKeys(c.Client.Headers)
	for name, cfg := range c.Clients {
		cfg.Headers = canonicalHeaderKeys(cfg.Headers)
		c.Clients[name] = cfg
	}
}

func canonicalHeaderKeys(headers map[string]string) map[string]string {
	if len(headers) == 0 {
		return headers
	}
	out := make(map[string]string, len(headers))
	for k, v := range headers {
		out[textproto.CanonicalMIMEHeaderKey(k)] = v
	}
	return out
}

// Validate validates the configuration, including struct tags.
func (c *Config) Validate() error {
	if err := ValidateStruct(c); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Client.Validate(); err != nil {
		return fmt.Errorf("config.client: %w", err)
	}
	for name, cfg := range c.Clients {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("config.clients[%s]: %w", name, err)
		}
	}
	return nil
}
