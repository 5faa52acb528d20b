package httpclient

import (
	"context"

	"github.com/kbukum/reqkit/component"
)

// Component wraps a factory and adapter with lifecycle management. Use this
// when the dispatch layer is part of a component-managed application.
type Component struct {
	config  Config
	named   map[string]Config
	opts    []AdapterOption
	factory *ClientFactory
	adapter *Adapter
}

// compile-time assertions
var _ component.Component = (*Component)(nil)
var _ component.Describable = (*Component)(nil)

// NewComponent creates a new dispatch component. cfg configures the default
// transport instance; named holds additional instances keyed by name. The
// factory and adapter are created lazily in Start().
func NewComponent(cfg Config, named map[string]Config, opts ...AdapterOption) *Component {
	return &Component{config: cfg, named: named, opts: opts}
}

// Name returns the component name.
func (c *Component) Name() string {
	name := c.config.Name
	if name == "" {
		name = "httpclient"
	}
	return name
}

// Start builds the client factory and adapter.
func (c *Component) Start(_ context.Context) error {
	if err := c.config.Validate(); err != nil {
		return err
	}
	c.factory = NewFactory(c.config)
	for name, cfg := range c.named {
		if err := cfg.Validate(); err != nil {
			return err
		}
		c.factory.RegisterClient(name, cfg)
	}
	c.adapter = NewAdapter(c.factory, c.opts...)
	return nil
}

// Stop releases idle connections held by the factory.
func (c *Component) Stop(_ context.Context) error {
	if c.factory != nil {
		return c.factory.Close()
	}
	return nil
}

// Health reports whether the component has been started.
func (c *Component) Health(_ context.Context) component.Health {
	status := component.StatusHealthy
	if c.adapter == nil {
		status = component.StatusUnhealthy
	}
	return component.Health{
		Name:   c.Name(),
		Status: status,
	}
}

// Describe returns component description for startup summaries.
func (c *Component) Describe() component.Description {
	return component.Description{
		Name:    c.Name(),
		Type:    "http-dispatch",
		Details: c.config.Timeout.String(),
	}
}

// Adapter returns the underlying adapter. Must be called after Start().
func (c *Component) Adapter() *Adapter {
	return c.adapter
}

// Factory returns the underlying client factory. Must be called after Start().
func (c *Component) Factory() *ClientFactory {
	return c.factory
}
