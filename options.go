package jsonpatch

import (
	"github.com/rs/zerolog"

	"github.com/brunoga/jsonpatch/contract"
)

// Option configures a Document.
type Option interface {
	apply(c *config)
}

type config struct {
	resolver    contract.Resolver
	cloner      Cloner
	logger      *zerolog.Logger
	testEnabled bool
}

type resolverOption struct{ r contract.Resolver }

func (o resolverOption) apply(c *config) { c.resolver = o.r }

// WithResolver sets the resolver used to find struct members. The default is
// contract.DefaultResolver{}, which matches names case-insensitively.
func WithResolver(r contract.Resolver) Option {
	return resolverOption{r}
}

type clonerOption struct{ c Cloner }

func (o clonerOption) apply(c *config) { c.cloner = o.c }

// WithCloner sets the Cloner used by copy operations. The default is
// GoCloneCloner.
func WithCloner(cl Cloner) Option {
	return clonerOption{cl}
}

type loggerOption struct{ l zerolog.Logger }

func (o loggerOption) apply(c *config) { c.logger = &o.l }

// WithLogger sets the logger for operation tracing. Documents are silent by
// default.
func WithLogger(l zerolog.Logger) Option {
	return loggerOption{l}
}

type testOption struct{}

func (testOption) apply(c *config) { c.testEnabled = true }

// EnableTestOperation makes the document evaluate test operations as defined
// by RFC 6902 instead of rejecting them.
func EnableTestOperation() Option {
	return testOption{}
}

func (c config) withDefaults() config {
	if c.resolver == nil {
		c.resolver = contract.DefaultResolver{}
	}
	if c.cloner == nil {
		c.cloner = GoCloneCloner
	}
	if c.logger == nil {
		nop := zerolog.Nop()
		c.logger = &nop
	}
	return c
}
