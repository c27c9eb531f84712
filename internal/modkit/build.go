package modkit

import (
	"net/http"

	"pkgstats/internal/modkit/httpkit"
	str "pkgstats/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Register func(httpkit.Router)
}

// Build applies Option funcs to an internal buildCfg and returns a plain struct
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	return Built{
		Name:     c.name,
		Prefix:   c.prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Register: c.register,
	}
}

// Base carries the Built fields and implements the non routing half of Module
type Base struct{ b Built }

// NewBase wraps b for embedding
func NewBase(b Built) Base { return Base{b: b} }

// Name returns the module name, panics when unset
func (m Base) Name() string { return str.MustString(m.b.Name, "module name") }

// Prefix returns the normalized route prefix, panics when unset
func (m Base) Prefix() string { return str.MustPrefix(m.b.Prefix) }

// Middlewares returns the module middlewares
func (m Base) Middlewares() []func(http.Handler) http.Handler { return m.b.Mw }

// Extra runs endpoints registered through WithRegister
func (m Base) Extra(r httpkit.Router) { m.b.Register(r) }
