// Package module wires the contents ranking into the API using modkit
package module

import (
	modkit "pkgstats/internal/modkit"
	"pkgstats/internal/modkit/httpkit"
	statshttp "pkgstats/internal/services/stats/http"
	statssvc "pkgstats/internal/services/stats/service"
)

// Module implements the stats module
type Module struct {
	modkit.Base
	svc statssvc.Service
}

// New constructs the stats module, mounted under /contents by default
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{modkit.WithName("stats"), modkit.WithPrefix("/contents")}, opts...)...)
	return &Module{
		Base: modkit.NewBase(b),
		svc:  statssvc.New(deps.Mirror),
	}
}

// Service exposes the ranking workflow to in-process callers such as the CLI
func (m *Module) Service() statssvc.Service { return m.svc }

// MountRoutes mounts the module routes on the given router
func (m *Module) MountRoutes(r httpkit.Router) {
	statshttp.Register(r, m.svc)
	m.Extra(r)
}
