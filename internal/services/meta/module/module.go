// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"pkgstats/internal/adapters/mirror"
	"pkgstats/internal/core/version"
	modkit "pkgstats/internal/modkit"
	"pkgstats/internal/modkit/httpkit"

	metahttp "pkgstats/internal/services/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	modkit.Base
	mirror    string
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	return &Module{
		Base:      modkit.NewBase(b),
		mirror:    deps.Cfg.MayURL("MIRROR_URL", mirror.DefaultBaseURL),
		startedAt: time.Now(),
	}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	metahttp.Register(r, metahttp.Deps{
		ServiceName: version.Info().Service,
		StartedAt:   m.startedAt,
		Mirror:      m.mirror,
	})
	m.Extra(r)
}
