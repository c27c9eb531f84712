package modkit

import (
	"net/http"

	"pkgstats/internal/modkit/httpkit"
)

// Module is the common surface for API modules that mount routes under a prefix
// keep this tiny so modules stay decoupled
type Module interface {
	// MountRoutes mounts HTTP routes under the provided router seam
	MountRoutes(r httpkit.Router)

	// Name returns the module name
	Name() string
	// Prefix returns the route prefix the module owns
	Prefix() string
	// Middlewares returns the per module middleware chain
	Middlewares() []func(http.Handler) http.Handler
}

// Builder constructs a Module from shared deps and options
// modules typically expose New(deps Deps, opts ...Option) Module and may delegate to this pattern
type Builder func(Deps, ...Option) Module

// Mount mounts every module under its own prefix with its middlewares applied
func Mount(r httpkit.Router, mods ...Module) {
	for _, m := range mods {
		httpkit.MountUnder(r, m.Prefix(), m.Middlewares(), m.MountRoutes)
	}
}
