// Package http provides meta endpoints
package http

import (
	"net/http"
	"time"

	"pkgstats/internal/core/version"
	"pkgstats/internal/modkit/httpkit"
)

// Deps are the handler dependencies
type Deps struct {
	ServiceName string
	StartedAt   time.Time
	Mirror      string
}

type handlers struct {
	deps Deps
}

// Register mounts the meta routes
func Register(r httpkit.Router, d Deps) {
	h := &handlers{deps: d}

	httpkit.Get(r, "/version", h.version)
	httpkit.Get(r, "/service", h.service)
}

// ServiceResponse describes service info
type ServiceResponse struct {
	Name    string `json:"name"    example:"pkgstats-api"`
	Started string `json:"started" example:"2025-09-03T13:00:00Z"`
	Uptime  int64  `json:"uptime"  example:"300"`
	Mirror  string `json:"mirror,omitempty" example:"http://ftp.uk.debian.org/debian"`
}

// @Summary Build and version info
// @Tags Meta
// @Produce json
// @Success 200 {object} version.BuildInfo "ok"
// @Router /meta/version [get]
func (h *handlers) version(_ *http.Request) (any, error) {
	return version.Info(), nil
}

// @Summary Service info, uptime and mirror
// @Tags Meta
// @Produce json
// @Success 200 {object} ServiceResponse "ok"
// @Router /meta/service [get]
func (h *handlers) service(_ *http.Request) (any, error) {
	return ServiceResponse{
		Name:    h.deps.ServiceName,
		Started: h.deps.StartedAt.UTC().Format(time.RFC3339),
		Uptime:  int64(time.Since(h.deps.StartedAt) / time.Second),
		Mirror:  h.deps.Mirror,
	}, nil
}
