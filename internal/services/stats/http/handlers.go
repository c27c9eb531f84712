// Package http provides http transport for stats
package http

import (
	stdhttp "net/http"

	"pkgstats/internal/core/contents"
	"pkgstats/internal/modkit/httpkit"
	"pkgstats/internal/platform/net/http/bind"
	"pkgstats/internal/services/stats/domain"
	svc "pkgstats/internal/services/stats/service"
)

// Register mounts stats endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	// top packages for one architecture
	httpkit.Get(r, "/{arch}/top", h.top)
}

type handlers struct{ svc svc.Service }

// top answers GET /contents/{arch}/top?n=10
//
// @Summary Top packages by file count for one architecture
// @Tags Contents
// @Produce json
// @Param arch path string true "Debian architecture, case-insensitive" example(amd64)
// @Param n query int false "Number of packages, 10 when absent or not positive" maximum(1000)
// @Success 200 {object} domain.TopResult "ok"
// @Failure 400 {object} httpkit.Envelope "unknown architecture or bad n"
// @Failure 422 {object} httpkit.Envelope "index is not a valid gzip stream"
// @Failure 502 {object} httpkit.Envelope "mirror download failed"
// @Router /contents/{arch}/top [get]
func (h *handlers) top(r *stdhttp.Request) (any, error) {
	n, err := bind.QueryInt(r, "n", contents.DefaultTopN)
	if err != nil {
		return nil, err
	}
	return h.svc.Top(r.Context(), domain.TopInput{
		Architecture: httpkit.Param(r, "arch"),
		N:            n,
	})
}
