// Package modkit provides module wiring and core deps
package modkit

import (
	"pkgstats/internal/adapters/mirror"
	"pkgstats/internal/platform/config"
	"pkgstats/internal/platform/logger"
	"pkgstats/internal/services/stats/domain"
)

var _ domain.Fetcher = (*mirror.HTTPFetcher)(nil)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log    *logger.Logger
	Cfg    config.Conf
	Mirror domain.Fetcher
}

// DepsFromConfig builds the default deps for a process reading PKGSTATS_* settings
func DepsFromConfig(cfg config.Conf) Deps {
	return Deps{
		Log:    logger.Named("modkit"),
		Cfg:    cfg,
		Mirror: mirror.FromConfig(cfg),
	}
}
