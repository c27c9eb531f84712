// Package service contains the ranking workflow shared by the CLI and the api
package service

import (
	"bytes"
	"context"
	"time"

	"pkgstats/internal/core/arch"
	"pkgstats/internal/core/contents"
	perr "pkgstats/internal/platform/errors"
	"pkgstats/internal/platform/logger"
	"pkgstats/internal/platform/net/http/bind"
	"pkgstats/internal/services/stats/domain"
)

func init() {
	if err := bind.RegisterTag("debian_arch", "{0} must be a supported Debian architecture", func(fl bind.FieldLevel) bool {
		return arch.Valid(fl.Field().String())
	}); err != nil {
		panic(err)
	}
}

// Service defines the stats service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the stats service
type Svc struct {
	fetch domain.Fetcher
}

// New constructs a stats service
func New(f domain.Fetcher) *Svc {
	if f == nil {
		panic("stats.Service requires a non nil Fetcher")
	}
	return &Svc{fetch: f}
}

// Top downloads the index for in.Architecture and ranks its packages.
// N <= 0 means contents.DefaultTopN
func (s *Svc) Top(ctx context.Context, in domain.TopInput) (domain.TopResult, error) {
	if in.N <= 0 {
		in.N = contents.DefaultTopN
	}
	if err := bind.Struct(in); err != nil {
		return domain.TopResult{}, err
	}
	a, err := arch.Parse(in.Architecture)
	if err != nil {
		return domain.TopResult{}, perr.WithField(perr.Wrap(err, perr.ErrorCodeValidation, "invalid architecture"), "architecture")
	}

	log := logger.C(ctx).With().Str("component", "stats").Str("arch", a.String()).Logger()

	blob, err := s.fetch.Fetch(ctx, a.String())
	if err != nil {
		return domain.TopResult{}, perr.WithOp(err, "stats.Top")
	}

	start := time.Now()
	entries, st, err := contents.RankReader(bytes.NewReader(blob), in.N)
	if err != nil {
		log.Error().Err(err).Msg("stats: aggregate failed")
		return domain.TopResult{}, perr.WithOp(err, "stats.Top")
	}
	log.Info().
		Int("lines", st.Lines).
		Int("skipped", st.Skipped).
		Int("tokens", st.Tokens).
		Int("distinct", st.Distinct).
		Int64("bytes", st.Bytes).
		Dur("elapsed", time.Since(start)).
		Msg("stats: ranked")

	return domain.TopResult{Architecture: a.String(), Entries: entries}, nil
}
