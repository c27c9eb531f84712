// @title         pkgstats API
// @version       0.1.0
// @description   Rank Debian packages by the number of files they ship, per architecture

// Command pkgstats-api serves package rankings over http
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pkgstats/internal/modkit"
	"pkgstats/internal/modkit/httpkit"
	"pkgstats/internal/modkit/swaggerkit"
	"pkgstats/internal/platform/config"
	"pkgstats/internal/platform/logger"
	phttp "pkgstats/internal/platform/net/http"

	metamod "pkgstats/internal/services/meta/module"
	statsmod "pkgstats/internal/services/stats/module"
)

func main() {
	// PKGSTATS_* for the mirror, PKGSTATS_API_* for the server
	root := config.New().Prefix("PKGSTATS_")
	apiCfg := root.Prefix("API_")

	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := phttp.NewServer(apiCfg)
	mount(srv.Router(), root, apiCfg)

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}

// mount wires the middleware stack and every module onto r
func mount(r phttp.Router, root, apiCfg config.Conf) {
	deps := modkit.DepsFromConfig(root)

	r.Use(httpkit.CommonStack(httpkit.StackOptions{
		CORSOrigins: apiCfg.MayCSV("CORS_ORIGINS", nil),
		Timeout:     apiCfg.MayDuration("TIMEOUT", root.MayDuration("HTTP_TIMEOUT", 0)),
	})...)

	// PKGSTATS_API_SWAGGER=false turns the UI off
	swaggerkit.Mount(r, swaggerkit.FromConfig(apiCfg))

	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) {
		modkit.Mount(api,
			metamod.New(deps),
			statsmod.New(deps),
		)
	})
}
