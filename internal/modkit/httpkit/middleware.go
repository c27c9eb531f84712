package httpkit

import (
	"net/http"
	"time"

	"pkgstats/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	CORSOrigins []string
	// Timeout bounds a whole request including the mirror download
	Timeout time.Duration
}

// CommonStack returns the process wide middleware chain; mount it on the root router
// so /healthz and 404s get request ids and access logs too
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Minute
	}
	return append(
		middleware.Defaults(o.Timeout),
		middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}),
		middleware.Heartbeat("/healthz"),
	)
}
