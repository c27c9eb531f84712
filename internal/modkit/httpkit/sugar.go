package httpkit

import (
	"net/http"

	phttp "pkgstats/internal/platform/net/http"
)

// Get registers a no-body JSON handler and uses the envelope adapter
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	phttp.GetJSON(r, path, h)
}
