// Package swaggerkit serves the OpenAPI document and the Swagger UI
package swaggerkit

import (
	"net/http"

	"pkgstats/internal/platform/config"
	phttp "pkgstats/internal/platform/net/http"
	docs "pkgstats/internal/services/docs"

	httpSwagger "github.com/swaggo/http-swagger"
)

// Options configures the docs mount
type Options struct {
	Enabled bool
	// Prefix is where the UI lives, e.g. /swagger
	Prefix string
	// ServerURL is the base clients should call, e.g. /v1
	ServerURL string
	// TitleSuffix is appended to the document title, handy for "staging"
	TitleSuffix string
}

// FromConfig reads SWAGGER and DOCS_TITLE_SUFFIX under cfg
func FromConfig(cfg config.Conf) Options {
	return Options{
		Enabled:     cfg.MayBool("SWAGGER", true),
		Prefix:      "/swagger",
		ServerURL:   "/v1",
		TitleSuffix: cfg.MayString("DOCS_TITLE_SUFFIX", ""),
	}
}

// Mount registers the UI and doc.json if enabled
func Mount(r phttp.Router, opt Options) {
	if !opt.Enabled {
		return
	}
	if opt.Prefix == "" {
		opt.Prefix = "/swagger"
	}
	docURL := opt.Prefix + "/doc.json"

	r.Get(opt.Prefix, func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, opt.Prefix+"/index.html", http.StatusPermanentRedirect)
	})
	r.Get(docURL, serveDocJSON(opt))
	r.Handle(opt.Prefix+"/*", httpSwagger.Handler(
		httpSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
		httpSwagger.URL(docURL),
	))
}
