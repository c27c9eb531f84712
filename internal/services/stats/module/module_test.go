package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"pkgstats/internal/adapters/mirror"
	"pkgstats/internal/modkit"
	"pkgstats/internal/modkit/httpkit"
	perr "pkgstats/internal/platform/errors"
	phttp "pkgstats/internal/platform/net/http"
	kit "pkgstats/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func TestModule_EndToEndAgainstFakeMirror(t *testing.T) {
	blob := kit.Gzip(t,
		"usr/bin/ls utils/coreutils",
		"usr/bin/cat utils/coreutils",
		"usr/bin/gzip utils/gzip,utils/coreutils",
		"malformed line here",
	)
	var hits atomic.Int32
	mirrorSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/debian/dists/stable/main/Contents-amd64.gz":
			_, _ = w.Write(blob)
		case "/debian/dists/stable/main/Contents-i386.gz":
			_, _ = w.Write([]byte("definitely not gzip"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer mirrorSrv.Close()

	deps := modkit.Deps{Mirror: mirror.NewHTTPFetcher(mirror.WithBaseURL(mirrorSrv.URL + "/debian"))}
	m := New(deps)
	if m.Name() != "stats" || m.Prefix() != "/contents" {
		t.Fatalf("unexpected module identity %q %q", m.Name(), m.Prefix())
	}

	r := phttp.AdaptChi(chi.NewRouter())
	r.Use(httpkit.CommonStack(httpkit.StackOptions{})...)
	httpkit.MountAPIV1(r, nil, func(api httpkit.Router) { modkit.Mount(api, m) })

	get := func(path string) (*httptest.ResponseRecorder, httpkit.Envelope) {
		rr := httptest.NewRecorder()
		r.Mux().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		var env httpkit.Envelope
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("%s: unmarshal %q: %v", path, rr.Body.String(), err)
		}
		return rr, env
	}

	rr, env := get("/v1/contents/AMD64/top?n=1")
	if rr.Code != http.StatusOK || env.RequestID == "" {
		t.Fatalf("ok path: %d %+v", rr.Code, env)
	}
	data := env.Data.(map[string]any)
	entries := data["entries"].([]any)
	first := entries[0].(map[string]any)
	if data["architecture"] != "amd64" || len(entries) != 1 || first["package"] != "utils/coreutils" || first["count"] != float64(3) {
		t.Fatalf("unexpected data %#v", data)
	}

	before := hits.Load()
	if rr, env := get("/v1/contents/sparc/top"); rr.Code != http.StatusBadRequest || env.Code != perr.ErrorCodeValidation {
		t.Fatalf("unknown arch: %d %+v", rr.Code, env)
	}
	if hits.Load() != before {
		t.Fatalf("unknown arch reached the mirror")
	}

	if rr, env := get("/v1/contents/arm64/top"); rr.Code != http.StatusBadGateway || env.Code != perr.ErrorCodeTransport {
		t.Fatalf("missing index: %d %+v", rr.Code, env)
	}
	if rr, env := get("/v1/contents/i386/top"); rr.Code != http.StatusUnprocessableEntity || env.Code != perr.ErrorCodeDecompression {
		t.Fatalf("bad gzip: %d %+v", rr.Code, env)
	}
}

func TestModule_ServiceAndPrefixOverride(t *testing.T) {
	m := New(modkit.Deps{Mirror: mirror.NewHTTPFetcher()}, modkit.WithPrefix("/ranking")).(*Module)
	if m.Prefix() != "/ranking" || m.Service() == nil {
		t.Fatalf("override not applied: %q", m.Prefix())
	}
}
