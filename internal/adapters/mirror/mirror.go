// Package mirror downloads Contents indices from a Debian archive mirror
package mirror

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"pkgstats/internal/core/arch"
	"pkgstats/internal/platform/config"
	perr "pkgstats/internal/platform/errors"
	"pkgstats/internal/platform/logger"
)

const (
	// DefaultBaseURL is the mirror used when none is configured
	DefaultBaseURL = "http://ftp.uk.debian.org/debian"
	// DefaultSuite is the distribution whose index is fetched
	DefaultSuite = "stable"
	// DefaultComponent is the archive area whose index is fetched
	DefaultComponent = "main"

	defaultHTTPTO = 5 * time.Minute
	// Content-Length is only a hint, never reserve more than this up front
	maxPrealloc = 64 << 20
)

// HTTPFetcher fetches Contents-<arch>.gz straight from a mirror
type HTTPFetcher struct {
	Client    *http.Client
	BaseURL   string
	Suite     string
	Component string
	// MaxBytes bounds the response body, 0 disables the bound
	MaxBytes int64
}

// Option configures an HTTPFetcher
type Option func(*HTTPFetcher)

// WithBaseURL points the fetcher at another mirror (no trailing slash)
func WithBaseURL(u string) Option { return func(f *HTTPFetcher) { f.BaseURL = u } }

// WithSuite selects the distribution, e.g. stable or bookworm
func WithSuite(s string) Option { return func(f *HTTPFetcher) { f.Suite = s } }

// WithComponent selects the archive area, e.g. main or contrib
func WithComponent(c string) Option { return func(f *HTTPFetcher) { f.Component = c } }

// WithMaxBytes bounds the downloaded size
func WithMaxBytes(n int64) Option { return func(f *HTTPFetcher) { f.MaxBytes = n } }

// WithClient swaps the http client
func WithClient(c *http.Client) Option { return func(f *HTTPFetcher) { f.Client = c } }

// NewHTTPFetcher builds a fetcher with defaults for the public Debian archive
func NewHTTPFetcher(opts ...Option) *HTTPFetcher {
	f := &HTTPFetcher{
		Client:    &http.Client{Timeout: defaultHTTPTO},
		BaseURL:   DefaultBaseURL,
		Suite:     DefaultSuite,
		Component: DefaultComponent,
	}
	for _, o := range opts {
		o(f)
	}
	return f
}

// FromConfig builds a fetcher from PKGSTATS_* settings
func FromConfig(cfg config.Conf) *HTTPFetcher {
	return NewHTTPFetcher(
		WithBaseURL(cfg.MayURL("MIRROR_URL", DefaultBaseURL)),
		WithSuite(cfg.MayString("SUITE", DefaultSuite)),
		WithComponent(cfg.MayString("COMPONENT", DefaultComponent)),
		WithMaxBytes(cfg.MayInt64("MAX_BYTES", 0)),
		WithClient(&http.Client{Timeout: cfg.MayDuration("HTTP_TIMEOUT", defaultHTTPTO)}),
	)
}

// URL returns the index location for a canonical architecture
func (f *HTTPFetcher) URL(a arch.Arch) string {
	return fmt.Sprintf("%s/dists/%s/%s/Contents-%s.gz", f.BaseURL, f.Suite, f.Component, a)
}

// Fetch downloads the index for architecture. Unknown identifiers fail before any request is made.
// Every failure is a TransportError that keeps its cause
func (f *HTTPFetcher) Fetch(ctx context.Context, architecture string) ([]byte, error) {
	a, err := arch.Parse(architecture)
	if err != nil {
		return nil, perr.Transport(err, "mirror: cannot fetch index")
	}
	url := f.URL(a)
	log := logger.C(ctx).With().Str("component", "mirror").Str("url", url).Logger()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Transport(err, "mirror: build request for %s", url)
	}
	start := time.Now()
	resp, err := f.Client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("mirror: request failed")
		return nil, perr.Transport(err, "mirror: GET %s", url)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			log.Warn().Err(cerr).Msg("mirror: error closing body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err := &StatusError{URL: url, StatusCode: resp.StatusCode}
		log.Error().Int("status", resp.StatusCode).Msg("mirror: unexpected status")
		if resp.StatusCode == http.StatusNotFound {
			return nil, perr.Transport(err, "mirror: index not found")
		}
		return nil, perr.Transport(err, "mirror: download failed")
	}

	body, err := f.readBody(resp)
	if err != nil {
		return nil, perr.Transport(err, "mirror: read %s", url)
	}
	log.Info().
		Int("bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("mirror: index downloaded")
	return body, nil
}

func (f *HTTPFetcher) readBody(resp *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if hint := min(resp.ContentLength, maxPrealloc); hint > 0 && (f.MaxBytes <= 0 || hint <= f.MaxBytes) {
		buf.Grow(int(hint))
	}
	if f.MaxBytes <= 0 {
		_, err := io.Copy(&buf, resp.Body)
		return buf.Bytes(), err
	}
	n, err := io.Copy(&buf, io.LimitReader(resp.Body, f.MaxBytes+1))
	if err != nil {
		return nil, err
	}
	if n > f.MaxBytes {
		return nil, &SizeError{Limit: f.MaxBytes}
	}
	return buf.Bytes(), nil
}

// StatusError reports a non-200 answer from the mirror
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s for %s", e.StatusCode, http.StatusText(e.StatusCode), e.URL)
}

// SizeError reports a body larger than the configured bound
type SizeError struct{ Limit int64 }

func (e *SizeError) Error() string {
	return fmt.Sprintf("response exceeds %d bytes", e.Limit)
}
