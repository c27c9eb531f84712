package service

import (
	"context"
	"errors"
	"testing"

	"pkgstats/internal/core/contents"
	perr "pkgstats/internal/platform/errors"
	kit "pkgstats/internal/platform/testkit"
	"pkgstats/internal/services/stats/domain"

	"github.com/google/go-cmp/cmp"
)

type fakeFetcher struct {
	blob  []byte
	err   error
	calls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, a string) ([]byte, error) {
	f.calls = append(f.calls, a)
	return f.blob, f.err
}

func sampleBlob(t *testing.T) []byte {
	return kit.Gzip(t,
		"/path/a pkg1,pkg2,pkg3",
		"/path/b pkg1,pkg3",
		"/path/c pkg4,pkg1",
	)
}

func TestTop_RanksAndCanonicalizes(t *testing.T) {
	f := &fakeFetcher{blob: sampleBlob(t)}
	got, err := New(f).Top(context.Background(), domain.TopInput{Architecture: "AMD64", N: 2})
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	want := domain.TopResult{
		Architecture: "amd64",
		Entries:      []contents.Entry{{Name: "pkg1", Count: 3}, {Name: "pkg3", Count: 2}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"amd64"}, f.calls); diff != "" {
		t.Fatalf("fetch calls mismatch:\n%s", diff)
	}
}

func TestTop_DefaultN(t *testing.T) {
	f := &fakeFetcher{blob: sampleBlob(t)}
	got, err := New(f).Top(context.Background(), domain.TopInput{Architecture: "arm64"})
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(got.Entries) != 4 {
		t.Fatalf("want all 4 distinct packages, got %v", got.Entries)
	}
}

func TestTop_ValidationNeverFetches(t *testing.T) {
	cases := []struct {
		name  string
		in    domain.TopInput
		field string
	}{
		{"unknown arch", domain.TopInput{Architecture: "sparc", N: 10}, "architecture"},
		{"empty arch", domain.TopInput{Architecture: "", N: 10}, "architecture"},
		{"n too large", domain.TopInput{Architecture: "amd64", N: domain.MaxTopN + 1}, "n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := &fakeFetcher{blob: sampleBlob(t)}
			_, err := New(f).Top(context.Background(), tc.in)
			if !perr.IsCode(err, perr.ErrorCodeValidation) {
				t.Fatalf("want validation error, got %v", err)
			}
			if e, _ := perr.As(err); e.Field() != tc.field {
				t.Fatalf("field = %q, want %q", e.Field(), tc.field)
			}
			if len(f.calls) != 0 {
				t.Fatalf("fetcher called for invalid input")
			}
		})
	}
}

func TestTop_KeepsErrorCodes(t *testing.T) {
	cause := errors.New("connection refused")
	f := &fakeFetcher{err: perr.Transport(cause, "mirror: download failed")}
	_, err := New(f).Top(context.Background(), domain.TopInput{Architecture: "i386", N: 10})
	if !perr.IsTransport(err) || !errors.Is(err, cause) {
		t.Fatalf("want transport error wrapping the cause, got %v", err)
	}

	f = &fakeFetcher{blob: []byte("not gzip at all")}
	_, err = New(f).Top(context.Background(), domain.TopInput{Architecture: "i386", N: 10})
	if !perr.IsDecompression(err) {
		t.Fatalf("want decompression error, got %v", err)
	}
	if e, _ := perr.As(err); e.Op() != "stats.Top" {
		t.Fatalf("op = %q", e.Op())
	}
}

func TestNew_PanicsWithoutFetcher(t *testing.T) {
	kit.MustPanic(t, func() { New(nil) })
}
