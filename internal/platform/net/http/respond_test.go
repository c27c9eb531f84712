package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "pkgstats/internal/platform/errors"
	pnet "pkgstats/internal/platform/net"
	phttp "pkgstats/internal/platform/net/http"
)

func reqWithReqID(method, target, id string) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	return r.WithContext(pnet.WithRequest(r.Context(), id))
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Fatalf("content type = %q", ct)
	}
	var env phttp.Envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return env
}

func TestRespondOK_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondOK(rec, reqWithReqID("GET", "/x", "rid-ok"), map[string]any{"k": "v"})

	env := decode(t, rec)
	if rec.Code != http.StatusOK || env.StatusCode != http.StatusOK || env.RequestID != "rid-ok" {
		t.Fatalf("bad envelope: %d %+v", rec.Code, env)
	}
	if m, ok := env.Data.(map[string]any); !ok || m["k"] != "v" {
		t.Fatalf("expected data map with k=v, got %#v", env.Data)
	}
}

func TestRespondError_MapsCodes(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   perr.ErrorCode
	}{
		{perr.Transport(errors.New("dial"), "mirror down"), http.StatusBadGateway, perr.ErrorCodeTransport},
		{perr.Decompression(errors.New("bad header"), "not gzip"), http.StatusUnprocessableEntity, perr.ErrorCodeDecompression},
		{perr.WithField(perr.Validationf("architecture is unknown"), "architecture"), http.StatusBadRequest, perr.ErrorCodeValidation},
		{errors.New("plain"), http.StatusInternalServerError, perr.ErrorCodeUnknown},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		phttp.RespondError(rec, reqWithReqID("GET", "/x", "rid-err"), c.err)
		env := decode(t, rec)
		if rec.Code != c.status || env.StatusCode != c.status || env.Code != c.code {
			t.Fatalf("%v: got %d/%d code %v", c.err, rec.Code, env.StatusCode, env.Code)
		}
		if env.Error == "" || env.RequestID != "rid-err" || env.Data != nil {
			t.Fatalf("%v: bad envelope %+v", c.err, env)
		}
	}
}

func TestRespondError_CarriesField(t *testing.T) {
	rec := httptest.NewRecorder()
	phttp.RespondError(rec, httptest.NewRequest("GET", "/x", nil), perr.WithField(perr.Validationf("n must be at least 1"), "n"))
	if env := decode(t, rec); env.Field != "n" {
		t.Fatalf("field = %q, want n", env.Field)
	}
}

func TestHandle_ReturnStyle(t *testing.T) {
	h := phttp.Handle(func(r *http.Request) phttp.Response {
		if r.URL.Query().Get("fail") != "" {
			return phttp.Error(perr.NotFoundf("nothing here"))
		}
		return phttp.Response{Status: http.StatusAccepted, Body: "queued", Header: http.Header{"X-Extra": {"1"}}}
	})

	rec := httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/", "rid-h"))
	env := decode(t, rec)
	if rec.Code != http.StatusAccepted || env.Data != "queued" || rec.Header().Get("X-Extra") != "1" {
		t.Fatalf("success path: %d %+v", rec.Code, env)
	}

	rec = httptest.NewRecorder()
	h(rec, reqWithReqID("GET", "/?fail=1", "rid-h"))
	if env := decode(t, rec); rec.Code != http.StatusNotFound || env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("error path: %d %+v", rec.Code, env)
	}
}

func TestHandle_NoContentHasNoBody(t *testing.T) {
	h := phttp.Handle(func(*http.Request) phttp.Response { return phttp.Response{Status: http.StatusNoContent} })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Fatalf("got %d body %q", rec.Code, rec.Body.String())
	}
}

func TestGetJSON_WrapsResultAndError(t *testing.T) {
	srv := phttp.NewServer(noPortConf())
	r := srv.Router()
	phttp.GetJSON(r, "/ok", func(*http.Request) (any, error) { return []int{1, 2}, nil })
	phttp.GetJSON(r, "/bad", func(*http.Request) (any, error) { return nil, perr.Transport(errors.New("x"), "down") })

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/ok", nil))
	if env := decode(t, rec); rec.Code != http.StatusOK || len(env.Data.([]any)) != 2 {
		t.Fatalf("ok: %d %+v", rec.Code, env)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/bad", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("bad: %d", rec.Code)
	}
}
