package bind

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	perr "pkgstats/internal/platform/errors"
)

type query struct {
	Name string `json:"name" validate:"required,min=2"`
	N    int    `json:"n" validate:"min=1,max=5"`
}

func TestStruct_OK(t *testing.T) {
	if err := Struct(query{Name: "ok", N: 3}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_ShortMessagesAndField(t *testing.T) {
	cases := []struct {
		in        query
		wantField string
		wantMsg   string
	}{
		{query{Name: "ok", N: 0}, "n", "n must be at least 1"},
		{query{Name: "ok", N: 9}, "n", "n must be at most 5"},
		{query{Name: "", N: 1}, "name", "name is a required field"},
	}
	for _, c := range cases {
		err := Struct(c.in)
		if !perr.IsCode(err, perr.ErrorCodeValidation) {
			t.Fatalf("want validation error, got %v", err)
		}
		e, _ := perr.As(err)
		if e.Field() != c.wantField || err.Error() != c.wantMsg {
			t.Fatalf("got field %q msg %q, want %q %q", e.Field(), err.Error(), c.wantField, c.wantMsg)
		}
	}
}

func TestStruct_InvalidValidationError(t *testing.T) {
	err := Struct(nil)
	if !perr.IsCode(err, perr.ErrorCodeUnknown) {
		t.Fatalf("want internal error for nil input, got %v", err)
	}
}

func TestRegisterTag(t *testing.T) {
	type shout struct {
		Word string `json:"word" validate:"upper_only"`
	}
	err := RegisterTag("upper_only", "{0} must be upper case", func(fl FieldLevel) bool {
		s := fl.Field().String()
		return s == strings.ToUpper(s)
	})
	if err != nil {
		t.Fatalf("RegisterTag: %v", err)
	}
	if err := Struct(shout{Word: "LOUD"}); err != nil {
		t.Fatalf("unexpected: %v", err)
	}
	if err := Struct(shout{Word: "quiet"}); err == nil || err.Error() != "word must be upper case" {
		t.Fatalf("custom message not used: %v", err)
	}
}

func TestTagNameFunc_DashAndMissingUseFieldName(t *testing.T) {
	type s struct {
		A string `json:"-" validate:"required"`
		B string `validate:"required"`
	}
	field, _ := ValidationFieldAndMessage(Get().Validator.Struct(s{B: "x"}))
	if field != "A" {
		t.Fatalf("dash tag field = %q, want A", field)
	}
	field, _ = ValidationFieldAndMessage(Get().Validator.Struct(s{A: "x"}))
	if field != "B" {
		t.Fatalf("untagged field = %q, want B", field)
	}
}

func TestValidationFieldAndMessage_GenericError(t *testing.T) {
	if f, m := ValidationFieldAndMessage(errors.New("plain")); f != "" || m != "plain" {
		t.Fatalf("got %q %q", f, m)
	}
	if f, m := ValidationFieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil should be empty, got %q %q", f, m)
	}
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest("GET", "/?n=7&bad=x&blank=", nil)
	if n, err := QueryInt(r, "n", 10); err != nil || n != 7 {
		t.Fatalf("QueryInt(n) = %d, %v", n, err)
	}
	if n, err := QueryInt(r, "missing", 10); err != nil || n != 10 {
		t.Fatalf("QueryInt(missing) = %d, %v", n, err)
	}
	if n, err := QueryInt(r, "blank", 4); err != nil || n != 4 {
		t.Fatalf("QueryInt(blank) = %d, %v", n, err)
	}
	_, err := QueryInt(r, "bad", 10)
	if !perr.IsCode(err, perr.ErrorCodeValidation) {
		t.Fatalf("want validation error, got %v", err)
	}
}
