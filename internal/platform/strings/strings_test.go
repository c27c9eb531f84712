package strings

import "testing"

func TestIfEmpty(t *testing.T) {
	t.Parallel()

	in := []int{1, 2, 3}
	if got := IfEmpty(in, []int{9}); len(got) != 3 || got[0] != 1 {
		t.Fatalf("IfEmpty returned wrong slice: %#v", got)
	}

	var empty []string
	if got := IfEmpty(empty, []string{"x"}); len(got) != 1 || got[0] != "x" {
		t.Fatalf("IfEmpty did not return default: %#v", got)
	}
	if got := IfEmpty([]string{}, nil); got != nil {
		t.Fatalf("empty with nil default should be nil, got %#v", got)
	}
}

func TestMustString(t *testing.T) {
	t.Parallel()

	if got := MustString("meta", "name"); got != "meta" {
		t.Fatalf("MustString = %q", got)
	}
	defer func() {
		if v := recover(); v != "name is required" {
			t.Fatalf("unexpected panic value %v", v)
		}
	}()
	MustString("  ", "name")
}

func TestMustPrefix(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"contents":   "/contents",
		"/contents/": "/contents",
		" /meta ":    "/meta",
		"a/b":        "/a/b",
	} {
		if got := MustPrefix(in); got != want {
			t.Fatalf("MustPrefix(%q) = %q, want %q", in, got, want)
		}
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for empty prefix")
		}
	}()
	MustPrefix(" / ")
}
