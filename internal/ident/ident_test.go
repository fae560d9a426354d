package ident_test

import (
	"testing"

	"github.com/forgeql/graphforge/internal/ident"
)

func TestValid(t *testing.T) {
	valid := []string{"user", "page_info", "_private", "v2", "Ab_3"}
	for _, s := range valid {
		if !ident.Valid(s) {
			t.Errorf("Valid(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "2fast", "has-dash", "with space", "ünïcode", "a.b"}
	for _, s := range invalid {
		if ident.Valid(s) {
			t.Errorf("Valid(%q) = true, want false", s)
		}
	}
}

func TestCamelize(t *testing.T) {
	cases := map[string]string{
		"user":       "User",
		"page_info":  "PageInfo",
		"a_b_c":      "ABC",
		"_leading":   "Leading",
		"alreadyUp":  "AlreadyUp",
		"":           "",
		"double__at": "DoubleAt",
	}
	for in, want := range cases {
		if got := ident.Camelize(in); got != want {
			t.Errorf("Camelize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUpcase(t *testing.T) {
	if got := ident.Upcase("not_found"); got != "NOT_FOUND" {
		t.Errorf("Upcase(not_found) = %q", got)
	}
}
