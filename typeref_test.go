package graphforge_test

import (
	"testing"

	forge "github.com/forgeql/graphforge"
)

func TestTypeRef_String(t *testing.T) {
	cases := []struct {
		ref  forge.TypeRef
		want string
	}{
		{forge.Named("user"), "user"},
		{forge.NonNull(forge.Named("id")), "id!"},
		{forge.ListOf(forge.Named("user")), "[user]"},
		{forge.NonNull(forge.ListOf(forge.NonNull(forge.Named("user")))), "[user!]!"},
	}
	for _, tc := range cases {
		if got := tc.ref.String(); got != tc.want {
			t.Errorf("want %q, got %q", tc.want, got)
		}
	}
}

func TestTypeRef_Unwrap(t *testing.T) {
	ref := forge.NonNull(forge.ListOf(forge.NonNull(forge.Named("user"))))
	if got := ref.Unwrap(); got != "user" {
		t.Fatalf("want user, got %q", got)
	}
}

func TestTypeRef_IsZero(t *testing.T) {
	if !(forge.TypeRef{}).IsZero() {
		t.Fatal("zero ref must report zero")
	}
	if forge.Named("user").IsZero() {
		t.Fatal("named ref must not report zero")
	}
}
