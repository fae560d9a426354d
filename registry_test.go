package graphforge_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	forge "github.com/forgeql/graphforge"
	n "github.com/forgeql/graphforge/notation"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := forge.NewRegistry()
	s := mustCompile(t, n.Stream(
		n.Object("user").Field("email", n.Named("string")),
	), forge.WithModule("accounts"))
	if err := reg.Register(s); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, ok := reg.Lookup("accounts")
	if !ok || got != s {
		t.Fatal("lookup must return the registered schema")
	}
	if _, ok := reg.Lookup("unknown"); ok {
		t.Fatal("lookup must miss for unknown modules")
	}
}

func TestRegistry_RejectsUnnamedAndDuplicate(t *testing.T) {
	reg := forge.NewRegistry()
	unnamed := mustCompile(t, n.Stream(n.Object("user")))
	if err := reg.Register(unnamed); err == nil {
		t.Fatal("unnamed schema must be rejected")
	}
	if err := reg.Register(nil); err == nil {
		t.Fatal("nil schema must be rejected")
	}

	s := mustCompile(t, n.Stream(n.Object("user")), forge.WithModule("accounts"))
	if err := reg.Register(s); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := reg.Register(s); err == nil {
		t.Fatal("duplicate module must be rejected")
	}
}

func TestRegistry_ModulesSorted(t *testing.T) {
	reg := forge.NewRegistry()
	for _, name := range []string{"zulu", "accounts", "blog"} {
		s := mustCompile(t, n.Stream(n.Object("user")), forge.WithModule(name))
		if err := reg.Register(s); err != nil {
			t.Fatalf("register %s: %v", name, err)
		}
	}
	if diff := cmp.Diff([]string{"accounts", "blog", "zulu"}, reg.Modules()); diff != "" {
		t.Fatalf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_NilReceiverLookup(t *testing.T) {
	var reg *forge.Registry
	if _, ok := reg.Lookup("anything"); ok {
		t.Fatal("nil registry must miss")
	}
}
