package introspection_test

import (
	"bytes"
	"testing"

	j "github.com/goccy/go-json"

	forge "github.com/forgeql/graphforge"
	"github.com/forgeql/graphforge/introspection"
	n "github.com/forgeql/graphforge/notation"
)

func compile(t *testing.T, events []forge.Event, opts ...forge.Option) *forge.Schema {
	t.Helper()
	s, err := forge.Compile(events, opts...)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return s
}

func TestDescribe_TypesAndFields(t *testing.T) {
	s := compile(t, n.Stream(
		n.Object("page_info").
			Desc("Pagination metadata.").
			Field("has_next_page", n.NonNull(n.Named("boolean"))).
			Arg("depth", n.Named("integer")).Default(1),
		n.Enum("color").Value("red").ValueAs("green", 2),
	), forge.WithModule("app"))

	model := introspection.Describe(s)
	if model.Module != "app" {
		t.Fatalf("want module app, got %q", model.Module)
	}
	if len(model.Types) != 2 {
		t.Fatalf("want 2 types, got %+v", model.Types)
	}

	obj := model.Types[0]
	if obj.Identifier != "page_info" || obj.Name != "PageInfo" || obj.Kind != "object" {
		t.Fatalf("object model wrong: %+v", obj)
	}
	if obj.Description != "Pagination metadata." {
		t.Fatalf("description lost: %+v", obj)
	}
	if len(obj.Fields) != 1 || obj.Fields[0].Type != "boolean!" {
		t.Fatalf("field model wrong: %+v", obj.Fields)
	}
	arg := obj.Fields[0].Args[0]
	if arg.Identifier != "depth" || !arg.HasDefault || arg.Default != 1 {
		t.Fatalf("arg model wrong: %+v", arg)
	}

	enum := model.Types[1]
	if enum.Kind != "enum" || len(enum.Values) != 2 {
		t.Fatalf("enum model wrong: %+v", enum)
	}
	if enum.Values[1].Name != "GREEN" || enum.Values[1].Value != 2 {
		t.Fatalf("enum value wrong: %+v", enum.Values[1])
	}
}

func TestDescribe_Errors(t *testing.T) {
	s := compile(t, n.Stream(
		n.Object("profile").ImportFields("missing"),
	))
	model := introspection.Describe(s)
	if len(model.Errors) != 1 {
		t.Fatalf("want 1 error, got %+v", model.Errors)
	}
	e := model.Errors[0]
	if e.Rule != forge.RuleFieldImportsExist {
		t.Fatalf("rule lost: %+v", e)
	}
	if e.Data.Value != "missing" || e.Data.Artifact == "" {
		t.Fatalf("data lost: %+v", e)
	}
	if e.Location == "" {
		t.Fatalf("location lost: %+v", e)
	}
}

func TestExport_DeterministicAndRoundTrips(t *testing.T) {
	build := func() *forge.Schema {
		return compile(t, n.Stream(
			n.Object("user").Field("email", n.Named("string")),
			n.Union("media").Types("photo", "video"),
		), forge.WithModule("app"))
	}
	first, err := introspection.Export(build())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	second, err := introspection.Export(build())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatalf("export not deterministic:\n%s\n---\n%s", first, second)
	}

	var model introspection.Schema
	if err := j.Unmarshal(first, &model); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(model.Types) != 2 || model.Types[1].Kind != "union" {
		t.Fatalf("round trip lost data: %+v", model.Types)
	}
}

func TestWrite_AppendsNewline(t *testing.T) {
	s := compile(t, n.Stream(n.Object("user")))
	var buf bytes.Buffer
	if err := introspection.Write(&buf, s); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		t.Fatal("output must end with a newline")
	}
}

func TestDescribe_ImportedFlag(t *testing.T) {
	reg := forge.NewRegistry()
	accounts := compile(t, n.Stream(
		n.Object("user").Field("email", n.Named("string")),
	), forge.WithModule("accounts"))
	if err := reg.Register(accounts); err != nil {
		t.Fatalf("register: %v", err)
	}
	app := compile(t, n.Stream(
		n.ImportTypes("accounts"),
	), forge.WithModule("app"), forge.WithRegistry(reg))

	model := introspection.Describe(app)
	if len(model.Types) != 1 || !model.Types[0].Imported {
		t.Fatalf("imported flag lost: %+v", model.Types)
	}
}
