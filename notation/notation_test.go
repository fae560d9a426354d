package notation_test

import (
	"fmt"
	"strings"
	"testing"

	forge "github.com/forgeql/graphforge"
	n "github.com/forgeql/graphforge/notation"
)

func kinds(events []forge.Event) []forge.EventKind {
	out := make([]forge.EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestStream_ObjectShape(t *testing.T) {
	events := n.Stream(
		n.Object("user").
			Interfaces("node").
			Field("email", n.Named("string")),
	)
	want := []forge.EventKind{
		forge.EventOpenObject,
		forge.EventSetInterfaces,
		forge.EventOpenField,
		forge.EventClose,
		forge.EventClose,
	}
	got := kinds(events)
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("event %d: want %s, got %s", i, want[i], got[i])
		}
	}
	if events[0].Identifier != "user" {
		t.Fatalf("open identifier lost: %+v", events[0])
	}
	if events[2].Attrs == nil || events[2].Attrs.Type.String() != "string" {
		t.Fatalf("field type lost: %+v", events[2])
	}
}

func TestStream_ChainEndingOnFieldEmitsWholeDeclaration(t *testing.T) {
	// the chain's return value is a field builder; Stream must still see
	// the enclosing object
	events := n.Stream(
		n.Object("user").
			Field("email", n.Named("string")).
			Field("name", n.Named("string")),
	)
	got := kinds(events)
	if got[0] != forge.EventOpenObject || got[len(got)-1] != forge.EventClose {
		t.Fatalf("chain did not emit the enclosing object: %v", got)
	}
	fieldOpens := 0
	for _, k := range got {
		if k == forge.EventOpenField {
			fieldOpens++
		}
	}
	if fieldOpens != 2 {
		t.Fatalf("want 2 field opens, got %v", got)
	}
}

func TestStream_ChainEndingOnArgOrValue(t *testing.T) {
	events := n.Stream(
		n.Query().
			Field("posts", n.ListOf(n.Named("post"))).
			Arg("limit", n.Named("integer")).Default(10),
	)
	if kinds(events)[0] != forge.EventOpenObject {
		t.Fatalf("arg chain did not reach the root: %v", kinds(events))
	}

	events = n.Stream(
		n.Enum("color").Value("red").Value("green"),
	)
	if kinds(events)[0] != forge.EventOpenEnum {
		t.Fatalf("value chain did not reach the enum: %v", kinds(events))
	}
}

func TestStream_RootBuildersCarryUsage(t *testing.T) {
	cases := map[string]n.Decl{
		"query":        n.Query(),
		"mutation":     n.Mutation(),
		"subscription": n.Subscription(),
	}
	for usage, decl := range cases {
		events := decl.Events()
		if events[0].Usage != usage || events[0].Identifier != usage {
			t.Errorf("%s: unexpected open event %+v", usage, events[0])
		}
	}
}

func TestStream_CapturesCallerLocation(t *testing.T) {
	events := n.Stream(n.Object("user"))
	loc := events[0].Loc
	if loc.IsZero() {
		t.Fatal("open event must carry the call site")
	}
	if !strings.HasSuffix(loc.File, "notation_test.go") {
		t.Fatalf("location must point at the caller, got %s", loc.File)
	}
	// close inherits the open location
	if events[len(events)-1].Loc != loc {
		t.Fatalf("close location differs: %+v vs %+v", events[len(events)-1].Loc, loc)
	}
}

func TestStream_DirectiveArgsChain(t *testing.T) {
	events := n.Stream(
		n.Directive("feature_flag").
			On("field").
			Arg("name", n.NonNull(n.Named("string"))).
			Arg("fallback", n.Named("string")),
	)
	got := kinds(events)
	if got[0] != forge.EventOpenDirective {
		t.Fatalf("directive arg chain did not reach the root: %v", got)
	}
	argOpens := 0
	for _, k := range got {
		if k == forge.EventOpenArg {
			argOpens++
		}
	}
	if argOpens != 2 {
		t.Fatalf("want 2 arg opens, got %v", got)
	}
}

func TestDirectiveArg_FieldPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Field on a directive argument must panic")
		}
		if !strings.Contains(fmt.Sprint(r), "directive argument") {
			t.Fatalf("unhelpful panic message: %v", r)
		}
	}()
	n.Directive("feature_flag").
		On("field").
		Arg("name", n.Named("string")).
		Field("oops", n.Named("string"))
}

func TestStream_ImportTypesPayload(t *testing.T) {
	events := n.Stream(
		n.ImportTypes("accounts").Only("user").Except("session"),
	)
	if len(events) != 1 || events[0].Kind != forge.EventImportTypes {
		t.Fatalf("unexpected stream: %+v", events)
	}
	p, ok := events[0].Payload.(forge.ImportTypesPayload)
	if !ok {
		t.Fatalf("wrong payload: %T", events[0].Payload)
	}
	if p.Module != "accounts" || len(p.Only) != 1 || len(p.Except) != 1 {
		t.Fatalf("payload lost data: %+v", p)
	}
}

func TestStream_StandaloneDesc(t *testing.T) {
	events := n.Stream(
		n.Desc("About users."),
		n.Object("user"),
	)
	if events[0].Kind != forge.EventSetDescription {
		t.Fatalf("unexpected first event: %+v", events[0])
	}
	p := events[0].Payload.(forge.DescriptionPayload)
	if p.Text != "About users." {
		t.Fatalf("text lost: %+v", p)
	}
}
