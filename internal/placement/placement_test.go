package placement_test

import (
	"testing"

	"github.com/forgeql/graphforge/internal/placement"
)

func TestValidate_ToplevelKinds(t *testing.T) {
	for _, kind := range []placement.Kind{
		placement.Object,
		placement.Interface,
		placement.InputObject,
		placement.Scalar,
		placement.Enum,
		placement.Union,
		placement.Directive,
		placement.ImportTypes,
		placement.Description,
	} {
		if err := placement.Validate(kind, "", placement.Toplevel); err != nil {
			t.Errorf("%s at toplevel: unexpected error: %v", kind, err)
		}
	}
}

func TestValidate_NestedKinds(t *testing.T) {
	cases := []struct {
		kind    placement.Kind
		parents []placement.Kind
	}{
		{placement.Field, []placement.Kind{placement.Object, placement.Interface, placement.InputObject}},
		{placement.Arg, []placement.Kind{placement.Field, placement.Directive}},
		{placement.Value, []placement.Kind{placement.Enum}},
		{placement.Interfaces, []placement.Kind{placement.Object, placement.Interface}},
		{placement.Types, []placement.Kind{placement.Union}},
		{placement.ImportFields, []placement.Kind{placement.Object, placement.Interface, placement.InputObject}},
		{placement.Middleware, []placement.Kind{placement.Field}},
		{placement.Resolve, []placement.Kind{placement.Field}},
		{placement.Parse, []placement.Kind{placement.Scalar}},
		{placement.Serialize, []placement.Kind{placement.Scalar}},
		{placement.IsTypeOf, []placement.Kind{placement.Object}},
		{placement.ResolveType, []placement.Kind{placement.Interface, placement.Union}},
		{placement.Deprecate, []placement.Kind{placement.Field, placement.Arg, placement.Value}},
		{placement.Complexity, []placement.Kind{placement.Field}},
		{placement.On, []placement.Kind{placement.Directive}},
		{placement.Instruction, []placement.Kind{placement.Directive}},
		{placement.Expand, []placement.Kind{placement.Directive}},
		{placement.Config, []placement.Kind{placement.Field}},
		{placement.Trigger, []placement.Kind{placement.Field}},
	}
	for _, tc := range cases {
		for _, parent := range tc.parents {
			if err := placement.Validate(tc.kind, "", parent); err != nil {
				t.Errorf("%s under %s: unexpected error: %v", tc.kind, parent, err)
			}
		}
		if err := placement.Validate(tc.kind, "", placement.Toplevel); err == nil {
			t.Errorf("%s at toplevel: expected error", tc.kind)
		}
	}
}

func TestValidate_MessageListsContextsInLexicalOrder(t *testing.T) {
	err := placement.Validate(placement.Field, "", placement.Toplevel)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "`field` must only be used within `input_object`, `interface`, `object`"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestValidate_ToplevelOnlyMessage(t *testing.T) {
	err := placement.Validate(placement.Object, "", placement.Field)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "`object` must only be used toplevel"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestValidate_MixedContextMessage(t *testing.T) {
	err := placement.Validate(placement.Description, "description", placement.Scalar)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "`description` must only be used toplevel or within `directive`, `enum`, `field`, `input_object`, `interface`, `object`"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestValidate_UsageAliasAppearsInMessage(t *testing.T) {
	err := placement.Validate(placement.Object, "query", placement.Field)
	if err == nil {
		t.Fatal("expected error")
	}
	want := "`query` must only be used toplevel"
	if err.Error() != want {
		t.Fatalf("want %q, got %q", want, err.Error())
	}
}

func TestValidate_DescriptionIllegalWhereNoSiblingFollows(t *testing.T) {
	for _, parent := range []placement.Kind{placement.Scalar, placement.Union, placement.Arg, placement.Value} {
		if err := placement.Validate(placement.Description, "", parent); err == nil {
			t.Errorf("description under %s: expected error", parent)
		}
	}
}
