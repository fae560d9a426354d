package graphforge_test

import (
	"context"
	"errors"
	"testing"

	forge "github.com/forgeql/graphforge"
)

func TestMapGet_ReadsKeyOffParentMap(t *testing.T) {
	spec := forge.MapGet("email")
	res := spec.Handler(context.Background(), forge.Resolution{
		Parent: map[string]any{"email": "a@example.com"},
	}, spec.Options)
	if res.Value != "a@example.com" {
		t.Fatalf("want a@example.com, got %v", res.Value)
	}
}

func TestMapGet_NonMapParentLeavesValueNil(t *testing.T) {
	spec := forge.MapGet("email")
	res := spec.Handler(context.Background(), forge.Resolution{Parent: 42}, spec.Options)
	if res.Value != nil {
		t.Fatalf("want nil, got %v", res.Value)
	}
}

func TestPassParent(t *testing.T) {
	spec := forge.PassParent()
	res := spec.Handler(context.Background(), forge.Resolution{Parent: "pushed"}, spec.Options)
	if res.Value != "pushed" {
		t.Fatalf("want pushed, got %v", res.Value)
	}
}

func TestResolveMiddleware_ErrorAccumulates(t *testing.T) {
	boom := errors.New("boom")
	spec := forge.ResolveMiddleware(func(context.Context, any, map[string]any) (any, error) {
		return nil, boom
	})
	res := spec.Handler(context.Background(), forge.Resolution{}, spec.Options)
	if len(res.Errors) != 1 || !errors.Is(res.Errors[0], boom) {
		t.Fatalf("want accumulated error, got %+v", res.Errors)
	}
	if res.Value != nil {
		t.Fatalf("value must stay nil on error, got %v", res.Value)
	}
}
