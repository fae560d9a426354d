package graphforge

import "context"

// Built-in middleware. MapGet and PassParent implement the default-middleware
// policy applied by the function table builder; ResolveMiddleware adapts a
// plain resolver function into a chain entry.

// MapGet returns middleware that reads key off a map-shaped parent value.
// It is the default for every field except those of the subscription root.
func MapGet(key string) MiddlewareSpec {
	return MiddlewareSpec{Name: "map_get", Handler: mapGetHandler, Options: key}
}

func mapGetHandler(_ context.Context, res Resolution, options any) Resolution {
	key, _ := options.(string)
	if m, ok := res.Parent.(map[string]any); ok {
		res.Value = m[key]
	}
	return res
}

// PassParent returns middleware that passes the resolved parent through
// unchanged. It is the default for fields of the subscription root, whose
// parent is already the pushed-out value.
func PassParent() MiddlewareSpec {
	return MiddlewareSpec{Name: "pass_parent", Handler: passParentHandler}
}

func passParentHandler(_ context.Context, res Resolution, _ any) Resolution {
	res.Value = res.Parent
	return res
}

// ResolveMiddleware adapts a resolver function into a middleware chain
// entry. The assembler uses it for set_resolve attributes.
func ResolveMiddleware(fn ResolveFunc) MiddlewareSpec {
	return MiddlewareSpec{Name: "resolve", Handler: resolveHandler, Options: fn}
}

func resolveHandler(ctx context.Context, res Resolution, options any) Resolution {
	fn, ok := options.(ResolveFunc)
	if !ok {
		return res
	}
	v, err := fn(ctx, res.Parent, res.Arguments)
	if err != nil {
		res.Errors = append(res.Errors, err)
		return res
	}
	res.Value = v
	return res
}
