package graphforge

import "context"

// Resolution is the unit of work a middleware chain operates on. The query
// executor owns execution; the compiler only records which handlers run for
// which field, so the struct stays deliberately small.
type Resolution struct {
	Parent    any
	Arguments map[string]any
	Value     any
	Errors    []error
}

// MiddlewareFunc is one handler in a field's middleware chain. Options carry
// the handler's declaration-time configuration (for example the map key for
// the default lookup middleware).
type MiddlewareFunc func(ctx context.Context, res Resolution, options any) Resolution

// MiddlewareSpec pairs a handler with its declaration-time options. Name
// identifies the handler to executors and tooling; the built-in handlers use
// "map_get", "pass_parent" and "resolve".
type MiddlewareSpec struct {
	Name    string
	Handler MiddlewareFunc
	Options any
}

// ResolveFunc produces a field's value from its parent and arguments.
type ResolveFunc func(ctx context.Context, parent any, args map[string]any) (any, error)

// ParseFunc converts a scalar's wire input into its internal value.
type ParseFunc func(input any) (any, error)

// SerializeFunc converts a scalar's internal value into its wire output.
type SerializeFunc func(value any) (any, error)

// IsTypeOfFunc reports whether a concrete value belongs to an object type.
type IsTypeOfFunc func(value any) bool

// ResolveTypeFunc names the concrete object type for an interface or union
// value. It returns a type identifier.
type ResolveTypeFunc func(value any) string

// ComplexityFunc computes a field's query cost from its arguments and the
// accumulated child complexity.
type ComplexityFunc func(args map[string]any, childComplexity int) int

// ConfigFunc configures a subscription field from its arguments, returning
// the topic setup the executor subscribes with.
type ConfigFunc func(args map[string]any) (any, error)

// TopicFunc maps a mutation result to the subscription topics it triggers.
type TopicFunc func(result any) []string

// InstructionFunc computes a directive's instruction for a given set of
// directive arguments.
type InstructionFunc func(args map[string]any) any

// ExpandFunc rewrites the node a directive is applied to. The node is opaque
// to the compiler.
type ExpandFunc func(args map[string]any, node any) any
