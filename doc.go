// Package graphforge compiles a flat stream of schema declaration events
// into a resolved, validated, queryable schema graph:
//
//   - A scope-stack assembler turns open/attribute/close events into a tree
//     of type definitions, enforcing placement rules as it goes
//   - A type-import merger pulls toplevel definitions from already-compiled
//     modules into the working type pool
//   - A field-import resolver computes each type's resolved field set over
//     the import graph, reporting missing sources and cycles as deferred
//     Issues
//   - A function table binds (category, type, attribute) to the
//     parse/serialize/resolve_type/is_type_of functions and per-field
//     middleware chains that an external executor consults at query time
//
// Design policy:
//   - Keep only public APIs in the root package; put decoupled internals
//     under internal/.
//   - Place the event-builder DSL under notation/, alternative front ends
//     under source/, and the CLI under cmd/graphforge. Built-in middleware
//     lives in the root package because the compiler applies it.
//   - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	events := notation.Stream(
//		notation.Object("post").
//			Field("title", notation.NonNull(notation.Named("string"))),
//	)
//	schema, err := graphforge.Compile(events, graphforge.WithModule("blog"))
//	if err != nil { ... }             // malformed notation, fail-fast
//	if len(schema.Errors) > 0 { ... } // deferred validation issues
package graphforge
