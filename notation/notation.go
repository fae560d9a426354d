// Package notation provides fluent builders that produce the declaration
// event stream the compiler consumes. It plays the role a language's macro
// layer normally would: each builder call captures its caller's file and
// line so compile errors point at the notation site.
package notation

import (
	"runtime"

	forge "github.com/forgeql/graphforge"
)

// Decl is one toplevel or nested declaration that can contribute events.
type Decl interface {
	Events() []forge.Event
}

// Stream flattens declarations into a single well-formed event stream.
func Stream(decls ...Decl) []forge.Event {
	var out []forge.Event
	for _, d := range decls {
		out = append(out, d.Events()...)
	}
	return out
}

// here captures the file and line of the notation call site. skip counts
// frames above this helper; exported builder entry points pass 2.
func here(skip int) forge.Location {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return forge.Location{}
	}
	return forge.Location{File: file, Line: line}
}

// Named, ListOf and NonNull re-export the type reference constructors so
// notation blocks read without a second import.
func Named(identifier string) forge.TypeRef  { return forge.Named(identifier) }
func ListOf(of forge.TypeRef) forge.TypeRef  { return forge.ListOf(of) }
func NonNull(of forge.TypeRef) forge.TypeRef { return forge.NonNull(of) }

// Desc records a standalone description that attaches to the next sibling
// declaration.
type standaloneDesc struct {
	ev forge.Event
}

func (d standaloneDesc) Events() []forge.Event { return []forge.Event{d.ev} }

// Desc creates a standalone description declaration.
func Desc(text string) Decl {
	return standaloneDesc{ev: forge.Event{
		Kind:    forge.EventSetDescription,
		Payload: forge.DescriptionPayload{Text: text},
		Loc:     here(2),
	}}
}

// ImportTypesBuilder declares a toplevel set_import_types directive.
type ImportTypesBuilder struct {
	module string
	only   []string
	except []string
	loc    forge.Location
}

// ImportTypes pulls another compiled module's toplevel types into the
// current schema.
func ImportTypes(module string) *ImportTypesBuilder {
	return &ImportTypesBuilder{module: module, loc: here(2)}
}

// Only restricts the import to the listed identifiers.
func (b *ImportTypesBuilder) Only(identifiers ...string) *ImportTypesBuilder {
	b.only = append(b.only, identifiers...)
	return b
}

// Except imports everything but the listed identifiers.
func (b *ImportTypesBuilder) Except(identifiers ...string) *ImportTypesBuilder {
	b.except = append(b.except, identifiers...)
	return b
}

func (b *ImportTypesBuilder) Events() []forge.Event {
	return []forge.Event{{
		Kind:    forge.EventImportTypes,
		Payload: forge.ImportTypesPayload{Module: b.module, Only: b.only, Except: b.except},
		Loc:     b.loc,
	}}
}
