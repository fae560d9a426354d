package notation

import forge "github.com/forgeql/graphforge"

// node is one nested declaration subtree. Nested builders implement Decl by
// delegating to their root owner, so a chain like Object(...).Field(...) can
// be handed to Stream as a whole; nodeEvents emits just the subtree.
type node interface {
	nodeEvents() []forge.Event
}

// scope is the shared builder core: an open event, accumulated attribute
// events, nested declarations and the matching close.
type scope struct {
	open     forge.Event
	attrs    []forge.Event
	children []node
}

func (s *scope) nodeEvents() []forge.Event {
	out := make([]forge.Event, 0, 2+len(s.attrs))
	out = append(out, s.open)
	out = append(out, s.attrs...)
	for _, c := range s.children {
		out = append(out, c.nodeEvents()...)
	}
	return append(out, forge.Event{Kind: forge.EventClose, Loc: s.open.Loc})
}

func (s *scope) attr(kind forge.EventKind, p forge.Payload, loc forge.Location) {
	s.attrs = append(s.attrs, forge.Event{Kind: kind, Payload: p, Loc: loc})
}

func (s *scope) openAttrs() *forge.OpenAttrs {
	if s.open.Attrs == nil {
		s.open.Attrs = &forge.OpenAttrs{}
	}
	return s.open.Attrs
}

func openScope(kind forge.EventKind, identifier, usage string, loc forge.Location) scope {
	return scope{open: forge.Event{Kind: kind, Identifier: identifier, Usage: usage, Loc: loc}}
}

// ObjectBuilder declares an object type.
type ObjectBuilder struct{ scope }

// Object opens an object type declaration.
func Object(identifier string) *ObjectBuilder {
	return &ObjectBuilder{scope: openScope(forge.EventOpenObject, identifier, "", here(2))}
}

// Query opens the root query object.
func Query() *ObjectBuilder {
	return &ObjectBuilder{scope: openScope(forge.EventOpenObject, "query", "query", here(2))}
}

// Mutation opens the root mutation object.
func Mutation() *ObjectBuilder {
	return &ObjectBuilder{scope: openScope(forge.EventOpenObject, "mutation", "mutation", here(2))}
}

// Subscription opens the root subscription object.
func Subscription() *ObjectBuilder {
	return &ObjectBuilder{scope: openScope(forge.EventOpenObject, "subscription", "subscription", here(2))}
}

// Desc sets the block-form description.
func (b *ObjectBuilder) Desc(text string) *ObjectBuilder {
	b.openAttrs().Description = text
	return b
}

// Interfaces lists the interfaces the object implements.
func (b *ObjectBuilder) Interfaces(identifiers ...string) *ObjectBuilder {
	b.attr(forge.EventSetInterfaces, forge.InterfacesPayload{Interfaces: identifiers}, here(2))
	return b
}

// IsTypeOf attaches the object's membership test.
func (b *ObjectBuilder) IsTypeOf(fn forge.IsTypeOfFunc) *ObjectBuilder {
	b.attr(forge.EventSetIsTypeOf, forge.IsTypeOfPayload{Fn: fn}, here(2))
	return b
}

// ImportFields merges the resolved fields of another type into this one.
func (b *ObjectBuilder) ImportFields(source string) *ObjectBuilder {
	b.attr(forge.EventImportFields, forge.ImportFieldsPayload{Source: source}, here(2))
	return b
}

// ImportFieldsFrom merges fields from a type scoped to an imported module.
func (b *ObjectBuilder) ImportFieldsFrom(module, source string) *ObjectBuilder {
	b.attr(forge.EventImportFields, forge.ImportFieldsPayload{Source: source, Module: module}, here(2))
	return b
}

// Meta records user metadata on the object.
func (b *ObjectBuilder) Meta(key string, value any) *ObjectBuilder {
	b.attr(forge.EventSetMeta, forge.MetaPayload{Key: key, Value: value}, here(2))
	return b
}

// Private records compiler-private data on the object.
func (b *ObjectBuilder) Private(key string, value any) *ObjectBuilder {
	b.attr(forge.EventSetPrivate, forge.PrivatePayload{Key: key, Value: value}, here(2))
	return b
}

// Field opens a field declaration.
func (b *ObjectBuilder) Field(identifier string, ref forge.TypeRef) *FieldBuilder {
	return b.newField(identifier, ref, here(2))
}

func (b *ObjectBuilder) newField(identifier string, ref forge.TypeRef, loc forge.Location) *FieldBuilder {
	f := &FieldBuilder{owner: b, scope: openScope(forge.EventOpenField, identifier, "", loc)}
	f.openAttrs().Type = ref
	b.children = append(b.children, f)
	return f
}

// InterfaceBuilder declares an interface type.
type InterfaceBuilder struct{ scope }

// Interface opens an interface type declaration.
func Interface(identifier string) *InterfaceBuilder {
	return &InterfaceBuilder{scope: openScope(forge.EventOpenInterface, identifier, "", here(2))}
}

// Desc sets the block-form description.
func (b *InterfaceBuilder) Desc(text string) *InterfaceBuilder {
	b.openAttrs().Description = text
	return b
}

// ResolveType attaches the interface's concrete-type resolver.
func (b *InterfaceBuilder) ResolveType(fn forge.ResolveTypeFunc) *InterfaceBuilder {
	b.attr(forge.EventSetResolveType, forge.ResolveTypePayload{Fn: fn}, here(2))
	return b
}

// ImportFields merges the resolved fields of another type into this one.
func (b *InterfaceBuilder) ImportFields(source string) *InterfaceBuilder {
	b.attr(forge.EventImportFields, forge.ImportFieldsPayload{Source: source}, here(2))
	return b
}

// Field opens a field declaration.
func (b *InterfaceBuilder) Field(identifier string, ref forge.TypeRef) *FieldBuilder {
	return b.newField(identifier, ref, here(2))
}

func (b *InterfaceBuilder) newField(identifier string, ref forge.TypeRef, loc forge.Location) *FieldBuilder {
	f := &FieldBuilder{owner: b, scope: openScope(forge.EventOpenField, identifier, "", loc)}
	f.openAttrs().Type = ref
	b.children = append(b.children, f)
	return f
}

// InputObjectBuilder declares an input object type.
type InputObjectBuilder struct{ scope }

// InputObject opens an input object type declaration.
func InputObject(identifier string) *InputObjectBuilder {
	return &InputObjectBuilder{scope: openScope(forge.EventOpenInputObject, identifier, "", here(2))}
}

// Desc sets the block-form description.
func (b *InputObjectBuilder) Desc(text string) *InputObjectBuilder {
	b.openAttrs().Description = text
	return b
}

// ImportFields merges the resolved fields of another type into this one.
func (b *InputObjectBuilder) ImportFields(source string) *InputObjectBuilder {
	b.attr(forge.EventImportFields, forge.ImportFieldsPayload{Source: source}, here(2))
	return b
}

// Field opens a field declaration.
func (b *InputObjectBuilder) Field(identifier string, ref forge.TypeRef) *FieldBuilder {
	return b.newField(identifier, ref, here(2))
}

func (b *InputObjectBuilder) newField(identifier string, ref forge.TypeRef, loc forge.Location) *FieldBuilder {
	f := &FieldBuilder{owner: b, scope: openScope(forge.EventOpenField, identifier, "", loc)}
	f.openAttrs().Type = ref
	b.children = append(b.children, f)
	return f
}

// ScalarBuilder declares a scalar type.
type ScalarBuilder struct{ scope }

// Scalar opens a scalar type declaration.
func Scalar(identifier string) *ScalarBuilder {
	return &ScalarBuilder{scope: openScope(forge.EventOpenScalar, identifier, "", here(2))}
}

// Desc sets the block-form description.
func (b *ScalarBuilder) Desc(text string) *ScalarBuilder {
	b.openAttrs().Description = text
	return b
}

// Parse attaches the scalar's input conversion.
func (b *ScalarBuilder) Parse(fn forge.ParseFunc) *ScalarBuilder {
	b.attr(forge.EventSetParse, forge.ParsePayload{Fn: fn}, here(2))
	return b
}

// Serialize attaches the scalar's output conversion.
func (b *ScalarBuilder) Serialize(fn forge.SerializeFunc) *ScalarBuilder {
	b.attr(forge.EventSetSerialize, forge.SerializePayload{Fn: fn}, here(2))
	return b
}

// EnumBuilder declares an enum type.
type EnumBuilder struct{ scope }

// Enum opens an enum type declaration.
func Enum(identifier string) *EnumBuilder {
	return &EnumBuilder{scope: openScope(forge.EventOpenEnum, identifier, "", here(2))}
}

// Desc sets the block-form description.
func (b *EnumBuilder) Desc(text string) *EnumBuilder {
	b.openAttrs().Description = text
	return b
}

// Value declares an enum value whose raw value is its identifier.
func (b *EnumBuilder) Value(identifier string) *ValueBuilder {
	return b.newValue(identifier, nil, false, here(2))
}

// ValueAs declares an enum value with an explicit raw value.
func (b *EnumBuilder) ValueAs(identifier string, raw any) *ValueBuilder {
	return b.newValue(identifier, raw, true, here(2))
}

func (b *EnumBuilder) newValue(identifier string, raw any, hasRaw bool, loc forge.Location) *ValueBuilder {
	v := &ValueBuilder{enum: b, scope: openScope(forge.EventOpenValue, identifier, "", loc)}
	if hasRaw {
		attrs := v.openAttrs()
		attrs.Value = raw
		attrs.HasValue = true
	}
	b.children = append(b.children, v)
	return v
}

// UnionBuilder declares a union type.
type UnionBuilder struct{ scope }

// Union opens a union type declaration.
func Union(identifier string) *UnionBuilder {
	return &UnionBuilder{scope: openScope(forge.EventOpenUnion, identifier, "", here(2))}
}

// Desc sets the block-form description.
func (b *UnionBuilder) Desc(text string) *UnionBuilder {
	b.openAttrs().Description = text
	return b
}

// Types lists the union's member object identifiers.
func (b *UnionBuilder) Types(identifiers ...string) *UnionBuilder {
	b.attr(forge.EventSetTypes, forge.TypesPayload{Types: identifiers}, here(2))
	return b
}

// ResolveType attaches the union's concrete-type resolver.
func (b *UnionBuilder) ResolveType(fn forge.ResolveTypeFunc) *UnionBuilder {
	b.attr(forge.EventSetResolveType, forge.ResolveTypePayload{Fn: fn}, here(2))
	return b
}

// DirectiveBuilder declares a directive.
type DirectiveBuilder struct{ scope }

// Directive opens a directive declaration.
func Directive(identifier string) *DirectiveBuilder {
	return &DirectiveBuilder{scope: openScope(forge.EventOpenDirective, identifier, "", here(2))}
}

// Desc sets the block-form description.
func (b *DirectiveBuilder) Desc(text string) *DirectiveBuilder {
	b.openAttrs().Description = text
	return b
}

// On lists the AST node kinds the directive may be applied to.
func (b *DirectiveBuilder) On(locations ...string) *DirectiveBuilder {
	b.attr(forge.EventSetOn, forge.OnPayload{Locations: locations}, here(2))
	return b
}

// Instruction attaches the directive's instruction function.
func (b *DirectiveBuilder) Instruction(fn forge.InstructionFunc) *DirectiveBuilder {
	b.attr(forge.EventSetInstruction, forge.InstructionPayload{Fn: fn}, here(2))
	return b
}

// Expand attaches the directive's expansion function.
func (b *DirectiveBuilder) Expand(fn forge.ExpandFunc) *DirectiveBuilder {
	b.attr(forge.EventSetExpand, forge.ExpandPayload{Fn: fn}, here(2))
	return b
}

// Arg opens an argument declaration on the directive.
func (b *DirectiveBuilder) Arg(identifier string, ref forge.TypeRef) *ArgBuilder {
	return b.newArg(identifier, ref, here(2))
}

func (b *DirectiveBuilder) newArg(identifier string, ref forge.TypeRef, loc forge.Location) *ArgBuilder {
	a := &ArgBuilder{dir: b, scope: openScope(forge.EventOpenArg, identifier, "", loc)}
	a.openAttrs().Type = ref
	b.children = append(b.children, a)
	return a
}

func (b *ObjectBuilder) Events() []forge.Event      { return b.nodeEvents() }
func (b *InterfaceBuilder) Events() []forge.Event   { return b.nodeEvents() }
func (b *InputObjectBuilder) Events() []forge.Event { return b.nodeEvents() }
func (b *ScalarBuilder) Events() []forge.Event      { return b.nodeEvents() }
func (b *EnumBuilder) Events() []forge.Event        { return b.nodeEvents() }
func (b *UnionBuilder) Events() []forge.Event       { return b.nodeEvents() }
func (b *DirectiveBuilder) Events() []forge.Event   { return b.nodeEvents() }
