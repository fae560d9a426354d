package notation

import forge "github.com/forgeql/graphforge"

// fieldOwner lets a field builder chain sibling declarations back onto its
// enclosing type builder.
type fieldOwner interface {
	Decl
	newField(identifier string, ref forge.TypeRef, loc forge.Location) *FieldBuilder
}

// FieldBuilder declares one field of an object, interface or input object.
type FieldBuilder struct {
	owner fieldOwner
	scope
}

// Desc sets the block-form description.
func (f *FieldBuilder) Desc(text string) *FieldBuilder {
	f.openAttrs().Description = text
	return f
}

// Resolve attaches a resolver, which joins the field's middleware chain.
func (f *FieldBuilder) Resolve(fn forge.ResolveFunc) *FieldBuilder {
	f.attr(forge.EventSetResolve, forge.ResolvePayload{Fn: fn}, here(2))
	return f
}

// Middleware appends one handler to the field's chain.
func (f *FieldBuilder) Middleware(spec forge.MiddlewareSpec) *FieldBuilder {
	f.attr(forge.EventSetMiddleware, forge.MiddlewarePayload{Spec: spec}, here(2))
	return f
}

// Deprecate marks the field deprecated.
func (f *FieldBuilder) Deprecate(reason string) *FieldBuilder {
	f.attr(forge.EventSetDeprecate, forge.DeprecatePayload{Reason: reason}, here(2))
	return f
}

// Complexity attaches a query-cost function.
func (f *FieldBuilder) Complexity(fn forge.ComplexityFunc) *FieldBuilder {
	f.attr(forge.EventSetComplexity, forge.ComplexityPayload{Fn: fn}, here(2))
	return f
}

// Config attaches a subscription field's topic configuration.
func (f *FieldBuilder) Config(fn forge.ConfigFunc) *FieldBuilder {
	f.attr(forge.EventSetConfig, forge.ConfigPayload{Fn: fn}, here(2))
	return f
}

// Trigger registers mutations that trigger this subscription field.
func (f *FieldBuilder) Trigger(topic forge.TopicFunc, mutations ...string) *FieldBuilder {
	f.attr(forge.EventSetTrigger, forge.TriggerPayload{Mutations: mutations, Topic: topic}, here(2))
	return f
}

// Events emits the whole enclosing declaration, so a builder chain ending
// on a field can be handed to Stream directly.
func (f *FieldBuilder) Events() []forge.Event { return f.owner.Events() }

// Meta records user metadata on the field.
func (f *FieldBuilder) Meta(key string, value any) *FieldBuilder {
	f.attr(forge.EventSetMeta, forge.MetaPayload{Key: key, Value: value}, here(2))
	return f
}

// Arg opens an argument declaration on the field.
func (f *FieldBuilder) Arg(identifier string, ref forge.TypeRef) *ArgBuilder {
	return f.newArg(identifier, ref, here(2))
}

func (f *FieldBuilder) newArg(identifier string, ref forge.TypeRef, loc forge.Location) *ArgBuilder {
	a := &ArgBuilder{field: f, scope: openScope(forge.EventOpenArg, identifier, "", loc)}
	a.openAttrs().Type = ref
	f.children = append(f.children, a)
	return a
}

// Field opens a sibling field on the enclosing type.
func (f *FieldBuilder) Field(identifier string, ref forge.TypeRef) *FieldBuilder {
	return f.owner.newField(identifier, ref, here(2))
}

// ArgBuilder declares one argument of a field or directive.
type ArgBuilder struct {
	field *FieldBuilder     // nil for directive args
	dir   *DirectiveBuilder // nil for field args
	scope
}

// Events emits the whole enclosing declaration.
func (a *ArgBuilder) Events() []forge.Event {
	if a.field != nil {
		return a.field.Events()
	}
	return a.dir.Events()
}

// Desc sets the block-form description.
func (a *ArgBuilder) Desc(text string) *ArgBuilder {
	a.openAttrs().Description = text
	return a
}

// Default sets the argument's default value.
func (a *ArgBuilder) Default(v any) *ArgBuilder {
	attrs := a.openAttrs()
	attrs.Default = v
	attrs.HasDefault = true
	return a
}

// Deprecate marks the argument deprecated.
func (a *ArgBuilder) Deprecate(reason string) *ArgBuilder {
	a.attr(forge.EventSetDeprecate, forge.DeprecatePayload{Reason: reason}, here(2))
	return a
}

// Arg opens a sibling argument on the enclosing field or directive.
func (a *ArgBuilder) Arg(identifier string, ref forge.TypeRef) *ArgBuilder {
	if a.field != nil {
		return a.field.newArg(identifier, ref, here(2))
	}
	return a.dir.newArg(identifier, ref, here(2))
}

// Field opens a sibling field on the type enclosing this argument's field.
// Directives have no fields, so calling this on a directive argument panics.
func (a *ArgBuilder) Field(identifier string, ref forge.TypeRef) *FieldBuilder {
	if a.field == nil {
		panic("notation: Field called on a directive argument; directives carry args only")
	}
	return a.field.owner.newField(identifier, ref, here(2))
}

// ValueBuilder declares one enum value.
type ValueBuilder struct {
	enum *EnumBuilder
	scope
}

// Events emits the whole enclosing enum declaration.
func (v *ValueBuilder) Events() []forge.Event { return v.enum.Events() }

// Desc sets the block-form description.
func (v *ValueBuilder) Desc(text string) *ValueBuilder {
	v.openAttrs().Description = text
	return v
}

// Deprecate marks the value deprecated.
func (v *ValueBuilder) Deprecate(reason string) *ValueBuilder {
	v.attr(forge.EventSetDeprecate, forge.DeprecatePayload{Reason: reason}, here(2))
	return v
}

// Value opens a sibling enum value.
func (v *ValueBuilder) Value(identifier string) *ValueBuilder {
	return v.enum.newValue(identifier, nil, false, here(2))
}

// ValueAs opens a sibling enum value with an explicit raw value.
func (v *ValueBuilder) ValueAs(identifier string, raw any) *ValueBuilder {
	return v.enum.newValue(identifier, raw, true, here(2))
}
