package graphforge

// Category is the first axis of the function table.
type Category uint8

const (
	CategoryObject Category = iota + 1
	CategoryScalar
	CategoryInterface
	CategoryUnion
	CategoryDirective
)

// Well-known attribute names in the function table. Field entries use the
// field identifier as the attribute.
const (
	AttrParse       = "parse"
	AttrSerialize   = "serialize"
	AttrIsTypeOf    = "is_type_of"
	AttrResolveType = "resolve_type"
	AttrInstruction = "instruction"
	AttrExpand      = "expand"
)

type functionKey struct {
	Category Category
	Type     string
	Attr     string
}

// FunctionTable maps (category, type identifier, attribute-or-field
// identifier) to the function or middleware chain bound there. It is built
// once at compile time; the query executor only reads it.
type FunctionTable struct {
	entries map[functionKey]any
}

// Get returns the raw entry for a key.
func (t *FunctionTable) Get(c Category, typeIdent, attr string) (any, bool) {
	v, ok := t.entries[functionKey{Category: c, Type: typeIdent, Attr: attr}]
	return v, ok
}

// ScalarParse returns a scalar's parse function.
func (t *FunctionTable) ScalarParse(typeIdent string) (ParseFunc, bool) {
	v, ok := t.Get(CategoryScalar, typeIdent, AttrParse)
	if !ok {
		return nil, false
	}
	fn, ok := v.(ParseFunc)
	return fn, ok
}

// ScalarSerialize returns a scalar's serialize function.
func (t *FunctionTable) ScalarSerialize(typeIdent string) (SerializeFunc, bool) {
	v, ok := t.Get(CategoryScalar, typeIdent, AttrSerialize)
	if !ok {
		return nil, false
	}
	fn, ok := v.(SerializeFunc)
	return fn, ok
}

// IsTypeOf returns an object's membership test.
func (t *FunctionTable) IsTypeOf(typeIdent string) (IsTypeOfFunc, bool) {
	v, ok := t.Get(CategoryObject, typeIdent, AttrIsTypeOf)
	if !ok {
		return nil, false
	}
	fn, ok := v.(IsTypeOfFunc)
	return fn, ok
}

// ResolveType returns an interface's or union's concrete-type resolver.
func (t *FunctionTable) ResolveType(c Category, typeIdent string) (ResolveTypeFunc, bool) {
	v, ok := t.Get(c, typeIdent, AttrResolveType)
	if !ok {
		return nil, false
	}
	fn, ok := v.(ResolveTypeFunc)
	return fn, ok
}

// FieldMiddleware returns the middleware chain for an object field.
func (t *FunctionTable) FieldMiddleware(typeIdent, fieldIdent string) []MiddlewareSpec {
	v, ok := t.Get(CategoryObject, typeIdent, fieldIdent)
	if !ok {
		return nil
	}
	chain, _ := v.([]MiddlewareSpec)
	return chain
}

// subscriptionRootIdentifier is the type whose fields receive pass-through
// default middleware: their parent is already the pushed-out value.
const subscriptionRootIdentifier = "subscription"

// buildFunctionTable emits the executor lookup table for every finalized
// type in the pool, applying the default-middleware policy to fields with no
// explicitly attached chain. The policy result is also written back onto the
// field definition so the graph and the table agree.
func buildFunctionTable(p *typePool) *FunctionTable {
	t := &FunctionTable{entries: make(map[functionKey]any)}
	put := func(c Category, typeIdent, attr string, v any) {
		t.entries[functionKey{Category: c, Type: typeIdent, Attr: attr}] = v
	}

	for _, key := range p.order {
		// Skip imported entries shadowed by a local type of the same
		// identifier: only the visible definition reaches the schema, and its
		// entries must not be overwritten by the shadowed one.
		if p.byIdent[key.Ident] != key {
			continue
		}
		switch d := p.defs[key].(type) {
		case *ScalarDefinition:
			if d.Parse != nil {
				put(CategoryScalar, d.Identifier, AttrParse, d.Parse)
			}
			if d.Serialize != nil {
				put(CategoryScalar, d.Identifier, AttrSerialize, d.Serialize)
			}
		case *ObjectDefinition:
			if d.IsTypeOf != nil {
				put(CategoryObject, d.Identifier, AttrIsTypeOf, d.IsTypeOf)
			}
			for i := range d.Fields {
				f := &d.Fields[i]
				if len(f.Middleware) == 0 {
					f.Middleware = []MiddlewareSpec{defaultMiddleware(d.Identifier, f.Identifier)}
				}
				put(CategoryObject, d.Identifier, f.Identifier, f.Middleware)
			}
		case *InterfaceDefinition:
			if d.ResolveType != nil {
				put(CategoryInterface, d.Identifier, AttrResolveType, d.ResolveType)
			}
		case *UnionDefinition:
			if d.ResolveType != nil {
				put(CategoryUnion, d.Identifier, AttrResolveType, d.ResolveType)
			}
		case *DirectiveDefinition:
			if d.Instruction != nil {
				put(CategoryDirective, d.Identifier, AttrInstruction, d.Instruction)
			}
			if d.Expand != nil {
				put(CategoryDirective, d.Identifier, AttrExpand, d.Expand)
			}
		}
	}
	return t
}

func defaultMiddleware(typeIdent, fieldIdent string) MiddlewareSpec {
	if typeIdent == subscriptionRootIdentifier {
		return PassParent()
	}
	return MapGet(fieldIdent)
}
