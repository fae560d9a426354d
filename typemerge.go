package graphforge

// The type pool is the working set of definitions available to field-import
// resolution within one compiling module: locally declared types plus types
// merged in from other compiled modules via set_import_types.

// poolKey identifies one pool entry. Module is empty for locally declared
// types; imported entries carry their source module, which both deduplicates
// repeated imports and enables module-scoped source lookups.
type poolKey struct {
	Module string
	Ident  string
}

type typePool struct {
	module  string
	defs    map[poolKey]TypeDefinition
	byIdent map[string]poolKey // first writer wins; locals register first
	order   []poolKey          // locals in declaration order, then imports in directive order
}

func newTypePool(module string, local []TypeDefinition) *typePool {
	p := &typePool{
		module:  module,
		defs:    make(map[poolKey]TypeDefinition, len(local)),
		byIdent: make(map[string]poolKey, len(local)),
	}
	for _, def := range local {
		p.add(poolKey{Ident: def.Common().Identifier}, def)
	}
	return p
}

func (p *typePool) add(key poolKey, def TypeDefinition) {
	if _, exists := p.defs[key]; exists {
		return
	}
	p.defs[key] = def
	p.order = append(p.order, key)
	if _, taken := p.byIdent[key.Ident]; !taken {
		p.byIdent[key.Ident] = key
	}
}

// lookup finds a field-import source. A module-scoped source consults only
// that module's entries; an unscoped source resolves across the whole pool
// with locally declared types taking precedence.
func (p *typePool) lookup(source, module string) (TypeDefinition, poolKey, bool) {
	if module != "" {
		key := poolKey{Module: module, Ident: source}
		def, ok := p.defs[key]
		return def, key, ok
	}
	key, ok := p.byIdent[source]
	if !ok {
		return nil, poolKey{}, false
	}
	return p.defs[key], key, true
}

// mergeImports loads each imported module's toplevel definitions into the
// pool. Directive order only affects pool iteration order (and therefore
// later error-reporting order), never pool content. An unknown module
// reference is a broken build reference and fails immediately.
func mergeImports(p *typePool, imports []typeImport, reg *Registry) error {
	for _, imp := range imports {
		src, ok := reg.Lookup(imp.Module)
		if !ok {
			return &UnknownModuleError{Module: imp.Module, Loc: imp.Loc}
		}
		for _, identifier := range src.Identifiers() {
			if !importAllowed(identifier, imp.Only, imp.Except) {
				continue
			}
			def := cloneDefinition(src.Types[identifier])
			def.Common().Flags |= FlagImported
			p.add(poolKey{Module: imp.Module, Ident: identifier}, def)
		}
	}
	return nil
}

func importAllowed(identifier string, only, except []string) bool {
	if len(only) > 0 {
		for _, o := range only {
			if o == identifier {
				return true
			}
		}
		return false
	}
	for _, e := range except {
		if e == identifier {
			return false
		}
	}
	return true
}

// cloneDefinition copies a definition deeply enough that later pipeline
// phases can write resolved fields into the pool without mutating the
// already-compiled source module.
func cloneDefinition(def TypeDefinition) TypeDefinition {
	switch d := def.(type) {
	case *ObjectDefinition:
		c := *d
		c.Fields = cloneFields(d.Fields)
		c.Interfaces = append([]string(nil), d.Interfaces...)
		c.FieldImports = append([]FieldImport(nil), d.FieldImports...)
		return &c
	case *InterfaceDefinition:
		c := *d
		c.Fields = cloneFields(d.Fields)
		c.FieldImports = append([]FieldImport(nil), d.FieldImports...)
		return &c
	case *InputObjectDefinition:
		c := *d
		c.Fields = cloneFields(d.Fields)
		c.FieldImports = append([]FieldImport(nil), d.FieldImports...)
		return &c
	case *ScalarDefinition:
		c := *d
		return &c
	case *EnumDefinition:
		c := *d
		c.Values = append([]EnumValueDefinition(nil), d.Values...)
		return &c
	case *UnionDefinition:
		c := *d
		c.Types = append([]string(nil), d.Types...)
		return &c
	case *DirectiveDefinition:
		c := *d
		c.Locations = append([]string(nil), d.Locations...)
		c.Args = append([]ArgumentDefinition(nil), d.Args...)
		return &c
	}
	return def
}

func cloneFields(fields []FieldDefinition) []FieldDefinition {
	if fields == nil {
		return nil
	}
	out := make([]FieldDefinition, len(fields))
	for i, f := range fields {
		f.Args = append([]ArgumentDefinition(nil), f.Args...)
		f.Middleware = append([]MiddlewareSpec(nil), f.Middleware...)
		out[i] = f
	}
	return out
}
