package graphforge

// Compile turns a declaration event stream into a compiled schema.
//
// Malformed notation — placement violations, reserved identifiers, unknown
// import-module references — fails fast with a non-nil error and no schema.
// Schema-level validation failures — missing field-import sources, field
// import cycles — are deferred into the returned schema's Errors list so the
// rest of the graph stays inspectable.
func Compile(events []Event, opts ...Option) (*Schema, error) {
	o := applyOptions(opts)

	toplevel, imports, err := assemble(o.module, events)
	if err != nil {
		return nil, err
	}
	o.logger.Debug().
		Str("module", o.module).
		Int("events", len(events)).
		Int("types", len(toplevel)).
		Int("type_imports", len(imports)).
		Msg("assembled declaration stream")

	pool := newTypePool(o.module, toplevel)
	if err := mergeImports(pool, imports, o.registry); err != nil {
		return nil, err
	}

	issues := resolveFieldImports(pool)
	table := buildFunctionTable(pool)

	schema := &Schema{
		Module:    o.module,
		Types:     make(map[string]TypeDefinition, len(pool.byIdent)),
		Errors:    issues,
		Functions: table,
	}
	for _, key := range pool.order {
		if pool.byIdent[key.Ident] != key {
			continue // shadowed by a local type or an earlier import
		}
		schema.Types[key.Ident] = pool.defs[key]
		schema.order = append(schema.order, key.Ident)
	}

	o.logger.Debug().
		Str("module", o.module).
		Int("pool", len(schema.order)).
		Int("deferred_errors", len(issues)).
		Msg("compiled schema")
	return schema, nil
}
