package graphforge

import (
	"fmt"
	"strings"

	"github.com/forgeql/graphforge/internal/graphwalk"
)

// resolveFieldImports computes each pool type's resolved field set over the
// import graph. Missing sources and cycles become deferred issues; the rest
// of the pool still resolves. The computation is a pure function of the pool
// content, so re-running it on an already-resolved pool is a no-op.
func resolveFieldImports(p *typePool) Issues {
	var issues Issues

	// Edge construction. A directive whose source cannot be found records an
	// issue and contributes no edge; resolution continues for other types.
	edges := make(map[poolKey][]poolKey)
	edgeLocs := make(map[[2]poolKey]Location) // (from, to) -> directive location
	for _, key := range p.order {
		_, imports, ok := fieldCarrier(p.defs[key])
		if !ok {
			continue
		}
		for _, imp := range imports {
			_, target, found := p.lookup(imp.Source, imp.Module)
			if !found {
				issues = AppendIssues(issues, Issue{
					Rule:     RuleFieldImportsExist,
					Artifact: fmt.Sprintf("field import source `%s' does not exist in the schema", imp.Source),
					Value:    imp.Source,
					Loc:      imp.Loc,
				})
				continue
			}
			edges[key] = append(edges[key], target)
			edgeLocs[[2]poolKey{key, target}] = imp.Loc
		}
	}

	// Memoized postorder resolution with on-stack cycle detection. Types on
	// a cycle abort to their own declared fields.
	tainted := make(map[poolKey]bool)
	resolved := make(map[poolKey][]FieldDefinition)
	graphwalk.Walk(graphwalk.Config[poolKey]{
		Starts: p.order,
		Next:   func(k poolKey) []poolKey { return edges[k] },
		OnCycle: func(path []poolKey, closing poolKey) {
			for _, k := range path {
				tainted[k] = true
			}
			issues = AppendIssues(issues, Issue{
				Rule:     RuleNoCircularFieldImports,
				Artifact: fmt.Sprintf("field imports must not form a cycle: %s", cyclePath(path)),
				Value:    closing.Ident,
				Loc:      edgeLocs[[2]poolKey{closing, path[0]}],
			})
		},
		OnDone: func(k poolKey) {
			fields, _, ok := fieldCarrier(p.defs[k])
			if !ok {
				return
			}
			if tainted[k] {
				resolved[k] = *fields
				return
			}
			var merged []FieldDefinition
			for _, target := range edges[k] {
				merged = append(merged, resolved[target]...)
			}
			merged = append(merged, *fields...)
			merged = dedupeFields(merged)
			resolved[k] = merged
			*fields = merged
		},
	})

	return issues
}

// cyclePath renders a cycle as `n1' => `n2' => ... => `n1'.
func cyclePath(path []poolKey) string {
	parts := make([]string, 0, len(path)+1)
	for _, k := range path {
		parts = append(parts, fmt.Sprintf("`%s'", k.Ident))
	}
	parts = append(parts, fmt.Sprintf("`%s'", path[0].Ident))
	return strings.Join(parts, " => ")
}

// dedupeFields deduplicates by identifier with later entries overriding
// earlier ones: fields declared on the type itself come last in the merged
// sequence, so they always win over imported fields of the same identifier.
// Positions are stable on the first occurrence; only the definition is
// replaced.
func dedupeFields(fields []FieldDefinition) []FieldDefinition {
	winner := make(map[string]FieldDefinition, len(fields))
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, seen := winner[f.Identifier]; !seen {
			order = append(order, f.Identifier)
		}
		winner[f.Identifier] = f
	}
	out := make([]FieldDefinition, len(order))
	for i, identifier := range order {
		out[i] = winner[identifier]
	}
	return out
}
