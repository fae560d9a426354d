package graphforge

// Schema is the compiled artifact: the resolved type pool, the deferred
// error list and the function table. It is immutable once Compile returns —
// compile once, read many. A schema whose Errors list is non-empty is
// available for inspection but must not serve traffic.
type Schema struct {
	Module    string
	Types     map[string]TypeDefinition
	Errors    Issues
	Functions *FunctionTable

	order []string
}

// Type looks up a toplevel type definition by identifier.
func (s *Schema) Type(identifier string) (TypeDefinition, bool) {
	def, ok := s.Types[identifier]
	return def, ok
}

// Identifiers returns the toplevel type identifiers in deterministic order:
// local declarations first in declaration order, then imported types in
// import-directive order.
func (s *Schema) Identifiers() []string {
	return append([]string(nil), s.order...)
}

// Valid reports whether the schema compiled without deferred errors.
func (s *Schema) Valid() bool { return len(s.Errors) == 0 }
