package graphforge

// RefKind discriminates TypeRef variants.
type RefKind uint8

const (
	RefNamed RefKind = iota + 1
	RefList
	RefNonNull
)

// TypeRef references a type by identifier, optionally wrapped in list and
// non-null modifiers. The zero value means "no reference".
type TypeRef struct {
	Kind RefKind
	Name string   // set when Kind == RefNamed
	Of   *TypeRef // set when Kind == RefList or RefNonNull
}

// Named references a type by identifier.
func Named(identifier string) TypeRef {
	return TypeRef{Kind: RefNamed, Name: identifier}
}

// ListOf wraps a reference in a list modifier.
func ListOf(of TypeRef) TypeRef {
	return TypeRef{Kind: RefList, Of: &of}
}

// NonNull wraps a reference in a non-null modifier.
func NonNull(of TypeRef) TypeRef {
	return TypeRef{Kind: RefNonNull, Of: &of}
}

// IsZero reports whether the reference is unset.
func (r TypeRef) IsZero() bool { return r.Kind == 0 }

// Unwrap returns the innermost named identifier, or "" for the zero value.
func (r TypeRef) Unwrap() string {
	for r.Kind == RefList || r.Kind == RefNonNull {
		r = *r.Of
	}
	return r.Name
}

// String renders the reference in GraphQL notation, e.g. "[user!]!".
func (r TypeRef) String() string {
	switch r.Kind {
	case RefNamed:
		return r.Name
	case RefList:
		return "[" + r.Of.String() + "]"
	case RefNonNull:
		return r.Of.String() + "!"
	}
	return ""
}
