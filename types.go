package graphforge

// TypeKind discriminates the closed set of type definition variants.
type TypeKind uint8

const (
	KindObject TypeKind = iota + 1
	KindInterface
	KindInputObject
	KindScalar
	KindEnum
	KindUnion
	KindDirective
)

var typeKindNames = map[TypeKind]string{
	KindObject:      "object",
	KindInterface:   "interface",
	KindInputObject: "input_object",
	KindScalar:      "scalar",
	KindEnum:        "enum",
	KindUnion:       "union",
	KindDirective:   "directive",
}

func (k TypeKind) String() string {
	if s, ok := typeKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Flags marks compiler-internal state on a definition.
type Flags uint8

const (
	// FlagImported marks a definition that entered the pool through
	// import_types rather than local declaration.
	FlagImported Flags = 1 << iota
)

// Has reports whether all bits of f2 are set.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Definition is the common part shared by every type definition variant.
type Definition struct {
	Identifier  string
	Name        string // display name; camel-cased identifier unless set
	Description string
	SourceRef   SourceReference
	Flags       Flags
	Meta        map[string]any
	Private     map[string]any
}

// TypeDefinition is the closed interface over the seven definition variants.
type TypeDefinition interface {
	Kind() TypeKind
	Common() *Definition
}

var (
	_ TypeDefinition = (*ObjectDefinition)(nil)
	_ TypeDefinition = (*InterfaceDefinition)(nil)
	_ TypeDefinition = (*InputObjectDefinition)(nil)
	_ TypeDefinition = (*ScalarDefinition)(nil)
	_ TypeDefinition = (*EnumDefinition)(nil)
	_ TypeDefinition = (*UnionDefinition)(nil)
	_ TypeDefinition = (*DirectiveDefinition)(nil)
)

// FieldImport is one unresolved import_fields directive recorded on a
// field-bearing definition. The resolver consumes these in declaration order.
type FieldImport struct {
	Source string
	Module string
	Loc    Location
}

// TriggerSpec registers mutations that trigger a subscription field.
type TriggerSpec struct {
	Mutations []string
	Topic     TopicFunc
}

// FieldDefinition is one field of an object, interface or input object.
// Identifier and Name coincide for fields: field identifiers keep their raw
// form rather than being camel-cased.
type FieldDefinition struct {
	Identifier  string
	Name        string
	Type        TypeRef
	Args        []ArgumentDefinition
	Middleware  []MiddlewareSpec
	Deprecation string
	Description string
	Complexity  ComplexityFunc
	Config      ConfigFunc
	Triggers    []TriggerSpec
	Loc         Location
}

// ArgumentDefinition is one argument of a field or directive.
type ArgumentDefinition struct {
	Identifier  string
	Name        string
	Type        TypeRef
	Default     any
	HasDefault  bool
	Description string
	Deprecation string
	Loc         Location
}

// EnumValueDefinition is one value of an enum. Name defaults to the upcased
// identifier; Value defaults to the identifier itself.
type EnumValueDefinition struct {
	Identifier  string
	Name        string
	Value       any
	Description string
	Deprecation string
	Loc         Location
}

// ObjectDefinition is an output object type.
type ObjectDefinition struct {
	Definition
	Fields       []FieldDefinition
	Interfaces   []string
	IsTypeOf     IsTypeOfFunc
	FieldImports []FieldImport
}

func (*ObjectDefinition) Kind() TypeKind        { return KindObject }
func (d *ObjectDefinition) Common() *Definition { return &d.Definition }

// InterfaceDefinition is an abstract output type.
type InterfaceDefinition struct {
	Definition
	Fields       []FieldDefinition
	ResolveType  ResolveTypeFunc
	FieldImports []FieldImport
}

func (*InterfaceDefinition) Kind() TypeKind        { return KindInterface }
func (d *InterfaceDefinition) Common() *Definition { return &d.Definition }

// InputObjectDefinition is an input object type.
type InputObjectDefinition struct {
	Definition
	Fields       []FieldDefinition
	FieldImports []FieldImport
}

func (*InputObjectDefinition) Kind() TypeKind        { return KindInputObject }
func (d *InputObjectDefinition) Common() *Definition { return &d.Definition }

// ScalarDefinition is a leaf type with parse/serialize behavior.
type ScalarDefinition struct {
	Definition
	Parse     ParseFunc
	Serialize SerializeFunc
}

func (*ScalarDefinition) Kind() TypeKind        { return KindScalar }
func (d *ScalarDefinition) Common() *Definition { return &d.Definition }

// EnumDefinition is a leaf type with a fixed value set.
type EnumDefinition struct {
	Definition
	Values []EnumValueDefinition
}

func (*EnumDefinition) Kind() TypeKind        { return KindEnum }
func (d *EnumDefinition) Common() *Definition { return &d.Definition }

// UnionDefinition is an abstract type over a set of object identifiers.
type UnionDefinition struct {
	Definition
	Types       []string
	ResolveType ResolveTypeFunc
}

func (*UnionDefinition) Kind() TypeKind        { return KindUnion }
func (d *UnionDefinition) Common() *Definition { return &d.Definition }

// DirectiveDefinition declares a directive, its legal locations and its
// compile-time behavior.
type DirectiveDefinition struct {
	Definition
	Locations   []string
	Args        []ArgumentDefinition
	Instruction InstructionFunc
	Expand      ExpandFunc
}

func (*DirectiveDefinition) Kind() TypeKind        { return KindDirective }
func (d *DirectiveDefinition) Common() *Definition { return &d.Definition }

// fieldCarrier gives the resolver uniform access to the three field-bearing
// variants. Fields is the declared set before resolution and the resolved
// set after.
func fieldCarrier(def TypeDefinition) (fields *[]FieldDefinition, imports []FieldImport, ok bool) {
	switch d := def.(type) {
	case *ObjectDefinition:
		return &d.Fields, d.FieldImports, true
	case *InterfaceDefinition:
		return &d.Fields, d.FieldImports, true
	case *InputObjectDefinition:
		return &d.Fields, d.FieldImports, true
	}
	return nil, nil, false
}
