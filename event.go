package graphforge

// EventKind identifies one declaration event variant. The set is closed: the
// assembler switches exhaustively over it and the placement table maps every
// kind to its legal nesting contexts.
type EventKind uint8

const (
	EventOpenObject EventKind = iota + 1
	EventOpenInterface
	EventOpenInputObject
	EventOpenScalar
	EventOpenEnum
	EventOpenUnion
	EventOpenDirective
	EventOpenField
	EventOpenArg
	EventOpenValue
	EventClose
	EventSetDescription
	EventSetInterfaces
	EventImportTypes
	EventImportFields
	EventSetMiddleware
	EventSetResolve
	EventSetParse
	EventSetSerialize
	EventSetIsTypeOf
	EventSetResolveType
	EventSetDeprecate
	EventSetComplexity
	EventSetPrivate
	EventSetMeta
	EventSetOn
	EventSetInstruction
	EventSetExpand
	EventSetConfig
	EventSetTrigger
	EventSetTypes
)

var eventKindNames = map[EventKind]string{
	EventOpenObject:      "open_object",
	EventOpenInterface:   "open_interface",
	EventOpenInputObject: "open_input_object",
	EventOpenScalar:      "open_scalar",
	EventOpenEnum:        "open_enum",
	EventOpenUnion:       "open_union",
	EventOpenDirective:   "open_directive",
	EventOpenField:       "open_field",
	EventOpenArg:         "open_arg",
	EventOpenValue:       "open_value",
	EventClose:           "close",
	EventSetDescription:  "set_description",
	EventSetInterfaces:   "set_interfaces",
	EventImportTypes:     "set_import_types",
	EventImportFields:    "set_import_fields",
	EventSetMiddleware:   "set_middleware",
	EventSetResolve:      "set_resolve",
	EventSetParse:        "set_parse",
	EventSetSerialize:    "set_serialize",
	EventSetIsTypeOf:     "set_is_type_of",
	EventSetResolveType:  "set_resolve_type",
	EventSetDeprecate:    "set_deprecate",
	EventSetComplexity:   "set_complexity",
	EventSetPrivate:      "set_private",
	EventSetMeta:         "set_meta",
	EventSetOn:           "set_on",
	EventSetInstruction:  "set_instruction",
	EventSetExpand:       "set_expand",
	EventSetConfig:       "set_config",
	EventSetTrigger:      "set_trigger",
	EventSetTypes:        "set_types",
}

// String returns the contract name of the kind, e.g. "open_object".
func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return "unknown"
}

// IsOpen reports whether the kind opens a new scope.
func (k EventKind) IsOpen() bool {
	return k >= EventOpenObject && k <= EventOpenValue
}

// Event is one unit of the declaration stream. Open events carry Identifier
// and optionally Attrs; attribute and import events carry Payload. Usage
// records the surface keyword that produced the event when it differs from
// the kind's default (for example an object opened via the root "query"
// keyword, or "interface" used as an attribute rather than a type).
type Event struct {
	Kind       EventKind
	Identifier string
	Usage      string
	Attrs      *OpenAttrs
	Payload    Payload
	Loc        Location
}

// OpenAttrs carries the inline attributes of open events: the block-form
// description of any scope, and the type/default/value attributes of
// open_field, open_arg and open_value.
type OpenAttrs struct {
	Description string
	Type        TypeRef // field and arg type reference
	Default     any     // arg default value
	HasDefault  bool
	Value       any // enum value raw value
	HasValue    bool
}

// Payload is the closed set of attribute payloads.
type Payload interface{ payload() }

// DescriptionPayload carries standalone set_description text, which attaches
// to the next sibling declaration of the enclosing scope. Block-form
// descriptions travel on the open event's Attrs instead.
type DescriptionPayload struct{ Text string }

// InterfacesPayload carries set_interfaces identifiers.
type InterfacesPayload struct{ Interfaces []string }

// TypesPayload carries set_types member identifiers for a union.
type TypesPayload struct{ Types []string }

// ImportTypesPayload names an already-compiled module whose toplevel types
// join the current pool. Only/Except filter by identifier; at most one of
// the two may be set.
type ImportTypesPayload struct {
	Module string
	Only   []string
	Except []string
}

// ImportFieldsPayload names a type whose resolved fields merge into the
// enclosing type. Module scopes the lookup to one imported module; when
// empty the source is looked up across the whole pool.
type ImportFieldsPayload struct {
	Source string
	Module string
}

// MiddlewarePayload appends one handler to the enclosing field's chain.
type MiddlewarePayload struct{ Spec MiddlewareSpec }

// ResolvePayload attaches a resolver to the enclosing field.
type ResolvePayload struct{ Fn ResolveFunc }

// ParsePayload attaches a scalar parse function.
type ParsePayload struct{ Fn ParseFunc }

// SerializePayload attaches a scalar serialize function.
type SerializePayload struct{ Fn SerializeFunc }

// IsTypeOfPayload attaches an object type membership test.
type IsTypeOfPayload struct{ Fn IsTypeOfFunc }

// ResolveTypePayload attaches a concrete-type resolver to an interface or union.
type ResolveTypePayload struct{ Fn ResolveTypeFunc }

// DeprecatePayload marks the enclosing declaration deprecated.
type DeprecatePayload struct{ Reason string }

// ComplexityPayload attaches a query-cost function to the enclosing field.
type ComplexityPayload struct{ Fn ComplexityFunc }

// PrivatePayload records compiler-private data on the enclosing declaration.
type PrivatePayload struct {
	Key   string
	Value any
}

// MetaPayload records user metadata on the enclosing declaration.
type MetaPayload struct {
	Key   string
	Value any
}

// OnPayload lists the AST node kinds a directive may be applied to.
type OnPayload struct{ Locations []string }

// InstructionPayload attaches a directive instruction function.
type InstructionPayload struct{ Fn InstructionFunc }

// ExpandPayload attaches a directive expansion function.
type ExpandPayload struct{ Fn ExpandFunc }

// ConfigPayload attaches a subscription field config function.
type ConfigPayload struct{ Fn ConfigFunc }

// TriggerPayload registers mutations that trigger the enclosing subscription
// field, with the topic function that routes results.
type TriggerPayload struct {
	Mutations []string
	Topic     TopicFunc
}

func (DescriptionPayload) payload()  {}
func (InterfacesPayload) payload()   {}
func (TypesPayload) payload()        {}
func (ImportTypesPayload) payload()  {}
func (ImportFieldsPayload) payload() {}
func (MiddlewarePayload) payload()   {}
func (ResolvePayload) payload()      {}
func (ParsePayload) payload()        {}
func (SerializePayload) payload()    {}
func (IsTypeOfPayload) payload()     {}
func (ResolveTypePayload) payload()  {}
func (DeprecatePayload) payload()    {}
func (ComplexityPayload) payload()   {}
func (PrivatePayload) payload()      {}
func (MetaPayload) payload()         {}
func (OnPayload) payload()           {}
func (InstructionPayload) payload()  {}
func (ExpandPayload) payload()       {}
func (ConfigPayload) payload()       {}
func (TriggerPayload) payload()      {}
