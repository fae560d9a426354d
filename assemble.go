package graphforge

import (
	"fmt"

	"github.com/forgeql/graphforge/internal/ident"
	"github.com/forgeql/graphforge/internal/placement"
)

// reservedObjectIdentifiers may not be claimed by a plain object
// declaration; the root scopes carry dedicated usages.
var reservedObjectIdentifiers = map[string]bool{
	"query":        true,
	"mutation":     true,
	"subscription": true,
}

// placementKinds maps event kinds onto the placement table's vocabulary.
var placementKinds = map[EventKind]placement.Kind{
	EventOpenObject:      placement.Object,
	EventOpenInterface:   placement.Interface,
	EventOpenInputObject: placement.InputObject,
	EventOpenScalar:      placement.Scalar,
	EventOpenEnum:        placement.Enum,
	EventOpenUnion:       placement.Union,
	EventOpenDirective:   placement.Directive,
	EventOpenField:       placement.Field,
	EventOpenArg:         placement.Arg,
	EventOpenValue:       placement.Value,
	EventSetDescription:  placement.Description,
	EventSetInterfaces:   placement.Interfaces,
	EventImportTypes:     placement.ImportTypes,
	EventImportFields:    placement.ImportFields,
	EventSetMiddleware:   placement.Middleware,
	EventSetResolve:      placement.Resolve,
	EventSetParse:        placement.Parse,
	EventSetSerialize:    placement.Serialize,
	EventSetIsTypeOf:     placement.IsTypeOf,
	EventSetResolveType:  placement.ResolveType,
	EventSetDeprecate:    placement.Deprecate,
	EventSetComplexity:   placement.Complexity,
	EventSetPrivate:      placement.Private,
	EventSetMeta:         placement.Meta,
	EventSetOn:           placement.On,
	EventSetInstruction:  placement.Instruction,
	EventSetExpand:       placement.Expand,
	EventSetConfig:       placement.Config,
	EventSetTrigger:      placement.Trigger,
	EventSetTypes:        placement.Types,
}

// typeImport is one toplevel set_import_types directive in declaration order.
type typeImport struct {
	ImportTypesPayload
	Loc Location
}

// frame is one in-progress builder on the scope stack. It owns its
// accumulated children until popped, at which point ownership transfers to
// the parent frame or the toplevel list.
type frame struct {
	kind placement.Kind
	open Event

	description    string
	pendingDesc    string
	hasPendingDesc bool
	interfaces     []string
	memberTypes    []string
	deprecation    string
	locations      []string
	meta           map[string]any
	private        map[string]any
	fieldImports   []FieldImport
	middleware     []MiddlewareSpec
	parseFn        ParseFunc
	serializeFn    SerializeFunc
	isTypeOf       IsTypeOfFunc
	resolveType    ResolveTypeFunc
	complexity     ComplexityFunc
	configFn       ConfigFunc
	instructionFn  InstructionFunc
	expandFn       ExpandFunc
	triggers       []TriggerSpec

	fields []FieldDefinition
	args   []ArgumentDefinition
	values []EnumValueDefinition
}

// assembler consumes the declaration stream in a single pass, never
// revisiting a closed node.
type assembler struct {
	module string
	stack  []*frame

	toplevel []TypeDefinition
	imports  []typeImport

	pendingDesc    string
	hasPendingDesc bool
}

func (a *assembler) top() *frame {
	if len(a.stack) == 0 {
		return nil
	}
	return a.stack[len(a.stack)-1]
}

func (a *assembler) parentKind() placement.Kind {
	if t := a.top(); t != nil {
		return t.kind
	}
	return placement.Toplevel
}

// assemble runs the scope-stack pass over a single module's events.
func assemble(module string, events []Event) ([]TypeDefinition, []typeImport, error) {
	a := &assembler{module: module}
	for _, ev := range events {
		if err := a.consume(ev); err != nil {
			return nil, nil, err
		}
	}
	if len(a.stack) != 0 {
		// A front-end contract violation, not a schema error: every open
		// must be matched by exactly one close.
		panic(fmt.Sprintf("graphforge: unbalanced declaration stream: %d unclosed scope(s), first opened at %s",
			len(a.stack), a.stack[0].open.Loc))
	}
	return a.toplevel, a.imports, nil
}

func (a *assembler) consume(ev Event) error {
	if ev.Kind == EventClose {
		return a.close(ev)
	}

	pk, ok := placementKinds[ev.Kind]
	if !ok {
		panic(fmt.Sprintf("graphforge: unknown event kind %d at %s", ev.Kind, ev.Loc))
	}
	if err := placement.Validate(pk, ev.Usage, a.parentKind()); err != nil {
		return &NotationError{Message: err.Error(), Loc: ev.Loc}
	}

	if ev.Kind.IsOpen() {
		return a.push(ev, pk)
	}
	return a.attribute(ev)
}

func (a *assembler) push(ev Event, pk placement.Kind) error {
	if !ident.Valid(ev.Identifier) {
		return &NotationError{
			Message: fmt.Sprintf("%q is not a valid identifier", ev.Identifier),
			Loc:     ev.Loc,
		}
	}
	if ev.Kind == EventOpenObject && usageOf(ev) == "object" && reservedObjectIdentifiers[ev.Identifier] {
		return &NotationError{
			Message: fmt.Sprintf("the identifier `%s` is reserved and cannot be used for an object", ev.Identifier),
			Loc:     ev.Loc,
		}
	}

	f := &frame{kind: pk, open: ev}
	// A pending standalone description attaches to the next sibling unless
	// the new scope carries a block-form description of its own. Either way
	// the pending slot is consumed.
	var pending string
	var hasPending bool
	if parent := a.top(); parent != nil {
		pending, hasPending = parent.pendingDesc, parent.hasPendingDesc
		parent.pendingDesc, parent.hasPendingDesc = "", false
	} else {
		pending, hasPending = a.pendingDesc, a.hasPendingDesc
		a.pendingDesc, a.hasPendingDesc = "", false
	}
	switch {
	case ev.Attrs != nil && ev.Attrs.Description != "":
		f.description = ev.Attrs.Description
	case hasPending:
		f.description = pending
	}
	a.stack = append(a.stack, f)
	return nil
}

func (a *assembler) attribute(ev Event) error {
	f := a.top()
	switch p := ev.Payload.(type) {
	case DescriptionPayload:
		// Standalone description: held until the next sibling declaration
		// of this scope opens.
		if f == nil {
			a.pendingDesc, a.hasPendingDesc = p.Text, true
		} else {
			f.pendingDesc, f.hasPendingDesc = p.Text, true
		}
	case InterfacesPayload:
		f.interfaces = append(f.interfaces, p.Interfaces...)
	case TypesPayload:
		f.memberTypes = append(f.memberTypes, p.Types...)
	case ImportTypesPayload:
		a.imports = append(a.imports, typeImport{ImportTypesPayload: p, Loc: ev.Loc})
	case ImportFieldsPayload:
		f.fieldImports = append(f.fieldImports, FieldImport{Source: p.Source, Module: p.Module, Loc: ev.Loc})
	case MiddlewarePayload:
		f.middleware = append(f.middleware, p.Spec)
	case ResolvePayload:
		f.middleware = append(f.middleware, ResolveMiddleware(p.Fn))
	case ParsePayload:
		f.parseFn = p.Fn
	case SerializePayload:
		f.serializeFn = p.Fn
	case IsTypeOfPayload:
		f.isTypeOf = p.Fn
	case ResolveTypePayload:
		f.resolveType = p.Fn
	case DeprecatePayload:
		f.deprecation = p.Reason
		if f.deprecation == "" {
			f.deprecation = "deprecated"
		}
	case ComplexityPayload:
		f.complexity = p.Fn
	case PrivatePayload:
		if f.private == nil {
			f.private = map[string]any{}
		}
		f.private[p.Key] = p.Value
	case MetaPayload:
		if f.meta == nil {
			f.meta = map[string]any{}
		}
		f.meta[p.Key] = p.Value
	case OnPayload:
		f.locations = append(f.locations, p.Locations...)
	case InstructionPayload, ExpandPayload, ConfigPayload, TriggerPayload:
		a.attachBehavior(f, p)
	default:
		panic(fmt.Sprintf("graphforge: event %s carries no payload at %s", ev.Kind, ev.Loc))
	}
	return nil
}

// attachBehavior handles the payloads whose target field differs per frame
// kind but whose merge rule is uniform (last write wins, triggers
// accumulate).
func (a *assembler) attachBehavior(f *frame, p Payload) {
	switch p := p.(type) {
	case InstructionPayload:
		f.instructionFn = p.Fn
	case ExpandPayload:
		f.expandFn = p.Fn
	case ConfigPayload:
		f.configFn = p.Fn
	case TriggerPayload:
		f.triggers = append(f.triggers, TriggerSpec{Mutations: p.Mutations, Topic: p.Topic})
	}
}

func (a *assembler) close(ev Event) error {
	f := a.top()
	if f == nil {
		panic(fmt.Sprintf("graphforge: unbalanced declaration stream: close with no open scope at %s", ev.Loc))
	}
	a.stack = a.stack[:len(a.stack)-1]

	switch f.kind {
	case placement.Field:
		a.top().fields = append(a.top().fields, f.finalizeField())
	case placement.Arg:
		a.top().args = append(a.top().args, f.finalizeArg())
	case placement.Value:
		a.top().values = append(a.top().values, f.finalizeValue())
	default:
		a.toplevel = append(a.toplevel, f.finalizeType(a.module))
	}
	return nil
}

func (f *frame) finalizeField() FieldDefinition {
	attrs := f.open.Attrs
	fd := FieldDefinition{
		Identifier:  f.open.Identifier,
		Name:        f.open.Identifier, // field names keep their raw form
		Args:        f.args,
		Middleware:  f.middleware,
		Deprecation: f.deprecation,
		Description: f.description,
		Complexity:  f.complexity,
		Config:      f.configFn,
		Triggers:    f.triggers,
		Loc:         f.open.Loc,
	}
	if attrs != nil {
		fd.Type = attrs.Type
	}
	return fd
}

func (f *frame) finalizeArg() ArgumentDefinition {
	ad := ArgumentDefinition{
		Identifier:  f.open.Identifier,
		Name:        f.open.Identifier,
		Description: f.description,
		Deprecation: f.deprecation,
		Loc:         f.open.Loc,
	}
	if attrs := f.open.Attrs; attrs != nil {
		ad.Type = attrs.Type
		ad.Default = attrs.Default
		ad.HasDefault = attrs.HasDefault
	}
	return ad
}

func (f *frame) finalizeValue() EnumValueDefinition {
	vd := EnumValueDefinition{
		Identifier:  f.open.Identifier,
		Name:        ident.Upcase(f.open.Identifier),
		Value:       f.open.Identifier,
		Description: f.description,
		Deprecation: f.deprecation,
		Loc:         f.open.Loc,
	}
	if attrs := f.open.Attrs; attrs != nil && attrs.HasValue {
		vd.Value = attrs.Value
	}
	return vd
}

func (f *frame) finalizeType(module string) TypeDefinition {
	def := Definition{
		Identifier:  f.open.Identifier,
		Name:        ident.Camelize(f.open.Identifier),
		Description: f.description,
		Meta:        f.meta,
		Private:     f.private,
		SourceRef:   SourceReference{Module: module, Loc: f.open.Loc},
	}
	switch f.kind {
	case placement.Object:
		return &ObjectDefinition{
			Definition:   def,
			Fields:       f.fields,
			Interfaces:   f.interfaces,
			IsTypeOf:     f.isTypeOf,
			FieldImports: f.fieldImports,
		}
	case placement.Interface:
		return &InterfaceDefinition{
			Definition:   def,
			Fields:       f.fields,
			ResolveType:  f.resolveType,
			FieldImports: f.fieldImports,
		}
	case placement.InputObject:
		return &InputObjectDefinition{
			Definition:   def,
			Fields:       f.fields,
			FieldImports: f.fieldImports,
		}
	case placement.Scalar:
		return &ScalarDefinition{Definition: def, Parse: f.parseFn, Serialize: f.serializeFn}
	case placement.Enum:
		return &EnumDefinition{Definition: def, Values: f.values}
	case placement.Union:
		return &UnionDefinition{Definition: def, Types: f.memberTypes, ResolveType: f.resolveType}
	case placement.Directive:
		return &DirectiveDefinition{
			Definition:  def,
			Locations:   f.locations,
			Args:        f.args,
			Instruction: f.instructionFn,
			Expand:      f.expandFn,
		}
	}
	panic(fmt.Sprintf("graphforge: frame kind %s cannot finalize into a type definition", f.kind))
}

// usageOf returns the surface keyword for an event, defaulting to the
// placement keyword of its kind.
func usageOf(ev Event) string {
	if ev.Usage != "" {
		return ev.Usage
	}
	if pk, ok := placementKinds[ev.Kind]; ok {
		return pk.String()
	}
	return ev.Kind.String()
}
