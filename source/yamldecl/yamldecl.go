// Package yamldecl parses YAML schema documents into the declaration event
// stream the compiler consumes. It is the file-based counterpart of the
// notation builders: every emitted event carries the document position of
// the declaration it came from, so compile errors point back into the YAML.
//
// A document looks like:
//
//	module: blog
//	import_types:
//	  - module: accounts
//	    only: [user]
//	types:
//	  - object: post
//	    description: A published entry.
//	    interfaces: [node]
//	    fields:
//	      - name: title
//	        type: string!
//	      - name: comments
//	        type: "[comment]"
//	        args:
//	          - name: limit
//	            type: int
//	            default: 10
//
// Function-valued attributes (resolvers, scalar conversion, type resolution)
// cannot be expressed in YAML; attach those after compilation through the
// schema's function table, or declare such types with the notation package.
package yamldecl

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	forge "github.com/forgeql/graphforge"
)

// Document is one parsed schema file: the module name it declares plus the
// flattened event stream for every type in it.
type Document struct {
	Module string
	Events []forge.Event
}

// ParseFile parses a schema document from a YAML file.
func ParseFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse parses a schema document from YAML bytes. filename is used for
// event locations only and may be empty.
func Parse(data []byte, filename string) (*Document, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	p := &parser{file: filename}
	for i := range doc.ImportTypes {
		if err := p.importTypes(&doc.ImportTypes[i]); err != nil {
			return nil, err
		}
	}
	for i := range doc.Types {
		if err := p.typeDecl(&doc.Types[i]); err != nil {
			return nil, err
		}
	}

	return &Document{Module: doc.Module, Events: p.events}, nil
}

// ParseDir parses every .yaml and .yml document under dir, recursing into
// subdirectories. Documents come back in lexical path order.
func ParseDir(dir string) ([]*Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var docs []*Document
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			sub, err := ParseDir(path)
			if err != nil {
				return nil, err
			}
			docs = append(docs, sub...)
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		doc, err := ParseFile(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}

	return docs, nil
}

type document struct {
	Module      string      `yaml:"module"`
	ImportTypes []yaml.Node `yaml:"import_types"`
	Types       []yaml.Node `yaml:"types"`
}

type importTypesDecl struct {
	Module string   `yaml:"module"`
	Only   []string `yaml:"only"`
	Except []string `yaml:"except"`
}

// typeDecl carries every per-kind key; exactly one of the kind keys must be
// set, and it doubles as the type identifier.
type typeDecl struct {
	Object      string `yaml:"object"`
	Interface   string `yaml:"interface"`
	Input       string `yaml:"input"`
	Scalar      string `yaml:"scalar"`
	Enum        string `yaml:"enum"`
	Union       string `yaml:"union"`
	Directive   string `yaml:"directive"`
	Description string `yaml:"description"`

	Interfaces   []string          `yaml:"interfaces"`
	Types        []string          `yaml:"types"`
	On           []string          `yaml:"on"`
	ImportFields []fieldImportDecl `yaml:"import_fields"`
	Meta         map[string]any    `yaml:"meta"`

	Fields []yaml.Node `yaml:"fields"`
	Values []yaml.Node `yaml:"values"`
	Args   []yaml.Node `yaml:"args"`
}

// fieldImportDecl accepts either a bare identifier or a mapping with an
// explicit source module.
type fieldImportDecl struct {
	Source string `yaml:"source"`
	Module string `yaml:"module"`
}

func (d *fieldImportDecl) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		d.Source = n.Value
		return nil
	}
	type plain fieldImportDecl
	return n.Decode((*plain)(d))
}

type fieldDecl struct {
	Name        string         `yaml:"name"`
	Type        string         `yaml:"type"`
	Description string         `yaml:"description"`
	Deprecate   *string        `yaml:"deprecate"`
	Meta        map[string]any `yaml:"meta"`
	Args        []yaml.Node    `yaml:"args"`
}

type argDecl struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Description string  `yaml:"description"`
	Default     *any    `yaml:"default"`
	Deprecate   *string `yaml:"deprecate"`
}

// valueDecl accepts either a bare identifier or a mapping form.
type valueDecl struct {
	Name        string  `yaml:"name"`
	Value       *any    `yaml:"value"`
	Description string  `yaml:"description"`
	Deprecate   *string `yaml:"deprecate"`
}

func (d *valueDecl) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind == yaml.ScalarNode {
		d.Name = n.Value
		return nil
	}
	type plain valueDecl
	return n.Decode((*plain)(d))
}

type parser struct {
	file   string
	events []forge.Event
}

func (p *parser) at(n *yaml.Node) forge.Location {
	return forge.Location{File: p.file, Line: n.Line}
}

func (p *parser) emit(ev forge.Event) {
	p.events = append(p.events, ev)
}

func (p *parser) importTypes(n *yaml.Node) error {
	var decl importTypesDecl
	if err := n.Decode(&decl); err != nil {
		return fmt.Errorf("parse import_types: %w", err)
	}
	if decl.Module == "" {
		return fmt.Errorf("%s:%d: import_types entry requires a module", p.file, n.Line)
	}
	p.emit(forge.Event{
		Kind:    forge.EventImportTypes,
		Payload: forge.ImportTypesPayload{Module: decl.Module, Only: decl.Only, Except: decl.Except},
		Loc:     p.at(n),
	})
	return nil
}

func (p *parser) typeDecl(n *yaml.Node) error {
	var decl typeDecl
	if err := n.Decode(&decl); err != nil {
		return fmt.Errorf("parse type declaration: %w", err)
	}

	kind, identifier, err := declKind(&decl, n, p.file)
	if err != nil {
		return err
	}

	loc := p.at(n)
	open := forge.Event{Kind: kind, Identifier: identifier, Loc: loc}
	if decl.Description != "" {
		open.Attrs = &forge.OpenAttrs{Description: decl.Description}
	}
	if kind == forge.EventOpenObject && rootUsage(identifier) {
		open.Usage = identifier
	}
	p.emit(open)

	if len(decl.Interfaces) > 0 {
		p.emit(forge.Event{Kind: forge.EventSetInterfaces, Payload: forge.InterfacesPayload{Interfaces: decl.Interfaces}, Loc: loc})
	}
	if len(decl.Types) > 0 {
		p.emit(forge.Event{Kind: forge.EventSetTypes, Payload: forge.TypesPayload{Types: decl.Types}, Loc: loc})
	}
	if len(decl.On) > 0 {
		p.emit(forge.Event{Kind: forge.EventSetOn, Payload: forge.OnPayload{Locations: decl.On}, Loc: loc})
	}
	for _, imp := range decl.ImportFields {
		p.emit(forge.Event{Kind: forge.EventImportFields, Payload: forge.ImportFieldsPayload{Source: imp.Source, Module: imp.Module}, Loc: loc})
	}
	p.meta(decl.Meta, loc)

	for i := range decl.Fields {
		if err := p.field(&decl.Fields[i], identifier); err != nil {
			return err
		}
	}
	for i := range decl.Values {
		if err := p.value(&decl.Values[i], identifier); err != nil {
			return err
		}
	}
	for i := range decl.Args {
		if err := p.arg(&decl.Args[i], identifier); err != nil {
			return err
		}
	}

	p.emit(forge.Event{Kind: forge.EventClose, Loc: loc})
	return nil
}

func (p *parser) field(n *yaml.Node, owner string) error {
	var decl fieldDecl
	if err := n.Decode(&decl); err != nil {
		return fmt.Errorf("parse field of %q: %w", owner, err)
	}
	if decl.Name == "" {
		return fmt.Errorf("%s:%d: field of %q requires a name", p.file, n.Line, owner)
	}
	ref, err := ParseTypeRef(decl.Type)
	if err != nil {
		return fmt.Errorf("%s:%d: field %q: %w", p.file, n.Line, decl.Name, err)
	}

	loc := p.at(n)
	p.emit(forge.Event{
		Kind:       forge.EventOpenField,
		Identifier: decl.Name,
		Attrs:      &forge.OpenAttrs{Description: decl.Description, Type: ref},
		Loc:        loc,
	})
	if decl.Deprecate != nil {
		p.emit(forge.Event{Kind: forge.EventSetDeprecate, Payload: forge.DeprecatePayload{Reason: *decl.Deprecate}, Loc: loc})
	}
	p.meta(decl.Meta, loc)
	for i := range decl.Args {
		if err := p.arg(&decl.Args[i], decl.Name); err != nil {
			return err
		}
	}
	p.emit(forge.Event{Kind: forge.EventClose, Loc: loc})
	return nil
}

func (p *parser) arg(n *yaml.Node, owner string) error {
	var decl argDecl
	if err := n.Decode(&decl); err != nil {
		return fmt.Errorf("parse argument of %q: %w", owner, err)
	}
	if decl.Name == "" {
		return fmt.Errorf("%s:%d: argument of %q requires a name", p.file, n.Line, owner)
	}
	ref, err := ParseTypeRef(decl.Type)
	if err != nil {
		return fmt.Errorf("%s:%d: argument %q: %w", p.file, n.Line, decl.Name, err)
	}

	loc := p.at(n)
	attrs := &forge.OpenAttrs{Description: decl.Description, Type: ref}
	if decl.Default != nil {
		attrs.Default = *decl.Default
		attrs.HasDefault = true
	}
	p.emit(forge.Event{Kind: forge.EventOpenArg, Identifier: decl.Name, Attrs: attrs, Loc: loc})
	if decl.Deprecate != nil {
		p.emit(forge.Event{Kind: forge.EventSetDeprecate, Payload: forge.DeprecatePayload{Reason: *decl.Deprecate}, Loc: loc})
	}
	p.emit(forge.Event{Kind: forge.EventClose, Loc: loc})
	return nil
}

func (p *parser) value(n *yaml.Node, owner string) error {
	var decl valueDecl
	if err := n.Decode(&decl); err != nil {
		return fmt.Errorf("parse value of %q: %w", owner, err)
	}
	if decl.Name == "" {
		return fmt.Errorf("%s:%d: value of %q requires a name", p.file, n.Line, owner)
	}

	loc := p.at(n)
	attrs := &forge.OpenAttrs{Description: decl.Description}
	if decl.Value != nil {
		attrs.Value = *decl.Value
		attrs.HasValue = true
	}
	p.emit(forge.Event{Kind: forge.EventOpenValue, Identifier: decl.Name, Attrs: attrs, Loc: loc})
	if decl.Deprecate != nil {
		p.emit(forge.Event{Kind: forge.EventSetDeprecate, Payload: forge.DeprecatePayload{Reason: *decl.Deprecate}, Loc: loc})
	}
	p.emit(forge.Event{Kind: forge.EventClose, Loc: loc})
	return nil
}

func (p *parser) meta(m map[string]any, loc forge.Location) {
	for _, key := range sortedKeys(m) {
		p.emit(forge.Event{Kind: forge.EventSetMeta, Payload: forge.MetaPayload{Key: key, Value: m[key]}, Loc: loc})
	}
}

func declKind(decl *typeDecl, n *yaml.Node, file string) (forge.EventKind, string, error) {
	var (
		kind       forge.EventKind
		identifier string
		count      int
	)
	set := func(k forge.EventKind, id string) {
		if id != "" {
			kind, identifier = k, id
			count++
		}
	}
	set(forge.EventOpenObject, decl.Object)
	set(forge.EventOpenInterface, decl.Interface)
	set(forge.EventOpenInputObject, decl.Input)
	set(forge.EventOpenScalar, decl.Scalar)
	set(forge.EventOpenEnum, decl.Enum)
	set(forge.EventOpenUnion, decl.Union)
	set(forge.EventOpenDirective, decl.Directive)

	switch count {
	case 1:
		return kind, identifier, nil
	case 0:
		return 0, "", fmt.Errorf("%s:%d: type declaration requires one of object, interface, input, scalar, enum, union or directive", file, n.Line)
	default:
		return 0, "", fmt.Errorf("%s:%d: type declaration sets more than one kind", file, n.Line)
	}
}

// rootUsage reports whether identifier names one of the schema's root
// operation objects.
func rootUsage(identifier string) bool {
	switch identifier {
	case "query", "mutation", "subscription":
		return true
	}
	return false
}

// ParseTypeRef parses a GraphQL-style type reference such as "[user!]!".
func ParseTypeRef(s string) (forge.TypeRef, error) {
	ref, rest, err := parseRef(strings.TrimSpace(s))
	if err != nil {
		return forge.TypeRef{}, err
	}
	if rest != "" {
		return forge.TypeRef{}, fmt.Errorf("invalid type reference %q: trailing %q", s, rest)
	}
	return ref, nil
}

func parseRef(s string) (forge.TypeRef, string, error) {
	if s == "" {
		return forge.TypeRef{}, "", fmt.Errorf("empty type reference")
	}

	var ref forge.TypeRef
	if s[0] == '[' {
		inner, rest, err := parseRef(strings.TrimSpace(s[1:]))
		if err != nil {
			return forge.TypeRef{}, "", err
		}
		rest = strings.TrimSpace(rest)
		if rest == "" || rest[0] != ']' {
			return forge.TypeRef{}, "", fmt.Errorf("invalid type reference %q: missing ]", s)
		}
		ref, s = forge.ListOf(inner), rest[1:]
	} else {
		i := 0
		for i < len(s) && s[i] != '!' && s[i] != ']' && s[i] != ' ' {
			i++
		}
		if i == 0 {
			return forge.TypeRef{}, "", fmt.Errorf("invalid type reference %q", s)
		}
		ref, s = forge.Named(s[:i]), s[i:]
	}

	if strings.HasPrefix(s, "!") {
		ref, s = forge.NonNull(ref), s[1:]
	}
	return ref, s, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
