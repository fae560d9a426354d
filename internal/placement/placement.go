// Package placement holds the static rule table that decides which
// declaration kinds may appear in which nesting contexts. It is decoupled
// from the root package so the table stays a plain mapping over closed
// enums.
package placement

import (
	"fmt"
	"sort"
	"strings"
)

// Kind is a declaration kind as seen by the placement validator. Toplevel is
// the sentinel parent for declarations with no enclosing scope.
type Kind uint8

const (
	Toplevel Kind = iota
	Object
	Interface
	InputObject
	Scalar
	Enum
	Union
	Directive
	Field
	Arg
	Value
	Description
	Interfaces
	ImportTypes
	ImportFields
	Middleware
	Resolve
	Parse
	Serialize
	IsTypeOf
	ResolveType
	Deprecate
	Complexity
	Private
	Meta
	On
	Instruction
	Expand
	Config
	Trigger
	Types
)

var kindKeywords = map[Kind]string{
	Toplevel:     "toplevel",
	Object:       "object",
	Interface:    "interface",
	InputObject:  "input_object",
	Scalar:       "scalar",
	Enum:         "enum",
	Union:        "union",
	Directive:    "directive",
	Field:        "field",
	Arg:          "arg",
	Value:        "value",
	Description:  "description",
	Interfaces:   "interfaces",
	ImportTypes:  "import_types",
	ImportFields: "import_fields",
	Middleware:   "middleware",
	Resolve:      "resolve",
	Parse:        "parse",
	Serialize:    "serialize",
	IsTypeOf:     "is_type_of",
	ResolveType:  "resolve_type",
	Deprecate:    "deprecate",
	Complexity:   "complexity",
	Private:      "private",
	Meta:         "meta",
	On:           "on",
	Instruction:  "instruction",
	Expand:       "expand",
	Config:       "config",
	Trigger:      "trigger",
	Types:        "types",
}

// String returns the surface keyword for the kind.
func (k Kind) String() string {
	if s, ok := kindKeywords[k]; ok {
		return s
	}
	return "unknown"
}

// Rule describes the legal contexts of one declaration kind.
type Rule struct {
	Toplevel bool
	Under    []Kind
}

var rules = map[Kind]Rule{
	Object:       {Toplevel: true},
	Interface:    {Toplevel: true},
	InputObject:  {Toplevel: true},
	Scalar:       {Toplevel: true},
	Enum:         {Toplevel: true},
	Union:        {Toplevel: true},
	Directive:    {Toplevel: true},
	Field:        {Under: []Kind{Object, Interface, InputObject}},
	Arg:          {Under: []Kind{Field, Directive}},
	Value:        {Under: []Kind{Enum}},
	// Standalone descriptions attach to the next sibling declaration, so
	// they are only legal where a sibling can follow.
	Description:  {Toplevel: true, Under: []Kind{Object, Interface, InputObject, Enum, Directive, Field}},
	Interfaces:   {Under: []Kind{Object, Interface}},
	Types:        {Under: []Kind{Union}},
	ImportTypes:  {Toplevel: true},
	ImportFields: {Under: []Kind{Object, Interface, InputObject}},
	Middleware:   {Under: []Kind{Field}},
	Resolve:      {Under: []Kind{Field}},
	Parse:        {Under: []Kind{Scalar}},
	Serialize:    {Under: []Kind{Scalar}},
	IsTypeOf:     {Under: []Kind{Object}},
	ResolveType:  {Under: []Kind{Interface, Union}},
	Deprecate:    {Under: []Kind{Field, Arg, Value}},
	Complexity:   {Under: []Kind{Field}},
	Private:      {Under: []Kind{Object, Interface, InputObject, Scalar, Enum, Union, Field}},
	Meta:         {Under: []Kind{Object, Interface, InputObject, Scalar, Enum, Union, Field}},
	On:           {Under: []Kind{Directive}},
	Instruction:  {Under: []Kind{Directive}},
	Expand:       {Under: []Kind{Directive}},
	Config:       {Under: []Kind{Field}},
	Trigger:      {Under: []Kind{Field}},
}

// Lookup returns the rule for a kind. The second result is false for kinds
// the table does not know, which indicates a front-end contract violation.
func Lookup(kind Kind) (Rule, bool) {
	r, ok := rules[kind]
	return r, ok
}

// Error reports a declaration used outside its legal contexts. Usage is the
// surface keyword at the offending site, which may be an alias of the kind
// (for example `interface` used as an attribute under object).
type Error struct {
	Usage string
	Rule  Rule
}

func (e *Error) Error() string {
	return fmt.Sprintf("`%s` must only be used %s", e.Usage, describe(e.Rule))
}

// Validate checks one usage site against the table. Usage defaults to the
// kind's keyword when empty.
func Validate(kind Kind, usage string, parent Kind) error {
	rule, ok := rules[kind]
	if !ok {
		return fmt.Errorf("placement: unknown declaration kind %d", kind)
	}
	if parent == Toplevel {
		if rule.Toplevel {
			return nil
		}
	} else {
		for _, u := range rule.Under {
			if u == parent {
				return nil
			}
		}
	}
	if usage == "" {
		usage = kind.String()
	}
	return &Error{Usage: usage, Rule: rule}
}

// describe renders the legal contexts deterministically: allowed parents in
// lexical order, comma-separated.
func describe(r Rule) string {
	if len(r.Under) == 0 {
		return "toplevel"
	}
	names := make([]string, len(r.Under))
	for i, u := range r.Under {
		names[i] = "`" + u.String() + "`"
	}
	sort.Strings(names)
	joined := strings.Join(names, ", ")
	if r.Toplevel {
		return "toplevel or within " + joined
	}
	return "within " + joined
}
