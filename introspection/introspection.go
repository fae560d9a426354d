// Package introspection renders a compiled schema as JSON for tooling:
// editors, diff-based CI checks and documentation generators. The output is
// deterministic for a given schema, so two runs over the same declarations
// can be compared byte for byte.
package introspection

import (
	"io"

	j "github.com/goccy/go-json"

	forge "github.com/forgeql/graphforge"
)

// Schema is the JSON model of a compiled schema.
type Schema struct {
	Module string  `json:"module,omitempty"`
	Types  []Type  `json:"types"`
	Errors []Error `json:"errors,omitempty"`
}

// Type is the JSON model of one type definition.
type Type struct {
	Identifier  string      `json:"identifier"`
	Name        string      `json:"name"`
	Kind        string      `json:"kind"`
	Description string      `json:"description,omitempty"`
	Imported    bool        `json:"imported,omitempty"`
	Interfaces  []string    `json:"interfaces,omitempty"`
	Types       []string    `json:"types,omitempty"`
	Locations   []string    `json:"locations,omitempty"`
	Fields      []Field     `json:"fields,omitempty"`
	Args        []Arg       `json:"args,omitempty"`
	Values      []EnumValue `json:"values,omitempty"`
}

// Field is the JSON model of one field definition.
type Field struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Deprecation string `json:"deprecation,omitempty"`
	Args        []Arg  `json:"args,omitempty"`
}

// Arg is the JSON model of one argument definition.
type Arg struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Default     any    `json:"default,omitempty"`
	HasDefault  bool   `json:"has_default,omitempty"`
	Deprecation string `json:"deprecation,omitempty"`
}

// EnumValue is the JSON model of one enum value.
type EnumValue struct {
	Identifier  string `json:"identifier"`
	Name        string `json:"name"`
	Value       any    `json:"value"`
	Description string `json:"description,omitempty"`
	Deprecation string `json:"deprecation,omitempty"`
}

// Error is the JSON model of one deferred validation error.
type Error struct {
	Rule     string    `json:"rule"`
	Data     ErrorData `json:"data"`
	Location string    `json:"location,omitempty"`
}

// ErrorData carries the error's message and the value it concerns.
type ErrorData struct {
	Artifact string `json:"artifact"`
	Value    any    `json:"value,omitempty"`
}

// Describe builds the JSON model for a compiled schema.
func Describe(s *forge.Schema) Schema {
	out := Schema{Module: s.Module, Types: make([]Type, 0, len(s.Types))}
	for _, ident := range s.Identifiers() {
		out.Types = append(out.Types, describeType(s.Types[ident]))
	}
	for _, issue := range s.Errors {
		out.Errors = append(out.Errors, describeError(issue))
	}
	return out
}

// Export renders the schema as indented JSON.
func Export(s *forge.Schema) ([]byte, error) {
	return j.MarshalIndent(Describe(s), "", "  ")
}

// Write renders the schema as indented JSON onto w.
func Write(w io.Writer, s *forge.Schema) error {
	data, err := Export(s)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

func describeType(def forge.TypeDefinition) Type {
	common := def.Common()
	out := Type{
		Identifier:  common.Identifier,
		Name:        common.Name,
		Kind:        def.Kind().String(),
		Description: common.Description,
		Imported:    common.Flags&forge.FlagImported != 0,
	}

	switch d := def.(type) {
	case *forge.ObjectDefinition:
		out.Interfaces = d.Interfaces
		out.Fields = describeFields(d.Fields)
	case *forge.InterfaceDefinition:
		out.Fields = describeFields(d.Fields)
	case *forge.InputObjectDefinition:
		out.Fields = describeFields(d.Fields)
	case *forge.EnumDefinition:
		out.Values = describeValues(d.Values)
	case *forge.UnionDefinition:
		out.Types = d.Types
	case *forge.DirectiveDefinition:
		out.Locations = d.Locations
		out.Args = describeArgs(d.Args)
	}
	return out
}

func describeFields(fields []forge.FieldDefinition) []Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, Field{
			Identifier:  f.Identifier,
			Name:        f.Name,
			Type:        f.Type.String(),
			Description: f.Description,
			Deprecation: f.Deprecation,
			Args:        describeArgs(f.Args),
		})
	}
	return out
}

func describeArgs(args []forge.ArgumentDefinition) []Arg {
	if len(args) == 0 {
		return nil
	}
	out := make([]Arg, 0, len(args))
	for _, a := range args {
		out = append(out, Arg{
			Identifier:  a.Identifier,
			Name:        a.Name,
			Type:        a.Type.String(),
			Description: a.Description,
			Default:     a.Default,
			HasDefault:  a.HasDefault,
			Deprecation: a.Deprecation,
		})
	}
	return out
}

func describeValues(values []forge.EnumValueDefinition) []EnumValue {
	if len(values) == 0 {
		return nil
	}
	out := make([]EnumValue, 0, len(values))
	for _, v := range values {
		out = append(out, EnumValue{
			Identifier:  v.Identifier,
			Name:        v.Name,
			Value:       v.Value,
			Description: v.Description,
			Deprecation: v.Deprecation,
		})
	}
	return out
}

func describeError(issue forge.Issue) Error {
	out := Error{
		Rule: issue.Rule,
		Data: ErrorData{Artifact: issue.Artifact, Value: issue.Value},
	}
	if !issue.Loc.IsZero() {
		out.Location = issue.Loc.String()
	}
	return out
}
