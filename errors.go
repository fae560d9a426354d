package graphforge

import (
	"errors"
	"fmt"
	"strings"
)

// Rule tags for deferred issues (exported consts for tooling that matches on
// them).
const (
	// RuleFieldImportsExist: field imports must reference an existing type.
	RuleFieldImportsExist = "field_imports_exist"
	// RuleNoCircularFieldImports: field imports must not form a cycle.
	RuleNoCircularFieldImports = "no_circular_field_imports"
)

// Issue is a single deferred validation entry collected into the compiled
// schema artifact.
type Issue struct {
	Rule     string // one of the Rule* constants
	Artifact string // human-readable message
	Value    any    // the offending value, e.g. the missing source identifier
	Loc      Location
}

// Issues is a collection of deferred validation entries that implements
// error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		fmt.Fprintf(b, "%s at %s", it.Rule, it.Loc)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice
// when needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// NotationError is the fail-fast channel for malformed schema authoring:
// placement violations and reserved identifiers. It aborts compilation of
// the whole module.
type NotationError struct {
	Message string
	Loc     Location
}

func (e *NotationError) Error() string {
	return "invalid schema notation: " + e.Message
}

// UnknownModuleError is the fail-fast channel for an import_types directive
// naming a module absent from the registry. It indicates a broken build
// reference rather than a schema-authoring mistake.
type UnknownModuleError struct {
	Module string
	Loc    Location
}

func (e *UnknownModuleError) Error() string {
	return fmt.Sprintf("cannot import types from unknown module %q", e.Module)
}
