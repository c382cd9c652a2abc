// Package deprecation defines how generated code treats fields that the schema
// marks with @deprecated.
package deprecation

import (
	"fmt"
	"strings"

	"github.com/vektah/gqlparser/v2/ast"
)

type Strategy int

const (
	// Warn is the zero value so an unset strategy behaves like the default.
	Warn Strategy = iota
	Allow
	Deny
)

// Default is used when the config does not name a strategy.
const Default = Warn

func (s Strategy) String() string {
	switch s {
	case Allow:
		return "allow"
	case Deny:
		return "deny"
	case Warn:
		return "warn"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Parse accepts the names used in the config file, case-insensitively.
// An empty string yields Default.
func Parse(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return Default, nil
	case "allow":
		return Allow, nil
	case "deny":
		return Deny, nil
	case "warn":
		return Warn, nil
	}
	return Default, fmt.Errorf("unknown deprecation strategy %q: expected one of allow, deny, warn", s)
}

// Status describes the deprecation state of a single schema field.
type Status struct {
	Deprecated bool
	Reason     string
}

// FieldStatus reads the @deprecated directive of a field definition.
func FieldStatus(field *ast.FieldDefinition) Status {
	if field == nil {
		return Status{}
	}
	directive := field.Directives.ForName("deprecated")
	if directive == nil {
		return Status{}
	}

	reason := "No longer supported"
	if arg := directive.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		reason = arg.Value.Raw
	}

	return Status{Deprecated: true, Reason: reason}
}
