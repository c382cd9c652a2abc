package codegen

import (
	"strings"

	"github.com/dave/jennifer/jen"
)

const (
	// DefaultVariablesDerive is always attached to Variables models.
	DefaultVariablesDerive = "Serialize"
	// DefaultResponseDerive is always attached to Response models.
	DefaultResponseDerive = "Deserialize"

	// DirectivePrefix starts every rendered derive directive comment.
	DirectivePrefix = "//gqlbind:derive "
)

// Directive is the list of behaviours attached to one generated model.
// A nil Directive is the empty directive and renders nothing.
type Directive []string

func (d Directive) IsEmpty() bool {
	return len(d) == 0
}

// String renders the directive as a Go comment directive, for example
// "//gqlbind:derive Deserialize,PartialEq". The empty directive renders as "".
func (d Directive) String() string {
	if d.IsEmpty() {
		return ""
	}
	return DirectivePrefix + strings.Join(d, ",")
}

// Decorate places the directive comment directly above decl.
func (d Directive) Decorate(decl *jen.Statement) *jen.Statement {
	if d.IsEmpty() {
		return decl
	}
	return jen.Comment(d.String()).Line().Add(decl)
}

// DeriveSet accumulates the derives of Variables and Response models.
type DeriveSet struct {
	variables []string
	response  []string
	ingested  bool
}

func NewDeriveSet() *DeriveSet {
	return &DeriveSet{
		variables: []string{DefaultVariablesDerive},
		response:  []string{DefaultResponseDerive},
	}
}

// Ingest appends a comma separated list of derive names to both lists. It can
// only succeed once; later calls return ErrDerivesAlreadyIngested and leave
// both lists untouched.
func (d *DeriveSet) Ingest(raw string) error {
	if d.ingested {
		return ErrDerivesAlreadyIngested
	}
	d.ingested = true

	d.variables = append(d.variables, splitDerives(raw)...)
	d.response = append(d.response, splitDerives(raw)...)
	return nil
}

func (d *DeriveSet) Variables() Directive {
	return unique(d.variables, nil)
}

func (d *DeriveSet) Response() Directive {
	return unique(d.response, nil)
}

// ResponseEnum is Response without serialization derives, which enums get
// through their string representation instead.
func (d *DeriveSet) ResponseEnum() Directive {
	return unique(d.response, func(name string) bool {
		return !strings.Contains(name, "erialize") && !strings.Contains(name, "Deserialize")
	})
}

func splitDerives(raw string) []string {
	var names []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			names = append(names, s)
		}
	}
	return names
}

// unique keeps the first occurrence of each name that passes keep. It returns
// nil when nothing is left.
func unique(names []string, keep func(string) bool) Directive {
	var out Directive
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] || (keep != nil && !keep(name)) {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
