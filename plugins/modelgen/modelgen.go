// Package modelgen generates the schema models the operations reach: the
// enums marked required while expanding selections and the input objects the
// operation variables use.
package modelgen

import (
	"fmt"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/99designs/gqlgen/plugin"

	"github.com/Yamashou/gqlbind/codegen"
	"github.com/Yamashou/gqlbind/schema"
)

var _ plugin.Plugin = &Plugin{}

type Plugin struct {
	qc     *codegen.QueryContext
	inputs []string
}

// New takes the input objects collected by querygen. Call it after querygen
// has generated, since that pass is what marks enums required.
func New(qc *codegen.QueryContext, inputs []string) *Plugin {
	return &Plugin{
		qc:     qc,
		inputs: inputs,
	}
}

func (p *Plugin) Name() string {
	return "modelgen"
}

// Generate returns the declarations of the model file, enums first, each group
// sorted by name.
func (p *Plugin) Generate() (codegen.Code, error) {
	var code codegen.Code

	// Input fields can reach enums too, so inputs are built before the enums.
	inputCode, err := p.inputObjects()
	if err != nil {
		return nil, err
	}

	for _, enum := range p.qc.Schema.Required(schema.KindEnum) {
		code = append(code, p.qc.Enum(enum.Definition)...)
	}

	return append(code, inputCode...), nil
}

func (p *Plugin) inputObjects() (codegen.Code, error) {
	names := slices.Clone(p.inputs)
	slices.Sort(names)

	var code codegen.Code
	for _, name := range names {
		def := p.qc.Schema.Definition(name)
		if def == nil || def.Kind != ast.InputObject {
			return nil, fmt.Errorf("%s is not an input object", name)
		}
		// querygen already visited every input.
		code = append(code, p.qc.InputObject(def, func(string) {})...)
	}

	return code, nil
}
