// Package querygen generates the operation models: for every operation a
// Variables model, a Response model and the operation document, followed by the
// models of every fragment the operations reach.
package querygen

import (
	"fmt"

	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/99designs/gqlgen/plugin"

	"github.com/Yamashou/gqlbind/codegen"
)

var _ plugin.Plugin = &Plugin{}

// Plugin generates the query file. It must run before modelgen because the
// enums and input objects modelgen emits are the ones operations reach here.
type Plugin struct {
	qc       *codegen.QueryContext
	schema   *ast.Schema
	document *ast.QueryDocument

	inputs     []string
	seenInputs map[string]bool
}

func New(qc *codegen.QueryContext, schema *ast.Schema, document *ast.QueryDocument) *Plugin {
	return &Plugin{
		qc:         qc,
		schema:     schema,
		document:   document,
		seenInputs: make(map[string]bool),
	}
}

func (p *Plugin) Name() string {
	return "querygen"
}

// Inputs lists the input objects the operation variables reach, in first-use
// order. It is complete once Generate has returned.
func (p *Plugin) Inputs() []string {
	return p.inputs
}

// Generate returns the declarations of the query file.
func (p *Plugin) Generate() (codegen.Code, error) {
	var code codegen.Code

	for _, operation := range p.document.Operations {
		operationCode, err := p.operation(operation)
		if err != nil {
			return nil, fmt.Errorf("operation %s: %w", operation.Name, err)
		}
		code = append(code, operationCode...)
	}

	fragmentCode, err := p.fragments()
	if err != nil {
		return nil, err
	}

	return append(code, fragmentCode...), nil
}

func (p *Plugin) operation(operation *ast.OperationDefinition) (codegen.Code, error) {
	root := p.rootType(operation.Operation)
	if root == nil {
		return nil, fmt.Errorf("schema does not define a %s type", operation.Operation)
	}

	name := codegen.GoTypeName(operation.Name)

	document := operationDocument(p.document, operation)

	code := codegen.Code{
		jen.Const().Defs(
			jen.Id(name+"OperationName").Op("=").Lit(operation.Name),
			jen.Id(name+"Document").Op("=").Lit(document),
		),
	}

	code = append(code, p.qc.OperationVariables(operation.VariableDefinitions, name, p.visitInput)...)

	response, err := p.qc.OperationResponse(root, operation.SelectionSet, name)
	if err != nil {
		return nil, err
	}

	return append(code, response...), nil
}

// fragments emits every required fragment. Expanding a fragment can require
// further fragments, so the registry is scanned until nothing new appears.
func (p *Plugin) fragments() (codegen.Code, error) {
	var code codegen.Code
	emitted := make(map[string]bool)

	for {
		var pending []codegen.Fragment
		for _, fragment := range p.qc.Fragments.Required() {
			if !emitted[fragment.Name] {
				pending = append(pending, fragment)
			}
		}
		if len(pending) == 0 {
			return code, nil
		}

		for _, fragment := range pending {
			emitted[fragment.Name] = true
			fragmentCode, err := p.qc.ExpandField(fragment.TypeCondition, fragment.SelectionSet, codegen.GoTypeName(fragment.Name))
			if err != nil {
				return nil, fmt.Errorf("fragment %s: %w", fragment.Name, err)
			}
			code = append(code, fragmentCode...)
		}
	}
}

func (p *Plugin) visitInput(name string) {
	if p.seenInputs[name] {
		return
	}
	p.seenInputs[name] = true
	p.inputs = append(p.inputs, name)

	// Input objects can nest, so their fields are visited as well.
	if def := p.schema.Types[name]; def != nil {
		for _, field := range def.Fields {
			p.qc.InputType(field.Type, p.visitInput)
		}
	}
}

func (p *Plugin) rootType(operation ast.Operation) *ast.Definition {
	switch operation {
	case ast.Query:
		return p.schema.Query
	case ast.Mutation:
		return p.schema.Mutation
	case ast.Subscription:
		return p.schema.Subscription
	}
	return nil
}
