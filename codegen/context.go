// Package codegen holds everything one generation pass shares: the schema
// registry, the fragments of the query documents, the deprecation strategy and
// the derives attached to generated models. Selections are expanded against
// schema types through QueryContext.ExpandField, which records every enum,
// object, interface and union the query reaches.
package codegen

import (
	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Yamashou/gqlbind/deprecation"
	"github.com/Yamashou/gqlbind/schema"
)

// Expander builds the response model of one structural category for a
// selection. prefix is the name of the model to produce and the stem of every
// nested model name.
type Expander interface {
	ResponseForSelection(qc *QueryContext, def *ast.Definition, selection ast.SelectionSet, prefix string) (Code, error)
}

// ExpanderFunc adapts a function to Expander.
type ExpanderFunc func(qc *QueryContext, def *ast.Definition, selection ast.SelectionSet, prefix string) (Code, error)

func (f ExpanderFunc) ResponseForSelection(qc *QueryContext, def *ast.Definition, selection ast.SelectionSet, prefix string) (Code, error) {
	return f(qc, def, selection, prefix)
}

// QueryContext is created once per generation run.
type QueryContext struct {
	Fragments           *FragmentRegistry
	Schema              *schema.Registry
	DeprecationStrategy deprecation.Strategy

	derives    *DeriveSet
	objects    Expander
	interfaces Expander
	unions     Expander
	scalars    map[string]string
	logger     logrus.FieldLogger
}

type Option func(*QueryContext)

// WithScalarBindings maps custom scalar names to Go types such as "time.Time"
// or "github.com/google/uuid.UUID".
func WithScalarBindings(bindings map[string]string) Option {
	return func(qc *QueryContext) {
		for name, goType := range bindings {
			qc.scalars[name] = goType
		}
	}
}

func WithLogger(logger logrus.FieldLogger) Option {
	return func(qc *QueryContext) {
		qc.logger = logger
	}
}

func WithObjectExpander(e Expander) Option {
	return func(qc *QueryContext) {
		qc.objects = e
	}
}

func WithInterfaceExpander(e Expander) Option {
	return func(qc *QueryContext) {
		qc.interfaces = e
	}
}

func WithUnionExpander(e Expander) Option {
	return func(qc *QueryContext) {
		qc.unions = e
	}
}

// NewQueryContext creates a context with an empty fragment registry and the
// default derives.
func NewQueryContext(registry *schema.Registry, strategy deprecation.Strategy, options ...Option) *QueryContext {
	qc := &QueryContext{
		Fragments:           NewFragmentRegistry(),
		Schema:              registry,
		DeprecationStrategy: strategy,
		derives:             NewDeriveSet(),
		objects:             ExpanderFunc(objectResponseForSelection),
		interfaces:          ExpanderFunc(interfaceResponseForSelection),
		unions:              ExpanderFunc(unionResponseForSelection),
		scalars:             make(map[string]string),
		logger:              logrus.StandardLogger(),
	}
	for _, option := range options {
		option(qc)
	}

	return qc
}

// Require marks the fragment called name as used. Unknown names are ignored;
// query validation reports them before generation starts.
func (qc *QueryContext) Require(name string) {
	if id, ok := qc.Fragments.Lookup(name); ok {
		qc.Fragments.MarkRequired(id)
	}
}

// ExpandField marks typeName as reached and expands selection against it.
// Enums produce no code here because all reached enums are emitted together
// by the model generator. Errors of the category expanders are returned as is.
func (qc *QueryContext) ExpandField(typeName string, selection ast.SelectionSet, prefix string) (Code, error) {
	id, kind := qc.Schema.Lookup(typeName)

	switch kind {
	case schema.KindEnum:
		qc.Schema.MarkRequired(id)
		return nil, nil
	case schema.KindObject:
		qc.Schema.MarkRequired(id)
		return qc.objects.ResponseForSelection(qc, qc.Schema.Entity(id).Definition, selection, prefix)
	case schema.KindInterface:
		qc.Schema.MarkRequired(id)
		return qc.interfaces.ResponseForSelection(qc, qc.Schema.Entity(id).Definition, selection, prefix)
	case schema.KindUnion:
		qc.Schema.MarkRequired(id)
		return qc.unions.ResponseForSelection(qc, qc.Schema.Entity(id).Definition, selection, prefix)
	case schema.KindScalar:
		// Scalars, and names validation has already vetted, need no model.
		return nil, nil
	}

	return nil, nil
}

// IngestAdditionalDerives adds user supplied derives, given as a comma
// separated list, to both Variables and Response models. It may be called
// once per context.
func (qc *QueryContext) IngestAdditionalDerives(raw string) error {
	return qc.derives.Ingest(raw)
}

func (qc *QueryContext) VariablesDerives() Directive {
	return qc.derives.Variables()
}

func (qc *QueryContext) ResponseDerives() Directive {
	return qc.derives.Response()
}

func (qc *QueryContext) ResponseEnumDerives() Directive {
	return qc.derives.ResponseEnum()
}

func (qc *QueryContext) Logger() logrus.FieldLogger {
	return qc.logger
}
