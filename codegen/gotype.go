package codegen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/99designs/gqlgen/codegen/templates"
	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Yamashou/gqlbind/schema"
)

// Code is an ordered list of top-level Go declarations. A nil Code is the
// empty fragment.
type Code []jen.Code

func (c Code) IsEmpty() bool {
	return len(c) == 0
}

// Render formats the declarations as a Go file of package pkg.
func (c Code) Render(pkg string) (string, error) {
	f := jen.NewFile(pkg)
	for _, decl := range c {
		f.Add(decl)
		f.Line()
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("render code: %w", err)
	}
	return buf.String(), nil
}

var builtinScalars = map[string]func() *jen.Statement{
	"ID":      jen.String,
	"String":  jen.String,
	"Int":     jen.Int,
	"Float":   jen.Float64,
	"Boolean": jen.Bool,
}

// GoTypeName is the Go identifier used for a named schema type or fragment.
func GoTypeName(name string) string {
	return templates.ToGo(name)
}

// FieldTypeName builds the name of a nested model from its parent and the
// response key of the field.
func FieldTypeName(parentTypeName, fieldName string) string {
	return fmt.Sprintf("%s_%s", parentTypeName, templates.ToGo(fieldName))
}

// scalarType resolves a scalar or enum name to its Go type.
func (qc *QueryContext) scalarType(name string) *jen.Statement {
	if binding, ok := qc.scalars[name]; ok {
		return qualifiedType(binding)
	}
	if builtin, ok := builtinScalars[name]; ok {
		return builtin()
	}
	if _, kind := qc.Schema.Lookup(name); kind == schema.KindEnum {
		return jen.Id(GoTypeName(name))
	}
	return jen.Qual("github.com/go-json-experiment/json/jsontext", "Value")
}

// qualifiedType turns "time.Time" or "github.com/x/y.Z" into a jen qualified
// identifier. A name without a package stays a local identifier.
func qualifiedType(goType string) *jen.Statement {
	pointer := strings.HasPrefix(goType, "*")
	goType = strings.TrimPrefix(goType, "*")

	var t *jen.Statement
	if i := strings.LastIndex(goType, "."); i > 0 {
		t = jen.Qual(goType[:i], goType[i+1:])
	} else {
		t = jen.Id(goType)
	}
	if pointer {
		return jen.Op("*").Add(t)
	}
	return t
}

// buildGoType builds the Go type of a leaf value, handling lists and
// nullability. Nullable values become pointers.
func (qc *QueryContext) buildGoType(gqlType *ast.Type) *jen.Statement {
	// Base case: named type (e.g., String, Int, ID, or custom types)
	if gqlType.NamedType != "" {
		t := qc.scalarType(gqlType.NamedType)
		if !gqlType.NonNull {
			return jen.Op("*").Add(t)
		}
		return t
	}

	slice := jen.Index().Add(qc.buildGoType(gqlType.Elem))
	if !gqlType.NonNull {
		return jen.Op("*").Add(slice)
	}
	return slice
}

// wrapWithListAndNullability wraps the model named typeName according to the
// GraphQL type structure. Models inside lists are always pointers.
func wrapWithListAndNullability(typeName string, gqlType *ast.Type) *jen.Statement {
	if gqlType.NamedType != "" {
		if !gqlType.NonNull {
			return jen.Op("*").Id(typeName)
		}
		return jen.Id(typeName)
	}

	slice := jen.Index().Add(listElem(typeName, gqlType.Elem))
	if !gqlType.NonNull {
		return jen.Op("*").Add(slice)
	}
	return slice
}

func listElem(typeName string, gqlType *ast.Type) *jen.Statement {
	if gqlType.NamedType != "" {
		return jen.Op("*").Id(typeName)
	}
	slice := jen.Index().Add(listElem(typeName, gqlType.Elem))
	if !gqlType.NonNull {
		return jen.Op("*").Add(slice)
	}
	return slice
}

// InputType builds the Go type of an operation variable or input field. Enums
// it reaches are marked required; input objects are reported through
// visitInput so the caller can emit them.
func (qc *QueryContext) InputType(gqlType *ast.Type, visitInput func(name string)) *jen.Statement {
	if gqlType.NamedType != "" {
		var t *jen.Statement
		def := qc.Schema.Definition(gqlType.NamedType)
		switch {
		case def != nil && def.Kind == ast.InputObject:
			if visitInput != nil {
				visitInput(def.Name)
			}
			t = jen.Id(GoTypeName(def.Name))
		default:
			if id, kind := qc.Schema.Lookup(gqlType.NamedType); kind == schema.KindEnum {
				qc.Schema.MarkRequired(id)
			}
			t = qc.scalarType(gqlType.NamedType)
		}
		if !gqlType.NonNull {
			return jen.Op("*").Add(t)
		}
		return t
	}

	slice := jen.Index().Add(qc.InputType(gqlType.Elem, visitInput))
	if !gqlType.NonNull {
		return jen.Op("*").Add(slice)
	}
	return slice
}

// jsonTag renders the struct tag of a field. Optional fields are omitted from
// serialized variables only when nil; omitzero keeps a pointer to "" or false,
// which omitempty would drop under json v2.
func jsonTag(name string, omitZero bool) map[string]string {
	if omitZero {
		return map[string]string{"json": name + ",omitzero"}
	}
	return map[string]string{"json": name}
}
