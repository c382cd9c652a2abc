package codegen

import (
	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"
)

// OperationVariables builds the <name>Variables model of an operation. Input
// objects referenced by the variables are reported through visitInput.
func (qc *QueryContext) OperationVariables(variables ast.VariableDefinitionList, name string, visitInput func(string)) Code {
	fields := make([]jen.Code, 0, len(variables))
	for _, v := range variables {
		fields = append(fields, jen.Id(GoTypeName(v.Variable)).
			Add(qc.optionalInputType(v.Type, v.DefaultValue, visitInput)).
			Tag(jsonTag(v.Variable, omittable(v.Type, v.DefaultValue))))
	}

	return Code{qc.VariablesDerives().Decorate(jen.Type().Id(name + "Variables").Struct(fields...))}
}

// InputObject builds the model of an input object type.
func (qc *QueryContext) InputObject(def *ast.Definition, visitInput func(string)) Code {
	fields := make([]jen.Code, 0, len(def.Fields))
	for _, f := range def.Fields {
		field := jen.Id(GoTypeName(f.Name)).
			Add(qc.optionalInputType(f.Type, f.DefaultValue, visitInput)).
			Tag(jsonTag(f.Name, omittable(f.Type, f.DefaultValue)))
		if f.Description != "" {
			field = jen.Comment(f.Description).Line().Add(field)
		}
		fields = append(fields, field)
	}

	decl := qc.VariablesDerives().Decorate(jen.Type().Id(GoTypeName(def.Name)).Struct(fields...))
	if def.Description != "" {
		decl = jen.Comment(def.Description).Line().Add(decl)
	}
	return Code{decl}
}

// optionalInputType is InputType, except that a non-null value with a default
// becomes a pointer: nil leaves the value out so the server applies the
// default, while an explicit zero value is still sent.
func (qc *QueryContext) optionalInputType(gqlType *ast.Type, defaultValue *ast.Value, visitInput func(string)) *jen.Statement {
	t := qc.InputType(gqlType, visitInput)
	if gqlType.NonNull && defaultValue != nil {
		return jen.Op("*").Add(t)
	}
	return t
}

func omittable(gqlType *ast.Type, defaultValue *ast.Value) bool {
	return !gqlType.NonNull || defaultValue != nil
}

// Enum builds the model of a reached enum: a string type, one constant per
// value and an IsValid method.
func (qc *QueryContext) Enum(def *ast.Definition) Code {
	typeName := GoTypeName(def.Name)

	decl := qc.ResponseEnumDerives().Decorate(jen.Type().Id(typeName).String())
	if def.Description != "" {
		decl = jen.Comment(def.Description).Line().Add(decl)
	}

	consts := jen.Const().DefsFunc(func(g *jen.Group) {
		for _, v := range def.EnumValues {
			g.Id(typeName + GoTypeName(v.Name)).Id(typeName).Op("=").Lit(v.Name)
		}
	})

	isValid := jen.Func().Params(jen.Id("e").Id(typeName)).Id("IsValid").Params().Bool().Block(
		jen.Switch(jen.Id("e")).Block(
			jen.CaseFunc(func(g *jen.Group) {
				for _, v := range def.EnumValues {
					g.Id(typeName + GoTypeName(v.Name))
				}
			}).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)

	return Code{decl, consts, isValid}
}
