package codegen

import (
	"github.com/dave/jennifer/jen"
)

type accessor struct {
	field  string
	goType *jen.Statement
}

// getters generates one nil-safe accessor per field:
//
//	func (t *Model) GetName() string {
//		if t == nil {
//			t = &Model{}
//		}
//		return t.Name
//	}
//
// A getter whose name is already taken by a field is skipped.
func getters(typeName string, accessors []accessor) Code {
	fields := make(map[string]bool, len(accessors))
	for _, a := range accessors {
		fields[a.field] = true
	}

	var code Code
	for _, a := range accessors {
		name := "Get" + a.field
		if fields[name] {
			continue
		}
		code = append(code, jen.Func().
			Params(jen.Id("t").Op("*").Id(typeName)).
			Id(name).
			Params().
			Add(a.goType.Clone()).
			Block(
				jen.If(jen.Id("t").Op("==").Nil()).Block(
					jen.Id("t").Op("=").Op("&").Id(typeName).Values(),
				),
				jen.Return(jen.Id("t").Dot(a.field)),
			))
	}
	return code
}
