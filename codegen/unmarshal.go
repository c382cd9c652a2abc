package codegen

import (
	"slices"

	"github.com/dave/jennifer/jen"
)

// needsUnmarshal reports whether the model needs its own UnmarshalJSON.
// Fragment spreads and type conditioned variants are tagged json:"-" and are
// filled from the same payload after the plain fields.
func (b *modelBuilder) needsUnmarshal() bool {
	return len(b.spreads) > 0 || len(b.variants) > 0
}

// unmarshalMethod generates:
//
//	func (t *Model) UnmarshalJSON(data []byte) error {
//		type alias Model
//		if err := json.Unmarshal(data, (*alias)(t)); err != nil {
//			return err
//		}
//		if err := json.Unmarshal(data, &t.UserFields); err != nil {
//			return err
//		}
//		switch t.Typename {
//		case "User":
//			t.OnUser = new(Model_OnUser)
//			if err := json.Unmarshal(data, t.OnUser); err != nil {
//				return err
//			}
//		}
//		return nil
//	}
func (b *modelBuilder) unmarshalMethod(typenameName string) jen.Code {
	return jen.Func().
		Params(jen.Id("t").Op("*").Id(b.name)).
		Id("UnmarshalJSON").
		Params(jen.Id("data").Index().Byte()).
		Error().
		BlockFunc(func(g *jen.Group) {
			g.Type().Id("alias").Id(b.name)
			g.Add(decodeInto(jen.Parens(jen.Op("*").Id("alias")).Call(jen.Id("t"))))

			for _, spread := range b.spreads {
				g.Add(decodeInto(jen.Op("&").Id("t").Dot(GoTypeName(spread.Name))))
			}

			if len(b.variants) > 0 {
				g.Switch(jen.Id("t").Dot(typenameName)).BlockFunc(func(sg *jen.Group) {
					for _, typeName := range b.variantTypeNames() {
						sg.Case(jen.Lit(typeName)).BlockFunc(func(cg *jen.Group) {
							for _, variant := range b.variants {
								if !slices.Contains(variant.types, typeName) {
									continue
								}
								target := jen.Id("t").Dot(variantFieldName(variant))
								cg.Add(target.Clone().Op("=").New(jen.Id(b.variantModelName(variant))))
								cg.Add(decodeInto(target.Clone()))
							}
						})
					}
				})
			}

			g.Return(jen.Nil())
		})
}

// decodeInto generates `if err := json.Unmarshal(data, target); err != nil { return err }`.
func decodeInto(target jen.Code) *jen.Statement {
	return jen.If(
		jen.Err().Op(":=").Qual("github.com/go-json-experiment/json", "Unmarshal").Call(jen.Id("data"), target),
		jen.Err().Op("!=").Nil(),
	).Block(jen.Return(jen.Err()))
}

// variantTypeNames lists the concrete types of the variants in first-use order.
func (b *modelBuilder) variantTypeNames() []string {
	var names []string
	seen := make(map[string]bool)
	for _, v := range b.variants {
		for _, t := range v.types {
			if !seen[t] {
				seen[t] = true
				names = append(names, t)
			}
		}
	}
	return names
}

func (b *modelBuilder) variantModelName(variant *variantGroup) string {
	if variant.fragment != "" {
		return GoTypeName(variant.fragment)
	}
	return FieldTypeName(b.prefix, "On"+variant.typeName)
}
