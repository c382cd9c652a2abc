package codegen

import (
	"slices"

	"github.com/dave/jennifer/jen"
	"github.com/sirupsen/logrus"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/Yamashou/gqlbind/deprecation"
)

const typenameField = "__typename"

// errorf reports an expansion error at pos when the selection carries one.
func errorf(pos *ast.Position, format string, args ...any) *gqlerror.Error {
	if pos == nil || pos.Src == nil {
		return gqlerror.Errorf(format, args...)
	}
	return gqlerror.ErrorPosf(pos, format, args...)
}

func objectResponseForSelection(qc *QueryContext, def *ast.Definition, selection ast.SelectionSet, prefix string) (Code, error) {
	return newModelBuilder(qc, def, prefix, prefix).build(selection)
}

func interfaceResponseForSelection(qc *QueryContext, def *ast.Definition, selection ast.SelectionSet, prefix string) (Code, error) {
	return newModelBuilder(qc, def, prefix, prefix).build(selection)
}

func unionResponseForSelection(qc *QueryContext, def *ast.Definition, selection ast.SelectionSet, prefix string) (Code, error) {
	return newModelBuilder(qc, def, prefix, prefix).build(selection)
}

// OperationResponse builds the <name>Response model of an operation. The
// context expands each top-level field once, with prefix <name>_<Field>.
func (qc *QueryContext) OperationResponse(root *ast.Definition, selection ast.SelectionSet, name string) (Code, error) {
	return newModelBuilder(qc, root, name+"Response", name).build(selection)
}

// fieldGroup gathers every selection of one response key.
type fieldGroup struct {
	key          string
	field        *ast.Field
	selectionSet ast.SelectionSet
}

// variantGroup gathers the selections that only apply when the type condition
// typeName holds. types lists the concrete types of the value it applies to.
type variantGroup struct {
	typeName     string
	types        []string
	fragment     string
	selectionSet ast.SelectionSet
	position     *ast.Position
}

type modelBuilder struct {
	qc *QueryContext
	// def is the schema type the selection is made on.
	def *ast.Definition
	// name of the generated model and prefix of the nested ones.
	name   string
	prefix string

	fields   []*fieldGroup
	byKey    map[string]*fieldGroup
	spreads  []*ast.FragmentSpread
	variants []*variantGroup
}

func newModelBuilder(qc *QueryContext, def *ast.Definition, name, prefix string) *modelBuilder {
	return &modelBuilder{
		qc:     qc,
		def:    def,
		name:   name,
		prefix: prefix,
		byKey:  make(map[string]*fieldGroup),
	}
}

func (b *modelBuilder) abstract() bool {
	return b.def.Kind == ast.Interface || b.def.Kind == ast.Union
}

func (b *modelBuilder) build(selection ast.SelectionSet) (Code, error) {
	if err := b.collect(selection); err != nil {
		return nil, err
	}

	var (
		structFields []jen.Code
		accessors    []accessor
		nested       Code
		typenameName string
	)

	// Go field name -> response key or fragment that claimed it.
	claimed := make(map[string]string)
	claim := func(goName, selection string, pos *ast.Position) error {
		if other, ok := claimed[goName]; ok {
			return errorf(pos, "%s and %s both map to field %s of %s", other, selection, goName, b.name)
		}
		claimed[goName] = selection
		return nil
	}

	for _, group := range b.fields {
		if group.field.Name == typenameField {
			typenameName = GoTypeName(group.key)
			if group.key == typenameField {
				typenameName = "Typename"
			}
			if err := claim(typenameName, group.key, group.field.Position); err != nil {
				return nil, err
			}
			structFields = append(structFields, jen.Id(typenameName).String().Tag(jsonTag(group.key, false)))
			accessors = append(accessors, accessor{field: typenameName, goType: jen.String()})
			continue
		}

		if err := claim(GoTypeName(group.key), group.key, group.field.Position); err != nil {
			return nil, err
		}

		field, acc, code, err := b.responseField(group)
		if err != nil {
			return nil, err
		}
		structFields = append(structFields, field)
		accessors = append(accessors, acc)
		nested = append(nested, code...)
	}

	for _, spread := range b.spreads {
		goName := GoTypeName(spread.Name)
		if err := claim(goName, "..."+spread.Name, spread.Position); err != nil {
			return nil, err
		}
		structFields = append(structFields, jen.Id(goName).Id(goName).Tag(jsonTag("-", false)))
		accessors = append(accessors, accessor{field: goName, goType: jen.Id(goName)})
	}

	for _, variant := range b.variants {
		if typenameName == "" {
			return nil, errorf(variant.position, "missing __typename in selection for %s", b.def.Name)
		}

		selection := "... on " + variant.typeName
		if variant.fragment != "" {
			selection = "..." + variant.fragment
		}
		if err := claim(variantFieldName(variant), selection, variant.position); err != nil {
			return nil, err
		}

		field, acc, code, err := b.variantField(variant)
		if err != nil {
			return nil, err
		}
		structFields = append(structFields, field)
		accessors = append(accessors, acc)
		nested = append(nested, code...)
	}

	code := Code{b.qc.ResponseDerives().Decorate(jen.Type().Id(b.name).Struct(structFields...))}
	if b.needsUnmarshal() {
		code = append(code, b.unmarshalMethod(typenameName))
	}
	code = append(code, getters(b.name, accessors)...)

	return append(code, nested...), nil
}

// collect flattens the selection into response keys, fragment spreads and
// type conditioned variants.
func (b *modelBuilder) collect(selection ast.SelectionSet) error {
	for _, s := range selection {
		switch sel := s.(type) {
		case *ast.Field:
			if err := b.collectField(sel); err != nil {
				return err
			}
		case *ast.FragmentSpread:
			if err := b.collectFragmentSpread(sel); err != nil {
				return err
			}
		case *ast.InlineFragment:
			if err := b.collectInlineFragment(sel); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b *modelBuilder) collectField(field *ast.Field) error {
	if field.Name != typenameField {
		if b.def.Kind == ast.Union {
			return errorf(field.Position, "cannot select field %s on union %s; use inline fragments", field.Name, b.def.Name)
		}
		if b.def.Fields.ForName(field.Name) == nil {
			return errorf(field.Position, "no field named %s on type %s", field.Name, b.def.Name)
		}
	}

	key := field.Alias
	if key == "" {
		key = field.Name
	}

	if group, ok := b.byKey[key]; ok {
		group.selectionSet = append(group.selectionSet, field.SelectionSet...)
		return nil
	}

	group := &fieldGroup{key: key, field: field, selectionSet: slices.Clone(field.SelectionSet)}
	b.byKey[key] = group
	b.fields = append(b.fields, group)
	return nil
}

func (b *modelBuilder) collectFragmentSpread(spread *ast.FragmentSpread) error {
	b.qc.Require(spread.Name)

	id, ok := b.qc.Fragments.Lookup(spread.Name)
	if !ok {
		return errorf(spread.Position, "unknown fragment %s", spread.Name)
	}
	condition := b.qc.Fragments.Get(id).TypeCondition

	if b.appliesToSelf(condition) {
		if !slices.ContainsFunc(b.spreads, func(s *ast.FragmentSpread) bool { return s.Name == spread.Name }) {
			b.spreads = append(b.spreads, spread)
		}
		return nil
	}
	if types := b.conditionTypes(condition); b.abstract() && len(types) > 0 {
		for _, v := range b.variants {
			if v.fragment == spread.Name {
				return nil
			}
		}
		b.variants = append(b.variants, &variantGroup{
			typeName: condition,
			types:    types,
			fragment: spread.Name,
			position: spread.Position,
		})
		return nil
	}

	return errorf(spread.Position, "fragment %s on %s cannot be spread on %s", spread.Name, condition, b.def.Name)
}

func (b *modelBuilder) collectInlineFragment(inline *ast.InlineFragment) error {
	condition := inline.TypeCondition
	if condition == "" || b.appliesToSelf(condition) {
		return b.collect(inline.SelectionSet)
	}
	if types := b.conditionTypes(condition); b.abstract() && len(types) > 0 {
		for _, v := range b.variants {
			if v.fragment == "" && v.typeName == condition {
				v.selectionSet = append(v.selectionSet, inline.SelectionSet...)
				return nil
			}
		}
		b.variants = append(b.variants, &variantGroup{
			typeName:     condition,
			types:        types,
			selectionSet: slices.Clone(inline.SelectionSet),
			position:     inline.Position,
		})
		return nil
	}

	return errorf(inline.Position, "inline fragment on %s cannot be used on %s", condition, b.def.Name)
}

// appliesToSelf reports whether a type condition holds for every value of def.
func (b *modelBuilder) appliesToSelf(condition string) bool {
	if condition == b.def.Name || b.qc.Schema.Implements(b.def, condition) {
		return true
	}
	// An object matches a union it is a member of.
	return !b.abstract() && slices.Contains(b.conditionTypes(condition), b.def.Name)
}

// conditionTypes lists the concrete types of def for which condition holds.
// An abstract condition selects the possible types it shares with def.
func (b *modelBuilder) conditionTypes(condition string) []string {
	condDef := b.qc.Schema.Definition(condition)
	if condDef == nil {
		return nil
	}

	matching := b.qc.Schema.PossibleTypes(condDef)
	var types []string
	for _, t := range b.qc.Schema.PossibleTypes(b.def) {
		if slices.Contains(matching, t) {
			types = append(types, t)
		}
	}
	return types
}

func (b *modelBuilder) responseField(group *fieldGroup) (jen.Code, accessor, Code, error) {
	fieldDef := b.def.Fields.ForName(group.field.Name)

	comment, err := b.checkDeprecation(group.field, fieldDef)
	if err != nil {
		return nil, accessor{}, nil, err
	}

	namedType := fieldDef.Type.Name()
	nestedName := FieldTypeName(b.prefix, group.key)

	code, err := b.qc.ExpandField(namedType, group.selectionSet, nestedName)
	if err != nil {
		return nil, accessor{}, nil, err
	}

	var goType *jen.Statement
	if len(group.selectionSet) > 0 {
		goType = wrapWithListAndNullability(nestedName, fieldDef.Type)
	} else {
		goType = b.qc.buildGoType(fieldDef.Type)
	}

	goName := GoTypeName(group.key)
	field := jen.Id(goName).Add(goType.Clone()).Tag(jsonTag(group.key, false))
	if comment != "" {
		field = jen.Comment(comment).Line().Add(field)
	}

	return field, accessor{field: goName, goType: goType}, code, nil
}

func (b *modelBuilder) variantField(variant *variantGroup) (jen.Code, accessor, Code, error) {
	goName := variantFieldName(variant)
	goType := jen.Op("*").Id(b.variantModelName(variant))

	var code Code
	if variant.fragment == "" {
		var err error
		code, err = b.qc.ExpandField(variant.typeName, variant.selectionSet, b.variantModelName(variant))
		if err != nil {
			return nil, accessor{}, nil, err
		}
	}

	return jen.Id(goName).Add(goType.Clone()).Tag(jsonTag("-", false)), accessor{field: goName, goType: goType}, code, nil
}

func variantFieldName(variant *variantGroup) string {
	if variant.fragment != "" {
		return GoTypeName(variant.fragment)
	}
	return "On" + GoTypeName(variant.typeName)
}

// checkDeprecation applies the deprecation strategy to a selected field and
// returns the doc comment to attach to the generated field, if any.
func (b *modelBuilder) checkDeprecation(field *ast.Field, fieldDef *ast.FieldDefinition) (string, error) {
	status := deprecation.FieldStatus(fieldDef)
	if !status.Deprecated {
		return "", nil
	}

	switch b.qc.DeprecationStrategy {
	case deprecation.Deny:
		return "", errorf(field.Position, "field %s.%s is deprecated: %s", b.def.Name, field.Name, status.Reason)
	case deprecation.Warn:
		b.qc.Logger().WithFields(logrus.Fields{
			"type":   b.def.Name,
			"field":  field.Name,
			"reason": status.Reason,
		}).Warn("deprecated field selected")
		return "Deprecated: " + status.Reason, nil
	case deprecation.Allow:
	}

	return "", nil
}
