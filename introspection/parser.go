package introspection

import (
	"fmt"
	"os"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/Yamashou/gqlbind/graphqljson"
)

// Load reads a saved introspection result from filename and returns the
// validated schema it describes.
func Load(filename string) (*ast.Schema, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read introspection result: %w", err)
	}

	var res Query
	if err := graphqljson.DecodeResponse(content, &res); err != nil {
		return nil, fmt.Errorf("unable to decode introspection result %s: %w", filename, err)
	}

	doc, err := SchemaFromIntrospection(filename, res)
	if err != nil {
		return nil, err
	}

	schema, err := validator.ValidateSchemaDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	return schema, nil
}

// SchemaFromIntrospection converts an introspection result into a schema
// document. Types and directives that the gqlparser prelude already declares
// are taken from the prelude, which is merged into the returned document.
func SchemaFromIntrospection(name string, res Query) (*ast.SchemaDocument, error) {
	prelude, err := parser.ParseSchema(validator.Prelude)
	if err != nil {
		return nil, fmt.Errorf("parse prelude: %w", err)
	}

	p := &introspectionParser{
		position: &ast.Position{Src: &ast.Source{Name: name}},
	}

	builtinTypes := make(map[string]bool, len(prelude.Definitions))
	for _, def := range prelude.Definitions {
		builtinTypes[def.Name] = true
	}
	builtinDirectives := make(map[string]bool, len(prelude.Directives))
	for _, dir := range prelude.Directives {
		builtinDirectives[dir.Name] = true
	}

	doc := &ast.SchemaDocument{}
	doc.Schema = append(doc.Schema, p.schemaDefinition(res))

	for _, typ := range res.Schema.Types {
		if typ.Name == nil || builtinTypes[*typ.Name] {
			continue
		}
		def, err := p.definition(typ)
		if err != nil {
			return nil, err
		}
		doc.Definitions = append(doc.Definitions, def)
	}

	for _, dir := range res.Schema.Directives {
		if builtinDirectives[dir.Name] {
			continue
		}
		doc.Directives = append(doc.Directives, p.directiveDefinition(dir))
	}

	doc.Merge(prelude)

	return doc, nil
}

type introspectionParser struct {
	position *ast.Position
}

func (p *introspectionParser) schemaDefinition(res Query) *ast.SchemaDefinition {
	def := &ast.SchemaDefinition{Position: p.position}
	add := func(op ast.Operation, typeName *string) {
		if typeName == nil || *typeName == "" {
			return
		}
		def.OperationTypes = append(def.OperationTypes, &ast.OperationTypeDefinition{
			Operation: op,
			Type:      *typeName,
			Position:  p.position,
		})
	}

	add(ast.Query, res.Schema.QueryType.Name)
	if res.Schema.MutationType != nil {
		add(ast.Mutation, res.Schema.MutationType.Name)
	}
	if res.Schema.SubscriptionType != nil {
		add(ast.Subscription, res.Schema.SubscriptionType.Name)
	}

	return def
}

func (p *introspectionParser) definition(typ *FullType) (*ast.Definition, error) {
	def := &ast.Definition{
		Name:        *typ.Name,
		Description: deref(typ.Description),
		Position:    p.position,
	}

	switch typ.Kind {
	case TypeKindScalar:
		def.Kind = ast.Scalar
	case TypeKindObject:
		def.Kind = ast.Object
		def.Fields = p.fields(typ.Fields)
		def.Interfaces = refNames(typ.Interfaces)
	case TypeKindInterface:
		def.Kind = ast.Interface
		def.Fields = p.fields(typ.Fields)
		def.Interfaces = refNames(typ.Interfaces)
	case TypeKindUnion:
		def.Kind = ast.Union
		def.Types = refNames(typ.PossibleTypes)
	case TypeKindEnum:
		def.Kind = ast.Enum
		for _, v := range typ.EnumValues {
			def.EnumValues = append(def.EnumValues, &ast.EnumValueDefinition{
				Name:        v.Name,
				Description: deref(v.Description),
				Directives:  p.deprecated(v.IsDeprecated, v.DeprecationReason),
				Position:    p.position,
			})
		}
	case TypeKindInputObject:
		def.Kind = ast.InputObject
		for _, f := range typ.InputFields {
			def.Fields = append(def.Fields, &ast.FieldDefinition{
				Name:        f.Name,
				Description: deref(f.Description),
				Type:        p.typeRef(&f.Type),
				Position:    p.position,
			})
		}
	default:
		return nil, fmt.Errorf("unexpected kind %q for type %s", typ.Kind, *typ.Name)
	}

	return def, nil
}

func (p *introspectionParser) fields(values []*FieldValue) ast.FieldList {
	fields := make(ast.FieldList, 0, len(values))
	for _, f := range values {
		fields = append(fields, &ast.FieldDefinition{
			Name:        f.Name,
			Description: deref(f.Description),
			Arguments:   p.arguments(f.Args),
			Type:        p.typeRef(&f.Type),
			Directives:  p.deprecated(f.IsDeprecated, f.DeprecationReason),
			Position:    p.position,
		})
	}
	return fields
}

func (p *introspectionParser) arguments(values []*InputValue) ast.ArgumentDefinitionList {
	if len(values) == 0 {
		return nil
	}
	args := make(ast.ArgumentDefinitionList, 0, len(values))
	for _, a := range values {
		args = append(args, &ast.ArgumentDefinition{
			Name:        a.Name,
			Description: deref(a.Description),
			Type:        p.typeRef(&a.Type),
			Position:    p.position,
		})
	}
	return args
}

func (p *introspectionParser) deprecated(isDeprecated bool, reason *string) ast.DirectiveList {
	if !isDeprecated {
		return nil
	}
	directive := &ast.Directive{Name: "deprecated", Position: p.position}
	if reason != nil {
		directive.Arguments = ast.ArgumentList{{
			Name:     "reason",
			Value:    &ast.Value{Kind: ast.StringValue, Raw: *reason, Position: p.position},
			Position: p.position,
		}}
	}
	return ast.DirectiveList{directive}
}

func (p *introspectionParser) directiveDefinition(dir *DirectiveType) *ast.DirectiveDefinition {
	locations := make([]ast.DirectiveLocation, 0, len(dir.Locations))
	for _, l := range dir.Locations {
		locations = append(locations, ast.DirectiveLocation(l))
	}
	return &ast.DirectiveDefinition{
		Name:        dir.Name,
		Description: deref(dir.Description),
		Arguments:   p.arguments(dir.Args),
		Locations:   locations,
		Position:    p.position,
	}
}

func (p *introspectionParser) typeRef(ref *TypeRef) *ast.Type {
	switch ref.Kind {
	case TypeKindNonNull:
		t := p.typeRef(ref.OfType)
		t.NonNull = true
		return t
	case TypeKindList:
		return &ast.Type{Elem: p.typeRef(ref.OfType), Position: p.position}
	default:
		return &ast.Type{NamedType: deref(ref.Name), Position: p.position}
	}
}

func refNames(refs []*TypeRef) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Name != nil {
			names = append(names, *ref.Name)
		}
	}
	slices.Sort(names)
	return names
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
