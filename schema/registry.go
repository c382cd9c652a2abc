// Package schema holds the schema-side view used during one generation pass:
// every enum, object, interface and union of the loaded schema, each with a
// reachability flag that records whether some operation touched it.
package schema

import (
	"maps"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
)

// Kind is the structural category of a named schema type.
type Kind int

const (
	// KindScalar covers built-in and custom scalars as well as names the
	// registry does not know. Such names are never tracked.
	KindScalar Kind = iota
	KindEnum
	KindObject
	KindInterface
	KindUnion
)

func (k Kind) String() string {
	switch k {
	case KindEnum:
		return "enum"
	case KindObject:
		return "object"
	case KindInterface:
		return "interface"
	case KindUnion:
		return "union"
	}
	return "scalar"
}

// EntityID addresses an entity inside its Registry. IDs are stable for the
// lifetime of the registry.
type EntityID int

// NoEntity is returned by Lookup for scalars and unknown names.
const NoEntity EntityID = -1

type Entity struct {
	Name       string
	Kind       Kind
	Definition *ast.Definition
	required   bool
}

// Required reports whether an operation reached this entity.
func (e Entity) Required() bool {
	return e.required
}

type Registry struct {
	schema   *ast.Schema
	entities []Entity
	byName   map[string]EntityID
}

// NewRegistry partitions the schema types into the four tracked categories and
// registers them enum first, then objects, interfaces and unions.
func NewRegistry(s *ast.Schema) *Registry {
	var enums, objects, interfaces, unions []*ast.Definition
	for _, name := range slices.Sorted(maps.Keys(s.Types)) {
		def := s.Types[name]
		switch def.Kind {
		case ast.Enum:
			enums = append(enums, def)
		case ast.Object:
			objects = append(objects, def)
		case ast.Interface:
			interfaces = append(interfaces, def)
		case ast.Union:
			unions = append(unions, def)
		}
	}

	r := NewRegistryFromTables(enums, objects, interfaces, unions)
	r.schema = s
	return r
}

// NewRegistryFromTables builds a registry from explicit tables. When a name
// appears in more than one table the first table wins, in the order enums,
// objects, interfaces, unions.
func NewRegistryFromTables(enums, objects, interfaces, unions []*ast.Definition) *Registry {
	r := &Registry{byName: make(map[string]EntityID)}
	r.register(KindEnum, enums)
	r.register(KindObject, objects)
	r.register(KindInterface, interfaces)
	r.register(KindUnion, unions)
	return r
}

func (r *Registry) register(kind Kind, defs []*ast.Definition) {
	for _, def := range defs {
		if _, ok := r.byName[def.Name]; ok {
			continue
		}
		r.byName[def.Name] = EntityID(len(r.entities))
		r.entities = append(r.entities, Entity{Name: def.Name, Kind: kind, Definition: def})
	}
}

// Lookup classifies name. Unknown names and scalars yield (NoEntity, KindScalar).
func (r *Registry) Lookup(name string) (EntityID, Kind) {
	id, ok := r.byName[name]
	if !ok {
		return NoEntity, KindScalar
	}
	return id, r.entities[id].Kind
}

// Entity returns a copy of the entity behind id.
func (r *Registry) Entity(id EntityID) Entity {
	return r.entities[id]
}

// MarkRequired sets the reachability flag. The flag never goes back to false.
func (r *Registry) MarkRequired(id EntityID) {
	r.entities[id].required = true
}

// IsRequired reports whether name is a tracked entity that has been reached.
func (r *Registry) IsRequired(name string) bool {
	id, ok := r.byName[name]
	return ok && r.entities[id].required
}

// Definition returns the schema definition for any named type, tracked or not.
func (r *Registry) Definition(name string) *ast.Definition {
	if id, ok := r.byName[name]; ok {
		return r.entities[id].Definition
	}
	if r.schema != nil {
		return r.schema.Types[name]
	}
	return nil
}

// Required lists the reached entities of one kind, in registration order.
func (r *Registry) Required(kind Kind) []Entity {
	var out []Entity
	for _, e := range r.entities {
		if e.Kind == kind && e.required {
			out = append(out, e)
		}
	}
	return out
}

// Implements reports whether object (or interface) def implements iface.
func (r *Registry) Implements(def *ast.Definition, iface string) bool {
	return slices.Contains(def.Interfaces, iface)
}

// PossibleTypes lists the concrete object names an abstract type can resolve to.
func (r *Registry) PossibleTypes(def *ast.Definition) []string {
	switch def.Kind {
	case ast.Union:
		return def.Types
	case ast.Interface:
		if r.schema != nil {
			var names []string
			for _, t := range r.schema.GetPossibleTypes(def) {
				names = append(names, t.Name)
			}
			return names
		}
		var names []string
		for _, e := range r.entities {
			if e.Kind == KindObject && r.Implements(e.Definition, def.Name) {
				names = append(names, e.Name)
			}
		}
		return names
	}
	return []string{def.Name}
}
