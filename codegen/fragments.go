package codegen

import (
	"cmp"
	"slices"

	"github.com/vektah/gqlparser/v2/ast"
)

// FragmentID addresses a fragment inside its FragmentRegistry.
type FragmentID int

// Fragment is a named selection that operations can spread.
type Fragment struct {
	Name          string
	TypeCondition string
	SelectionSet  ast.SelectionSet
	Definition    *ast.FragmentDefinition
	required      bool
}

// Required reports whether an operation spread this fragment.
func (f Fragment) Required() bool {
	return f.required
}

type FragmentRegistry struct {
	fragments []Fragment
	byName    map[string]FragmentID
}

func NewFragmentRegistry() *FragmentRegistry {
	return &FragmentRegistry{byName: make(map[string]FragmentID)}
}

// Add registers def. Fragment names are unique, so a second definition with
// the same name is ignored and the existing ID is returned.
func (r *FragmentRegistry) Add(def *ast.FragmentDefinition) FragmentID {
	if id, ok := r.byName[def.Name]; ok {
		return id
	}
	id := FragmentID(len(r.fragments))
	r.fragments = append(r.fragments, Fragment{
		Name:          def.Name,
		TypeCondition: def.TypeCondition,
		SelectionSet:  def.SelectionSet,
		Definition:    def,
	})
	r.byName[def.Name] = id
	return id
}

// AddAll registers every definition of the list.
func (r *FragmentRegistry) AddAll(defs ast.FragmentDefinitionList) {
	for _, def := range defs {
		r.Add(def)
	}
}

func (r *FragmentRegistry) Lookup(name string) (FragmentID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

func (r *FragmentRegistry) Get(id FragmentID) Fragment {
	return r.fragments[id]
}

// MarkRequired sets the reachability flag of id. The flag never goes back to false.
func (r *FragmentRegistry) MarkRequired(id FragmentID) {
	r.fragments[id].required = true
}

func (r *FragmentRegistry) IsRequired(name string) bool {
	id, ok := r.byName[name]
	return ok && r.fragments[id].required
}

func (r *FragmentRegistry) Len() int {
	return len(r.fragments)
}

// Required lists the reached fragments sorted by name.
func (r *FragmentRegistry) Required() []Fragment {
	var out []Fragment
	for _, f := range r.fragments {
		if f.required {
			out = append(out, f)
		}
	}
	slices.SortFunc(out, func(a, b Fragment) int {
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}
