// Package queryparser loads the query documents that drive code generation.
package queryparser

import (
	"errors"
	"fmt"
	"os"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"

	"github.com/Yamashou/gqlbind/schema"
)

var ErrAnonymousOperation = errors.New("operation must be named")

// LoadQuerySources expands the query globs and reads every matched file.
func LoadQuerySources(queryFileNames []string) ([]*ast.Source, error) {
	files, err := schema.ExpandGlobs(queryFileNames)
	if err != nil {
		return nil, fmt.Errorf("failed to expand query files: %w", err)
	}
	if len(files) == 0 {
		return nil, errors.New("no query files found")
	}

	sources := make([]*ast.Source, 0, len(files))
	for _, filename := range files {
		content, err := os.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("unable to open query: %w", err)
		}
		sources = append(sources, &ast.Source{Name: filename, Input: string(content)})
	}

	return sources, nil
}

// QueryDocument parses every source, merges them into a single document and
// validates the result against the schema. Fragments may be shared between
// files.
func QueryDocument(s *ast.Schema, querySources []*ast.Source) (*ast.QueryDocument, error) {
	var queryDocument ast.QueryDocument
	for _, querySource := range querySources {
		doc, err := parser.ParseQuery(querySource)
		if err != nil {
			return nil, fmt.Errorf("parse query %s: %w", querySource.Name, err)
		}
		queryDocument.Operations = append(queryDocument.Operations, doc.Operations...)
		queryDocument.Fragments = append(queryDocument.Fragments, doc.Fragments...)
	}

	if errs := validator.Validate(s, &queryDocument); len(errs) > 0 {
		return nil, fmt.Errorf("validate query: %w", errs)
	}

	for _, operation := range queryDocument.Operations {
		if operation.Name == "" {
			return nil, fmt.Errorf("%s: %w", positionOf(operation.Position), ErrAnonymousOperation)
		}
	}

	return &queryDocument, nil
}

// FragmentsUsedBy returns the names of the fragments an operation spreads,
// directly or through other fragments, in first-use order.
func FragmentsUsedBy(doc *ast.QueryDocument, operation *ast.OperationDefinition) []string {
	var used []string
	seen := make(map[string]bool)

	var walk func(ast.SelectionSet)
	walk = func(set ast.SelectionSet) {
		for _, selection := range set {
			switch sel := selection.(type) {
			case *ast.Field:
				walk(sel.SelectionSet)
			case *ast.InlineFragment:
				walk(sel.SelectionSet)
			case *ast.FragmentSpread:
				if seen[sel.Name] {
					continue
				}
				seen[sel.Name] = true
				used = append(used, sel.Name)
				if fragment := doc.Fragments.ForName(sel.Name); fragment != nil {
					walk(fragment.SelectionSet)
				}
			}
		}
	}
	walk(operation.SelectionSet)

	return used
}

func positionOf(pos *ast.Position) string {
	if pos == nil || pos.Src == nil {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", pos.Src.Name, pos.Line)
}
