package schema

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Yamashou/gqlbind/introspection"
)

var ErrMixedSchemaSources = errors.New("schema files mix SDL and introspection JSON; use one or the other")

// Load reads the schema named by filenames. Each entry may be a glob. Files with
// a .json extension are treated as introspection results, anything else as SDL.
func Load(filenames []string) (*ast.Schema, error) {
	files, err := ExpandGlobs(filenames)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("no schema files found")
	}

	var jsonFiles, sdlFiles []string
	for _, f := range files {
		if strings.EqualFold(filepath.Ext(f), ".json") {
			jsonFiles = append(jsonFiles, f)
		} else {
			sdlFiles = append(sdlFiles, f)
		}
	}

	switch {
	case len(jsonFiles) > 0 && len(sdlFiles) > 0:
		return nil, ErrMixedSchemaSources
	case len(jsonFiles) > 1:
		return nil, fmt.Errorf("only one introspection result can be loaded, got %d", len(jsonFiles))
	case len(jsonFiles) == 1:
		s, err := introspection.Load(jsonFiles[0])
		if err != nil {
			return nil, fmt.Errorf("load introspection schema failed: %w", err)
		}
		return s, nil
	}

	sources := make([]*ast.Source, 0, len(sdlFiles))
	for _, f := range sdlFiles {
		content, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("unable to open schema: %w", err)
		}
		sources = append(sources, &ast.Source{Name: f, Input: string(content)})
	}

	s, err := gqlparser.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load local schema failed: %w", err)
	}

	return s, nil
}

// ExpandGlobs resolves every pattern and returns the matched files sorted and
// without duplicates. A pattern without glob meta characters must exist.
func ExpandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("failed to glob %s: %w", pattern, err)
		}
		if len(matches) == 0 && !hasMeta(pattern) {
			return nil, fmt.Errorf("unable to open %s: %w", pattern, os.ErrNotExist)
		}
		files = append(files, matches...)
	}

	slices.Sort(files)
	return slices.Compact(files), nil
}

func hasMeta(pattern string) bool {
	return strings.ContainsAny(pattern, `*?[\`)
}
