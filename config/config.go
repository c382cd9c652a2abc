package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	gqlgenconfig "github.com/99designs/gqlgen/codegen/config"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/Yamashou/gqlbind/deprecation"
	"github.com/Yamashou/gqlbind/logging"
	"github.com/Yamashou/gqlbind/queryparser"
	"github.com/Yamashou/gqlbind/schema"
)

// DefaultConfigFilenames are searched, in order, when no config file is given.
var DefaultConfigFilenames = []string{".gqlbind.yml", "gqlbind.yml", ".gqlbind.yaml", "gqlbind.yaml"}

var (
	ErrNoSchema             = errors.New("'schema' must list at least one file")
	ErrNoQuery              = errors.New("'query' must list at least one file")
	ErrPackageMismatch      = errors.New("'model' and 'querygen' must be generated into the same package directory")
	ErrConfigFileNotFound   = errors.New("unable to find config file")
	ErrEmptyScalarBindingGo = errors.New("scalar binding must name a Go type")
)

// Config represents the config file.
type Config struct {
	SchemaFilename      gqlgenconfig.StringList    `yaml:"schema"`
	Query               []string                   `yaml:"query"`
	Model               gqlgenconfig.PackageConfig `yaml:"model"`
	QueryGen            gqlgenconfig.PackageConfig `yaml:"querygen"`
	DeprecationStrategy string                     `yaml:"deprecation_strategy,omitempty"`
	AdditionalDerives   string                     `yaml:"additional_derives,omitempty"`
	Models              gqlgenconfig.TypeMap       `yaml:"models,omitempty"`
	Log                 logging.Config             `yaml:"log,omitempty"`

	Deprecation   deprecation.Strategy `yaml:"-"`
	Schema        *ast.Schema          `yaml:"-"`
	QueryDocument *ast.QueryDocument   `yaml:"-"`
}

// FindConfigFile returns the first of filenames that exists in dir.
func FindConfigFile(dir string, filenames []string) (string, error) {
	for _, filename := range filenames {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("%w in %s (looked for %v)", ErrConfigFileNotFound, dir, filenames)
}

// LoadConfig loads and validates the config file.
func LoadConfig(configFilename string) (*Config, error) {
	configContent, err := os.ReadFile(configFilename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var c Config

	yamlDecoder := yaml.NewDecoder(bytes.NewReader([]byte(os.ExpandEnv(string(configContent)))), yaml.DisallowUnknownField())
	if err := yamlDecoder.Decode(&c); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	// validation
	if len(c.SchemaFilename) == 0 {
		return nil, ErrNoSchema
	}

	if len(c.Query) == 0 {
		return nil, ErrNoQuery
	}

	if err := c.Model.Check(); err != nil {
		return nil, fmt.Errorf("model: %w", err)
	}

	if err := c.QueryGen.Check(); err != nil {
		return nil, fmt.Errorf("querygen: %w", err)
	}

	if c.Model.Dir() != c.QueryGen.Dir() || c.Model.Package != c.QueryGen.Package {
		return nil, ErrPackageMismatch
	}

	strategy, err := deprecation.Parse(c.DeprecationStrategy)
	if err != nil {
		return nil, fmt.Errorf("deprecation_strategy: %w", err)
	}
	c.Deprecation = strategy

	for name, entry := range c.Models {
		if len(entry.Model) == 0 || entry.Model[0] == "" {
			return nil, fmt.Errorf("models.%s: %w", name, ErrEmptyScalarBindingGo)
		}
	}

	return &c, nil
}

// ScalarBindings returns the Go type bound to each custom scalar.
func (c *Config) ScalarBindings() map[string]string {
	bindings := make(map[string]string, len(c.Models))
	for name, entry := range c.Models {
		bindings[name] = entry.Model[0]
	}
	return bindings
}

// LoadSchema loads the schema files named in the config.
func (c *Config) LoadSchema() error {
	s, err := schema.Load(c.SchemaFilename)
	if err != nil {
		return err
	}

	c.Schema = s
	return nil
}

// LoadQuery loads and validates the query documents against the loaded schema.
func (c *Config) LoadQuery() error {
	if c.Schema == nil {
		return errors.New("schema must be loaded before queries")
	}

	querySources, err := queryparser.LoadQuerySources(c.Query)
	if err != nil {
		return fmt.Errorf("load query sources failed: %w", err)
	}

	queryDocument, err := queryparser.QueryDocument(c.Schema, querySources)
	if err != nil {
		return fmt.Errorf("load query failed: %w", err)
	}

	c.QueryDocument = queryDocument

	return nil
}
