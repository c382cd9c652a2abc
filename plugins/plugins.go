package plugins

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/tools/imports"

	"github.com/Yamashou/gqlbind/codegen"
	"github.com/Yamashou/gqlbind/config"
	"github.com/Yamashou/gqlbind/plugins/modelgen"
	"github.com/Yamashou/gqlbind/plugins/querygen"
	"github.com/Yamashou/gqlbind/schema"
)

// GenerateCode expands every operation of the loaded query document and writes
// the query file and the model file. One QueryContext serves the whole run, so
// the required flags it collects span all operations.
func GenerateCode(cfg *config.Config, logger logrus.FieldLogger) error {
	qc := codegen.NewQueryContext(
		schema.NewRegistry(cfg.Schema),
		cfg.Deprecation,
		codegen.WithScalarBindings(cfg.ScalarBindings()),
		codegen.WithLogger(logger),
	)
	qc.Fragments.AddAll(cfg.QueryDocument.Fragments)

	if cfg.AdditionalDerives != "" {
		if err := qc.IngestAdditionalDerives(cfg.AdditionalDerives); err != nil {
			return fmt.Errorf("additional_derives: %w", err)
		}
	}

	////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
	// querygen

	queryGen := querygen.New(qc, cfg.Schema, cfg.QueryDocument)
	queryCode, err := queryGen.Generate()
	if err != nil {
		return fmt.Errorf("%s failed: %w", queryGen.Name(), err)
	}
	if err := writeFile(cfg.QueryGen.Filename, cfg.QueryGen.Package, queryCode); err != nil {
		return fmt.Errorf("%s failed: %w", queryGen.Name(), err)
	}

	////////////////////////////////////////////////////////////////////////////////////////////////////////////////////
	// modelgen

	modelGen := modelgen.New(qc, queryGen.Inputs())
	modelCode, err := modelGen.Generate()
	if err != nil {
		return fmt.Errorf("%s failed: %w", modelGen.Name(), err)
	}
	if err := writeFile(cfg.Model.Filename, cfg.Model.Package, modelCode); err != nil {
		return fmt.Errorf("%s failed: %w", modelGen.Name(), err)
	}

	logger.WithFields(logrus.Fields{
		"operations": len(cfg.QueryDocument.Operations),
		"fragments":  len(qc.Fragments.Required()),
		"enums":      len(qc.Schema.Required(schema.KindEnum)),
		"inputs":     len(queryGen.Inputs()),
	}).Info("generated")

	return nil
}

// writeFile renders code as a Go file and runs goimports over it.
func writeFile(filename, pkg string, code codegen.Code) error {
	src, err := code.Render(pkg)
	if err != nil {
		return err
	}

	formatted, err := imports.Process(filename, []byte(src), nil)
	if err != nil {
		return fmt.Errorf("go imports: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(filename), err)
	}

	if err := os.WriteFile(filename, formatted, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}

	return nil
}
