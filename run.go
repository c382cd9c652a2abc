package main

import (
	"context"
	"fmt"

	"github.com/Yamashou/gqlbind/config"
	"github.com/Yamashou/gqlbind/logging"
	"github.com/Yamashou/gqlbind/plugins"
)

func run(ctx context.Context, cfgFile string) error {
	if cfgFile == "" {
		found, err := config.FindConfigFile(".", config.DefaultConfigFilenames)
		if err != nil {
			return fmt.Errorf("failed to find config file: %w", err)
		}
		cfgFile = found
	}

	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config file: %w", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := cfg.LoadSchema(); err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	if err := cfg.LoadQuery(); err != nil {
		return fmt.Errorf("failed to load query: %w", err)
	}

	if err := plugins.GenerateCode(cfg, logger.WithField("config", cfgFile)); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
