package cmd

import (
	"errors"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/ladybug-tools/honeybee-vtk-go/config"
)

// WriteConfig scans a folder tree for result sets and writes a
// default config file for them.
func WriteConfig(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing results folder to scan")
	}

	cfg, err := config.Generate(ctx.Args().First())
	if err != nil {
		return err
	}

	target := filepath.Join(ctx.String("folder"), ctx.String("name")+".json")
	if err := config.Write(cfg, target); err != nil {
		return err
	}
	logger.Noticef("wrote config with %d result sets to %s", len(cfg.Data), target)
	return nil
}
