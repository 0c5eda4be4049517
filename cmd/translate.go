// Package cmd implements the CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli"

	"github.com/ladybug-tools/honeybee-vtk-go/config"
	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
	"github.com/ladybug-tools/honeybee-vtk-go/vtk"
	"github.com/ladybug-tools/honeybee-vtk-go/vtkjs"
)

// Translate a HBJSON model to a html, vtkjs, vtk or vtp output.
func Translate(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing HBJSON model file")
	}

	m, err := loadModel(ctx.Args().First(), ctx.String("grid-options"), ctx.String("display-mode"))
	if err != nil {
		return err
	}
	if err := mountConfig(ctx, m); err != nil {
		return err
	}

	folder := ctx.String("folder")
	name := ctx.String("name")

	var target string
	switch fileType := ctx.String("file-type"); fileType {
	case "vtk", "vtp":
		target, err = vtk.WriteModel(m, folder, name, vtk.Format(fileType))
	case "vtkjs", "html":
		var s *scene.Scene
		s, err = scene.FromModel(m)
		if err != nil {
			return err
		}
		if fileType == "vtkjs" {
			target, err = vtkjs.WriteBundle(s, folder, name)
		} else {
			target, err = vtkjs.WriteHTML(s, folder, name)
		}
	default:
		return fmt.Errorf("unsupported file type '%s'; use html, vtkjs, vtk or vtp", fileType)
	}
	if err != nil {
		return err
	}

	logger.Noticef("wrote %s", target)
	return nil
}

// loadModel parses a HBJSON file and applies the grid and display
// mode options.
func loadModel(path, gridOptions, displayMode string) (*model.Model, error) {
	grids, err := model.ParseGridOptions(gridOptions)
	if err != nil {
		return nil, err
	}

	logger.Infof("loading model from %s", path)
	m, err := model.FromHBJSON(path, grids)
	if err != nil {
		return nil, err
	}

	if displayMode != "" {
		mode, err := model.ParseDisplayMode(displayMode)
		if err != nil {
			return nil, err
		}
		m.SetDisplayMode(mode)
	}
	if grids == model.GridMeshes {
		m.SetGridDisplayMode(model.ModeSurfaceWithEdges)
	}
	return m, nil
}

// mountConfig loads the config file named by the --config flag, if
// any, and mounts its result sets on the model.
func mountConfig(ctx *cli.Context, m *model.Model) error {
	path := ctx.String("config")
	if path == "" {
		return nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Infof("mounting %d result sets from %s", len(cfg.Data), path)
	return config.Apply(cfg, m, filepath.Dir(path), ctx.Bool("validate-data"))
}
