package cmd

import (
	"errors"
	"sort"

	"github.com/urfave/cli"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/render"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
	"github.com/ladybug-tools/honeybee-vtk-go/timeseries"
)

func imageFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "folder, f",
			Value: ".",
			Usage: "path to the target folder",
		},
		cli.StringFlag{
			Name:  "image-type, t",
			Value: "png",
			Usage: "image format: png or jpg",
		},
		cli.IntFlag{
			Name:  "width, w",
			Value: 1920,
			Usage: "image width in pixels",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 1088,
			Usage: "image height in pixels",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "path to the config file with simulation data to mount",
		},
		cli.BoolFlag{
			Name:  "validate-data",
			Usage: "validate simulation data against the model grids before loading",
		},
	}
}

// ModelImagesFlags lists the flags of the model-images subcommand.
func ModelImagesFlags() []cli.Flag {
	return append(imageFlags(),
		cli.StringFlag{
			Name:  "display-mode, d",
			Value: "shaded",
			Usage: "display mode: shaded, surface, surfacewithedges, wireframe or points",
		},
		cli.StringFlag{
			Name:  "grid-options, g",
			Value: "ignore",
			Usage: "load sensor grids as: ignore, points or meshes",
		},
		cli.StringSliceFlag{
			Name:  "view",
			Usage: "path to a radiance view file; repeat for extra cameras",
		},
		cli.BoolFlag{
			Name:  "transparent-background, b",
			Usage: "render with a transparent background (png only)",
		},
	)
}

// ExportModelImages renders one image of the whole model per camera.
func ExportModelImages(ctx *cli.Context) error {
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

	s, err := scene.FromModel(m)
	if err != nil {
		return err
	}
	if err := s.AddViewFiles(ctx.StringSlice("view")); err != nil {
		return err
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}
	opts.Transparent = ctx.Bool("transparent-background")

	r, err := render.New(s, opts)
	if err != nil {
		return err
	}
	paths, err := r.WriteImages(ctx.String("folder"))
	if err != nil {
		return err
	}
	logger.Noticef("wrote %d images to %s", len(paths), ctx.String("folder"))
	return nil
}

// GridImagesFlags lists the flags of the grid-images subcommand.
func GridImagesFlags() []cli.Flag {
	return append(imageFlags(),
		cli.StringFlag{
			Name:  "grid-options, g",
			Value: "meshes",
			Usage: "load sensor grids as: points or meshes",
		},
	)
}

// ExportGridImages renders one image per sensor grid per mounted
// result set, each from a camera right above the grid.
func ExportGridImages(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing HBJSON model file")
	}
	if ctx.String("config") == "" {
		return errors.New("the grid-images export needs a config file with the data to display")
	}

	m, err := loadModel(ctx.Args().First(), ctx.String("grid-options"), "")
	if err != nil {
		return err
	}
	if m.Grids.IsEmpty() {
		return errors.New("the model has no sensor grids to export images for")
	}
	if err := mountConfig(ctx, m); err != nil {
		return err
	}

	names := make([]string, 0, len(m.Grids.Legends))
	for name := range m.Grids.Legends {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return errors.New("the config mounted no data on the grids")
	}

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	assoc := model.CellData
	if m.GridOptions == model.GridSensors {
		assoc = model.PointData
	}

	// One render pass per result set so each image colors its grids
	// by the right data array.
	written := 0
	for _, name := range names {
		if err := m.Grids.ColorBy(name, assoc); err != nil {
			return err
		}

		s := scene.New()
		s.Actors = append(s.Actors, scene.NewActor(m.Grids))
		for _, pd := range m.Grids.Data {
			s.Cameras = append(s.Cameras, scene.GridCamera(name, pd))
		}

		r, err := render.New(s, opts)
		if err != nil {
			return err
		}
		paths, err := r.WriteImages(ctx.String("folder"))
		if err != nil {
			return err
		}
		written += len(paths)
	}
	logger.Noticef("wrote %d grid images to %s", written, ctx.String("folder"))
	return nil
}

// TimestepImagesFlags lists the flags of the timestep-images
// subcommand.
func TimestepImagesFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "folder, f",
			Value: ".",
			Usage: "path to the target folder",
		},
		cli.StringFlag{
			Name:  "steps-folder, s",
			Usage: "folder with the extracted timestep data, as written by timestep-data",
		},
		cli.StringFlag{
			Name:  "data-name, n",
			Value: "data",
			Usage: "name of the result data shown in the images",
		},
		cli.StringFlag{
			Name:  "grid-options, g",
			Value: "meshes",
			Usage: "load sensor grids as: points or meshes",
		},
		cli.IntFlag{
			Name:  "width, w",
			Value: 1920,
			Usage: "image width in pixels",
		},
		cli.IntFlag{
			Name:  "height",
			Value: 1088,
			Usage: "image height in pixels",
		},
		cli.BoolFlag{
			Name:  "label-images",
			Usage: "stamp each image with the date of its timestep",
		},
	}
}

// ExportTimestepImages renders the frames of a timestep animation:
// one transparent image per grid per timestep.
func ExportTimestepImages(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing HBJSON model file")
	}
	stepsFolder := ctx.String("steps-folder")
	if stepsFolder == "" {
		return errors.New("missing --steps-folder with the extracted timestep data")
	}

	m, err := loadModel(ctx.Args().First(), ctx.String("grid-options"), "")
	if err != nil {
		return err
	}

	steps, err := timeseries.ListSteps(stepsFolder)
	if err != nil {
		return err
	}

	paths, err := timeseries.ExportImages(m, steps, ctx.String("folder"), timeseries.ImageOptions{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		DataName: ctx.String("data-name"),
		Annotate: ctx.Bool("label-images"),
	})
	if err != nil {
		return err
	}
	logger.Noticef("wrote %d timestep images to %s", len(paths), ctx.String("folder"))
	return nil
}

func renderOptions(ctx *cli.Context) (render.Options, error) {
	opts := render.DefaultOptions()
	opts.Width = ctx.Int("width")
	opts.Height = ctx.Int("height")

	format, err := render.ParseImageFormat(ctx.String("image-type"))
	if err != nil {
		return opts, err
	}
	opts.Format = format
	return opts, opts.Validate()
}
