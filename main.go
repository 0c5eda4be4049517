package main

import (
	"os"

	"github.com/ladybug-tools/honeybee-vtk-go/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "honeybee-vtk"
	app.Usage = "translate HBJSON models to VTK-based visualization formats"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "translate",
			Usage: "translate a HBJSON file to an HTML, vtkjs, vtk or vtp output",
			Description: `
Parse a HBJSON model, group its geometry by type and write the scene to the
requested format. The html and vtkjs formats produce a single file that can be
opened in a web viewer. The vtk and vtp formats produce a zip archive with one
polydata file per object type.`,
			ArgsUsage: "model.hbjson",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "name, n",
					Value: "model",
					Usage: "name of the output file",
				},
				cli.StringFlag{
					Name:  "folder, f",
					Value: ".",
					Usage: "path to the target folder",
				},
				cli.StringFlag{
					Name:  "file-type, t",
					Value: "html",
					Usage: "output format: html, vtkjs, vtk or vtp",
				},
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
				cli.StringFlag{
					Name:  "config, c",
					Usage: "path to the config file with simulation data to mount",
				},
				cli.BoolFlag{
					Name:  "validate-data",
					Usage: "validate simulation data against the model grids before loading",
				},
			},
			Action: cmd.Translate,
		},
		{
			Name:  "export",
			Usage: "export images from a HBJSON model",
			Subcommands: []cli.Command{
				{
					Name:        "model-images",
					Usage:       "export one image per camera in the scene",
					Description: `Render images of the model from the cameras found in the model, from radiance view files, or from the default aerial cameras.`,
					ArgsUsage:   "model.hbjson",
					Flags:       cmd.ModelImagesFlags(),
					Action:      cmd.ExportModelImages,
				},
				{
					Name:        "grid-images",
					Usage:       "export one image per sensor grid",
					Description: `Render an image for every sensor grid in the model with the simulation data from the config file mounted on the grids.`,
					ArgsUsage:   "model.hbjson",
					Flags:       cmd.GridImagesFlags(),
					Action:      cmd.ExportGridImages,
				},
				{
					Name:        "timestep-images",
					Usage:       "export one image per time step of hourly results",
					Description: `Render a sequence of per-grid images from time-series results such as annual irradiance or sunlight hours.`,
					ArgsUsage:   "model.hbjson",
					Flags:       cmd.TimestepImagesFlags(),
					Action:      cmd.ExportTimestepImages,
				},
			},
		},
		{
			Name:      "config",
			Usage:     "generate a visualization config file from result folders",
			ArgsUsage: "results_folder",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "folder, f",
					Value: ".",
					Usage: "path to the target folder",
				},
				cli.StringFlag{
					Name:  "name, n",
					Value: "config",
					Usage: "name of the config file",
				},
			},
			Action: cmd.WriteConfig,
		},
		{
			Name:      "timestep-data",
			Usage:     "extract time step data from hourly results",
			ArgsUsage: "annual_results_folder",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "folder, f",
					Value: ".",
					Usage: "path to the target folder",
				},
				cli.IntFlag{
					Name:  "st-month",
					Value: 1,
					Usage: "start month of the period to extract",
				},
				cli.IntFlag{
					Name:  "st-day",
					Value: 1,
					Usage: "start day of the period to extract",
				},
				cli.IntFlag{
					Name:  "st-hour",
					Value: 0,
					Usage: "start hour of the period to extract",
				},
				cli.IntFlag{
					Name:  "end-month",
					Value: 12,
					Usage: "end month of the period to extract",
				},
				cli.IntFlag{
					Name:  "end-day",
					Value: 31,
					Usage: "end day of the period to extract",
				},
				cli.IntFlag{
					Name:  "end-hour",
					Value: 23,
					Usage: "end hour of the period to extract",
				},
				cli.StringFlag{
					Name:  "grids-info",
					Usage: "path to the grids_info.json that catalogues the result files",
				},
			},
			Action: cmd.TimestepData,
		},
		{
			Name:      "gif",
			Usage:     "assemble time step images into an animated gif per grid",
			ArgsUsage: "timestep_images_folder",
			Flags:     cmd.GifFlags(),
			Action:    cmd.WriteGif,
		},
		{
			Name:      "info",
			Usage:     "display a summary of the datasets in a HBJSON model",
			ArgsUsage: "model.hbjson",
			Action:    cmd.ShowModelInfo,
		},
	}

	app.Run(os.Args)
}
