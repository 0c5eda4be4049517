package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/ladybug-tools/honeybee-vtk-go/timeseries"
)

// TimestepData slices annual result files into per timestep folders
// that can be mounted as grid results.
func TimestepData(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing folder with the annual result files")
	}

	period, err := timeseries.NewPeriod(
		ctx.Int("st-month"), ctx.Int("st-day"), ctx.Int("st-hour"),
		ctx.Int("end-month"), ctx.Int("end-day"), ctx.Int("end-hour"),
	)
	if err != nil {
		return err
	}

	folders, err := timeseries.ExtractTimesteps(
		ctx.Args().First(), ctx.String("folder"), period, ctx.String("grids-info"))
	if err != nil {
		return err
	}
	logger.Noticef("extracted %d timesteps to %s", len(folders), ctx.String("folder"))
	return nil
}
