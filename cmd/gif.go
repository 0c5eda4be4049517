package cmd

import (
	"errors"

	"github.com/urfave/cli"

	"github.com/ladybug-tools/honeybee-vtk-go/images"
)

// GifFlags lists the flags of the gif command.
func GifFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  "folder, f",
			Value: ".",
			Usage: "path to the target folder",
		},
		cli.IntFlag{
			Name:  "frame-delay",
			Value: 100,
			Usage: "delay per frame in hundredths of a second",
		},
		cli.IntFlag{
			Name:  "loop-count",
			Value: 0,
			Usage: "number of animation loops; 0 loops forever",
		},
		cli.IntFlag{
			Name:  "linger",
			Value: 3,
			Usage: "extra repeats of the last frame before the animation loops",
		},
		cli.BoolFlag{
			Name:  "gradient-transparency",
			Usage: "fade older frames in under the newest one",
		},
	}
}

// WriteGif assembles the timestep images of a folder into one
// animated gif per grid.
func WriteGif(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing folder with the timestep images")
	}

	opts := images.DefaultGifOptions()
	opts.FrameDelay = ctx.Int("frame-delay")
	opts.LoopCount = ctx.Int("loop-count")
	opts.Linger = ctx.Int("linger")
	opts.GradientTransparency = ctx.Bool("gradient-transparency")

	paths, err := images.WriteGifFromFolder(ctx.Args().First(), ctx.String("folder"), opts)
	if err != nil {
		return err
	}
	logger.Noticef("wrote %d animations to %s", len(paths), ctx.String("folder"))
	return nil
}
