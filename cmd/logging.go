package cmd

import (
	"github.com/ladybug-tools/honeybee-vtk-go/log"
	"github.com/urfave/cli"
)

var logger = log.New("honeybee-vtk")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
