package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// ShowModelInfo prints a summary of the datasets in a HBJSON model.
func ShowModelInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing HBJSON model file")
	}
	path := ctx.Args().First()

	// Meshes show the most; fall back for models whose grids carry
	// no meshes, then for models without grids.
	m, err := model.FromHBJSON(path, model.GridMeshes)
	if err != nil {
		m, err = model.FromHBJSON(path, model.GridSensors)
	}
	if err != nil {
		m, err = model.FromHBJSON(path, model.GridIgnore)
	}
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Dataset", "Objects", "Points", "Cells", "Color", "Display Mode"})
	table.SetBorder(false)

	totalPoints, totalCells := 0, 0
	for _, ds := range m.DataSets() {
		points, cells := 0, 0
		for _, pd := range ds.Data {
			points += pd.NumPoints()
			cells += pd.NumCells()
		}
		totalPoints += points
		totalCells += cells
		c := ds.Color
		table.Append([]string{
			ds.Name,
			fmt.Sprintf("%d", len(ds.Data)),
			fmt.Sprintf("%d", points),
			fmt.Sprintf("%d", cells),
			fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			ds.DisplayMode.String(),
		})
	}
	table.SetFooter([]string{"Total", "", fmt.Sprintf("%d", totalPoints), fmt.Sprintf("%d", totalCells), "", ""})
	table.Render()

	if len(m.Views) > 0 {
		logger.Noticef("the model carries %d radiance views", len(m.Views))
	}
	if len(m.SensorGrids) > 0 {
		sensors := 0
		for _, grid := range m.SensorGrids {
			sensors += len(grid.Sensors)
		}
		logger.Noticef("the model carries %d sensor grids with %d sensors", len(m.SensorGrids), sensors)
	}
	return nil
}
