// Package vtk writes polydata as legacy ASCII .vtk files and as XML
// .vtp files.
package vtk

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// WriteLegacy writes a polydata in the legacy ASCII format. Readers as
// old as VTK 4.2 understand the output.
func WriteLegacy(w io.Writer, title string, pd *model.PolyData) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "# vtk DataFile Version 4.2")
	fmt.Fprintln(bw, title)
	fmt.Fprintln(bw, "ASCII")
	fmt.Fprintln(bw, "DATASET POLYDATA")

	fmt.Fprintf(bw, "POINTS %d float\n", pd.NumPoints())
	for _, p := range pd.Points {
		fmt.Fprintf(bw, "%g %g %g\n", p[0], p[1], p[2])
	}

	writeCells := func(keyword string, cells [][]int) {
		if len(cells) == 0 {
			return
		}
		size := 0
		for _, cell := range cells {
			size += len(cell) + 1
		}
		fmt.Fprintf(bw, "%s %d %d\n", keyword, len(cells), size)
		for _, cell := range cells {
			fmt.Fprintf(bw, "%d", len(cell))
			for _, idx := range cell {
				fmt.Fprintf(bw, " %d", idx)
			}
			fmt.Fprintln(bw)
		}
	}
	writeCells("VERTS", pd.Verts)
	writeCells("LINES", pd.Lines)
	writeCells("POLYGONS", pd.Polys)

	writeFields := func(keyword string, count int, fields map[string]*model.DataArray, active string) {
		if len(fields) == 0 {
			return
		}
		fmt.Fprintf(bw, "%s %d\n", keyword, count)
		for _, name := range sortedNames(fields, active) {
			arr := fields[name]
			fmt.Fprintf(bw, "SCALARS %s float 1\n", arr.Name)
			fmt.Fprintln(bw, "LOOKUP_TABLE default")
			for _, v := range arr.Values {
				fmt.Fprintf(bw, "%g\n", v)
			}
		}
	}

	var cellActive, pointActive string
	if pd.ColorByField == model.CellData {
		cellActive = pd.ColorByName
	} else {
		pointActive = pd.ColorByName
	}
	writeFields("CELL_DATA", pd.NumCells(), pd.CellFields, cellActive)
	writeFields("POINT_DATA", pd.NumPoints(), pd.PointFields, pointActive)

	return bw.Flush()
}

// sortedNames orders field names with the active scalar first so
// readers pick it up as the default coloring.
func sortedNames(fields map[string]*model.DataArray, active string) []string {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == active {
			return true
		}
		if names[j] == active {
			return false
		}
		return names[i] < names[j]
	})
	return names
}
