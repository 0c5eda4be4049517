// Package glb exports a scene as a binary glTF file for tools that
// consume GLB rather than vtk formats.
package glb

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
	"github.com/ladybug-tools/honeybee-vtk-go/scene"
)

// WriteScene exports every actor of a scene as one GLB mesh node.
// Polygons are triangulated with a fan, faces get flat normals and
// each vertex carries the actor color, or the lookup table color of
// the active data array when one is mounted.
func WriteScene(s *scene.Scene, path string) error {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "honeybee-vtk"

	for _, actor := range s.Actors {
		ds := actor.DataSet
		joined := model.JoinPolyData(ds.Data...)
		if joined.NumPoints() == 0 || len(joined.Polys) == 0 {
			continue
		}
		mesh, err := buildMesh(doc, joined, actor)
		if err != nil {
			return fmt.Errorf("glb: dataset %s: %s", ds.Name, err.Error())
		}
		doc.Meshes = append(doc.Meshes, mesh)
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: ds.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	if len(doc.Meshes) == 0 {
		return fmt.Errorf("glb: the scene has no polygon geometry to export")
	}

	return gltf.SaveBinary(doc, path)
}

// buildMesh flattens a polydata into unshared triangle vertices so
// every face can carry its own normal and color.
func buildMesh(doc *gltf.Document, pd *model.PolyData, actor *scene.Actor) (*gltf.Mesh, error) {
	colors, err := cellColors(pd, actor)
	if err != nil {
		return nil, err
	}

	var positions [][3]float32
	var normals [][3]float32
	var vertColors [][4]uint8
	var indices []uint32

	for ci, cell := range pd.Polys {
		if len(cell) < 3 {
			continue
		}
		normal := cellNormal(pd, cell)
		color := colors[ci]

		base := uint32(len(positions))
		for _, idx := range cell {
			p := pd.Points[idx]
			positions = append(positions, [3]float32{float32(p[0]), float32(p[1]), float32(p[2])})
			normals = append(normals, normal)
			vertColors = append(vertColors, color)
		}
		for k := 1; k < len(cell)-1; k++ {
			indices = append(indices, base, base+uint32(k), base+uint32(k+1))
		}
	}
	if len(indices) == 0 {
		return nil, fmt.Errorf("no triangles")
	}

	opacity := actor.Opacity()
	material := &gltf.Material{
		Name: pd.Identifier,
		PBRMetallicRoughness: &gltf.PBRMetallicRoughness{
			BaseColorFactor: &[4]float32{1, 1, 1, float32(opacity)},
			MetallicFactor:  gltf.Float(0),
			RoughnessFactor: gltf.Float(0.9),
		},
		DoubleSided: true,
	}
	if opacity < 1 {
		material.AlphaMode = gltf.AlphaBlend
	}
	doc.Materials = append(doc.Materials, material)

	primitive := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]uint32{
			gltf.POSITION: modeler.WritePosition(doc, positions),
			gltf.NORMAL:   modeler.WriteNormal(doc, normals),
			gltf.COLOR_0:  modeler.WriteColor(doc, vertColors),
		},
		Material: gltf.Index(uint32(len(doc.Materials) - 1)),
	}
	return &gltf.Mesh{Primitives: []*gltf.Primitive{primitive}}, nil
}

// cellColors picks a color per poly cell: the lookup table color of
// the active array when results are mounted, the actor color
// otherwise.
func cellColors(pd *model.PolyData, actor *scene.Actor) ([][4]uint8, error) {
	flat := actor.Color()
	out := make([][4]uint8, len(pd.Polys))
	for i := range out {
		out[i] = [4]uint8{flat.R, flat.G, flat.B, flat.A}
	}

	arr := pd.ActiveField()
	if arr == nil || pd.ColorByField != model.CellData {
		return out, nil
	}
	param, ok := actor.DataSet.Legends[arr.Name]
	if !ok {
		return out, nil
	}
	lut, err := param.BuildLookupTable()
	if err != nil {
		return nil, err
	}

	// The cell order of a polydata is verts, lines, polys.
	offset := len(pd.Verts) + len(pd.Lines)
	for i := range pd.Polys {
		c := lut.Color(arr.Values[offset+i])
		out[i] = [4]uint8{c.R, c.G, c.B, c.A}
	}
	return out, nil
}

func cellNormal(pd *model.PolyData, cell []int) [3]float32 {
	var n [3]float64
	for i, idx := range cell {
		cur := pd.Points[idx]
		next := pd.Points[cell[(i+1)%len(cell)]]
		n[0] += (cur[1] - next[1]) * (cur[2] + next[2])
		n[1] += (cur[2] - next[2]) * (cur[0] + next[0])
		n[2] += (cur[0] - next[0]) * (cur[1] + next[1])
	}
	l := math.Sqrt(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])
	if l == 0 {
		return [3]float32{0, 0, 1}
	}
	return [3]float32{float32(n[0] / l), float32(n[1] / l), float32(n[2] / l)}
}
