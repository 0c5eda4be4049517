package vtk

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/beevik/etree"

	"github.com/ladybug-tools/honeybee-vtk-go/model"
)

// WriteXML writes a polydata as a .vtp file: the XML PolyData format
// with inline base64 binary arrays, little endian, uncompressed.
func WriteXML(w io.Writer, pd *model.PolyData) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0"`)

	root := doc.CreateElement("VTKFile")
	root.CreateAttr("type", "PolyData")
	root.CreateAttr("version", "1.0")
	root.CreateAttr("byte_order", "LittleEndian")
	root.CreateAttr("header_type", "UInt32")

	piece := root.CreateElement("PolyData").CreateElement("Piece")
	piece.CreateAttr("NumberOfPoints", itoa(pd.NumPoints()))
	piece.CreateAttr("NumberOfVerts", itoa(len(pd.Verts)))
	piece.CreateAttr("NumberOfLines", itoa(len(pd.Lines)))
	piece.CreateAttr("NumberOfStrips", "0")
	piece.CreateAttr("NumberOfPolys", itoa(len(pd.Polys)))

	pointData := piece.CreateElement("PointData")
	cellData := piece.CreateElement("CellData")
	if pd.ColorByName != "" {
		if pd.ColorByField == model.PointData {
			pointData.CreateAttr("Scalars", pd.ColorByName)
		} else {
			cellData.CreateAttr("Scalars", pd.ColorByName)
		}
	}
	var cellActive, pointActive string
	if pd.ColorByField == model.CellData {
		cellActive = pd.ColorByName
	} else {
		pointActive = pd.ColorByName
	}
	for _, name := range sortedNames(pd.PointFields, pointActive) {
		addFloatArray(pointData, name, 1, pd.PointFields[name].Values)
	}
	for _, name := range sortedNames(pd.CellFields, cellActive) {
		addFloatArray(cellData, name, 1, pd.CellFields[name].Values)
	}

	points := piece.CreateElement("Points")
	coords := make([]float64, 0, pd.NumPoints()*3)
	for _, p := range pd.Points {
		coords = append(coords, p[0], p[1], p[2])
	}
	addFloatArray(points, "Points", 3, coords)

	addCellArrays(piece.CreateElement("Verts"), pd.Verts)
	addCellArrays(piece.CreateElement("Lines"), pd.Lines)
	piece.CreateElement("Strips")
	addCellArrays(piece.CreateElement("Polys"), pd.Polys)

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func addFloatArray(parent *etree.Element, name string, components int, values []float64) {
	el := parent.CreateElement("DataArray")
	el.CreateAttr("type", "Float32")
	el.CreateAttr("Name", name)
	if components != 1 {
		el.CreateAttr("NumberOfComponents", itoa(components))
	}
	el.CreateAttr("format", "binary")

	payload := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(payload[i*4:], math.Float32bits(float32(v)))
	}
	el.SetText(encodeInline(payload))
}

// addCellArrays writes a cell list as the connectivity and offsets
// pair the XML format expects.
func addCellArrays(parent *etree.Element, cells [][]int) {
	var connectivity, offsets []int32
	offset := int32(0)
	for _, cell := range cells {
		for _, idx := range cell {
			connectivity = append(connectivity, int32(idx))
		}
		offset += int32(len(cell))
		offsets = append(offsets, offset)
	}
	addInt32Array(parent, "connectivity", connectivity)
	addInt32Array(parent, "offsets", offsets)
}

func addInt32Array(parent *etree.Element, name string, values []int32) {
	el := parent.CreateElement("DataArray")
	el.CreateAttr("type", "Int32")
	el.CreateAttr("Name", name)
	el.CreateAttr("format", "binary")

	payload := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(payload[i*4:], uint32(v))
	}
	el.SetText(encodeInline(payload))
}

// encodeInline base64 encodes a byte-count header followed by the
// payload as one stream, the layout readers expect for uncompressed
// inline binary data.
func encodeInline(payload []byte) string {
	var raw bytes.Buffer
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))
	raw.Write(header[:])
	raw.Write(payload)
	return base64.StdEncoding.EncodeToString(raw.Bytes())
}
