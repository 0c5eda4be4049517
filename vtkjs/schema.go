// Package vtkjs writes zipped vtk.js scene bundles and the standalone
// HTML viewers that embed them.
package vtkjs

// DataRef points a typed array at its binary file inside a dataset
// folder.
type DataRef struct {
	Encode   string `json:"encode"`
	BasePath string `json:"basepath"`
	ID       string `json:"id"`
}

// TypedArray describes one binary array of a dataset.
type TypedArray struct {
	VTKClass           string   `json:"vtkClass"`
	Name               string   `json:"name"`
	NumberOfComponents int      `json:"numberOfComponents"`
	DataType           string   `json:"dataType"`
	Size               int      `json:"size"`
	Ref                *DataRef `json:"ref"`
}

// AttributeArray wraps a typed array inside a data set attributes
// block.
type AttributeArray struct {
	Data *TypedArray `json:"data"`
}

// Attributes is the pointData or cellData block of a dataset.
type Attributes struct {
	VTKClass      string           `json:"vtkClass"`
	ActiveScalars int              `json:"activeScalars"`
	Arrays        []AttributeArray `json:"arrays"`
}

// DataSetIndex is the index.json of one polydata folder.
type DataSetIndex struct {
	VTKClass  string            `json:"vtkClass"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Points    *TypedArray       `json:"points,omitempty"`
	Verts     *TypedArray       `json:"verts,omitempty"`
	Lines     *TypedArray       `json:"lines,omitempty"`
	Polys     *TypedArray       `json:"polys,omitempty"`
	PointData *Attributes       `json:"pointData,omitempty"`
	CellData  *Attributes       `json:"cellData,omitempty"`
}

// SceneCamera is the camera block of the root index.json.
type SceneCamera struct {
	FocalPoint [3]float64 `json:"focalPoint"`
	Position   [3]float64 `json:"position"`
	ViewUp     [3]float64 `json:"viewUp"`
}

type DataSetReader struct {
	URL string `json:"url"`
}

type ActorTransform struct {
	Origin   [3]float64 `json:"origin"`
	Scale    [3]float64 `json:"scale"`
	Position [3]float64 `json:"position"`
}

// SceneMapper selects the array a dataset is colored by. ColorMode 0
// maps scalars through the lookup table; ScalarMode 4 uses the cell
// data with the given name.
type SceneMapper struct {
	ColorByArrayName string `json:"colorByArrayName"`
	ColorMode        int    `json:"colorMode"`
	ScalarMode       int    `json:"scalarMode"`
}

type SceneProperty struct {
	Representation int        `json:"representation"`
	EdgeVisibility int        `json:"edgeVisibility"`
	DiffuseColor   [3]float64 `json:"diffuseColor"`
	PointSize      int        `json:"pointSize"`
	Opacity        float64    `json:"opacity"`
}

// SceneLegend carries a legend description for the web viewer.
type SceneLegend struct {
	Name        string       `json:"name"`
	Unit        string       `json:"unit,omitempty"`
	Colors      [][3]float64 `json:"colors"`
	Range       [2]float64   `json:"range"`
	Orientation string       `json:"orientation"`
	Position    [2]float64   `json:"position"`
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	LabelCount  int          `json:"labelCount"`
}

// SceneEntry binds one dataset folder to its appearance.
type SceneEntry struct {
	Name              string         `json:"name"`
	Type              string         `json:"type"`
	HttpDataSetReader DataSetReader  `json:"httpDataSetReader"`
	Actor             ActorTransform `json:"actor"`
	ActorRotation     [4]float64     `json:"actorRotation"`
	Mapper            SceneMapper    `json:"mapper"`
	Property          SceneProperty  `json:"property"`
	Legends           []SceneLegend  `json:"legends,omitempty"`
}

// RootIndex is the index.json at the top of a vtkjs bundle.
type RootIndex struct {
	Version          int          `json:"version"`
	Background       [3]float64   `json:"background"`
	Camera           SceneCamera  `json:"camera"`
	CenterOfRotation [3]float64   `json:"centerOfRotation"`
	Scene            []SceneEntry `json:"scene"`
}
