// Package model converts HBJSON building models into polydata
// collections that the writers and the renderer can consume.
package model

import (
	"encoding/json"
	"fmt"

	"github.com/ladybug-tools/honeybee-vtk-go/asset"
)

// HBModel mirrors the parts of the HBJSON schema that carry geometry,
// sensor grids and radiance views. Fields that only matter to energy or
// radiance simulations are not decoded.
type HBModel struct {
	Type              string          `json:"type"`
	Identifier        string          `json:"identifier"`
	DisplayName       string          `json:"display_name"`
	Units             string          `json:"units"`
	Rooms             []Room          `json:"rooms"`
	OrphanedFaces     []HBFace        `json:"orphaned_faces"`
	OrphanedShades    []HBShade       `json:"orphaned_shades"`
	OrphanedApertures []HBAperture    `json:"orphaned_apertures"`
	OrphanedDoors     []HBDoor        `json:"orphaned_doors"`
	Properties        ModelProperties `json:"properties"`
}

type ModelProperties struct {
	Radiance *RadianceProperties `json:"radiance"`
}

type RadianceProperties struct {
	SensorGrids []SensorGrid `json:"sensor_grids"`
	Views       []View       `json:"views"`
}

type Room struct {
	Identifier    string    `json:"identifier"`
	DisplayName   string    `json:"display_name"`
	Faces         []HBFace  `json:"faces"`
	IndoorShades  []HBShade `json:"indoor_shades"`
	OutdoorShades []HBShade `json:"outdoor_shades"`
}

// Face3D is a planar face defined by a boundary loop and optional
// hole loops. Every vertex is an x, y, z triplet.
type Face3D struct {
	Boundary [][]float64   `json:"boundary"`
	Holes    [][][]float64 `json:"holes"`
}

type BoundaryCondition struct {
	Type string `json:"type"`
}

// ObjectProperties carries the construction and modifier assignments
// of an object. Both are identifiers that may be empty when the object
// inherits from a construction set.
type ObjectProperties struct {
	Energy   *EnergyProperties   `json:"energy"`
	Radiance *ModifierProperties `json:"radiance"`
}

type EnergyProperties struct {
	Construction string `json:"construction"`
}

type ModifierProperties struct {
	Modifier string `json:"modifier"`
}

type HBFace struct {
	Identifier        string            `json:"identifier"`
	DisplayName       string            `json:"display_name"`
	FaceType          string            `json:"face_type"`
	Geometry          Face3D            `json:"geometry"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	Apertures         []HBAperture      `json:"apertures"`
	Doors             []HBDoor          `json:"doors"`
	IndoorShades      []HBShade         `json:"indoor_shades"`
	OutdoorShades     []HBShade         `json:"outdoor_shades"`
	Properties        ObjectProperties  `json:"properties"`
}

type HBAperture struct {
	Identifier        string            `json:"identifier"`
	DisplayName       string            `json:"display_name"`
	Geometry          Face3D            `json:"geometry"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	IndoorShades      []HBShade         `json:"indoor_shades"`
	OutdoorShades     []HBShade         `json:"outdoor_shades"`
	Properties        ObjectProperties  `json:"properties"`
}

type HBDoor struct {
	Identifier        string            `json:"identifier"`
	DisplayName       string            `json:"display_name"`
	Geometry          Face3D            `json:"geometry"`
	BoundaryCondition BoundaryCondition `json:"boundary_condition"`
	Properties        ObjectProperties  `json:"properties"`
}

type HBShade struct {
	Identifier  string           `json:"identifier"`
	DisplayName string           `json:"display_name"`
	Geometry    Face3D           `json:"geometry"`
	Properties  ObjectProperties `json:"properties"`
}

// SensorGrid is a set of sensors with optional mesh and base geometry.
type SensorGrid struct {
	Identifier   string   `json:"identifier"`
	DisplayName  string   `json:"display_name"`
	FullID       string   `json:"full_id"`
	Sensors      []Sensor `json:"sensors"`
	Mesh         *Mesh3D  `json:"mesh"`
	BaseGeometry []Face3D `json:"base_geometry"`
}

type Sensor struct {
	Pos []float64 `json:"pos"`
	Dir []float64 `json:"dir"`
}

// Mesh3D is a face-vertex mesh. Faces are triangles or quads indexing
// into the vertex list.
type Mesh3D struct {
	Vertices [][]float64 `json:"vertices"`
	Faces    [][]int     `json:"faces"`
}

// View is a radiance view. The type is 'v' for perspective views and
// 'l' for parallel views.
type View struct {
	Identifier string    `json:"identifier"`
	Position   []float64 `json:"position"`
	Direction  []float64 `json:"direction"`
	UpVector   []float64 `json:"up_vector"`
	HSize      float64   `json:"h_size"`
	VSize      float64   `json:"v_size"`
	Type       string    `json:"type"`
}

// Read a HBJSON model from a local path or a http/https URL.
func ReadHBJSON(path string) (*HBModel, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		return nil, err
	}
	defer res.Close()

	if !res.HasExtension(".hbjson") && !res.HasExtension(".json") {
		return nil, fmt.Errorf("hbjson: unsupported file format for %s", res.Path())
	}
	return DecodeHBJSON(res)
}

// Decode a HBJSON model from a resource stream.
func DecodeHBJSON(res *asset.Resource) (*HBModel, error) {
	var hb HBModel
	decoder := json.NewDecoder(res)
	if err := decoder.Decode(&hb); err != nil {
		return nil, fmt.Errorf("hbjson: failed to parse %s: %s", res.Path(), err.Error())
	}
	if hb.Type != "" && hb.Type != "Model" {
		return nil, fmt.Errorf("hbjson: expected a Model object; got %s", hb.Type)
	}
	return &hb, nil
}
