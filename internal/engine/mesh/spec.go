package mesh

import (
	"fmt"
	"strings"
)

// Shape names a generator family.
type Shape string

const (
	ShapeCylinder     Shape = "cylinder"      // side + top + bottom
	ShapeCylinderSide Shape = "cylinder_side" // open tube
	ShapeSphere       Shape = "sphere"
	ShapeCone         Shape = "cone"
	ShapePyramid      Shape = "pyramid"
	ShapePlane        Shape = "plane"
)

// Shapes lists every shape Build accepts.
var Shapes = []Shape{ShapeCylinder, ShapeCylinderSide, ShapeSphere, ShapeCone, ShapePyramid, ShapePlane}

// ParseShape resolves a shape name, case-insensitively.
func ParseShape(name string) (Shape, error) {
	s := Shape(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Shapes {
		if s == known {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown shape %q: %w", name, ErrInvalidArgument)
}

// Spec describes one shape to generate. Fields that do not apply to the
// shape are ignored.
type Spec struct {
	Name     string
	Shape    Shape
	Sides    int // cylinder, cone, pyramid
	Rings    int // sphere
	Segments int // sphere
	Sections int // plane
	Height   float32
	Radius   float32
	Color    Color
}

// Build generates the meshes described by s. Cylinders produce three meshes
// (side, top, bottom); every other shape produces one.
func Build(s Spec) ([]*Mesh, error) {
	name := s.Name
	if name == "" {
		name = string(s.Shape)
	}

	switch s.Shape {
	case ShapeCylinder:
		side, err := buildCylinderSide(name+".side", s)
		if err != nil {
			return nil, err
		}
		topVerts, err := CylinderTop(s.Sides, s.Height, s.Radius, s.Color)
		if err != nil {
			return nil, err
		}
		topIdx, _ := CylinderTopIndices(s.Sides)
		bottomVerts, err := CylinderBottom(s.Sides, s.Height, s.Radius, s.Color)
		if err != nil {
			return nil, err
		}
		bottomIdx, _ := CylinderBottomIndices(s.Sides)
		return []*Mesh{
			side,
			{Name: name + ".top", Topology: Triangles, Vertices: topVerts, Indices: topIdx},
			{Name: name + ".bottom", Topology: Triangles, Vertices: bottomVerts, Indices: bottomIdx},
		}, nil

	case ShapeCylinderSide:
		side, err := buildCylinderSide(name, s)
		if err != nil {
			return nil, err
		}
		return []*Mesh{side}, nil

	case ShapeSphere:
		verts, err := Sphere(s.Rings, s.Segments, s.Radius, s.Color)
		if err != nil {
			return nil, err
		}
		idx, _ := SphereIndices(s.Rings, s.Segments)
		return []*Mesh{{Name: name, Topology: Triangles, Vertices: verts, Indices: idx}}, nil

	case ShapeCone, ShapePyramid:
		verts, err := Pyramid(s.Sides, s.Height, s.Radius, s.Color)
		if err != nil {
			return nil, err
		}
		return []*Mesh{{Name: name, Topology: Triangles, Vertices: verts}}, nil

	case ShapePlane:
		verts, err := Plane(s.Sections, s.Color)
		if err != nil {
			return nil, err
		}
		return []*Mesh{{Name: name, Topology: Triangles, Vertices: verts}}, nil

	default:
		return nil, fmt.Errorf("build %q: unknown shape %q: %w", name, s.Shape, ErrInvalidArgument)
	}
}

func buildCylinderSide(name string, s Spec) (*Mesh, error) {
	verts, err := CylinderSide(s.Sides, s.Height, s.Radius, s.Color)
	if err != nil {
		return nil, err
	}
	return &Mesh{Name: name, Topology: TriangleStrip, Vertices: verts}, nil
}
