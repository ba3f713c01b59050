package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/tablescene/internal/config"
	"github.com/Faultbox/tablescene/internal/engine/mesh"
	"github.com/Faultbox/tablescene/internal/logger"
	"github.com/Faultbox/tablescene/pkg/math"
)

// Scene palette. NoColor leaves the bound texture untinted.
var (
	NoColor    = mesh.White
	GlassColor = mesh.RGBA(0.51, 0.298, 0.812, 1)
	CatColor   = mesh.RGBA(0.62, 0.929, 0.243, 1)
)

// Part is one scene object: the shape to generate and where it sits.
type Part struct {
	mesh.Spec

	Position math.Vec3
	Rotation math.Vec3 // degrees about X, Y, Z
	Scale    float32   // uniform; zero means 1
}

// Placed reports whether the part moves away from the generator's origin.
func (p Part) Placed() bool {
	return p.Position != (math.Vec3{}) || p.Rotation != (math.Vec3{}) || (p.Scale != 0 && p.Scale != 1)
}

// Model returns the part's model matrix: scale, rotate about X then Y then
// Z, then translate.
func (p Part) Model() math.Mat4 {
	scale := p.Scale
	if scale == 0 {
		scale = 1
	}
	const deg = math32.Pi / 180

	return math.Translate(p.Position.X, p.Position.Y, p.Position.Z).
		Mul(math.RotateZ(p.Rotation.Z * deg)).
		Mul(math.RotateY(p.Rotation.Y * deg)).
		Mul(math.RotateX(p.Rotation.X * deg)).
		Mul(math.Scale(scale, scale, scale))
}

// Parts returns the generated shapes of the table scene in model space.
// Sizes are a quarter of the real objects in inches.
func Parts(cfg config.MeshConfig) []Part {
	return []Part{
		{Spec: mesh.Spec{Name: "glass", Shape: mesh.ShapeCylinder, Sides: cfg.Sides, Height: 0.75, Radius: 0.59375, Color: GlassColor}},
		{Spec: mesh.Spec{Name: "coaster", Shape: mesh.ShapeCylinder, Sides: cfg.Sides, Height: 0.03125, Radius: 0.57, Color: NoColor}},
		{Spec: mesh.Spec{Name: "table", Shape: mesh.ShapePlane, Sections: cfg.PlaneSections, Color: NoColor}},
		{Spec: mesh.Spec{Name: "cat.head", Shape: mesh.ShapeSphere, Rings: cfg.Rings, Segments: cfg.Segments, Radius: 0.5625, Color: CatColor}},
		{Spec: mesh.Spec{Name: "cat.body", Shape: mesh.ShapeCylinderSide, Sides: cfg.Sides, Height: 1.4375, Radius: 0.5625, Color: CatColor}},
		{Spec: mesh.Spec{Name: "cat.ear", Shape: mesh.ShapeCone, Sides: cfg.ConeSides, Height: 0.5, Radius: 0.25, Color: CatColor}},
	}
}

// FromConfig returns the configured scene parts, or Parts when the config
// does not override them. Counts a part leaves at zero come from cfg.Mesh,
// and an all-zero color means untinted.
func FromConfig(cfg *config.Config) ([]Part, error) {
	if len(cfg.Scene) == 0 {
		return Parts(cfg.Mesh), nil
	}

	parts := make([]Part, 0, len(cfg.Scene))
	for i, p := range cfg.Scene {
		shape, err := mesh.ParseShape(p.Shape)
		if err != nil {
			return nil, fmt.Errorf("scene[%d] %q: %w", i, p.Name, err)
		}

		spec := mesh.Spec{
			Name:     p.Name,
			Shape:    shape,
			Sides:    orDefault(p.Sides, cfg.Mesh.Sides),
			Rings:    orDefault(p.Rings, cfg.Mesh.Rings),
			Segments: orDefault(p.Segments, cfg.Mesh.Segments),
			Sections: orDefault(p.Sections, cfg.Mesh.PlaneSections),
			Height:   p.Height,
			Radius:   p.Radius,
			Color:    mesh.RGBA(p.Color[0], p.Color[1], p.Color[2], p.Color[3]),
		}
		if shape == mesh.ShapeCone || shape == mesh.ShapePyramid {
			spec.Sides = orDefault(p.Sides, cfg.Mesh.ConeSides)
		}
		if p.Color == ([4]float32{}) {
			spec.Color = NoColor
		}
		parts = append(parts, Part{
			Spec:     spec,
			Position: math.Vec3From(p.Position),
			Rotation: math.Vec3From(p.Rotation),
			Scale:    p.Scale,
		})
	}
	return parts, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

// Build generates every part and moves placed parts into world space. Parts
// producing several meshes (cylinders) contribute all of them in order.
func Build(parts []Part) ([]*mesh.Mesh, error) {
	log := logger.Named("scene")

	var meshes []*mesh.Mesh
	for _, part := range parts {
		built, err := mesh.Build(part.Spec)
		if err != nil {
			return nil, fmt.Errorf("scene part %q: %w", part.Name, err)
		}
		if part.Placed() {
			model := part.Model()
			for i, m := range built {
				built[i] = m.Transform(model)
			}
		}
		for _, m := range built {
			log.Debug("mesh generated",
				zap.String("mesh", m.Name),
				zap.Stringer("topology", m.Topology),
				zap.Int("vertices", m.VertexCount()),
				zap.Int("indices", len(m.Indices)),
			)
		}
		meshes = append(meshes, built...)
	}

	log.Info("scene generated", zap.Int("parts", len(parts)), zap.Int("meshes", len(meshes)))
	return meshes, nil
}
