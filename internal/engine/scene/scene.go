// Package scene assembles the table scene: its generated meshes, lights and
// projection state, passed around explicitly instead of living in globals.
package scene

import (
	"fmt"

	"github.com/chewxy/math32"
	"go.uber.org/zap"

	"github.com/Faultbox/tablescene/internal/engine/lighting"
	"github.com/Faultbox/tablescene/internal/engine/mesh"
	"github.com/Faultbox/tablescene/internal/logger"
	"github.com/Faultbox/tablescene/pkg/math"
)

// Projection selects the camera projection.
type Projection int

const (
	Perspective Projection = iota
	Orthographic
)

func (p Projection) String() string {
	switch p {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return fmt.Sprintf("Projection(%d)", int(p))
	}
}

// Config contains viewport and projection settings.
type Config struct {
	Width  int32
	Height int32

	FovY float32 // radians
	Near float32
	Far  float32

	// OrthoNear differs from Near so the orthographic view does not clip
	// geometry sitting right at the eye.
	OrthoNear       float32
	OrthoHalfHeight float32
}

// DefaultConfig returns an 800x600 viewport with a 45 degree field of view.
func DefaultConfig() Config {
	return Config{
		Width:           800,
		Height:          600,
		FovY:            45 * math32.Pi / 180,
		Near:            0.1,
		Far:             100,
		OrthoNear:       0.0001,
		OrthoHalfHeight: 1,
	}
}

// Scene is the render context handed to the draw loop.
type Scene struct {
	config     Config
	projection Projection

	Meshes      []*mesh.Mesh
	PointLights []lighting.PointLight
	Sun         lighting.DirectionalLight

	log *zap.Logger
}

// New creates a scene over already generated meshes, lit by the default
// key lights and sun, starting in perspective projection.
func New(cfg Config, meshes []*mesh.Mesh) *Scene {
	return &Scene{
		config:      cfg,
		projection:  Perspective,
		Meshes:      meshes,
		PointLights: lighting.KeyLights(),
		Sun:         lighting.Sun(),
		log:         logger.Named("scene"),
	}
}

// Projection returns the active projection mode.
func (s *Scene) Projection() Projection {
	return s.projection
}

// ToggleProjection switches between perspective and orthographic and returns
// the new mode.
func (s *Scene) ToggleProjection() Projection {
	if s.projection == Perspective {
		s.projection = Orthographic
	} else {
		s.projection = Perspective
	}
	s.log.Debug("projection toggled", zap.Stringer("projection", s.projection))
	return s.projection
}

// Resize updates the viewport size. Non-positive sizes are ignored.
func (s *Scene) Resize(width, height int32) {
	if width <= 0 || height <= 0 {
		return
	}
	s.config.Width, s.config.Height = width, height
}

// Aspect returns the viewport width/height ratio.
func (s *Scene) Aspect() float32 {
	return float32(s.config.Width) / float32(s.config.Height)
}

// ProjectionMatrix returns the matrix for the active projection mode.
func (s *Scene) ProjectionMatrix() math.Mat4 {
	aspect := s.Aspect()
	if s.projection == Orthographic {
		h := s.config.OrthoHalfHeight
		return math.Ortho(-h*aspect, h*aspect, -h, h, s.config.OrthoNear, s.config.Far)
	}
	return math.Perspective(s.config.FovY, aspect, s.config.Near, s.config.Far)
}

// Mesh looks up a mesh by name.
func (s *Scene) Mesh(name string) (*mesh.Mesh, bool) {
	for _, m := range s.Meshes {
		if m.Name == name {
			return m, true
		}
	}
	return nil, false
}

// Stats sums vertex and index counts over all meshes.
func (s *Scene) Stats() (vertices, indices int) {
	for _, m := range s.Meshes {
		vertices += m.VertexCount()
		indices += len(m.Indices)
	}
	return vertices, indices
}
