// Package mesh generates parametric solids (cylinders, spheres, cones,
// tessellated planes) as interleaved float32 vertex buffers ready for GPU
// upload, plus matching uint32 index buffers for the indexed shapes.
package mesh

import (
	"github.com/Faultbox/tablescene/pkg/math"
)

// Interleaved vertex layout shared by every generator:
//
//	position(3) normal(3) color(4) texcoord(2)
const (
	FloatsPerVertex = 12

	PositionOffset = 0
	NormalOffset   = 3
	ColorOffset    = 6
	TexCoordOffset = 10

	// VertexStride is the byte size of one vertex.
	VertexStride = FloatsPerVertex * 4
)

// Color is a flat RGBA vertex color, channels conventionally in [0,1].
type Color struct {
	R float32 `yaml:"r" toml:"r"`
	G float32 `yaml:"g" toml:"g"`
	B float32 `yaml:"b" toml:"b"`
	A float32 `yaml:"a" toml:"a"`
}

// RGBA builds a Color.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// White leaves textures untinted.
var White = Color{1, 1, 1, 1}

// Vertex is one unpacked vertex of an interleaved buffer.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	Color    Color
	TexCoord math.Vec2
}

// Append writes v to dst in the interleaved layout and returns the extended slice.
func (v Vertex) Append(dst []float32) []float32 {
	return append(dst,
		v.Position.X, v.Position.Y, v.Position.Z,
		v.Normal.X, v.Normal.Y, v.Normal.Z,
		v.Color.R, v.Color.G, v.Color.B, v.Color.A,
		v.TexCoord.X, v.TexCoord.Y,
	)
}

// VertexAt unpacks vertex i from an interleaved buffer.
// It panics if buf holds fewer than i+1 vertices.
func VertexAt(buf []float32, i int) Vertex {
	f := buf[i*FloatsPerVertex : (i+1)*FloatsPerVertex]
	return Vertex{
		Position: math.Vec3{X: f[0], Y: f[1], Z: f[2]},
		Normal:   math.Vec3{X: f[3], Y: f[4], Z: f[5]},
		Color:    Color{R: f[6], G: f[7], B: f[8], A: f[9]},
		TexCoord: math.Vec2{X: f[10], Y: f[11]},
	}
}

// VertexCount returns the number of whole vertices in an interleaved buffer.
func VertexCount(buf []float32) int {
	return len(buf) / FloatsPerVertex
}
