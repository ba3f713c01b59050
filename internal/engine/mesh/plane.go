package mesh

import (
	"github.com/Faultbox/tablescene/pkg/math"
)

// PlaneVertexCount returns the vertex count of Plane.
func PlaneVertexCount(sections int) int {
	return 6 * sections * sections
}

// Plane tessellates the [-1,1] x [-1,1] square in the XZ plane into
// sections x sections cells of two triangles each, walking x and z from 1
// down to -1. Every vertex faces +Y.
//
// UVs span [0,2] per cell so a repeating texture tiles twice across each
// cell. Cell corners are derived from the integer cell index, so neighbouring
// cells share bit-identical edges and the outer edges land exactly on +-1.
func Plane(sections int, color Color) ([]float32, error) {
	if err := checkCount("plane", "sections", sections, 1); err != nil {
		return nil, err
	}

	coord := func(k int) float32 {
		return 1 - 2*float32(k)/float32(sections)
	}
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	vertices := make([]float32, 0, PlaneVertexCount(sections)*FloatsPerVertex)

	for i := 0; i < sections; i++ {
		x0, x1 := coord(i), coord(i+1)
		for j := 0; j < sections; j++ {
			z0, z1 := coord(j), coord(j+1)

			vertices = appendTriangle(vertices, color,
				Vertex{Position: math.Vec3{X: x0, Y: 0, Z: z0}, Normal: up, TexCoord: math.Vec2{X: 2, Y: 0}},
				Vertex{Position: math.Vec3{X: x1, Y: 0, Z: z0}, Normal: up, TexCoord: math.Vec2{X: 0, Y: 0}},
				Vertex{Position: math.Vec3{X: x0, Y: 0, Z: z1}, Normal: up, TexCoord: math.Vec2{X: 2, Y: 2}},
			)
			vertices = appendTriangle(vertices, color,
				Vertex{Position: math.Vec3{X: x1, Y: 0, Z: z1}, Normal: up, TexCoord: math.Vec2{X: 0, Y: 2}},
				Vertex{Position: math.Vec3{X: x1, Y: 0, Z: z0}, Normal: up, TexCoord: math.Vec2{X: 0, Y: 0}},
				Vertex{Position: math.Vec3{X: x0, Y: 0, Z: z1}, Normal: up, TexCoord: math.Vec2{X: 2, Y: 2}},
			)
		}
	}

	return vertices, nil
}
