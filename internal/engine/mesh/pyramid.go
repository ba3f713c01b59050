package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tablescene/pkg/math"
)

// PyramidVertexCount returns the vertex count of Pyramid: three triangles per side.
func PyramidVertexCount(sides int) int {
	return 9 * sides
}

// Pyramid generates a non-indexed triangle list for a pyramid (few sides) or
// cone (many sides) with its base at y = -height/2 and apex at y = height/2.
//
// Per side it emits an inner base triangle and a lateral triangle, both
// carrying the lateral face normal on the rim vertices and a zero normal on
// the center/apex vertex. A base fan with a constant (0,-1,0) normal follows
// after all sides.
//
// Lateral u runs i/(sides-1), so the wraparound face stretches past 1.
func Pyramid(sides int, height, radius float32, color Color) ([]float32, error) {
	if err := checkCount("pyramid", "sides", sides, MinSides); err != nil {
		return nil, err
	}

	angleStep := 2 * math32.Pi / float32(sides)
	halfHeight := height / 2
	uDivisor := float32(sides - 1)

	baseCenter := math.Vec3{X: 0, Y: -halfHeight, Z: 0}
	apex := math.Vec3{X: 0, Y: halfHeight, Z: 0}

	vertices := make([]float32, 0, PyramidVertexCount(sides)*FloatsPerVertex)

	for i := 0; i < sides; i++ {
		p1 := math.Polar(radius, float32(i)*angleStep)
		p2 := math.Polar(radius, float32(i+1)*angleStep)
		rim1 := math.Vec3{X: p1.X, Y: -halfHeight, Z: p1.Y}
		rim2 := math.Vec3{X: p2.X, Y: -halfHeight, Z: p2.Y}

		normal := lateralNormal(p1, p2, height)
		u1 := float32(i) / uDivisor
		u2 := float32(i+1) / uDivisor

		// Inner base triangle
		vertices = appendTriangle(vertices, color,
			Vertex{Position: rim1, Normal: normal, TexCoord: math.Vec2{X: u1, Y: 0}},
			Vertex{Position: rim2, Normal: normal, TexCoord: math.Vec2{X: u2, Y: 0}},
			Vertex{Position: baseCenter, TexCoord: math.Vec2{X: 0.5, Y: 0.5}},
		)

		// Lateral triangle
		vertices = appendTriangle(vertices, color,
			Vertex{Position: rim1, Normal: normal, TexCoord: math.Vec2{X: u1, Y: 0}},
			Vertex{Position: rim2, Normal: normal, TexCoord: math.Vec2{X: u2, Y: 0}},
			Vertex{Position: apex, TexCoord: math.Vec2{X: 0.5, Y: 1}},
		)
	}

	down := math.Vec3{X: 0, Y: -1, Z: 0}
	for i := 0; i < sides; i++ {
		a1 := float32(i) * angleStep
		a2 := float32(i+1) * angleStep
		p1 := math.Polar(radius, a1)
		p2 := math.Polar(radius, a2)

		vertices = appendTriangle(vertices, color,
			Vertex{Position: math.Vec3{X: p1.X, Y: -halfHeight, Z: p1.Y}, Normal: down, TexCoord: math.Vec2{X: 0.5 + 0.5*math32.Cos(a1), Y: 0}},
			Vertex{Position: math.Vec3{X: p2.X, Y: -halfHeight, Z: p2.Y}, Normal: down, TexCoord: math.Vec2{X: 0.5 + 0.5*math32.Cos(a2), Y: 0}},
			Vertex{Position: baseCenter, Normal: down, TexCoord: math.Vec2{X: 0.5, Y: 0.5}},
		)
	}

	return vertices, nil
}

// lateralNormal returns the unit normal of the face spanned by rim points p1,
// p2 (XZ) and the apex. A degenerate face (zero radius) yields the zero vector.
func lateralNormal(p1, p2 math.Vec2, height float32) math.Vec3 {
	t1 := math.Vec3{X: p2.X - p1.X, Y: -height, Z: p2.Y - p1.Y}
	t2 := math.Vec3{X: p1.X, Y: height, Z: p1.Y}
	return t1.Cross(t2).Normalize()
}

func appendTriangle(dst []float32, color Color, a, b, c Vertex) []float32 {
	a.Color, b.Color, c.Color = color, color, color
	dst = a.Append(dst)
	dst = b.Append(dst)
	return c.Append(dst)
}
