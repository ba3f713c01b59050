package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tablescene/pkg/math"
)

// CylinderSideVertexCount returns the vertex count of CylinderSide.
func CylinderSideVertexCount(sides int) int {
	return 2 * (sides + 1)
}

// CylinderCapVertexCount returns the vertex count of CylinderTop and CylinderBottom.
func CylinderCapVertexCount(sides int) int {
	return sides + 1
}

// CylinderCapIndexCount returns the index count of the cap index generators.
func CylinderCapIndexCount(sides int) int {
	return 3 * sides
}

// CylinderSide generates the lateral surface of a cylinder centered on the
// origin with its axis along Y, as sides+1 (bottom, top) vertex pairs meant
// to be drawn as a triangle strip.
//
// The last pair repeats the first position with u = 1 so the texture wraps
// without a seam. Normals are the radial vector (x, 0, z) and are not
// normalized: their length equals radius.
func CylinderSide(sides int, height, radius float32, color Color) ([]float32, error) {
	if err := checkCount("cylinder side", "sides", sides, MinSides); err != nil {
		return nil, err
	}

	angleStep := 2 * math32.Pi / float32(sides)
	halfHeight := height / 2
	vertices := make([]float32, 0, CylinderSideVertexCount(sides)*FloatsPerVertex)

	for i := 0; i <= sides; i++ {
		p := math.Polar(radius, float32(i%sides)*angleStep)
		u := float32(i) / float32(sides)
		normal := math.Vec3{X: p.X, Y: 0, Z: p.Y}

		vertices = Vertex{
			Position: math.Vec3{X: p.X, Y: -halfHeight, Z: p.Y},
			Normal:   normal,
			Color:    color,
			TexCoord: math.Vec2{X: u, Y: 0},
		}.Append(vertices)
		vertices = Vertex{
			Position: math.Vec3{X: p.X, Y: halfHeight, Z: p.Y},
			Normal:   normal,
			Color:    color,
			TexCoord: math.Vec2{X: u, Y: 1},
		}.Append(vertices)
	}

	return vertices, nil
}

// CylinderTop generates the top cap: sides perimeter vertices followed by
// the center vertex at index sides.
func CylinderTop(sides int, height, radius float32, color Color) ([]float32, error) {
	if err := checkCount("cylinder top", "sides", sides, MinSides); err != nil {
		return nil, err
	}
	return cylinderCap(sides, height/2, radius, 1, color), nil
}

// CylinderBottom generates the bottom cap: sides perimeter vertices followed
// by the center vertex at index sides.
func CylinderBottom(sides int, height, radius float32, color Color) ([]float32, error) {
	if err := checkCount("cylinder bottom", "sides", sides, MinSides); err != nil {
		return nil, err
	}
	return cylinderCap(sides, -height/2, radius, -1, color), nil
}

func cylinderCap(sides int, y, radius, normalY float32, color Color) []float32 {
	angleStep := 2 * math32.Pi / float32(sides)
	normal := math.Vec3{X: 0, Y: normalY, Z: 0}
	vertices := make([]float32, 0, CylinderCapVertexCount(sides)*FloatsPerVertex)

	for i := 0; i < sides; i++ {
		angle := float32(i) * angleStep
		p := math.Polar(radius, angle)
		// Polar projection of the disc into the unit UV square
		uv := math.Vec2{X: 0.5, Y: 0.5}.Add(math.Polar(0.5, angle))

		vertices = Vertex{
			Position: math.Vec3{X: p.X, Y: y, Z: p.Y},
			Normal:   normal,
			Color:    color,
			TexCoord: uv,
		}.Append(vertices)
	}

	// Fan center
	return Vertex{
		Position: math.Vec3{X: 0, Y: y, Z: 0},
		Normal:   normal,
		Color:    color,
		TexCoord: math.Vec2{X: 0.5, Y: 0.5},
	}.Append(vertices)
}

// CylinderTopIndices returns one triangle (i, i+1 mod sides, sides) per side,
// fanning around the center vertex emitted last by CylinderTop.
func CylinderTopIndices(sides int) ([]uint32, error) {
	if err := checkCount("cylinder top indices", "sides", sides, MinSides); err != nil {
		return nil, err
	}
	return capIndices(sides), nil
}

// CylinderBottomIndices is the CylinderBottom counterpart of CylinderTopIndices.
// The fan pattern is identical.
func CylinderBottomIndices(sides int) ([]uint32, error) {
	if err := checkCount("cylinder bottom indices", "sides", sides, MinSides); err != nil {
		return nil, err
	}
	return capIndices(sides), nil
}

func capIndices(sides int) []uint32 {
	indices := make([]uint32, 0, CylinderCapIndexCount(sides))
	center := uint32(sides)
	for i := 0; i < sides; i++ {
		indices = append(indices, uint32(i), uint32((i+1)%sides), center)
	}
	return indices
}
