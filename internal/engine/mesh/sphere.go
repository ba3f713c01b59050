package mesh

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/tablescene/pkg/math"
)

// DefaultRings and DefaultSegments match the table scene resolution.
const (
	DefaultRings    = 20
	DefaultSegments = 20
)

// SphereVertexCount returns the vertex count of Sphere.
func SphereVertexCount(rings, segments int) int {
	return (rings + 1) * (segments + 1)
}

// SphereIndexCount returns the index count of SphereIndices.
func SphereIndexCount(rings, segments int) int {
	return 6 * rings * segments
}

// Sphere generates a latitude/longitude grid of (rings+1)*(segments+1)
// vertices. Row i sits at latitude -pi/2 + pi*i/rings, column j at longitude
// 2*pi*j/segments. The last column repeats the first so u runs 0..1.
func Sphere(rings, segments int, radius float32, color Color) ([]float32, error) {
	if err := checkCount("sphere", "rings", rings, 1); err != nil {
		return nil, err
	}
	if err := checkCount("sphere", "segments", segments, 1); err != nil {
		return nil, err
	}

	vertices := make([]float32, 0, SphereVertexCount(rings, segments)*FloatsPerVertex)

	for i := 0; i <= rings; i++ {
		phi := -math32.Pi/2 + math32.Pi*float32(i)/float32(rings)
		sinPhi, cosPhi := math32.Sincos(phi)

		for j := 0; j <= segments; j++ {
			theta := 2 * math32.Pi * float32(j%segments) / float32(segments)
			sinTheta, cosTheta := math32.Sincos(theta)

			// Unit direction; equals position/radius for any non-zero radius
			dir := math.Vec3{X: cosPhi * cosTheta, Y: sinPhi, Z: cosPhi * sinTheta}

			vertices = Vertex{
				Position: dir.Scale(radius),
				Normal:   dir,
				Color:    color,
				TexCoord: math.Vec2{X: float32(j) / float32(segments), Y: float32(i) / float32(rings)},
			}.Append(vertices)
		}
	}

	return vertices, nil
}

// SphereIndices returns two triangles per grid cell of Sphere, walking the
// grid row-major: (cur, cur+1, next) and (cur+1, next+1, next).
func SphereIndices(rings, segments int) ([]uint32, error) {
	if err := checkCount("sphere indices", "rings", rings, 1); err != nil {
		return nil, err
	}
	if err := checkCount("sphere indices", "segments", segments, 1); err != nil {
		return nil, err
	}

	indices := make([]uint32, 0, SphereIndexCount(rings, segments))
	row := uint32(segments + 1)

	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			current := uint32(i)*row + uint32(j)
			next := current + row

			indices = append(indices,
				current, current+1, next,
				current+1, next+1, next,
			)
		}
	}

	return indices, nil
}
