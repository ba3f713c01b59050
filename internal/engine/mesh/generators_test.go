package mesh

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/tablescene/pkg/math"
)

const tolerance = 1e-5

var glass = RGBA(0.51, 0.298, 0.812, 1)

func TestCylinderSideLength(t *testing.T) {
	for _, sides := range []int{3, 4, 5, 8, 20, 64} {
		verts, err := CylinderSide(sides, 0.75, 0.59375, glass)
		require.NoError(t, err)
		assert.Len(t, verts, 12*2*(sides+1), "sides=%d", sides)
		assert.Equal(t, CylinderSideVertexCount(sides), VertexCount(verts))
	}
}

func TestCylinderSideRings(t *testing.T) {
	const sides, height, radius = 20, float32(1.4375), float32(0.5625)
	verts, err := CylinderSide(sides, height, radius, glass)
	require.NoError(t, err)

	for i := 0; i <= sides; i++ {
		bottom := VertexAt(verts, 2*i)
		top := VertexAt(verts, 2*i+1)

		assert.Equal(t, -height/2, bottom.Position.Y)
		assert.Equal(t, height/2, top.Position.Y)
		assert.Equal(t, bottom.Position.X, top.Position.X)
		assert.Equal(t, bottom.Position.Z, top.Position.Z)

		u := float32(i) / sides
		assert.Equal(t, math.Vec2{X: u, Y: 0}, bottom.TexCoord)
		assert.Equal(t, math.Vec2{X: u, Y: 1}, top.TexCoord)
		assert.Equal(t, glass, bottom.Color)
	}
}

func TestCylinderSideSeam(t *testing.T) {
	const sides = 7
	verts, err := CylinderSide(sides, 2, 3, White)
	require.NoError(t, err)

	first := VertexAt(verts, 0)
	last := VertexAt(verts, 2*sides)
	assert.Equal(t, first.Position, last.Position, "seam vertex must repeat the first position")
	assert.Equal(t, first.Normal, last.Normal)
	assert.Equal(t, float32(0), first.TexCoord.X)
	assert.Equal(t, float32(1), last.TexCoord.X)
}

func TestCylinderSideNormalsAreRadial(t *testing.T) {
	const radius = float32(2.5)
	verts, err := CylinderSide(12, 1, radius, White)
	require.NoError(t, err)

	for i := 0; i < VertexCount(verts); i++ {
		v := VertexAt(verts, i)
		// Normal is the unnormalized radial vector, so its length is the radius
		assert.Equal(t, float32(0), v.Normal.Y)
		assert.Equal(t, v.Position.X, v.Normal.X)
		assert.Equal(t, v.Position.Z, v.Normal.Z)
		assert.InDelta(t, radius, v.Normal.Length(), tolerance)
	}
}

func TestCylinderCaps(t *testing.T) {
	tests := []struct {
		name    string
		gen     func(int, float32, float32, Color) ([]float32, error)
		y       float32
		normalY float32
	}{
		{"top", CylinderTop, 0.375, 1},
		{"bottom", CylinderBottom, -0.375, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const sides = 6
			verts, err := tt.gen(sides, 0.75, 1, glass)
			require.NoError(t, err)
			require.Equal(t, CylinderCapVertexCount(sides), VertexCount(verts))

			for i := 0; i < sides; i++ {
				v := VertexAt(verts, i)
				assert.Equal(t, tt.y, v.Position.Y)
				assert.Equal(t, math.Vec3{X: 0, Y: tt.normalY, Z: 0}, v.Normal)
				assert.InDelta(t, 1, math.Vec2{X: v.Position.X, Y: v.Position.Z}.Length(), tolerance)
				// UVs stay inside the unit square
				assert.InDelta(t, 0.5, v.TexCoord.X, 0.5+tolerance)
				assert.InDelta(t, 0.5, v.TexCoord.Y, 0.5+tolerance)
			}

			center := VertexAt(verts, sides)
			assert.Equal(t, math.Vec3{X: 0, Y: tt.y, Z: 0}, center.Position)
			assert.Equal(t, math.Vec2{X: 0.5, Y: 0.5}, center.TexCoord)
		})
	}
}

func TestCylinderTopIndicesExample(t *testing.T) {
	got, err := CylinderTopIndices(4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{
		0, 1, 4,
		1, 2, 4,
		2, 3, 4,
		3, 0, 4,
	}, got)

	bottom, err := CylinderBottomIndices(4)
	require.NoError(t, err)
	assert.Equal(t, got, bottom)
}

func TestCylinderCapIndexRange(t *testing.T) {
	for sides := 3; sides <= 40; sides++ {
		indices, err := CylinderTopIndices(sides)
		require.NoError(t, err)
		require.Len(t, indices, 3*sides)

		for i, idx := range indices {
			assert.LessOrEqual(t, idx, uint32(sides))
			if i%3 == 2 {
				assert.Equal(t, uint32(sides), idx, "third index of each triangle is the fan center")
			}
		}
	}
}

func TestSphereLengthAndNormals(t *testing.T) {
	tests := []struct {
		rings, segments int
		radius          float32
	}{
		{1, 1, 1},
		{2, 3, 0.5},
		{20, 20, 0.5625},
		{7, 31, 10},
	}

	for _, tt := range tests {
		verts, err := Sphere(tt.rings, tt.segments, tt.radius, White)
		require.NoError(t, err)
		require.Len(t, verts, 12*(tt.rings+1)*(tt.segments+1))

		for i := 0; i < VertexCount(verts); i++ {
			v := VertexAt(verts, i)
			assert.InDelta(t, 1, v.Normal.Length(), tolerance)
			assert.InDelta(t, tt.radius, v.Position.Length(), float64(tolerance*tt.radius*10))
		}
	}
}

func TestSphereGrid(t *testing.T) {
	const rings, segments, radius = 4, 8, float32(2)
	verts, err := Sphere(rings, segments, radius, White)
	require.NoError(t, err)

	southPole := VertexAt(verts, 0)
	assert.InDelta(t, -radius, southPole.Position.Y, tolerance)
	northPole := VertexAt(verts, VertexCount(verts)-1)
	assert.InDelta(t, radius, northPole.Position.Y, tolerance)

	row := segments + 1
	for i := 0; i <= rings; i++ {
		first := VertexAt(verts, i*row)
		last := VertexAt(verts, i*row+segments)
		assert.Equal(t, first.Position, last.Position, "longitude seam in row %d", i)
		assert.Equal(t, float32(0), first.TexCoord.X)
		assert.Equal(t, float32(1), last.TexCoord.X)
		assert.Equal(t, float32(i)/rings, first.TexCoord.Y)
	}
}

func TestSphereZeroRadius(t *testing.T) {
	verts, err := Sphere(3, 3, 0, White)
	require.NoError(t, err)
	for i := 0; i < VertexCount(verts); i++ {
		v := VertexAt(verts, i)
		assert.Equal(t, math.Vec3{}, v.Position)
		assert.False(t, math32.IsNaN(v.Normal.X))
	}
}

func TestSphereIndices(t *testing.T) {
	tests := []struct{ rings, segments int }{{1, 1}, {2, 5}, {20, 20}, {9, 3}}

	for _, tt := range tests {
		indices, err := SphereIndices(tt.rings, tt.segments)
		require.NoError(t, err)
		require.Len(t, indices, 6*tt.rings*tt.segments)

		var maxIdx uint32
		for _, idx := range indices {
			if idx > maxIdx {
				maxIdx = idx
			}
		}
		assert.Equal(t, uint32((tt.rings+1)*(tt.segments+1)-1), maxIdx)
	}

	indices, err := SphereIndices(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2, 1, 3, 2}, indices)
}

func TestPyramidLayout(t *testing.T) {
	const sides, height, radius = 4, float32(0.5), float32(0.25)
	verts, err := Pyramid(sides, height, radius, glass)
	require.NoError(t, err)
	require.Len(t, verts, 12*9*sides)

	for i := 0; i < sides; i++ {
		base := i * 6
		inner := VertexAt(verts, base+2)
		apex := VertexAt(verts, base+5)

		assert.Equal(t, math.Vec3{X: 0, Y: -height / 2, Z: 0}, inner.Position)
		assert.Equal(t, math.Vec3{}, inner.Normal)
		assert.Equal(t, math.Vec3{X: 0, Y: height / 2, Z: 0}, apex.Position)
		assert.Equal(t, math.Vec3{}, apex.Normal)
		assert.Equal(t, math.Vec2{X: 0.5, Y: 1}, apex.TexCoord)

		for _, k := range []int{0, 1, 3, 4} {
			v := VertexAt(verts, base+k)
			assert.InDelta(t, 1, v.Normal.Length(), tolerance, "lateral normal must be unit")
			assert.Equal(t, -height/2, v.Position.Y)
		}
	}

	// Base fan after the lateral block
	down := math.Vec3{X: 0, Y: -1, Z: 0}
	for k := 6 * sides; k < 9*sides; k++ {
		v := VertexAt(verts, k)
		assert.Equal(t, down, v.Normal)
		assert.Equal(t, -height/2, v.Position.Y)
		assert.Equal(t, glass, v.Color)
	}
}

func TestPyramidLateralUDivisor(t *testing.T) {
	const sides = 5
	verts, err := Pyramid(sides, 1, 1, White)
	require.NoError(t, err)

	// Lateral u uses sides-1, so the last face ends past 1
	lastFace := (sides - 1) * 6
	assert.InDelta(t, float32(sides-1)/float32(sides-1), VertexAt(verts, lastFace).TexCoord.X, tolerance)
	assert.InDelta(t, float32(sides)/float32(sides-1), VertexAt(verts, lastFace+1).TexCoord.X, tolerance)
}

func TestPyramidDegenerate(t *testing.T) {
	tests := []struct {
		name           string
		height, radius float32
	}{
		{"zero radius", 1, 0},
		{"zero height", 0, 1},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verts, err := Pyramid(6, tt.height, tt.radius, White)
			require.NoError(t, err)
			for _, f := range verts {
				assert.False(t, math32.IsNaN(f))
				assert.False(t, math32.IsInf(f, 0))
			}
		})
	}
}

func TestPlaneSingleSection(t *testing.T) {
	verts, err := Plane(1, White)
	require.NoError(t, err)
	require.Len(t, verts, 72)

	for i := 0; i < VertexCount(verts); i++ {
		v := VertexAt(verts, i)
		assert.Equal(t, float32(0), v.Position.Y)
		assert.True(t, v.Position.X >= -1 && v.Position.X <= 1)
		assert.True(t, v.Position.Z >= -1 && v.Position.Z <= 1)
	}
}

func TestPlaneTessellation(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 10, 33} {
		verts, err := Plane(n, White)
		require.NoError(t, err)
		require.Len(t, verts, 12*6*n*n, "sections=%d", n)

		corners := map[float32]bool{}
		for k := 0; k <= n; k++ {
			corners[1-2*float32(k)/float32(n)] = true
		}

		up := math.Vec3{X: 0, Y: 1, Z: 0}
		for i := 0; i < VertexCount(verts); i++ {
			v := VertexAt(verts, i)
			assert.Equal(t, up, v.Normal)
			// Every corner lands on the exact grid, so adjacent cells share edges
			assert.True(t, corners[v.Position.X], "x=%v off grid (n=%d)", v.Position.X, n)
			assert.True(t, corners[v.Position.Z], "z=%v off grid (n=%d)", v.Position.Z, n)
			assert.True(t, v.TexCoord.X == 0 || v.TexCoord.X == 2)
			assert.True(t, v.TexCoord.Y == 0 || v.TexCoord.Y == 2)
		}
	}
}

func TestPlaneCoversSquare(t *testing.T) {
	verts, err := Plane(10, White)
	require.NoError(t, err)

	m := Mesh{Vertices: verts}
	b := m.Bounds()
	assert.Equal(t, math.Vec3{X: -1, Y: 0, Z: -1}, b.Min)
	assert.Equal(t, math.Vec3{X: 1, Y: 0, Z: 1}, b.Max)
}

func TestGeneratorsAreDeterministic(t *testing.T) {
	gens := map[string]func() ([]float32, error){
		"cylinder side":   func() ([]float32, error) { return CylinderSide(20, 0.75, 0.59, glass) },
		"cylinder top":    func() ([]float32, error) { return CylinderTop(20, 0.75, 0.59, glass) },
		"cylinder bottom": func() ([]float32, error) { return CylinderBottom(20, 0.75, 0.59, glass) },
		"sphere":          func() ([]float32, error) { return Sphere(20, 20, 0.5625, glass) },
		"pyramid":         func() ([]float32, error) { return Pyramid(20, 0.5, 0.25, glass) },
		"plane":           func() ([]float32, error) { return Plane(10, glass) },
	}

	for name, gen := range gens {
		t.Run(name, func(t *testing.T) {
			a, err := gen()
			require.NoError(t, err)
			b, err := gen()
			require.NoError(t, err)
			assert.Equal(t, a, b)
		})
	}
}

func TestInvalidCounts(t *testing.T) {
	calls := map[string]func() error{
		"cylinder side sides=2": func() error { _, err := CylinderSide(2, 1, 1, White); return err },
		"cylinder top sides=0":  func() error { _, err := CylinderTop(0, 1, 1, White); return err },
		"cylinder bottom -1":    func() error { _, err := CylinderBottom(-1, 1, 1, White); return err },
		"top indices sides=2":   func() error { _, err := CylinderTopIndices(2); return err },
		"bottom indices 1":      func() error { _, err := CylinderBottomIndices(1); return err },
		"sphere rings=0":        func() error { _, err := Sphere(0, 4, 1, White); return err },
		"sphere segments=0":     func() error { _, err := Sphere(4, 0, 1, White); return err },
		"sphere indices":        func() error { _, err := SphereIndices(0, 0); return err },
		"pyramid sides=2":       func() error { _, err := Pyramid(2, 1, 1, White); return err },
		"plane sections=0":      func() error { _, err := Plane(0, White); return err },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, call(), ErrInvalidArgument)
		})
	}
}

func TestNegativeRadiusIsDegenerateNotRejected(t *testing.T) {
	verts, err := CylinderSide(8, -1, -2, White)
	require.NoError(t, err)
	assert.Len(t, verts, 12*2*9)
}
