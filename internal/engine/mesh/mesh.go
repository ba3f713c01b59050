package mesh

import (
	"fmt"

	"github.com/Faultbox/tablescene/pkg/math"
)

// Topology is the primitive assembly used to draw a mesh.
type Topology int

const (
	// Triangles reads every three vertices (or indices) as one triangle.
	Triangles Topology = iota
	// TriangleStrip forms a triangle from each vertex and the two before it.
	TriangleStrip
)

func (t Topology) String() string {
	switch t {
	case Triangles:
		return "triangles"
	case TriangleStrip:
		return "triangle_strip"
	default:
		return fmt.Sprintf("Topology(%d)", int(t))
	}
}

// Mesh is a generated vertex buffer together with how to draw it.
// Indices is nil for non-indexed meshes.
type Mesh struct {
	Name     string
	Topology Topology
	Vertices []float32
	Indices  []uint32
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min math.Vec3
	Max math.Vec3
}

// Size returns the box extent along each axis.
func (b Bounds) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return VertexCount(m.Vertices)
}

// Indexed reports whether the mesh draws through an index buffer.
func (m *Mesh) Indexed() bool {
	return len(m.Indices) > 0
}

// Vertex unpacks vertex i.
func (m *Mesh) Vertex(i int) Vertex {
	return VertexAt(m.Vertices, i)
}

// Bounds returns the bounding box of all vertex positions.
// An empty mesh returns the zero box.
func (m *Mesh) Bounds() Bounds {
	n := m.VertexCount()
	if n == 0 {
		return Bounds{}
	}
	first := m.Vertex(0).Position
	b := Bounds{Min: first, Max: first}
	for i := 1; i < n; i++ {
		p := m.Vertex(i).Position
		b.Min = b.Min.Min(p)
		b.Max = b.Max.Max(p)
	}
	return b
}

// Triangles resolves the mesh topology into vertex index triples, so callers
// that only understand triangle lists (exporters, tests) can walk any mesh.
// Strip triangles alternate winding to keep a consistent facing.
func (m *Mesh) Triangles() [][3]uint32 {
	refs := m.Indices
	if !m.Indexed() {
		refs = make([]uint32, m.VertexCount())
		for i := range refs {
			refs[i] = uint32(i)
		}
	}

	var tris [][3]uint32
	switch m.Topology {
	case TriangleStrip:
		for i := 0; i+2 < len(refs); i++ {
			if i%2 == 0 {
				tris = append(tris, [3]uint32{refs[i], refs[i+1], refs[i+2]})
			} else {
				tris = append(tris, [3]uint32{refs[i+1], refs[i], refs[i+2]})
			}
		}
	default:
		for i := 0; i+2 < len(refs); i += 3 {
			tris = append(tris, [3]uint32{refs[i], refs[i+1], refs[i+2]})
		}
	}
	return tris
}

// Transform returns a copy of the mesh with positions multiplied by model and
// normals by its normal matrix. Normal lengths are preserved, so meshes with
// intentionally unnormalized normals keep their scale.
func (m *Mesh) Transform(model math.Mat4) *Mesh {
	normalMat := model.NormalMatrix()
	out := &Mesh{
		Name:     m.Name,
		Topology: m.Topology,
		Vertices: make([]float32, 0, len(m.Vertices)),
	}
	if m.Indices != nil {
		out.Indices = append([]uint32(nil), m.Indices...)
	}

	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		length := v.Normal.Length()
		v.Position = model.TransformVec3(v.Position)
		v.Normal = math.Vec3From(normalMat.TransformDirection(v.Normal.Array())).Normalize().Scale(length)
		out.Vertices = v.Append(out.Vertices)
	}
	return out
}
