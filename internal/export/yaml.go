package export

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/tablescene/internal/engine/mesh"
)

type yamlVertex struct {
	P [3]float32 `yaml:"p,flow"`
	N [3]float32 `yaml:"n,flow"`
	C [4]float32 `yaml:"c,flow"`
	T [2]float32 `yaml:"t,flow"`
}

type yamlMesh struct {
	Name     string       `yaml:"name"`
	Topology string       `yaml:"topology"`
	Vertices []yamlVertex `yaml:"vertices"`
	Indices  []uint32     `yaml:"indices,omitempty,flow"`
}

type yamlDocument struct {
	Meshes []yamlMesh `yaml:"meshes"`
}

// WriteYAML writes meshes as a readable YAML document with one entry per
// vertex. Intended for inspection and diffs rather than loading.
func WriteYAML(w io.Writer, meshes []*mesh.Mesh) error {
	doc := yamlDocument{Meshes: make([]yamlMesh, 0, len(meshes))}
	for _, m := range meshes {
		ym := yamlMesh{
			Name:     m.Name,
			Topology: m.Topology.String(),
			Vertices: make([]yamlVertex, m.VertexCount()),
			Indices:  m.Indices,
		}
		for i := range ym.Vertices {
			v := m.Vertex(i)
			ym.Vertices[i] = yamlVertex{
				P: v.Position.Array(),
				N: v.Normal.Array(),
				C: [4]float32{v.Color.R, v.Color.G, v.Color.B, v.Color.A},
				T: [2]float32{v.TexCoord.X, v.TexCoord.Y},
			}
		}
		doc.Meshes = append(doc.Meshes, ym)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}
	return enc.Close()
}
