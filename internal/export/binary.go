package export

import (
	"fmt"
	"io"

	"github.com/Faultbox/tablescene/internal/engine/mesh"
	"github.com/Faultbox/tablescene/pkg/formats"
)

// WriteBinary writes meshes as a TSM container: raw little-endian float32
// vertices and uint32 indices behind a small header.
func WriteBinary(w io.Writer, meshes []*mesh.Mesh) error {
	tsm := &formats.TSM{
		FloatsPerVertex: mesh.FloatsPerVertex,
		Meshes:          make([]formats.TSMMesh, 0, len(meshes)),
	}
	for _, m := range meshes {
		tsm.Meshes = append(tsm.Meshes, formats.TSMMesh{
			Name:     m.Name,
			Topology: uint8(m.Topology),
			Vertices: m.Vertices,
			Indices:  m.Indices,
		})
	}
	_, err := tsm.WriteTo(w)
	return err
}

// ReadBinary decodes a TSM container written by WriteBinary.
func ReadBinary(data []byte) ([]*mesh.Mesh, error) {
	tsm, err := formats.ParseTSM(data)
	if err != nil {
		return nil, err
	}
	return fromTSM(tsm)
}

// ReadBinaryFile loads a TSM file from disk.
func ReadBinaryFile(path string) ([]*mesh.Mesh, error) {
	tsm, err := formats.LoadTSM(path)
	if err != nil {
		return nil, err
	}
	return fromTSM(tsm)
}

func fromTSM(tsm *formats.TSM) ([]*mesh.Mesh, error) {
	if tsm.FloatsPerVertex != mesh.FloatsPerVertex {
		return nil, fmt.Errorf("vertex layout has %d floats, want %d: %w", tsm.FloatsPerVertex, mesh.FloatsPerVertex, formats.ErrInvalidTSMData)
	}

	meshes := make([]*mesh.Mesh, 0, len(tsm.Meshes))
	for _, tm := range tsm.Meshes {
		topo := mesh.Topology(tm.Topology)
		if topo != mesh.Triangles && topo != mesh.TriangleStrip {
			return nil, fmt.Errorf("mesh %q: unknown topology %d: %w", tm.Name, tm.Topology, formats.ErrInvalidTSMData)
		}
		if len(tm.Vertices)%mesh.FloatsPerVertex != 0 {
			return nil, fmt.Errorf("mesh %q: %d floats is not a whole number of vertices: %w", tm.Name, len(tm.Vertices), formats.ErrInvalidTSMData)
		}
		vertexCount := uint32(len(tm.Vertices) / mesh.FloatsPerVertex)
		for i, idx := range tm.Indices {
			if idx >= vertexCount {
				return nil, fmt.Errorf("mesh %q: index %d is %d, past %d vertices: %w",
					tm.Name, i, idx, vertexCount, formats.ErrInvalidTSMData)
			}
		}
		meshes = append(meshes, &mesh.Mesh{
			Name:     tm.Name,
			Topology: topo,
			Vertices: tm.Vertices,
			Indices:  tm.Indices,
		})
	}
	return meshes, nil
}
