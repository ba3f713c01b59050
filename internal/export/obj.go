package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/tablescene/internal/engine/mesh"
)

// WriteOBJ writes meshes as Wavefront OBJ, one object per mesh. Vertex colors
// use the common "v x y z r g b" extension. Strips are expanded to triangles.
func WriteOBJ(w io.Writer, meshes []*mesh.Mesh) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "# tablescene meshgen")

	// OBJ indices are 1-based and global across objects
	base := 1
	for _, m := range meshes {
		fmt.Fprintf(bw, "o %s\n", m.Name)

		n := m.VertexCount()
		for i := 0; i < n; i++ {
			v := m.Vertex(i)
			fmt.Fprintf(bw, "v %g %g %g %g %g %g\n",
				v.Position.X, v.Position.Y, v.Position.Z,
				v.Color.R, v.Color.G, v.Color.B)
		}
		for i := 0; i < n; i++ {
			v := m.Vertex(i)
			fmt.Fprintf(bw, "vt %g %g\n", v.TexCoord.X, v.TexCoord.Y)
		}
		for i := 0; i < n; i++ {
			v := m.Vertex(i)
			fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal.X, v.Normal.Y, v.Normal.Z)
		}

		for _, tri := range m.Triangles() {
			a, b, c := base+int(tri[0]), base+int(tri[1]), base+int(tri[2])
			fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
		}
		base += n
	}

	return bw.Flush()
}
