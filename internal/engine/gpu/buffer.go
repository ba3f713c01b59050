// Package gpu uploads generated meshes into OpenGL buffer objects and draws
// them. Every call requires a current OpenGL 4.1 context on the calling
// thread; creating that context is the caller's job.
package gpu

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/tablescene/internal/engine/mesh"
	"github.com/Faultbox/tablescene/internal/logger"
)

// ErrEmptyMesh is returned when uploading a mesh without vertices.
var ErrEmptyMesh = errors.New("empty mesh")

// Attribute describes one interleaved vertex attribute.
type Attribute struct {
	Location uint32
	Size     int32 // float components
	Offset   int   // in floats
}

// Attributes is the shader input layout matching mesh.FloatsPerVertex:
// position (0), normal (1), color (2), texcoord (3).
var Attributes = []Attribute{
	{Location: 0, Size: 3, Offset: mesh.PositionOffset},
	{Location: 1, Size: 3, Offset: mesh.NormalOffset},
	{Location: 2, Size: 4, Offset: mesh.ColorOffset},
	{Location: 3, Size: 2, Offset: mesh.TexCoordOffset},
}

// Mode maps a mesh topology to its OpenGL primitive.
func Mode(t mesh.Topology) (uint32, error) {
	switch t {
	case mesh.Triangles:
		return gl.TRIANGLES, nil
	case mesh.TriangleStrip:
		return gl.TRIANGLE_STRIP, nil
	default:
		return 0, fmt.Errorf("unsupported topology %v", t)
	}
}

// Buffer is one uploaded mesh: a draw record holding its GL handles and how
// to draw them.
type Buffer struct {
	Name string

	vao uint32
	vbo uint32
	ebo uint32

	mode  uint32
	count int32
}

// Upload copies m into a new VAO/VBO, plus an EBO when m is indexed.
func Upload(m *mesh.Mesh) (*Buffer, error) {
	if m.VertexCount() == 0 {
		return nil, fmt.Errorf("upload %q: %w", m.Name, ErrEmptyMesh)
	}
	mode, err := Mode(m.Topology)
	if err != nil {
		return nil, fmt.Errorf("upload %q: %w", m.Name, err)
	}

	b := &Buffer{Name: m.Name, mode: mode}

	gl.GenVertexArrays(1, &b.vao)
	gl.BindVertexArray(b.vao)

	gl.GenBuffers(1, &b.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, gl.Ptr(m.Vertices), gl.STATIC_DRAW)

	for _, a := range Attributes {
		gl.VertexAttribPointerWithOffset(a.Location, a.Size, gl.FLOAT, false, mesh.VertexStride, uintptr(a.Offset*4))
		gl.EnableVertexAttribArray(a.Location)
	}

	if m.Indexed() {
		gl.GenBuffers(1, &b.ebo)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, b.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)
		b.count = int32(len(m.Indices))
	} else {
		b.count = int32(m.VertexCount())
	}

	gl.BindVertexArray(0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		b.Delete()
		return nil, fmt.Errorf("upload %q: gl error 0x%x", m.Name, code)
	}

	logger.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Uint32("vao", b.vao),
		zap.Int32("count", b.count),
		zap.Bool("indexed", b.ebo != 0),
	)
	return b, nil
}

// UploadAll uploads every mesh, releasing the ones already uploaded if any
// upload fails.
func UploadAll(meshes []*mesh.Mesh) ([]*Buffer, error) {
	buffers := make([]*Buffer, 0, len(meshes))
	for _, m := range meshes {
		b, err := Upload(m)
		if err != nil {
			for _, done := range buffers {
				done.Delete()
			}
			return nil, err
		}
		buffers = append(buffers, b)
	}
	return buffers, nil
}

// Draw issues the draw call. The caller binds the shader program and sets
// its uniforms first.
func (b *Buffer) Draw() {
	if b.vao == 0 {
		return
	}
	gl.BindVertexArray(b.vao)
	if b.ebo != 0 {
		gl.DrawElementsWithOffset(b.mode, b.count, gl.UNSIGNED_INT, 0)
	} else {
		gl.DrawArrays(b.mode, 0, b.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GL objects. It is safe to call more than once.
func (b *Buffer) Delete() {
	if b.ebo != 0 {
		gl.DeleteBuffers(1, &b.ebo)
		b.ebo = 0
	}
	if b.vbo != 0 {
		gl.DeleteBuffers(1, &b.vbo)
		b.vbo = 0
	}
	if b.vao != 0 {
		gl.DeleteVertexArrays(1, &b.vao)
		b.vao = 0
	}
}
