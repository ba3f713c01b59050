// Package export writes generated meshes to disk in OBJ, binary and YAML form.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Faultbox/tablescene/internal/engine/mesh"
)

// Supported formats.
const (
	FormatOBJ  = "obj"
	FormatBin  = "bin"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned for a format name Write does not handle.
var ErrUnknownFormat = errors.New("unknown export format")

// Extension returns the file extension, with dot, used for format.
func Extension(format string) (string, error) {
	switch format {
	case FormatOBJ:
		return ".obj", nil
	case FormatBin:
		return ".tsm", nil
	case FormatYAML:
		return ".yaml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Write encodes meshes to w in the given format.
func Write(w io.Writer, format string, meshes []*mesh.Mesh) error {
	switch format {
	case FormatOBJ:
		return WriteOBJ(w, meshes)
	case FormatBin:
		return WriteBinary(w, meshes)
	case FormatYAML:
		return WriteYAML(w, meshes)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes meshes to dir/name plus the format extension, creating dir
// if needed. It returns the path written.
func WriteFile(dir, name, format string, meshes []*mesh.Mesh) (string, error) {
	ext, err := Extension(format)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, name+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if err := Write(f, format, meshes); err != nil {
		f.Close()
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
