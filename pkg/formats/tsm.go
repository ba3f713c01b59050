// Package formats provides readers and writers for the binary mesh container
// produced by meshgen.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// TSM format errors.
var (
	ErrInvalidTSMMagic       = errors.New("invalid TSM magic: expected 'TSMB'")
	ErrUnsupportedTSMVersion = errors.New("unsupported TSM version")
	ErrTruncatedTSMData      = errors.New("truncated TSM data")
	ErrInvalidTSMData        = errors.New("invalid TSM data")
)

// TSMMagic opens every TSM file.
var TSMMagic = [4]byte{'T', 'S', 'M', 'B'}

// TSMVersion represents the TSM file version.
type TSMVersion uint16

// TSMCurrentVersion is the version written by WriteTo.
const TSMCurrentVersion TSMVersion = 0x0100

// String returns the version as "Major.Minor".
func (v TSMVersion) String() string {
	return fmt.Sprintf("%d.%d", v>>8, v&0xFF)
}

// TSM is a container of interleaved float32 meshes.
//
// Layout (little endian):
//
//	magic[4] version:u16 meshCount:u16 floatsPerVertex:u16 reserved:u16
//	per mesh: nameLen:u16 name topology:u8 floatCount:u32 indexCount:u32
//	          floats[floatCount]:f32 indices[indexCount]:u32
type TSM struct {
	Version         TSMVersion
	FloatsPerVertex uint16
	Meshes          []TSMMesh
}

// TSMMesh is one mesh record.
type TSMMesh struct {
	Name     string
	Topology uint8
	Vertices []float32
	Indices  []uint32
}

type tsmHeader struct {
	Magic           [4]byte
	Version         TSMVersion
	MeshCount       uint16
	FloatsPerVertex uint16
	Reserved        uint16
}

type tsmMeshHeader struct {
	Topology   uint8
	FloatCount uint32
	IndexCount uint32
}

// ParseTSM parses a TSM file from raw bytes.
func ParseTSM(data []byte) (*TSM, error) {
	r := bytes.NewReader(data)

	var hdr tsmHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, ErrTruncatedTSMData
	}
	if hdr.Magic != TSMMagic {
		return nil, ErrInvalidTSMMagic
	}
	if hdr.Version>>8 != TSMCurrentVersion>>8 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedTSMVersion, hdr.Version)
	}

	// Meshes grows as records are read; MeshCount is not trusted for sizing
	tsm := &TSM{
		Version:         hdr.Version,
		FloatsPerVertex: hdr.FloatsPerVertex,
	}

	for i := 0; i < int(hdr.MeshCount); i++ {
		m, err := readTSMMesh(r)
		if err != nil {
			return nil, fmt.Errorf("mesh %d: %w", i, err)
		}
		tsm.Meshes = append(tsm.Meshes, *m)
	}

	return tsm, nil
}

func readTSMMesh(r *bytes.Reader) (*TSMMesh, error) {
	var nameLen uint16
	if err := binary.Read(r, binary.LittleEndian, &nameLen); err != nil {
		return nil, ErrTruncatedTSMData
	}
	name := make([]byte, nameLen)
	if _, err := io.ReadFull(r, name); err != nil {
		return nil, ErrTruncatedTSMData
	}

	var mh tsmMeshHeader
	if err := binary.Read(r, binary.LittleEndian, &mh); err != nil {
		return nil, ErrTruncatedTSMData
	}

	// Reject counts the remaining data cannot hold before allocating
	need := int64(mh.FloatCount)*4 + int64(mh.IndexCount)*4
	if need > int64(r.Len()) {
		return nil, ErrTruncatedTSMData
	}

	m := &TSMMesh{
		Name:     string(name),
		Topology: mh.Topology,
		Vertices: make([]float32, mh.FloatCount),
	}
	if err := binary.Read(r, binary.LittleEndian, m.Vertices); err != nil {
		return nil, ErrTruncatedTSMData
	}
	if mh.IndexCount > 0 {
		m.Indices = make([]uint32, mh.IndexCount)
		if err := binary.Read(r, binary.LittleEndian, m.Indices); err != nil {
			return nil, ErrTruncatedTSMData
		}
	}
	return m, nil
}

// LoadTSM reads and parses a TSM file from disk.
func LoadTSM(path string) (*TSM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTSM(data)
}

// WriteTo serializes the container. It implements io.WriterTo.
func (t *TSM) WriteTo(w io.Writer) (int64, error) {
	if len(t.Meshes) > 0xFFFF {
		return 0, fmt.Errorf("too many meshes: %d", len(t.Meshes))
	}

	var buf bytes.Buffer
	hdr := tsmHeader{
		Magic:           TSMMagic,
		Version:         TSMCurrentVersion,
		MeshCount:       uint16(len(t.Meshes)),
		FloatsPerVertex: t.FloatsPerVertex,
	}
	_ = binary.Write(&buf, binary.LittleEndian, hdr)

	for _, m := range t.Meshes {
		if len(m.Name) > 0xFFFF {
			return 0, fmt.Errorf("mesh name too long: %d bytes", len(m.Name))
		}
		_ = binary.Write(&buf, binary.LittleEndian, uint16(len(m.Name)))
		buf.WriteString(m.Name)
		_ = binary.Write(&buf, binary.LittleEndian, tsmMeshHeader{
			Topology:   m.Topology,
			FloatCount: uint32(len(m.Vertices)),
			IndexCount: uint32(len(m.Indices)),
		})
		_ = binary.Write(&buf, binary.LittleEndian, m.Vertices)
		if len(m.Indices) > 0 {
			_ = binary.Write(&buf, binary.LittleEndian, m.Indices)
		}
	}

	return buf.WriteTo(w)
}
