// Package stl imports STL triangle soups as indexed meshes.
//
// STL stores every triangle with its own three corners. Corners at exactly
// the same position are welded into one vertex, so the wireframe of a closed
// surface has one edge per shared side.
package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
)

const (
	binaryHeaderSize   = 80
	binaryTriangleSize = 50
)

// Parse reads an STL file and returns an indexed mesh.
// It automatically detects whether the file is ASCII or binary format.
func Parse(filename string) (*mesh.Mesh, error) {
	b, err := parseFile(filename)
	if err != nil {
		return nil, err
	}
	return b.Build(), nil
}

// LoadInto replaces the contents of m with the mesh in filename. m is
// emptied before anything is read.
func LoadInto(filename string, m *mesh.Mesh) error {
	m.Reset()
	b, err := parseFile(filename)
	if err != nil {
		return err
	}
	b.BuildInto(m)
	return nil
}

func parseFile(filename string) (*welder, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", filename, err)
	}

	br := bufio.NewReader(file)
	head, err := br.Peek(binaryHeaderSize + 4)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}

	if isASCII(head, info.Size()) {
		return parseASCII(br)
	}
	return parseBinary(br)
}

// isASCII reports whether the file looks like ASCII STL. Binary files may
// also start with "solid", so a header whose triangle count matches the file
// size is taken as binary.
func isASCII(head []byte, size int64) bool {
	if !bytes.HasPrefix(head, []byte("solid")) {
		return false
	}
	if len(head) < binaryHeaderSize+4 {
		return true
	}
	count := binary.LittleEndian.Uint32(head[binaryHeaderSize:])
	return int64(binaryHeaderSize+4)+int64(count)*binaryTriangleSize != size
}

// welder maps corner positions onto shared vertex indices
type welder struct {
	b     *mesh.Builder
	index map[geometry.Vector3]int
}

func newWelder(triangleHint int) *welder {
	return &welder{
		b:     mesh.NewBuilder(triangleHint/2, triangleHint),
		index: make(map[geometry.Vector3]int, triangleHint/2),
	}
}

func (w *welder) vertex(v geometry.Vector3) int {
	if v.X == 0 {
		v.X = 0 // fold -0 onto +0
	}
	if v.Y == 0 {
		v.Y = 0
	}
	if v.Z == 0 {
		v.Z = 0
	}
	if idx, ok := w.index[v]; ok {
		return idx
	}
	idx := w.b.VertexCount()
	w.index[v] = idx
	w.b.AddVertex(v)
	return idx
}

func (w *welder) triangle(v1, v2, v3 geometry.Vector3) {
	w.b.AddPolygon([]int{w.vertex(v1), w.vertex(v2), w.vertex(v3)})
}

func (w *welder) Build() *mesh.Mesh {
	return w.b.Build()
}

func (w *welder) BuildInto(m *mesh.Mesh) {
	w.b.BuildInto(m)
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*welder, error) {
	scanner := bufio.NewScanner(reader)
	w := newWelder(0)

	var vertices []geometry.Vector3

	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "vertex":
			if len(fields) >= 4 {
				x, _ := strconv.ParseFloat(fields[1], 64)
				y, _ := strconv.ParseFloat(fields[2], 64)
				z, _ := strconv.ParseFloat(fields[3], 64)
				vertices = append(vertices, geometry.NewVector3(x, y, z))
			}

		case "endfacet":
			if len(vertices) == 3 {
				w.triangle(vertices[0], vertices[1], vertices[2])
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return w, nil
}

// binaryTriangle is one 50-byte record. The normal is ignored.
type binaryTriangle struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attribute  uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*welder, error) {
	if _, err := io.CopyN(io.Discard, reader, binaryHeaderSize); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	w := newWelder(int(min(triangleCount, 1<<20)))
	for i := uint32(0); i < triangleCount; i++ {
		var t binaryTriangle
		if err := binary.Read(reader, binary.LittleEndian, &t); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		w.triangle(vec(t.V1), vec(t.V2), vec(t.V3))
	}

	return w, nil
}

func vec(v [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(v[0]), float64(v[1]), float64(v[2]))
}
