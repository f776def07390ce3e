package stl

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const asciiTetra = `solid tetra
  facet normal 0 0 -1
    outer loop
      vertex 0 0 0
      vertex 1 0 0
      vertex 0 1 0
    endloop
  endfacet
  facet normal 0 -1 0
    outer loop
      vertex 0 0 0
      vertex 0 0 1
      vertex 1 0 0
    endloop
  endfacet
  facet normal -1 0 0
    outer loop
      vertex 0 0 0
      vertex 0 1 0
      vertex 0 0 -0
    endloop
  endfacet
  facet normal 1 1 1
    outer loop
      vertex 1 0 0
      vertex 0 0 1
      vertex 0 1 0
    endloop
  endfacet
endsolid tetra
`

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func binarySTL(header string, triangles [][3][3]float32) []byte {
	var buf bytes.Buffer
	h := make([]byte, binaryHeaderSize)
	copy(h, header)
	buf.Write(h)
	binary.Write(&buf, binary.LittleEndian, uint32(len(triangles)))
	for _, tri := range triangles {
		binary.Write(&buf, binary.LittleEndian, binaryTriangle{V1: tri[0], V2: tri[1], V3: tri[2]})
	}
	return buf.Bytes()
}

func TestParseASCIIWeldsVertices(t *testing.T) {
	m, err := Parse(writeFile(t, "tetra.stl", []byte(asciiTetra)))
	require.NoError(t, err)

	// The third facet is degenerate: 0 0 -0 welds onto the origin.
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 4, m.PolygonCount())
	assert.Len(t, m.EdgesCanonical(), 2*6)
}

func TestParseBinary(t *testing.T) {
	data := binarySTL("binary", [][3][3]float32{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		{{1, 0, 0}, {1, 1, 0}, {0, 1, 0}},
	})

	m, err := Parse(writeFile(t, "quad.stl", data))
	require.NoError(t, err)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, [][]int{{0, 1, 2}, {1, 3, 2}}, [][]int{m.Polygons()[0].Indices, m.Polygons()[1].Indices})
	assert.Equal(t, []uint32{0, 1, 0, 2, 1, 2, 1, 3, 2, 3}, m.EdgesCanonical())
}

func TestParseBinaryStartingWithSolid(t *testing.T) {
	data := binarySTL("solid exported by a CAD tool", [][3][3]float32{
		{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
	})

	m, err := Parse(writeFile(t, "solid.stl", data))
	require.NoError(t, err)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 1, m.PolygonCount())
}

func TestParseTruncatedBinary(t *testing.T) {
	data := binarySTL("x", [][3][3]float32{{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}})
	_, err := Parse(writeFile(t, "short.stl", data[:len(data)-10]))
	assert.Error(t, err)
}

func TestLoadInto(t *testing.T) {
	m := mesh.New()
	require.NoError(t, LoadInto(writeFile(t, "tetra.stl", []byte(asciiTetra)), m))
	assert.Equal(t, 4, m.VertexCount())

	err := LoadInto(filepath.Join(t.TempDir(), "missing.stl"), m)
	require.Error(t, err)
	assert.True(t, m.Empty())
}
