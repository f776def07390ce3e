package mesh

import (
	"testing"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build creates a mesh from vertex triples and 0-based polygons
func build(t *testing.T, coords [][3]float64, polys ...[]int) *Mesh {
	t.Helper()
	b := NewBuilder(len(coords), len(polys))
	for _, c := range coords {
		b.AddVertex(geometry.NewVector3(c[0], c[1], c[2]))
	}
	for _, p := range polys {
		b.AddPolygon(p)
	}
	return b.Build()
}

func TestNewMeshIsEmpty(t *testing.T) {
	m := New()

	assert.True(t, m.Empty())
	assert.Zero(t, m.VertexCount())
	assert.Zero(t, m.EdgeCount())
	assert.Empty(t, m.Polygons())
	assert.Equal(t, geometry.BoundingBox{}, m.ComputeAabb())
}

func TestBuilderCachesCounts(t *testing.T) {
	m := build(t, [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		[]int{0, 1, 2},
		[]int{1, 3, 2},
	)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.PolygonCount())
	assert.Equal(t, 6, m.EdgeCount(), "edge count is the raw pair count")
}

func TestBuilderDropsEmptyAndOutOfRange(t *testing.T) {
	m := build(t, [][3]float64{{0, 0, 0}, {1, 0, 0}},
		[]int{},
		[]int{5, -1},
		[]int{0, 7, 1},
		[]int{1},
	)

	require.Len(t, m.Polygons(), 2)
	assert.Equal(t, []int{0, 1}, m.Polygons()[0].Indices)
	assert.Equal(t, []int{1}, m.Polygons()[1].Indices)
	assert.Equal(t, 2, m.EdgeCount(), "single-index polygon contributes nothing")
}

func TestBuildIntoReplacesContents(t *testing.T) {
	m := build(t, [][3]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, []int{0, 1, 2})

	b := NewBuilder(0, 0)
	b.AddVertex(geometry.NewVector3(9, 9, 9))
	b.BuildInto(m)

	assert.Equal(t, 1, m.VertexCount())
	assert.Empty(t, m.Polygons())
	assert.Zero(t, m.EdgeCount())
}

func TestReset(t *testing.T) {
	m := build(t, [][3]float64{{0, 0, 0}, {1, 0, 0}}, []int{0, 1})
	m.Reset()

	assert.True(t, m.Empty())
	assert.Zero(t, m.VertexCount())
	assert.Zero(t, m.EdgeCount())
	assert.Empty(t, m.Polygons())
}

func TestComputeAabb(t *testing.T) {
	m := build(t, [][3]float64{{1, 2, 3}, {-1, 5, 0}, {4, -2, 1}})

	bbox := m.ComputeAabb()
	assert.Equal(t, geometry.NewVector3(-1, -2, 0), bbox.Min)
	assert.Equal(t, geometry.NewVector3(4, 5, 3), bbox.Max)
	assert.Equal(t, geometry.NewVector3(1.5, 1.5, 1.5), bbox.Center())
	assert.Equal(t, geometry.NewVector3(5, 7, 3), bbox.Size())
}
