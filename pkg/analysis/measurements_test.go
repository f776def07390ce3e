package analysis

import (
	"testing"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds a unit square in the XY plane split into two triangles,
// plus a point polygon and a digon.
func square() *mesh.Mesh {
	b := mesh.NewBuilder(4, 4)
	b.AddVertex(geometry.NewVector3(0, 0, 0))
	b.AddVertex(geometry.NewVector3(1, 0, 0))
	b.AddVertex(geometry.NewVector3(1, 1, 0))
	b.AddVertex(geometry.NewVector3(0, 1, 0))
	b.AddPolygon([]int{0, 1, 2})
	b.AddPolygon([]int{0, 2, 3})
	b.AddPolygon([]int{3})
	b.AddPolygon([]int{0, 1})
	return b.Build()
}

func TestAnalyzeMesh(t *testing.T) {
	result := AnalyzeMesh(square())

	assert.Equal(t, geometry.NewVector3(1, 1, 0), result.Dimensions)
	assert.Equal(t, geometry.NewVector3(0.5, 0.5, 0), result.Center)
	assert.Equal(t, 4, result.VertexCount)
	assert.Equal(t, 4, result.PolygonCount)
	assert.Equal(t, 3+3+2, result.RawEdgeCount)
	assert.Equal(t, 5, result.EdgeCount)
	assert.Equal(t, PolygonStats{Points: 1, Digons: 1, Triangles: 2, MaxLen: 3}, result.Polygons)

	assert.InDelta(t, 1.0, result.MinEdgeLength, 1e-12)
	assert.InDelta(t, 1.4142135623730951, result.MaxEdgeLength, 1e-12)
	assert.InDelta(t, (4+1.4142135623730951)/5, result.AvgEdgeLength, 1e-12)

	require.Len(t, result.AllEdges, 5)
	first := result.AllEdges[0]
	assert.Equal(t, 0, first.A)
	assert.Equal(t, 1, first.B)
	assert.Equal(t, geometry.NewVector3(1, 0, 0), first.End)
}

func TestAnalyzeEmptyMesh(t *testing.T) {
	result := AnalyzeMesh(mesh.New())

	assert.Zero(t, result.EdgeCount)
	assert.Zero(t, result.MinEdgeLength)
	assert.Zero(t, result.MaxEdgeLength)
	assert.Zero(t, result.AvgEdgeLength)
	assert.Empty(t, result.AllEdges)
	assert.Equal(t, geometry.Vector3{}, result.Dimensions)
}

func TestAnalyzeMeshWithRawEdges(t *testing.T) {
	m := square()
	result := AnalyzeMeshWithEdges(m, m.EdgesRaw())

	assert.Equal(t, 8, result.EdgeCount)
	assert.Equal(t, result.RawEdgeCount, result.EdgeCount)
	assert.InDelta(t, 1.4142135623730951, result.MaxEdgeLength, 1e-12)
}

func TestCountPolygonsNGons(t *testing.T) {
	b := mesh.NewBuilder(6, 2)
	for i := range 6 {
		b.AddVertex(geometry.NewVector3(float64(i), 0, 0))
	}
	b.AddPolygon([]int{0, 1, 2, 3})
	b.AddPolygon([]int{0, 1, 2, 3, 4, 5})

	stats := CountPolygons(b.Build())
	assert.Equal(t, PolygonStats{Quads: 1, NGons: 1, MaxLen: 6}, stats)
}

func TestFindEdges(t *testing.T) {
	result := AnalyzeMesh(square())

	longest := FindLongestEdges(result, 1)
	require.Len(t, longest, 1)
	assert.Equal(t, [2]int{0, 2}, [2]int{longest[0].A, longest[0].B})

	shortest := FindShortestEdges(result, 2)
	require.Len(t, shortest, 2)
	assert.Equal(t, [2]int{0, 1}, [2]int{shortest[0].A, shortest[0].B})
	assert.Equal(t, [2]int{0, 3}, [2]int{shortest[1].A, shortest[1].B})

	assert.Len(t, FindLongestEdges(result, 100), 5)
	assert.Empty(t, FindShortestEdges(result, -1))

	unit := FindEdgesByLength(result, 0.5, 1.2)
	assert.Len(t, unit, 4)
	assert.Empty(t, FindEdgesByLength(result, 2, 3))
}

func TestFindEdgesDoesNotReorderResult(t *testing.T) {
	result := AnalyzeMesh(square())
	before := append([]EdgeInfo(nil), result.AllEdges...)

	FindLongestEdges(result, 3)
	assert.Equal(t, before, result.AllEdges)
}

func TestFindNearestVertex(t *testing.T) {
	idx, dist, ok := FindNearestVertex(square(), geometry.NewVector3(0.9, 1.2, 0))
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 0.2236, dist, 1e-4)

	_, _, ok = FindNearestVertex(mesh.New(), geometry.Vector3{})
	assert.False(t, ok)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "(1.000000, -2.500000, 0.000000)", FormatVector(geometry.NewVector3(1, -2.5, 0)))
	assert.Equal(t, "3.000000 units", FormatMeasurement(3, ""))
	assert.Equal(t, "3.000000 mm", FormatMeasurement(3, "mm"))
}
