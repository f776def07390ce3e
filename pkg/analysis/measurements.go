package analysis

import (
	"fmt"
	"math"
	"slices"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
)

// EdgeInfo contains information about a wireframe edge of the mesh
type EdgeInfo struct {
	A, B   int
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
}

// PolygonStats counts polygons by number of indices
type PolygonStats struct {
	Points    int
	Digons    int
	Triangles int
	Quads     int
	NGons     int
	MaxLen    int
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Center        geometry.Vector3
	VertexCount   int
	PolygonCount  int
	RawEdgeCount  int
	EdgeCount     int
	Polygons      PolygonStats
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

// AnalyzeMesh measures a mesh. Edge statistics run over the canonical edge
// set, so an edge shared by two polygons is counted once.
func AnalyzeMesh(m *mesh.Mesh) *MeasurementResult {
	return AnalyzeMeshWithEdges(m, m.EdgesCanonical())
}

// AnalyzeMeshWithEdges measures a mesh with edge statistics taken over a
// flattened edge list, for example one in raw mode
func AnalyzeMeshWithEdges(m *mesh.Mesh, edges []uint32) *MeasurementResult {
	bbox := m.ComputeAabb()
	result := &MeasurementResult{
		BoundingBox:  bbox,
		Dimensions:   bbox.Size(),
		Center:       bbox.Center(),
		VertexCount:  m.VertexCount(),
		PolygonCount: m.PolygonCount(),
		RawEdgeCount: m.EdgeCount(),
		Polygons:     CountPolygons(m),
	}

	vertices := m.Vertices()
	result.AllEdges = make([]EdgeInfo, 0, len(edges)/2)

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0

	for i := 0; i+1 < len(edges); i += 2 {
		a, b := int(edges[i]), int(edges[i+1])
		start, end := vertices[a], vertices[b]
		length := start.Distance(end)

		result.AllEdges = append(result.AllEdges, EdgeInfo{
			A:      a,
			B:      b,
			Start:  start,
			End:    end,
			Length: length,
		})

		totalLength += length
		minLength = min(minLength, length)
		maxLength = max(maxLength, length)
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount > 0 {
		result.MinEdgeLength = minLength
		result.MaxEdgeLength = maxLength
		result.AvgEdgeLength = totalLength / float64(result.EdgeCount)
	}

	return result
}

// CountPolygons builds the polygon size histogram
func CountPolygons(m *mesh.Mesh) PolygonStats {
	var stats PolygonStats
	for _, p := range m.Polygons() {
		n := p.Len()
		switch {
		case n == 1:
			stats.Points++
		case n == 2:
			stats.Digons++
		case n == 3:
			stats.Triangles++
		case n == 4:
			stats.Quads++
		default:
			stats.NGons++
		}
		stats.MaxLen = max(stats.MaxLen, n)
	}
	return stats
}

// FindEdgesByLength finds all edges within a length range
func FindEdgesByLength(result *MeasurementResult, minLength, maxLength float64) []EdgeInfo {
	var edges []EdgeInfo
	for _, edge := range result.AllEdges {
		if edge.Length >= minLength && edge.Length <= maxLength {
			edges = append(edges, edge)
		}
	}
	return edges
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return firstN(result.AllEdges, count, func(a, b EdgeInfo) int {
		return compareLength(b, a)
	})
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	return firstN(result.AllEdges, count, compareLength)
}

// compareLength orders by length, then by endpoints so equal lengths come
// out in edge order
func compareLength(a, b EdgeInfo) int {
	switch {
	case a.Length < b.Length:
		return -1
	case a.Length > b.Length:
		return 1
	case a.A != b.A:
		return a.A - b.A
	}
	return a.B - b.B
}

func firstN(all []EdgeInfo, count int, cmp func(a, b EdgeInfo) int) []EdgeInfo {
	edges := slices.Clone(all)
	slices.SortFunc(edges, cmp)
	count = max(0, min(count, len(edges)))
	return edges[:count]
}

// FindNearestVertex finds the vertex nearest to a given point. ok is false
// for an empty mesh.
func FindNearestVertex(m *mesh.Mesh, point geometry.Vector3) (index int, distance float64, ok bool) {
	distance = math.MaxFloat64
	for i, v := range m.Vertices() {
		if d := point.Distance(v); d < distance {
			index, distance, ok = i, d, true
		}
	}
	if !ok {
		return 0, 0, false
	}
	return index, distance, true
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
