package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/spf13/cobra"
)

var (
	polyCount    int
	polyLargest  bool
	polySmallest bool
)

type polygonInfo struct {
	Index     int
	Size      int
	Perimeter float64
	Vertices  string
}

var polygonsCmd = &cobra.Command{
	Use:   "polygons [file]",
	Short: "Analyze polygons in an OBJ file",
	Long:  "Display the polygon size histogram and per-polygon vertex count, perimeter and indices.",
	Args:  cobra.ExactArgs(1),
	Run:   runPolygons,
}

func init() {
	rootCmd.AddCommand(polygonsCmd)

	polygonsCmd.Flags().IntVarP(&polyCount, "count", "n", 10, "Number of polygons to display")
	polygonsCmd.Flags().BoolVarP(&polyLargest, "largest", "l", false, "Show polygons with the most vertices")
	polygonsCmd.Flags().BoolVarP(&polySmallest, "smallest", "s", false, "Show polygons with the fewest vertices")
}

func runPolygons(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])
	stats := analysis.CountPolygons(m)

	polygons := make([]polygonInfo, 0, m.PolygonCount())
	for i, p := range m.Polygons() {
		polygons = append(polygons, polygonInfo{
			Index:     i,
			Size:      p.Len(),
			Perimeter: perimeter(m, p),
			Vertices:  formatIndices(p.Indices),
		})
	}

	// Sort based on flags
	if polyLargest {
		slices.SortStableFunc(polygons, func(a, b polygonInfo) int { return b.Size - a.Size })
	} else if polySmallest {
		slices.SortStableFunc(polygons, func(a, b polygonInfo) int { return a.Size - b.Size })
	}

	var title string
	if polyLargest {
		title = fmt.Sprintf("Top %d Largest Polygons", polyCount)
	} else if polySmallest {
		title = fmt.Sprintf("Top %d Smallest Polygons", polyCount)
	} else {
		title = fmt.Sprintf("First %d Polygons", polyCount)
	}

	fmt.Println(title)
	fmt.Println("====================")
	fmt.Printf("Total polygons: %d\n", len(polygons))
	fmt.Printf("  Points: %d\n", stats.Points)
	fmt.Printf("  Lines: %d\n", stats.Digons)
	fmt.Printf("  Triangles: %d\n", stats.Triangles)
	fmt.Printf("  Quads: %d\n", stats.Quads)
	fmt.Printf("  N-gons: %d\n", stats.NGons)
	fmt.Printf("Largest polygon: %d vertices\n\n", stats.MaxLen)

	for i := 0; i < polyCount && i < len(polygons); i++ {
		p := polygons[i]
		fmt.Printf("Polygon #%d:\n", p.Index)
		fmt.Printf("  Vertices: %d\n", p.Size)
		fmt.Printf("  Perimeter: %.6f units\n", p.Perimeter)
		fmt.Printf("  Indices: %s\n\n", p.Vertices)
	}
}

// perimeter sums the edge lengths around the polygon cycle
func perimeter(m *mesh.Mesh, p mesh.Polygon) float64 {
	n := p.Len()
	if n < 2 {
		return 0
	}
	vertices := m.Vertices()
	total := 0.0
	for i := range n {
		total += vertices[p.Indices[i]].Distance(vertices[p.Indices[(i+1)%n]])
	}
	return total
}

func formatIndices(indices []int) string {
	const limit = 12
	parts := make([]string, 0, min(len(indices), limit)+1)
	for i, idx := range indices {
		if i == limit {
			parts = append(parts, fmt.Sprintf("... (%d more)", len(indices)-limit))
			break
		}
		parts = append(parts, fmt.Sprint(idx))
	}
	return strings.Join(parts, " ")
}
