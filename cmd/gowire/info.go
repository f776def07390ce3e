package main

import (
	"fmt"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Display general information about an OBJ file",
	Long:  "Show vertex, polygon and edge counts, the bounding box, dimensions and edge length statistics.",
	Args:  cobra.ExactArgs(1),
	Run:   runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	filename := args[0]
	m := loadMesh(filename)
	result := analysis.AnalyzeMesh(m)

	fmt.Println("OBJ File Information")
	fmt.Println("====================")
	fmt.Printf("File: %s\n\n", filename)

	fmt.Println("Mesh Statistics:")
	fmt.Printf("  Vertices: %d\n", result.VertexCount)
	fmt.Printf("  Polygons: %d\n", result.PolygonCount)
	fmt.Printf("  Edges (raw): %d\n", result.RawEdgeCount)
	fmt.Printf("  Edges (unique): %d\n\n", result.EdgeCount)

	if m.Empty() {
		fmt.Println("The mesh has no vertices.")
		return
	}

	fmt.Println("Bounding Box:")
	fmt.Printf("  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Printf("  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Printf("  Center: %s\n\n", analysis.FormatVector(result.Center))

	fmt.Println("Dimensions:")
	fmt.Printf("  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Printf("  Depth (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Printf("  Height (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Printf("  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Printf("  Volume: %.6f cubic units\n\n", result.BoundingBox.Volume())

	fmt.Println("Edge Lengths:")
	fmt.Printf("  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Printf("  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Printf("  Average: %.6f units\n", result.AvgEdgeLength)
}
