package main

import (
	"fmt"

	"github.com/philipparndt/gowire/pkg/analysis"
	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/spf13/cobra"
)

var (
	point1X, point1Y, point1Z float64
	point2X, point2Y, point2Z float64
)

var measureCmd = &cobra.Command{
	Use:   "measure [file]",
	Short: "Measure distance between two points",
	Long: `Measure the straight-line distance between two 3D points and between
the mesh vertices nearest to them.`,
	Args: cobra.ExactArgs(1),
	Run:  runMeasure,
}

func init() {
	rootCmd.AddCommand(measureCmd)

	measureCmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	measureCmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	measureCmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	measureCmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
	measureCmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
}

func runMeasure(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	p1 := geometry.NewVector3(point1X, point1Y, point1Z)
	p2 := geometry.NewVector3(point2X, point2Y, point2Z)

	fmt.Println("Point-to-Point Measurement")
	fmt.Println("==========================")

	idx1, dist1, ok1 := analysis.FindNearestVertex(m, p1)
	idx2, dist2, ok2 := analysis.FindNearestVertex(m, p2)

	fmt.Printf("\nPoint 1: %s\n", analysis.FormatVector(p1))
	if ok1 {
		fmt.Printf("  Nearest vertex #%d: %s (distance: %.6f)\n", idx1, analysis.FormatVector(m.Vertices()[idx1]), dist1)
	}

	fmt.Printf("\nPoint 2: %s\n", analysis.FormatVector(p2))
	if ok2 {
		fmt.Printf("  Nearest vertex #%d: %s (distance: %.6f)\n", idx2, analysis.FormatVector(m.Vertices()[idx2]), dist2)
	}

	fmt.Printf("\nDirect distance: %.6f units\n", p1.Distance(p2))

	if ok1 && ok2 {
		vertexDistance := m.Vertices()[idx1].Distance(m.Vertices()[idx2])
		fmt.Printf("Distance between nearest vertices: %.6f units\n", vertexDistance)
	}
}
