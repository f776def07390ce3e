package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowire/pkg/gpubuf"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export vertex and line index buffers",
	Long: `Write the float32 vertex positions and the uint32 edge index pairs of the
mesh to a little-endian binary file ready for upload to a line renderer.`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default from config, mesh.bin)")
}

func runExport(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	output := exportOutput
	if output == "" {
		output = cfg.Output
	}

	buf := gpubuf.PrepareWithEdges(m, mesh.BuildEdges(m, cfg.Edges))
	if err := buf.WriteFile(output); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing buffers: %v\n", err)
		os.Exit(1)
	}

	h := buf.Header()
	fmt.Printf("Wrote %s\n", output)
	fmt.Printf("  Vertices: %d\n", h.VertexCount)
	fmt.Printf("  Segments: %d (%s edges)\n", buf.SegmentCount(), cfg.Edges)
	fmt.Printf("  Center: %v\n", h.AabbCenter)
	fmt.Printf("  Extent: %v\n", h.AabbExtent)
}
