package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowire/pkg/geometry"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/philipparndt/gowire/pkg/render"
	"github.com/spf13/cobra"
)

var (
	renderOutput   string
	renderGIF      string
	renderFrames   int
	renderDelay    int
	renderPitch    float64
	renderYaw      float64
	renderOrtho    bool
	renderVertices int
	renderWidth    int
	renderHeight   int
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render a wireframe snapshot as PNG or a turntable as GIF",
	Long: `Draw the wireframe of the mesh with an orbit camera framed on its bounding
box. Colors, size and projection default to the [render] config section.`,
	Example: "  gowire render model.obj -o model.png --pitch 20 --yaw 35\n  gowire render model.obj --gif spin.gif --frames 36",
	Args:    cobra.ExactArgs(1),
	Run:     runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "PNG output file")
	renderCmd.Flags().StringVar(&renderGIF, "gif", "", "GIF output file for a turntable animation")
	renderCmd.Flags().IntVar(&renderFrames, "frames", 36, "Number of turntable frames")
	renderCmd.Flags().IntVar(&renderDelay, "delay", 8, "Delay between GIF frames in 1/100 s")
	renderCmd.Flags().Float64Var(&renderPitch, "pitch", 20, "Camera elevation in degrees")
	renderCmd.Flags().Float64Var(&renderYaw, "yaw", 30, "Camera azimuth in degrees")
	renderCmd.Flags().BoolVar(&renderOrtho, "ortho", false, "Use an orthographic projection")
	renderCmd.Flags().IntVar(&renderVertices, "vertices", -1, "Vertex marker size in pixels, 0 to hide")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "Image width")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "Image height")
	renderCmd.MarkFlagsOneRequired("output", "gif")
}

func runRender(cmd *cobra.Command, args []string) {
	m := loadMesh(args[0])

	settings := cfg.Render
	if renderOrtho {
		settings.Projection = render.Orthographic
	}
	if renderVertices >= 0 {
		settings.VertexSize = renderVertices
	}
	if renderWidth > 0 {
		settings.Width = renderWidth
	}
	if renderHeight > 0 {
		settings.Height = renderHeight
	}

	edges := mesh.BuildEdges(m, cfg.Edges)
	cam := render.NewCamera(m.ComputeAabb())
	cam.Rotate(geometry.Radians(renderPitch), geometry.Radians(renderYaw))

	if renderOutput != "" {
		img := render.Frame(m, edges, cam, settings)
		if err := writeImage(renderOutput, func(f *os.File) error { return render.WritePNG(f, img) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing PNG: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%dx%d, %s, %d segments)\n", renderOutput, settings.Width, settings.Height, settings.Projection, len(edges)/2)
	}

	if renderGIF != "" {
		frames := render.Turntable(m, edges, cam, settings, renderFrames)
		if err := writeImage(renderGIF, func(f *os.File) error { return render.WriteGIF(f, frames, renderDelay) }); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing GIF: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s (%d frames)\n", renderGIF, len(frames))
	}
}

func writeImage(path string, encode func(f *os.File) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := encode(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
