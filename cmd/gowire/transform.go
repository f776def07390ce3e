package main

import (
	"fmt"
	"os"

	"github.com/philipparndt/gowire/internal/session"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/philipparndt/gowire/pkg/obj"
	"github.com/spf13/cobra"
)

var (
	transformOps    []string
	transformOutput string
)

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Apply translations, scaling and rotations to an OBJ file",
	Long: `Apply a sequence of transforms in order. Scaling and rotations pivot on the
center of the current bounding box.

  --op translate:dx,dy,dz
  --op scale:k
  --op rotx:deg | roty:deg | rotz:deg`,
	Example: "  gowire transform model.obj --op rotz:90 --op scale:2 -o out.obj",
	Args:    cobra.ExactArgs(1),
	Run:     runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().StringArrayVar(&transformOps, "op", nil, "Transform to apply (repeatable)")
	transformCmd.Flags().StringVarP(&transformOutput, "output", "o", "", "Write the transformed mesh as OBJ")
	transformCmd.MarkFlagRequired("op")
}

func runTransform(cmd *cobra.Command, args []string) {
	filename := args[0]

	ops := make([]mesh.Transform, 0, len(transformOps))
	for _, s := range transformOps {
		t, err := mesh.ParseTransform(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		ops = append(ops, t)
	}

	s := session.New(session.Options{Loader: cfg.Loader, Edges: cfg.Edges})
	u, err := s.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s in %.2fs: %d vertices, %d segments\n\n", filename, u.Elapsed.Seconds(), u.VertexCount, u.Segments())

	for _, t := range ops {
		u = s.Apply(t)
		fmt.Printf("  %-24s %d segments in %s\n", t, u.Segments(), u.Elapsed)
	}

	s.View(func(m *mesh.Mesh) {
		bbox := m.ComputeAabb()
		fmt.Printf("\nBounding box: %v - %v\n", bbox.Min, bbox.Max)

		if transformOutput == "" {
			return
		}
		if err := obj.WriteFile(transformOutput, m); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing OBJ file: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %s\n", transformOutput)
	})
}
