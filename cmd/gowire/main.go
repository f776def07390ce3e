package main

import (
	"fmt"
	"os"
	"time"

	"github.com/philipparndt/gowire/internal/config"
	"github.com/philipparndt/gowire/internal/session"
	"github.com/philipparndt/gowire/pkg/mesh"
	"github.com/philipparndt/gowire/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	loaderFlag string
	edgesFlag  string

	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "gowire",
	Short: "A CLI tool for loading, inspecting and transforming OBJ wireframes",
	Long: `gowire loads the vertex and face data of Wavefront OBJ files and turns it
into wireframe edge lists. It reports mesh statistics, applies translations,
scaling and rotations, and exports ready-to-upload line buffers.`,
	Version:           version.GetFullVersion(),
	PersistentPreRunE: loadConfig,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default .gowire.toml if present)")
	rootCmd.PersistentFlags().StringVar(&loaderFlag, "loader", "", "Loader strategy: auto, mapped or buffered")
	rootCmd.PersistentFlags().StringVar(&edgesFlag, "edges", "", "Edge mode: canonical or raw")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := loaded.SetLoader(loaderFlag); err != nil {
		return err
	}
	if err := loaded.SetEdges(edgesFlag); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

// loadMesh reads an OBJ or STL file with the configured strategy, exiting
// on failure
func loadMesh(filename string) *mesh.Mesh {
	start := time.Now()
	m, err := session.LoadFile(filename, cfg.Loader)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing mesh file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s in %.2fs (%s loader)\n\n", filename, time.Since(start).Seconds(), cfg.Loader)
	return m
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
