package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/philipparndt/gowire/internal/session"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch [file]",
	Short: "Reload an OBJ file whenever it changes",
	Long:  "Load the file, then reload it and print fresh counts each time it is saved. Stop with Ctrl+C.",
	Args:  cobra.ExactArgs(1),
	Run:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	filename := args[0]

	s := session.New(session.Options{Loader: cfg.Loader, Edges: cfg.Edges})
	u, err := s.Load(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing OBJ file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %s in %.2fs: %d vertices, %d segments\n", filename, u.Elapsed.Seconds(), u.VertexCount, u.Segments())
	fmt.Printf("Watching file for changes: %s\n", filename)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	onReload := func(r session.Result) {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "Error reloading model: %v\n", r.Err)
			return
		}
		fmt.Printf("Model reloaded successfully in %.2fs! %d vertices, %d segments\n", r.Elapsed.Seconds(), r.VertexCount, r.Segments())
	}

	if err := s.Watch(ctx, cfg.Debounce, onReload); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
