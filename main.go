package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cg711/raytracer/pkg/core"
	"github.com/cg711/raytracer/pkg/geometry"
	"github.com/cg711/raytracer/pkg/integrator"
	"github.com/cg711/raytracer/pkg/renderer"
	"github.com/cg711/raytracer/pkg/scene"
)

type renderOptions struct {
	samples int
	width   int
	depth   int
	seed    int64
	threads int
	output  string
	noBVH   bool
	list    bool
}

func newRootCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "raytracer <scene_number>",
		Short: "Monte Carlo path tracer producing PPM images",
		Long: "Renders one of the built-in test scenes to an ASCII PPM (P3) image\n" +
			"on stdout. Progress is reported on stderr.",
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.list {
				return listScenes(cmd.OutOrStdout())
			}
			return run(args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.samples, "samples", 0, "override samples per pixel")
	cmd.Flags().IntVar(&opts.width, "width", 0, "override image width in pixels")
	cmd.Flags().IntVar(&opts.depth, "depth", 0, "override maximum ray bounce depth")
	cmd.Flags().Int64Var(&opts.seed, "seed", 42, "base seed for the per-worker generators")
	cmd.Flags().IntVar(&opts.threads, "threads", 0, "worker count (default: number of CPUs)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write the image to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.noBVH, "no-bvh", false, "intersect by linear scan instead of the BVH")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the available scenes and exit")

	return cmd
}

func listScenes(w io.Writer) error {
	for _, entry := range scene.Registry() {
		if _, err := fmt.Fprintf(w, "%2d  %-16s %s\n", entry.Number, entry.Name, entry.Description); err != nil {
			return err
		}
	}
	return nil
}

func run(sceneArg string, opts *renderOptions) error {
	number, err := strconv.Atoi(sceneArg)
	if err != nil {
		return fmt.Errorf("scene number must be an integer, got %q", sceneArg)
	}

	entry, err := scene.Lookup(number)
	if err != nil {
		return err
	}

	sc, err := entry.Build()
	if err != nil {
		return fmt.Errorf("building scene %s: %w", entry.Name, err)
	}

	if opts.samples > 0 {
		sc.Sampling.SamplesPerPixel = opts.samples
	}
	if opts.depth > 0 {
		sc.Sampling.MaxDepth = opts.depth
	}
	if opts.width > 0 {
		sc.Camera.ImageWidth = opts.width
	}

	var world core.Shape = sc.World
	if !opts.noBVH {
		world = geometry.NewBVH(sc.World.Shapes)
	}

	camera := renderer.NewCamera(sc.Camera)
	pathTracer := integrator.NewPathTracer(sc.Sampling.MaxDepth, sc.Camera.Background)

	rendererOpts := []renderer.Option{renderer.WithSeed(opts.seed)}
	if opts.threads > 0 {
		rendererOpts = append(rendererOpts, renderer.WithWorkers(opts.threads))
	}
	r := renderer.NewRenderer(camera, pathTracer, sc.Sampling, rendererOpts...)

	startTime := time.Now()
	framebuffer := r.Render(world)
	fmt.Fprintf(os.Stderr, "Render completed in %v\n", time.Since(startTime))

	out := io.Writer(os.Stdout)
	if opts.output != "" {
		file, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer file.Close()
		out = file
	}

	return renderer.WritePPM(out, framebuffer, sc.Camera.ImageWidth, camera.ImageHeight)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
