package renderer

import (
	"log"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cg711/raytracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Integrator estimates the radiance carried by a single primary ray
type Integrator interface {
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3
}

// Renderer drives the parallel rendering loop: it partitions the image
// into contiguous row bands, renders each band on its own worker, and
// collects the result in a single framebuffer
type Renderer struct {
	camera     *Camera
	integrator Integrator
	config     SamplingConfig
	numWorkers int
	seed       int64
	logger     core.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithWorkers overrides the number of worker goroutines
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.numWorkers = n
		}
	}
}

// WithSeed sets the base seed for the per-worker generators
func WithSeed(seed int64) Option {
	return func(r *Renderer) { r.seed = seed }
}

// WithLogger overrides the progress logger
func WithLogger(logger core.Logger) Option {
	return func(r *Renderer) { r.logger = logger }
}

// NewRenderer creates a renderer for the given camera and integrator
func NewRenderer(camera *Camera, integrator Integrator, config SamplingConfig, opts ...Option) *Renderer {
	r := &Renderer{
		camera:     camera,
		integrator: integrator,
		config:     config,
		numWorkers: runtime.NumCPU(),
		seed:       42,
		logger:     log.New(os.Stderr, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render traces the world into a framebuffer of ImageWidth*ImageHeight
// colors in row-major order from the top-left.
//
// The scene graph is read-only during rendering and each framebuffer cell
// has exactly one writer, so the workers share no locks. Each worker owns a
// sampler seeded from the base seed and its band index: a fixed seed and
// worker count reproduces the image exactly.
func (r *Renderer) Render(world core.Shape) []core.Vec3 {
	width := r.camera.Config.ImageWidth
	height := r.camera.ImageHeight
	framebuffer := make([]core.Vec3, width*height)

	numWorkers := r.numWorkers
	if numWorkers > height {
		numWorkers = height
	}

	rowsRemaining := int64(height)
	sampleScale := 1.0 / float64(r.config.SamplesPerPixel)

	var wg sync.WaitGroup
	for band := 0; band < numWorkers; band++ {
		rowStart := band * height / numWorkers
		rowEnd := (band + 1) * height / numWorkers

		wg.Add(1)
		go func(band, rowStart, rowEnd int) {
			defer wg.Done()
			sampler := core.NewSeededSampler(r.seed + int64(band))

			for j := rowStart; j < rowEnd; j++ {
				for i := 0; i < width; i++ {
					accum := core.Vec3{}
					for s := 0; s < r.config.SamplesPerPixel; s++ {
						ray := r.camera.GetRay(i, j, sampler)
						accum = accum.Add(r.integrator.RayColor(ray, world, sampler))
					}
					framebuffer[j*width+i] = accum.Multiply(sampleScale)
				}
				r.logger.Printf("Scanlines remaining: %d", atomic.AddInt64(&rowsRemaining, -1))
			}
		}(band, rowStart, rowEnd)
	}
	wg.Wait()

	return framebuffer
}
