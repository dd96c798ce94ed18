package renderer

import (
	"context"
	"image"
	"math/rand"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"github.com/s0berman/go-pathtracer/pkg/core"
	"github.com/s0berman/go-pathtracer/pkg/integrator"
)

// Scene is what the renderer needs from a scene description.
type Scene interface {
	World() core.Hittable
	Lights() core.Hittable      // nil when nothing is sampleable
	Environment() core.Hittable // nil selects the sky gradient
	Camera() *Camera
}

// Options configure a render.
type Options struct {
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int
	MinDepth        int
	Filter          Filter
	Seed            int64
	Workers         int // defaults to NumCPU
}

// Renderer schedules rows across workers and assembles the image.
type Renderer struct {
	scene  Scene
	opts   Options
	tracer *integrator.PathTracer
}

// NewRenderer creates a renderer for the scene
func NewRenderer(scene Scene, opts Options) *Renderer {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Filter == nil {
		opts.Filter = UniformFilter{}
	}
	return &Renderer{
		scene:  scene,
		opts:   opts,
		tracer: integrator.NewPathTracer(integrator.Config{MaxDepth: opts.MaxDepth, MinDepth: opts.MinDepth}),
	}
}

// Render traces the full image. Rows are distributed over workers, and
// each row derives its generator from the seed alone, so the output is
// identical no matter how the rows are scheduled.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, error) {
	start := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, r.opts.Width, r.opts.Height))

	rows := make(chan int)
	var completed int64
	logEvery := r.opts.Height / 10
	if logEvery < 1 {
		logEvery = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(rows)
		for y := 0; y < r.opts.Height; y++ {
			select {
			case rows <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < r.opts.Workers; i++ {
		g.Go(func() error {
			for y := range rows {
				rnd := rand.New(rand.NewSource(r.opts.Seed + int64(y)))
				r.renderRow(y, rnd, img)

				done := atomic.AddInt64(&completed, 1)
				if done%int64(logEvery) == 0 {
					glog.Infof("rendered %d/%d rows (%.0f%%)", done, r.opts.Height, float64(done)/float64(r.opts.Height)*100)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	glog.Infof("render finished in %s", time.Since(start).Round(time.Millisecond))
	return img, nil
}

// renderRow traces every pixel of one row. Workers write disjoint rows,
// so the shared image needs no locking.
func (r *Renderer) renderRow(y int, rnd *rand.Rand, img *image.RGBA) {
	world := r.scene.World()
	lights := r.scene.Lights()
	envmap := r.scene.Environment()
	camera := r.scene.Camera()

	for x := 0; x < r.opts.Width; x++ {
		sum := core.Zero
		for s := 0; s < r.opts.SamplesPerPixel; s++ {
			u := (float64(x) + r.opts.Filter.Sample(rnd)) / float64(r.opts.Width-1)
			v := (float64(r.opts.Height) - (float64(y) + r.opts.Filter.Sample(rnd))) / float64(r.opts.Height-1)

			ray := camera.GetRay(u, v, rnd)
			c := r.tracer.RayColor(ray, world, lights, envmap, 0, rnd)
			if c.IsFinite() {
				sum = sum.Add(c)
			}
		}
		img.SetRGBA(x, y, ToRGBA(sum, r.opts.SamplesPerPixel))
	}
}
