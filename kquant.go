// Package kquant reduces the colors of an image with k-means clustering.
//
// Every pixel is assigned to the nearest of k centroids (squared RGB
// distance), every centroid is moved to the floor mean of its pixels, and
// after a fixed number of rounds each pixel is replaced by its centroid.
// Initial centroids are random pixel colors drawn from a seedable
// generator, so runs are reproducible.
package kquant

import (
	"image"
	"math/rand"
	"time"

	"github.com/wbrown/kquant/imageutil"
)

// Result holds the output of a quantization run.
type Result struct {
	// Image has the input's dimensions; every pixel is one of Palette.
	Image Image
	// Palette holds the final centroid of each cluster, indexed by cluster.
	// Entries may repeat when clusters converge to the same color.
	Palette []RGB
	// Assignments holds the cluster index of every pixel, row-major.
	Assignments []int
	// Iterations is the number of completed assignment/update rounds.
	Iterations int
	// Converged is true when the last round reassigned no pixel.
	Converged bool
}

// Quantize reduces img to at most k colors.
//
// Parameters are checked before any work starts; a bad k, iteration cap,
// worker count or image shape returns an error wrapping
// ErrInvalidParameter.
func Quantize(img Image, k int, opts ...Option) (res *Result, err error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	start := time.Now()
	iterations := 0
	defer func() {
		o.metrics.RecordRun(len(img.Pix), iterations, time.Since(start), err)
	}()

	if err := validate(img, k, o); err != nil {
		return nil, err
	}

	rng := o.rng
	if rng == nil {
		rng = rand.New(rand.NewSource(o.seed))
	}
	logger := o.logger.WithK(k)

	clusters, err := o.initializer.Initialize(img, k, rng)
	if err != nil {
		return nil, err
	}
	points := BuildPoints(img)

	workers := resolveWorkers(o.workers)
	logger.LogRunStart(img.Width, img.Height, o.maxIterations, workers, o.earlyStop)
	stats, err := Run(points, clusters, RunConfig{
		MaxIterations: o.maxIterations,
		EarlyStop:     o.earlyStop,
		Workers:       workers,
		Logger:        logger,
		Metrics:       o.metrics,
	})
	if err != nil {
		return nil, err
	}
	iterations = stats.Iterations
	logger.LogRunDone(stats, time.Since(start))

	palette := make([]RGB, len(clusters))
	for i, cl := range clusters {
		palette[i] = cl.Centroid
	}
	assignments := make([]int, len(points))
	for i, p := range points {
		assignments[i] = p.Cluster
	}

	return &Result{
		Image:       Render(points, clusters, img.Width, img.Height),
		Palette:     palette,
		Assignments: assignments,
		Iterations:  stats.Iterations,
		Converged:   stats.Converged,
	}, nil
}

// QuantizeImage is Quantize for any image.Image. Alpha is ignored and the
// result is returned as an opaque RGBA image.
func QuantizeImage(src image.Image, k int, opts ...Option) (*imageutil.RGBAImage, *Result, error) {
	res, err := Quantize(FromImage(src), k, opts...)
	if err != nil {
		return nil, nil, err
	}
	return res.Image.ToRGBAImage(), res, nil
}

func validate(img Image, k int, o options) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if err := validateK(k, len(img.Pix)); err != nil {
		return err
	}
	if o.maxIterations <= 0 {
		return invalidParameter("maxIterations", o.maxIterations, "must be positive")
	}
	if o.workers < 0 {
		return invalidParameter("workers", o.workers, "must not be negative")
	}
	return nil
}
