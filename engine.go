package kquant

import (
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
)

// Point is one pixel of the image being quantized. Cluster is the index of
// the cluster the pixel currently belongs to and is the only field the loop
// mutates.
type Point struct {
	X, Y    int
	Color   RGB
	Cluster int
}

// BuildPoints converts every pixel of img into a Point, in row-major order.
// Every point starts in cluster 0; the first assignment step overwrites it
// before it is read.
func BuildPoints(img Image) []Point {
	points := make([]Point, 0, img.Width*img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			points = append(points, Point{
				X:     x,
				Y:     y,
				Color: img.Pix[y*img.Width+x],
			})
		}
	}
	return points
}

// RunConfig controls the assignment/update loop.
type RunConfig struct {
	// MaxIterations is the number of rounds to run. Must be positive.
	MaxIterations int
	// EarlyStop ends the loop once a round reassigns no point.
	EarlyStop bool
	// Workers is the number of goroutines used for the assignment step.
	// Values below 2 run serially.
	Workers int
	// Logger and Metrics may be nil.
	Logger  *Logger
	Metrics MetricsCollector
}

// RunStats reports what the loop did.
type RunStats struct {
	// Iterations is the number of completed assignment/update rounds.
	Iterations int
	// Converged is true when the last assignment step changed nothing.
	Converged bool
}

// Run executes the k-means loop on points and clusters, mutating both in
// place. Each round first assigns every point to its nearest centroid and
// only then recomputes every centroid from its points, so no centroid is
// written while assignments of the same round are still being read.
//
// The cost is O(MaxIterations * len(points) * len(clusters)): every point is
// compared against every centroid, there is no spatial index.
//
// A non-positive MaxIterations, negative Workers or empty clusters slice
// returns an error wrapping ErrInvalidParameter before anything is touched.
func Run(points []Point, clusters []Cluster, cfg RunConfig) (RunStats, error) {
	if cfg.MaxIterations <= 0 {
		return RunStats{}, invalidParameter("maxIterations", cfg.MaxIterations, "must be positive")
	}
	if cfg.Workers < 0 {
		return RunStats{}, invalidParameter("workers", cfg.Workers, "must not be negative")
	}
	if len(clusters) == 0 {
		return RunStats{}, invalidParameter("k", 0, "must be positive")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NoopLogger()
	}
	metrics := cfg.Metrics
	if metrics == nil {
		metrics = NoopMetricsCollector{}
	}

	var stats RunStats
	sums := make([]clusterSum, len(clusters))
	for iter := 0; iter < cfg.MaxIterations; iter++ {
		start := time.Now()

		changed := assign(points, clusters, cfg.Workers)
		// The first round compares against the zero placeholder, so it never
		// counts as convergence.
		stats.Converged = iter > 0 && changed == 0
		if stats.Converged && cfg.EarlyStop {
			metrics.RecordIteration(changed, time.Since(start))
			logger.LogIteration(iter, changed)
			break
		}

		update(points, clusters, sums)
		stats.Iterations++

		metrics.RecordIteration(changed, time.Since(start))
		logger.LogIteration(iter, changed)
	}
	return stats, nil
}

// assign moves every point to its nearest cluster and returns how many
// points changed cluster.
func assign(points []Point, clusters []Cluster, workers int) int {
	if workers < 2 || len(points) < 2*workers {
		return assignRange(points, clusters)
	}

	chunk := (len(points) + workers - 1) / workers
	changed := make([]int, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(points) {
			break
		}
		end := min(start+chunk, len(points))
		w := w
		g.Go(func() error {
			changed[w] = assignRange(points[start:end], clusters)
			return nil
		})
	}
	_ = g.Wait() // workers never fail

	total := 0
	for _, c := range changed {
		total += c
	}
	return total
}

func assignRange(points []Point, clusters []Cluster) int {
	changed := 0
	for i := range points {
		best := nearestCluster(points[i].Color, clusters)
		if points[i].Cluster != best {
			points[i].Cluster = best
			changed++
		}
	}
	return changed
}

// update recomputes every centroid from the points assigned to it. Clusters
// without points keep their centroid. sums is scratch space of len(clusters).
func update(points []Point, clusters []Cluster, sums []clusterSum) {
	for j := range sums {
		sums[j] = clusterSum{}
	}
	for i := range points {
		sums[points[i].Cluster].add(points[i].Color)
	}
	for j := range clusters {
		clusters[j].Centroid = sums[j].mean(clusters[j].Centroid)
	}
}

// Render paints every point with the centroid of its cluster. The result has
// the given dimensions and at most len(clusters) distinct colors.
func Render(points []Point, clusters []Cluster, width, height int) Image {
	out := NewImage(width, height)
	for _, p := range points {
		out.Set(p.X, p.Y, clusters[p.Cluster].Centroid)
	}
	return out
}

func resolveWorkers(n int) int {
	if n == 0 {
		return runtime.GOMAXPROCS(0)
	}
	return n
}
