package kquant

import "math/rand"

// Initializer picks the k starting centroids for a run.
type Initializer interface {
	Initialize(img Image, k int, rng *rand.Rand) ([]Cluster, error)
}

// RandomSampler seeds every cluster with the color of a pixel chosen
// uniformly at random, independently per cluster and with replacement, so
// two clusters may start on the same color. This is plain random seeding,
// not k-means++: convergence quality depends on the draw.
type RandomSampler struct{}

func (RandomSampler) Initialize(img Image, k int, rng *rand.Rand) ([]Cluster, error) {
	return InitializeClusters(img, k, rng)
}

// PaletteSeeder starts the clusters on a fixed set of colors, for example a
// palette loaded with LoadPalette. The palette must hold exactly k colors.
type PaletteSeeder struct {
	Palette []RGB
}

func (p PaletteSeeder) Initialize(img Image, k int, _ *rand.Rand) ([]Cluster, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := validateK(k, len(img.Pix)); err != nil {
		return nil, err
	}
	if len(p.Palette) != k {
		return nil, invalidParameter("palette size", len(p.Palette), "must equal k")
	}
	clusters := make([]Cluster, k)
	for i, c := range p.Palette {
		clusters[i] = Cluster{Centroid: c}
	}
	return clusters, nil
}

// InitializeClusters returns k clusters whose centroids are sampled from
// random pixels of img. rng must not be nil.
func InitializeClusters(img Image, k int, rng *rand.Rand) ([]Cluster, error) {
	if err := img.Validate(); err != nil {
		return nil, err
	}
	if err := validateK(k, len(img.Pix)); err != nil {
		return nil, err
	}
	clusters := make([]Cluster, k)
	for i := range clusters {
		x := rng.Intn(img.Width)
		y := rng.Intn(img.Height)
		clusters[i] = Cluster{Centroid: img.At(x, y)}
	}
	return clusters, nil
}

func validateK(k, pixels int) error {
	if k <= 0 {
		return invalidParameter("k", k, "must be positive")
	}
	if k > pixels {
		return invalidParameter("k", k, "exceeds pixel count")
	}
	return nil
}
