package kquant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecompute(t *testing.T) {
	prev := RGB{R: 1, G: 2, B: 3}

	t.Run("empty keeps previous centroid", func(t *testing.T) {
		assert.Equal(t, prev, Recompute(prev, nil))
	})

	t.Run("single color", func(t *testing.T) {
		c := RGB{R: 200, G: 100, B: 50}
		assert.Equal(t, c, Recompute(prev, []RGB{c}))
	})

	t.Run("mean is floored", func(t *testing.T) {
		got := Recompute(prev, []RGB{
			{R: 255, G: 255, B: 255},
			{R: 254, G: 0, B: 1},
		})
		assert.Equal(t, RGB{R: 254, G: 127, B: 128}, got)

		got = Recompute(prev, []RGB{{R: 1, G: 1, B: 1}, {R: 2, G: 2, B: 2}, {R: 2, G: 2, B: 2}})
		assert.Equal(t, RGB{R: 1, G: 1, B: 1}, got)
	})
}

func TestClusterDistance(t *testing.T) {
	cl := Cluster{Centroid: RGB{R: 10}}
	assert.Equal(t, 100, cl.Distance(RGB{}))
}

func TestNearestClusterTieBreak(t *testing.T) {
	clusters := []Cluster{
		{Centroid: RGB{R: 255}},
		{Centroid: RGB{G: 255}},
		{Centroid: RGB{B: 255}},
	}
	// Equidistant from every centroid: the lowest index wins.
	assert.Equal(t, 0, nearestCluster(RGB{}, clusters))
	// Equidistant from clusters 1 and 2 only.
	assert.Equal(t, 1, nearestCluster(RGB{G: 200, B: 200}, clusters))
	// Duplicate centroids: the first copy wins.
	dup := []Cluster{{Centroid: RGB{R: 9}}, {Centroid: RGB{R: 5}}, {Centroid: RGB{R: 5}}}
	assert.Equal(t, 1, nearestCluster(RGB{R: 5}, dup))
}
