package kquant

// Cluster is one of the k color groups. Its centroid is recomputed from
// the points assigned to it after every assignment step, and is left alone
// when no point is assigned.
type Cluster struct {
	Centroid RGB
}

// Distance returns the squared distance between the cluster centroid and c.
func (cl Cluster) Distance(c RGB) int {
	return DistanceSquared(cl.Centroid, c)
}

// Recompute returns the per-channel mean of colors, truncated toward zero.
// An empty set yields prev unchanged.
func Recompute(prev RGB, colors []RGB) RGB {
	var sum clusterSum
	for _, c := range colors {
		sum.add(c)
	}
	return sum.mean(prev)
}

// clusterSum accumulates channel totals for one cluster during the update
// step. uint64 totals cannot overflow for any image that fits in memory.
type clusterSum struct {
	r, g, b uint64
	n       uint64
}

func (s *clusterSum) add(c RGB) {
	s.r += uint64(c.R)
	s.g += uint64(c.G)
	s.b += uint64(c.B)
	s.n++
}

func (s *clusterSum) mean(prev RGB) RGB {
	if s.n == 0 {
		return prev
	}
	return RGB{
		R: uint8(s.r / s.n),
		G: uint8(s.g / s.n),
		B: uint8(s.b / s.n),
	}
}

// nearestCluster returns the index of the cluster whose centroid is closest
// to c. Ties go to the lowest index, as the scan only replaces the current
// best on a strictly smaller distance.
func nearestCluster(c RGB, clusters []Cluster) int {
	best := 0
	bestDist := clusters[0].Distance(c)
	for j := 1; j < len(clusters); j++ {
		if d := clusters[j].Distance(c); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}
