package behavior

import "math/rand"

// maxIterations bounds the Lloyd's loop. Fits on telemetry-sized data
// converge in far fewer passes.
const maxIterations = 100

// kmeansFit partitions points into k centroids using Lloyd's algorithm
// with farthest-point seeding. Only the first centroid is drawn from the
// fixed-seed generator, so the same points and seed always produce the
// same centroids. Callers must guarantee len(points) >= k.
func kmeansFit(points [][]float64, k int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	centroids := seedCentroids(points, k, rng)
	assign := make([]int, len(points))

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range points {
			best := nearest(p, centroids)
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if iter > 0 && !changed {
			break
		}
		recomputeCentroids(points, assign, centroids)
	}
	return centroids
}

// seedCentroids implements farthest-point initialization: the first
// centroid is drawn uniformly, each subsequent one is the point with
// maximal distance to its nearest chosen centroid (first index wins
// ties). Whatever the first pick, well-separated groups each receive a
// seed, which is what keeps fit results label-consistent across retrains.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clonePoint(points[rng.Intn(len(points))]))

	for len(centroids) < k {
		best, bestDist := 0, -1.0
		for i, p := range points {
			if d := sqDist(p, centroids[nearest(p, centroids)]); d > bestDist {
				best, bestDist = i, d
			}
		}
		centroids = append(centroids, clonePoint(points[best]))
	}
	return centroids
}

// recomputeCentroids moves each centroid to the mean of its assigned
// points. A centroid that lost all its points is moved to the point
// farthest from its current assignment, so clusters never go empty.
func recomputeCentroids(points [][]float64, assign []int, centroids [][]float64) {
	dim := len(points[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for i := range sums {
		sums[i] = make([]float64, dim)
	}
	for i, p := range points {
		c := assign[i]
		counts[c]++
		for j, v := range p {
			sums[c][j] += v
		}
	}
	for c := range centroids {
		if counts[c] == 0 {
			far := farthestPoint(points, assign, centroids)
			copy(centroids[c], points[far])
			continue
		}
		for j := range centroids[c] {
			centroids[c][j] = sums[c][j] / float64(counts[c])
		}
	}
}

func farthestPoint(points [][]float64, assign []int, centroids [][]float64) int {
	best, bestDist := 0, -1.0
	for i, p := range points {
		if d := sqDist(p, centroids[assign[i]]); d > bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func nearest(p []float64, centroids [][]float64) int {
	best := 0
	bestDist := sqDist(p, centroids[0])
	for i := 1; i < len(centroids); i++ {
		if d := sqDist(p, centroids[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func clonePoint(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
