package anomaly

import (
	"math"
	"math/rand"

	"github.com/sourcegraph/conc"
)

// Isolation forest in the style of Liu, Ting and Zhou (2008): anomalies are
// isolated in fewer random splits, so shorter average path lengths mean
// higher anomaly scores.

const (
	defaultTrees     = 100
	maxSubsampleSize = 256
	eulerMascheroni  = 0.5772156649
)

type isoNode struct {
	feature int
	split   float64
	left    *isoNode
	right   *isoNode
	size    int
	leaf    bool
}

type isoForest struct {
	trees     []*isoNode
	subsample int
}

// fitIsoForest builds size isolation trees over x. Each tree draws its own
// subsample and splits with a per-tree seeded source, keeping the fit
// deterministic.
func fitIsoForest(x [][]float64, size int, seed int64) *isoForest {
	subsample := len(x)
	if subsample > maxSubsampleSize {
		subsample = maxSubsampleSize
	}
	heightLimit := int(math.Ceil(math.Log2(float64(subsample) + 1)))

	f := &isoForest{
		trees:     make([]*isoNode, size),
		subsample: subsample,
	}

	var wg conc.WaitGroup
	for t := 0; t < size; t++ {
		t := t
		wg.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(t)))
			idx := rng.Perm(len(x))[:subsample]
			f.trees[t] = buildIsoTree(x, idx, 0, heightLimit, rng)
		})
	}
	wg.Wait()

	return f
}

func buildIsoTree(x [][]float64, idx []int, depth, limit int, rng *rand.Rand) *isoNode {
	if depth >= limit || len(idx) <= 1 {
		return &isoNode{leaf: true, size: len(idx)}
	}

	feature := rng.Intn(len(x[0]))
	lo, hi := x[idx[0]][feature], x[idx[0]][feature]
	for _, i := range idx[1:] {
		v := x[i][feature]
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if lo == hi {
		return &isoNode{leaf: true, size: len(idx)}
	}

	split := lo + rng.Float64()*(hi-lo)
	var left, right []int
	for _, i := range idx {
		if x[i][feature] < split {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &isoNode{
		feature: feature,
		split:   split,
		left:    buildIsoTree(x, left, depth+1, limit, rng),
		right:   buildIsoTree(x, right, depth+1, limit, rng),
	}
}

// score returns the anomaly score in (0, 1); values near 1 are anomalous.
func (f *isoForest) score(row []float64) float64 {
	var total float64
	for _, tree := range f.trees {
		total += pathLength(tree, row, 0)
	}
	avg := total / float64(len(f.trees))
	return math.Pow(2, -avg/avgPathLength(f.subsample))
}

func pathLength(node *isoNode, row []float64, depth float64) float64 {
	if node.leaf {
		return depth + avgPathLength(node.size)
	}
	if row[node.feature] < node.split {
		return pathLength(node.left, row, depth+1)
	}
	return pathLength(node.right, row, depth+1)
}

// avgPathLength is c(n), the expected path length of an unsuccessful BST
// search over n points.
func avgPathLength(n int) float64 {
	switch {
	case n <= 1:
		return 0
	case n == 2:
		return 1
	}
	h := math.Log(float64(n-1)) + eulerMascheroni
	return 2*h - 2*float64(n-1)/float64(n)
}
