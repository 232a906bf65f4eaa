package predict

import (
	"math/rand"

	"github.com/sourcegraph/conc"
)

// forest is a bagged ensemble of regression trees. Each tree gets its own
// seeded source, so fitting is deterministic regardless of goroutine
// scheduling.
type forest struct {
	trees    []*regressionTree
	features int
}

// fitForest trains size trees on bootstrap samples of the training indices.
func fitForest(x [][]float64, y []float64, trainIdx []int, size int, seed int64) *forest {
	f := &forest{
		trees:    make([]*regressionTree, size),
		features: len(x[0]),
	}

	var wg conc.WaitGroup
	for t := 0; t < size; t++ {
		t := t
		wg.Go(func() {
			rng := rand.New(rand.NewSource(seed + int64(t)))
			sample := make([]int, len(trainIdx))
			for i := range sample {
				sample[i] = trainIdx[rng.Intn(len(trainIdx))]
			}
			tree := newRegressionTree(6, 2, f.features)
			tree.fit(x, y, sample)
			f.trees[t] = tree
		})
	}
	wg.Wait()

	return f
}

// predict averages the per-tree predictions for one row.
func (f *forest) predict(row []float64) float64 {
	var sum float64
	for _, t := range f.trees {
		sum += t.predict(row)
	}
	return sum / float64(len(f.trees))
}

// importances returns per-feature importance weights normalized to sum 1.
// All-zero importances (no tree found a useful split) stay all zero.
func (f *forest) importances() []float64 {
	total := make([]float64, f.features)
	for _, t := range f.trees {
		for i, imp := range t.importance {
			total[i] += imp
		}
	}
	var sum float64
	for _, v := range total {
		sum += v
	}
	if sum == 0 {
		return total
	}
	for i := range total {
		total[i] /= sum
	}
	return total
}
