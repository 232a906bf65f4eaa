package predict

// Regression tree fit by variance reduction. Kept deliberately small: the
// target is a binary proxy label treated as a continuous value in [0,1], so
// shallow trees with a handful of numeric features are plenty.

type treeNode struct {
	feature   int
	threshold float64
	left      *treeNode
	right     *treeNode
	value     float64
	leaf      bool
}

type regressionTree struct {
	root       *treeNode
	maxDepth   int
	minSamples int

	// importance accumulates the total squared-error reduction
	// contributed by each feature across all splits.
	importance []float64
}

func newRegressionTree(maxDepth, minSamples, features int) *regressionTree {
	return &regressionTree{
		maxDepth:   maxDepth,
		minSamples: minSamples,
		importance: make([]float64, features),
	}
}

func (t *regressionTree) fit(x [][]float64, y []float64, idx []int) {
	t.root = t.build(x, y, idx, 0)
}

func (t *regressionTree) build(x [][]float64, y []float64, idx []int, depth int) *treeNode {
	if depth >= t.maxDepth || len(idx) < t.minSamples*2 || pure(y, idx) {
		return &treeNode{leaf: true, value: mean(y, idx)}
	}

	feature, threshold, gain, ok := t.bestSplit(x, y, idx)
	if !ok {
		return &treeNode{leaf: true, value: mean(y, idx)}
	}
	t.importance[feature] += gain

	var left, right []int
	for _, i := range idx {
		if x[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &treeNode{
		feature:   feature,
		threshold: threshold,
		left:      t.build(x, y, left, depth+1),
		right:     t.build(x, y, right, depth+1),
	}
}

// bestSplit scans every feature and candidate threshold for the split with
// the largest squared-error reduction.
func (t *regressionTree) bestSplit(x [][]float64, y []float64, idx []int) (feature int, threshold, gain float64, ok bool) {
	parentSSE := sse(y, idx)
	best := 0.0

	for f := range x[idx[0]] {
		thresholds := candidateThresholds(x, idx, f)
		for _, th := range thresholds {
			var leftSum, rightSum float64
			var leftN, rightN int
			for _, i := range idx {
				if x[i][f] <= th {
					leftSum += y[i]
					leftN++
				} else {
					rightSum += y[i]
					rightN++
				}
			}
			if leftN < t.minSamples || rightN < t.minSamples {
				continue
			}

			leftMean := leftSum / float64(leftN)
			rightMean := rightSum / float64(rightN)
			var childSSE float64
			for _, i := range idx {
				if x[i][f] <= th {
					d := y[i] - leftMean
					childSSE += d * d
				} else {
					d := y[i] - rightMean
					childSSE += d * d
				}
			}

			if g := parentSSE - childSSE; g > best {
				best = g
				feature = f
				threshold = th
				ok = true
			}
		}
	}
	return feature, threshold, best, ok
}

func (t *regressionTree) predict(row []float64) float64 {
	node := t.root
	for !node.leaf {
		if row[node.feature] <= node.threshold {
			node = node.left
		} else {
			node = node.right
		}
	}
	return node.value
}

// candidateThresholds returns midpoints between consecutive distinct values
// of feature f within idx.
func candidateThresholds(x [][]float64, idx []int, f int) []float64 {
	seen := map[float64]bool{}
	values := make([]float64, 0, len(idx))
	for _, i := range idx {
		v := x[i][f]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	if len(values) < 2 {
		return nil
	}
	sortFloats(values)
	mids := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		mids = append(mids, (values[i-1]+values[i])/2)
	}
	return mids
}

func mean(y []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	var sum float64
	for _, i := range idx {
		sum += y[i]
	}
	return sum / float64(len(idx))
}

func sse(y []float64, idx []int) float64 {
	m := mean(y, idx)
	var total float64
	for _, i := range idx {
		d := y[i] - m
		total += d * d
	}
	return total
}

func pure(y []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if y[i] != y[idx[0]] {
			return false
		}
	}
	return true
}

// sortFloats is an insertion sort; threshold candidate lists are tiny.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
