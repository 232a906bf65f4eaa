// Package predict trains a bagged regression-tree ensemble on derived issue
// features to rank issues by likelihood of becoming a blocker.
package predict

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/issuelens/issuelens/pkg/models"
	"github.com/issuelens/issuelens/pkg/stats"
)

// Analyzer fits the risk model over a canonical row table. The fitted model
// is call-scoped; the analyzer itself holds only configuration and is safe
// for concurrent use.
type Analyzer struct {
	seed         int64
	trees        int
	minRows      int
	testFraction float64
	topBlockers  int
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithSeed sets the seed for bootstrap sampling and the train/test split.
func WithSeed(seed int64) Option {
	return func(a *Analyzer) {
		a.seed = seed
	}
}

// WithTrees sets the ensemble size.
func WithTrees(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.trees = n
		}
	}
}

// WithMinRows sets the minimum batch size required for training.
func WithMinRows(n int) Option {
	return func(a *Analyzer) {
		if n > 0 {
			a.minRows = n
		}
	}
}

// WithTestFraction sets the held-out share of the batch.
func WithTestFraction(f float64) Option {
	return func(a *Analyzer) {
		if f > 0 && f < 1 {
			a.testFraction = f
		}
	}
}

// New creates a new predictive analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		seed:         42,
		trees:        50,
		minRows:      10,
		testFraction: 0.3,
		topBlockers:  5,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze trains the model and scores every row. Insufficient data and
// single-class labels surface as error results; a panic during fitting is
// recovered into an error result rather than propagated.
func (a *Analyzer) Analyze(rows []models.Row) (insights *Insights) {
	if len(rows) < a.minRows {
		return &Insights{Err: "insufficient data for predictions"}
	}

	defer func() {
		if r := recover(); r != nil {
			insights = &Insights{Err: fmt.Sprintf("prediction failed: %v", r)}
		}
	}()

	x := featureMatrix(rows)
	y := proxyLabels(rows)

	if singleClass(y) {
		return &Insights{Err: "insufficient class diversity for prediction"}
	}

	// Hold out a test split; it only confirms the fit ran, scores below
	// cover the full batch.
	rng := rand.New(rand.NewSource(a.seed))
	perm := rng.Perm(len(rows))
	testN := int(float64(len(rows)) * a.testFraction)
	trainIdx := perm[testN:]

	model := fitForest(x, y, trainIdx, a.trees, a.seed)

	scored := make([]Blocker, len(rows))
	for i, r := range rows {
		scored[i] = Blocker{
			Key:         r.Key,
			Summary:     r.Summary,
			Assignee:    r.Assignee,
			Priority:    r.Priority,
			AgeDays:     r.AgeDays,
			Probability: stats.Round3(model.predict(x[i])),
		}
	}

	// Stable sort keeps original row order on probability ties.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Probability > scored[j].Probability
	})
	top := scored
	if len(top) > a.topBlockers {
		top = top[:a.topBlockers]
	}

	importance := map[string]float64{}
	for i, w := range model.importances() {
		importance[featureNames[i]] = stats.Round3(w)
	}

	return &Insights{
		PotentialBlockers: top,
		ModelStatus:       "Trained successfully",
		FeatureImportance: importance,
		PredictionsMade:   len(rows),
	}
}

// featureMatrix derives the numeric feature columns for every row.
func featureMatrix(rows []models.Row) [][]float64 {
	x := make([][]float64, len(rows))
	for i, r := range rows {
		score, ok := priorityScores[r.Priority]
		if !ok {
			score = defaultPriorityScore
		}
		hasDescription := 0.0
		if r.Description != "" {
			hasDescription = 1
		}
		x[i] = []float64{
			float64(r.AgeDays),
			score,
			float64(len(r.Summary)),
			hasDescription,
		}
	}
	return x
}

// proxyLabels builds the binary blocker proxy: above-75th-percentile
// resolution time when resolution data exists, old age otherwise.
func proxyLabels(rows []models.Row) []float64 {
	var resolution []float64
	for _, r := range rows {
		if r.Resolved() {
			resolution = append(resolution, float64(*r.ResolutionDays))
		}
	}

	y := make([]float64, len(rows))
	if len(resolution) > 0 {
		cutoff := stats.Quantile(resolution, 0.75)
		for i, r := range rows {
			if r.Resolved() && float64(*r.ResolutionDays) > cutoff {
				y[i] = 1
			}
		}
		return y
	}

	for i, r := range rows {
		if r.AgeDays > 30 {
			y[i] = 1
		}
	}
	return y
}

func singleClass(y []float64) bool {
	for _, v := range y[1:] {
		if v != y[0] {
			return false
		}
	}
	return true
}
