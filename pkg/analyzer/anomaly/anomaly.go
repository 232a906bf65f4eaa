// Package anomaly applies unsupervised isolation-forest scoring over numeric
// issue features to surface unusual issues.
package anomaly

import (
	"fmt"
	"math"
	"sort"

	"github.com/issuelens/issuelens/pkg/models"
	"github.com/issuelens/issuelens/pkg/stats"
)

// Analyzer fits the outlier model over a canonical row table. The fitted
// model is call-scoped; the analyzer holds only configuration.
type Analyzer struct {
	seed          int64
	trees         int
	contamination float64
	maxListed     int
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithSeed sets the seed for subsampling and split selection.
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

// WithContamination sets the assumed anomalous fraction of the batch.
func WithContamination(c float64) Option {
	return func(a *Analyzer) {
		if c > 0 && c < 1 {
			a.contamination = c
		}
	}
}

// New creates a new anomaly analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		seed:          42,
		trees:         defaultTrees,
		contamination: 0.1,
		maxListed:     10,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores every row and flags the top contamination fraction as
// anomalous. Batches with fewer than two usable numeric features yield an
// error result; a panic during fitting is recovered into an error result.
func (a *Analyzer) Analyze(rows []models.Row) (analysis *Analysis) {
	if len(rows) == 0 {
		return &Analysis{Err: "insufficient numeric features for anomaly detection"}
	}

	defer func() {
		if r := recover(); r != nil {
			analysis = &Analysis{Err: fmt.Sprintf("anomaly detection failed: %v", r)}
		}
	}()

	hasAge := false
	hasResolution := false
	for _, r := range rows {
		if r.Created != nil {
			hasAge = true
		}
		if r.Resolved() {
			hasResolution = true
		}
	}

	// summary_length is always usable; age and resolution only when some
	// row carries them.
	features := 1
	if hasAge {
		features++
	}
	if hasResolution {
		features++
	}
	if features < 2 {
		return &Analysis{Err: "insufficient numeric features for anomaly detection"}
	}

	x := make([][]float64, len(rows))
	for i, r := range rows {
		row := make([]float64, 0, features)
		if hasAge {
			row = append(row, float64(r.AgeDays))
		}
		if hasResolution {
			days := 0.0
			if r.Resolved() {
				days = float64(*r.ResolutionDays)
			}
			row = append(row, days)
		}
		row = append(row, float64(len(r.Summary)))
		x[i] = row
	}

	model := fitIsoForest(x, a.trees, a.seed)

	type scored struct {
		index int
		score float64
	}
	ranked := make([]scored, len(rows))
	for i := range rows {
		ranked[i] = scored{index: i, score: model.score(x[i])}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	flagN := int(math.Ceil(a.contamination * float64(len(rows))))
	if flagN > len(rows) {
		flagN = len(rows)
	}

	analysis = &Analysis{
		AnomalyCount:      flagN,
		AnomalyPercentage: stats.Round1(float64(flagN) / float64(len(rows)) * 100),
	}
	for i := 0; i < flagN && i < a.maxListed; i++ {
		r := rows[ranked[i].index]
		flagged := Flagged{
			Key:      r.Key,
			Summary:  r.Summary,
			Assignee: r.Assignee,
			Status:   r.Status,
			AgeDays:  r.AgeDays,
		}
		if hasResolution {
			flagged.ResolutionDays = r.ResolutionDays
		}
		analysis.Anomalies = append(analysis.Anomalies, flagged)
	}

	return analysis
}
