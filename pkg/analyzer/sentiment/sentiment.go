// Package sentiment scores issue text for polarity with a lexicon-based
// rule scorer and aggregates mood signals across the batch.
package sentiment

import (
	"sort"
	"strings"

	"github.com/issuelens/issuelens/pkg/models"
	"github.com/issuelens/issuelens/pkg/stats"
)

// Analyzer scores and aggregates sentiment over a canonical row table.
type Analyzer struct {
	positiveCutoff float64
	negativeCutoff float64
	moodGood       float64
	moodConcerning float64
	topNegative    int
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithLabelCutoffs sets the per-issue polarity cutoffs for Positive and
// Negative labels.
func WithLabelCutoffs(positive, negative float64) Option {
	return func(a *Analyzer) {
		a.positiveCutoff = positive
		a.negativeCutoff = negative
	}
}

// WithMoodCutoffs sets the batch-average cutoffs for the team mood verdict.
func WithMoodCutoffs(good, concerning float64) Option {
	return func(a *Analyzer) {
		a.moodGood = good
		a.moodConcerning = concerning
	}
}

// New creates a new sentiment analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		positiveCutoff: 0.1,
		negativeCutoff: -0.1,
		moodGood:       0.05,
		moodConcerning: -0.05,
		topNegative:    5,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores every row and aggregates the batch. Rows with blank text
// score 0 and are labeled Neutral.
func (a *Analyzer) Analyze(rows []models.Row) *Analysis {
	res := &Analysis{
		Distribution:      map[string]int{},
		AssigneeSentiment: map[string]float64{},
		TeamMood:          MoodNeutral,
	}

	type scored struct {
		index    int
		polarity float64
	}

	polarities := make([]float64, len(rows))
	ranked := make([]scored, 0, len(rows))
	byAssignee := map[string][]float64{}

	for i, r := range rows {
		polarity := 0.0
		if strings.TrimSpace(r.Text()) != "" {
			polarity = Score(r.Text())
		}
		polarities[i] = polarity
		res.Distribution[a.label(polarity)]++
		byAssignee[r.Assignee] = append(byAssignee[r.Assignee], polarity)
		ranked = append(ranked, scored{index: i, polarity: polarity})
	}

	res.StressIndicators = res.Distribution[LabelNegative]
	res.AvgScore = stats.Round3(stats.Mean(polarities))

	for assignee, scores := range byAssignee {
		res.AssigneeSentiment[assignee] = stats.Round3(stats.Mean(scores))
	}

	// Stable sort keeps original row order on polarity ties.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].polarity < ranked[j].polarity
	})
	for i := 0; i < a.topNegative && i < len(ranked); i++ {
		row := rows[ranked[i].index]
		res.MostNegative = append(res.MostNegative, NegativeIssue{
			Key:      row.Key,
			Summary:  row.Summary,
			Polarity: stats.Round3(ranked[i].polarity),
		})
	}

	switch {
	case res.AvgScore > a.moodGood:
		res.TeamMood = MoodGood
	case res.AvgScore < a.moodConcerning:
		res.TeamMood = MoodConcerning
	}

	return res
}

func (a *Analyzer) label(polarity float64) string {
	switch {
	case polarity > a.positiveCutoff:
		return LabelPositive
	case polarity < a.negativeCutoff:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
