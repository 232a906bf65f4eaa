// Package engine composes the individual analyzers into one issue-analytics
// report.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/issuelens/issuelens/pkg/analyzer/anomaly"
	"github.com/issuelens/issuelens/pkg/analyzer/basic"
	"github.com/issuelens/issuelens/pkg/analyzer/bottleneck"
	"github.com/issuelens/issuelens/pkg/analyzer/normalize"
	"github.com/issuelens/issuelens/pkg/analyzer/predict"
	"github.com/issuelens/issuelens/pkg/analyzer/sentiment"
	"github.com/issuelens/issuelens/pkg/analyzer/team"
	"github.com/issuelens/issuelens/pkg/analyzer/timeseries"
	"github.com/issuelens/issuelens/pkg/config"
	"github.com/issuelens/issuelens/pkg/models"
)

// Options selects which optional analyses run. The zero value disables all
// of them; start from DefaultOptions to run everything.
type Options struct {
	Sentiment  bool
	Predictive bool
	Bottleneck bool
}

// DefaultOptions enables every optional analysis.
func DefaultOptions() Options {
	return Options{Sentiment: true, Predictive: true, Bottleneck: true}
}

// Engine runs a full analysis over one batch of issue records. It holds
// configuration and a logger only; all model state is call-scoped, so a
// single engine is safe for concurrent AnalyzeIssues calls.
type Engine struct {
	cfg *config.Config
	log zerolog.Logger
	now func() time.Time
}

// Option is a functional option for configuring Engine.
type Option func(*Engine)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) Option {
	return func(e *Engine) {
		e.log = log
	}
}

// WithNow sets the clock shared by all analyzers (useful for testing).
func WithNow(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// New creates an engine. A nil cfg uses defaults.
func New(cfg *config.Config, opts ...Option) *Engine {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	e := &Engine{
		cfg: cfg,
		log: zerolog.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeIssues runs all enabled analyses over the batch in a fixed order
// and assembles the report. An empty batch short-circuits to a top-level
// error report; per-analysis failures stay local to their section.
func (e *Engine) AnalyzeIssues(issues []models.Issue, opts Options) *Report {
	if len(issues) == 0 {
		e.log.Warn().Msg("no issues provided for analysis")
		return &Report{Err: "No issues to analyze"}
	}

	e.log.Info().Int("issues", len(issues)).Msg("starting analysis")

	th := e.cfg.Thresholds
	rows := normalize.New(
		normalize.WithOverdueDays(th.OverdueDays),
		normalize.WithNow(e.now),
	).Rows(issues)

	ts := timeseries.New(timeseries.WithNow(e.now))
	tm := team.New(
		team.WithVelocityWindow(th.VelocityWindowDays),
		team.WithNow(e.now),
	)

	report := &Report{
		BasicMetrics:    basic.New().Analyze(rows),
		TimeAnalysis:    ts.Patterns(rows),
		TeamPerformance: tm.Performance(rows),
		Workload:        tm.WorkloadDistribution(rows),
		TrendAnalysis:   ts.Trends(rows),
	}

	if opts.Sentiment {
		report.Sentiment = sentiment.New(
			sentiment.WithLabelCutoffs(th.SentimentPositive, th.SentimentNegative),
			sentiment.WithMoodCutoffs(th.MoodGood, th.MoodConcerning),
		).Analyze(rows)
	}

	if opts.Bottleneck {
		report.Bottlenecks = bottleneck.New(
			bottleneck.WithStatusShare(th.StatusSharePct, th.StatusShareHighPct),
			bottleneck.WithOverloadFactors(th.OverloadFactor, th.OverloadHighFactor),
			bottleneck.WithAgingDays(th.AgingDays),
			bottleneck.WithHighPriorityDelay(th.HighPriorityDelayDays),
		).Detect(rows)
	}

	if opts.Predictive {
		m := e.cfg.Model
		report.Predictive = predict.New(
			predict.WithSeed(m.Seed),
			predict.WithTrees(m.Trees),
			predict.WithMinRows(m.MinRows),
			predict.WithTestFraction(m.TestFraction),
		).Analyze(rows)
		report.Anomalies = anomaly.New(
			anomaly.WithSeed(m.Seed),
			anomaly.WithTrees(m.Trees),
			anomaly.WithContamination(m.Contamination),
		).Analyze(rows)
	}

	e.log.Info().Msg("analysis completed")
	return report
}
