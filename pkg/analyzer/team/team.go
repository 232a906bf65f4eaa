// Package team computes per-assignee performance metrics, team velocity, and
// open-issue workload distribution.
package team

import (
	"sort"
	"time"

	"github.com/issuelens/issuelens/pkg/models"
	"github.com/issuelens/issuelens/pkg/stats"
)

// Analyzer computes team metrics over a canonical row table.
type Analyzer struct {
	velocityDays int
	now          func() time.Time
}

// Option is a functional option for configuring Analyzer.
type Option func(*Analyzer)

// WithVelocityWindow sets the recently-resolved window in days.
func WithVelocityWindow(days int) Option {
	return func(a *Analyzer) {
		if days > 0 {
			a.velocityDays = days
		}
	}
}

// WithNow sets the clock used for the velocity window (useful for testing).
func WithNow(now func() time.Time) Option {
	return func(a *Analyzer) {
		a.now = now
	}
}

// New creates a new team analyzer.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		velocityDays: 30,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Performance computes per-assignee metrics, velocity, and the extremal
// performers. Unassigned rows are excluded from individual metrics.
func (a *Analyzer) Performance(rows []models.Row) *Performance {
	perf := &Performance{
		IndividualMetrics: map[string]AssigneeMetrics{},
	}

	byAssignee := map[string][]models.Row{}
	for _, r := range rows {
		if r.Assignee == models.Unassigned {
			continue
		}
		byAssignee[r.Assignee] = append(byAssignee[r.Assignee], r)
	}

	for assignee, group := range byAssignee {
		m := AssigneeMetrics{TotalAssigned: len(group)}
		var resolution []float64
		for _, r := range group {
			if models.IsOpenStatus(r.Status) {
				m.OpenIssues++
			}
			if r.Resolved() {
				resolution = append(resolution, float64(*r.ResolutionDays))
			}
		}
		m.AvgResolutionDays = stats.Round1(stats.Mean(resolution))
		m.WorkloadScore = m.TotalAssigned + 2*m.OpenIssues
		perf.IndividualMetrics[assignee] = m
	}
	perf.TeamSize = len(perf.IndividualMetrics)

	cutoff := a.now().AddDate(0, 0, -a.velocityDays)
	for _, r := range rows {
		if r.Updated != nil && !r.Updated.Before(cutoff) && models.IsTerminalStatus(r.Status) {
			perf.MonthlyVelocity++
		}
	}

	// Sorted scan keeps ties deterministic.
	assignees := make([]string, 0, len(perf.IndividualMetrics))
	for name := range perf.IndividualMetrics {
		assignees = append(assignees, name)
	}
	sort.Strings(assignees)

	bestAvg := 0.0
	maxScore := -1
	for _, name := range assignees {
		m := perf.IndividualMetrics[name]
		if m.AvgResolutionDays > 0 && (perf.BestPerformer == "" || m.AvgResolutionDays < bestAvg) {
			perf.BestPerformer = name
			bestAvg = m.AvgResolutionDays
		}
		if m.WorkloadScore > maxScore {
			perf.MostOverloaded = name
			maxScore = m.WorkloadScore
		}
	}

	return perf
}

// WorkloadDistribution measures how evenly open issues spread across
// assignees. A batch with no assigned open issues yields an error result.
func (a *Analyzer) WorkloadDistribution(rows []models.Row) *Workload {
	w := &Workload{
		CurrentWorkload: map[string]int{},
		Overloaded:      map[string]int{},
		Underloaded:     map[string]int{},
	}

	for _, r := range rows {
		if !models.IsWorkableStatus(r.Status) {
			continue
		}
		w.TotalOpen++
		w.CurrentWorkload[r.Assignee]++
	}

	assigned := map[string]int{}
	for name, count := range w.CurrentWorkload {
		if name != models.Unassigned {
			assigned[name] = count
		}
	}
	if len(assigned) == 0 {
		return &Workload{Err: "no assigned issues found"}
	}

	loads := make([]float64, 0, len(assigned))
	for _, count := range assigned {
		loads = append(loads, float64(count))
	}

	avg := stats.Mean(loads)
	sd := stats.StdDev(loads)
	w.AvgWorkloadPerPerson = stats.Round1(avg)
	w.WorkloadStdDev = stats.Round1(sd)

	balance := 1.0
	if avg > 0 {
		balance = sd / avg
	}
	w.BalanceScore = stats.Round3(balance)
	switch {
	case balance < 0.3:
		w.BalanceRating = "Good"
	case balance < 0.6:
		w.BalanceRating = "Fair"
	default:
		w.BalanceRating = "Poor"
	}

	for name, count := range assigned {
		if float64(count) > avg+sd {
			w.Overloaded[name] = count
		}
		if float64(count) < avg-sd {
			w.Underloaded[name] = count
		}
	}

	return w
}
