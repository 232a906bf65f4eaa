// Package basic computes batch-wide counts, distributions, and
// resolution-time statistics.
package basic

import (
	"github.com/issuelens/issuelens/pkg/models"
	"github.com/issuelens/issuelens/pkg/stats"
)

// Analyzer computes the basic metrics for a canonical row table.
type Analyzer struct{}

// New creates a new basic metrics analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze aggregates the table. An empty table yields zero counts and empty
// distributions, never an error.
func (a *Analyzer) Analyze(rows []models.Row) *Metrics {
	m := &Metrics{
		TotalIssues:          len(rows),
		StatusDistribution:   map[string]int{},
		PriorityDistribution: map[string]int{},
		TypeDistribution:     map[string]int{},
		AssigneeDistribution: map[string]int{},
	}
	if len(rows) == 0 {
		return m
	}

	var resolution []float64
	for _, r := range rows {
		m.StatusDistribution[r.Status]++
		m.PriorityDistribution[r.Priority]++
		if r.IssueType != "" {
			m.TypeDistribution[r.IssueType]++
		}
		m.AssigneeDistribution[r.Assignee]++
		if r.Resolved() {
			resolution = append(resolution, float64(*r.ResolutionDays))
		}
		if r.Overdue {
			m.OverdueCount++
		}
	}

	m.AvgResolutionDays = stats.Round1(stats.Mean(resolution))
	m.MedianResolutionDays = stats.Round1(stats.Median(resolution))

	unassigned := m.AssigneeDistribution[models.Unassigned]
	m.UnassignedPercentage = stats.Round1(float64(unassigned) / float64(m.TotalIssues) * 100)

	return m
}
