// Package bottleneck applies threshold rules over aggregated distributions
// to flag workflow pathologies and suggest remediations.
package bottleneck

import (
	"fmt"
	"sort"

	"github.com/issuelens/issuelens/pkg/models"
)

// Detector evaluates the bottleneck rules over a canonical row table.
type Detector struct {
	statusSharePct     float64
	statusShareHighPct float64
	overloadFactor     float64
	overloadHighFactor float64
	agingDays          int
	highPriorityDays   int
}

// Option is a functional option for configuring Detector.
type Option func(*Detector)

// WithStatusShare sets the flag and High-severity percentages for the
// status rule.
func WithStatusShare(flagPct, highPct float64) Option {
	return func(d *Detector) {
		d.statusSharePct = flagPct
		d.statusShareHighPct = highPct
	}
}

// WithOverloadFactors sets the flag and High-severity multiples of the
// per-assignee mean for the overload rule.
func WithOverloadFactors(flag, high float64) Option {
	return func(d *Detector) {
		d.overloadFactor = flag
		d.overloadHighFactor = high
	}
}

// WithAgingDays sets the age cutoff for the aging-issues rule.
func WithAgingDays(days int) Option {
	return func(d *Detector) {
		if days > 0 {
			d.agingDays = days
		}
	}
}

// WithHighPriorityDelay sets the age cutoff for the high-priority rule.
func WithHighPriorityDelay(days int) Option {
	return func(d *Detector) {
		if days > 0 {
			d.highPriorityDays = days
		}
	}
}

// New creates a new bottleneck detector.
func New(opts ...Option) *Detector {
	d := &Detector{
		statusSharePct:     40,
		statusShareHighPct: 60,
		overloadFactor:     2,
		overloadHighFactor: 3,
		agingDays:          60,
		highPriorityDays:   14,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect runs every rule independently and collects the flags.
func (d *Detector) Detect(rows []models.Row) *Analysis {
	analysis := &Analysis{Bottlenecks: []Flag{}}
	if len(rows) == 0 {
		analysis.Recommendations = []string{}
		return analysis
	}

	analysis.Bottlenecks = append(analysis.Bottlenecks, d.statusFlags(rows)...)
	analysis.Bottlenecks = append(analysis.Bottlenecks, d.overloadFlags(rows)...)
	analysis.Bottlenecks = append(analysis.Bottlenecks, d.agingFlags(rows)...)
	analysis.Bottlenecks = append(analysis.Bottlenecks, d.priorityFlags(rows)...)

	analysis.BottleneckCount = len(analysis.Bottlenecks)
	for _, f := range analysis.Bottlenecks {
		if f.Severity == SeverityCritical {
			analysis.CriticalCount++
		}
	}
	analysis.Recommendations = recommendations(analysis.Bottlenecks)
	return analysis
}

// statusFlags fires when a non-terminal status holds strictly more than the
// configured share of the batch.
func (d *Detector) statusFlags(rows []models.Row) []Flag {
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Status]++
	}

	statuses := make([]string, 0, len(counts))
	for s := range counts {
		statuses = append(statuses, s)
	}
	sort.Strings(statuses)

	var flags []Flag
	total := float64(len(rows))
	for _, status := range statuses {
		if models.IsTerminalStatus(status) {
			continue
		}
		pct := float64(counts[status]) / total * 100
		if pct <= d.statusSharePct {
			continue
		}
		severity := SeverityMedium
		if pct > d.statusShareHighPct {
			severity = SeverityHigh
		}
		flags = append(flags, Flag{
			Type:          TypeStatus,
			Description:   fmt.Sprintf("Too many issues in '%s' status (%.1f%%)", status, pct),
			Severity:      severity,
			AffectedCount: counts[status],
		})
	}
	return flags
}

// overloadFlags fires per assignee holding more than overloadFactor times
// the mean issues per assignee.
func (d *Detector) overloadFlags(rows []models.Row) []Flag {
	counts := map[string]int{}
	for _, r := range rows {
		counts[r.Assignee]++
	}

	assignees := make([]string, 0, len(counts))
	for name := range counts {
		if name != models.Unassigned {
			assignees = append(assignees, name)
		}
	}
	if len(assignees) == 0 {
		return nil
	}
	sort.Strings(assignees)

	avg := float64(len(rows)) / float64(len(assignees))

	var flags []Flag
	for _, name := range assignees {
		count := counts[name]
		if float64(count) <= avg*d.overloadFactor {
			continue
		}
		severity := SeverityMedium
		if float64(count) > avg*d.overloadHighFactor {
			severity = SeverityHigh
		}
		flags = append(flags, Flag{
			Type:          TypeOverload,
			Description:   fmt.Sprintf("%s has %d issues (avg: %.1f)", name, count, avg),
			Severity:      severity,
			AffectedCount: count,
		})
	}
	return flags
}

// agingFlags emits a single flag counting all issues older than agingDays.
func (d *Detector) agingFlags(rows []models.Row) []Flag {
	old := 0
	for _, r := range rows {
		if r.AgeDays > d.agingDays {
			old++
		}
	}
	if old == 0 {
		return nil
	}
	return []Flag{{
		Type:          TypeAging,
		Description:   fmt.Sprintf("%d issues are over %d days old", old, d.agingDays),
		Severity:      SeverityMedium,
		AffectedCount: old,
	}}
}

// priorityFlags emits a single Critical flag for delayed high-priority work.
func (d *Detector) priorityFlags(rows []models.Row) []Flag {
	delayed := 0
	for _, r := range rows {
		if models.IsHighPriority(r.Priority) && r.AgeDays > d.highPriorityDays {
			delayed++
		}
	}
	if delayed == 0 {
		return nil
	}
	return []Flag{{
		Type:          TypeHighDelay,
		Description:   fmt.Sprintf("%d high priority issues are over %d days old", delayed, d.highPriorityDays),
		Severity:      SeverityCritical,
		AffectedCount: delayed,
	}}
}

// recommendations maps each flag to a fixed advisory line, appending a
// sprint-planning review when many rules fire at once.
func recommendations(flags []Flag) []string {
	recs := make([]string, 0, len(flags))
	for _, f := range flags {
		switch f.Type {
		case TypeStatus:
			recs = append(recs, fmt.Sprintf("Review workflow for '%s' - consider breaking down tasks", f.Description))
		case TypeOverload:
			recs = append(recs, fmt.Sprintf("Redistribute workload - %s", f.Description))
		case TypeAging:
			recs = append(recs, "Review and prioritize old issues - consider closing obsolete ones")
		case TypeHighDelay:
			recs = append(recs, "Urgent: Review high priority issues that are delayed")
		}
	}
	if len(flags) > 3 {
		recs = append(recs, "Consider sprint planning review to address multiple bottlenecks")
	}
	return recs
}
