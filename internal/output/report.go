package output

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/issuelens/issuelens/pkg/engine"
)

// RenderReport writes a full analysis report in the formatter's format.
// Sections carrying an error render as a warning banner, matching the
// dashboard contract for partial results.
func RenderReport(f *Formatter, rep *engine.Report) error {
	if f.Format() == FormatJSON {
		return f.JSON(rep)
	}

	if rep.Err != "" {
		f.Warn("Analysis failed: %s", rep.Err)
		return nil
	}

	renderBasic(f, rep)
	renderTime(f, rep)
	renderTeam(f, rep)
	renderWorkload(f, rep)
	renderTrend(f, rep)
	renderSentiment(f, rep)
	renderBottlenecks(f, rep)
	renderPredictive(f, rep)
	renderAnomalies(f, rep)
	return nil
}

func renderBasic(f *Formatter, rep *engine.Report) {
	m := rep.BasicMetrics
	if m == nil {
		return
	}
	f.Heading("Basic Metrics")
	f.Line("Total issues: %d", m.TotalIssues)
	f.Line("Avg resolution: %.1f days (median %.1f)", m.AvgResolutionDays, m.MedianResolutionDays)
	f.Line("Unassigned: %.1f%%  Overdue: %d", m.UnassignedPercentage, m.OverdueCount)
	f.Line("")
	f.Table([]string{"Status", "Count"}, countRows(m.StatusDistribution))
	f.Table([]string{"Priority", "Count"}, countRows(m.PriorityDistribution))
}

func renderTime(f *Formatter, rep *engine.Report) {
	t := rep.TimeAnalysis
	if t == nil {
		return
	}
	f.Heading("Time Patterns")
	if t.Err != "" {
		f.Warn("warning: %s", t.Err)
		return
	}
	f.Line("Peak creation hour: %02d:00", t.PeakHour)
	f.Line("Peak creation day: %s", t.PeakDay)
	if t.Resolution != nil {
		d := t.Resolution.Distribution
		f.Line("Resolution days: min %.0f / p50 %.0f / p75 %.0f / max %.0f (n=%d)",
			d.Min, d.P50, d.P75, d.Max, d.Count)
	}
	f.Line("")
}

func renderTeam(f *Formatter, rep *engine.Report) {
	t := rep.TeamPerformance
	if t == nil {
		return
	}
	f.Heading("Team Performance")
	f.Line("Team size: %d  Monthly velocity: %d", t.TeamSize, t.MonthlyVelocity)
	if t.BestPerformer != "" {
		f.Line("Best performer: %s", t.BestPerformer)
	}
	if t.MostOverloaded != "" {
		f.Line("Most overloaded: %s", t.MostOverloaded)
	}
	f.Line("")

	names := make([]string, 0, len(t.IndividualMetrics))
	for name := range t.IndividualMetrics {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		m := t.IndividualMetrics[name]
		rows = append(rows, []string{
			name,
			strconv.Itoa(m.TotalAssigned),
			strconv.Itoa(m.OpenIssues),
			fmt.Sprintf("%.1f", m.AvgResolutionDays),
			strconv.Itoa(m.WorkloadScore),
		})
	}
	f.Table([]string{"Assignee", "Assigned", "Open", "Avg Days", "Workload"}, rows)
}

func renderWorkload(f *Formatter, rep *engine.Report) {
	w := rep.Workload
	if w == nil {
		return
	}
	f.Heading("Workload Distribution")
	if w.Err != "" {
		f.Warn("warning: %s", w.Err)
		return
	}
	f.Line("Open issues: %d  Avg/person: %.1f  Stddev: %.1f", w.TotalOpen, w.AvgWorkloadPerPerson, w.WorkloadStdDev)
	f.Line("Balance: %s (score %.3f)", w.BalanceRating, w.BalanceScore)
	for _, name := range sortedKeys(w.Overloaded) {
		f.Warn("Overloaded: %s (%d open)", name, w.Overloaded[name])
	}
	f.Line("")
}

func renderTrend(f *Formatter, rep *engine.Report) {
	t := rep.TrendAnalysis
	if t == nil {
		return
	}
	f.Heading("Creation Trend")
	if t.Err != "" {
		f.Warn("warning: %s", t.Err)
		return
	}
	f.Line("Direction: %s (slope %.2f/week)", t.Direction, t.Slope)
	f.Line("This week: %d issues", t.CurrentWeek)
	f.Line("")
}

func renderSentiment(f *Formatter, rep *engine.Report) {
	s := rep.Sentiment
	if s == nil {
		return
	}
	f.Heading("Sentiment")
	f.Line("Team mood: %s (avg %.3f)", s.TeamMood, s.AvgScore)
	f.Line("Stress indicators: %d negative issues", s.StressIndicators)
	rows := make([][]string, 0, len(s.MostNegative))
	for _, n := range s.MostNegative {
		rows = append(rows, []string{n.Key, truncate(n.Summary, 50), fmt.Sprintf("%.3f", n.Polarity)})
	}
	if len(rows) > 0 {
		f.Table([]string{"Key", "Summary", "Polarity"}, rows)
	}
}

func renderBottlenecks(f *Formatter, rep *engine.Report) {
	b := rep.Bottlenecks
	if b == nil {
		return
	}
	f.Heading("Bottlenecks")
	if b.BottleneckCount == 0 {
		f.Line("No bottlenecks detected")
		f.Line("")
		return
	}
	rows := make([][]string, 0, len(b.Bottlenecks))
	for _, flag := range b.Bottlenecks {
		rows = append(rows, []string{
			string(flag.Type),
			string(flag.Severity),
			strconv.Itoa(flag.AffectedCount),
			flag.Description,
		})
	}
	f.Table([]string{"Type", "Severity", "Affected", "Description"}, rows)
	for _, rec := range b.Recommendations {
		f.Line("- %s", rec)
	}
	f.Line("")
}

func renderPredictive(f *Formatter, rep *engine.Report) {
	p := rep.Predictive
	if p == nil {
		return
	}
	f.Heading("Predicted Blockers")
	if p.Err != "" {
		f.Warn("warning: %s", p.Err)
		return
	}
	rows := make([][]string, 0, len(p.PotentialBlockers))
	for _, b := range p.PotentialBlockers {
		rows = append(rows, []string{
			b.Key,
			truncate(b.Summary, 40),
			b.Assignee,
			b.Priority,
			strconv.Itoa(b.AgeDays),
			fmt.Sprintf("%.3f", b.Probability),
		})
	}
	f.Table([]string{"Key", "Summary", "Assignee", "Priority", "Age", "Risk"}, rows)
}

func renderAnomalies(f *Formatter, rep *engine.Report) {
	a := rep.Anomalies
	if a == nil {
		return
	}
	f.Heading("Anomalies")
	if a.Err != "" {
		f.Warn("warning: %s", a.Err)
		return
	}
	f.Line("Flagged: %d (%.1f%%)", a.AnomalyCount, a.AnomalyPercentage)
	rows := make([][]string, 0, len(a.Anomalies))
	for _, an := range a.Anomalies {
		rows = append(rows, []string{an.Key, truncate(an.Summary, 50), an.Status, strconv.Itoa(an.AgeDays)})
	}
	if len(rows) > 0 {
		f.Table([]string{"Key", "Summary", "Status", "Age"}, rows)
	}
}

func countRows(counts map[string]int) [][]string {
	rows := make([][]string, 0, len(counts))
	for _, key := range sortedKeys(counts) {
		rows = append(rows, []string{key, strconv.Itoa(counts[key])})
	}
	return rows
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
